package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "input-data", cfg.InputDir)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, 1996, cfg.YearRangeStart)
	assert.Equal(t, 2025, cfg.YearRangeEnd)
	assert.Equal(t, "conservative", cfg.ClassifierRules)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("BORDER_ETL_INPUT_DIR", "/data/raw")
	t.Setenv("BORDER_ETL_OUTPUT_DIR", "/data/out")
	t.Setenv("BORDER_ETL_YEAR_RANGE_START", "2000")
	t.Setenv("BORDER_ETL_YEAR_RANGE_END", "2010")
	t.Setenv("BORDER_ETL_CLASSIFIER_RULES", "extended")
	t.Setenv("BORDER_ETL_LOG_LEVEL", "debug")
	t.Setenv("BORDER_ETL_LOG_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/raw", cfg.InputDir)
	assert.Equal(t, "/data/out", cfg.OutputDir)
	assert.Equal(t, 2000, cfg.YearRangeStart)
	assert.Equal(t, 2010, cfg.YearRangeEnd)
	assert.Equal(t, "extended", cfg.ClassifierRules)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_InvalidYearRange(t *testing.T) {
	t.Setenv("BORDER_ETL_YEAR_RANGE_START", "2020")
	t.Setenv("BORDER_ETL_YEAR_RANGE_END", "2010")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "year range")
}

func TestLoad_UnknownRuleSet(t *testing.T) {
	t.Setenv("BORDER_ETL_CLASSIFIER_RULES", "strict")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rule set")
}

func TestValidate_EmptyDirs(t *testing.T) {
	cfg := &Config{OutputDir: "out", YearRangeStart: 1996, YearRangeEnd: 2025, ClassifierRules: "conservative"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{InputDir: "in", YearRangeStart: 1996, YearRangeEnd: 2025, ClassifierRules: "conservative"}
	assert.Error(t, cfg.Validate())
}
