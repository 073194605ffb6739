package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Conservative(t *testing.T) {
	tests := []struct {
		measure string
		want    []Category
	}{
		{"Pedestrians", []Category{CategoryPeople}},
		{"Bus Passengers", []Category{CategoryPeople}},
		{"Train Passengers", []Category{CategoryPeople}},
		{"Trucks", []Category{CategoryVehicle}},
		{"Buses", []Category{CategoryVehicle}},
		{"Personal Vehicles", []Category{CategoryVehicle}},
		{"Trains", []Category{CategoryTrain}},
		// exact-match rule: anything beyond the bare word is not a train
		{"Rail Containers Loaded", []Category{CategoryContainer}},
		{"Empty Containers", []Category{CategoryContainer, CategoryEmptyContainer}},
		{"Truck Containers Empty", []Category{CategoryContainer, CategoryEmptyContainer}},
		{"Unknown Measure", nil},
		{"Persons in Vehicles", nil}, // "person" only matches in the extended rules
	}
	for _, tt := range tests {
		t.Run(tt.measure, func(t *testing.T) {
			assert.Equal(t, tt.want, ConservativeRules.Classify(tt.measure))
		})
	}
}

func TestClassify_Extended(t *testing.T) {
	assert.Equal(t, []Category{CategoryPeople}, ExtendedRules.Classify("Persons in Vehicles"))
	assert.Equal(t, []Category{CategoryPeople}, ExtendedRules.Classify("Pedestrians"))
	assert.Nil(t, ExtendedRules.Classify("Unknown Measure"))
}

func TestClassify_CaseAndWhitespaceInsensitive(t *testing.T) {
	assert.Equal(t, []Category{CategoryTrain}, ConservativeRules.Classify("  TRAINS "))
	assert.Equal(t, []Category{CategoryVehicle}, ConservativeRules.Classify("personal VEHICLES"))
}

func TestClassify_Idempotent(t *testing.T) {
	first := ConservativeRules.Classify("Empty Containers")
	second := ConservativeRules.Classify("Empty Containers")
	assert.Equal(t, first, second)
}

func TestMatches(t *testing.T) {
	assert.True(t, ConservativeRules.Matches("Truck Containers Empty", CategoryContainer))
	assert.True(t, ConservativeRules.Matches("Truck Containers Empty", CategoryEmptyContainer))
	assert.False(t, ConservativeRules.Matches("Truck Containers Empty", CategoryVehicle))
}

func TestRuleSetByName(t *testing.T) {
	conservative, err := RuleSetByName("conservative")
	require.NoError(t, err)
	assert.Equal(t, "conservative", conservative.Name())

	extended, err := RuleSetByName("extended")
	require.NoError(t, err)
	assert.Equal(t, "extended", extended.Name())

	_, err = RuleSetByName("strict")
	assert.Error(t, err)
}
