package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestYearDeltas(t *testing.T) {
	t.Run("both years present", func(t *testing.T) {
		rows := YearDeltas(YearSeries{2020: 10, 2021: 15}, 2021, 2021)

		require.Len(t, rows, 1)
		assert.Equal(t, 2021, rows[0].Year)
		assert.Equal(t, intPtr(15), rows[0].Current)
		assert.Equal(t, intPtr(10), rows[0].Previous)
		assert.Equal(t, intPtr(5), rows[0].AbsoluteChange)
		require.NotNil(t, rows[0].PctChange)
		assert.InDelta(t, 50, *rows[0].PctChange, 1e-9)
	})

	t.Run("missing previous year yields no changes", func(t *testing.T) {
		rows := YearDeltas(YearSeries{2021: 15}, 2021, 2021)

		require.Len(t, rows, 1)
		assert.Equal(t, intPtr(15), rows[0].Current)
		assert.Nil(t, rows[0].Previous)
		assert.Nil(t, rows[0].AbsoluteChange)
		assert.Nil(t, rows[0].PctChange)
	})

	t.Run("missing current year yields no changes", func(t *testing.T) {
		rows := YearDeltas(YearSeries{2020: 10}, 2021, 2021)

		require.Len(t, rows, 1)
		assert.Nil(t, rows[0].Current)
		assert.Equal(t, intPtr(10), rows[0].Previous)
		assert.Nil(t, rows[0].AbsoluteChange)
		assert.Nil(t, rows[0].PctChange)
	})

	t.Run("zero previous yields absolute change but no percent", func(t *testing.T) {
		rows := YearDeltas(YearSeries{2020: 0, 2021: 5}, 2021, 2021)

		require.Len(t, rows, 1)
		assert.Equal(t, intPtr(5), rows[0].AbsoluteChange)
		assert.Nil(t, rows[0].PctChange)
	})

	t.Run("negative change", func(t *testing.T) {
		rows := YearDeltas(YearSeries{2020: 20, 2021: 15}, 2021, 2021)

		require.Len(t, rows, 1)
		assert.Equal(t, intPtr(-5), rows[0].AbsoluteChange)
		assert.Equal(t, floatPtr(-25.0), rows[0].PctChange)
	})

	t.Run("percent rounded to six decimals", func(t *testing.T) {
		// 1/3 * 100 = 33.333333...
		rows := YearDeltas(YearSeries{2020: 3, 2021: 4}, 2021, 2021)

		require.NotNil(t, rows[0].PctChange)
		assert.Equal(t, 33.333333, *rows[0].PctChange)
	})

	t.Run("fixed range covers empty years without error", func(t *testing.T) {
		rows := YearDeltas(YearSeries{2000: 5, 2001: 6}, 1996, 2005)

		require.Len(t, rows, 10)
		for _, row := range rows {
			switch row.Year {
			case 2000:
				assert.Equal(t, intPtr(5), row.Current)
				assert.Nil(t, row.AbsoluteChange)
			case 2001:
				assert.Equal(t, intPtr(1), row.AbsoluteChange)
				assert.Equal(t, floatPtr(20.0), row.PctChange)
			default:
				assert.Nil(t, row.AbsoluteChange, "year %d", row.Year)
				assert.Nil(t, row.PctChange, "year %d", row.Year)
			}
		}
	})
}

func TestMonthDeltas(t *testing.T) {
	series := MonthlySeries{
		2020: {"Jan": 10, "Feb": 100},
		2021: {"Jan": 15, "Feb": 90},
	}

	t.Run("months never compared across labels", func(t *testing.T) {
		jan := MonthDeltas(series, "Jan", []int{2020, 2021})
		feb := MonthDeltas(series, "Feb", []int{2020, 2021})

		require.Len(t, jan, 2)
		assert.Nil(t, jan[0].AbsoluteChange) // 2019 Jan absent
		assert.Equal(t, intPtr(5), jan[1].AbsoluteChange)
		assert.Equal(t, floatPtr(50.0), jan[1].PctChange)

		assert.Equal(t, intPtr(-10), feb[1].AbsoluteChange)
		assert.Equal(t, floatPtr(-10.0), feb[1].PctChange)
	})

	t.Run("month absent in a present year is treated as no data", func(t *testing.T) {
		sparse := MonthlySeries{
			2020: {"Jan": 10},
			2021: {"Feb": 3},
		}
		rows := MonthDeltas(sparse, "Jan", []int{2021})

		require.Len(t, rows, 1)
		assert.Nil(t, rows[0].Current)
		assert.Equal(t, intPtr(10), rows[0].Previous)
		assert.Nil(t, rows[0].AbsoluteChange)
	})
}
