package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeCode(t *testing.T) {
	assert.Equal(t, "03-58-22-01", MakeCode(58, 22))
	assert.Equal(t, "03-01-07-01", MakeCode(1, 7))
	assert.True(t, IsCanonical(MakeCode(40, 15)))
}

func TestAisleAndStationNum(t *testing.T) {
	aisle, ok := Aisle("03-58-22-01")
	require.True(t, ok)
	assert.Equal(t, 58, aisle)

	station, ok := StationNum("03-58-22-01")
	require.True(t, ok)
	assert.Equal(t, 22, station)

	_, ok = Aisle("58-22")
	assert.False(t, ok)
	_, ok = StationNum("04-58-22-01")
	assert.False(t, ok)
}

func TestMerge(t *testing.T) {
	t.Run("updates win over existing", func(t *testing.T) {
		existing := []Record{
			{Code: "03-40-15-01", CheckDigit: "7"},
			{Code: "03-58-22-01", CheckDigit: "14"},
		}
		updates := []Record{
			{Code: "03-58-22-01", CheckDigit: "21"},
			{Code: "03-57-01-01", CheckDigit: "9"},
		}

		merged, changed, stats := Merge(existing, updates)

		assert.Equal(t, 1, stats.New)
		assert.Equal(t, 1, stats.Updated)
		assert.Equal(t, []Record{
			{Code: "03-40-15-01", CheckDigit: "7"},
			{Code: "03-57-01-01", CheckDigit: "9"},
			{Code: "03-58-22-01", CheckDigit: "21"},
		}, merged)
		assert.Equal(t, []Record{
			{Code: "03-57-01-01", CheckDigit: "9"},
			{Code: "03-58-22-01", CheckDigit: "21"},
		}, changed)
	})

	t.Run("no double count for codes in both", func(t *testing.T) {
		existing := []Record{{Code: "03-40-15-01", CheckDigit: "7"}}
		updates := []Record{{Code: "03-40-15-01", CheckDigit: "7"}}

		merged, changed, stats := Merge(existing, updates)

		assert.Len(t, merged, 1)
		assert.Empty(t, changed)
		assert.Zero(t, stats.New)
		assert.Zero(t, stats.Updated)
	})

	t.Run("later duplicate update wins", func(t *testing.T) {
		updates := []Record{
			{Code: "03-40-15-01", CheckDigit: "7"},
			{Code: "03-40-15-01", CheckDigit: "8"},
		}

		merged, _, stats := Merge(nil, updates)

		require.Len(t, merged, 1)
		assert.Equal(t, "8", merged[0].CheckDigit)
		assert.Equal(t, 1, stats.New)
	})

	t.Run("restored digit is not a change", func(t *testing.T) {
		existing := []Record{{Code: "03-40-15-01", CheckDigit: "7"}}
		updates := []Record{
			{Code: "03-40-15-01", CheckDigit: "9"},
			{Code: "03-40-15-01", CheckDigit: "7"},
		}

		_, changed, stats := Merge(existing, updates)

		assert.Empty(t, changed)
		assert.Zero(t, stats.Updated)
	})
}

func TestSortRecords(t *testing.T) {
	records := []Record{
		{Code: "03-58-22-01"},
		{Code: "03-01-01-01"},
		{Code: "03-40-15-01"},
	}
	SortRecords(records)
	assert.Equal(t, "03-01-01-01", records[0].Code)
	assert.Equal(t, "03-40-15-01", records[1].Code)
	assert.Equal(t, "03-58-22-01", records[2].Code)
}
