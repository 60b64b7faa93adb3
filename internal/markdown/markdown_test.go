package markdown

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/palletworks/station-data-tools/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `# Station Numbers - Organized and Sorted

## District 03-57 Series
03-57-01-01--18
03-57-02-01--
03-57-15-01--7

## District 03-58 Series
03-58-22-01--14
03-58-23-01--9
some stray note
03-58-22-01--21

## Summary
**Building 3 Complete Coverage:**
`

func TestParse(t *testing.T) {
	doc := Parse(sampleDoc)

	require.Len(t, doc.Districts, 2)
	assert.Equal(t, []string{"03-57-01-01--18", "03-57-02-01--", "03-57-15-01--7"}, doc.Districts[57])
	assert.Len(t, doc.Districts[58], 3)
}

func TestParseRecords(t *testing.T) {
	records := ParseRecords(sampleDoc)

	expected := []domain.Record{
		{Code: "03-57-01-01", CheckDigit: "18"},
		{Code: "03-57-15-01", CheckDigit: "7"},
		{Code: "03-58-22-01", CheckDigit: "14"},
		{Code: "03-58-23-01", CheckDigit: "9"},
		{Code: "03-58-22-01", CheckDigit: "21"},
	}
	if diff := cmp.Diff(expected, records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRecordsIgnoresEmptySlots(t *testing.T) {
	records := ParseRecords("03-57-02-01--\n03-57-03-01--5\n")
	require.Len(t, records, 1)
	assert.Equal(t, "03-57-03-01", records[0].Code)
}

func TestMissingDistricts(t *testing.T) {
	doc := Parse(sampleDoc)
	missing := MissingDistricts(doc)

	assert.Len(t, missing, domain.NumAisles-2)
	assert.NotContains(t, missing, 57)
	assert.NotContains(t, missing, 58)
	assert.Contains(t, missing, 1)
	assert.Contains(t, missing, 40)
}

func TestRenderComplete(t *testing.T) {
	doc := Parse(sampleDoc)
	out := RenderComplete(doc)

	// Every district 01-58 gets a section.
	for aisle := 1; aisle <= domain.NumAisles; aisle++ {
		assert.Contains(t, out, fmt.Sprintf("## District 03-%02d Series", aisle))
	}

	// Authored lines survive; missing districts are filled with empty slots.
	assert.Contains(t, out, "03-57-01-01--18")
	assert.Contains(t, out, "03-01-01-01--\n")
	assert.Contains(t, out, "03-40-63-01--\n")
	assert.Contains(t, out, "## Summary")
	assert.Contains(t, out, "Total stations: 3654 stations")
}

func TestRenderParseRoundTrip(t *testing.T) {
	// Rebuilding the document must not lose or invent any recorded record.
	doc := Parse(sampleDoc)
	rebuilt := RenderComplete(doc)

	if diff := cmp.Diff(ParseRecords(sampleDoc), ParseRecords(rebuilt)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	// And rendering is a fixed point after the first pass.
	again := RenderComplete(Parse(rebuilt))
	assert.Equal(t, rebuilt, again)
}

func TestExtractor(t *testing.T) {
	t.Run("reads and parses the document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "station-numbers.md")
		require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o600))

		records, err := NewExtractor(path, slog.Default()).Extract(context.Background())
		require.NoError(t, err)
		assert.Len(t, records, 5)
	})

	t.Run("missing document is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.md")

		_, err := NewExtractor(path, slog.Default()).Extract(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestWriteDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")

	require.NoError(t, WriteDocument(path, "first\n"))
	require.NoError(t, WriteDocument(path, "second\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))

	// No stray temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
