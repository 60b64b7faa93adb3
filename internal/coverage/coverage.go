// Package coverage analyzes which stations of Building 3 have recorded
// check digits, aisle by aisle.
package coverage

import (
	"fmt"
	"sort"
	"strings"

	"github.com/palletworks/station-data-tools/internal/domain"
	"github.com/samber/lo"
)

// Range is an inclusive run of consecutive station numbers.
type Range struct {
	Start int
	End   int
}

// AisleCoverage describes one aisle's recorded stations.
type AisleCoverage struct {
	Aisle   int
	Present []int // sorted station numbers with a check digit
	Missing []int // sorted station numbers without one

	// Breezeway is the first interior gap between recorded stations, the
	// walkway cut through the aisle. Nil when the recorded stations are
	// consecutive or the aisle has fewer than two of them.
	Breezeway *Range
}

// CoveragePercent is Present over the full 63 stations of the aisle.
func (a AisleCoverage) CoveragePercent() float64 {
	return float64(len(a.Present)) / float64(domain.StationsPerAisle) * 100
}

// Analysis is the per-aisle breakdown of a record set.
type Analysis struct {
	Aisles []AisleCoverage // ascending by aisle, only aisles with records
	Total  int             // total records across all aisles
}

// Analyze groups records by aisle and computes presence, gaps, and the
// breezeway for each. Records with non-canonical codes are ignored.
func Analyze(records []domain.Record) Analysis {
	byAisle := lo.GroupBy(records, func(r domain.Record) int {
		aisle, _ := domain.Aisle(r.Code)
		return aisle
	})
	delete(byAisle, 0) // non-canonical codes

	aisles := lo.Keys(byAisle)
	sort.Ints(aisles)

	analysis := Analysis{}
	for _, aisle := range aisles {
		stations := lo.Uniq(lo.FilterMap(byAisle[aisle], func(r domain.Record, _ int) (int, bool) {
			return domain.StationNum(r.Code)
		}))
		sort.Ints(stations)

		ac := AisleCoverage{
			Aisle:     aisle,
			Present:   stations,
			Missing:   missingStations(stations),
			Breezeway: firstGap(stations),
		}
		analysis.Aisles = append(analysis.Aisles, ac)
		analysis.Total += len(stations)
	}
	return analysis
}

func missingStations(present []int) []int {
	have := lo.SliceToMap(present, func(n int) (int, struct{}) { return n, struct{}{} })
	var missing []int
	for n := 1; n <= domain.StationsPerAisle; n++ {
		if _, ok := have[n]; !ok {
			missing = append(missing, n)
		}
	}
	return missing
}

func firstGap(sorted []int) *Range {
	for i := 0; i+1 < len(sorted); i++ {
		if sorted[i+1]-sorted[i] > 1 {
			return &Range{Start: sorted[i] + 1, End: sorted[i+1] - 1}
		}
	}
	return nil
}

// FormatRanges renders sorted numbers as grouped runs, e.g. "1-9, 12, 30-63".
func FormatRanges(nums []int) string {
	if len(nums) == 0 {
		return ""
	}

	var parts []string
	start, end := nums[0], nums[0]
	flush := func() {
		if start == end {
			parts = append(parts, fmt.Sprintf("%d", start))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", start, end))
		}
	}
	for _, n := range nums[1:] {
		if n == end+1 {
			end = n
			continue
		}
		flush()
		start, end = n, n
	}
	flush()
	return strings.Join(parts, ", ")
}

// Delta compares an aisle's record counts across the two data files.
type Delta struct {
	Aisle    int
	Markdown int
	CSV      int
}

// Match reports whether both files carry the same count for the aisle.
func (d Delta) Match() bool { return d.Markdown == d.CSV }

// Compare tallies records per aisle in the markdown document against the CSV
// table, one Delta per aisle seen in either, ascending.
func Compare(md, csv []domain.Record) []Delta {
	mdCounts := countByAisle(md)
	csvCounts := countByAisle(csv)

	aisles := lo.Uniq(append(lo.Keys(mdCounts), lo.Keys(csvCounts)...))
	sort.Ints(aisles)

	deltas := make([]Delta, 0, len(aisles))
	for _, aisle := range aisles {
		deltas = append(deltas, Delta{Aisle: aisle, Markdown: mdCounts[aisle], CSV: csvCounts[aisle]})
	}
	return deltas
}

func countByAisle(records []domain.Record) map[int]int {
	counts := make(map[int]int)
	for _, r := range records {
		if aisle, ok := domain.Aisle(r.Code); ok {
			counts[aisle]++
		}
	}
	return counts
}
