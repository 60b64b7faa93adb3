package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Building 3 layout constants. The dataset covers a single building with a
// fixed pallet position per station.
const (
	Building = "03"
	Position = "01"

	NumAisles        = 58
	StationsPerAisle = 63
)

// Record pairs a canonical location code with its recorded check digit.
// Records are unique by Code; display and storage order is lexical ascending.
type Record struct {
	Code       string `json:"station_number"`
	CheckDigit string `json:"check_digit"`
}

// MakeCode builds the canonical location code for an aisle/station pair.
func MakeCode(aisle, station int) string {
	return fmt.Sprintf("%s-%02d-%02d-%s", Building, aisle, station, Position)
}

// Aisle extracts the aisle number from a canonical code.
// Returns false if the code is not canonical.
func Aisle(code string) (int, bool) {
	return segment(code, 1)
}

// StationNum extracts the station number from a canonical code.
// Returns false if the code is not canonical.
func StationNum(code string) (int, bool) {
	return segment(code, 2)
}

func segment(code string, idx int) (int, bool) {
	if !IsCanonical(code) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.Split(code, "-")[idx])
	if err != nil {
		return 0, false
	}
	return n, true
}

// MergeStats summarizes what a merge changed.
type MergeStats struct {
	New     int
	Updated int
}

// Merge folds updates into existing, keyed by code with last write wins.
// It returns the merged set sorted ascending by code, the records that were
// added or whose check digit changed, and counts. A code present in both
// inputs is counted once.
func Merge(existing, updates []Record) (merged, changed []Record, stats MergeStats) {
	original := make(map[string]string, len(existing))
	for _, r := range existing {
		original[r.Code] = r.CheckDigit
	}

	byCode := make(map[string]string, len(existing)+len(updates))
	for code, digit := range original {
		byCode[code] = digit
	}
	for _, r := range updates {
		byCode[r.Code] = r.CheckDigit
	}

	// Compare final state against the original so an update that changes a
	// digit and later restores it does not count as a change.
	for code, digit := range byCode {
		prev, seen := original[code]
		switch {
		case !seen:
			stats.New++
			changed = append(changed, Record{Code: code, CheckDigit: digit})
		case prev != digit:
			stats.Updated++
			changed = append(changed, Record{Code: code, CheckDigit: digit})
		}
	}

	merged = make([]Record, 0, len(byCode))
	for code, digit := range byCode {
		merged = append(merged, Record{Code: code, CheckDigit: digit})
	}
	SortRecords(merged)
	SortRecords(changed)
	return merged, changed, stats
}

// SortRecords orders records lexically ascending by code, in place.
func SortRecords(records []Record) {
	sort.Slice(records, func(i, j int) bool { return records[i].Code < records[j].Code })
}
