// Command validate performs end-to-end integrity checks across the station
// dataset: the markdown document, the CSV table, and (optionally) the SQLite
// seed database. It verifies line and row formats, duplicate codes,
// markdown-to-CSV parity, and seed database alignment.
//
// Usage:
//
//	go run ./cmd/validate -md station-numbers.md -csv station_data.csv [-db station_data.db]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/palletworks/station-data-tools/internal/domain"
	"github.com/palletworks/station-data-tools/internal/markdown"
	"github.com/palletworks/station-data-tools/internal/store"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	mdPath := flag.String("md", "station-numbers.md", "path to the station markdown document")
	csvPath := flag.String("csv", "station_data.csv", "path to the station CSV table")
	dbPath := flag.String("db", "", "path to the SQLite seed database (optional)")
	flag.Parse()

	if code := run(*mdPath, *csvPath, *dbPath); code != 0 {
		os.Exit(code)
	}
}

func run(mdPath, csvPath, dbPath string) int {
	fmt.Println("=== Station Dataset Integrity Validation ===")
	fmt.Println()

	content, err := os.ReadFile(mdPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load markdown: %v\n", err)
		return 1
	}
	mdRecords := markdown.ParseRecords(string(content))

	csvRecords, csvIssues, err := store.NewCSVStore(csvPath).Read()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load CSV: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateMarkdownFormat(string(content)),
		validateCSVFormat(csvPath, csvRecords, csvIssues),
		validateParity(mdRecords, csvRecords),
	}
	if dbPath != "" {
		phases = append(phases, validateSeedDB(dbPath, csvRecords))
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d markdown, %d CSV\n", len(mdRecords), len(csvRecords))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Phase 1: Markdown format ──
// Every station line must be "03-AA-SS-01--" or "03-AA-SS-01--CC", and no
// code may record a check digit twice.

// stationLineRe matches a well-formed station line, recorded or empty slot.
var stationLineRe = regexp.MustCompile(`^(03-\d{2}-\d{2}-01)--(\d*)$`)

func validateMarkdownFormat(content string) *phase {
	p := &phase{name: "Phase 1: Markdown format"}

	seen := map[string]int{}
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, domain.Building+"-") {
			continue
		}

		m := stationLineRe.FindStringSubmatch(line)
		if m == nil {
			p.errorf("line %d: malformed station line %q", i+1, line)
			continue
		}
		if len(m[2]) > 2 {
			p.errorf("line %d: check digit %q longer than two digits", i+1, m[2])
		}
		if m[2] == "" {
			continue
		}
		if first, dup := seen[m[1]]; dup {
			p.errorf("line %d: duplicate recorded code %s (first at line %d)", i+1, m[1], first)
		} else {
			seen[m[1]] = i + 1
		}
	}
	return p
}

// ── Phase 2: CSV format ──
// The store already reports malformed rows; additionally the table must be
// sorted ascending and free of duplicate codes.

func validateCSVFormat(path string, records []domain.Record, issues []domain.Issue) *phase {
	p := &phase{name: "Phase 2: CSV format"}

	for _, issue := range issues {
		p.errorf("%s: %s", path, issue)
	}

	codes := make([]string, len(records))
	for i, r := range records {
		codes[i] = r.Code
	}
	if !sort.StringsAreSorted(codes) {
		p.errorf("table is not sorted ascending by station_number")
	}
	seen := map[string]bool{}
	for _, code := range codes {
		if seen[code] {
			p.errorf("duplicate station_number %s", code)
		}
		seen[code] = true
	}
	return p
}

// ── Phase 3: Markdown ↔ CSV parity ──
// Every recorded markdown code must appear in the CSV with the same digit.
// Markdown duplicates resolve last-wins before comparing, matching the sync
// merge semantics.

func validateParity(md, csv []domain.Record) *phase {
	p := &phase{name: "Phase 3: Markdown-CSV parity"}

	csvByCode := map[string]string{}
	for _, r := range csv {
		csvByCode[r.Code] = r.CheckDigit
	}

	mdByCode := map[string]string{}
	for _, r := range md {
		mdByCode[r.Code] = r.CheckDigit
	}

	codes := make([]string, 0, len(mdByCode))
	for code := range mdByCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		digit, ok := csvByCode[code]
		if !ok {
			p.errorf("%s: recorded in markdown but missing from CSV", code)
			continue
		}
		if digit != mdByCode[code] {
			p.errorf("%s: markdown has %q, CSV has %q", code, mdByCode[code], digit)
		}
	}
	return p
}

// ── Phase 4: Seed database alignment ──
// The database must hold every CSV record, and shorthand forms of seeded
// codes must normalize to a hit, mirroring the app's lookup path.

func validateSeedDB(path string, csv []domain.Record) *phase {
	p := &phase{name: "Phase 4: Seed database alignment"}

	db, err := store.OpenSeedDB(path)
	if err != nil {
		p.errorf("open: %v", err)
		return p
	}
	defer db.Close() //nolint:errcheck // read-side close on exit

	ctx := context.Background()

	count, err := db.Count(ctx)
	if err != nil {
		p.errorf("count: %v", err)
		return p
	}
	if count != len(csv) {
		p.errorf("database has %d stations, CSV has %d", count, len(csv))
	}

	for _, r := range csv {
		digit, found, err := db.Lookup(ctx, r.Code)
		if err != nil {
			p.errorf("%s: lookup: %v", r.Code, err)
			continue
		}
		if !found {
			p.errorf("%s: in CSV but not in database", r.Code)
			continue
		}
		if digit != r.CheckDigit {
			p.errorf("%s: CSV has %q, database has %q", r.Code, r.CheckDigit, digit)
		}

		// Shorthand round trip, the path the app's lookup takes.
		aisle, _ := domain.Aisle(r.Code)
		station, _ := domain.StationNum(r.Code)
		shorthand := fmt.Sprintf("%02d%02d", aisle, station)
		if normalized := domain.NormalizeCode(shorthand); normalized != r.Code {
			p.errorf("%s: shorthand %q normalizes to %q", r.Code, shorthand, normalized)
		}
	}
	return p
}
