// Package markdown parses and regenerates the hand-authored
// station-numbers document.
//
// The document groups station lines under district headers, one district per
// aisle:
//
//	## District 03-57 Series
//	03-57-01-01--18
//	03-57-02-01--
//
// A line ending in "--CC" records check digit CC for that station; a line
// ending in a bare "--" is an empty template slot waiting for a recording
// pass. Lines matching neither shape are ignored.
package markdown

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/palletworks/station-data-tools/internal/domain"
)

var (
	// recordRe matches authored station lines with a recorded check digit,
	// e.g. "03-58-22-01--14".
	recordRe = regexp.MustCompile(`(?m)^(03-\d{2}-\d{2}-01)--(\d+)`)

	// districtRe matches district section headers, e.g. "## District 03-57 Series".
	districtRe = regexp.MustCompile(`## District 03-(\d+) Series`)
)

// Document holds the station lines of a parsed document, grouped by district
// (aisle) number. Lines keep their authored text so a rebuild preserves
// recorded check digits and empty slots alike.
type Document struct {
	Districts map[int][]string
}

// Parse splits a document into district sections and collects the station
// lines of each. Content outside district sections is discarded.
func Parse(content string) Document {
	doc := Document{Districts: make(map[int][]string)}

	headers := districtRe.FindAllStringSubmatchIndex(content, -1)
	for i, h := range headers {
		num, err := strconv.Atoi(content[h[2]:h[3]])
		if err != nil {
			continue
		}

		end := len(content)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		section := content[h[1]:end]

		var lines []string
		for _, line := range strings.Split(section, "\n") {
			line = strings.TrimSpace(line)
			if line != "" && strings.HasPrefix(line, domain.Building+"-") {
				lines = append(lines, line)
			}
		}
		doc.Districts[num] = lines
	}
	return doc
}

// ParseRecords extracts every station line with a recorded check digit, in
// document order. Duplicate codes are kept; merge semantics downstream give
// the later line the win.
func ParseRecords(content string) []domain.Record {
	matches := recordRe.FindAllStringSubmatch(content, -1)
	records := make([]domain.Record, 0, len(matches))
	for _, m := range matches {
		records = append(records, domain.Record{Code: m[1], CheckDigit: m[2]})
	}
	return records
}

// MissingDistricts returns the aisle numbers 1..58 that have no district
// section in the document, ascending.
func MissingDistricts(doc Document) []int {
	var missing []int
	for aisle := 1; aisle <= domain.NumAisles; aisle++ {
		if _, ok := doc.Districts[aisle]; !ok {
			missing = append(missing, aisle)
		}
	}
	return missing
}

// RenderComplete regenerates the full document with every district 01-58.
// Districts present in doc keep their authored lines; missing districts get
// empty template slots for stations 01-63. A summary section closes the file.
func RenderComplete(doc Document) string {
	var b strings.Builder
	b.WriteString("# Station Numbers - Organized and Sorted\n\n")

	for aisle := 1; aisle <= domain.NumAisles; aisle++ {
		fmt.Fprintf(&b, "## District %s-%02d Series\n", domain.Building, aisle)
		if lines, ok := doc.Districts[aisle]; ok && len(lines) > 0 {
			for _, line := range lines {
				b.WriteString(line)
				b.WriteByte('\n')
			}
		} else {
			for station := 1; station <= domain.StationsPerAisle; station++ {
				b.WriteString(domain.MakeCode(aisle, station))
				b.WriteString("--\n")
			}
		}
		b.WriteByte('\n')
	}

	total := domain.NumAisles * domain.StationsPerAisle
	b.WriteString("## Summary\n")
	b.WriteString("**Building 3 Complete Coverage:**\n")
	fmt.Fprintf(&b, "- Districts %s-01 through %s-%02d (%d aisles)\n",
		domain.Building, domain.Building, domain.NumAisles, domain.NumAisles)
	fmt.Fprintf(&b, "- Each district contains stations 01-%02d (%d stations per aisle)\n",
		domain.StationsPerAisle, domain.StationsPerAisle)
	fmt.Fprintf(&b, "- Total stations: %d stations\n", total)

	return b.String()
}
