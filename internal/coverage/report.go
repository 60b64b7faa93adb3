package coverage

import (
	"fmt"
	"io"

	"github.com/palletworks/station-data-tools/internal/domain"
)

// WriteReport prints the per-aisle coverage breakdown.
func WriteReport(w io.Writer, a Analysis) {
	fmt.Fprintln(w, "=== Check Digit Coverage ===")
	fmt.Fprintln(w)

	for _, aisle := range a.Aisles {
		fmt.Fprintf(w, "Aisle %s-%02d: %d/%d stations (%.1f%%)\n",
			domain.Building, aisle.Aisle, len(aisle.Present), domain.StationsPerAisle, aisle.CoveragePercent())
		fmt.Fprintf(w, "  recorded: %s\n", FormatRanges(aisle.Present))
		if len(aisle.Missing) > 0 {
			fmt.Fprintf(w, "  missing:  %s\n", FormatRanges(aisle.Missing))
		}
		if aisle.Breezeway != nil {
			fmt.Fprintf(w, "  breezeway: stations %d-%d\n", aisle.Breezeway.Start, aisle.Breezeway.End)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total: %d stations across %d aisles\n", a.Total, len(a.Aisles))
}

// WriteComparison prints the markdown-vs-CSV per-aisle count comparison.
func WriteComparison(w io.Writer, deltas []Delta) {
	fmt.Fprintln(w, "=== Markdown vs CSV ===")
	for _, d := range deltas {
		status := "ok"
		if !d.Match() {
			status = "MISMATCH"
		}
		fmt.Fprintf(w, "  aisle %s-%02d: md=%d csv=%d %s\n", domain.Building, d.Aisle, d.Markdown, d.CSV, status)
	}
}
