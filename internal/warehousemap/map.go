// Package warehousemap renders the Building 3 layout as a PDF: an overview
// grid of all 58 aisles and 63 stations, plus detail pages for aisles with
// substantial check-digit data.
package warehousemap

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/palletworks/station-data-tools/internal/coverage"
	"github.com/palletworks/station-data-tools/internal/domain"
)

// Station states on the map.
var (
	colorEmpty     = rgb{227, 242, 253} // light blue
	colorRecorded  = rgb{76, 175, 80}   // green
	colorBreezeway = rgb{255, 235, 59}  // yellow
	colorBorder    = rgb{25, 118, 210}  // dark blue
)

type rgb struct{ r, g, b int }

// detailThreshold is the minimum recorded stations for an aisle to get its
// own detail page.
const detailThreshold = 20

// Render writes the layout PDF for the given record set to path.
func Render(path string, records []domain.Record) error {
	analysis := coverage.Analyze(records)

	byAisle := make(map[int]coverage.AisleCoverage, len(analysis.Aisles))
	for _, a := range analysis.Aisles {
		byAisle[a.Aisle] = a
	}
	digits := make(map[string]string, len(records))
	for _, r := range records {
		digits[r.Code] = r.CheckDigit
	}

	pdf := fpdf.New("L", "mm", "A3", "")
	drawOverview(pdf, byAisle, analysis.Total)
	for _, a := range analysis.Aisles {
		if len(a.Present) > detailThreshold {
			drawAisleDetail(pdf, a, digits)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write map pdf: %w", err)
	}
	return nil
}

func drawOverview(pdf *fpdf.Fpdf, byAisle map[int]coverage.AisleCoverage, total int) {
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(150, 15, "Building 3 Warehouse Layout")
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(150, 22, fmt.Sprintf("%d aisles x %d stations = %d locations, %d with check digits",
		domain.NumAisles, domain.StationsPerAisle, domain.NumAisles*domain.StationsPerAisle, total))

	const (
		originX       = 10.0
		originY       = 30.0
		aisleWidth    = 5.5
		aisleSpacing  = 6.8
		stationHeight = 3.5
	)

	pdf.SetDrawColor(colorBorder.r, colorBorder.g, colorBorder.b)
	pdf.SetFont("Helvetica", "", 5)

	for aisle := 1; aisle <= domain.NumAisles; aisle++ {
		x := originX + float64(aisle-1)*aisleSpacing
		cov, hasData := byAisle[aisle]

		for station := 1; station <= domain.StationsPerAisle; station++ {
			y := originY + float64(station-1)*stationHeight
			c := stationColor(cov, hasData, station)
			pdf.SetFillColor(c.r, c.g, c.b)
			pdf.Rect(x, y, aisleWidth, stationHeight-0.2, "FD")
		}

		pdf.SetFont("Helvetica", "B", 7)
		pdf.Text(x+1, originY+float64(domain.StationsPerAisle)*stationHeight+4, fmt.Sprintf("%02d", aisle))
		pdf.SetFont("Helvetica", "", 5)
	}

	drawLegend(pdf, originX, originY+float64(domain.StationsPerAisle)*stationHeight+10)
}

func stationColor(cov coverage.AisleCoverage, hasData bool, station int) rgb {
	if !hasData {
		return colorEmpty
	}
	if cov.Breezeway != nil && station >= cov.Breezeway.Start && station <= cov.Breezeway.End {
		return colorBreezeway
	}
	for _, s := range cov.Present {
		if s == station {
			return colorRecorded
		}
	}
	return colorEmpty
}

func drawLegend(pdf *fpdf.Fpdf, x, y float64) {
	items := []struct {
		color rgb
		label string
	}{
		{colorEmpty, "Empty station"},
		{colorRecorded, "Station with check digit"},
		{colorBreezeway, "Breezeway"},
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.Text(x, y, "Legend:")
	pdf.SetFont("Helvetica", "", 8)
	for i, item := range items {
		ix := x + 25 + float64(i)*70
		pdf.SetFillColor(item.color.r, item.color.g, item.color.b)
		pdf.Rect(ix, y-3.5, 5, 4, "FD")
		pdf.Text(ix+7, y, item.label)
	}
}

func drawAisleDetail(pdf *fpdf.Fpdf, cov coverage.AisleCoverage, digits map[string]string) {
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(140, 18, fmt.Sprintf("Aisle %02d - Detailed Station Map", cov.Aisle))

	const (
		perRow     = 21
		cellWidth  = 18.0
		cellHeight = 22.0
		originX    = 15.0
		originY    = 35.0
	)

	present := make(map[int]bool, len(cov.Present))
	for _, s := range cov.Present {
		present[s] = true
	}

	pdf.SetDrawColor(120, 120, 120)
	for station := 1; station <= domain.StationsPerAisle; station++ {
		row := (station - 1) / perRow
		col := (station - 1) % perRow
		x := originX + float64(col)*cellWidth
		y := originY + float64(row)*(cellHeight+6)

		c := stationColor(cov, true, station)
		pdf.SetFillColor(c.r, c.g, c.b)
		pdf.Rect(x, y, cellWidth-2, cellHeight, "FD")

		pdf.SetFont("Helvetica", "B", 9)
		pdf.Text(x+4, y+9, fmt.Sprintf("%02d", station))
		if digit, ok := digits[domain.MakeCode(cov.Aisle, station)]; ok {
			pdf.SetFont("Helvetica", "", 8)
			pdf.Text(x+4, y+17, "("+digit+")")
		}
	}

	y := originY + 3*(cellHeight+6) + 10
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(originX, y, fmt.Sprintf("Stations with check digits: %d of %d", len(cov.Present), domain.StationsPerAisle))
	pdf.Text(originX, y+6, fmt.Sprintf("Format: %s-%02d-XX-%s--YY", domain.Building, cov.Aisle, domain.Position))
	if cov.Breezeway != nil {
		pdf.Text(originX, y+12, fmt.Sprintf("Breezeway: stations %d-%d", cov.Breezeway.Start, cov.Breezeway.End))
	}
}
