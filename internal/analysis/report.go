package analysis

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Report layout in PDF points on an A4 portrait page. The cursor starts at a
// fixed offset from the top edge and advances per line; when it would run
// past the bottom margin, a new page is started and the cursor resets.
const (
	reportTitle = "Regula Compliance Report"

	topOffset    = 42.0
	bottomMargin = 50.0
	titleX       = 50.0
	findingX     = 60.0
	titleGap     = 40.0
	scoreGap     = 30.0
	lineHeight   = 20.0
)

// BuildReport renders the risk report as a single in-memory PDF: title line,
// score line, then one line per finding in rule-table order. Compression is
// disabled so the byte stream stays inspectable; reports are a few hundred
// bytes either way.
func BuildReport(report RiskReport) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCompression(false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)

	_, pageHeight := pdf.GetPageSize()
	y := topOffset

	line := func(x float64, text string) {
		if y > pageHeight-bottomMargin {
			pdf.AddPage()
			y = topOffset
		}
		pdf.Text(x, y, text)
	}

	line(titleX, reportTitle)
	y += titleGap

	line(titleX, fmt.Sprintf("Risk Score: %d", report.Score))
	y += scoreGap

	for _, f := range report.Findings {
		line(findingX, f.Detail)
		y += lineHeight
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}
