package render

import (
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"

	"github.com/edpsych-tools/reportgen/internal/band"
)

const (
	pageMargin = 40.0

	headerFontSize = 10.0
	titleFontSize  = 14.0
	tableFontSize  = 6.5

	compositeColWidth = 130.0
	headerRowHeight   = 22.0
	textLineHeight    = 9.0
	cellPadding       = 6.0

	// Fraction of the content area the bell-curve image may occupy.
	imageHeightFrac   = 0.40
	imageMaxWidthFrac = 0.90
)

// BandTablePDF renders the paginated band tables to a PDF file. Each
// section gets its own page sequence; the bell-curve image (if present)
// appears on the first page only. A missing image degrades the output and
// is reported as a warning.
func BandTablePDF(tables []Table, studentName, dateStr, imagePath, outPath string) ([]string, error) {
	var warnings []string

	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetTitle("Score Band Report", false)

	drawImage := false
	if imagePath != "" {
		if _, err := os.Stat(imagePath); err == nil {
			drawImage = true
		} else {
			warnings = append(warnings, fmt.Sprintf("bell-curve image not found at %s; report generated without it", imagePath))
		}
	}

	headerText := fmt.Sprintf("%-60s%s", studentName+"   Triennial Assessment", dateStr)

	firstPage := true
	pagesAdded := 0
	for _, table := range tables {
		if len(table.Rows) == 0 {
			continue
		}

		rows := buildBandRows(table.Rows)
		for _, chunk := range paginate(rows, MaxRowsPerPage) {
			addTablePage(doc, chunk, table.Title, headerText, imagePath, drawImage && firstPage)
			firstPage = false
			pagesAdded++
		}
	}

	if pagesAdded == 0 {
		return warnings, fmt.Errorf("no score rows to render")
	}

	if err := doc.OutputFileAndClose(outPath); err != nil {
		return warnings, fmt.Errorf("write band table PDF: %w", err)
	}

	return warnings, nil
}

func addTablePage(doc *fpdf.Fpdf, rows []bandRow, title, headerText, imagePath string, withImage bool) {
	doc.AddPage()
	pageW, pageH := doc.GetPageSize()
	contentW := pageW - 2*pageMargin
	y := pageMargin

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Courier", "B", headerFontSize)
	doc.Text(pageMargin, y+headerFontSize, headerText)
	y += 28

	if withImage {
		y = drawBellCurve(doc, imagePath, y, pageW, pageH)
	}

	doc.SetFont("Helvetica", "B", titleFontSize)
	titleW := doc.GetStringWidth(title)
	doc.Text(pageMargin+(contentW-titleW)/2, y+titleFontSize, title)
	y += 30

	y = drawHeaderRow(doc, pageMargin, y, contentW)

	doc.SetFont("Helvetica", "", tableFontSize)
	bandW := (contentW - compositeColWidth) / float64(len(band.All()))
	for _, row := range rows {
		y = drawScoreRow(doc, row, pageMargin, y, bandW)
	}
}

// drawBellCurve centers the background image below the page header,
// preserving aspect ratio and capping the width. Returns the new cursor.
func drawBellCurve(doc *fpdf.Fpdf, imagePath string, y, pageW, pageH float64) float64 {
	info := doc.RegisterImageOptions(imagePath, fpdf.ImageOptions{ReadDpi: false})
	if info == nil || info.Height() == 0 {
		return y
	}

	contentW := pageW - 2*pageMargin
	aspect := info.Width() / info.Height()

	imgH := imageHeightFrac * (pageH - 2*pageMargin)
	imgW := imgH * aspect
	if imgW > imageMaxWidthFrac*contentW {
		imgW = imageMaxWidthFrac * contentW
		imgH = imgW / aspect
	}

	x := (pageW - imgW) / 2
	doc.ImageOptions(imagePath, x, y, imgW, imgH, false, fpdf.ImageOptions{ReadDpi: false}, 0, "")

	return y + imgH + 16
}

func drawHeaderRow(doc *fpdf.Fpdf, x, y, contentW float64) float64 {
	doc.SetFont("Helvetica", "B", 7)
	doc.SetDrawColor(0, 0, 0)

	// Composite header cell in neutral gray, band headers in band colors.
	doc.SetFillColor(240, 240, 240)
	doc.Rect(x, y, compositeColWidth, headerRowHeight, "FD")
	doc.Text(x+3, y+headerRowHeight/2+2.5, "Composite")

	bands := band.All()
	bandW := (contentW - compositeColWidth) / float64(len(bands))
	cx := x + compositeColWidth
	for _, b := range bands {
		r, g, bl := b.RGB()
		doc.SetFillColor(r, g, bl)
		doc.Rect(cx, y, bandW, headerRowHeight, "FD")

		labelW := doc.GetStringWidth(b.Label)
		doc.Text(cx+(bandW-labelW)/2, y+headerRowHeight/2+2.5, b.Label)
		cx += bandW
	}

	return y + headerRowHeight
}

func drawScoreRow(doc *fpdf.Fpdf, row bandRow, x, y, bandW float64) float64 {
	rowH := float64(len(row.composite))*textLineHeight + cellPadding

	doc.SetFillColor(255, 255, 255)
	doc.Rect(x, y, compositeColWidth, rowH, "FD")
	for i, line := range row.composite {
		doc.Text(x+3, y+textLineHeight*float64(i+1), line)
	}

	cx := x + compositeColWidth
	for _, b := range band.All() {
		if b.Label == row.bandLabel {
			r, g, bl := b.RGB()
			doc.SetFillColor(r, g, bl)
			doc.Rect(cx, y, bandW, rowH, "FD")

			ss := fmt.Sprintf("%d", row.ss)
			ssW := doc.GetStringWidth(ss)
			doc.Text(cx+(bandW-ssW)/2, y+rowH/2+2.5, ss)
		} else {
			doc.SetFillColor(255, 255, 255)
			doc.Rect(cx, y, bandW, rowH, "FD")
		}
		cx += bandW
	}

	return y + rowH
}
