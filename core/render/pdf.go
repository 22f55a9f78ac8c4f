// Package render — PDF renderer.
// Lays out each logical page on its own PDF page using gofpdf, keeping
// paragraph separators as blank lines and numbering pages in the footer.
// Hangul needs a UTF-8 TrueType font; without one, text is translated to
// cp1252 and unsupported characters are lost.
package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/1Seob/Flik-v2-sub000/core"
)

const (
	bodyFontSize   = 11
	bodyLineHeight = 6.5
	utf8Family     = "body"
)

// PDFRenderer renders pages as a PDF document.
type PDFRenderer struct {
	// FontPath is an optional TrueType font with the glyphs the book needs.
	FontPath string
}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer(fontPath string) *PDFRenderer {
	return &PDFRenderer{FontPath: fontPath}
}

// Render converts pages into PDF bytes.
func (r *PDFRenderer) Render(pages []core.Page, meta core.BookMetadata, stats core.Stats) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(18, 20, 18)
	pdf.SetAutoPageBreak(true, 18)

	family := "Helvetica"
	translate := pdf.UnicodeTranslatorFromDescriptor("")
	if r.FontPath != "" {
		pdf.AddUTF8Font(utf8Family, "", r.FontPath)
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("loading font %s: %w", r.FontPath, err)
		}
		family = utf8Family
		translate = func(s string) string { return s }
	}

	if meta.Title != "" {
		pdf.SetTitle(meta.Title, true)
	}

	current := 0
	pdf.SetFooterFunc(func() {
		pdf.SetY(-14)
		pdf.SetFont(family, "", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 8, strconv.Itoa(current), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	for _, pg := range pages {
		current = pg.Number
		pdf.AddPage()
		pdf.SetFont(family, "", bodyFontSize)
		pdf.MultiCell(0, bodyLineHeight, translate(pg.Text), "", "J", false)
	}

	if len(pages) == 0 {
		// An empty book still renders to a valid document.
		pdf.AddPage()
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}
