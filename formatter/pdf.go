package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/phpdave11/gofpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/theoremus-urban-solutions/routes/route"
)

// millimetres per text character in the PDF table
const pdfCharWidth = 2.6

const unicodeFamily = "unicode"

// PDFOptions controls PDF rendering.
type PDFOptions struct {
	// FontFile is a TrueType font embedded for text outside cp1252,
	// e.g. Cyrillic destinations. Without it only cp1252 text is accepted.
	FontFile string
}

// RenderPDF writes routes as a one-table A4 timetable.
// Without a font file, text the built-in Helvetica cannot encode is an
// error rather than being replaced.
func RenderPDF(w io.Writer, title string, routes []route.Route, opts PDFOptions) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	family := "Helvetica"
	tr := func(s string) string { return s }

	if opts.FontFile != "" {
		for _, style := range []string{"", "B", "I"} {
			pdf.AddUTF8Font(unicodeFamily, style, opts.FontFile)
		}
		if err := pdf.Error(); err != nil {
			return fmt.Errorf("load font %s: %w", opts.FontFile, err)
		}
		family = unicodeFamily
	} else {
		if err := checkEncodable(title, routes); err != nil {
			return err
		}
		tr = pdf.UnicodeTranslatorFromDescriptor("")
	}

	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont(family, "B", 16)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(12)

	if len(routes) == 0 {
		pdf.SetFont(family, "I", 12)
		pdf.Cell(0, 8, NoRoutesMessage)
		pdf.Ln(8)
		return pdf.Output(w)
	}

	widths := [3]float64{
		DestinationWidth * pdfCharWidth,
		(NumberWidth + 4) * pdfCharWidth,
		TimeWidth * pdfCharWidth / 2,
	}
	pdf.SetFont(family, "B", 11)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(family, "", 11)
	for _, r := range routes {
		pdf.CellFormat(widths[0], 7, tr(clip(r.Destination, DestinationWidth)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, r.Number.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, r.Time.String(), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// checkEncodable rejects text that Helvetica's cp1252 encoding cannot hold.
func checkEncodable(title string, routes []route.Route) error {
	enc := charmap.Windows1252.NewEncoder()
	if _, err := enc.String(title); err != nil {
		return fmt.Errorf("title %q needs a unicode font (--pdf-font)", title)
	}
	for _, r := range routes {
		if _, err := enc.String(r.Destination); err != nil {
			return fmt.Errorf("destination %q needs a unicode font (--pdf-font)", r.Destination)
		}
	}
	return nil
}

// Title is the document title used for a data file.
func Title(source string) string {
	source = strings.TrimSpace(source)
	if source == "" {
		return "Departures"
	}
	return "Departures: " + source
}
