package analyzer

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	reportTitle   = "Student Feedback Analysis Report"
	summaryTitle  = "Overall Summary"
	imageWidthMM  = 150
	lineHeightMM  = 8
	headingHeight = 10
)

// Report is the logical content of an exported document: one section per
// analysed column followed by the overall summary.
type Report struct {
	Title    string
	Sections []ReportSection
	Summary  string
}

// ReportSection is the printable form of a ColumnRecord.
type ReportSection struct {
	Heading   string
	Keywords  string
	Themes    []Theme
	Quotes    []Quote
	WordCloud string
}

// ComposeReport builds a report from the column records. Each theme keeps at
// most samples items; samples <= 0 defaults to 3.
func ComposeReport(records []ColumnRecord, summary string, samples int) Report {
	if samples <= 0 {
		samples = 3
	}
	r := Report{Title: reportTitle, Summary: summary}
	for _, rec := range records {
		themes := make([]Theme, len(rec.Themes))
		for i, th := range rec.Themes {
			items := th.Items
			if len(items) > samples {
				items = items[:samples]
			}
			themes[i] = Theme{Label: th.Label, Items: items}
		}
		r.Sections = append(r.Sections, ReportSection{
			Heading:   "Question: " + rec.Column,
			Keywords:  strings.Join(rec.Keywords, ", "),
			Themes:    themes,
			Quotes:    rec.Quotes,
			WordCloud: rec.WordCloud,
		})
	}
	return r
}

// SectionCount returns the number of logical sections, the summary included.
func (r Report) SectionCount() int {
	return len(r.Sections) + 1
}

// WritePDF renders the report to path, replacing any existing file, and returns
// the number of pages written. Word-cloud images that do not exist are skipped.
func (r Report) WritePDF(path string) (int, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, sec := range r.Sections {
		pdf.AddPage()
		if i == 0 {
			pdf.SetFont("Arial", "", 14)
			pdf.CellFormat(0, headingHeight, tr(r.Title), "", 1, "C", false, 0, "")
			pdf.Ln(5)
		}
		writeSection(pdf, tr, sec)
	}

	pdf.AddPage()
	if len(r.Sections) == 0 {
		pdf.SetFont("Arial", "", 14)
		pdf.CellFormat(0, headingHeight, tr(r.Title), "", 1, "C", false, 0, "")
		pdf.Ln(5)
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, headingHeight, summaryTitle, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, lineHeightMM, tr(r.Summary), "", "L", false)

	if err := pdf.Error(); err != nil {
		return 0, fmt.Errorf("render report: %w", err)
	}
	pages := pdf.PageNo()
	if err := pdf.OutputFileAndClose(path); err != nil {
		return 0, fmt.Errorf("write report: %w", err)
	}
	return pages, nil
}

func writeSection(pdf *fpdf.Fpdf, tr func(string) string, sec ReportSection) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, headingHeight, tr(sec.Heading), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, lineHeightMM, tr(" Keywords: "+sec.Keywords), "", "L", false)

	for _, th := range sec.Themes {
		pdf.MultiCell(0, lineHeightMM, tr(fmt.Sprintf(" %s:", th.Label)), "", "L", false)
		for _, item := range th.Items {
			pdf.MultiCell(0, lineHeightMM, tr("   - "+item), "", "L", false)
		}
	}

	pdf.MultiCell(0, lineHeightMM, " Student Quotes:", "", "L", false)
	for _, q := range sec.Quotes {
		pdf.MultiCell(0, lineHeightMM, tr(fmt.Sprintf("   - \"%s\" (%d mentions)", q.Text, q.Count)), "", "L", false)
	}

	if fileExists(sec.WordCloud) {
		pdf.Ln(3)
		pdf.ImageOptions(sec.WordCloud, pdf.GetX(), pdf.GetY(), imageWidthMM, 0, true, fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}, 0, "")
	}
	pdf.Ln(5)
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
