package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"travelconsole/internal/domain"
	"travelconsole/internal/table"
	"travelconsole/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ExportService turns a rendered sheet into downloadable files.
type ExportService struct {
	// Orientation is "L" (default) or "P".
	Orientation string
	RequestID   string
	Now         func() time.Time
}

// Export dispatches on format: "csv" or "pdf".
func (s ExportService) Export(sheet table.Sheet, format string) ([]byte, string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return s.CSV(sheet)
	case "pdf":
		return s.PDF(sheet)
	default:
		return nil, "", domain.ValidationError{Field: "format", Msg: "format must be csv or pdf"}
	}
}

func (s ExportService) CSV(sheet table.Sheet) ([]byte, string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(sheet.Headers); err != nil {
		return nil, "", fmt.Errorf("write csv header: %w", err)
	}
	if err := w.WriteAll(sheet.Rows); err != nil {
		return nil, "", fmt.Errorf("write csv rows: %w", err)
	}
	utils.LogFields(s.RequestID, "export", "csv", "table", sheet.Name, "rows", len(sheet.Rows))
	return buf.Bytes(), s.filename(sheet, "csv"), nil
}

const (
	pdfMargin    = 10.0
	pdfRowHeight = 7.0
	pdfFontSize  = 9.0
)

func (s ExportService) PDF(sheet table.Sheet) ([]byte, string, error) {
	orientation := "L"
	if strings.EqualFold(s.Orientation, "P") {
		orientation = "P"
	}
	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetTitle(sheet.Title, false)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(v string) string {
		return tr(strings.ReplaceAll(v, "₹", "Rs. "))
	}

	pageW, pageH := pdf.GetPageSize()
	widths := columnWidths(sheet, pageW-2*pdfMargin)

	header := func() {
		pdf.SetFont("Helvetica", "B", pdfFontSize)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range sheet.Headers {
			pdf.CellFormat(widths[i], pdfRowHeight, fit(pdf, text(h), widths[i]), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", pdfFontSize)
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, text(safe(sheet.Title, sheet.Name)))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s - %d records", s.now().Format("2006-01-02 15:04"), len(sheet.Rows)))
	pdf.Ln(8)
	header()

	for _, row := range sheet.Rows {
		if pdf.GetY()+pdfRowHeight > pageH-pdfMargin {
			pdf.AddPage()
			header()
		}
		for i := range sheet.Headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(widths[i], pdfRowHeight, fit(pdf, text(cell), widths[i]), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(sheet.Rows) == 0 {
		pdf.SetFont("Helvetica", "I", pdfFontSize)
		pdf.Cell(0, pdfRowHeight, "No records found")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render pdf: %w", err)
	}
	utils.LogFields(s.RequestID, "export", "pdf", "table", sheet.Name, "rows", len(sheet.Rows))
	return buf.Bytes(), s.filename(sheet, "pdf"), nil
}

// columnWidths shares the printable width by the longest text of each column.
func columnWidths(sheet table.Sheet, total float64) []float64 {
	n := len(sheet.Headers)
	if n == 0 {
		return nil
	}
	weights := make([]float64, n)
	sum := 0.0
	for i, h := range sheet.Headers {
		longest := len(h)
		for _, row := range sheet.Rows {
			if i < len(row) && len(row[i]) > longest {
				longest = len(row[i])
			}
		}
		weights[i] = float64(min(max(longest, 6), 40))
		sum += weights[i]
	}
	out := make([]float64, n)
	for i, w := range weights {
		out[i] = total * w / sum
	}
	return out
}

// fit trims already translated single-byte text with an ellipsis until it fits width.
func fit(pdf *gofpdf.Fpdf, s string, width float64) string {
	limit := width - 2
	if pdf.GetStringWidth(s) <= limit {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > limit {
		s = s[:len(s)-1]
	}
	return s + "..."
}

func (s ExportService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s ExportService) filename(sheet table.Sheet, ext string) string {
	return fmt.Sprintf("%s_%s.%s", safeFilenamePart(sheet.Name), s.now().Format("20060102"), ext)
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "export"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
