package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"receivecopy/internal/domain/receive"
)

// Ширины колонок в мм для A4 в альбомной ориентации
var pdfWidths = []float64{18, 22, 32, 40, 26, 26, 16, 24, 12, 20, 10, 10, 21}

// PDF строит ту же печатную форму в виде PDF (A4, альбомная).
func PDF(records []receive.Record, opts PrintOptions) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(false, 10)
	pdf.SetTitle(ReportTitle, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, ReportTitle, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, "Printed: "+printedDate(opts), "", 1, "C", false, 0, "")
	pdf.Ln(2)
	pdfHeader(pdf)

	pdf.SetFont("Arial", "", 7)
	for _, row := range printRows(records) {
		reply := row.ReplyNo
		if row.ReplyDate != "" {
			if reply != "" {
				reply += "\n"
			}
			reply += row.ReplyDate
		}

		cells := []string{
			row.ConsecutiveNo, row.Date, row.ToWhomAddressed, row.ShortSubject,
			row.FileAndSerial, row.CollectionNoTitle, row.FileNoInCollection,
			reply, row.ReminderNo, row.ReminderDate, row.StampRs, row.StampP, row.Remarks,
		}
		pdfRow(pdf, tr, cells)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// pdfHeader рисует двухстрочную шапку таблицы
func pdfHeader(pdf *gofpdf.Fpdf) {
	const h = 5.0
	pdf.SetFont("Arial", "B", 7)
	pdf.SetFillColor(242, 242, 242)

	x, y := pdf.GetX(), pdf.GetY()
	w := pdfWidths

	span := func(from, to int) float64 {
		var sum float64
		for _, v := range w[from:to] {
			sum += v
		}
		return sum
	}

	// первая строка: объединенные ячейки
	cx := x
	top := []struct {
		text string
		cols int
		rows int
	}{
		{"Consecutive No.", 1, 2},
		{"Date", 1, 2},
		{"To whom addressed", 1, 2},
		{"Short subject", 1, 2},
		{"Where the draft is placed", 3, 1},
		{"Reply received", 1, 2},
		{"Reminder", 2, 1},
		{"Value of Stamp", 2, 1},
		{"Remarks", 1, 2},
	}
	col := 0
	for _, c := range top {
		width := span(col, col+c.cols)
		pdf.SetXY(cx, y)
		pdf.CellFormat(width, h*float64(c.rows), c.text, "1", 0, "C", true, 0, "")
		cx += width
		col += c.cols
	}

	// вторая строка: подзаголовки
	sub := map[int]string{
		4: "File No. & Serial", 5: "Collection", 6: "File in coll.",
		8: "No.", 9: "Date", 10: "Rs.", 11: "P.",
	}
	cx = x
	for i, width := range w {
		if text, ok := sub[i]; ok {
			pdf.SetXY(cx, y+h)
			pdf.CellFormat(width, h, text, "1", 0, "C", true, 0, "")
		}
		cx += width
	}

	pdf.SetXY(x, y+2*h)
	pdf.SetFont("Arial", "", 7)
}

// pdfRow рисует строку с переносом текста; высота по самой длинной ячейке
func pdfRow(pdf *gofpdf.Fpdf, tr func(string) string, cells []string) {
	const lineH = 4.0

	maxLines := 1
	for i, c := range cells {
		lines := pdf.SplitLines([]byte(tr(c)), pdfWidths[i]-2)
		if len(lines) > maxLines {
			maxLines = len(lines)
		}
	}
	rowH := lineH * float64(maxLines)

	_, pageH := pdf.GetPageSize()
	left, _, _, bottom := pdf.GetMargins()
	if pdf.GetY()+rowH > pageH-bottom {
		pdf.AddPage()
		pdfHeader(pdf)
	}

	x, y := left, pdf.GetY()
	for i, c := range cells {
		width := pdfWidths[i]
		pdf.Rect(x, y, width, rowH, "D")
		pdf.SetXY(x, y)
		pdf.MultiCell(width, lineH, tr(c), "", "L", false)
		x += width
	}
	pdf.SetXY(left, y+rowH)
}
