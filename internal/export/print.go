package export

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"receivecopy/internal/domain/receive"
)

const (
	ReportTitle      = "Receive Copy Report"
	PrintedDateStyle = "01/02/2006"
)

// PrintOptions - параметры печатной формы
type PrintOptions struct {
	Printed time.Time
}

// printRow - строка печатной формы с отформатированными датами
type printRow struct {
	ConsecutiveNo      string
	Date               string
	ToWhomAddressed    string
	ShortSubject       string
	FileAndSerial      string
	CollectionNoTitle  string
	FileNoInCollection string
	ReplyNo            string
	ReplyDate          string
	ReminderNo         string
	ReminderDate       string
	StampRs            string
	StampP             string
	Remarks            string
}

func printRows(records []receive.Record) []printRow {
	rows := make([]printRow, len(records))
	for i, r := range records {
		rows[i] = printRow{
			ConsecutiveNo:      r.ConsecutiveNo,
			Date:               receive.FormatDate(r.Date, receive.LongDateLayout),
			ToWhomAddressed:    r.ToWhomAddressed,
			ShortSubject:       r.ShortSubject,
			FileAndSerial:      r.FileAndSerial(),
			CollectionNoTitle:  r.CollectionNoTitle,
			FileNoInCollection: r.FileNoInCollection,
			ReplyNo:            r.ReplyNo,
			ReplyDate:          receive.FormatDate(r.ReplyDate, receive.LongDateLayout),
			ReminderNo:         r.ReminderNo,
			ReminderDate:       receive.FormatDate(r.ReminderDate, receive.LongDateLayout),
			StampRs:            r.StampRs,
			StampP:             r.StampP,
			Remarks:            r.Remarks,
		}
	}
	return rows
}

var printTemplate = template.Must(template.New("print").Parse(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <style>
      body { font-family: Arial, sans-serif; color: #333; margin: 10px; }
      .print-header { text-align:center; margin-bottom:10px; }
      table { width:100%; border-collapse:collapse; font-size:12px; }
      th, td { border:1px solid #bbb; padding:8px; }
      th { background:#f2f2f2; font-weight:700; text-align:center; }
      td { text-align:center; }
      td.left { text-align:left; }
      .reply-date { font-size:0.9em; color:#555; }
      @page { margin: 1cm; size: auto; }
    </style>
  </head>
  <body>
    <div class="print-header">
      <h1>{{.Title}}</h1>
      <div>Printed: {{.Printed}}</div>
    </div>
    <table>
      <thead>
        <tr>
          <th rowspan="2">Consecutive No.</th>
          <th rowspan="2">Date</th>
          <th rowspan="2">To whom addressed</th>
          <th rowspan="2">Short subject</th>
          <th colspan="3">Where the draft is placed</th>
          <th rowspan="2">No. and date of reply received</th>
          <th colspan="2">Reminder</th>
          <th colspan="2">Value of Stamp</th>
          <th rowspan="2">Remarks</th>
        </tr>
        <tr>
          <th>File No. &amp; Serial No. of letter of file</th>
          <th>No. &amp; title of the collection</th>
          <th>No. of file within the collection</th>
          <th>No.</th>
          <th>Date</th>
          <th>Rs.</th>
          <th>P.</th>
        </tr>
      </thead>
      <tbody>
{{- range .Rows}}
        <tr>
          <td>{{.ConsecutiveNo}}</td>
          <td>{{.Date}}</td>
          <td class="left">{{.ToWhomAddressed}}</td>
          <td class="left">{{.ShortSubject}}</td>
          <td class="left">{{.FileAndSerial}}</td>
          <td class="left">{{.CollectionNoTitle}}</td>
          <td>{{.FileNoInCollection}}</td>
          <td class="left">
            {{- if .ReplyNo}}<div>{{.ReplyNo}}</div>{{end}}
            {{- if .ReplyDate}}<div class="reply-date">{{.ReplyDate}}</div>{{end -}}
          </td>
          <td>{{.ReminderNo}}</td>
          <td>{{.ReminderDate}}</td>
          <td>{{.StampRs}}</td>
          <td>{{.StampP}}</td>
          <td class="left">{{.Remarks}}</td>
        </tr>
{{- end}}
      </tbody>
    </table>
  </body>
</html>
`))

// HTML строит самостоятельную печатную страницу.
func HTML(records []receive.Record, opts PrintOptions) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	data := struct {
		Title   string
		Printed string
		Rows    []printRow
	}{
		Title:   ReportTitle,
		Printed: printedDate(opts),
		Rows:    printRows(records),
	}

	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render print view: %w", err)
	}
	return buf.Bytes(), nil
}

func printedDate(opts PrintOptions) string {
	printed := opts.Printed
	if printed.IsZero() {
		printed = time.Now()
	}
	return printed.Format(PrintedDateStyle)
}
