package export

import (
	"strings"

	"receivecopy/internal/domain/receive"
)

// CSVHeader - колонки выгрузки в порядке таблицы
var CSVHeader = []string{
	"Consecutive No",
	"Date",
	"To whom addressed",
	"Short subject",
	"File No & Serial",
	"Collection (No & Title)",
	"File No in Collection",
	"Reply No",
	"Reply Date",
	"Reminder No",
	"Reminder Date",
	"Stamp Rs",
	"Stamp P",
	"Remarks",
	"Action",
}

func csvRow(r receive.Record) []string {
	return []string{
		r.ConsecutiveNo,
		r.Date,
		r.ToWhomAddressed,
		r.ShortSubject,
		r.FileAndSerial(),
		r.CollectionNoTitle,
		r.FileNoInCollection,
		r.ReplyNo,
		r.ReplyDate,
		r.ReminderNo,
		r.ReminderDate,
		r.StampRs,
		r.StampP,
		r.Remarks,
		string(r.Action),
	}
}

// CSV выгружает записи: каждое поле в кавычках, кавычки удваиваются,
// строки разделены "\n" без завершающего перевода строки.
func CSV(records []receive.Record) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	var b strings.Builder
	writeCSVLine(&b, CSVHeader)
	for _, r := range records {
		b.WriteByte('\n')
		writeCSVLine(&b, csvRow(r))
	}
	return []byte(b.String()), nil
}

func writeCSVLine(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
}
