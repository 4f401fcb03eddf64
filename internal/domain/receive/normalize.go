package receive

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// text принимает из JSON строку, число, bool или null и хранит строку.
// Старые выгрузки содержат stampRs/stampP числами.
type text string

func (t *text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = text(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		// false в JS-версии считался пустым значением
		if b {
			*t = "true"
		} else {
			*t = ""
		}
	case '{', '[':
		*t = ""
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		if f, err := n.Float64(); err == nil && f == 0 {
			*t = ""
			return nil
		}
		*t = text(n.String())
	}
	return nil
}

// rawRecord - запись в исходном (возможно устаревшем) формате
type rawRecord struct {
	ID                 text `json:"id"`
	SlNo               text `json:"slNo"`
	ConsecutiveNo      text `json:"consecutiveNo"`
	Action             text `json:"action"`
	Status             text `json:"status"`
	Date               text `json:"date"`
	Subject            text `json:"subject"`
	ShortSubject       text `json:"shortSubject"`
	ToWhomAddressed    text `json:"toWhomAddressed"`
	FileNo             text `json:"fileNo"`
	SerialNoOfLetter   text `json:"serialNoOfLetter"`
	CollectionNoTitle  text `json:"collectionNoTitle"`
	FileNoInCollection text `json:"fileNoInCollection"`
	ReplyNo            text `json:"replyNo"`
	ReplyDate          text `json:"replyDate"`
	ReminderNo         text `json:"reminderNo"`
	ReminderDate       text `json:"reminderDate"`
	StampRs            text `json:"stampRs"`
	StampP             text `json:"stampP"`
	Remarks            text `json:"remarks"`
}

func firstOf(values ...text) string {
	for _, v := range values {
		if v != "" {
			return string(v)
		}
	}
	return ""
}

func (r rawRecord) toRecord(newID func() string) Record {
	rec := Record{
		ID:                 string(r.ID),
		ConsecutiveNo:      firstOf(r.ConsecutiveNo, r.SlNo),
		Date:               string(r.Date),
		ToWhomAddressed:    string(r.ToWhomAddressed),
		ShortSubject:       firstOf(r.ShortSubject, r.Subject),
		FileNo:             string(r.FileNo),
		SerialNoOfLetter:   string(r.SerialNoOfLetter),
		CollectionNoTitle:  string(r.CollectionNoTitle),
		FileNoInCollection: string(r.FileNoInCollection),
		ReplyNo:            string(r.ReplyNo),
		ReplyDate:          string(r.ReplyDate),
		ReminderNo:         string(r.ReminderNo),
		ReminderDate:       string(r.ReminderDate),
		StampRs:            string(r.StampRs),
		StampP:             string(r.StampP),
		Remarks:            string(r.Remarks),
		Action:             Action(firstOf(r.Action, r.Status)),
	}
	if strings.TrimSpace(rec.ID) == "" {
		rec.ID = newID()
	}
	rec.mirror()
	return rec
}

// Decode разбирает JSON-массив записей и нормализует каждую.
// Если верхний уровень не массив - ErrMalformedData.
func Decode(data []byte, newID func() string) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected JSON array", ErrMalformedData)
	}

	var raws []rawRecord
	if err := json.Unmarshal(trimmed, &raws); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}

	records := make([]Record, len(raws))
	for i, raw := range raws {
		records[i] = raw.toRecord(newID)
	}
	return records, nil
}

// Normalize приводит уже разобранные записи к полной форме:
// разрешает устаревшие поля, генерирует недостающие id.
func Normalize(records []Record, newID func() string) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		if r.ConsecutiveNo == "" {
			r.ConsecutiveNo = r.SlNo
		}
		if r.ShortSubject == "" {
			r.ShortSubject = r.Subject
		}
		if strings.TrimSpace(r.ID) == "" {
			r.ID = newID()
		}
		r.mirror()
		out[i] = r
	}
	return out
}

// NextConsecutiveNo предлагает следующий номер: максимум числовых номеров + 1.
// Уникальность не проверяется.
func NextConsecutiveNo(records []Record) string {
	maxNo := 0
	for _, r := range records {
		n, err := strconv.Atoi(strings.TrimSpace(r.ConsecutiveNo))
		if err != nil {
			continue
		}
		if n > maxNo {
			maxNo = n
		}
	}
	return strconv.Itoa(maxNo + 1)
}
