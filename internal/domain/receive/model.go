package receive

import (
	"fmt"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// Action - статус обработки входящего письма
type Action string

const (
	ActionPending Action = "pending"
	ActionSuccess Action = "success"
)

func (Action) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type:        "string",
		Description: "Статус записи: pending, success (устаревшие значения допускаются)",
		Examples:    []any{ActionPending},
	}
}

// Known сообщает, является ли статус одним из штатных значений.
func (a Action) Known() bool {
	switch a.normalized() {
	case ActionPending, ActionSuccess:
		return true
	}
	return false
}

// Is сравнивает статусы без учета регистра.
func (a Action) Is(other Action) bool {
	return a.normalized() == other.normalized()
}

func (a Action) String() string {
	return string(a)
}

func (a Action) normalized() Action {
	return Action(strings.ToLower(strings.TrimSpace(string(a))))
}

// Record - одна запись журнала входящей корреспонденции.
// Пустая строка во всех полях означает "не задано".
type Record struct {
	ID                 string `json:"id"`
	ConsecutiveNo      string `json:"consecutiveNo"`
	Date               string `json:"date"`
	ToWhomAddressed    string `json:"toWhomAddressed"`
	ShortSubject       string `json:"shortSubject"`
	FileNo             string `json:"fileNo"`
	SerialNoOfLetter   string `json:"serialNoOfLetter"`
	CollectionNoTitle  string `json:"collectionNoTitle"`
	FileNoInCollection string `json:"fileNoInCollection"`
	ReplyNo            string `json:"replyNo"`
	ReplyDate          string `json:"replyDate"`
	ReminderNo         string `json:"reminderNo"`
	ReminderDate       string `json:"reminderDate"`
	StampRs            string `json:"stampRs"`
	StampP             string `json:"stampP"`
	Remarks            string `json:"remarks"`
	Action             Action `json:"action"`

	// Устаревшие поля старых выгрузок, зеркалируют ConsecutiveNo и ShortSubject
	SlNo    string `json:"slNo"`
	Subject string `json:"subject"`
}

// FileAndSerial склеивает номер дела и порядковый номер письма через " / ".
func (r Record) FileAndSerial() string {
	parts := make([]string, 0, 2)
	if r.FileNo != "" {
		parts = append(parts, r.FileNo)
	}
	if r.SerialNoOfLetter != "" {
		parts = append(parts, r.SerialNoOfLetter)
	}
	return strings.Join(parts, " / ")
}

// mirror синхронизирует устаревшие поля с актуальными.
func (r *Record) mirror() {
	r.SlNo = r.ConsecutiveNo
	r.Subject = r.ShortSubject
}

// Patch - частичное обновление записи. Nil-поле не меняется.
// ID и ConsecutiveNo не редактируются.
type Patch struct {
	Date               *string `json:"date,omitempty"`
	ToWhomAddressed    *string `json:"toWhomAddressed,omitempty"`
	ShortSubject       *string `json:"shortSubject,omitempty"`
	FileNo             *string `json:"fileNo,omitempty"`
	SerialNoOfLetter   *string `json:"serialNoOfLetter,omitempty"`
	CollectionNoTitle  *string `json:"collectionNoTitle,omitempty"`
	FileNoInCollection *string `json:"fileNoInCollection,omitempty"`
	ReplyNo            *string `json:"replyNo,omitempty"`
	ReplyDate          *string `json:"replyDate,omitempty"`
	ReminderNo         *string `json:"reminderNo,omitempty"`
	ReminderDate       *string `json:"reminderDate,omitempty"`
	StampRs            *string `json:"stampRs,omitempty"`
	StampP             *string `json:"stampP,omitempty"`
	Remarks            *string `json:"remarks,omitempty"`
	Action             *Action `json:"action,omitempty"`
}

// Empty сообщает, что патч ничего не меняет.
func (p Patch) Empty() bool {
	return p == Patch{}
}

// Apply возвращает копию записи с примененным патчем.
func (p Patch) Apply(r Record) Record {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}

	set(&r.Date, p.Date)
	set(&r.ToWhomAddressed, p.ToWhomAddressed)
	set(&r.ShortSubject, p.ShortSubject)
	set(&r.FileNo, p.FileNo)
	set(&r.SerialNoOfLetter, p.SerialNoOfLetter)
	set(&r.CollectionNoTitle, p.CollectionNoTitle)
	set(&r.FileNoInCollection, p.FileNoInCollection)
	set(&r.ReplyNo, p.ReplyNo)
	set(&r.ReplyDate, p.ReplyDate)
	set(&r.ReminderNo, p.ReminderNo)
	set(&r.ReminderDate, p.ReminderDate)
	set(&r.StampRs, p.StampRs)
	set(&r.StampP, p.StampP)
	set(&r.Remarks, p.Remarks)
	if p.Action != nil {
		r.Action = Action(strings.TrimSpace(string(*p.Action)))
	}

	r.mirror()
	return r
}

// Field - описание обязательного поля для валидации
type Field struct {
	Name    string
	Label   string
	get     func(Record) string
	patched func(Patch) *string
}

// Обязательные поля формы создания записи
var (
	FieldConsecutiveNo   = Field{Name: "consecutiveNo", Label: "Consecutive No", get: func(r Record) string { return r.ConsecutiveNo }}
	FieldDate            = Field{Name: "date", Label: "Date", get: func(r Record) string { return r.Date }, patched: func(p Patch) *string { return p.Date }}
	FieldToWhomAddressed = Field{Name: "toWhomAddressed", Label: "To Whom Addressed", get: func(r Record) string { return r.ToWhomAddressed }, patched: func(p Patch) *string { return p.ToWhomAddressed }}
	FieldShortSubject    = Field{Name: "shortSubject", Label: "Short Subject", get: func(r Record) string { return r.ShortSubject }, patched: func(p Patch) *string { return p.ShortSubject }}
)

// DefaultRequired - набор обязательных полей полной формы
var DefaultRequired = []Field{FieldConsecutiveNo, FieldDate, FieldToWhomAddressed, FieldShortSubject}

// Validate проверяет обязательные поля и формат даты.
func Validate(r Record, required []Field) error {
	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.get(r)) == "" {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	if r.Date != "" {
		if _, ok := ParseDate(r.Date); !ok {
			return &ValidationError{
				Fields: []string{FieldDate.Name},
				Reason: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", r.Date),
			}
		}
	}

	return nil
}

// ValidatePatch проверяет только поля, которые патч меняет:
// обязательное поле нельзя очистить, дата должна разбираться.
// Незаполненные поля старых записей не мешают правке.
func ValidatePatch(p Patch, required []Field) error {
	var missing []string
	for _, f := range required {
		if f.patched == nil {
			continue
		}
		if v := f.patched(p); v != nil && strings.TrimSpace(*v) == "" {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	if p.Date != nil {
		if d := strings.TrimSpace(*p.Date); d != "" {
			if _, ok := ParseDate(d); !ok {
				return &ValidationError{
					Fields: []string{FieldDate.Name},
					Reason: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", d),
				}
			}
		}
	}

	return nil
}
