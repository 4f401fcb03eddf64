package receive

import (
	"receivecopy/internal/domain/receive"
)

// ListQuery - общие параметры выборки страницы для списка и печати
type ListQuery struct {
	Q        string `query:"q" doc:"Строка поиска (без учета регистра)"`
	From     string `query:"from" doc:"Начало диапазона дат, YYYY-MM-DD" example:"2024-01-01"`
	To       string `query:"to" doc:"Конец диапазона дат включительно, YYYY-MM-DD" example:"2024-12-31"`
	Page     int    `query:"page" minimum:"0" doc:"Номер страницы, с 1"`
	PageSize int    `query:"page_size" minimum:"-1" default:"-1" doc:"Размер страницы: 0 - все записи, -1 - по умолчанию"`
	Last     bool   `query:"last" doc:"Открыть последнюю страницу"`
}

type listInput struct {
	ListQuery
}

type listOutput struct {
	Body receive.ListResponse
}

type findInput struct {
	ID string `path:"id" doc:"ID записи"`
}

type findOutput struct {
	Body receive.Record
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	ConsecutiveNo      string         `json:"consecutiveNo,omitempty" doc:"Порядковый номер" example:"101"`
	Date               string         `json:"date,omitempty" doc:"Дата поступления, YYYY-MM-DD" example:"2024-03-01"`
	ToWhomAddressed    string         `json:"toWhomAddressed,omitempty" doc:"Кому адресовано"`
	ShortSubject       string         `json:"shortSubject,omitempty" doc:"Краткое содержание"`
	FileNo             string         `json:"fileNo,omitempty" doc:"Номер дела"`
	SerialNoOfLetter   string         `json:"serialNoOfLetter,omitempty" doc:"Порядковый номер письма в деле"`
	CollectionNoTitle  string         `json:"collectionNoTitle,omitempty" doc:"Номер и название коллекции"`
	FileNoInCollection string         `json:"fileNoInCollection,omitempty" doc:"Номер дела в коллекции"`
	ReplyNo            string         `json:"replyNo,omitempty" doc:"Номер ответа"`
	ReplyDate          string         `json:"replyDate,omitempty" doc:"Дата ответа"`
	ReminderNo         string         `json:"reminderNo,omitempty" doc:"Номер напоминания"`
	ReminderDate       string         `json:"reminderDate,omitempty" doc:"Дата напоминания"`
	StampRs            string         `json:"stampRs,omitempty" doc:"Стоимость марки, рупии"`
	StampP             string         `json:"stampP,omitempty" doc:"Стоимость марки, пайсы"`
	Remarks            string         `json:"remarks,omitempty" doc:"Примечания"`
	Action             receive.Action `json:"action,omitempty"`
}

func (r createRequest) record() receive.Record {
	return receive.Record{
		ConsecutiveNo:      r.ConsecutiveNo,
		Date:               r.Date,
		ToWhomAddressed:    r.ToWhomAddressed,
		ShortSubject:       r.ShortSubject,
		FileNo:             r.FileNo,
		SerialNoOfLetter:   r.SerialNoOfLetter,
		CollectionNoTitle:  r.CollectionNoTitle,
		FileNoInCollection: r.FileNoInCollection,
		ReplyNo:            r.ReplyNo,
		ReplyDate:          r.ReplyDate,
		ReminderNo:         r.ReminderNo,
		ReminderDate:       r.ReminderDate,
		StampRs:            r.StampRs,
		StampP:             r.StampP,
		Remarks:            r.Remarks,
		Action:             r.Action,
	}
}

type createOutput struct {
	Body receive.CreateResponse
}

type updateInput struct {
	ID   string `path:"id" doc:"ID записи"`
	Body receive.Patch
}

type updateOutput struct {
	Body receive.Record
}

type importInput struct {
	RawBody []byte `contentType:"application/json" doc:"JSON-массив записей"`
}

type importOutput struct {
	Body importResponse
}

type importResponse struct {
	Imported int `json:"imported" doc:"Сколько записей загружено"`
}

type exportInput struct {
	IfNoneMatch string `header:"If-None-Match"`
}

type fileOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	ETag               string `header:"ETag"`
	Body               []byte
}

type printInput struct {
	ListQuery
	Format string `query:"format" enum:"html,pdf" default:"html" doc:"Формат печатной формы"`
	Scope  string `query:"scope" enum:"page,all" default:"page" doc:"Текущая страница или все отобранные записи"`
}

type statsOutput struct {
	Body receive.Stats
}

type nextNumberOutput struct {
	Body nextNumberResponse
}

type nextNumberResponse struct {
	ConsecutiveNo string `json:"consecutiveNo" doc:"Предлагаемый порядковый номер"`
}
