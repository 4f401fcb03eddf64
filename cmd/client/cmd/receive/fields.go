package receive

import (
	"github.com/spf13/cobra"

	"receivecopy/internal/domain/receive"
)

// field связывает флаг команды с полем записи
type field struct {
	flag  string
	usage string
	get   func(*receive.Record) *string
}

var editableFields = []field{
	{flag: "date", usage: "дата поступления (YYYY-MM-DD)", get: func(r *receive.Record) *string { return &r.Date }},
	{flag: "to", usage: "кому адресовано", get: func(r *receive.Record) *string { return &r.ToWhomAddressed }},
	{flag: "subject", usage: "краткое содержание", get: func(r *receive.Record) *string { return &r.ShortSubject }},
	{flag: "file-no", usage: "номер дела", get: func(r *receive.Record) *string { return &r.FileNo }},
	{flag: "serial-no", usage: "порядковый номер письма в деле", get: func(r *receive.Record) *string { return &r.SerialNoOfLetter }},
	{flag: "collection", usage: "номер и название коллекции", get: func(r *receive.Record) *string { return &r.CollectionNoTitle }},
	{flag: "file-in-collection", usage: "номер дела в коллекции", get: func(r *receive.Record) *string { return &r.FileNoInCollection }},
	{flag: "reply-no", usage: "номер ответа", get: func(r *receive.Record) *string { return &r.ReplyNo }},
	{flag: "reply-date", usage: "дата ответа", get: func(r *receive.Record) *string { return &r.ReplyDate }},
	{flag: "reminder-no", usage: "номер напоминания", get: func(r *receive.Record) *string { return &r.ReminderNo }},
	{flag: "reminder-date", usage: "дата напоминания", get: func(r *receive.Record) *string { return &r.ReminderDate }},
	{flag: "stamp-rs", usage: "стоимость марки, рупии", get: func(r *receive.Record) *string { return &r.StampRs }},
	{flag: "stamp-p", usage: "стоимость марки, пайсы", get: func(r *receive.Record) *string { return &r.StampP }},
	{flag: "remarks", usage: "примечания", get: func(r *receive.Record) *string { return &r.Remarks }},
}

// bindFields регистрирует флаги полей; значения пишутся прямо в rec
func bindFields(cmd *cobra.Command, rec *receive.Record) {
	for _, f := range editableFields {
		cmd.Flags().StringVar(f.get(rec), f.flag, "", f.usage)
	}
}

// patchFromFlags собирает патч только из явно заданных флагов
func patchFromFlags(cmd *cobra.Command, rec *receive.Record, action string) receive.Patch {
	values := map[string]*string{}
	for _, f := range editableFields {
		if cmd.Flags().Changed(f.flag) {
			v := *f.get(rec)
			values[f.flag] = &v
		}
	}

	patch := receive.Patch{
		Date:               values["date"],
		ToWhomAddressed:    values["to"],
		ShortSubject:       values["subject"],
		FileNo:             values["file-no"],
		SerialNoOfLetter:   values["serial-no"],
		CollectionNoTitle:  values["collection"],
		FileNoInCollection: values["file-in-collection"],
		ReplyNo:            values["reply-no"],
		ReplyDate:          values["reply-date"],
		ReminderNo:         values["reminder-no"],
		ReminderDate:       values["reminder-date"],
		StampRs:            values["stamp-rs"],
		StampP:             values["stamp-p"],
		Remarks:            values["remarks"],
	}
	if cmd.Flags().Changed("action") {
		a := receive.Action(action)
		patch.Action = &a
	}
	return patch
}
