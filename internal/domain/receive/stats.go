package receive

// Stats - счетчики по статусам
type Stats struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Success int `json:"success"`
}

// CountStats считает записи по статусу без учета регистра.
// Устаревшие статусы входят только в Total.
func CountStats(records []Record) Stats {
	st := Stats{Total: len(records)}
	for _, r := range records {
		switch {
		case r.Action.Is(ActionPending):
			st.Pending++
		case r.Action.Is(ActionSuccess):
			st.Success++
		}
	}
	return st
}
