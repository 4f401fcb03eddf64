package health

// Input - пустой запрос проверки состояния
type Input struct{}

// Output - ответ проверки состояния
type Output struct {
	Body Response
}

// Response - состояние сервиса: число записей и доступность кэша
type Response struct {
	Status  string `json:"status" example:"OK" enum:"OK,DEGRADED" doc:"OK или DEGRADED, если кэш недоступен"`
	Records int    `json:"records" example:"42" doc:"Число записей в журнале"`
	Cache   string `json:"cache" example:"ok" enum:"ok,unavailable" doc:"Доступность долговременного кэша"`
	Error   string `json:"error,omitempty" doc:"Причина недоступности кэша"`
}
