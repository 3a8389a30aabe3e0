package models

import "time"

// AccountSession хранит сериализованную сессию Telegram для аккаунта.
// На аккаунт приходится не более одной записи.
type AccountSession struct {
	ID       int       `json:"id"`
	DateTime time.Time `json:"date_time"` // Время последнего сохранения сессии
	Account  int       `json:"account"`   // ID аккаунта, которому принадлежит сессия
	DataJSON string    `json:"data_json"` // Содержимое сессии в формате JSON
}
