package models

import "time"

// Variable — пользовательская переменная команд .setvar/.getvar.
// Хранится в БД, чтобы переживать перезапуски бота.
type Variable struct {
	AccountID int       `json:"account_id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
