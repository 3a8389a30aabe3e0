package models

import "time"

// Типы чатов, которые различает снимок диалогов.
const (
	ChatTypeUser    = "user"
	ChatTypeGroup   = "group"
	ChatTypeChannel = "channel"
)

// Chat — снимок одного диалога аккаунта на момент опроса Telegram.
// Используется командами .mychats/.exportchats и резервным копированием в БД.
type Chat struct {
	AccountID       int        `json:"account_id"`
	AccountName     string     `json:"account_name"`
	ChatID          int64      `json:"chat_id"`
	Title           string     `json:"title"`
	Username        string     `json:"username"`
	Type            string     `json:"type"` // user, group или channel
	UnreadCount     int        `json:"unread_count"`
	Participants    int        `json:"participants_count"`
	Archived        bool       `json:"archived"`
	Pinned          bool       `json:"pinned"`
	LastMessageDate *time.Time `json:"last_message_date"`
}

// MessageRecord — одна строка экспорта истории чата.
// Порядок полей совпадает с колонками CSV-файла.
type MessageRecord struct {
	ID        int       `json:"id"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
	Text      string    `json:"text"`
}
