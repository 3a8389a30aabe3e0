package storage

import (
	"log"

	"kira_go/models"
)

// SaveChats сохраняет снимок диалогов аккаунта (команда .backupchats).
// Повторный запуск обновляет уже известные чаты вместо создания дубликатов.
func (db *DB) SaveChats(accountID int, chats []models.Chat) (int, error) {
	query := `
              INSERT INTO chats (account_id, chat_id, title, username, type, unread_count,
                                 participants_count, archived, pinned, last_message_date, synced_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
              ON CONFLICT (account_id, chat_id) DO UPDATE SET
                      title = EXCLUDED.title,
                      username = EXCLUDED.username,
                      type = EXCLUDED.type,
                      unread_count = EXCLUDED.unread_count,
                      participants_count = EXCLUDED.participants_count,
                      archived = EXCLUDED.archived,
                      pinned = EXCLUDED.pinned,
                      last_message_date = EXCLUDED.last_message_date,
                      synced_at = NOW()
       `
	saved := 0
	for _, ch := range chats {
		if _, err := db.Conn.Exec(
			query,
			accountID,
			ch.ChatID,
			ch.Title,
			ch.Username,
			ch.Type,
			ch.UnreadCount,
			ch.Participants,
			ch.Archived,
			ch.Pinned,
			ch.LastMessageDate,
		); err != nil {
			log.Printf("[DB WARN] Не удалось сохранить чат %d: %v", ch.ChatID, err)
			continue
		}
		saved++
	}
	log.Printf("[DB INFO] Сохранено %d чатов для аккаунта %d", saved, accountID)
	return saved, nil
}

// GetChatsByAccount возвращает сохранённые чаты аккаунта для выгрузки через API.
func (db *DB) GetChatsByAccount(accountID int) ([]models.Chat, error) {
	rows, err := db.Conn.Query(`
              SELECT account_id, chat_id, title, username, type, unread_count,
                     participants_count, archived, pinned, last_message_date
              FROM chats WHERE account_id = $1 ORDER BY chat_id`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chats []models.Chat
	for rows.Next() {
		var ch models.Chat
		if err := rows.Scan(
			&ch.AccountID,
			&ch.ChatID,
			&ch.Title,
			&ch.Username,
			&ch.Type,
			&ch.UnreadCount,
			&ch.Participants,
			&ch.Archived,
			&ch.Pinned,
			&ch.LastMessageDate,
		); err != nil {
			return nil, err
		}
		chats = append(chats, ch)
	}
	return chats, rows.Err()
}

// CountChats возвращает число сохранённых чатов аккаунта.
func (db *DB) CountChats(accountID int) (int, error) {
	var n int
	err := db.Conn.QueryRow("SELECT COUNT(*) FROM chats WHERE account_id = $1", accountID).Scan(&n)
	return n, err
}
