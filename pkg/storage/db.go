package storage

import (
	"database/sql"

	_ "github.com/lib/pq"
)

type DB struct {
	Conn *sql.DB
}

func NewDB(conn *sql.DB) *DB {
	return &DB{Conn: conn}
}

// InitSchema создаёт таблицы, если их ещё нет.
// Сервис разворачивается одной командой, поэтому миграции держим прямо здесь.
func (db *DB) InitSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS proxy (
                        id SERIAL PRIMARY KEY,
                        ip TEXT NOT NULL,
                        port INTEGER NOT NULL,
                        login TEXT DEFAULT '',
                        password TEXT DEFAULT '',
                        type TEXT DEFAULT 'socks5',
                        ipv6 TEXT DEFAULT '',
                        account_count INTEGER DEFAULT 0,
                        is_active BOOLEAN DEFAULT TRUE
                )`,
		`CREATE TABLE IF NOT EXISTS accounts (
                        id SERIAL PRIMARY KEY,
                        phone TEXT NOT NULL UNIQUE,
                        api_id INTEGER NOT NULL,
                        api_hash TEXT NOT NULL,
                        name TEXT DEFAULT '',
                        phone_code_hash TEXT DEFAULT '',
                        two_fa_password TEXT DEFAULT '',
                        is_authorized BOOLEAN DEFAULT FALSE,
                        floodwait_until TIMESTAMP,
                        proxy_id INTEGER REFERENCES proxy(id)
                )`,
		`CREATE TABLE IF NOT EXISTS account_session (
                        id SERIAL PRIMARY KEY,
                        account INTEGER NOT NULL UNIQUE REFERENCES accounts(id),
                        data_json TEXT NOT NULL,
                        date_time TIMESTAMP DEFAULT NOW()
                )`,
		`CREATE TABLE IF NOT EXISTS chats (
                        account_id INTEGER NOT NULL REFERENCES accounts(id),
                        chat_id BIGINT NOT NULL,
                        title TEXT DEFAULT '',
                        username TEXT DEFAULT '',
                        type TEXT DEFAULT '',
                        unread_count INTEGER DEFAULT 0,
                        participants_count INTEGER DEFAULT 0,
                        archived BOOLEAN DEFAULT FALSE,
                        pinned BOOLEAN DEFAULT FALSE,
                        last_message_date TIMESTAMP,
                        synced_at TIMESTAMP DEFAULT NOW(),
                        PRIMARY KEY (account_id, chat_id)
                )`,
		`CREATE TABLE IF NOT EXISTS variables (
                        account_id INTEGER NOT NULL REFERENCES accounts(id),
                        key TEXT NOT NULL,
                        value TEXT NOT NULL,
                        updated_at TIMESTAMP DEFAULT NOW(),
                        PRIMARY KEY (account_id, key)
                )`,
	}
	for _, stmt := range statements {
		if _, err := db.Conn.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
