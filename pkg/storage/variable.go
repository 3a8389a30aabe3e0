package storage

import "database/sql"

// SetVariable сохраняет пользовательскую переменную аккаунта (.setvar).
func (db *DB) SetVariable(accountID int, key, value string) error {
	_, err := db.Conn.Exec(
		`INSERT INTO variables (account_id, key, value, updated_at) VALUES ($1, $2, $3, NOW())
               ON CONFLICT (account_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		accountID, key, value,
	)
	return err
}

// GetVariable возвращает значение переменной и признак её существования (.getvar).
func (db *DB) GetVariable(accountID int, key string) (string, bool, error) {
	var value string
	err := db.Conn.QueryRow(
		"SELECT value FROM variables WHERE account_id = $1 AND key = $2",
		accountID, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}
