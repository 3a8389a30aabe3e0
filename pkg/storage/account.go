package storage

import (
	"database/sql"
	"log"
	"time"

	"kira_go/models"
)

// CreateAccount записывает аккаунт в БД, чтобы в дальнейшем
// не приходилось заново вводить параметры.
func (db *DB) CreateAccount(account models.Account) (*models.Account, error) {
	query := `
              INSERT INTO accounts (phone, api_id, api_hash, name, phone_code_hash, two_fa_password, proxy_id)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              RETURNING id
       `
	err := db.Conn.QueryRow(
		query,
		account.Phone,
		account.ApiID,
		account.ApiHash,
		account.Name,
		account.PhoneCodeHash,
		account.TwoFAPassword,
		account.ProxyID,
	).Scan(&account.ID)
	if err != nil {
		log.Printf("[DB ERROR] Ошибка при создании аккаунта: %v", err)
		return nil, err
	}

	log.Printf("[DB INFO] Аккаунт создан с ID=%d", account.ID)
	return &account, nil
}

const accountColumns = `
              SELECT a.id, a.phone, a.api_id, a.api_hash, a.name, a.phone_code_hash,
                     a.two_fa_password, a.is_authorized, a.proxy_id,
                     p.id, p.ip, p.port, p.login, p.password, p.type, p.ipv6, p.account_count, p.is_active
              FROM accounts a
              LEFT JOIN proxy p ON a.proxy_id = p.id
       `

// scanAccount разбирает строку выборки с LEFT JOIN на прокси.
// Поля прокси допускают NULL, поэтому читаем их через Null-типы.
func scanAccount(row *sql.Row) (*models.Account, error) {
	var account models.Account
	var (
		proxyID       sql.NullInt64
		proxyIP       sql.NullString
		proxyPort     sql.NullInt64
		proxyLogin    sql.NullString
		proxyPassword sql.NullString
		proxyType     sql.NullString
		proxyIPv6     sql.NullString
		proxyCount    sql.NullInt64
		proxyActive   sql.NullBool
	)

	err := row.Scan(
		&account.ID,
		&account.Phone,
		&account.ApiID,
		&account.ApiHash,
		&account.Name,
		&account.PhoneCodeHash,
		&account.TwoFAPassword,
		&account.IsAuthorized,
		&account.ProxyID,
		&proxyID,
		&proxyIP,
		&proxyPort,
		&proxyLogin,
		&proxyPassword,
		&proxyType,
		&proxyIPv6,
		&proxyCount,
		&proxyActive,
	)
	if err != nil {
		return nil, err
	}

	if proxyID.Valid {
		account.Proxy = &models.Proxy{
			ID:            int(proxyID.Int64),
			IP:            proxyIP.String,
			Port:          int(proxyPort.Int64),
			Login:         proxyLogin.String,
			Password:      proxyPassword.String,
			Type:          proxyType.String,
			IPv6:          proxyIPv6.String,
			AccountsCount: int(proxyCount.Int64),
			IsActive:      proxyActive,
		}
	}
	return &account, nil
}

func (db *DB) GetAccountByID(id int) (*models.Account, error) {
	return scanAccount(db.Conn.QueryRow(accountColumns+" WHERE a.id = $1", id))
}

func (db *DB) GetAccountByPhone(phone string) (*models.Account, error) {
	return scanAccount(db.Conn.QueryRow(accountColumns+" WHERE a.phone = $1", phone))
}

// GetLastAccount возвращает последний созданный аккаунт.
// Используется при подтверждении кода, когда ID клиенту неизвестен.
func (db *DB) GetLastAccount() (*models.Account, error) {
	return scanAccount(db.Conn.QueryRow(accountColumns + " ORDER BY a.id DESC LIMIT 1"))
}

// GetAuthorizedAccounts возвращает все авторизованные аккаунты.
func (db *DB) GetAuthorizedAccounts() ([]models.Account, error) {
	rows, err := db.Conn.Query(accountColumns + " WHERE a.is_authorized = true ORDER BY a.id")
	if err != nil {
		log.Printf("[DB ERROR] Не удалось получить авторизованные аккаунты: %v", err)
		return nil, err
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var account models.Account
		var (
			proxyID       sql.NullInt64
			proxyIP       sql.NullString
			proxyPort     sql.NullInt64
			proxyLogin    sql.NullString
			proxyPassword sql.NullString
			proxyType     sql.NullString
			proxyIPv6     sql.NullString
			proxyCount    sql.NullInt64
			proxyActive   sql.NullBool
		)
		if err := rows.Scan(
			&account.ID,
			&account.Phone,
			&account.ApiID,
			&account.ApiHash,
			&account.Name,
			&account.PhoneCodeHash,
			&account.TwoFAPassword,
			&account.IsAuthorized,
			&account.ProxyID,
			&proxyID,
			&proxyIP,
			&proxyPort,
			&proxyLogin,
			&proxyPassword,
			&proxyType,
			&proxyIPv6,
			&proxyCount,
			&proxyActive,
		); err != nil {
			log.Printf("[DB WARN] Не удалось прочитать аккаунт: %v", err)
			continue // Пропускаем проблемные записи
		}
		if proxyID.Valid {
			account.Proxy = &models.Proxy{
				ID:            int(proxyID.Int64),
				IP:            proxyIP.String,
				Port:          int(proxyPort.Int64),
				Login:         proxyLogin.String,
				Password:      proxyPassword.String,
				Type:          proxyType.String,
				IPv6:          proxyIPv6.String,
				AccountsCount: int(proxyCount.Int64),
				IsActive:      proxyActive,
			}
		}
		accounts = append(accounts, account)
	}

	log.Printf("[DB INFO] Найдено %d авторизованных аккаунтов", len(accounts))
	return accounts, nil
}

func (db *DB) MarkAccountAsAuthorized(accountID int) error {
	_, err := db.Conn.Exec(
		"UPDATE accounts SET is_authorized = true WHERE id = $1",
		accountID,
	)
	return err
}

// UpdatePhoneCodeHash сохраняет хеш кода подтверждения между SendCode и SignIn.
func (db *DB) UpdatePhoneCodeHash(accountID int, hash string) error {
	_, err := db.Conn.Exec(
		"UPDATE accounts SET phone_code_hash = $1 WHERE id = $2",
		hash, accountID,
	)
	return err
}

// MarkFloodBan фиксирует время окончания флуд-бана для аккаунта.
func (db *DB) MarkFloodBan(accountID int, until time.Time) error {
	_, err := db.Conn.Exec(
		"UPDATE accounts SET floodwait_until = $1 WHERE id = $2",
		until, accountID,
	)
	return err
}
