package storage

import (
	"fmt"

	"kira_go/models"
)

func (db *DB) CreateProxy(p models.Proxy) (*models.Proxy, error) {
	query := `
               INSERT INTO proxy (ip, port, login, password, type, ipv6, is_active)
               VALUES ($1, $2, $3, $4, $5, $6, $7)
               RETURNING id, account_count
       `
	err := db.Conn.QueryRow(query, p.IP, p.Port, p.Login, p.Password, p.Type, p.IPv6, p.IsActive).Scan(&p.ID, &p.AccountsCount)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (db *DB) GetProxyByID(id int) (*models.Proxy, error) {
	var p models.Proxy
	query := `
               SELECT id, ip, port, login, password, type, ipv6, account_count, is_active
               FROM proxy
               WHERE id = $1
       `
	err := db.Conn.QueryRow(query, id).Scan(
		&p.ID,
		&p.IP,
		&p.Port,
		&p.Login,
		&p.Password,
		&p.Type,
		&p.IPv6,
		&p.AccountsCount,
		&p.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// AssignProxyToAccount привязывает прокси к аккаунту с учётом лимита аккаунтов на прокси.
func (db *DB) AssignProxyToAccount(accountID, proxyID int, limit int) error {
	var count int
	if err := db.Conn.QueryRow("SELECT account_count FROM proxy WHERE id = $1", proxyID).Scan(&count); err != nil {
		return err
	}
	if limit > 0 && count >= limit {
		return fmt.Errorf("proxy limit reached")
	}
	_, err := db.Conn.Exec("UPDATE accounts SET proxy_id = $1 WHERE id = $2", proxyID, accountID)
	return err
}
