// Package telegram содержит общую обвязку над клиентом gotd:
// создание клиента с сессией в БД, работу с пирами, диалогами и историей.
package telegram

import (
	"database/sql"
	"fmt"
	"log"
	"math/rand"

	"go.uber.org/zap"
	"golang.org/x/net/proxy"

	"github.com/gotd/td/session"
	"github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/dcs"

	"kira_go/models"
)

// NewAccountClient создаёт клиента Telegram с хранилищем сессии в БД.
// Все параметры подключения аккаунта собираются здесь, чтобы модули
// не повторяли настройку прокси и сессий.
func NewAccountClient(apiID int, apiHash, phone string, p *models.Proxy, r *rand.Rand, db *sql.DB, accountID int, h telegram.UpdateHandler, lg *zap.Logger) (*telegram.Client, error) {
	var storage session.Storage = &session.StorageMemory{}
	if db != nil && accountID > 0 {
		storage = &DBSessionStorage{DB: db, AccountID: accountID}
	}

	opts := telegram.Options{SessionStorage: storage}
	if h != nil {
		opts.UpdateHandler = h
	}
	if r != nil {
		opts.Random = r
	}
	if lg != nil {
		opts.Logger = lg
	}
	if p != nil {
		addr := fmt.Sprintf("%s:%d", p.IP, p.Port)
		var auth *proxy.Auth
		if p.Login != "" || p.Password != "" {
			auth = &proxy.Auth{User: p.Login, Password: p.Password}
		}
		d, err := proxy.SOCKS5("tcp", addr, auth, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("proxy dialer: %w", err)
		}
		dc, ok := d.(proxy.ContextDialer)
		if !ok {
			return nil, fmt.Errorf("proxy dialer missing context")
		}
		opts.Resolver = dcs.Plain(dcs.PlainOptions{Dial: dc.DialContext})
		log.Printf("[PROXY] %s via %s", phone, addr)
	}
	return telegram.NewClient(apiID, apiHash, opts), nil
}
