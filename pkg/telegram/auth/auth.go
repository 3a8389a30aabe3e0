// Package auth содержит функции для авторизации аккаунтов в Telegram.
// Логика вынесена в отдельный подпакет, чтобы изолировать работу с входом.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/tg"

	"kira_go/models"
	"kira_go/pkg/storage"
	telegram "kira_go/pkg/telegram"
)

// Готовый auth.Flow здесь не используется: он всегда отправляет новый код,
// а вход разнесён на два HTTP-запроса с сохранённым phone_code_hash.

// RequestCode отправляет код подтверждения и сохраняет хеш в БД.
func RequestCode(apiID int, apiHash, phone string, proxy *models.Proxy, db *storage.DB, accountID int) (string, error) {
	client, err := telegram.NewAccountClient(apiID, apiHash, phone, proxy, nil, db.Conn, accountID, nil, nil)
	if err != nil {
		return "", err
	}
	var phoneCodeHash string
	ctx := context.Background()
	err = client.Run(ctx, func(ctx context.Context) error {
		sentCode, err := client.Auth().SendCode(ctx, phone, auth.SendCodeOptions{})
		if err != nil {
			return err
		}
		if sent, ok := sentCode.(*tg.AuthSentCode); ok {
			phoneCodeHash = sent.PhoneCodeHash
			// Сохраняем полученный хеш в БД для дальнейшей авторизации
			if err := db.UpdatePhoneCodeHash(accountID, phoneCodeHash); err != nil {
				return err
			}
		} else {
			log.Printf("[ERROR] Неожиданный тип ответа SendCode: %T", sentCode)
			return fmt.Errorf("unexpected sent code type: %T", sentCode)
		}
		return nil
	})
	return phoneCodeHash, err
}

// CompleteAuthorization завершает авторизацию аккаунта после получения кода.
func CompleteAuthorization(db *storage.DB, account *models.Account, code string) error {
	randSrc := rand.New(rand.NewSource(time.Now().UnixNano()))
	client, err := telegram.NewAccountClient(account.ApiID, account.ApiHash, account.Phone, account.Proxy, randSrc, db.Conn, account.ID, nil, nil)
	if err != nil {
		return err
	}
	ctx := context.Background()
	return client.Run(ctx, func(ctx context.Context) error {
		if _, err := client.Auth().SignIn(ctx, account.Phone, code, account.PhoneCodeHash); err != nil {
			if errors.Is(err, auth.ErrPasswordAuthNeeded) {
				if account.TwoFAPassword == "" {
					return fmt.Errorf("account requires two-factor password")
				}
				if _, err := client.Auth().Password(ctx, account.TwoFAPassword); err != nil {
					log.Printf("[ERROR] Вход по паролю не удался: %v", err)
					return fmt.Errorf("password authentication failed: %w", err)
				}
				log.Printf("[INFO] Аккаунт %s успешно авторизован", account.Phone)
				return nil
			}
			log.Printf("[ERROR] Авторизация не удалась: %v", err)
			return fmt.Errorf("authorization error: %w", err)
		}

		log.Printf("[INFO] Аккаунт %s успешно авторизован", account.Phone)
		return nil
	})
}
