package userbot

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/gotd/td/tg"
	"go.uber.org/zap"

	"kira_go/models"
	"kira_go/pkg/storage"
	tgutil "kira_go/pkg/telegram"
	"kira_go/pkg/webapi"
)

// RunningAccount — сведения об одном запущенном аккаунте для .listaccounts и API.
type RunningAccount struct {
	AccountID int       `json:"account_id"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	StartedAt time.Time `json:"started_at"`
}

// task — запись о запущенном аккаунте в реестре раннера.
type task struct {
	cancel context.CancelFunc
	info   RunningAccount
}

// Runner запускает и останавливает клиентов аккаунтов.
// Инвариант: на аккаунт приходится не более одного активного клиента.
type Runner struct {
	db  *storage.DB
	cfg Config
	web *webapi.Client
	lg  *zap.Logger

	mu    sync.Mutex
	tasks map[int]*task
}

func NewRunner(db *storage.DB, cfg Config, web *webapi.Client, lg *zap.Logger) *Runner {
	return &Runner{
		db:    db,
		cfg:   cfg,
		web:   web,
		lg:    lg,
		tasks: make(map[int]*task),
	}
}

// StartAuthorized запускает всех авторизованных аккаунтов из БД.
// Вызывается при старте сервиса.
func (r *Runner) StartAuthorized() {
	accounts, err := r.db.GetAuthorizedAccounts()
	if err != nil {
		log.Printf("[RUNNER] не удалось получить аккаунты: %v", err)
		return
	}
	for _, acc := range accounts {
		if err := r.StartAccount(acc); err != nil {
			log.Printf("[RUNNER] аккаунт %s не запущен: %v", acc.Phone, err)
		}
	}
}

// StartAccount запускает клиента аккаунта в отдельной горутине.
func (r *Runner) StartAccount(account models.Account) error {
	if !account.IsAuthorized {
		return fmt.Errorf("аккаунт %s не авторизован", account.Phone)
	}

	r.mu.Lock()
	if _, running := r.tasks[account.ID]; running {
		r.mu.Unlock()
		return fmt.Errorf("аккаунт %s уже запущен", account.Phone)
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.tasks[account.ID] = &task{
		cancel: cancel,
		info: RunningAccount{
			AccountID: account.ID,
			Phone:     account.Phone,
			Name:      account.Name,
			StartedAt: time.Now(),
		},
	}
	r.mu.Unlock()

	go func() {
		defer func() {
			r.mu.Lock()
			delete(r.tasks, account.ID)
			r.mu.Unlock()
		}()
		if err := r.runAccount(ctx, account); err != nil && ctx.Err() == nil {
			log.Printf("[RUNNER] аккаунт %s остановлен: %v", account.Phone, err)
		}
	}()

	log.Printf("[RUNNER] аккаунт %s запущен", account.Phone)
	return nil
}

// runAccount держит соединение клиента до отмены контекста.
func (r *Runner) runAccount(ctx context.Context, account models.Account) error {
	dispatcher := tg.NewUpdateDispatcher()

	var lg *zap.Logger
	if r.lg != nil {
		lg = r.lg.Named(account.Phone)
	}
	randSrc := rand.New(rand.NewSource(time.Now().UnixNano()))
	client, err := tgutil.NewAccountClient(account.ApiID, account.ApiHash, account.Phone, account.Proxy, randSrc, r.db.Conn, account.ID, dispatcher, lg)
	if err != nil {
		return err
	}

	return client.Run(ctx, func(ctx context.Context) error {
		self, err := client.Self(ctx)
		if err != nil {
			return fmt.Errorf("получение собственного профиля: %w", err)
		}
		api := tg.NewClient(client)

		bot := NewBot(api, r.db, r.web, account, self, r.cfg, r)
		bot.Bind(&dispatcher)

		// Стартовое уведомление в «Избранное», как делал оригинальный бот.
		notice := fmt.Sprintf("Kira запущена ✅\nАккаунт: %s\nID: %d\nВремя: %s",
			tgutil.UserDisplayName(self), self.ID, time.Now().Format("15:04:05"))
		if err := bot.sendToSaved(ctx, notice); err != nil {
			log.Printf("[RUNNER] уведомление о старте не отправлено: %v", err)
		}

		log.Printf("[RUNNER] аккаунт %s в сети, команд в таблице: %d", account.Phone, len(bot.commands))
		<-ctx.Done()
		return ctx.Err()
	})
}

// StopAccount останавливает клиента аккаунта. Возвращает false, если он не запущен.
func (r *Runner) StopAccount(accountID int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, running := r.tasks[accountID]
	if !running {
		return false
	}
	t.cancel()
	delete(r.tasks, accountID)
	return true
}

// StopAll останавливает всех запущенных аккаунтов.
func (r *Runner) StopAll() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.tasks)
	for id, t := range r.tasks {
		t.cancel()
		delete(r.tasks, id)
	}
	return n
}

// RestartAccount перечитывает аккаунт из БД и запускает его заново.
// Пауза даёт клиенту время корректно закрыть соединение и сохранить сессию.
func (r *Runner) RestartAccount(accountID int) {
	r.StopAccount(accountID)
	go func() {
		time.Sleep(2 * time.Second)
		account, err := r.db.GetAccountByID(accountID)
		if err != nil {
			log.Printf("[RUNNER] перезапуск: аккаунт %d не найден: %v", accountID, err)
			return
		}
		if err := r.StartAccount(*account); err != nil {
			log.Printf("[RUNNER] перезапуск аккаунта %d: %v", accountID, err)
		}
	}()
}

// Running возвращает снимок запущенных аккаунтов.
func (r *Runner) Running() []RunningAccount {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RunningAccount, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, t.info)
	}
	return out
}
