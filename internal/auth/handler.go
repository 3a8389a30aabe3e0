package auth

import (
	"database/sql"
	"errors"
	"log"

	"kira_go/internal/httputil"
	"kira_go/models"
	"kira_go/pkg/storage"
	tgauth "kira_go/pkg/telegram/auth"
	"kira_go/pkg/telegram/userbot"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	DB     *storage.DB
	Runner *userbot.Runner
}

func NewHandler(db *storage.DB, runner *userbot.Runner) *AccountHandler {
	return &AccountHandler{DB: db, Runner: runner}
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var account models.Account
	if err := c.ShouldBindJSON(&account); err != nil {
		httputil.RespondError(c, 400, "Invalid data")
		return
	}
	// Обнуляем ID, чтобы БД назначила его автоматически
	account.ID = 0

	var proxy *models.Proxy
	if account.ProxyID != nil {
		p, err := h.DB.GetProxyByID(*account.ProxyID)
		if err != nil {
			httputil.RespondError(c, 400, "Proxy not found")
			return
		}
		if p.AccountsCount >= 30 {
			httputil.RespondError(c, 400, "Proxy limit reached")
			return
		}
		proxy = p
	}

	// Проверяем соединение с БД перед созданием аккаунта
	if err := h.DB.Conn.PingContext(c.Request.Context()); err != nil {
		log.Printf("[ERROR] Соединение с БД недоступно: %v", err)
		httputil.RespondError(c, 500, "DB connection error")
		return
	}

	created, err := h.DB.CreateAccount(account)
	if err != nil {
		log.Printf("[ERROR] Не удалось создать аккаунт в БД: %v", err)
		httputil.RespondError(c, 500, "DB error")
		return
	}

	// Отправляем код подтверждения и сохраняем его хеш
	if _, err := tgauth.RequestCode(account.ApiID, account.ApiHash, account.Phone, proxy, h.DB, created.ID); err != nil {
		log.Printf("[ERROR] Не удалось получить код: %v", err)
		httputil.RespondError(c, 500, "Failed to request code")
		return
	}

	log.Printf("[INFO] Аккаунт сохранён в БД с ID=%d", created.ID)
	c.JSON(200, gin.H{"результат": "готово, теперь нужно подтвердить кодом"})
}

// VerifyAccount завершает авторизацию последнего добавленного аккаунта
// и сразу запускает его клиента.
func (h *AccountHandler) VerifyAccount(c *gin.Context) {
	var input struct {
		Code string `json:"code"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.RespondError(c, 400, "Invalid code")
		return
	}

	account, err := h.DB.GetLastAccount()
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[WARN] В БД нет аккаунтов: %v", err)
			httputil.RespondError(c, 404, "Account not found")
			return
		}
		log.Printf("[ERROR] Не удалось получить последний аккаунт: %v", err)
		httputil.RespondError(c, 500, "DB error")
		return
	}

	log.Printf("[INFO] Проверяем аккаунт с ID=%d", account.ID)

	if account.IsAuthorized {
		c.JSON(200, gin.H{"результат": "последний аккаунт уже авторизован"})
		return
	}

	if err := tgauth.CompleteAuthorization(h.DB, account, input.Code); err != nil {
		httputil.RespondError(c, 400, "Auth failed: "+err.Error())
		return
	}

	if err := h.DB.MarkAccountAsAuthorized(account.ID); err != nil {
		httputil.RespondError(c, 500, "Failed to mark account as authorized")
		return
	}

	// Берём свежую запись: после авторизации флаги изменились
	authorized, err := h.DB.GetAccountByID(account.ID)
	if err == nil {
		if startErr := h.Runner.StartAccount(*authorized); startErr != nil {
			log.Printf("[WARN] Аккаунт авторизован, но не запущен: %v", startErr)
		}
	}

	c.JSON(200, gin.H{"status": "Authorized!"})
}
