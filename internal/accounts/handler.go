package accounts

import (
	"log"
	"strconv"

	"kira_go/internal/httputil"
	"kira_go/models"
	"kira_go/pkg/storage"

	"github.com/gin-gonic/gin"
)

// Максимум аккаунтов на один прокси
const proxyAccountsLimit = 30

type Handler struct {
	DB *storage.DB
}

func NewHandler(db *storage.DB) *Handler {
	return &Handler{DB: db}
}

// ListAccounts возвращает все авторизованные аккаунты.
func (h *Handler) ListAccounts(c *gin.Context) {
	accounts, err := h.DB.GetAuthorizedAccounts()
	if err != nil {
		log.Printf("[ERROR] Не удалось получить аккаунты: %v", err)
		httputil.RespondError(c, 500, "DB error")
		return
	}
	c.JSON(200, gin.H{"accounts": accounts, "count": len(accounts)})
}

func (h *Handler) CreateProxy(c *gin.Context) {
	var proxy models.Proxy
	if err := c.ShouldBindJSON(&proxy); err != nil {
		httputil.RespondError(c, 400, "Invalid data")
		return
	}
	proxy.ID = 0

	created, err := h.DB.CreateProxy(proxy)
	if err != nil {
		log.Printf("[ERROR] Не удалось создать прокси: %v", err)
		httputil.RespondError(c, 500, "DB error")
		return
	}
	c.JSON(200, gin.H{"id": created.ID})
}

// AssignProxy привязывает прокси к аккаунту с учётом лимита на прокси.
func (h *Handler) AssignProxy(c *gin.Context) {
	accountID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httputil.RespondError(c, 400, "Invalid account id")
		return
	}
	var input struct {
		ProxyID int `json:"proxy_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.RespondError(c, 400, "Invalid data")
		return
	}

	if err := h.DB.AssignProxyToAccount(accountID, input.ProxyID, proxyAccountsLimit); err != nil {
		log.Printf("[ERROR] Не удалось привязать прокси %d к аккаунту %d: %v", input.ProxyID, accountID, err)
		httputil.RespondError(c, 400, err.Error())
		return
	}
	httputil.RespondStatus(c, "ok")
}
