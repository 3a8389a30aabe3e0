package userbot

import (
	"log"
	"strconv"

	"kira_go/internal/httputil"
	"kira_go/pkg/storage"
	"kira_go/pkg/telegram/userbot"

	"github.com/gin-gonic/gin"
)

// Handler управляет клиентами аккаунтов через раннер.
type Handler struct {
	DB     *storage.DB
	Runner *userbot.Runner
}

func NewHandler(db *storage.DB, runner *userbot.Runner) *Handler {
	return &Handler{DB: db, Runner: runner}
}

func (h *Handler) StartAccount(c *gin.Context) {
	accountID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httputil.RespondError(c, 400, "Invalid account id")
		return
	}
	account, err := h.DB.GetAccountByID(accountID)
	if err != nil {
		httputil.RespondError(c, 404, "Account not found")
		return
	}
	if err := h.Runner.StartAccount(*account); err != nil {
		log.Printf("[ERROR] Запуск аккаунта %d: %v", accountID, err)
		httputil.RespondError(c, 400, err.Error())
		return
	}
	c.JSON(200, gin.H{"status": "started", "account_id": accountID})
}

func (h *Handler) StopAccount(c *gin.Context) {
	accountID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httputil.RespondError(c, 400, "Invalid account id")
		return
	}
	if !h.Runner.StopAccount(accountID) {
		httputil.RespondError(c, 404, "Account is not running")
		return
	}
	c.JSON(200, gin.H{"status": "stopped", "account_id": accountID})
}

func (h *Handler) StopAll(c *gin.Context) {
	n := h.Runner.StopAll()
	c.JSON(200, gin.H{"status": "stopped", "count": n})
}

// Status возвращает снимок запущенных аккаунтов.
func (h *Handler) Status(c *gin.Context) {
	running := h.Runner.Running()
	c.JSON(200, gin.H{"running": running, "count": len(running)})
}
