package export

import (
	"encoding/csv"
	"fmt"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kira_go/internal/httputil"
	"kira_go/pkg/storage"
)

// Handler выгружает сохранённые снимки чатов из БД.
// Снимки появляются там после команды .backupchats.
type Handler struct {
	DB *storage.DB
}

func NewHandler(db *storage.DB) *Handler {
	return &Handler{DB: db}
}

// Chats отдаёт чаты аккаунта файлом. Формат задаётся параметром format:
// csv (по умолчанию) или json.
func (h *Handler) Chats(c *gin.Context) {
	accountID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httputil.RespondError(c, 400, "Invalid account id")
		return
	}
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "json" {
		httputil.RespondError(c, 400, "Format must be csv or json")
		return
	}

	chats, err := h.DB.GetChatsByAccount(accountID)
	if err != nil {
		log.Printf("[ERROR] Выгрузка чатов аккаунта %d: %v", accountID, err)
		httputil.RespondError(c, 500, "DB error")
		return
	}
	if len(chats) == 0 {
		httputil.RespondError(c, 404, "No chats saved for this account")
		return
	}

	filename := fmt.Sprintf("chats_%s.%s", uuid.New().String(), format)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if format == "json" {
		c.JSON(200, chats)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Account", "Chat ID", "Title", "Username", "Type", "Unread", "Last Active"})
	for _, ch := range chats {
		lastActive := ""
		if ch.LastMessageDate != nil {
			lastActive = ch.LastMessageDate.Format("2006-01-02 15:04:05")
		}
		_ = w.Write([]string{
			strconv.Itoa(ch.AccountID),
			strconv.FormatInt(ch.ChatID, 10),
			ch.Title,
			ch.Username,
			ch.Type,
			strconv.Itoa(ch.UnreadCount),
			lastActive,
		})
	}
	w.Flush()
}

// Count возвращает число сохранённых чатов аккаунта.
func (h *Handler) Count(c *gin.Context) {
	accountID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httputil.RespondError(c, 400, "Invalid account id")
		return
	}
	n, err := h.DB.CountChats(accountID)
	if err != nil {
		httputil.RespondError(c, 500, "DB error")
		return
	}
	c.JSON(200, gin.H{"account_id": accountID, "chats": n})
}
