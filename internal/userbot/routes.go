package userbot

import (
	"kira_go/pkg/storage"
	"kira_go/pkg/telegram/userbot"

	"github.com/gin-gonic/gin"
)

// SetupRoutes регистрирует маршруты управления запущенными аккаунтами
func SetupRoutes(r *gin.RouterGroup, db *storage.DB, runner *userbot.Runner) {
	h := NewHandler(db, runner)
	r.POST("/Start/:id", h.StartAccount)
	r.POST("/Stop/:id", h.StopAccount)
	r.POST("/StopAll", h.StopAll)
	r.GET("/Status", h.Status)
}
