package auth

import (
	"kira_go/pkg/storage"
	"kira_go/pkg/telegram/userbot"

	"github.com/gin-gonic/gin"
)

// SetupRoutes регистрирует маршруты авторизации аккаунтов
func SetupRoutes(r *gin.RouterGroup, db *storage.DB, runner *userbot.Runner) {
	h := NewHandler(db, runner)
	r.POST("/CreateAccount", h.CreateAccount)
	r.POST("/VerifyAccount", h.VerifyAccount)
}
