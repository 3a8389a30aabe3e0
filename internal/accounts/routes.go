package accounts

import (
	"kira_go/pkg/storage"

	"github.com/gin-gonic/gin"
)

// SetupRoutes регистрирует маршруты управления аккаунтами и прокси
func SetupRoutes(r *gin.RouterGroup, db *storage.DB) {
	h := NewHandler(db)
	r.GET("/List", h.ListAccounts)
	r.POST("/CreateProxy", h.CreateProxy)
	r.POST("/AssignProxy/:id", h.AssignProxy)
}
