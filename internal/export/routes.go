package export

import (
	"kira_go/pkg/storage"

	"github.com/gin-gonic/gin"
)

// SetupRoutes регистрирует маршруты выгрузки сохранённых чатов
func SetupRoutes(r *gin.RouterGroup, db *storage.DB) {
	h := NewHandler(db)
	r.GET("/Chats/:id", h.Chats)
	r.GET("/Count/:id", h.Count)
}
