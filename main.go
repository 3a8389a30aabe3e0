package main

import (
	"database/sql"
	"flag"
	"log"
	"time"

	"kira_go/internal/accounts"
	"kira_go/internal/auth"
	"kira_go/internal/config"
	"kira_go/internal/export"
	"kira_go/internal/logging"
	"kira_go/internal/middleware"
	apiuserbot "kira_go/internal/userbot"
	"kira_go/pkg/storage"
	"kira_go/pkg/telegram/userbot"
	"kira_go/pkg/webapi"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config.toml", "путь к файлу конфигурации")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg := logging.Setup(cfg.Log)
	defer lg.Sync()

	// Инициализация подключения к БД
	dbConn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbConn.Close()

	if err := dbConn.Ping(); err != nil {
		log.Fatalf("Database ping failed: %v", err)
	}

	db := storage.NewDB(dbConn)
	if err := db.InitSchema(); err != nil {
		log.Fatalf("Schema init failed: %v", err)
	}

	web := webapi.NewClient(15 * time.Second)
	runner := userbot.NewRunner(db, userbot.Config{
		TypingMinMS:       cfg.Bot.TypingDelayMinMS,
		TypingMaxMS:       cfg.Bot.TypingDelayMaxMS,
		ExportDir:         cfg.Bot.ExportDir,
		BroadcastPauseSec: cfg.Bot.BroadcastPauseSec,
		LogFile:           cfg.Log.File,
	}, web, lg)

	// Поднимаем всех уже авторизованных аккаунтов
	runner.StartAuthorized()
	defer runner.StopAll()

	r := setupRouter(cfg, db, runner)

	log.Printf("Starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// Настройка маршрутов
func setupRouter(cfg config.Config, db *storage.DB, runner *userbot.Runner) *gin.Engine {
	r := gin.Default()

	api := r.Group("/", middleware.AuthRequired(cfg.APIToken))

	authGroup := api.Group("/auth")
	auth.SetupRoutes(authGroup, db, runner)

	accountsGroup := api.Group("/accounts")
	accounts.SetupRoutes(accountsGroup, db)

	userbotGroup := api.Group("/userbot")
	apiuserbot.SetupRoutes(userbotGroup, db, runner)

	exportGroup := api.Group("/export")
	export.SetupRoutes(exportGroup, db)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Логирование зарегистрированных роутов
	log.Printf("[ROUTER] Routes initialized:")
	log.Printf("[ROUTER] POST /auth/CreateAccount")
	log.Printf("[ROUTER] POST /auth/VerifyAccount")
	log.Printf("[ROUTER] GET /accounts/List")
	log.Printf("[ROUTER] POST /userbot/Start/:id")
	log.Printf("[ROUTER] GET /export/Chats/:id")
	log.Printf("[ROUTER] GET /health")

	return r
}
