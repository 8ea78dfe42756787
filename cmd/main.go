package main

import (
	"net/http"

	"BlockJack/config"
	"BlockJack/internal/middleware"
	"BlockJack/internal/session"
	"BlockJack/internal/storage"
	"BlockJack/internal/utils"
	"BlockJack/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()
	utils.Init()

	//-------------------------------------------------------
	// 1. 钱包存储后端（redis 默认 / postgres / memory）
	//-------------------------------------------------------
	var ledger session.Ledger
	switch config.C.Game.Storage {
	case "postgres":
		if err := storage.InitPostgres(config.C.Database.DSN); err != nil {
			utils.Error.Fatalf("Postgres init failed: %v", err)
		}
		if err := storage.EnsureWalletSchema(storage.DB); err != nil {
			utils.Error.Fatalf("Wallet schema failed: %v", err)
		}
		ledger = session.NewPostgresLedger(storage.DB)
	case "memory":
		ledger = session.NewMemoryLedger()
	default:
		if err := storage.InitRedis(
			config.C.Redis.Addr,
			config.C.Redis.Password,
			config.C.Redis.DB,
		); err != nil {
			utils.Error.Fatalf("Redis init failed: %v", err)
		}
		ledger = session.NewRedisLedger(storage.Rdb)
	}

	//-------------------------------------------------------
	// 2. Gin + CORS
	//-------------------------------------------------------
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	//-------------------------------------------------------
	// 3. 推送 Hub
	//-------------------------------------------------------
	hub := websocket.NewHub()
	go hub.Run()

	//-------------------------------------------------------
	// 4. 会话服务 + 路由
	//-------------------------------------------------------
	svc := session.NewService(ledger, config.C.Game.StartingBalance, hub)

	secret := []byte(config.C.JWT.Secret)
	h := session.NewHandler(svc, secret)

	r.POST("/session/new", h.Create)

	auth := r.Group("/", middleware.JwtAuthMiddleware(secret))
	{
		auth.GET("/session/resume", h.Resume)
		auth.POST("/game/start", h.Start)
		auth.POST("/game/hit", h.Hit)
		auth.POST("/game/stand", h.Stand)
		auth.POST("/wallet/reset", h.Reset)
		auth.GET("/ws", websocket.ServeWS(hub))
	}

	//-------------------------------------------------------
	// 5. 启动服务器
	//-------------------------------------------------------
	utils.Info.Printf("Server running on %s", config.C.Server.Port)
	if err := r.Run(config.C.Server.Port); err != nil {
		utils.Error.Fatalf("server exited: %v", err)
	}
}
