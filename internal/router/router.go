package router

import (
	"github.com/VrmaRahul007/FinancialAssistantChat/internal/chat"
	"github.com/VrmaRahul007/FinancialAssistantChat/internal/config"
	"github.com/VrmaRahul007/FinancialAssistantChat/internal/handler"
	"github.com/VrmaRahul007/FinancialAssistantChat/internal/ledger"
	"github.com/VrmaRahul007/FinancialAssistantChat/internal/middleware"
	"github.com/VrmaRahul007/FinancialAssistantChat/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine: static chat client, auth API,
// the websocket chat endpoint and the protected REST surface.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// chat client
	r.Static("/static", "./web/static")
	r.StaticFile("/", "./web/static/index.html")

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	store := ledger.NewGormStore(db)
	processor := chat.NewProcessor(store, cfg.Chat.SummaryLimit)

	// websocket chat; the handler authenticates the handshake itself
	wsHandler := ws.NewHandler(processor, store, cfg.JWT.Secret, cfg.Chat.MaxMessageSize)
	r.GET("/ws", wsHandler.Serve)

	// ====== API ======
	api := r.Group("/api")

	jwtSecret := cfg.JWT.Secret
	authHandler := handler.NewAuthHandler(db, jwtSecret, cfg.JWT.ExpireHours)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(jwtSecret, db),
		middleware.AuditMiddleware(db),
	)

	protected.GET("/me", handler.GetMe)
	protected.POST("/profile", handler.UpdateProfile(db))
	protected.POST("/profile/password", handler.ChangePassword(db))

	transactionHandler := handler.NewTransactionHandler(db)
	protected.GET("/transactions", transactionHandler.ListTransactions)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	logHandler := handler.NewLogHandler(db)
	protected.GET("/logs", logHandler.ListLogs)

	return r
}
