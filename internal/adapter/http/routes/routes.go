package routes

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	_ "laporan_zakat/docs" // generated by swag init
	"laporan_zakat/internal/adapter/http/handlers"
	"laporan_zakat/internal/adapter/persistence/memory"
	"laporan_zakat/internal/infrastructure/config"
	"laporan_zakat/internal/infrastructure/logging"
	"laporan_zakat/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg := config.Load()
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to build logger: %v", err))
	}
	defer func() { _ = logger.Sync() }()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(context.Background(), router, cfg, logger); err != nil {
		logger.Fatal("failed to wire the application", zap.Error(err))
	}

	logger.Info("listening", zap.Int("port", cfg.Port), zap.String("store_backend", cfg.StoreBackend))
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		logger.Fatal("Failed to startup the application", zap.Error(err))
	}
}

func getRoutes(ctx context.Context, r *gin.Engine, cfg config.Config, logger *zap.Logger) error {
	reports, operators, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if err := usecase.Seed(ctx, reports, operators); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	attachments, err := newAttachmentStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	oracle, err := newOracle(ctx, cfg, logger)
	if err != nil {
		return err
	}

	sessions := memory.NewSessionMemoryRepository()
	store := usecase.NewRecordStore(reports, operators, logger)
	engine := usecase.NewDialogueEngine(store, attachments, cfg.MaxAttachmentBytes, logger)

	authUseCase := usecase.NewAuthUseCase(operators, sessions, logger)
	conversationUseCase := usecase.NewConversationUseCase(sessions, oracle, engine, logger)

	authHandler := handlers.NewAuthHandler(authUseCase)
	chatHandler := handlers.NewChatHandler(conversationUseCase)
	reportHandler := handlers.NewReportHandler(store)

	// Rotas publicas
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler, authUseCase)

	// Rotas autenticadas
	authed := v1.Group("", handlers.RequireSession(authUseCase))
	addChatRoutes(authed, chatHandler)
	addRecordRoutes(authed, reportHandler)
	return nil
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(handlers.RequestLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
