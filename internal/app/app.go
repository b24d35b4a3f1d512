package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"turadmin/internal/api"
	"turadmin/internal/config"
	"turadmin/internal/handlers"
	"turadmin/internal/logging"
	"turadmin/internal/metrics"
	"turadmin/internal/middleware"
	"turadmin/internal/pdf"
	"turadmin/internal/routes"
	"turadmin/internal/session"
	"turadmin/internal/views"
)

// Run — сборка процесса: конфиг → логгер → API-клиент → сессия →
// хендлеры → роуты. Состояние сессии не глобально, всё через инъекцию.
func Run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logging.New(cfg.Logging.Level)
	metrics.Register()

	// === API ===
	apiClient := api.NewClient(api.NewRoutes(cfg.API.BaseURL), log)
	sess := session.New(apiClient, log)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(apiClient, sess, log)
	pagesHandler := handlers.NewPagesHandler(sess, log)
	agreementHandler := handlers.NewAgreementHandler(apiClient, sess, pdf.NewAgreementRenderer(), log)

	// === Gin ===
	renderer, err := views.NewRenderer()
	if err != nil {
		return fmt.Errorf("build renderer: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.HTMLRender = renderer

	routes.SetupRoutes(router, cfg, authHandler, pagesHandler, agreementHandler)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info().Str("addr", listenAddr).Str("api", cfg.API.BaseURL).Msg("server started")
	if err := router.Run(listenAddr); err != nil {
		return fmt.Errorf("run server: %w", err)
	}
	return nil
}
