package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"turadmin/internal/config"
	"turadmin/internal/handlers"
	"turadmin/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	pagesHandler *handlers.PagesHandler,
	agreementHandler *handlers.AgreementHandler,
) *gin.Engine {

	// ---- public
	auth := r.Group("/auth")
	{
		auth.GET("/login", authHandler.ShowLogin)
		auth.POST("/login", authHandler.Login)
		auth.GET("/register", authHandler.ShowRegister)
		auth.POST("/register", authHandler.Register)
	}
	r.GET("/logout", authHandler.Logout)
	r.POST("/theme", handlers.ToggleTheme)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ---- guarded (редирект на логин без cookie)
	r.Use(middleware.RouteGuard(cfg.Auth.LoginPath, cfg.Auth.GuardedPaths))

	r.GET("/", pagesHandler.Home)
	r.GET("/dashboard", pagesHandler.Dashboard)
	r.GET("/profile", pagesHandler.Profile)

	agreements := r.Group("/agreements")
	{
		agreements.GET("", agreementHandler.List)
		agreements.GET("/create", agreementHandler.ShowCreate)
		agreements.POST("/create", agreementHandler.Create)
		agreements.GET("/edit/:id", agreementHandler.ShowEdit)
		agreements.POST("/edit/:id", agreementHandler.Edit)
		agreements.GET("/:id/pdf", agreementHandler.PDF)
		agreements.GET("/export", agreementHandler.Export)
	}

	return r
}
