package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/quillpress/content-api/docs"
	"github.com/quillpress/content-api/internal/api/handler"
	"github.com/quillpress/content-api/internal/api/middleware"
	"github.com/quillpress/content-api/internal/core/domain"
	"github.com/quillpress/content-api/internal/core/ports"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Log     zerolog.Logger
	Auth    ports.AuthService
	Content ports.ContentService
	Tokens  ports.TokenService
	// Health maps dependency names to readiness probes.
	Health map[string]handler.Check
	// MetricsRegisterer receives the request metrics. Defaults to the
	// global Prometheus registerer.
	MetricsRegisterer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)
	e.Validator = handler.NewValidator()

	registerer := deps.MetricsRegisterer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Namespace:  "content",
		Registerer: registerer,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	articleHandler := handler.NewArticleHandler(deps.Content)
	commentHandler := handler.NewCommentHandler(deps.Content)
	userHandler := handler.NewUserHandler(deps.Content)
	healthHandler := handler.NewHealthHandler(deps.Health)

	// --- Pipelines ---
	authenticated := middleware.Pipeline(middleware.Authenticate(deps.Tokens))
	optional := middleware.Pipeline(middleware.OptionalAuthenticate(deps.Tokens))
	adminOnly := middleware.Pipeline(
		middleware.Authenticate(deps.Tokens),
		middleware.RequireRole(domain.RoleAdmin),
	)

	api := e.Group("/api")

	// --- Auth routes ---
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/register-admin", authHandler.RegisterAdmin)
	api.POST("/auth/login", authHandler.Login)

	// --- Users ---
	api.GET("/users/:id", userHandler.Get, optional)
	api.GET("/users/:id/articles", userHandler.Articles, optional)
	api.PUT("/users/:id", userHandler.Edit, authenticated)
	api.DELETE("/users/:id", userHandler.Delete, authenticated)

	// --- Articles ---
	api.POST("/articles", articleHandler.Create, adminOnly)
	api.GET("/articles", articleHandler.List, optional)
	api.GET("/articles/:id", articleHandler.Get, optional)
	api.PUT("/articles/:id", articleHandler.Edit, adminOnly)
	api.DELETE("/articles/:id", articleHandler.Delete, authenticated)
	api.POST("/articles/:id/publish", articleHandler.Publish, authenticated)
	api.POST("/articles/:id/comments", commentHandler.Create, authenticated)
	api.GET("/articles/:id/comments", commentHandler.List, optional)

	// --- Comments ---
	api.PUT("/comments/:id", commentHandler.Edit, authenticated)
	api.DELETE("/comments/:id", commentHandler.Delete, authenticated)

	// --- Health probes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
