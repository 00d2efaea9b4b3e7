package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/techconnect/club-portal/docs"
	"github.com/techconnect/club-portal/internal/api/handler"
	"github.com/techconnect/club-portal/internal/api/middleware"
	"github.com/techconnect/club-portal/internal/core/domain"
	"github.com/techconnect/club-portal/internal/core/ports"
	"github.com/techconnect/club-portal/internal/core/service"
	"github.com/techconnect/club-portal/internal/infrastructure/config"
	mongodb "github.com/techconnect/club-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/techconnect/club-portal/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit publisher is constructed by the caller because its worker pool
// lifecycle belongs to main, not to the router.
func NewRouter(db *mongo.Database, rdb *redis.Client, audit service.AuditPublisher, auditReader ports.AuditService, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))
	// The SPA sends the bearer header plus withCredentials, so echo both the
	// configured origins and the credentials flag.
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	authHandler := handler.NewAuthHandler(authService)

	announcementRepo := mongodb.NewAnnouncementRepository(db)
	listCache := redisdb.NewAnnouncementCache(rdb, cfg.CacheTTL)
	announcementService := service.NewAnnouncementService(announcementRepo, listCache, audit, log)
	announcementHandler := handler.NewAnnouncementHandler(announcementService, auditReader)

	clubHandler := handler.NewClubHandler()
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Public routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/auth/register", authHandler.Register)
	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.GET("/clubs", clubHandler.Catalog)

	// --- Club boards: one identical contract per namespace ---
	// Reads need only a valid credential; mutations additionally require the
	// caller's role to match the namespace.
	for _, club := range domain.Clubs() {
		g := apiGroup.Group("/"+string(club), authMiddleware)
		requireClub := middleware.RequireClub(club)

		g.GET("/get", announcementHandler.List(club))
		g.POST("/add", announcementHandler.Create(club), requireClub)
		g.DELETE("/delete/:id", announcementHandler.Delete(club), requireClub)
		g.GET("/activity", announcementHandler.Activity(club), requireClub)
	}

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
