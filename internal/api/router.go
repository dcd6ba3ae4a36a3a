package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/communityfund/fund-nexus/internal/api/handler"
	"github.com/communityfund/fund-nexus/internal/api/middleware"
	"github.com/communityfund/fund-nexus/internal/core/domain"
	"github.com/communityfund/fund-nexus/internal/core/ports"
)

// Dependencies bundles everything the router needs. Mongo and Redis are
// only used by the readiness probe and may be nil when the in-memory
// driver runs without them.
type Dependencies struct {
	Auth          ports.AuthService
	Contributions ports.ContributionService
	Mentors       ports.MentorService
	Localities    ports.LocalityService
	Reports       ports.ReportService

	Mongo *mongo.Database
	Redis *redis.Client

	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Route policy, enforced here as the fast path and re-checked by the
// services:
//   - every authenticated role may read; managers see only their village
//   - contribution and mentor writes are open to every role
//   - locality writes are CORE/ADMIN only
//   - deletes are ADMIN only
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("fundnexus"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	contributionHandler := handler.NewContributionHandler(deps.Contributions)
	mentorHandler := handler.NewMentorHandler(deps.Mentors)
	localityHandler := handler.NewLocalityHandler(deps.Localities)
	reportHandler := handler.NewReportHandler(deps.Reports)
	exportHandler := handler.NewExportHandler(deps.Contributions, deps.Mentors, deps.Localities)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated routes ---
	auth := middleware.Auth(deps.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	coreOrAdmin := middleware.RBAC(domain.RoleCore, domain.RoleAdmin)

	g := e.Group("", auth)

	g.GET("/contributions", contributionHandler.List)
	g.POST("/contributions", contributionHandler.Create)
	g.PUT("/contributions/:id", contributionHandler.Update)
	g.DELETE("/contributions/:id", contributionHandler.Delete, adminOnly)

	g.GET("/mentors", mentorHandler.List)
	g.POST("/mentors", mentorHandler.Create)
	g.PUT("/mentors/:id", mentorHandler.Update)
	g.DELETE("/mentors/:id", mentorHandler.Delete, adminOnly)

	g.GET("/localities", localityHandler.List)
	g.POST("/localities", localityHandler.Create, coreOrAdmin)
	g.PUT("/localities/:id", localityHandler.Update, coreOrAdmin)
	g.DELETE("/localities/:id", localityHandler.Delete, adminOnly)

	g.GET("/reports/dashboard", reportHandler.Dashboard)

	g.GET("/export/contributions", exportHandler.Contributions)
	g.GET("/export/mentors", exportHandler.Mentors)
	g.GET("/export/localities", exportHandler.Localities)

	return e
}
