// Package router assembles the gin engine: middleware chain, route table
// and operational endpoints.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/home4paws/home4paws/internal/config"
	"github.com/home4paws/home4paws/internal/domain/repository"
	"github.com/home4paws/home4paws/internal/infrastructure/crypto"
	"github.com/home4paws/home4paws/internal/infrastructure/monitoring"
	"github.com/home4paws/home4paws/internal/infrastructure/ratelimit"
	"github.com/home4paws/home4paws/internal/interfaces/http/handlers"
	"github.com/home4paws/home4paws/internal/interfaces/http/middleware"
	"github.com/home4paws/home4paws/pkg/constants"
	"github.com/home4paws/home4paws/pkg/logger"
)

// Deps carries everything the router needs.
type Deps struct {
	Config   *config.Config
	Log      logger.Logger
	Metrics  *monitoring.Metrics
	Registry *prometheus.Registry

	Codec   crypto.TokenCodec
	Users   repository.UserRepository
	Limiter ratelimit.RateLimiter

	Auth        *handlers.AuthHandler
	User        *handlers.UserHandler
	Dog         *handlers.DogHandler
	Application *handlers.ApplicationHandler
	Report      *handlers.ReportHandler
	Surrender   *handlers.SurrenderHandler
	Contact     *handlers.ContactHandler
	Admin       *handlers.AdminHandler
	Health      *handlers.HealthHandler
}

// New builds the engine with the full middleware chain and route table.
func New(d Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.AccessLog(d.Log, d.Metrics))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = d.Config.CORS.AllowedOrigins
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders,
		constants.HeaderAuthorization, constants.HeaderRequestID)
	corsCfg.AllowMethods = []string{
		http.MethodGet, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions,
	}
	engine.Use(cors.New(corsCfg))

	engine.Use(middleware.AuthGate(d.Codec, d.Users, d.Log))
	engine.Use(middleware.Policy(middleware.PolicyTable))

	if d.Config.Pprof.Enabled {
		pprof.Register(engine)
	}

	loginLimit := middleware.LoginRateLimit(d.Limiter, &d.Config.RateLimit, d.Metrics, d.Log)

	engine.GET("/health/live", d.Health.Live)
	engine.GET("/health/ready", d.Health.Ready)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	engine.Static("/uploads", d.Config.Uploads.Dir)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", d.Auth.Register)
		auth.POST("/login", loginLimit, d.Auth.Login)
	}

	dogs := api.Group("/dogs")
	{
		dogs.GET("", d.Dog.List)
		dogs.GET("/adopt", d.Dog.ListAdoptable)
		dogs.GET("/buy", d.Dog.ListForSale)
		dogs.GET("/status/:status", d.Dog.ListByStatus)
		dogs.GET("/:id", d.Dog.Get)
	}

	apps := api.Group("/applications")
	{
		apps.POST("", d.Application.Submit)
		apps.GET("/my-applications", d.Application.ListMine)
		apps.GET("/:id", d.Application.Get)
	}

	reports := api.Group("/reports")
	{
		reports.POST("", d.Report.Submit)
		reports.GET("", d.Report.List)
		reports.GET("/my-reports", d.Report.ListMine)
		reports.GET("/:id", d.Report.Get)
		reports.PUT("/:id", d.Report.Update)
		reports.DELETE("/:id", d.Report.Delete)
	}

	surrenders := api.Group("/surrender-dogs")
	{
		surrenders.POST("", d.Surrender.Submit)
		surrenders.GET("", d.Surrender.List)
		surrenders.GET("/my-requests", d.Surrender.ListMine)
		surrenders.GET("/:id", d.Surrender.Get)
		surrenders.PUT("/:id", d.Surrender.Update)
		surrenders.DELETE("/:id", d.Surrender.Delete)
	}

	contacts := api.Group("/contact-messages")
	{
		contacts.POST("", d.Contact.Submit)
		contacts.GET("/my-messages", d.Contact.ListMine)
		contacts.GET("/:id", d.Contact.Get)
		contacts.PUT("/:id", d.Contact.Update)
		contacts.DELETE("/:id", d.Contact.Delete)
	}

	users := api.Group("/users")
	{
		users.GET("/me", d.User.Me)
		users.PUT("/me", d.User.UpdateMe)
		users.PUT("/me/password", d.User.ChangePassword)
		users.DELETE("/me", d.User.DeleteMe)
	}

	admin := api.Group("/admin")
	{
		admin.POST("/login", loginLimit, d.Auth.AdminLogin)
		admin.GET("/profile", d.Admin.Profile)
		admin.GET("/me", d.Admin.Profile)
		admin.GET("/check", d.Admin.Check)

		admin.GET("/users", d.Admin.ListUsers)
		admin.PUT("/users/:id/enabled", d.Admin.SetUserEnabled)
		admin.DELETE("/users/:id", d.Admin.DeleteUser)

		admin.GET("/dogs", d.Dog.List)
		admin.POST("/dogs", d.Dog.Create)
		admin.PUT("/dogs/:id", d.Dog.Update)
		admin.PATCH("/dogs/:id/status", d.Dog.UpdateStatus)
		admin.DELETE("/dogs/:id", d.Dog.Delete)

		admin.GET("/applications", d.Application.ListAll)
		admin.PUT("/applications/:id/status", d.Application.Review)
		admin.DELETE("/applications/:id", d.Application.Delete)

		admin.GET("/reports", d.Report.List)
		admin.PUT("/reports/:id/status", d.Report.AdminUpdateStatus)
		admin.DELETE("/reports/:id", d.Report.AdminDelete)

		admin.GET("/surrender-submissions", d.Surrender.AdminList)
		admin.GET("/surrender-submissions/urgent", d.Surrender.AdminListUrgent)
		admin.PUT("/surrender-submissions/:id/status", d.Surrender.AdminReview)
		admin.DELETE("/surrender-submissions/:id", d.Surrender.AdminDelete)

		admin.GET("/contact-messages", d.Contact.AdminList)
		admin.GET("/contact-messages/:id", d.Contact.Get)
		admin.PUT("/contact-messages/:id/respond", d.Contact.AdminRespond)
		admin.PUT("/contact-messages/:id/status", d.Contact.AdminUpdateStatus)
		admin.DELETE("/contact-messages/:id", d.Contact.AdminDelete)
	}

	return engine
}
