package v1

import (
	"net/http"
	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/audit"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC  domain.ContactUsecase
	ProjectUC  domain.ProjectUsecase
	SkillUC    domain.SkillUsecase
	SettingsUC domain.SettingsUsecase
	HealthUC   usecase.HealthUsecase
	Forms      *usecase.FormRegistry
	Audit      *audit.Logger
	Redis      *goredis.Client // optional, shared rate limit store
	Config     *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware([]string{cfg.FrontendURL}, cfg.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsProduction()))
	r.Use(middleware.ErrorHandler())

	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second

	globalLimit := middleware.DefaultRateLimitConfig()
	globalLimit.Limit = cfg.GlobalRateLimit
	globalLimit.Window = window
	globalLimit.Redis = deps.Redis
	globalLimit.Audit = deps.Audit

	contactLimit := middleware.ContactRateLimitConfig()
	contactLimit.Limit = cfg.ContactRateLimit
	contactLimit.Window = window
	contactLimit.Redis = deps.Redis
	contactLimit.Audit = deps.Audit

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		status, healthy := deps.HealthUC.Check(c.Request.Context())
		if !healthy {
			response.Failure(c, http.StatusServiceUnavailable, "System degraded", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	// Swagger
	if cfg.SwaggerEnabled {
		v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Public routes
	public := v1.Group("")
	public.Use(middleware.RateLimitMiddleware(globalLimit))
	public.Use(middleware.Visitor(cfg.IsProduction()))
	{
		NewContactHandler(public, deps.ContactUC, deps.Forms, deps.Audit, middleware.RateLimitMiddleware(contactLimit))
		NewProjectHandler(public, deps.ProjectUC)
		NewSkillHandler(public, deps.SkillUC)
		NewSettingsHandler(public, deps.SettingsUC, deps.Audit)
	}

	return r
}
