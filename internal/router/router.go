package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"folio/internal/config"
	"folio/internal/domain"
	"folio/internal/handler"
	"folio/internal/middleware"
	"folio/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	resumeH *handler.ResumeHandler,
	chatH *handler.ChatHandler,
	portfolioH *handler.PortfolioHandler,
	authH *handler.AuthHandler,
	noticeH *handler.NoticeHandler,
	templateH *handler.TemplateHandler,
	adminH *handler.AdminHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Core pipeline routes. These keep the frontend's original paths and its
	// always-200 contract.
	api := r.Group("/api")
	api.POST("/parse-resume", resumeH.ParseResume)
	api.POST("/analyze-resume", resumeH.AnalyzeResume)
	api.POST("/generate-chat-answers", chatH.GenerateAnswers)
	api.POST("/chat", chatH.Chat)
	api.POST("/submit", portfolioH.Submit)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/signup", authH.Signup)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)
	auth.POST("/social", authH.SocialLogin)
	auth.POST("/forgot-password", authH.ForgotPassword)
	auth.POST("/reset-password", authH.ResetPassword)

	// Public content routes
	v1.GET("/notices/active", noticeH.ListActive)
	v1.GET("/templates/config", templateH.ListConfigs)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))
	protected.PUT("/portfolio", portfolioH.Save)
	protected.GET("/portfolio", portfolioH.Get)

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/users", adminH.ListUsers)
	admin.DELETE("/users/:id", adminH.DeleteUser)
	admin.GET("/stats", adminH.Stats)
	admin.GET("/stats/ai", adminH.AIStats)
	admin.GET("/stats/export", adminH.ExportStats)
	admin.GET("/notices", noticeH.List)
	admin.POST("/notices", noticeH.Create)
	admin.PUT("/notices/:id", noticeH.Update)
	admin.DELETE("/notices/:id", noticeH.Delete)
	admin.PUT("/templates/config/:key", templateH.SetConfig)

	return r
}
