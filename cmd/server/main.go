package main

import (
	"fmt"
	"log"

	_ "folio/docs"
	"folio/internal/auth/google"
	"folio/internal/auth/kakao"
	"folio/internal/auth/naver"
	"folio/internal/config"
	"folio/internal/domain"
	"folio/internal/email/noop"
	"folio/internal/email/ses"
	"folio/internal/handler"
	"folio/internal/llm"
	"folio/internal/llm/gemini"
	"folio/internal/port"
	"folio/internal/repository/postgres"
	"folio/internal/router"
	"folio/internal/service"
	s3storage "folio/internal/storage/s3"
)

// @title Folio API
// @version 1.0
// @description AI portfolio builder backend: resume analysis, interview answer drafting and portfolio management.
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT access token, prefixed with "Bearer "
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	portfolioRepo := postgres.NewPortfolioRepo(db)
	noticeRepo := postgres.NewNoticeRepo(db)
	templateRepo := postgres.NewTemplateConfigRepo(db)
	usageRepo := postgres.NewUsageRepo(db)

	// Initialize storage (optional; archiving disabled without a bucket)
	var storage port.ObjectStorage
	if cfg.S3.Bucket != "" {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Initialize email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.FrontendURL)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender(cfg.Email.FrontendURL)
	}

	// Initialize chat model
	llm.Register("gemini", func(mc *config.ModelConfig) (port.ChatModel, error) {
		return gemini.NewClient(mc), nil
	})
	model, err := llm.New(&cfg.Model)
	if err != nil {
		return fmt.Errorf("failed to initialize chat model: %w", err)
	}

	// Social login verifiers
	verifiers := map[string]port.SocialTokenVerifier{
		domain.AuthProviderGoogle: google.NewVerifier(cfg.Social.GoogleClientID),
		domain.AuthProviderKakao:  kakao.NewVerifier(),
		domain.AuthProviderNaver:  naver.NewVerifier(),
	}

	// Initialize services
	statsSvc := service.NewStatsService(userRepo, portfolioRepo, usageRepo)
	analysisSvc := service.NewAnalysisService(model, storage, statsSvc, cfg.S3)
	chatSvc := service.NewChatService(model, statsSvc)
	portfolioSvc := service.NewPortfolioService(model, portfolioRepo, statsSvc)
	authSvc := service.NewAuthService(userRepo, emailSender, cfg.JWT)
	socialAuthSvc := service.NewSocialAuthService(verifiers, userRepo, authSvc)
	userSvc := service.NewUserService(userRepo)
	noticeSvc := service.NewNoticeService(noticeRepo)
	templateSvc := service.NewTemplateConfigService(templateRepo)

	// Initialize handlers
	resumeH := handler.NewResumeHandler(analysisSvc)
	chatH := handler.NewChatHandler(chatSvc)
	portfolioH := handler.NewPortfolioHandler(portfolioSvc)
	authH := handler.NewAuthHandler(authSvc, socialAuthSvc)
	noticeH := handler.NewNoticeHandler(noticeSvc)
	templateH := handler.NewTemplateHandler(templateSvc)
	adminH := handler.NewAdminHandler(userSvc, statsSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, resumeH, chatH, portfolioH, authH, noticeH, templateH, adminH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
