package app

import (
	"fmt"

	"internhub_backend/database"
	"internhub_backend/internal/config"
	"internhub_backend/internal/handlers"
	"internhub_backend/internal/logger"
	"internhub_backend/internal/middleware"
	"internhub_backend/internal/notify"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/routes"
	"internhub_backend/internal/services"
	"internhub_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Run boots the whole application: config, logging, database, router.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	log := logger.GetLogger()

	db, err := database.ConnectGorm(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	log.Info("Database connection established", "driver", cfg.Database.Driver)

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	router := SetupRouter(db, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("Starting HTTP server", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// SetupRouter builds the Gin engine with all middleware, handlers and
// routes attached. Tests call this directly with their own db.
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer)
	return initializeGinRouter(db, cfg, appHandlers)
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	companyRepo := repositories.NewCompanyRepository()
	studentRepo := repositories.NewStudentRepository()
	internshipRepo := repositories.NewInternshipRepository()
	applicationRepo := repositories.NewApplicationRepository()

	var mailer notify.Sender
	if cfg.Email.Enabled {
		mailer = notify.NewSMTPSender(cfg)
	} else {
		mailer = notify.NoopSender{}
	}

	return &services.ServiceContainer{
		AccountService:     services.NewAccountService(companyRepo, studentRepo),
		InternshipService:  services.NewInternshipService(internshipRepo),
		ApplicationService: services.NewApplicationService(applicationRepo, internshipRepo, studentRepo, companyRepo, mailer),
		ProfileService:     services.NewProfileService(companyRepo, studentRepo),
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AccountHandler:     handlers.NewAccountHandler(sc.AccountService, base),
		InternshipHandler:  handlers.NewInternshipHandler(sc.InternshipService, base),
		ApplicationHandler: handlers.NewApplicationHandler(sc.ApplicationService, base),
		ProfileHandler:     handlers.NewProfileHandler(sc.ProfileService, base),
	}
}

func initializeGinRouter(db *gorm.DB, cfg *config.Config, appHandlers *handlers.AppHandlers) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))

	routes.RegisterRoutes(router, appHandlers, cfg.Static.Dir)

	return router
}
