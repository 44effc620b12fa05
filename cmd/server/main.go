package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fundraising.backend/internal/config"
	"fundraising.backend/internal/infrastructure/models"
	"fundraising.backend/internal/infrastructure/repositories"
	"fundraising.backend/internal/infrastructure/storage"
	"fundraising.backend/internal/interfaces/http/handlers"
	"fundraising.backend/internal/interfaces/http/middleware"
	"fundraising.backend/internal/usecases"
	"fundraising.backend/pkg/jwt"
	"fundraising.backend/pkg/logger"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not available: %v (endpoints will return errors)", err)
	} else {
		if err := db.AutoMigrate(
			&models.Founder{},
			&models.Investor{},
			&models.Admin{},
			&models.Project{},
			&models.Investment{},
			&models.Update{},
		); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
		log.Println("connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	// Initialize repositories
	founderRepo := repositories.NewFounderRepository(db)
	investorRepo := repositories.NewInvestorRepository(db)
	adminRepo := repositories.NewAdminRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	investmentRepo := repositories.NewInvestmentRepository(db)
	updateRepo := repositories.NewUpdateRepository(db)
	uow := repositories.NewUnitOfWork(db)

	fileStore := storage.NewFileStore(cfg.Storage.StaticDir)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(founderRepo, investorRepo, adminRepo, jwtService)
	founderUsecase := usecases.NewFounderUsecase(founderRepo)
	investorUsecase := usecases.NewInvestorUsecase(investorRepo)
	adminUsecase := usecases.NewAdminUsecase(adminRepo, cfg.Admin.CreationToken)
	projectUsecase := usecases.NewProjectUsecase(projectRepo, founderRepo, fileStore, cfg.Server.HostAddress)
	investmentUsecase := usecases.NewInvestmentUsecase(investmentRepo, projectRepo, uow)
	updateUsecase := usecases.NewUpdateUsecase(updateRepo, projectRepo, investmentRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	founderHandler := handlers.NewFounderHandler(founderUsecase)
	investorHandler := handlers.NewInvestorHandler(investorUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase)
	projectHandler := handlers.NewProjectHandler(projectUsecase)
	investmentHandler := handlers.NewInvestmentHandler(investmentUsecase)
	updateHandler := handlers.NewUpdateHandler(updateUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerRoutes(r, routeDeps{
		authHandler:       authHandler,
		founderHandler:    founderHandler,
		investorHandler:   investorHandler,
		adminHandler:      adminHandler,
		projectHandler:    projectHandler,
		investmentHandler: investmentHandler,
		updateHandler:     updateHandler,
		authMiddleware:    authMiddleware,
	})

	log.Printf("fundraising backend starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
