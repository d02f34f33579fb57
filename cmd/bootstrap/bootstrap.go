package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pediatric-gastro-api/config"
	deliveryHttp "pediatric-gastro-api/internal/delivery/http"
	"pediatric-gastro-api/internal/delivery/http/handler"
	"pediatric-gastro-api/internal/delivery/http/middleware"
	"pediatric-gastro-api/internal/domain/entity"
	domainRepo "pediatric-gastro-api/internal/domain/repository"
	"pediatric-gastro-api/internal/infrastructure/cache"
	"pediatric-gastro-api/internal/infrastructure/database"
	"pediatric-gastro-api/internal/renderer"
	"pediatric-gastro-api/internal/repository"
	"pediatric-gastro-api/internal/repository/memory"
	"pediatric-gastro-api/internal/service"
	"pediatric-gastro-api/internal/usecase"
	"pediatric-gastro-api/pkg/identifier"
	"pediatric-gastro-api/pkg/jwt"
	"pediatric-gastro-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// repositories groups the persistence layer so the two backends can be
// swapped as one unit.
type repositories struct {
	users        domainRepo.UserRepository
	patients     domainRepo.PatientRepository
	evaluations  domainRepo.EvaluationRepository
	labExams     domainRepo.LabExamRepository
	certificates domainRepo.CertificateRepository
	auditLogs    domainRepo.AuditLogRepository
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Persistence: Postgres when configured, otherwise in-memory stores.
	// The in-memory backend keeps local development possible without a
	// database and loses everything on restart.
	var repos repositories
	if cfg.DB.Host != "" {
		db, err := database.NewPostgresConnection(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.RunMigrations(db, cfg.DB); err != nil {
			return nil, err
		}
		app.DB = db
		repos = repositories{
			users:        repository.NewUserRepository(db),
			patients:     repository.NewPatientRepository(db),
			evaluations:  repository.NewEvaluationRepository(db),
			labExams:     repository.NewLabExamRepository(db),
			certificates: repository.NewCertificateRepository(db),
			auditLogs:    repository.NewAuditLogRepository(db),
		}
		logrus.Info("Database connected successfully")
	} else {
		repos = repositories{
			users:        memory.NewUserStore(),
			patients:     memory.NewPatientStore(),
			evaluations:  memory.NewEvaluationStore(),
			labExams:     memory.NewLabExamStore(),
			certificates: memory.NewCertificateStore(),
			auditLogs:    memory.NewAuditLogStore(),
		}
		if err := seedMemoryData(repos); err != nil {
			return nil, fmt.Errorf("failed to seed in-memory data: %w", err)
		}
		logrus.Warn("DB_HOST not set, using in-memory stores")
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, err := initializeServer(cfg, repos, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, repos repositories, redisClient *redis.Client) (*http.Server, error) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, repos.auditLogs)
	editSessions := service.NewEditSessionService(redisClient)

	// Initialize renderer
	certificateRenderer, err := renderer.NewCertificateRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to build certificate renderer: %w", err)
	}

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, repos.users, jwtService, redisClient, auditService)
	userUsecase := usecase.NewUserUsecase(log, repos.users, auditService, editSessions)
	patientUsecase := usecase.NewPatientUsecase(log, repos.patients)
	evaluationUsecase := usecase.NewEvaluationUsecase(log, repos.evaluations, repos.labExams, repos.patients, auditService)
	certificateUsecase := usecase.NewCertificateUsecase(log, repos.certificates, repos.patients, repos.users, certificateRenderer, editSessions, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, repos.auditLogs)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase)
	evaluationHandler := handler.NewEvaluationHandler(evaluationUsecase, customValidator)
	certificateHandler := handler.NewCertificateHandler(certificateUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, userHandler, patientHandler, evaluationHandler, certificateHandler, auditLogHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// seedMemoryData loads a default doctor account and a couple of directory
// patients so the in-memory backend is usable right after start.
func seedMemoryData(repos repositories) error {
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	seq, err := repos.users.NextSequence(ctx)
	if err != nil {
		return err
	}

	if err := repos.users.Create(ctx, &entity.User{
		ID:                        identifier.FormatUserID(seq),
		FullName:                  "Dr. Marco Vinicio Yumiceba",
		Email:                     "admin@clinica.ec",
		Password:                  string(hashed),
		Role:                      entity.RoleAdmin,
		Specialty:                 "Gastroenterología Pediátrica",
		MedicalRegistrationNumber: "MSP-17542",
		ConsultationAddress:       "Av. 6 de Diciembre y Colón, Quito",
	}); err != nil {
		return err
	}

	patients := []entity.Patient{
		{
			ID:                   identifier.NewPatientID(),
			FullName:             "María José Andrade",
			LastName:             "Andrade",
			IdentificationNumber: "1712345678",
			FileNumber:           "HC-0001",
			DateOfBirth:          time.Date(2018, time.March, 14, 0, 0, 0, 0, time.UTC),
			Address:              "La Floresta, Quito",
			Phone:                "+593 99 123 4567",
		},
		{
			ID:                   identifier.NewPatientID(),
			FullName:             "Juan Sebastián Paredes",
			LastName:             "Paredes",
			IdentificationNumber: "1798765432",
			FileNumber:           "HC-0002",
			DateOfBirth:          time.Date(2020, time.November, 2, 0, 0, 0, 0, time.UTC),
		},
	}
	for i := range patients {
		if err := repos.patients.Create(ctx, &patients[i]); err != nil {
			return err
		}
	}

	return nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
