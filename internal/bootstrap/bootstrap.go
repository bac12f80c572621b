package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/deniz/campuscare/internal/app/auth"
	appControllers "github.com/deniz/campuscare/internal/app/controllers"
	appMigrations "github.com/deniz/campuscare/internal/app/migrations"
	appRepos "github.com/deniz/campuscare/internal/app/repositories"
	appRoutes "github.com/deniz/campuscare/internal/app/routes"
	appServices "github.com/deniz/campuscare/internal/app/services"
	"github.com/deniz/campuscare/internal/config"
	"github.com/deniz/campuscare/internal/db"
	appMiddleware "github.com/deniz/campuscare/internal/middleware"
	pkgAuth "github.com/deniz/campuscare/internal/pkg/auth"
	"github.com/deniz/campuscare/internal/pkg/genai"
	"github.com/deniz/campuscare/internal/pkg/helpers"
	"github.com/deniz/campuscare/internal/pkg/logger"
	"github.com/deniz/campuscare/internal/pkg/querylog"
	"github.com/deniz/campuscare/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        *appServices.AuthService
	UserService        appServices.UserService
	ChatbotService     *appServices.ChatbotService
	TrendService       *appServices.TrendService
	ReviewService      *appServices.ReviewService
	TicketService      *appServices.TicketService
	SessionService     *appServices.SessionService
	ResourceService    *appServices.ResourceService
	AuthController     *appControllers.AuthController
	UserController     *appControllers.UserController
	ChatbotController  *appControllers.ChatbotController
	TrendController    *appControllers.TrendController
	ReviewController   *appControllers.ReviewController
	TicketController   *appControllers.TicketController
	SessionController  *appControllers.SessionController
	ResourceController *appControllers.ResourceController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	AuthzService       *appAuth.AuthorizationService
	QueryLog           *querylog.Log
	Generator          *genai.Client
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding is best effort, a partial seed must not block startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// The query log lives for the process, reset only on restart
	deps.QueryLog = querylog.New()

	deps.Generator = genai.NewClient(genai.Config{
		APIKey:  cfg.AI.APIKey,
		Model:   cfg.AI.Model,
		Timeout: helpers.ParseDuration(cfg.AI.Timeout, 15*time.Second),
	})

	deps.AuthzService = appAuth.NewAuthorizationService(
		deps.Repos.UserRepository,
		deps.Repos.ConversationRepository,
		deps.Repos.TicketRepository,
		deps.Repos.SessionRepository,
	)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.UserService = appServices.NewUserService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.Repos.ConversationRepository,
		lgr,
	)
	deps.ChatbotService = appServices.NewChatbotService(
		deps.Repos.ConversationRepository,
		deps.Generator,
		deps.QueryLog,
		lgr,
	)
	deps.TrendService = appServices.NewTrendService(deps.Repos.ReviewRepository, deps.QueryLog)
	deps.ReviewService = appServices.NewReviewService(deps.Repos.ReviewRepository, lgr)
	deps.TicketService = appServices.NewTicketService(deps.Repos.TicketRepository, deps.Repos.UserRepository, deps.AuthzService, lgr)
	deps.SessionService = appServices.NewSessionService(deps.Repos.SessionRepository, deps.Repos.UserRepository, deps.AuthzService, lgr)
	deps.ResourceService = appServices.NewResourceService(deps.Repos.ResourceRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, lgr)
	deps.ChatbotController = appControllers.NewChatbotController(deps.ChatbotService, deps.AuthzService, lgr)
	deps.TrendController = appControllers.NewTrendController(deps.TrendService, lgr)
	deps.ReviewController = appControllers.NewReviewController(deps.ReviewService, lgr)
	deps.TicketController = appControllers.NewTicketController(deps.TicketService, lgr)
	deps.SessionController = appControllers.NewSessionController(deps.SessionService, lgr)
	deps.ResourceController = appControllers.NewResourceController(deps.ResourceService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()
	router.Use(appMiddleware.BodyLimit(cfg.Server.MaxBodyBytes))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.ChatbotController,
		deps.TrendController,
		deps.ReviewController,
		deps.TicketController,
		deps.SessionController,
		deps.ResourceController,
		deps.AuthMiddleware,
	)

	return router
}
