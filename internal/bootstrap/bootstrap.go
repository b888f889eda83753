package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	authz "github.com/edupath/admissions/internal/app/auth"
	appControllers "github.com/edupath/admissions/internal/app/controllers"
	appMigrations "github.com/edupath/admissions/internal/app/migrations"
	appRepos "github.com/edupath/admissions/internal/app/repositories"
	appRoutes "github.com/edupath/admissions/internal/app/routes"
	appServices "github.com/edupath/admissions/internal/app/services"
	"github.com/edupath/admissions/internal/config"
	"github.com/edupath/admissions/internal/db"
	appMiddleware "github.com/edupath/admissions/internal/middleware"
	pkgAuth "github.com/edupath/admissions/internal/pkg/auth"
	"github.com/edupath/admissions/internal/pkg/helpers"
	"github.com/edupath/admissions/internal/pkg/logger"
	"github.com/edupath/admissions/internal/pkg/metrics"
	"github.com/edupath/admissions/internal/pkg/validation"
	"github.com/edupath/admissions/internal/pkg/websocket"
	"github.com/edupath/admissions/internal/seed"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	AuthzService        *authz.AuthorizationService
	Registry            *websocket.Registry
	Relay               *websocket.Relay
	Redis               *redis.Client
	AuthService         *appServices.AuthService
	UserService         appServices.UserService
	UniversityService   appServices.UniversityService
	ScholarshipService  appServices.ScholarshipService
	NotificationService *appServices.NotificationService
	ApplicationService  *appServices.ApplicationService
	DocumentService     *appServices.DocumentService
	AdminService        *appServices.AdminService
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Controllers         appRoutes.Controllers
	Logger              zerolog.Logger
}

// Close releases the relay and the redis client
func (d *Dependencies) Close() {
	if d.Relay != nil {
		if err := d.Relay.Close(); err != nil {
			d.Logger.Error().Err(err).Msg("Failed to close notification relay")
		}
	}
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.Error().Err(err).Msg("Failed to close redis client")
		}
	}
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

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database, lgr)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Database.Seed {
		repos := appRepos.NewRepositories(database.Pool)
		stores := seed.Stores{
			Users:        repos.UserRepository,
			Universities: repos.UniversityRepository,
			Scholarships: repos.ScholarshipRepository,
		}
		if err := seed.CreateDefaultData(ctx, stores, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// setupRelay connects to redis and starts the cross-instance notification relay
func setupRelay(cfg *config.Config, deps *Dependencies) error {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	relay := websocket.NewRelay(client, cfg.Redis.Channel, deps.Registry, deps.Logger)
	// the subscription outlives this setup context
	if err := relay.Start(context.Background()); err != nil {
		client.Close()
		return err
	}

	deps.Redis = client
	deps.Relay = relay
	deps.Logger.Info().
		Str("addr", cfg.Redis.Addr).
		Str("channel", cfg.Redis.Channel).
		Str("origin", relay.Origin()).
		Msg("Notification relay started")
	return nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	if err := validation.RegisterRules(); err != nil {
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	deps := &Dependencies{Logger: lgr}
	deps.Repos = appRepos.NewRepositories(database.Pool)
	deps.Registry = websocket.NewRegistry()

	if cfg.Redis.Enabled {
		if err := setupRelay(cfg, deps); err != nil {
			lgr.Error().Err(err).Msg("Failed to start notification relay")
			return nil, err
		}
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})
	deps.AuthzService = authz.NewAuthorizationService(deps.Repos.UserRepository)

	// a nil *Relay must not reach the service as a non-nil interface
	var relay appServices.Relay
	if deps.Relay != nil {
		relay = deps.Relay
	}

	deps.NotificationService = appServices.NewNotificationService(
		deps.Repos.NotificationRepository,
		deps.Registry,
		relay,
		cfg.Notifications.PageSize,
		logger.Component("notifications"),
	)
	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, logger.Component("auth"))
	deps.UserService = appServices.NewUserService(
		deps.Repos.UserRepository,
		deps.AuthzService,
		helpers.ParseDuration(cfg.Notifications.OnlineWindow, appServices.DefaultOnlineWindow),
	)
	deps.UniversityService = appServices.NewUniversityService(deps.Repos.UniversityRepository, deps.Repos.UserRepository, deps.AuthzService)
	deps.ScholarshipService = appServices.NewScholarshipService(deps.Repos.ScholarshipRepository, deps.Repos.UniversityRepository, deps.AuthzService)
	deps.ApplicationService = appServices.NewApplicationService(
		deps.Repos.ApplicationRepository,
		deps.Repos.ScholarshipApplicationRepository,
		deps.Repos.UniversityRepository,
		deps.Repos.ScholarshipRepository,
		deps.NotificationService,
		deps.AuthzService,
		logger.Component("applications"),
	)
	deps.DocumentService = appServices.NewDocumentService(
		deps.Repos.DocumentRepository,
		deps.NotificationService,
		deps.AuthzService,
		logger.Component("documents"),
	)
	deps.AdminService = appServices.NewAdminService(deps.Repos.StatsRepository, deps.Registry, deps.AuthzService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	wsHandler := websocket.NewHandler(deps.Registry, deps.Repos.UserRepository, websocket.HandlerConfig{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		SendBuffer:     cfg.Notifications.SendBufferSize,
	}, logger.Component("websocket"))

	deps.Controllers = appRoutes.Controllers{
		Auth:          appControllers.NewAuthController(deps.AuthService),
		User:          appControllers.NewUserController(deps.UserService, deps.UniversityService),
		University:    appControllers.NewUniversityController(deps.UniversityService),
		Scholarship:   appControllers.NewScholarshipController(deps.ScholarshipService),
		Application:   appControllers.NewApplicationController(deps.ApplicationService),
		Document:      appControllers.NewDocumentController(deps.DocumentService),
		Notification:  appControllers.NewNotificationController(deps.NotificationService, cfg.Notifications.PageSize),
		Admin:         appControllers.NewAdminController(deps.AdminService),
		WebSocket:     wsHandler.HandleConnection,
		HealthChecker: database.Ping,
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS(cfg.Server.AllowedOrigins))
	router.Use(metrics.HTTPMiddleware())

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
