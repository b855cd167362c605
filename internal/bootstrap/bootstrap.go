package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alqalam/college-backend/internal/app/controllers"
	"github.com/alqalam/college-backend/internal/app/migrations"
	"github.com/alqalam/college-backend/internal/app/repositories"
	"github.com/alqalam/college-backend/internal/app/routes"
	"github.com/alqalam/college-backend/internal/app/services"
	"github.com/alqalam/college-backend/internal/app/session"
	"github.com/alqalam/college-backend/internal/config"
	"github.com/alqalam/college-backend/internal/db"
	"github.com/alqalam/college-backend/internal/middleware"
	"github.com/alqalam/college-backend/internal/pkg/auth"
	"github.com/alqalam/college-backend/internal/pkg/helpers"
	"github.com/alqalam/college-backend/internal/pkg/logger"
	"github.com/alqalam/college-backend/internal/seed"
)

// Dependencies holds the wired application components.
type Dependencies struct {
	Repos      *repositories.Repositories
	Sessions   *session.Store
	JWTService *auth.JWTService

	AuthService    *services.AuthService
	ProgramService *services.ProgramService
	PortalService  *services.PortalService

	AuthController    *controllers.AuthController
	ProgramController *controllers.ProgramController
	PortalController  *controllers.PortalController

	AuthMiddleware *middleware.AuthMiddleware
}

// LoadConfigAndSetupLogger loads the configuration and configures the global logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	logger.Info().
		Str("mode", cfg.Server.Mode).
		Str("port", cfg.Server.Port).
		Msg("Configuration loaded")

	return cfg, nil
}

// SetupDatabase connects to PostgreSQL, runs pending migrations and seeds
// the default data when seeding is enabled.
func SetupDatabase(ctx context.Context, cfg *config.Config) (*db.PostgresDB, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(ctx, "migrations"); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if cfg.Seed.Enabled {
		// Seeding failures should not prevent startup
		if err := seed.CreateDefaultData(ctx, database.Pool, cfg.Seed); err != nil {
			logger.Warn().Err(err).Msg("Some default data could not be seeded")
		}
	}

	return database, nil
}

// BuildDependencies wires repositories, services, controllers and middleware.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB) *Dependencies {
	repos := repositories.NewRepositories(database.Pool)
	sessions := session.NewStore()

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	authService := services.NewAuthService(repos.UserRepository, repos.StudentRepository, jwtService)
	programService := services.NewProgramService(repos.ProgramRepository, sessions)
	portalService := services.NewPortalService(
		repos.StudentRepository,
		repos.ProgramRepository,
		repos.GradeRepository,
		repos.ScheduleRepository,
		repos.DocumentRepository,
		repos.PaymentRepository,
		repos.NotificationRepository,
	)

	return &Dependencies{
		Repos:      repos,
		Sessions:   sessions,
		JWTService: jwtService,

		AuthService:    authService,
		ProgramService: programService,
		PortalService:  portalService,

		AuthController:    controllers.NewAuthController(authService),
		ProgramController: controllers.NewProgramController(programService),
		PortalController:  controllers.NewPortalController(portalService),

		AuthMiddleware: middleware.NewAuthMiddleware(jwtService),
	}
}

// SetupRouter builds the Gin engine and registers all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())

	routes.SetupRouter(
		router,
		deps.AuthController,
		deps.ProgramController,
		deps.PortalController,
		deps.AuthMiddleware,
	)

	return router
}
