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

	appControllers "github.com/karthik/facultydesk/internal/app/controllers"
	appMigrations "github.com/karthik/facultydesk/internal/app/migrations"
	appRepos "github.com/karthik/facultydesk/internal/app/repositories"
	appRoutes "github.com/karthik/facultydesk/internal/app/routes"
	appServices "github.com/karthik/facultydesk/internal/app/services"
	"github.com/karthik/facultydesk/internal/config"
	"github.com/karthik/facultydesk/internal/db"
	appMiddleware "github.com/karthik/facultydesk/internal/middleware"
	pkgAuth "github.com/karthik/facultydesk/internal/pkg/auth"
	"github.com/karthik/facultydesk/internal/pkg/helpers"
	"github.com/karthik/facultydesk/internal/pkg/logger"
	"github.com/karthik/facultydesk/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            *appServices.AuthService
	FacultyService         *appServices.FacultyService
	AcademicYearService    *appServices.AcademicYearService
	ActivityTypeService    *appServices.ActivityTypeService
	ActivityService        *appServices.ActivityService
	SubjectService         *appServices.SubjectService
	AppraisalService       *appServices.AppraisalService
	DashboardService       *appServices.DashboardService
	AuthController         *appControllers.AuthController
	FacultyController      *appControllers.FacultyController
	AcademicYearController *appControllers.AcademicYearController
	ActivityTypeController *appControllers.ActivityTypeController
	ActivityController     *appControllers.ActivityController
	SubjectController      *appControllers.SubjectController
	AppraisalController    *appControllers.AppraisalController
	DashboardController    *appControllers.DashboardController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	Logger                 zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
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
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	repos := deps.Repos
	deps.AuthService = appServices.NewAuthService(repos.FacultyRepository, deps.JWTService, cfg.Admin)
	deps.FacultyService = appServices.NewFacultyService(repos.FacultyRepository, repos.SubjectRepository, repos.ActivityRepository)
	deps.AcademicYearService = appServices.NewAcademicYearService(repos.AcademicYearRepository)
	deps.ActivityTypeService = appServices.NewActivityTypeService(repos.ActivityTypeRepository)
	deps.ActivityService = appServices.NewActivityService(repos.ActivityRepository, repos.FacultyRepository, repos.AcademicYearRepository, repos.ActivityTypeRepository)
	deps.SubjectService = appServices.NewSubjectService(repos.SubjectRepository, repos.FacultyRepository, repos.AcademicYearRepository)
	deps.AppraisalService = appServices.NewAppraisalService(repos.AppraisalRepository, repos.FacultyRepository, repos.AcademicYearRepository)
	deps.DashboardService = appServices.NewDashboardService(repos.FacultyRepository, repos.ActivityRepository, repos.SubjectRepository, repos.AppraisalRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.FacultyController = appControllers.NewFacultyController(deps.FacultyService)
	deps.AcademicYearController = appControllers.NewAcademicYearController(deps.AcademicYearService)
	deps.ActivityTypeController = appControllers.NewActivityTypeController(deps.ActivityTypeService)
	deps.ActivityController = appControllers.NewActivityController(deps.ActivityService)
	deps.SubjectController = appControllers.NewSubjectController(deps.SubjectService)
	deps.AppraisalController = appControllers.NewAppraisalController(deps.AppraisalService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)

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

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.FacultyController,
		deps.AcademicYearController,
		deps.ActivityTypeController,
		deps.ActivityController,
		deps.SubjectController,
		deps.AppraisalController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	return router
}
