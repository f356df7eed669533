// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "exercise-tracker/internal/api"
	"exercise-tracker/internal/api/handler"
	"exercise-tracker/internal/config"
	"exercise-tracker/internal/repository"
	"exercise-tracker/internal/repository/sqlite"
	"exercise-tracker/internal/service"
	"exercise-tracker/internal/util"
	"exercise-tracker/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository     repository.UserRepository
	ExerciseRepository repository.ExerciseRepository

	// Services
	UserService     service.UserService
	ExerciseService service.ExerciseService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger(app.Config.Log)
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Open the database and make sure the schema exists
	database, err := db.NewSQLiteDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database opened.", "path", app.Config.DB.Path)

	if err := sqlite.EnsureSchema(ctx, app.DB); err != nil {
		return err
	}
	app.Logger.Info("Database schema ensured.")

	// 4. Initialize Repositories
	app.UserRepository = sqlite.NewUserRepository()
	app.ExerciseRepository = sqlite.NewExerciseRepository()

	// 5. Initialize Services
	app.UserService = service.NewUserService(app.DB, app.UserRepository)
	app.ExerciseService = service.NewExerciseService(
		app.DB, // This is the DBTxBeginner
		app.DB, // This is the DBExecutor
		app.UserRepository,
		app.ExerciseRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.Logger.Info("Services initialized.")

	// 6. Initialize HTTP Handlers and Router
	userHandler := handler.NewUserHandler(app.UserService, app.Logger)
	exerciseHandler := handler.NewExerciseHandler(app.ExerciseService, app.Logger)
	app.HTTPHandler = router.NewRouter(userHandler, exerciseHandler, app.DB, router.RouterConfig{
		AllowedOrigins: app.Config.AllowedOrigins,
		PublicDir:      app.Config.PublicDir,
		ViewsDir:       app.Config.ViewsDir,
	}, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
