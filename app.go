//nolint:revive //it is what it is
package pharmaevents

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"time"
	_ "time/tzdata"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"pharmaevents.app/internal/config"
	"pharmaevents.app/internal/jobs"
	"pharmaevents.app/internal/repositories"
	"pharmaevents.app/internal/services"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

//go:embed templates/html/*.html
var htmlTemplates embed.FS

//go:embed static
var staticFiles embed.FS

type Application struct {
	logger       *slog.Logger
	ctx          context.Context
	ctxCancel    context.CancelFunc
	db           postgres.DB
	Config       config.Config
	Repositories *repositories.Repositories
	Services     *services.Services
	tpl          *template.Template
	jobQueue     *threading.JobQueue
}

func New(
	logger *slog.Logger,
	cfg config.Config,
	db postgres.DB,
) *Application {
	tpl := template.Must(template.ParseFS(htmlTemplates, "templates/html/*.html"))

	//nolint:mnd //no magic number
	jobQueue := threading.NewJobQueue(logger, 2, 100)

	//nolint:exhaustruct //other fields are optional
	app := &Application{
		logger:   logger,
		Config:   cfg,
		tpl:      tpl,
		jobQueue: jobQueue,
	}

	app.setContext()
	app.setDB(db)
	app.setJobs()

	return app
}

func (app *Application) setDB(db postgres.DB) {
	// make sure previous app is cancelled internally
	app.ctxCancel()
	app.jobQueue.Clear()

	app.setContext()

	spandb := postgres.NewSpanDB(db)
	app.db = spandb

	app.Repositories = repositories.New(app.db)
	app.Services = services.New(
		app.logger,
		app.Config,
		app.Repositories,
		app.tpl,
	)
}

func (app *Application) setJobs() {
	err := app.jobQueue.AddJob(
		jobs.NewSessionCleanupJob(app.Repositories.Sessions),
		app.jobStateChanged,
	)
	if err != nil {
		panic(err)
	}
}

func (app *Application) jobStateChanged(
	id string,
	isRunning bool,
	_ *time.Time,
) {
	app.logger.Debug(
		"job state changed",
		slog.String("id", id),
		slog.Bool("isRunning", isRunning),
	)
}

func (app *Application) setContext() {
	ctx, cancel := context.WithCancel(context.Background())
	app.ctx = ctx
	app.ctxCancel = cancel
}

func (app *Application) ApplyMigrations(db *pgxpool.Pool) error {
	migrationsDB := stdlib.OpenDBFromPool(db)

	goose.SetLogger(slog.NewLogLogger(app.logger.Handler(), slog.LevelInfo))

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return err
	}

	if err := goose.Up(migrationsDB, "migrations"); err != nil {
		return err
	}

	return nil
}

// EnsureAdmin seeds the default admin account on an empty users table.
func (app *Application) EnsureAdmin() error {
	return app.Services.Auth.EnsureAdmin(app.ctx)
}
