package pharmaevents

import (
	"encoding/json"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/justinas/alice"
	"github.com/xdoubleu/essentia/v2/pkg/middleware"
)

func (app *Application) Routes() http.Handler {
	mux := http.NewServeMux()

	app.templateRoutes(mux)
	app.authRoutes(mux)
	app.eventRoutes(mux)
	app.dashboardRoutes(mux)
	app.settingsRoutes(mux)

	var sentryClientOptions sentry.ClientOptions
	if len(app.Config.SentryDsn) > 0 {
		//nolint:exhaustruct //other fields are optional
		sentryClientOptions = sentry.ClientOptions{
			Dsn:              app.Config.SentryDsn,
			Environment:      app.Config.Env,
			Release:          app.Config.Release,
			EnableTracing:    true,
			TracesSampleRate: app.Config.SampleRate,
			SampleRate:       app.Config.SampleRate,
		}
	}

	allowedOrigins := []string{app.Config.WebURL}
	handlers, err := middleware.DefaultWithSentry(
		app.logger,
		allowedOrigins,
		app.Config.Env,
		sentryClientOptions,
	)

	if err != nil {
		panic(err)
	}

	standard := alice.New(handlers...)
	return standard.Then(mux)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		panic(err)
	}
}
