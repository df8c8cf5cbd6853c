package pharmaevents

import (
	"net/http"
	"strconv"
	"time"
)

// The dashboard widget endpoints never fail: broken data sources
// degrade to empty datasets inside the service layer.
func (app *Application) dashboardRoutes(mux *http.ServeMux) {
	mux.HandleFunc(
		"GET /api/dashboard/stats",
		app.Services.Auth.Access(app.statsHandler),
	)
	mux.HandleFunc(
		"GET /api/dashboard/categories",
		app.Services.Auth.Access(app.categoryBreakdownHandler),
	)
	mux.HandleFunc(
		"GET /api/dashboard/event-types",
		app.Services.Auth.Access(app.typeBreakdownHandler),
	)
	mux.HandleFunc(
		"GET /api/dashboard/requesters",
		app.Services.Auth.Access(app.requesterBreakdownHandler),
	)
	mux.HandleFunc(
		"GET /api/dashboard/monthly",
		app.Services.Auth.Access(app.monthlyVolumeHandler),
	)
}

func (app *Application) statsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, app.Services.Dashboard.Stats(r.Context()))
}

func (app *Application) categoryBreakdownHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	writeJSON(
		w,
		http.StatusOK,
		app.Services.Dashboard.CategoryBreakdown(r.Context()),
	)
}

func (app *Application) typeBreakdownHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	writeJSON(w, http.StatusOK, app.Services.Dashboard.TypeBreakdown(r.Context()))
}

func (app *Application) requesterBreakdownHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	writeJSON(
		w,
		http.StatusOK,
		app.Services.Dashboard.RequesterBreakdown(r.Context()),
	)
}

func (app *Application) monthlyVolumeHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	year := time.Now().Year()
	if value := r.URL.Query().Get("year"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			year = parsed
		}
	}

	writeJSON(
		w,
		http.StatusOK,
		app.Services.Dashboard.MonthlyVolume(r.Context(), year),
	)
}
