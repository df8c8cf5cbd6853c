package pharmaevents

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/contexttools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
	tpltools "github.com/xdoubleu/essentia/v2/pkg/tpl"
	"pharmaevents.app/internal/charts"
	"pharmaevents.app/internal/constants"
	"pharmaevents.app/internal/dtos"
	"pharmaevents.app/internal/models"
	"pharmaevents.app/internal/services"
)

func (app *Application) templateRoutes(mux *http.ServeMux) {
	mux.Handle(
		"GET /static/",
		http.FileServerFS(staticFiles),
	)
	mux.Handle(
		"GET /uploads/",
		http.StripPrefix(
			"/uploads/",
			http.FileServer(http.Dir(app.Config.UploadDir)),
		),
	)
	mux.HandleFunc(
		"GET /{$}",
		app.Services.Auth.TemplateAccess(app.rootHandler),
	)
	mux.HandleFunc(
		"GET /dashboard",
		app.Services.Auth.TemplateAccess(app.dashboardPageHandler),
	)
	mux.HandleFunc(
		"GET /events",
		app.Services.Auth.TemplateAccess(app.eventsPageHandler),
	)
	mux.HandleFunc(
		"GET /events/new",
		app.Services.Auth.TemplateAccess(app.newEventPageHandler),
	)
	mux.HandleFunc(
		"GET /events/{id}",
		app.Services.Auth.TemplateAccess(app.eventDetailsPageHandler),
	)
	mux.HandleFunc(
		"GET /events/{id}/edit",
		app.Services.Auth.TemplateAccess(app.editEventPageHandler),
	)
	mux.HandleFunc(
		"GET /settings",
		app.Services.Auth.TemplateAccess(app.settingsPageHandler),
	)
}

func (app *Application) currentUser(r *http.Request) models.User {
	user := contexttools.GetValue[models.User](r.Context(), constants.UserContextKey)
	if user == nil {
		panic(errors.New("not signed in"))
	}

	return *user
}

func (app *Application) branding(r *http.Request) *services.Branding {
	branding, err := app.Services.Settings.Branding(r.Context())
	if err != nil {
		panic(err)
	}

	return branding
}

func (app *Application) rootHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

type DashboardData struct {
	Branding       *services.Branding
	User           models.User
	Stats          *models.Stats
	CategoryChart  template.HTML
	TypeChart      template.HTML
	RequesterChart template.HTML
	MonthlyChart   template.HTML
}

func (app *Application) dashboardPageHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	ctx := r.Context()

	categoryChart, err := charts.RenderHTML(charts.Doughnut(
		"Events by Category",
		charts.FromCounts(app.Services.Dashboard.CategoryBreakdown(ctx)),
	))
	if err != nil {
		panic(err)
	}

	typeChart, err := charts.RenderHTML(charts.HorizontalBar(
		"Events by Type",
		charts.FromCounts(app.Services.Dashboard.TypeBreakdown(ctx)),
	))
	if err != nil {
		panic(err)
	}

	requesterChart, err := charts.RenderHTML(charts.HorizontalBar(
		"Events by Requester",
		charts.FromCounts(app.Services.Dashboard.RequesterBreakdown(ctx)),
	))
	if err != nil {
		panic(err)
	}

	monthlyChart, err := charts.RenderHTML(charts.Column(
		"Events per Month",
		app.Services.Dashboard.MonthlyVolume(ctx, time.Now().Year()),
	))
	if err != nil {
		panic(err)
	}

	data := DashboardData{
		Branding:       app.branding(r),
		User:           app.currentUser(r),
		Stats:          app.Services.Dashboard.Stats(ctx),
		CategoryChart:  categoryChart,
		TypeChart:      typeChart,
		RequesterChart: requesterChart,
		MonthlyChart:   monthlyChart,
	}

	tpltools.RenderWithPanic(app.tpl, w, "dashboard.html", data)
}

type EventsPageData struct {
	Branding   *services.Branding
	User       models.User
	Events     []models.Event
	Categories []models.Category
	EventTypes []models.EventType
	Filter     dtos.EventFilterDto
	View       string
}

func (app *Application) eventsPageHandler(w http.ResponseWriter, r *http.Request) {
	filter := dtos.EventFilterFromQuery(r.URL.Query())

	events, err := app.Services.Events.GetAll(r.Context(), filter)
	if err != nil {
		panic(err)
	}

	categories, err := app.Services.Settings.Categories(r.Context())
	if err != nil {
		panic(err)
	}

	eventTypes, err := app.Services.Settings.EventTypes(r.Context())
	if err != nil {
		panic(err)
	}

	view := dtos.ViewCard
	if cookie, cookieErr := r.Cookie(constants.ViewCookieName); cookieErr == nil &&
		cookie.Value == dtos.ViewList {
		view = dtos.ViewList
	}

	data := EventsPageData{
		Branding:   app.branding(r),
		User:       app.currentUser(r),
		Events:     events,
		Categories: categories,
		EventTypes: eventTypes,
		Filter:     filter,
		View:       view,
	}

	tpltools.RenderWithPanic(app.tpl, w, "events.html", data)
}

type EventDetailsData struct {
	Branding *services.Branding
	User     models.User
	Event    *models.Event
}

func (app *Application) eventDetailsPageHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	id, err := parse.URLParam[int64](r, "id", nil)
	if err != nil {
		panic(err)
	}

	event, err := app.Services.Events.GetByID(r.Context(), id)
	if err != nil {
		panic(err)
	}

	data := EventDetailsData{
		Branding: app.branding(r),
		User:     app.currentUser(r),
		Event:    event,
	}

	tpltools.RenderWithPanic(app.tpl, w, "event_details.html", data)
}

type EventFormData struct {
	Branding     *services.Branding
	User         models.User
	Event        *models.Event
	Form         dtos.EventDto
	Errors       map[string]string
	Categories   []models.Category
	EventTypes   []models.EventType
	Governorates []string
	Action       string
}

func (app *Application) newEventPageHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	//nolint:exhaustruct //empty form
	app.renderEventForm(
		w,
		r,
		nil,
		dtos.EventDto{},
		map[string]string{},
		"/events/create",
		http.StatusOK,
	)
}

func (app *Application) editEventPageHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	id, err := parse.URLParam[int64](r, "id", nil)
	if err != nil {
		panic(err)
	}

	user := app.currentUser(r)

	event, err := app.Services.Events.GetByID(r.Context(), id)
	if err != nil {
		panic(err)
	}

	if !user.IsAdmin() && event.UserID != user.ID {
		http.Redirect(w, r, "/events", http.StatusSeeOther)
		return
	}

	app.renderEventForm(
		w,
		r,
		event,
		formFromEvent(event),
		map[string]string{},
		fmt.Sprintf("/events/%d/edit", id),
		http.StatusOK,
	)
}

func (app *Application) renderEventForm(
	w http.ResponseWriter,
	r *http.Request,
	event *models.Event,
	form dtos.EventDto,
	errs map[string]string,
	action string,
	status int,
) {
	categories, err := app.Services.Settings.Categories(r.Context())
	if err != nil {
		panic(err)
	}

	eventTypes, err := app.Services.Settings.EventTypes(r.Context())
	if err != nil {
		panic(err)
	}

	data := EventFormData{
		Branding:     app.branding(r),
		User:         app.currentUser(r),
		Event:        event,
		Form:         form,
		Errors:       errs,
		Categories:   categories,
		EventTypes:   eventTypes,
		Governorates: models.Governorates,
		Action:       action,
	}

	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	tpltools.RenderWithPanic(app.tpl, w, "event_form.html", data)
}

// formFromEvent prefills the edit form from a stored event.
func formFromEvent(event *models.Event) dtos.EventDto {
	//nolint:exhaustruct //remaining fields filled below
	form := dtos.EventDto{
		Title:         event.Name,
		Description:   event.Description,
		RequesterName: event.RequesterName,
		StartDate:     event.Start.Format("2006-01-02"),
		StartTime:     event.Start.Format("15:04"),
		EndDate:       event.End.Format("2006-01-02"),
		EndTime:       event.End.Format("15:04"),
	}

	if event.IsOnline {
		form.IsOnline = "on"
	}
	if event.Deadline != nil {
		form.DeadlineDate = event.Deadline.Format("2006-01-02")
		form.DeadlineTime = event.Deadline.Format("15:04")
	}
	if event.Venue != nil {
		form.Venue = *event.Venue
	}
	if event.Governorate != nil {
		form.Governorate = *event.Governorate
	}
	if event.CategoryID != nil {
		form.CategoryID = fmt.Sprintf("%d", *event.CategoryID)
	}
	if event.EventTypeID != nil {
		form.EventTypeID = fmt.Sprintf("%d", *event.EventTypeID)
	}

	return form
}

type SettingsPageData struct {
	Branding   *services.Branding
	User       models.User
	Categories []models.Category
	EventTypes []models.EventType
	Users      []models.User
	Roles      []models.Role
}

func (app *Application) settingsPageHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	user := app.currentUser(r)

	if !user.IsAdmin() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	categories, err := app.Services.Settings.Categories(r.Context())
	if err != nil {
		panic(err)
	}

	eventTypes, err := app.Services.Settings.EventTypes(r.Context())
	if err != nil {
		panic(err)
	}

	users, err := app.Services.Users.GetAll(r.Context())
	if err != nil {
		panic(err)
	}

	data := SettingsPageData{
		Branding:   app.branding(r),
		User:       user,
		Categories: categories,
		EventTypes: eventTypes,
		Users:      users,
		Roles:      models.Roles(),
	}

	tpltools.RenderWithPanic(app.tpl, w, "settings.html", data)
}
