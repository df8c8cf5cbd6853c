package pharmaevents

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
	"pharmaevents.app/internal/dtos"
	"pharmaevents.app/internal/models"
)

// maxUploadMemory bounds how much of a multipart body is buffered in
// memory before spilling to disk.
const maxUploadMemory = 4 << 20

func (app *Application) eventRoutes(mux *http.ServeMux) {
	mux.HandleFunc(
		"POST /events/create",
		app.Services.Auth.Access(app.createEventHandler),
	)
	mux.HandleFunc(
		"POST /events/{id}/edit",
		app.Services.Auth.Access(app.editEventHandler),
	)
	mux.HandleFunc(
		"POST /delete-event/{id}",
		app.Services.Auth.Access(app.deleteEventHandler),
	)
	mux.HandleFunc(
		"GET /approve-event/{id}",
		app.Services.Auth.AdminAccess(app.approveEventHandler),
	)
	mux.HandleFunc(
		"GET /reject-event/{id}",
		app.Services.Auth.AdminAccess(app.rejectEventHandler),
	)
	mux.HandleFunc(
		"GET /events/export",
		app.Services.Auth.Access(app.exportEventsHandler),
	)
}

func (app *Application) createEventHandler(w http.ResponseWriter, r *http.Request) {
	user := app.currentUser(r)

	eventDto, imageFile, err := app.readEventForm(r, user)
	if err != nil {
		httptools.RedirectWithError(w, r, "/events/new", err)
		return
	}

	if ok, errs := eventDto.Validate(); !ok {
		app.renderEventForm(
			w,
			r,
			nil,
			*eventDto,
			errs,
			"/events/create",
			http.StatusUnprocessableEntity,
		)
		return
	}

	event, err := app.Services.Events.Create(r.Context(), user, eventDto, imageFile)
	if err != nil {
		httptools.RedirectWithError(w, r, "/events", err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/events/%d", event.ID), http.StatusSeeOther)
}

func (app *Application) editEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[int64](r, "id", nil)
	if err != nil {
		panic(err)
	}

	user := app.currentUser(r)

	eventDto, imageFile, err := app.readEventForm(r, user)
	if err != nil {
		httptools.RedirectWithError(
			w,
			r,
			fmt.Sprintf("/events/%d/edit", id),
			err,
		)
		return
	}

	if ok, errs := eventDto.Validate(); !ok {
		app.renderEventForm(
			w,
			r,
			nil,
			*eventDto,
			errs,
			fmt.Sprintf("/events/%d/edit", id),
			http.StatusUnprocessableEntity,
		)
		return
	}

	event, err := app.Services.Events.Update(
		r.Context(),
		user,
		id,
		eventDto,
		imageFile,
	)
	if err != nil {
		httptools.RedirectWithError(w, r, "/events", err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/events/%d", event.ID), http.StatusSeeOther)
}

func (app *Application) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[int64](r, "id", nil)
	if err != nil {
		panic(err)
	}

	user := app.currentUser(r)

	err = app.Services.Events.Delete(r.Context(), user, id)
	if err != nil {
		httptools.RedirectWithError(w, r, "/events", err)
		return
	}

	http.Redirect(w, r, "/events", http.StatusSeeOther)
}

func (app *Application) approveEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[int64](r, "id", nil)
	if err != nil {
		panic(err)
	}

	err = app.Services.Events.Approve(r.Context(), id)
	if err != nil {
		httptools.RedirectWithError(w, r, "/events", err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/events/%d", id), http.StatusSeeOther)
}

func (app *Application) rejectEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[int64](r, "id", nil)
	if err != nil {
		panic(err)
	}

	err = app.Services.Events.Reject(r.Context(), id)
	if err != nil {
		httptools.RedirectWithError(w, r, "/events", err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/events/%d", id), http.StatusSeeOther)
}

func (app *Application) exportEventsHandler(w http.ResponseWriter, r *http.Request) {
	filter := dtos.EventFilterFromQuery(r.URL.Query())

	events, err := app.Services.Events.GetAll(r.Context(), filter)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="events.csv"`)

	writer := csv.NewWriter(w)

	record := []string{
		"ID", "Name", "Type", "Category", "Format", "Start", "End",
		"Deadline", "Venue", "Governorate", "Requester", "Creator",
		"Status",
	}
	if err = writer.Write(record); err != nil {
		panic(err)
	}

	for _, event := range events {
		if err = writer.Write(exportRecord(event)); err != nil {
			panic(err)
		}
	}

	writer.Flush()
	if err = writer.Error(); err != nil {
		panic(err)
	}
}

func exportRecord(event models.Event) []string {
	format := "Offline"
	if event.IsOnline {
		format = "Online"
	}

	deadline := ""
	if event.Deadline != nil {
		deadline = event.Deadline.Format(dtos.DateTimeLayout)
	}

	return []string{
		fmt.Sprintf("%d", event.ID),
		event.Name,
		event.EventTypeName,
		event.CategoryName,
		format,
		event.Start.Format(dtos.DateTimeLayout),
		event.End.Format(dtos.DateTimeLayout),
		deadline,
		stringValue(event.Venue),
		stringValue(event.Governorate),
		event.RequesterName,
		event.CreatorEmail,
		event.Status,
	}
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// readEventForm decodes the event form, handling both the plain and the
// multipart (image attached) encodings. Admins create events directly;
// everyone else files a request, which additionally needs a requester
// and a registration deadline.
func (app *Application) readEventForm(
	r *http.Request,
	user models.User,
) (*dtos.EventDto, *string, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			return nil, nil, err
		}
	}

	var eventDto dtos.EventDto
	if err := httptools.ReadForm(r, &eventDto); err != nil {
		return nil, nil, err
	}

	eventDto.RequireDeadline = !user.IsAdmin()

	var imageFile *string
	file, header, err := r.FormFile("event_image")
	if err == nil {
		defer file.Close()

		stored, saveErr := app.Services.Events.SaveImage(
			file,
			header.Header.Get("Content-Type"),
			header.Filename,
		)
		if saveErr != nil {
			return nil, nil, saveErr
		}

		imageFile = &stored
	}

	return &eventDto, imageFile, nil
}
