package pharmaevents

import (
	"encoding/csv"
	"errors"
	"net/http"
	"time"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
	"pharmaevents.app/internal/constants"
	"pharmaevents.app/internal/dtos"
	"pharmaevents.app/internal/models"
	"pharmaevents.app/internal/services"
)

const viewCookieTTL = 365 * 24 * time.Hour

func (app *Application) settingsRoutes(mux *http.ServeMux) {
	mux.HandleFunc(
		"POST /api/settings/app",
		app.Services.Auth.AdminAccess(app.updateAppNameHandler),
	)
	mux.HandleFunc(
		"POST /api/settings/theme",
		app.Services.Auth.AdminAccess(app.updateThemeHandler),
	)
	mux.HandleFunc(
		"POST /api/settings/login-content",
		app.Services.Auth.AdminAccess(app.updateLoginContentHandler),
	)
	mux.HandleFunc(
		"POST /api/settings/logo",
		app.Services.Auth.AdminAccess(app.uploadLogoHandler),
	)

	mux.HandleFunc(
		"GET /api/categories",
		app.Services.Auth.Access(app.categoriesHandler),
	)
	mux.HandleFunc(
		"POST /api/categories",
		app.Services.Auth.AdminAccess(app.createCategoryHandler),
	)
	mux.HandleFunc(
		"DELETE /api/categories/{id}",
		app.Services.Auth.AdminAccess(app.deleteCategoryHandler),
	)

	mux.HandleFunc(
		"GET /api/event-types",
		app.Services.Auth.Access(app.eventTypesHandler),
	)
	mux.HandleFunc(
		"POST /api/event-types",
		app.Services.Auth.AdminAccess(app.createEventTypeHandler),
	)
	mux.HandleFunc(
		"DELETE /api/event-types/{id}",
		app.Services.Auth.AdminAccess(app.deleteEventTypeHandler),
	)

	mux.HandleFunc(
		"GET /api/users/list",
		app.Services.Auth.AdminAccess(app.usersHandler),
	)
	mux.HandleFunc(
		"POST /api/users",
		app.Services.Auth.AdminAccess(app.createUserHandler),
	)
	mux.HandleFunc(
		"POST /api/users/bulk",
		app.Services.Auth.AdminAccess(app.bulkUsersHandler),
	)
	mux.HandleFunc(
		"GET /api/users/template",
		app.Services.Auth.AdminAccess(app.usersTemplateHandler),
	)
	mux.HandleFunc(
		"DELETE /api/users/{id}",
		app.Services.Auth.AdminAccess(app.deleteUserHandler),
	)

	mux.HandleFunc(
		"POST /api/preferences/view",
		app.Services.Auth.Access(app.viewPreferenceHandler),
	)
}

func (app *Application) updateAppNameHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	var appNameDto dtos.AppNameDto

	err := httptools.ReadJSON(r.Body, &appNameDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := appNameDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	err = app.Services.Settings.UpdateAppName(r.Context(), &appNameDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	//nolint:exhaustruct //no error
	writeJSON(w, http.StatusOK, dtos.SuccessResponse{Success: true})
}

func (app *Application) updateThemeHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	var themeColorDto dtos.ThemeColorDto

	err := httptools.ReadJSON(r.Body, &themeColorDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := themeColorDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	err = app.Services.Settings.UpdateThemeColor(r.Context(), &themeColorDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dtos.ThemeUpdatedResponse{
		Success:    true,
		ThemeColor: themeColorDto.ThemeColor,
	})
}

func (app *Application) updateLoginContentHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	var loginContentDto dtos.LoginContentDto

	err := httptools.ReadJSON(r.Body, &loginContentDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	err = app.Services.Settings.UpdateLoginContent(r.Context(), &loginContentDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	//nolint:exhaustruct //no error
	writeJSON(w, http.StatusOK, dtos.SuccessResponse{Success: true})
}

func (app *Application) uploadLogoHandler(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxUploadMemory)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		httptools.FailedValidationResponse(w, r, map[string]string{
			"logo": "must be provided",
		})
		return
	}
	defer file.Close()

	logoDto := dtos.LogoDto{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}

	if ok, errs := logoDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	logoURL, err := app.Services.Settings.SaveLogo(r.Context(), file, &logoDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dtos.LogoUploadedResponse{
		Success: true,
		LogoURL: logoURL,
		Message: "Logo updated successfully",
	})
}

func (app *Application) categoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := app.Services.Settings.Categories(r.Context())
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

func (app *Application) createCategoryHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	var createCategoryDto dtos.CreateCategoryDto

	err := httptools.ReadForm(r, &createCategoryDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := createCategoryDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	category, err := app.Services.Settings.CreateCategory(
		r.Context(),
		&createCategoryDto,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dtos.TaxonomyCreatedResponse{
		Success: true,
		ID:      category.ID,
		Name:    category.Name,
	})
}

func (app *Application) deleteCategoryHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	id, err := parse.URLParam[int64](r, "id", nil)
	if err != nil {
		panic(err)
	}

	err = app.Services.Settings.DeleteCategory(r.Context(), id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	//nolint:exhaustruct //no error
	writeJSON(w, http.StatusOK, dtos.SuccessResponse{Success: true})
}

func (app *Application) eventTypesHandler(w http.ResponseWriter, r *http.Request) {
	eventTypes, err := app.Services.Settings.EventTypes(r.Context())
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, eventTypes)
}

func (app *Application) createEventTypeHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	var createEventTypeDto dtos.CreateEventTypeDto

	err := httptools.ReadForm(r, &createEventTypeDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := createEventTypeDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	eventType, err := app.Services.Settings.CreateEventType(
		r.Context(),
		&createEventTypeDto,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dtos.TaxonomyCreatedResponse{
		Success: true,
		ID:      eventType.ID,
		Name:    eventType.Name,
	})
}

func (app *Application) deleteEventTypeHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	id, err := parse.URLParam[int64](r, "id", nil)
	if err != nil {
		panic(err)
	}

	err = app.Services.Settings.DeleteEventType(r.Context(), id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	//nolint:exhaustruct //no error
	writeJSON(w, http.StatusOK, dtos.SuccessResponse{Success: true})
}

func (app *Application) usersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := app.Services.Users.GetAll(r.Context())
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dtos.UserListResponse{
		Success: true,
		Users:   users,
	})
}

func (app *Application) createUserHandler(w http.ResponseWriter, r *http.Request) {
	var createUserDto dtos.CreateUserDto

	err := httptools.ReadForm(r, &createUserDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := createUserDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	user, err := app.Services.Users.Create(r.Context(), &createUserDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dtos.UserCreatedResponse{
		Success: true,
		ID:      user.ID,
		Email:   user.Email,
		Role:    user.Role,
	})
}

// bulkUsersHandler creates users from an uploaded CSV sheet. Rows are
// validated individually; the response reports how many were created
// and why the rest were skipped.
func (app *Application) bulkUsersHandler(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxUploadMemory)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	file, _, err := r.FormFile("users_file")
	if err != nil {
		httptools.FailedValidationResponse(w, r, map[string]string{
			"users_file": "must be provided",
		})
		return
	}
	defer file.Close()

	rows, parseErrs := dtos.UsersFromCSV(file)
	if len(rows) == 0 && len(parseErrs) > 0 {
		httptools.FailedValidationResponse(w, r, map[string]string{
			"users_file": parseErrs[0],
		})
		return
	}

	created, rowErrs, err := app.Services.Users.BulkCreate(r.Context(), rows)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	errs := append(parseErrs, rowErrs...)
	writeJSON(w, http.StatusOK, dtos.BulkUsersResponse{
		Success: created > 0,
		Created: created,
		Failed:  len(errs),
		Errors:  errs,
	})
}

func (app *Application) usersTemplateHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set(
		"Content-Disposition",
		`attachment; filename="users_template.csv"`,
	)

	writer := csv.NewWriter(w)

	records := [][]string{
		{"Email", "Password", "Role"},
		{"ahmed.hassan@example.com", "SecurePass123", models.RoleMedicalRep},
		{"sarah.mohamed@example.com", "MyPassword456", models.RoleEventManager},
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			panic(err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		panic(err)
	}
}

func (app *Application) deleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[int64](r, "id", nil)
	if err != nil {
		panic(err)
	}

	current := app.currentUser(r)

	err = app.Services.Users.Delete(r.Context(), current, id)
	if err != nil {
		if errors.Is(err, services.ErrCannotDeleteSelf) {
			writeJSON(w, http.StatusBadRequest, dtos.SuccessResponse{
				Success: false,
				Error:   err.Error(),
			})
			return
		}
		httptools.HandleError(w, r, err)
		return
	}

	//nolint:exhaustruct //no error
	writeJSON(w, http.StatusOK, dtos.SuccessResponse{Success: true})
}

// viewPreferenceHandler persists the events list view choice. The
// cookie is readable by the page scripts so the preferred view applies
// before first paint.
func (app *Application) viewPreferenceHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	var viewPreferenceDto dtos.ViewPreferenceDto

	err := httptools.ReadJSON(r.Body, &viewPreferenceDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := viewPreferenceDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constants.ViewCookieName,
		Value:    viewPreferenceDto.View,
		Expires:  time.Now().Add(viewCookieTTL),
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})

	//nolint:exhaustruct //no error
	writeJSON(w, http.StatusOK, dtos.SuccessResponse{Success: true})
}
