package pharmaevents

import (
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"pharmaevents.app/internal/constants"
	"pharmaevents.app/internal/dtos"
)

func (app *Application) authRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /auth/signin", app.signInHandler)
	mux.HandleFunc(
		"GET /auth/signout",
		app.Services.Auth.Access(app.signOutHandler),
	)
}

func (app *Application) signInHandler(w http.ResponseWriter, r *http.Request) {
	var signInDto dtos.SignInDto

	err := httptools.ReadForm(r, &signInDto)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	if ok, errs := signInDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	sessionCookie, err := app.Services.Auth.SignInWithEmail(r.Context(), &signInDto)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	http.SetCookie(w, sessionCookie)

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (app *Application) signOutHandler(w http.ResponseWriter, r *http.Request) {
	sessionCookie, err := r.Cookie(constants.SessionCookieName)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	deleteSessionCookie, err := app.Services.Auth.SignOut(
		r.Context(),
		sessionCookie.Value,
	)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	http.SetCookie(w, deleteSessionCookie)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
