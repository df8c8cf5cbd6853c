package services

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/contexttools"
	"github.com/xdoubleu/essentia/v2/pkg/database"
	errortools "github.com/xdoubleu/essentia/v2/pkg/errortools"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	tpltools "github.com/xdoubleu/essentia/v2/pkg/tpl"
	"github.com/xhit/go-str2duration/v2"
	"golang.org/x/crypto/bcrypt"
	"pharmaevents.app/internal/constants"
	"pharmaevents.app/internal/dtos"
	"pharmaevents.app/internal/models"
	"pharmaevents.app/internal/repositories"
)

type AuthService struct {
	logger           *slog.Logger
	users            *repositories.UserRepository
	sessions         *repositories.SessionRepository
	settings         *SettingsService
	tpl              *template.Template
	useSecureCookies bool
	sessionExpiry    string
	adminEmail       string
	adminPassword    string
}

func (service *AuthService) SignInWithEmail(
	ctx context.Context,
	signInDto *dtos.SignInDto,
) (*http.Cookie, error) {
	user, err := service.users.GetByEmail(ctx, signInDto.Email)
	if err != nil {
		return nil, errortools.NewUnauthorizedError(
			errors.New("invalid credentials"),
		)
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(signInDto.Password),
	)
	if err != nil {
		return nil, errortools.NewUnauthorizedError(
			errors.New("invalid credentials"),
		)
	}

	ttl, err := str2duration.ParseDuration(service.sessionExpiry)
	if err != nil {
		return nil, err
	}

	session, err := service.sessions.Create(
		ctx,
		uuid.NewString(),
		user.ID,
		time.Now().Add(ttl),
	)
	if err != nil {
		return nil, err
	}

	cookie := http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    session.Token,
		Expires:  session.ExpiresAt,
		SameSite: http.SameSiteStrictMode,
		HttpOnly: true,
		Secure:   service.useSecureCookies,
		Path:     "/",
	}

	return &cookie, nil
}

func (service *AuthService) SignOut(
	ctx context.Context,
	token string,
) (*http.Cookie, error) {
	err := service.sessions.DeleteByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	deleteSessionCookie := &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		MaxAge:   -1,
		SameSite: http.SameSiteStrictMode,
		HttpOnly: true,
		Path:     "/",
	}

	return deleteSessionCookie, nil
}

// EnsureAdmin seeds the first admin account when the users table is
// empty. Without it a fresh deployment has no way to sign in.
func (service *AuthService) EnsureAdmin(ctx context.Context) error {
	count, err := service.users.Count(ctx)
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	if service.adminPassword == "" {
		service.logger.Warn(
			"no users exist and no admin password is configured, skipping admin seed",
		)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword(
		[]byte(service.adminPassword),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return err
	}

	_, err = service.users.Create(
		ctx,
		service.adminEmail,
		string(hash),
		models.RoleAdmin,
	)
	if err != nil {
		return err
	}

	service.logger.Info("seeded default admin", slog.String("email", service.adminEmail))

	return nil
}

func (service *AuthService) Access(next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionCookie, err := r.Cookie(constants.SessionCookieName)

		if err != nil {
			httptools.UnauthorizedResponse(w, r,
				errortools.NewUnauthorizedError(errors.New("no session in cookies")))
			return
		}

		user, err := service.sessions.GetUser(r.Context(), sessionCookie.Value)
		if err != nil {
			if errors.Is(err, database.ErrResourceNotFound) {
				httptools.UnauthorizedResponse(w, r,
					errortools.NewUnauthorizedError(errors.New("invalid session")))
				return
			}
			httptools.HandleError(w, r, err)
			return
		}

		r = r.WithContext(service.contextSetUser(r.Context(), *user))
		next.ServeHTTP(w, r)
	})
}

func (service *AuthService) AdminAccess(next http.HandlerFunc) http.HandlerFunc {
	return service.Access(func(w http.ResponseWriter, r *http.Request) {
		user := service.getContextUser(r)

		if !user.IsAdmin() {
			httptools.UnauthorizedResponse(w, r,
				errortools.NewUnauthorizedError(errors.New("admin role required")))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (service *AuthService) TemplateAccess(next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := service.getCurrentUser(r)

		if user == nil {
			tpltools.RenderWithPanic(
				service.tpl,
				w,
				"login.html",
				service.loginData(r.Context()),
			)
			return
		}

		r = r.WithContext(service.contextSetUser(r.Context(), *user))
		next(w, r)
	})
}

func (service *AuthService) getCurrentUser(r *http.Request) *models.User {
	sessionCookie, err := r.Cookie(constants.SessionCookieName)
	if err != nil {
		return nil
	}

	user, err := service.sessions.GetUser(r.Context(), sessionCookie.Value)
	if err != nil {
		return nil
	}

	return user
}

func (service *AuthService) getContextUser(r *http.Request) models.User {
	user := contexttools.GetValue[models.User](r.Context(), constants.UserContextKey)
	if user == nil {
		panic("no user in context")
	}

	return *user
}

func (service *AuthService) loginData(ctx context.Context) map[string]any {
	branding, err := service.settings.Branding(ctx)
	if err != nil {
		service.logger.ErrorContext(
			ctx,
			"failed to load branding for login page",
			logging.ErrAttr(err),
		)
		branding = DefaultBranding()
	}

	return map[string]any{
		"Branding": branding,
	}
}

func (service *AuthService) contextSetUser(
	ctx context.Context,
	user models.User,
) context.Context {
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		//nolint:exhaustruct //other fields are optional
		hub.Scope().SetUser(sentry.User{
			ID:    strconv.FormatInt(user.ID, 10),
			Email: user.Email,
		})
	}

	return context.WithValue(ctx, constants.UserContextKey, user)
}
