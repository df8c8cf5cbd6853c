package mocks

import (
	"context"
	"net/http"

	"pharmaevents.app/internal/auth"
	"pharmaevents.app/internal/constants"
	"pharmaevents.app/internal/dtos"
	"pharmaevents.app/internal/models"
)

func NewMockedAuthService(user models.User) auth.Service {
	return &MockedAuthService{
		user: user,
	}
}

type MockedAuthService struct {
	user models.User
}

func (m *MockedAuthService) Access(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Inject a mock user into the context
		ctx := context.WithValue(r.Context(), constants.UserContextKey, m.user)
		r = r.WithContext(ctx)

		next(w, r)
	}
}

func (m *MockedAuthService) AdminAccess(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m.user.Role != models.RoleAdmin {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), constants.UserContextKey, m.user)
		r = r.WithContext(ctx)

		next(w, r)
	}
}

func (m *MockedAuthService) TemplateAccess(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Inject a mock user into the context
		ctx := context.WithValue(r.Context(), constants.UserContextKey, m.user)
		r = r.WithContext(ctx)

		next(w, r)
	}
}

func (m *MockedAuthService) SignInWithEmail(
	_ context.Context,
	_ *dtos.SignInDto,
) (*http.Cookie, error) {
	return &http.Cookie{
		Name:  constants.SessionCookieName,
		Value: "mocked",
	}, nil
}

func (m *MockedAuthService) SignOut(
	_ context.Context,
	_ string,
) (*http.Cookie, error) {
	return &http.Cookie{
		Name:   constants.SessionCookieName,
		MaxAge: -1,
	}, nil
}

func (m *MockedAuthService) EnsureAdmin(_ context.Context) error {
	return nil
}
