package auth

import (
	"context"
	"net/http"

	"pharmaevents.app/internal/dtos"
)

type Service interface {
	Access(next http.HandlerFunc) http.HandlerFunc
	AdminAccess(next http.HandlerFunc) http.HandlerFunc
	TemplateAccess(next http.HandlerFunc) http.HandlerFunc
	SignInWithEmail(
		ctx context.Context,
		signInDto *dtos.SignInDto,
	) (*http.Cookie, error)
	SignOut(ctx context.Context, token string) (*http.Cookie, error)
	EnsureAdmin(ctx context.Context) error
}
