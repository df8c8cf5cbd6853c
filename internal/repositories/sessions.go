package repositories

import (
	"context"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"pharmaevents.app/internal/models"
)

type SessionRepository struct {
	db postgres.DB
}

func (repo *SessionRepository) Create(
	ctx context.Context,
	token string,
	userID int64,
	expiresAt time.Time,
) (*models.Session, error) {
	query := `
		INSERT INTO sessions (token, user_id, expires_at)
		VALUES ($1, $2, $3)
	`

	_, err := repo.db.Exec(ctx, query, token, userID, expiresAt)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &models.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}, nil
}

// GetUser resolves a session token to its user. Expired sessions don't
// resolve.
func (repo *SessionRepository) GetUser(
	ctx context.Context,
	token string,
) (*models.User, error) {
	query := `
		SELECT users.id, users.email, users.role, users.password_hash
		FROM sessions
		JOIN users ON users.id = sessions.user_id
		WHERE sessions.token = $1 AND sessions.expires_at > now()
	`

	//nolint:exhaustruct //fields are scanned below
	user := models.User{}
	err := repo.db.QueryRow(ctx, query, token).Scan(
		&user.ID,
		&user.Email,
		&user.Role,
		&user.PasswordHash,
	)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &user, nil
}

func (repo *SessionRepository) DeleteByToken(
	ctx context.Context,
	token string,
) error {
	query := `
		DELETE FROM sessions
		WHERE token = $1
	`

	_, err := repo.db.Exec(ctx, query, token)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

func (repo *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `
		DELETE FROM sessions
		WHERE expires_at <= now()
	`

	result, err := repo.db.Exec(ctx, query)
	if err != nil {
		return 0, postgres.PgxErrorToHTTPError(err)
	}

	return result.RowsAffected(), nil
}
