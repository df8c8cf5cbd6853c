package repositories

import (
	"context"

	"github.com/xdoubleu/essentia/v2/pkg/database"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"pharmaevents.app/internal/models"
)

type UserRepository struct {
	db postgres.DB
}

func (repo *UserRepository) GetAll(
	ctx context.Context,
) ([]models.User, error) {
	query := `
		SELECT id, email, role, password_hash
		FROM users
		ORDER BY email ASC
	`

	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		//nolint:exhaustruct //fields are scanned below
		user := models.User{}

		err = rows.Scan(
			&user.ID,
			&user.Email,
			&user.Role,
			&user.PasswordHash,
		)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return users, nil
}

func (repo *UserRepository) GetByID(
	ctx context.Context,
	id int64,
) (*models.User, error) {
	query := `
		SELECT id, email, role, password_hash
		FROM users
		WHERE id = $1
	`

	//nolint:exhaustruct //fields are scanned below
	user := models.User{}
	err := repo.db.QueryRow(ctx, query, id).Scan(
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

func (repo *UserRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {
	query := `
		SELECT id, email, role, password_hash
		FROM users
		WHERE lower(email) = lower($1)
	`

	//nolint:exhaustruct //fields are scanned below
	user := models.User{}
	err := repo.db.QueryRow(ctx, query, email).Scan(
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

func (repo *UserRepository) Create(
	ctx context.Context,
	email string,
	passwordHash string,
	role models.Role,
) (*models.User, error) {
	query := `
		INSERT INTO users (email, role, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	user := models.User{
		Email:        email,
		Role:         role,
		PasswordHash: passwordHash,
	}
	err := repo.db.QueryRow(ctx, query, email, role, passwordHash).
		Scan(&user.ID)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &user, nil
}

func (repo *UserRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM users
		WHERE id = $1
	`

	result, err := repo.db.Exec(ctx, query, id)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	if result.RowsAffected() == 0 {
		return database.ErrResourceNotFound
	}

	return nil
}

func (repo *UserRepository) Count(ctx context.Context) (int64, error) {
	query := `
		SELECT count(*)
		FROM users
	`

	var count int64
	err := repo.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, postgres.PgxErrorToHTTPError(err)
	}

	return count, nil
}
