package repositories

import (
	"context"
	"errors"

	"github.com/xdoubleu/essentia/v2/pkg/database"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type SettingRepository struct {
	db postgres.DB
}

// Get returns the stored value for key, or fallback when the key was
// never set.
func (repo *SettingRepository) Get(
	ctx context.Context,
	key string,
	fallback string,
) (string, error) {
	query := `
		SELECT value
		FROM app_settings
		WHERE key = $1
	`

	var value string
	err := repo.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		err = postgres.PgxErrorToHTTPError(err)
		if errors.Is(err, database.ErrResourceNotFound) {
			return fallback, nil
		}
		return "", err
	}

	return value, nil
}

func (repo *SettingRepository) GetAll(
	ctx context.Context,
) (map[string]string, error) {
	query := `
		SELECT key, value
		FROM app_settings
	`

	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	settings := map[string]string{}
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}
		settings[key] = value
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return settings, nil
}

func (repo *SettingRepository) Set(
	ctx context.Context,
	key string,
	value string,
) error {
	query := `
		INSERT INTO app_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`

	_, err := repo.db.Exec(ctx, query, key, value)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}
