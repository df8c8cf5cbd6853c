package repositories

import (
	"context"

	"github.com/xdoubleu/essentia/v2/pkg/database"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"pharmaevents.app/internal/models"
)

type CategoryRepository struct {
	db postgres.DB
}

type EventTypeRepository struct {
	db postgres.DB
}

func (repo *CategoryRepository) GetAll(
	ctx context.Context,
) ([]models.Category, error) {
	query := `
		SELECT id, name
		FROM categories
		ORDER BY name ASC
	`

	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		//nolint:exhaustruct //fields are scanned below
		category := models.Category{}
		if err = rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return categories, nil
}

func (repo *CategoryRepository) Create(
	ctx context.Context,
	name string,
) (*models.Category, error) {
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id
	`

	category := models.Category{Name: name}
	err := repo.db.QueryRow(ctx, query, name).Scan(&category.ID)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &category, nil
}

func (repo *CategoryRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM categories
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

func (repo *EventTypeRepository) GetAll(
	ctx context.Context,
) ([]models.EventType, error) {
	query := `
		SELECT id, name
		FROM event_types
		ORDER BY name ASC
	`

	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	eventTypes := []models.EventType{}
	for rows.Next() {
		//nolint:exhaustruct //fields are scanned below
		eventType := models.EventType{}
		if err = rows.Scan(&eventType.ID, &eventType.Name); err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}
		eventTypes = append(eventTypes, eventType)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return eventTypes, nil
}

func (repo *EventTypeRepository) Create(
	ctx context.Context,
	name string,
) (*models.EventType, error) {
	query := `
		INSERT INTO event_types (name)
		VALUES ($1)
		RETURNING id
	`

	eventType := models.EventType{Name: name}
	err := repo.db.QueryRow(ctx, query, name).Scan(&eventType.ID)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &eventType, nil
}

func (repo *EventTypeRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM event_types
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
