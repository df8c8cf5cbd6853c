package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/xdoubleu/essentia/v2/pkg/database"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"pharmaevents.app/internal/dtos"
	"pharmaevents.app/internal/models"
)

type EventRepository struct {
	db postgres.DB
}

const eventColumns = `
	events.id, events.name, events.description, events.requester_name,
	events.event_type_id, events.category_id, events.is_online,
	events.start_at, events.end_at, events.deadline_at,
	events.venue, events.governorate, events.image_file,
	events.user_id, events.status, events.created_at,
	coalesce(event_types.name, ''), coalesce(categories.name, ''),
	coalesce(users.email, '')
`

const eventJoins = `
	LEFT JOIN event_types ON event_types.id = events.event_type_id
	LEFT JOIN categories ON categories.id = events.category_id
	LEFT JOIN users ON users.id = events.user_id
`

// GetAll returns events matching the filter, newest start first. An
// empty filter returns everything.
func (repo *EventRepository) GetAll(
	ctx context.Context,
	filter dtos.EventFilterDto,
) ([]models.Event, error) {
	where := []string{}
	args := []any{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where = append(where, fmt.Sprintf("events.name ILIKE $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		where = append(where, fmt.Sprintf("events.category_id = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		where = append(where, fmt.Sprintf("events.event_type_id = $%d", len(args)))
	}
	switch filter.Date {
	case dtos.DateUpcoming:
		where = append(where, "events.start_at > now()")
	case dtos.DatePast:
		where = append(where, "events.end_at < now()")
	case dtos.DateThisMonth:
		where = append(
			where,
			"date_trunc('month', events.start_at) = date_trunc('month', now())",
		)
	}

	query := "SELECT " + eventColumns + " FROM events " + eventJoins
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY events.start_at DESC"

	rows, err := repo.db.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		//nolint:exhaustruct //fields are scanned below
		event := models.Event{}

		err = rows.Scan(
			&event.ID,
			&event.Name,
			&event.Description,
			&event.RequesterName,
			&event.EventTypeID,
			&event.CategoryID,
			&event.IsOnline,
			&event.Start,
			&event.End,
			&event.Deadline,
			&event.Venue,
			&event.Governorate,
			&event.ImageFile,
			&event.UserID,
			&event.Status,
			&event.CreatedAt,
			&event.EventTypeName,
			&event.CategoryName,
			&event.CreatorEmail,
		)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return events, nil
}

func (repo *EventRepository) GetByID(
	ctx context.Context,
	id int64,
) (*models.Event, error) {
	query := "SELECT " + eventColumns + " FROM events " + eventJoins +
		" WHERE events.id = $1"

	//nolint:exhaustruct //fields are scanned below
	event := models.Event{}
	err := repo.db.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.RequesterName,
		&event.EventTypeID,
		&event.CategoryID,
		&event.IsOnline,
		&event.Start,
		&event.End,
		&event.Deadline,
		&event.Venue,
		&event.Governorate,
		&event.ImageFile,
		&event.UserID,
		&event.Status,
		&event.CreatedAt,
		&event.EventTypeName,
		&event.CategoryName,
		&event.CreatorEmail,
	)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &event, nil
}

func (repo *EventRepository) Create(
	ctx context.Context,
	event *models.Event,
) error {
	query := `
		INSERT INTO events (name, description, requester_name,
			event_type_id, category_id, is_online, start_at, end_at,
			deadline_at, venue, governorate, image_file, user_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at
	`

	err := repo.db.QueryRow(
		ctx,
		query,
		event.Name,
		event.Description,
		event.RequesterName,
		event.EventTypeID,
		event.CategoryID,
		event.IsOnline,
		event.Start,
		event.End,
		event.Deadline,
		event.Venue,
		event.Governorate,
		event.ImageFile,
		event.UserID,
		event.Status,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

func (repo *EventRepository) Update(
	ctx context.Context,
	event *models.Event,
) error {
	query := `
		UPDATE events
		SET name = $2, description = $3, requester_name = $4,
			event_type_id = $5, category_id = $6, is_online = $7,
			start_at = $8, end_at = $9, deadline_at = $10,
			venue = $11, governorate = $12, image_file = $13
		WHERE id = $1
	`

	result, err := repo.db.Exec(
		ctx,
		query,
		event.ID,
		event.Name,
		event.Description,
		event.RequesterName,
		event.EventTypeID,
		event.CategoryID,
		event.IsOnline,
		event.Start,
		event.End,
		event.Deadline,
		event.Venue,
		event.Governorate,
		event.ImageFile,
	)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	if result.RowsAffected() == 0 {
		return database.ErrResourceNotFound
	}

	return nil
}

func (repo *EventRepository) SetStatus(
	ctx context.Context,
	id int64,
	status models.EventStatus,
) error {
	query := `
		UPDATE events
		SET status = $2
		WHERE id = $1
	`

	result, err := repo.db.Exec(ctx, query, id, status)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	if result.RowsAffected() == 0 {
		return database.ErrResourceNotFound
	}

	return nil
}

func (repo *EventRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM events
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

// Stats computes the dashboard summary counters in one pass.
func (repo *EventRepository) Stats(ctx context.Context) (*models.Stats, error) {
	query := `
		SELECT count(*),
			count(*) FILTER (WHERE start_at > now()),
			count(*) FILTER (WHERE is_online),
			count(*) FILTER (WHERE NOT is_online)
		FROM events
	`

	//nolint:exhaustruct //fields are scanned below
	stats := models.Stats{}
	err := repo.db.QueryRow(ctx, query).Scan(
		&stats.TotalEvents,
		&stats.UpcomingEvents,
		&stats.OnlineEvents,
		&stats.OfflineEvents,
	)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &stats, nil
}

func (repo *EventRepository) CategoryCounts(
	ctx context.Context,
) ([]models.NameCount, error) {
	query := `
		SELECT categories.name, count(events.id)
		FROM categories
		JOIN events ON events.category_id = categories.id
		GROUP BY categories.id, categories.name
		ORDER BY count(events.id) DESC
	`

	return repo.counts(ctx, query)
}

func (repo *EventRepository) TypeCounts(
	ctx context.Context,
) ([]models.NameCount, error) {
	query := `
		SELECT event_types.name, count(events.id)
		FROM event_types
		JOIN events ON events.event_type_id = event_types.id
		GROUP BY event_types.id, event_types.name
		ORDER BY count(events.id) DESC
	`

	return repo.counts(ctx, query)
}

func (repo *EventRepository) RequesterCounts(
	ctx context.Context,
) ([]models.NameCount, error) {
	query := `
		SELECT users.email, count(events.id)
		FROM users
		JOIN events ON events.user_id = users.id
		GROUP BY users.id, users.email
		ORDER BY count(events.id) DESC
	`

	return repo.counts(ctx, query)
}

// MonthlyCounts buckets the year's events by start month.
func (repo *EventRepository) MonthlyCounts(
	ctx context.Context,
	year int,
) ([12]int, error) {
	var counts [12]int

	query := `
		SELECT extract(month FROM start_at)::int, count(*)
		FROM events
		WHERE extract(year FROM start_at) = $1
		GROUP BY 1
	`

	rows, err := repo.db.Query(ctx, query, year)
	if err != nil {
		return counts, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var month, count int
		if err = rows.Scan(&month, &count); err != nil {
			return counts, postgres.PgxErrorToHTTPError(err)
		}
		if month >= 1 && month <= 12 {
			counts[month-1] = count
		}
	}

	if err = rows.Err(); err != nil {
		return counts, postgres.PgxErrorToHTTPError(err)
	}

	return counts, nil
}

func (repo *EventRepository) counts(
	ctx context.Context,
	query string,
) ([]models.NameCount, error) {
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	counts := []models.NameCount{}
	for rows.Next() {
		//nolint:exhaustruct //fields are scanned below
		count := models.NameCount{}
		if err = rows.Scan(&count.Name, &count.Count); err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}
		counts = append(counts, count)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return counts, nil
}
