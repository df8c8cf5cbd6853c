package dtos

import (
	"strconv"
	"strings"
	"time"
)

// DateTimeLayout is the combined form of the date and time inputs,
// interpreted in the server's local timezone.
const DateTimeLayout = "2006-01-02 15:04"

const minRequesterNameLen = 4

// EventDto carries the event creation/edit form. The request variant
// additionally requires a requester and a registration deadline; both
// variants share one rule set (RequireDeadline switches the extras on).
type EventDto struct {
	Title       string `schema:"title"`
	Description string `schema:"description"`
	StartDate   string `schema:"start_date"`
	StartTime   string `schema:"start_time"`
	EndDate     string `schema:"end_date"`
	EndTime     string `schema:"end_time"`
	IsOnline    string `schema:"is_online"`
	Venue       string `schema:"venue"`
	Governorate string `schema:"governorate"`
	CategoryID  string `schema:"categories"`
	EventTypeID string `schema:"event_type"`

	RequesterName string `schema:"requester_name"`
	DeadlineDate  string `schema:"deadline_date"`
	DeadlineTime  string `schema:"deadline_time"`

	// RequireDeadline marks the request variant of the form.
	RequireDeadline bool `schema:"-"`

	start    time.Time
	end      time.Time
	deadline time.Time
}

// Validate evaluates every rule and collects all failures, one message
// per failing field per pass. Timestamps are cached for the accessors
// below when their fields parse.
func (dto *EventDto) Validate() (bool, map[string]string) {
	errs := map[string]string{}

	required := map[string]string{
		"title":       dto.Title,
		"description": dto.Description,
		"start_date":  dto.StartDate,
		"start_time":  dto.StartTime,
		"end_date":    dto.EndDate,
		"end_time":    dto.EndTime,
	}
	if dto.RequireDeadline {
		required["requester_name"] = dto.RequesterName
		required["deadline_date"] = dto.DeadlineDate
		required["deadline_time"] = dto.DeadlineTime
	}

	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			errs[field] = "must be provided"
		}
	}

	if dto.RequireDeadline && strings.TrimSpace(dto.RequesterName) != "" &&
		len(strings.TrimSpace(dto.RequesterName)) < minRequesterNameLen {
		errs["requester_name"] = "must be at least 4 characters long"
	}

	dto.start = dto.parseInto("start_date", dto.StartDate, dto.StartTime, errs)
	dto.end = dto.parseInto("end_date", dto.EndDate, dto.EndTime, errs)
	if dto.RequireDeadline {
		dto.deadline = dto.parseInto(
			"deadline_date",
			dto.DeadlineDate,
			dto.DeadlineTime,
			errs,
		)
	}

	now := time.Now()
	if !dto.start.IsZero() && dto.start.Before(now) {
		errs["start_date"] = "may not be in the past"
	}
	if !dto.start.IsZero() && !dto.end.IsZero() && dto.end.Before(dto.start) {
		errs["end_date"] = "must be after or equal to the start"
	}
	if dto.RequireDeadline && !dto.start.IsZero() && !dto.deadline.IsZero() &&
		!dto.deadline.Before(dto.start) {
		errs["deadline_date"] = "must be before the event start"
	}

	if !dto.Online() && strings.TrimSpace(dto.Governorate) == "" {
		errs["governorate"] = "must be selected for offline events"
	}

	if strings.TrimSpace(dto.CategoryID) == "" {
		errs["categories"] = "must be selected"
	}

	return len(errs) == 0, errs
}

// parseInto combines a date and a time input into one timestamp. A pair
// that is present but does not parse is a format error, distinct from
// the missing-field error already recorded above.
func (dto *EventDto) parseInto(
	field string,
	date string,
	timeOfDay string,
	errs map[string]string,
) time.Time {
	if strings.TrimSpace(date) == "" || strings.TrimSpace(timeOfDay) == "" {
		return time.Time{}
	}

	parsed, err := time.ParseInLocation(
		DateTimeLayout,
		strings.TrimSpace(date)+" "+strings.TrimSpace(timeOfDay),
		time.Local,
	)
	if err != nil {
		errs[field] = "is not a valid date/time"
		return time.Time{}
	}

	return parsed
}

// Online reports whether the online toggle was set. Checkbox inputs
// submit "on" when checked and nothing otherwise.
func (dto EventDto) Online() bool {
	return dto.IsOnline != ""
}

func (dto EventDto) Start() time.Time {
	return dto.start
}

func (dto EventDto) End() time.Time {
	return dto.end
}

func (dto EventDto) Deadline() *time.Time {
	if dto.deadline.IsZero() {
		return nil
	}
	deadline := dto.deadline
	return &deadline
}

func (dto EventDto) Category() *int64 {
	return parseOptionalID(dto.CategoryID)
}

func (dto EventDto) EventType() *int64 {
	return parseOptionalID(dto.EventTypeID)
}

func parseOptionalID(value string) *int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return nil
	}
	return &id
}
