package dtos

import (
	"net/url"
	"strconv"
	"strings"
)

// FilterAll is the sentinel value meaning "no filter applied".
const FilterAll = "all"

// Date range filter values.
const (
	DateUpcoming  = "upcoming"
	DatePast      = "past"
	DateThisMonth = "this_month"
)

// EventFilterDto is the events list filter state, round-tripped through
// URL query parameters.
type EventFilterDto struct {
	Search   string
	Category string
	Type     string
	Date     string
}

// EventFilterFromQuery reads the filter controls from a query string.
// Empty values and the sentinel "all" contribute nothing, and id
// filters that are not numeric are dropped rather than passed on.
func EventFilterFromQuery(query url.Values) EventFilterDto {
	return EventFilterDto{
		Search:   strings.TrimSpace(query.Get("search")),
		Category: idFilterValue(query.Get("category")),
		Type:     idFilterValue(query.Get("type")),
		Date:     filterValue(query.Get("date")),
	}
}

func filterValue(value string) string {
	value = strings.TrimSpace(value)
	if value == FilterAll {
		return ""
	}
	return value
}

func idFilterValue(value string) string {
	value = filterValue(value)
	if value == "" {
		return ""
	}

	if _, err := strconv.ParseInt(value, 10, 64); err != nil {
		return ""
	}

	return value
}

func (dto EventFilterDto) IsZero() bool {
	return dto.Search == "" && dto.Category == "" && dto.Type == "" && dto.Date == ""
}

// Query rebuilds the query string so filtered views can be linked.
func (dto EventFilterDto) Query() string {
	params := url.Values{}

	if dto.Search != "" {
		params.Set("search", dto.Search)
	}
	if dto.Category != "" {
		params.Set("category", dto.Category)
	}
	if dto.Type != "" {
		params.Set("type", dto.Type)
	}
	if dto.Date != "" {
		params.Set("date", dto.Date)
	}

	return params.Encode()
}
