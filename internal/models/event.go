package models

import "time"

type EventStatus = string

const (
	EventStatusActive   EventStatus = "active"
	EventStatusApproved EventStatus = "approved"
	EventStatusRejected EventStatus = "rejected"
)

// Event is a pharmaceutical event. Venue and Governorate are only set
// for offline events; Deadline is the registration deadline.
type Event struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	RequesterName string      `json:"requesterName"`
	EventTypeID   *int64      `json:"eventTypeId"`
	CategoryID    *int64      `json:"categoryId"`
	IsOnline      bool        `json:"isOnline"`
	Start         time.Time   `json:"start"`
	End           time.Time   `json:"end"`
	Deadline      *time.Time  `json:"deadline"`
	Venue         *string     `json:"venue"`
	Governorate   *string     `json:"governorate"`
	ImageFile     *string     `json:"imageFile"`
	UserID        int64       `json:"userId"`
	Status        EventStatus `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`

	// denormalized for list and export views
	EventTypeName string `json:"eventTypeName"`
	CategoryName  string `json:"categoryName"`
	CreatorEmail  string `json:"creatorEmail"`
}

// NameCount is a single slice of a breakdown dataset.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats are the dashboard summary counters.
type Stats struct {
	UpcomingEvents int `json:"upcoming_events"`
	OnlineEvents   int `json:"online_events"`
	OfflineEvents  int `json:"offline_events"`
	TotalEvents    int `json:"total_events"`
}
