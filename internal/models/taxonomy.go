package models

// Category is a therapeutic area or business category an event belongs to.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// EventType is the format of an event (conference, webinar, ...).
type EventType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
