package constants

const (
	UserContextKey = "user"

	SessionCookieName = "session"

	// ViewCookieName persists the events list view preference
	// (card or list) so it can be applied before first paint.
	ViewCookieName = "events_view"
)
