package pharmaevents_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xdoubleu/essentia/v2/pkg/test"
)

func TestRootRedirect(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(adminUser),
		http.MethodGet,
		"/",
	)

	tReq.SetFollowRedirect(false)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)
	assert.Equal(t, "/dashboard", rs.Header.Get("Location"))
}

func TestDashboardPage(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(adminUser),
		http.MethodGet,
		"/dashboard",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
}

func TestEventsPage(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(managerUser),
		http.MethodGet,
		"/events",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
}

func TestEventsPageFiltered(t *testing.T) {
	createTestEvent(managerUser.ID)

	tReq := test.CreateRequestTester(
		getRoutes(managerUser),
		http.MethodGet,
		"/events?search=Test&date=upcoming",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
}

func TestNewEventPage(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(managerUser),
		http.MethodGet,
		"/events/new",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
}

func TestEventDetailsPage(t *testing.T) {
	event := createTestEvent(managerUser.ID)

	tReq := test.CreateRequestTester(
		getRoutes(managerUser),
		http.MethodGet,
		fmt.Sprintf("/events/%d", event.ID),
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
}

func TestEditEventPageOwner(t *testing.T) {
	event := createTestEvent(managerUser.ID)

	tReq := test.CreateRequestTester(
		getRoutes(managerUser),
		http.MethodGet,
		fmt.Sprintf("/events/%d/edit", event.ID),
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
}

func TestEditEventPageNotOwner(t *testing.T) {
	event := createTestEvent(adminUser.ID)

	tReq := test.CreateRequestTester(
		getRoutes(managerUser),
		http.MethodGet,
		fmt.Sprintf("/events/%d/edit", event.ID),
	)

	tReq.SetFollowRedirect(false)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)
	assert.Equal(t, "/events", rs.Header.Get("Location"))
}

func TestSettingsPageAdmin(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(adminUser),
		http.MethodGet,
		"/settings",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
}

func TestSettingsPageNonAdmin(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(managerUser),
		http.MethodGet,
		"/settings",
	)

	tReq.SetFollowRedirect(false)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)
	assert.Equal(t, "/dashboard", rs.Header.Get("Location"))
}
