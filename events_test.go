package pharmaevents_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xdoubleu/essentia/v2/pkg/test"
	"pharmaevents.app/internal/dtos"
	"pharmaevents.app/internal/models"
)

func eventForm(start time.Time, end time.Time) dtos.EventDto {
	//nolint:exhaustruct //optional fields stay empty
	return dtos.EventDto{
		Title:       "Oncology Workshop",
		Description: "Hands-on workshop",
		StartDate:   start.Format("2006-01-02"),
		StartTime:   start.Format("15:04"),
		EndDate:     end.Format("2006-01-02"),
		EndTime:     end.Format("15:04"),
		IsOnline:    "on",
		CategoryID:  "1",
		EventTypeID: "1",
	}
}

func TestCreateEventHandler(t *testing.T) {
	start := time.Now().Add(48 * time.Hour)

	tReq := test.CreateRequestTester(
		getRoutes(adminUser),
		http.MethodPost,
		"/events/create",
	)

	tReq.SetFollowRedirect(false)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(eventForm(start, start.Add(2*time.Hour)))

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)
}

func TestCreateEventEndBeforeStart(t *testing.T) {
	start := time.Now().Add(48 * time.Hour)

	tReq := test.CreateRequestTester(
		getRoutes(adminUser),
		http.MethodPost,
		"/events/create",
	)

	tReq.SetFollowRedirect(false)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(eventForm(start, start.Add(-2*time.Hour)))

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusUnprocessableEntity, rs.StatusCode)
}

func TestCreateEventRequestNeedsDeadline(t *testing.T) {
	start := time.Now().Add(48 * time.Hour)

	tReq := test.CreateRequestTester(
		getRoutes(managerUser),
		http.MethodPost,
		"/events/create",
	)

	tReq.SetFollowRedirect(false)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(eventForm(start, start.Add(2*time.Hour)))

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusUnprocessableEntity, rs.StatusCode)
}

func TestEditEventHandler(t *testing.T) {
	event := createTestEvent(managerUser.ID)
	start := time.Now().Add(72 * time.Hour)

	form := eventForm(start, start.Add(4*time.Hour))
	form.RequesterName = "Jane Doe"
	deadline := time.Now().Add(24 * time.Hour)
	form.DeadlineDate = deadline.Format("2006-01-02")
	form.DeadlineTime = deadline.Format("15:04")

	tReq := test.CreateRequestTester(
		getRoutes(managerUser),
		http.MethodPost,
		fmt.Sprintf("/events/%d/edit", event.ID),
	)

	tReq.SetFollowRedirect(false)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(form)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)

	updated, err := testApp.Repositories.Events.GetByID(
		context.Background(),
		event.ID,
	)
	assert.Nil(t, err)
	assert.Equal(t, "Oncology Workshop", updated.Name)
	assert.NotNil(t, updated.Deadline)
}

func TestDeleteEventHandler(t *testing.T) {
	event := createTestEvent(managerUser.ID)

	tReq := test.CreateRequestTester(
		getRoutes(managerUser),
		http.MethodPost,
		fmt.Sprintf("/delete-event/%d", event.ID),
	)

	tReq.SetFollowRedirect(false)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)

	_, err := testApp.Repositories.Events.GetByID(context.Background(), event.ID)
	assert.NotNil(t, err)
}

func TestApproveEventHandler(t *testing.T) {
	event := createTestEvent(managerUser.ID)

	tReq := test.CreateRequestTester(
		getRoutes(adminUser),
		http.MethodGet,
		fmt.Sprintf("/approve-event/%d", event.ID),
	)

	tReq.SetFollowRedirect(false)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)

	approved, err := testApp.Repositories.Events.GetByID(
		context.Background(),
		event.ID,
	)
	assert.Nil(t, err)
	assert.Equal(t, models.EventStatusApproved, approved.Status)
}

func TestRejectEventHandler(t *testing.T) {
	event := createTestEvent(managerUser.ID)

	tReq := test.CreateRequestTester(
		getRoutes(adminUser),
		http.MethodGet,
		fmt.Sprintf("/reject-event/%d", event.ID),
	)

	tReq.SetFollowRedirect(false)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)

	rejected, err := testApp.Repositories.Events.GetByID(
		context.Background(),
		event.ID,
	)
	assert.Nil(t, err)
	assert.Equal(t, models.EventStatusRejected, rejected.Status)
}

func TestApproveEventNonAdmin(t *testing.T) {
	event := createTestEvent(managerUser.ID)

	tReq := test.CreateRequestTester(
		getRoutes(managerUser),
		http.MethodGet,
		fmt.Sprintf("/approve-event/%d", event.ID),
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusUnauthorized, rs.StatusCode)
}

func TestExportEventsHandler(t *testing.T) {
	createTestEvent(managerUser.ID)

	tReq := test.CreateRequestTester(
		getRoutes(adminUser),
		http.MethodGet,
		"/events/export",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
	assert.Equal(t, "text/csv", rs.Header.Get("Content-Type"))
}
