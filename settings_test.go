package pharmaevents_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xdoubleu/essentia/v2/pkg/test"
	"pharmaevents.app/internal/constants"
	"pharmaevents.app/internal/dtos"
	"pharmaevents.app/internal/models"
)

func TestUpdateAppNameHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(adminUser),
		http.MethodPost,
		"/api/settings/app",
	)

	tReq.SetData(dtos.AppNameDto{Name: "PharmaEvents QA"})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var response dtos.SuccessResponse
	err := json.NewDecoder(rs.Body).Decode(&response)
	assert.Nil(t, err)
	assert.True(t, response.Success)
}

func TestUpdateAppNameForbidden(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(managerUser),
		http.MethodPost,
		"/api/settings/app",
	)

	tReq.SetData(dtos.AppNameDto{Name: "PharmaEvents QA"})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusUnauthorized, rs.StatusCode)
}

func TestUpdateThemeHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(adminUser),
		http.MethodPost,
		"/api/settings/theme",
	)

	tReq.SetData(dtos.ThemeColorDto{ThemeColor: "#123abc"})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var response dtos.ThemeUpdatedResponse
	err := json.NewDecoder(rs.Body).Decode(&response)
	assert.Nil(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, "#123abc", response.ThemeColor)
}

func TestUpdateThemeInvalidColor(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(adminUser),
		http.MethodPost,
		"/api/settings/theme",
	)

	tReq.SetData(dtos.ThemeColorDto{ThemeColor: "red"})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusUnprocessableEntity, rs.StatusCode)
}

func TestCategoryLifecycle(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(adminUser),
		http.MethodPost,
		"/api/categories",
	)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(dtos.CreateCategoryDto{Name: "Test Lifecycle Category"})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusCreated, rs.StatusCode)

	var created dtos.TaxonomyCreatedResponse
	err := json.NewDecoder(rs.Body).Decode(&created)
	assert.Nil(t, err)
	assert.True(t, created.Success)
	assert.Equal(t, "Test Lifecycle Category", created.Name)

	dReq := test.CreateRequestTester(
		getRoutes(adminUser),
		http.MethodDelete,
		fmt.Sprintf("/api/categories/%d", created.ID),
	)

	rs = dReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(adminUser),
		http.MethodDelete,
		"/api/categories/999999",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusNotFound, rs.StatusCode)
}

func TestEventTypeLifecycle(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(adminUser),
		http.MethodPost,
		"/api/event-types",
	)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(dtos.CreateEventTypeDto{Name: "Test Lifecycle Type"})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusCreated, rs.StatusCode)

	var created dtos.TaxonomyCreatedResponse
	err := json.NewDecoder(rs.Body).Decode(&created)
	assert.Nil(t, err)
	assert.True(t, created.Success)

	dReq := test.CreateRequestTester(
		getRoutes(adminUser),
		http.MethodDelete,
		fmt.Sprintf("/api/event-types/%d", created.ID),
	)

	rs = dReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
}

func TestCreateUserHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(adminUser),
		http.MethodPost,
		"/api/users",
	)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(dtos.CreateUserDto{
		Email:    "lifecycle@pharmaevents.test",
		Password: "secret123",
		Role:     models.RoleMedicalRep,
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusCreated, rs.StatusCode)

	var created dtos.UserCreatedResponse
	err := json.NewDecoder(rs.Body).Decode(&created)
	assert.Nil(t, err)
	assert.True(t, created.Success)
	assert.Equal(t, models.RoleMedicalRep, created.Role)

	dReq := test.CreateRequestTester(
		getRoutes(adminUser),
		http.MethodDelete,
		fmt.Sprintf("/api/users/%d", created.ID),
	)

	rs = dReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
}

func TestCreateUserInvalidEmail(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(adminUser),
		http.MethodPost,
		"/api/users",
	)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(dtos.CreateUserDto{
		Email:    "not-an-email",
		Password: "secret123",
		Role:     models.RoleMedicalRep,
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusUnprocessableEntity, rs.StatusCode)
}

func TestUsersListHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(adminUser),
		http.MethodGet,
		"/api/users/list",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var response dtos.UserListResponse
	err := json.NewDecoder(rs.Body).Decode(&response)
	assert.Nil(t, err)
	assert.True(t, response.Success)
	assert.NotEmpty(t, response.Users)
}

func TestBulkUsersHandler(t *testing.T) {
	csvData := "Email,Password,Role\n" +
		"bulk.one@pharmaevents.test,secret123,medical_rep\n" +
		"bulk.two@pharmaevents.test,secret123,Event Manager\n" +
		"bulk.bad@pharmaevents.test,secret123,director\n"

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("users_file", "users.csv")
	assert.Nil(t, err)
	_, err = part.Write([]byte(csvData))
	assert.Nil(t, err)
	assert.Nil(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/users/bulk", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	getRoutes(adminUser).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response dtos.BulkUsersResponse
	err = json.NewDecoder(rec.Body).Decode(&response)
	assert.Nil(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, 2, response.Created)
	assert.Equal(t, 1, response.Failed)
	assert.Len(t, response.Errors, 1)

	for _, email := range []string{
		"bulk.one@pharmaevents.test",
		"bulk.two@pharmaevents.test",
	} {
		user, getErr := testApp.Repositories.Users.GetByEmail(
			context.Background(),
			email,
		)
		assert.Nil(t, getErr)

		dReq := test.CreateRequestTester(
			getRoutes(adminUser),
			http.MethodDelete,
			fmt.Sprintf("/api/users/%d", user.ID),
		)
		rs := dReq.Do(t)
		assert.Equal(t, http.StatusOK, rs.StatusCode)
	}
}

func TestBulkUsersMissingFile(t *testing.T) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	assert.Nil(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/users/bulk", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	getRoutes(adminUser).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUsersTemplateHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(adminUser),
		http.MethodGet,
		"/api/users/template",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
	assert.Equal(t, "text/csv", rs.Header.Get("Content-Type"))
}

func TestDeleteOwnAccount(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(adminUser),
		http.MethodDelete,
		fmt.Sprintf("/api/users/%d", adminUser.ID),
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusBadRequest, rs.StatusCode)

	var response dtos.SuccessResponse
	err := json.NewDecoder(rs.Body).Decode(&response)
	assert.Nil(t, err)
	assert.False(t, response.Success)
	assert.NotEmpty(t, response.Error)
}

func TestViewPreferenceHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(managerUser),
		http.MethodPost,
		"/api/preferences/view",
	)

	tReq.SetData(dtos.ViewPreferenceDto{View: dtos.ViewList})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var viewCookie *http.Cookie
	for _, cookie := range rs.Cookies() {
		if cookie.Name == constants.ViewCookieName {
			viewCookie = cookie
		}
	}
	assert.NotNil(t, viewCookie)
	assert.Equal(t, dtos.ViewList, viewCookie.Value)
}

func TestViewPreferenceInvalid(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(managerUser),
		http.MethodPost,
		"/api/preferences/view",
	)

	tReq.SetData(dtos.ViewPreferenceDto{View: "grid"})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusUnprocessableEntity, rs.StatusCode)
}
