package pharmaevents_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"
	"time"

	configtools "github.com/xdoubleu/essentia/v2/pkg/config"
	"github.com/xdoubleu/essentia/v2/pkg/database"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"golang.org/x/crypto/bcrypt"
	pharmaevents "pharmaevents.app"
	"pharmaevents.app/internal/auth"
	"pharmaevents.app/internal/config"
	"pharmaevents.app/internal/mocks"
	"pharmaevents.app/internal/models"
)

//nolint:gochecknoglobals //needed for tests
var testApp *pharmaevents.Application

//nolint:gochecknoglobals //needed for tests
var realAuthService auth.Service

//nolint:gochecknoglobals //needed for tests
var adminUser models.User

//nolint:gochecknoglobals //needed for tests
var managerUser models.User

const testPassword = "password123"

func TestMain(m *testing.M) {
	var err error

	cfg := config.New(logging.NewNopLogger())
	cfg.Env = configtools.TestEnv
	cfg.UploadDir = os.TempDir()

	postgresDB, err := postgres.Connect(
		logging.NewNopLogger(),
		cfg.DBDsn,
		25,
		"15m",
		5,
		15*time.Second,
		30*time.Second,
	)
	if err != nil {
		panic(err)
	}

	testApp = pharmaevents.New(logging.NewNopLogger(), cfg, postgresDB)

	err = testApp.ApplyMigrations(postgresDB)
	if err != nil {
		panic(err)
	}

	realAuthService = testApp.Services.Auth

	adminUser = mustUser("admin@pharmaevents.test", models.RoleAdmin)
	managerUser = mustUser("manager@pharmaevents.test", models.RoleEventManager)

	os.Exit(m.Run())
}

func mustUser(email string, role models.Role) models.User {
	ctx := context.Background()

	user, err := testApp.Repositories.Users.GetByEmail(ctx, email)
	if err == nil {
		return *user
	}
	if !errors.Is(err, database.ErrResourceNotFound) {
		panic(err)
	}

	hash, err := bcrypt.GenerateFromPassword(
		[]byte(testPassword),
		bcrypt.MinCost,
	)
	if err != nil {
		panic(err)
	}

	user, err = testApp.Repositories.Users.Create(ctx, email, string(hash), role)
	if err != nil {
		panic(err)
	}

	return *user
}

func getRoutes(user models.User) http.Handler {
	testApp.Services.Auth = mocks.NewMockedAuthService(user)
	return testApp.Routes()
}

func realRoutes() http.Handler {
	testApp.Services.Auth = realAuthService
	return testApp.Routes()
}

func createTestEvent(userID int64) models.Event {
	start := time.Now().Add(48 * time.Hour)

	//nolint:exhaustruct //other fields are optional
	event := models.Event{
		Name:        "Test Event",
		Description: "A test event",
		IsOnline:    true,
		Start:       start,
		End:         start.Add(2 * time.Hour),
		UserID:      userID,
		Status:      models.EventStatusActive,
	}

	err := testApp.Repositories.Events.Create(context.Background(), &event)
	if err != nil {
		panic(err)
	}

	return event
}
