package services

import (
	"html/template"
	"log/slog"

	configtools "github.com/xdoubleu/essentia/v2/pkg/config"
	"pharmaevents.app/internal/auth"
	"pharmaevents.app/internal/config"
	"pharmaevents.app/internal/repositories"
)

type Services struct {
	Auth      auth.Service
	Events    *EventService
	Dashboard *DashboardService
	Settings  *SettingsService
	Users     *UserService
}

func New(
	logger *slog.Logger,
	cfg config.Config,
	repositories *repositories.Repositories,
	tpl *template.Template,
) *Services {
	settings := &SettingsService{
		logger:     logger,
		settings:   repositories.Settings,
		categories: repositories.Categories,
		eventTypes: repositories.EventTypes,
		uploadDir:  cfg.UploadDir,
	}

	return &Services{
		Auth: &AuthService{
			logger:           logger,
			users:            repositories.Users,
			sessions:         repositories.Sessions,
			settings:         settings,
			tpl:              tpl,
			useSecureCookies: cfg.Env == configtools.ProdEnv,
			sessionExpiry:    cfg.SessionExpiry,
			adminEmail:       cfg.AdminEmail,
			adminPassword:    cfg.AdminPassword,
		},
		Events: &EventService{
			events:    repositories.Events,
			uploadDir: cfg.UploadDir,
		},
		Dashboard: NewDashboardService(logger, repositories.Events),
		Settings:  settings,
		Users: &UserService{
			users: repositories.Users,
		},
	}
}
