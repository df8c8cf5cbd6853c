//nolint:mnd //no magic number
package config

import (
	"log/slog"

	"github.com/xdoubleu/essentia/v2/pkg/config"
)

type Config struct {
	Env           string
	Port          int
	WebURL        string
	SentryDsn     string
	SampleRate    float64
	SessionExpiry string
	DBDsn         string
	Release       string
	UploadDir     string
	AdminEmail    string
	AdminPassword string
}

func New(logger *slog.Logger) Config {
	var cfg Config

	parser := config.New(logger)

	cfg.Env = parser.EnvStr("ENV", config.ProdEnv)
	cfg.Port = parser.EnvInt("PORT", 8000)
	cfg.WebURL = parser.EnvStr("WEB_URL", "http://localhost:8000")
	cfg.SentryDsn = parser.EnvStr("SENTRY_DSN", "")
	cfg.SampleRate = parser.EnvFloat("SAMPLE_RATE", 1.0)
	cfg.SessionExpiry = parser.EnvStr("SESSION_EXPIRY", "12h")
	cfg.DBDsn = parser.EnvStr("DB_DSN", "postgres://postgres@localhost/postgres")
	cfg.Release = parser.EnvStr("RELEASE", config.DevEnv)
	cfg.UploadDir = parser.EnvStr("UPLOAD_DIR", "uploads")

	cfg.AdminEmail = parser.EnvStr("ADMIN_EMAIL", "admin@pharmaevents.app")
	cfg.AdminPassword = parser.EnvStr("ADMIN_PASSWORD", "")

	return cfg
}
