package repositories

import (
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type Repositories struct {
	Events     *EventRepository
	Categories *CategoryRepository
	EventTypes *EventTypeRepository
	Users      *UserRepository
	Sessions   *SessionRepository
	Settings   *SettingRepository
}

func New(db postgres.DB) *Repositories {
	return &Repositories{
		Events:     &EventRepository{db: db},
		Categories: &CategoryRepository{db: db},
		EventTypes: &EventTypeRepository{db: db},
		Users:      &UserRepository{db: db},
		Sessions:   &SessionRepository{db: db},
		Settings:   &SettingRepository{db: db},
	}
}
