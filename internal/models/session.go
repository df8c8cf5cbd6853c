package models

import "time"

type Session struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
}
