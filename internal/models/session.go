package models

import (
	"time"
)

// Session is a server-side login session keyed by an opaque token.
// Persistent sessions get their expiry pushed forward on every resolve.
type Session struct {
	Token      string    `gorm:"size:36;primaryKey" json:"token"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	Persistent bool      `json:"persistent"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}
