package models

import (
	"time"
)

// BaseModel provides shared columns for all tables. IDs are plain
// autoincrement integers so newer rows always carry larger IDs.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
