package models

import "time"

// SessionModel represents the database persistence model for sessions.
type SessionModel struct {
	ID        uint   `gorm:"primarykey"`
	Email     string `gorm:"size:255;not null;index"`
	TokenHash string `gorm:"size:64;not null"`
	UserAgent string `gorm:"size:512"`
	IPAddress string `gorm:"size:45"`
	CreatedAt time.Time
	LastSeen  time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}
