package models

import "time"

// NoteModel represents the database persistence model for notes.
type NoteModel struct {
	ID        uint   `gorm:"primarykey"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (NoteModel) TableName() string {
	return "notes"
}
