package migration

import (
	"wicket/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.SessionModel{},
		&models.NoteModel{},
	}
}
