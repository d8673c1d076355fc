package repository

import (
	"fmt"

	"gorm.io/gorm"

	"wicket/internal/domain/note"
	"wicket/internal/infrastructure/persistence/mappers"
	"wicket/internal/infrastructure/persistence/models"
)

type NoteRepository struct {
	db     *gorm.DB
	mapper mappers.NoteMapper
}

func NewNoteRepository(db *gorm.DB) note.Repository {
	return &NoteRepository{
		db:     db,
		mapper: mappers.NewNoteMapper(),
	}
}

func (r *NoteRepository) Create(n *note.Note) error {
	model := r.mapper.ToModel(n)
	if err := r.db.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	n.ID = model.ID
	return nil
}

func (r *NoteRepository) List() ([]*note.Note, error) {
	var noteModels []models.NoteModel
	err := r.db.Order("created_at DESC").Find(&noteModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	notes := make([]*note.Note, len(noteModels))
	for i := range noteModels {
		notes[i] = r.mapper.ToDomain(&noteModels[i])
	}
	return notes, nil
}
