package mappers

import (
	"wicket/internal/domain/note"
	"wicket/internal/infrastructure/persistence/models"
)

// NoteMapper handles the conversion between Note domain entities and persistence models.
type NoteMapper interface {
	ToModel(entity *note.Note) *models.NoteModel
	ToDomain(model *models.NoteModel) *note.Note
}

type noteMapperImpl struct{}

// NewNoteMapper creates a new NoteMapper.
func NewNoteMapper() NoteMapper {
	return &noteMapperImpl{}
}

func (m *noteMapperImpl) ToModel(entity *note.Note) *models.NoteModel {
	if entity == nil {
		return nil
	}
	return &models.NoteModel{
		ID:        entity.ID,
		Content:   entity.Content,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func (m *noteMapperImpl) ToDomain(model *models.NoteModel) *note.Note {
	if model == nil {
		return nil
	}
	return &note.Note{
		ID:        model.ID,
		Content:   model.Content,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
