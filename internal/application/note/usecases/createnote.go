package usecases

import (
	"fmt"

	"wicket/internal/domain/note"
	"wicket/internal/shared/errors"
	"wicket/internal/shared/logger"
)

type CreateNoteCommand struct {
	Content string
}

type CreateNoteUseCase struct {
	noteRepo note.Repository
	logger   logger.Interface
}

func NewCreateNoteUseCase(noteRepo note.Repository, logger logger.Interface) *CreateNoteUseCase {
	return &CreateNoteUseCase{
		noteRepo: noteRepo,
		logger:   logger,
	}
}

func (uc *CreateNoteUseCase) Execute(cmd CreateNoteCommand) (*note.Note, error) {
	n, err := note.NewNote(cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError("invalid note", err.Error())
	}

	if err := uc.noteRepo.Create(n); err != nil {
		uc.logger.Errorw("failed to create note", "error", err)
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return n, nil
}
