package usecases

import (
	"fmt"
	"time"

	"wicket/internal/domain/note"
	"wicket/internal/shared/logger"
	"wicket/internal/shared/services/markdown"
)

// NoteView carries a note with its content rendered to sanitized HTML,
// ready for template output.
type NoteView struct {
	ID        uint
	Content   string
	HTML      string
	CreatedAt time.Time
}

type ListNotesUseCase struct {
	noteRepo note.Repository
	markdown markdown.Service
	logger   logger.Interface
}

func NewListNotesUseCase(noteRepo note.Repository, markdownSvc markdown.Service, logger logger.Interface) *ListNotesUseCase {
	return &ListNotesUseCase{
		noteRepo: noteRepo,
		markdown: markdownSvc,
		logger:   logger,
	}
}

func (uc *ListNotesUseCase) Execute() ([]NoteView, error) {
	notes, err := uc.noteRepo.List()
	if err != nil {
		uc.logger.Errorw("failed to list notes", "error", err)
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	views := make([]NoteView, 0, len(notes))
	for _, n := range notes {
		html, err := uc.markdown.ToHTMLSanitized(n.Content)
		if err != nil {
			uc.logger.Warnw("failed to render note", "note_id", n.ID, "error", err)
			html = ""
		}
		views = append(views, NoteView{
			ID:        n.ID,
			Content:   n.Content,
			HTML:      html,
			CreatedAt: n.CreatedAt,
		})
	}

	return views, nil
}
