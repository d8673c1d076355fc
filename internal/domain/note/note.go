package note

import (
	"fmt"
	"strings"
	"time"

	"wicket/internal/shared/biztime"
)

// Note is a single note entry. Content is markdown.
type Note struct {
	ID        uint
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewNote(content string) (*Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("content is required")
	}
	if len(content) > 10000 {
		return nil, fmt.Errorf("content cannot exceed 10000 characters")
	}

	now := biztime.NowUTC()
	return &Note{
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

type Repository interface {
	Create(note *Note) error
	List() ([]*Note, error)
}
