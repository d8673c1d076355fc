package usecases

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wicket/internal/domain/note"
	"wicket/internal/shared/errors"
	"wicket/internal/shared/logger"
	"wicket/internal/shared/services/markdown"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockNoteRepo struct {
	notes     []*note.Note
	createErr error
	listErr   error
}

func (m *mockNoteRepo) Create(n *note.Note) error {
	if m.createErr != nil {
		return m.createErr
	}
	n.ID = uint(len(m.notes) + 1)
	m.notes = append([]*note.Note{n}, m.notes...)
	return nil
}

func (m *mockNoteRepo) List() ([]*note.Note, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.notes, nil
}

func TestCreateNoteUseCase(t *testing.T) {
	repo := &mockNoteRepo{}
	uc := NewCreateNoteUseCase(repo, testLogger())

	n, err := uc.Execute(CreateNoteCommand{Content: "  hello  "})
	require.NoError(t, err)
	assert.Equal(t, "hello", n.Content)
	assert.NotZero(t, n.ID)
}

func TestCreateNoteUseCase_Invalid(t *testing.T) {
	uc := NewCreateNoteUseCase(&mockNoteRepo{}, testLogger())

	_, err := uc.Execute(CreateNoteCommand{Content: "   "})
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateNoteUseCase_RepoFailure(t *testing.T) {
	repo := &mockNoteRepo{createErr: fmt.Errorf("db down")}
	uc := NewCreateNoteUseCase(repo, testLogger())

	_, err := uc.Execute(CreateNoteCommand{Content: "hello"})
	assert.Error(t, err)
	assert.False(t, errors.IsValidationError(err))
}

func TestListNotesUseCase_RendersMarkdown(t *testing.T) {
	repo := &mockNoteRepo{}
	uc := NewListNotesUseCase(repo, markdown.NewService(), testLogger())

	created, err := note.NewNote("# Title\n\n<script>alert(1)</script>")
	require.NoError(t, err)
	require.NoError(t, repo.Create(created))

	views, err := uc.Execute()
	require.NoError(t, err)
	require.Len(t, views, 1)

	assert.Equal(t, created.ID, views[0].ID)
	assert.Contains(t, views[0].HTML, "<h1>Title</h1>")
	assert.NotContains(t, views[0].HTML, "<script>")
	assert.Equal(t, created.Content, views[0].Content)
}

func TestListNotesUseCase_Empty(t *testing.T) {
	uc := NewListNotesUseCase(&mockNoteRepo{}, markdown.NewService(), testLogger())

	views, err := uc.Execute()
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestListNotesUseCase_RepoFailure(t *testing.T) {
	repo := &mockNoteRepo{listErr: fmt.Errorf("db down")}
	uc := NewListNotesUseCase(repo, markdown.NewService(), testLogger())

	_, err := uc.Execute()
	assert.Error(t, err)
}
