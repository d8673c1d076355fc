package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wicket/internal/domain/note"
)

func TestNoteRepository_CreateAndList(t *testing.T) {
	repo := NewNoteRepository(setupTestDB(t))

	first, err := note.NewNote("first note")
	require.NoError(t, err)
	require.NoError(t, repo.Create(first))
	assert.NotZero(t, first.ID)

	second, err := note.NewNote("second note")
	require.NoError(t, err)
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	second.UpdatedAt = second.CreatedAt
	require.NoError(t, repo.Create(second))

	notes, err := repo.List()
	require.NoError(t, err)
	require.Len(t, notes, 2)

	// Newest first.
	assert.Equal(t, "second note", notes[0].Content)
	assert.Equal(t, "first note", notes[1].Content)
}

func TestNoteRepository_List_Empty(t *testing.T) {
	repo := NewNoteRepository(setupTestDB(t))

	notes, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, notes)
}
