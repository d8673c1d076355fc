package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"wicket/internal/domain/auth"
	"wicket/internal/infrastructure/persistence/models"
	"wicket/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SessionModel{}, &models.NoteModel{}))
	return db
}

func newTestSession(t *testing.T, email string) *auth.Session {
	t.Helper()
	session, err := auth.NewSession(email, "digest", auth.RequestMeta{
		UserAgent: "ua",
		IPAddress: "203.0.113.1",
	})
	require.NoError(t, err)
	return session
}

func TestSessionRepository_CreateAndGet(t *testing.T) {
	repo := NewSessionRepository(setupTestDB(t))

	session := newTestSession(t, "alice@example.com")
	require.NoError(t, repo.Create(session))
	assert.NotZero(t, session.ID)

	got, err := repo.GetByID(session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.Email, got.Email)
	assert.Equal(t, session.TokenHash, got.TokenHash)
	assert.Equal(t, session.UserAgent, got.UserAgent)
	assert.Equal(t, session.IPAddress, got.IPAddress)
}

func TestSessionRepository_GetByID_NotFound(t *testing.T) {
	repo := NewSessionRepository(setupTestDB(t))

	_, err := repo.GetByID(12345)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestSessionRepository_Delete(t *testing.T) {
	repo := NewSessionRepository(setupTestDB(t))

	session := newTestSession(t, "alice@example.com")
	require.NoError(t, repo.Create(session))

	require.NoError(t, repo.Delete(session.ID))

	_, err := repo.GetByID(session.ID)
	assert.True(t, errors.IsNotFoundError(err))

	// Idempotent.
	assert.NoError(t, repo.Delete(session.ID))
	assert.NoError(t, repo.Delete(99999))
}

func TestSessionRepository_TouchLastSeen(t *testing.T) {
	repo := NewSessionRepository(setupTestDB(t))

	session := newTestSession(t, "alice@example.com")
	require.NoError(t, repo.Create(session))

	before, err := repo.GetByID(session.ID)
	require.NoError(t, err)

	require.NoError(t, repo.TouchLastSeen(session.ID))

	after, err := repo.GetByID(session.ID)
	require.NoError(t, err)
	assert.False(t, after.LastSeen.Before(before.LastSeen))

	// Touching a missing session is not an error.
	assert.NoError(t, repo.TouchLastSeen(99999))
}
