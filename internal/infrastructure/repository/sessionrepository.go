package repository

import (
	"fmt"

	"gorm.io/gorm"

	"wicket/internal/domain/auth"
	"wicket/internal/infrastructure/persistence/mappers"
	"wicket/internal/infrastructure/persistence/models"
	"wicket/internal/shared/biztime"
	"wicket/internal/shared/errors"
)

type SessionRepository struct {
	db     *gorm.DB
	mapper mappers.SessionMapper
}

func NewSessionRepository(db *gorm.DB) auth.SessionRepository {
	return &SessionRepository{
		db:     db,
		mapper: mappers.NewSessionMapper(),
	}
}

func (r *SessionRepository) Create(session *auth.Session) error {
	model := r.mapper.ToModel(session)
	if err := r.db.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	session.ID = model.ID
	return nil
}

func (r *SessionRepository) GetByID(sessionID uint) (*auth.Session, error) {
	var model models.SessionModel
	err := r.db.Where("id = ?", sessionID).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("session not found")
		}
		return nil, fmt.Errorf("failed to get session by ID: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

// Delete removes a session row. Deleting a non-existent id is not an error;
// revocation must stay idempotent.
func (r *SessionRepository) Delete(sessionID uint) error {
	if err := r.db.Where("id = ?", sessionID).Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// TouchLastSeen updates the sliding-window activity marker for a session.
func (r *SessionRepository) TouchLastSeen(sessionID uint) error {
	err := r.db.Model(&models.SessionModel{}).
		Where("id = ?", sessionID).
		UpdateColumn("last_seen", biztime.NowUTC()).Error
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}
