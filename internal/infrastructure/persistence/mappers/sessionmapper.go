package mappers

import (
	"wicket/internal/domain/auth"
	"wicket/internal/infrastructure/persistence/models"
)

// SessionMapper handles the conversion between Session domain entities and persistence models.
type SessionMapper interface {
	ToModel(entity *auth.Session) *models.SessionModel
	ToDomain(model *models.SessionModel) *auth.Session
}

type sessionMapperImpl struct{}

// NewSessionMapper creates a new SessionMapper.
func NewSessionMapper() SessionMapper {
	return &sessionMapperImpl{}
}

func (m *sessionMapperImpl) ToModel(entity *auth.Session) *models.SessionModel {
	if entity == nil {
		return nil
	}
	return &models.SessionModel{
		ID:        entity.ID,
		Email:     entity.Email,
		TokenHash: entity.TokenHash,
		UserAgent: entity.UserAgent,
		IPAddress: entity.IPAddress,
		CreatedAt: entity.CreatedAt,
		LastSeen:  entity.LastSeen,
	}
}

func (m *sessionMapperImpl) ToDomain(model *models.SessionModel) *auth.Session {
	if model == nil {
		return nil
	}
	return &auth.Session{
		ID:        model.ID,
		Email:     model.Email,
		TokenHash: model.TokenHash,
		UserAgent: model.UserAgent,
		IPAddress: model.IPAddress,
		CreatedAt: model.CreatedAt,
		LastSeen:  model.LastSeen,
	}
}
