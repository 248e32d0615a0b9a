package repository

import (
	"cyberwalk_backend/internal/model"
	"cyberwalk_backend/internal/util"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(session *model.GameSession) error {
	return r.DB.Create(session).Error
}

func (r *SessionRepository) FindBySessionID(sessionID string) (*model.GameSession, error) {
	var session model.GameSession
	err := r.DB.Where("session_id = ?", sessionID).First(&session).Error
	if err != nil {
		return nil, notFound(err, util.ErrSessionNotFound)
	}
	return &session, nil
}

func (r *SessionRepository) Save(session *model.GameSession) error {
	return r.DB.Save(session).Error
}
