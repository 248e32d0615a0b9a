package service

import (
	"cyberwalk_backend/internal/model"
	"cyberwalk_backend/internal/repository"
	"time"
)

// StoryService drives the single-player video walkthrough. The branching
// graph lives in StoryScene/StoryOption; a GameSession just remembers where
// one player currently is.
type StoryService struct {
	StoryRepo   *repository.StoryRepository
	SessionRepo *repository.SessionRepository
}

func NewStoryService(storyRepo *repository.StoryRepository, sessionRepo *repository.SessionRepository) *StoryService {
	return &StoryService{
		StoryRepo:   storyRepo,
		SessionRepo: sessionRepo,
	}
}

func (s *StoryService) GetScene(videoID string) (*model.StoryScene, error) {
	return s.StoryRepo.FindSceneByVideoID(videoID)
}

func (s *StoryService) ListScenes() ([]model.StoryScene, error) {
	return s.StoryRepo.ListScenes()
}

func (s *StoryService) CreateSession() (*model.GameSession, error) {
	now := time.Now()
	session := &model.GameSession{
		SessionID:      model.GenerateUUID(),
		CurrentScore:   0,
		CurrentVideoID: "1",
		StartTime:      now,
		LastUpdated:    now,
	}
	if err := s.SessionRepo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *StoryService) GetSession(sessionID string) (*model.GameSession, error) {
	return s.SessionRepo.FindBySessionID(sessionID)
}

// MakeChoice resolves a branch server-side: the option decides the score
// change and the next scene, never the client. Landing on a leaf scene
// completes the session.
func (s *StoryService) MakeChoice(sessionID string, optionID uint) (*model.GameSession, error) {
	session, err := s.SessionRepo.FindBySessionID(sessionID)
	if err != nil {
		return nil, err
	}

	option, err := s.StoryRepo.FindOption(optionID)
	if err != nil {
		return nil, err
	}

	session.CurrentScore += option.DefenderScoreDelta
	session.CurrentVideoID = option.TargetVideoID
	session.LastUpdated = time.Now()

	if target, err := s.StoryRepo.FindSceneByVideoID(option.TargetVideoID); err == nil && target.LeafNode {
		session.Completed = true
	}

	if err := s.SessionRepo.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *StoryService) CompleteSession(sessionID string) (*model.GameSession, error) {
	session, err := s.SessionRepo.FindBySessionID(sessionID)
	if err != nil {
		return nil, err
	}

	session.Completed = true
	session.LastUpdated = time.Now()

	if err := s.SessionRepo.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}
