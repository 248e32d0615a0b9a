package service

import (
	"cyberwalk_backend/internal/model"
	"cyberwalk_backend/internal/repository"
)

// ContentService serves the read-only content graph to players. Defender
// choices are stripped down before serving: the defender picks on the label
// alone, outcomes and score deltas stay hidden until the choice resolves.
type ContentService struct {
	Content *repository.ContentRepository
}

func NewContentService(content *repository.ContentRepository) *ContentService {
	return &ContentService{Content: content}
}

// ChoiceView is the player-facing shape of a defender choice.
// swagger:model ChoiceView
type ChoiceView struct {
	ID          uint   `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

func (s *ContentService) GetAvailableLevels() ([]model.Level, error) {
	return s.Content.ListEnabledLevels()
}

func (s *ContentService) GetDefenderProfiles(levelID uint) ([]model.DefenderProfile, error) {
	return s.Content.ProfilesByLevel(levelID)
}

func (s *ContentService) GetAttackScenarios(levelID uint) ([]model.AttackScenario, error) {
	return s.Content.ScenariosByLevel(levelID)
}

func (s *ContentService) GetAttackOptions(scenarioID uint) ([]model.AttackOption, error) {
	return s.Content.OptionsByScenario(scenarioID)
}

func (s *ContentService) GetDefenderChoices(optionID uint) ([]ChoiceView, error) {
	choices, err := s.Content.ChoicesByOption(optionID)
	if err != nil {
		return nil, err
	}

	views := make([]ChoiceView, 0, len(choices))
	for _, c := range choices {
		views = append(views, ChoiceView{
			ID:          c.ID,
			Label:       c.Label,
			Description: c.Description,
		})
	}
	return views, nil
}
