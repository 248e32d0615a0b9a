package service

import (
	"cyberwalk_backend/internal/model"
	"cyberwalk_backend/internal/repository"
	"cyberwalk_backend/internal/util"
	"encoding/json"
)

// EditorService is the authoring side of the content graph. Content written
// here is immutable from the game's point of view; the engine only ever
// reads it.
type EditorService struct {
	Content *repository.ContentRepository
}

func NewEditorService(content *repository.ContentRepository) *EditorService {
	return &EditorService{Content: content}
}

type LevelRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	Enabled     bool   `json:"enabled"`
	OrderIndex  int    `json:"orderIndex"`
	MaxAttacks  int    `json:"maxAttacks"`
}

type ProfileRequest struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description"`
	Age             int      `json:"age"`
	AgeGroup        string   `json:"ageGroup"`
	Occupation      string   `json:"occupation"`
	TechSavviness   string   `json:"techSavviness"`
	MentalState     string   `json:"mentalState"`
	FinancialStatus string   `json:"financialStatus"`
	AvatarIcon      string   `json:"avatarIcon"`
	Relationships   []string `json:"relationships"`
	Vulnerabilities []string `json:"vulnerabilities"`
}

type ScenarioRequest struct {
	AttackType        string `json:"attackType" binding:"required"`
	Name              string `json:"name" binding:"required"`
	Description       string `json:"description"`
	AttackerNarrative string `json:"attackerNarrative"`
}

type OptionRequest struct {
	Label              string `json:"label" binding:"required"`
	Description        string `json:"description"`
	AttackerMessage    string `json:"attackerMessage"`
	ImpersonatedEntity string `json:"impersonatedEntity"`
	BaseAttackerPoints int    `json:"baseAttackerPoints"`
	RiskLevel          int    `json:"riskLevel"`
	CriticalRisk       bool   `json:"criticalRisk"`
}

type ChoiceRequest struct {
	Label                  string `json:"label" binding:"required"`
	Description            string `json:"description"`
	Outcome                string `json:"outcome"`
	DefenderScoreDelta     int    `json:"defenderScoreDelta"`
	AttackerScoreDelta     int    `json:"attackerScoreDelta"`
	ChoiceType             string `json:"choiceType"`
	CriticallyWrong        bool   `json:"criticallyWrong"`
	CriticallyRight        bool   `json:"criticallyRight"`
	EducationalNote        string `json:"educationalNote"`
	FollowUpAttackOptionID *uint  `json:"followUpAttackOptionId"`
	EndsScenario           bool   `json:"endsScenario"`
}

// ========== levels ==========

func (s *EditorService) ListLevels() ([]model.Level, error) {
	return s.Content.ListAllLevels()
}

func (s *EditorService) GetLevel(id uint) (*model.Level, error) {
	return s.Content.FindLevel(id)
}

func (s *EditorService) CreateLevel(req LevelRequest) (*model.Level, error) {
	level := &model.Level{}
	applyLevelRequest(level, req)
	if err := s.Content.CreateLevel(level); err != nil {
		return nil, err
	}
	return level, nil
}

func (s *EditorService) UpdateLevel(id uint, req LevelRequest) (*model.Level, error) {
	level, err := s.Content.FindLevel(id)
	if err != nil {
		return nil, err
	}
	applyLevelRequest(level, req)
	if err := s.Content.SaveLevel(level); err != nil {
		return nil, err
	}
	return level, nil
}

func (s *EditorService) DeleteLevel(id uint) error {
	if _, err := s.Content.FindLevel(id); err != nil {
		return err
	}
	return s.Content.DeleteLevel(id)
}

// ========== defender profiles ==========

func (s *EditorService) CreateProfile(levelID uint, req ProfileRequest) (*model.DefenderProfile, error) {
	if _, err := s.Content.FindLevel(levelID); err != nil {
		return nil, err
	}
	profile := &model.DefenderProfile{LevelID: levelID}
	if err := applyProfileRequest(profile, req); err != nil {
		return nil, err
	}
	if err := s.Content.CreateProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *EditorService) UpdateProfile(id uint, req ProfileRequest) (*model.DefenderProfile, error) {
	profile, err := s.Content.FindProfile(id)
	if err != nil {
		return nil, err
	}
	if err := applyProfileRequest(profile, req); err != nil {
		return nil, err
	}
	if err := s.Content.SaveProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *EditorService) DeleteProfile(id uint) error {
	if _, err := s.Content.FindProfile(id); err != nil {
		return err
	}
	return s.Content.DeleteProfile(id)
}

// ========== attack scenarios ==========

func (s *EditorService) CreateScenario(levelID uint, req ScenarioRequest) (*model.AttackScenario, error) {
	if _, err := s.Content.FindLevel(levelID); err != nil {
		return nil, err
	}
	scenario := &model.AttackScenario{
		LevelID:           levelID,
		AttackType:        req.AttackType,
		Name:              req.Name,
		Description:       req.Description,
		AttackerNarrative: req.AttackerNarrative,
	}
	if err := s.Content.CreateScenario(scenario); err != nil {
		return nil, err
	}
	return scenario, nil
}

func (s *EditorService) UpdateScenario(id uint, req ScenarioRequest) (*model.AttackScenario, error) {
	scenario, err := s.Content.FindScenario(id)
	if err != nil {
		return nil, err
	}
	scenario.AttackType = req.AttackType
	scenario.Name = req.Name
	scenario.Description = req.Description
	scenario.AttackerNarrative = req.AttackerNarrative
	if err := s.Content.SaveScenario(scenario); err != nil {
		return nil, err
	}
	return scenario, nil
}

func (s *EditorService) DeleteScenario(id uint) error {
	if _, err := s.Content.FindScenario(id); err != nil {
		return err
	}
	return s.Content.DeleteScenario(id)
}

// ========== attack options ==========

func (s *EditorService) CreateOption(scenarioID uint, req OptionRequest) (*model.AttackOption, error) {
	if _, err := s.Content.FindScenario(scenarioID); err != nil {
		return nil, err
	}
	option := &model.AttackOption{AttackScenarioID: scenarioID}
	if err := applyOptionRequest(option, req); err != nil {
		return nil, err
	}
	if err := s.Content.CreateOption(option); err != nil {
		return nil, err
	}
	return option, nil
}

func (s *EditorService) UpdateOption(id uint, req OptionRequest) (*model.AttackOption, error) {
	option, err := s.Content.FindOption(id)
	if err != nil {
		return nil, err
	}
	if err := applyOptionRequest(option, req); err != nil {
		return nil, err
	}
	if err := s.Content.SaveOption(option); err != nil {
		return nil, err
	}
	return option, nil
}

func (s *EditorService) DeleteOption(id uint) error {
	if _, err := s.Content.FindOption(id); err != nil {
		return err
	}
	return s.Content.DeleteOption(id)
}

// ========== defender choices ==========

func (s *EditorService) CreateChoice(optionID uint, req ChoiceRequest) (*model.DefenderChoice, error) {
	if _, err := s.Content.FindOption(optionID); err != nil {
		return nil, err
	}
	if err := s.validateFollowUp(req.FollowUpAttackOptionID); err != nil {
		return nil, err
	}
	choice := &model.DefenderChoice{AttackOptionID: optionID}
	applyChoiceRequest(choice, req)
	if err := s.Content.CreateChoice(choice); err != nil {
		return nil, err
	}
	return choice, nil
}

func (s *EditorService) UpdateChoice(id uint, req ChoiceRequest) (*model.DefenderChoice, error) {
	choice, err := s.Content.FindChoice(id)
	if err != nil {
		return nil, err
	}
	if err := s.validateFollowUp(req.FollowUpAttackOptionID); err != nil {
		return nil, err
	}
	applyChoiceRequest(choice, req)
	if err := s.Content.SaveChoice(choice); err != nil {
		return nil, err
	}
	return choice, nil
}

func (s *EditorService) DeleteChoice(id uint) error {
	if _, err := s.Content.FindChoice(id); err != nil {
		return err
	}
	return s.Content.DeleteChoice(id)
}

func (s *EditorService) validateFollowUp(optionID *uint) error {
	if optionID == nil {
		return nil
	}
	_, err := s.Content.FindOption(*optionID)
	return err
}

func applyLevelRequest(level *model.Level, req LevelRequest) {
	level.Name = req.Name
	level.Description = req.Description
	level.Difficulty = req.Difficulty
	if level.Difficulty == "" {
		level.Difficulty = model.LevelDifficultyEasy
	}
	level.Enabled = req.Enabled
	level.OrderIndex = req.OrderIndex
	level.MaxAttacks = req.MaxAttacks
	if level.MaxAttacks <= 0 {
		level.MaxAttacks = 5
	}
}

func applyProfileRequest(profile *model.DefenderProfile, req ProfileRequest) error {
	relationships, err := json.Marshal(req.Relationships)
	if err != nil {
		return util.ErrInvalidPersonaList
	}
	vulnerabilities, err := json.Marshal(req.Vulnerabilities)
	if err != nil {
		return util.ErrInvalidPersonaList
	}

	profile.Name = req.Name
	profile.Description = req.Description
	profile.Age = req.Age
	profile.AgeGroup = req.AgeGroup
	profile.Occupation = req.Occupation
	profile.TechSavviness = req.TechSavviness
	profile.MentalState = req.MentalState
	profile.FinancialStatus = req.FinancialStatus
	profile.AvatarIcon = req.AvatarIcon
	profile.Relationships = relationships
	profile.Vulnerabilities = vulnerabilities
	return nil
}

func applyOptionRequest(option *model.AttackOption, req OptionRequest) error {
	if req.RiskLevel < 0 || req.RiskLevel > 5 {
		return util.ErrInvalidRiskLevel
	}
	option.Label = req.Label
	option.Description = req.Description
	option.AttackerMessage = req.AttackerMessage
	option.ImpersonatedEntity = req.ImpersonatedEntity
	option.BaseAttackerPoints = req.BaseAttackerPoints
	option.RiskLevel = req.RiskLevel
	if option.RiskLevel == 0 {
		option.RiskLevel = 1
	}
	option.CriticalRisk = req.CriticalRisk
	return nil
}

func applyChoiceRequest(choice *model.DefenderChoice, req ChoiceRequest) {
	choice.Label = req.Label
	choice.Description = req.Description
	choice.Outcome = req.Outcome
	choice.DefenderScoreDelta = req.DefenderScoreDelta
	choice.AttackerScoreDelta = req.AttackerScoreDelta
	choice.ChoiceType = req.ChoiceType
	if choice.ChoiceType == "" {
		choice.ChoiceType = model.ChoiceTypeNeutral
	}
	choice.CriticallyWrong = req.CriticallyWrong
	choice.CriticallyRight = req.CriticallyRight
	choice.EducationalNote = req.EducationalNote
	choice.FollowUpAttackOptionID = req.FollowUpAttackOptionID
	choice.EndsScenario = req.EndsScenario
}
