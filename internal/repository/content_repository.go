package repository

import (
	"cyberwalk_backend/internal/model"
	"cyberwalk_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

// ContentRepository is the read/write store for the content graph. Gameplay
// only uses the finders and list queries; the editor uses the write methods.
type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

// ========== finders (game.ContentStore) ==========

func (r *ContentRepository) FindLevel(id uint) (*model.Level, error) {
	var level model.Level
	if err := r.DB.First(&level, id).Error; err != nil {
		return nil, notFound(err, util.ErrLevelNotFound)
	}
	return &level, nil
}

func (r *ContentRepository) FindProfile(id uint) (*model.DefenderProfile, error) {
	var profile model.DefenderProfile
	if err := r.DB.First(&profile, id).Error; err != nil {
		return nil, notFound(err, util.ErrProfileNotFound)
	}
	return &profile, nil
}

func (r *ContentRepository) FindScenario(id uint) (*model.AttackScenario, error) {
	var scenario model.AttackScenario
	if err := r.DB.First(&scenario, id).Error; err != nil {
		return nil, notFound(err, util.ErrScenarioNotFound)
	}
	return &scenario, nil
}

func (r *ContentRepository) FindOption(id uint) (*model.AttackOption, error) {
	var option model.AttackOption
	if err := r.DB.First(&option, id).Error; err != nil {
		return nil, notFound(err, util.ErrOptionNotFound)
	}
	return &option, nil
}

func (r *ContentRepository) FindChoice(id uint) (*model.DefenderChoice, error) {
	var choice model.DefenderChoice
	if err := r.DB.First(&choice, id).Error; err != nil {
		return nil, notFound(err, util.ErrChoiceNotFound)
	}
	return &choice, nil
}

// ========== list queries ==========

func (r *ContentRepository) ListEnabledLevels() ([]model.Level, error) {
	var levels []model.Level
	err := r.DB.Where("enabled = ?", true).Order("order_index asc").Find(&levels).Error
	return levels, err
}

func (r *ContentRepository) ListAllLevels() ([]model.Level, error) {
	var levels []model.Level
	err := r.DB.Order("order_index asc").Find(&levels).Error
	return levels, err
}

func (r *ContentRepository) ProfilesByLevel(levelID uint) ([]model.DefenderProfile, error) {
	var profiles []model.DefenderProfile
	err := r.DB.Where("level_id = ?", levelID).Order("id asc").Find(&profiles).Error
	return profiles, err
}

func (r *ContentRepository) ScenariosByLevel(levelID uint) ([]model.AttackScenario, error) {
	var scenarios []model.AttackScenario
	err := r.DB.Where("level_id = ?", levelID).Order("id asc").Find(&scenarios).Error
	return scenarios, err
}

func (r *ContentRepository) OptionsByScenario(scenarioID uint) ([]model.AttackOption, error) {
	var options []model.AttackOption
	err := r.DB.Where("attack_scenario_id = ?", scenarioID).Order("id asc").Find(&options).Error
	return options, err
}

func (r *ContentRepository) ChoicesByOption(optionID uint) ([]model.DefenderChoice, error) {
	var choices []model.DefenderChoice
	err := r.DB.Where("attack_option_id = ?", optionID).Order("id asc").Find(&choices).Error
	return choices, err
}

func (r *ContentRepository) CountLevels() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Level{}).Count(&count).Error
	return count, err
}

// ========== editor writes ==========

func (r *ContentRepository) CreateLevel(level *model.Level) error {
	return r.DB.Create(level).Error
}

func (r *ContentRepository) SaveLevel(level *model.Level) error {
	return r.DB.Save(level).Error
}

func (r *ContentRepository) DeleteLevel(id uint) error {
	return r.DB.Select("DefenderProfiles", "AttackScenarios").Delete(&model.Level{BaseModel: model.BaseModel{ID: id}}).Error
}

func (r *ContentRepository) CreateProfile(profile *model.DefenderProfile) error {
	return r.DB.Create(profile).Error
}

func (r *ContentRepository) SaveProfile(profile *model.DefenderProfile) error {
	return r.DB.Save(profile).Error
}

func (r *ContentRepository) DeleteProfile(id uint) error {
	return r.DB.Delete(&model.DefenderProfile{}, id).Error
}

func (r *ContentRepository) CreateScenario(scenario *model.AttackScenario) error {
	return r.DB.Create(scenario).Error
}

func (r *ContentRepository) SaveScenario(scenario *model.AttackScenario) error {
	return r.DB.Save(scenario).Error
}

func (r *ContentRepository) DeleteScenario(id uint) error {
	return r.DB.Select("AttackOptions").Delete(&model.AttackScenario{BaseModel: model.BaseModel{ID: id}}).Error
}

func (r *ContentRepository) CreateOption(option *model.AttackOption) error {
	return r.DB.Create(option).Error
}

func (r *ContentRepository) SaveOption(option *model.AttackOption) error {
	return r.DB.Save(option).Error
}

func (r *ContentRepository) DeleteOption(id uint) error {
	return r.DB.Select("DefenderChoices").Delete(&model.AttackOption{BaseModel: model.BaseModel{ID: id}}).Error
}

func (r *ContentRepository) CreateChoice(choice *model.DefenderChoice) error {
	return r.DB.Create(choice).Error
}

func (r *ContentRepository) SaveChoice(choice *model.DefenderChoice) error {
	return r.DB.Save(choice).Error
}

func (r *ContentRepository) DeleteChoice(id uint) error {
	return r.DB.Delete(&model.DefenderChoice{}, id).Error
}

func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
