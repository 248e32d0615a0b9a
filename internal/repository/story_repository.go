package repository

import (
	"cyberwalk_backend/internal/model"
	"cyberwalk_backend/internal/util"

	"gorm.io/gorm"
)

type StoryRepository struct {
	DB *gorm.DB
}

func NewStoryRepository(db *gorm.DB) *StoryRepository {
	return &StoryRepository{DB: db}
}

func (r *StoryRepository) FindSceneByVideoID(videoID string) (*model.StoryScene, error) {
	var scene model.StoryScene
	err := r.DB.Preload("Options").Where("video_id = ?", videoID).First(&scene).Error
	if err != nil {
		return nil, notFound(err, util.ErrSceneNotFound)
	}
	return &scene, nil
}

func (r *StoryRepository) ListScenes() ([]model.StoryScene, error) {
	var scenes []model.StoryScene
	err := r.DB.Preload("Options").Order("video_id asc").Find(&scenes).Error
	return scenes, err
}

func (r *StoryRepository) FindOption(id uint) (*model.StoryOption, error) {
	var option model.StoryOption
	if err := r.DB.First(&option, id).Error; err != nil {
		return nil, notFound(err, util.ErrOptionNotFound)
	}
	return &option, nil
}

func (r *StoryRepository) CreateScene(scene *model.StoryScene) error {
	return r.DB.Create(scene).Error
}

func (r *StoryRepository) SaveScene(scene *model.StoryScene) error {
	return r.DB.Save(scene).Error
}

func (r *StoryRepository) CountScenes() (int64, error) {
	var count int64
	err := r.DB.Model(&model.StoryScene{}).Count(&count).Error
	return count, err
}
