package service

import (
	"context"
	"cyberwalk_backend/internal/model"
	"cyberwalk_backend/internal/repository"
	"cyberwalk_backend/internal/util"
	"cyberwalk_backend/pkg/logger"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// MediaService handles the narrative clips behind story scenes and profile
// avatars. Videos are probed before they are accepted so a broken upload
// never ends up referenced by a scene.
type MediaService struct {
	Storage   *StorageService
	StoryRepo *repository.StoryRepository
}

func NewMediaService(storage *StorageService, storyRepo *repository.StoryRepository) *MediaService {
	return &MediaService{
		Storage:   storage,
		StoryRepo: storyRepo,
	}
}

// UploadSceneVideo stores a clip for an existing story scene and points the
// scene at it. The upload is staged to a temp file first so ffprobe can
// inspect it.
func (s *MediaService) UploadSceneVideo(ctx context.Context, videoID string, filename string, reader io.Reader) (*util.VideoInfo, error) {
	scene, err := s.StoryRepo.FindSceneByVideoID(videoID)
	if err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp("", "scene-upload-*"+filepath.Ext(filename))
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, reader); err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	info, err := util.GetVideoInfo(tmp.Name())
	if err != nil {
		return nil, fmt.Errorf("not a playable video: %w", err)
	}

	objectName := fmt.Sprintf("scenes/%s%s", videoID, filepath.Ext(filename))
	url, err := s.Storage.UploadFile(ctx, objectName, tmp.Name(), "video/mp4")
	if err != nil {
		return nil, err
	}

	scene.VideoPath = url
	if err := s.StoryRepo.SaveScene(scene); err != nil {
		return nil, err
	}

	logger.Log.Info("scene video uploaded",
		zap.String("videoId", videoID),
		zap.Float64("duration", info.Duration),
		zap.Int("width", info.Width),
		zap.Int("height", info.Height))

	return info, nil
}

func (s *MediaService) UploadAvatar(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	objectName := fmt.Sprintf("avatars/%s%s", model.GenerateUUID(), filepath.Ext(filename))
	return s.Storage.Upload(ctx, objectName, reader, size, contentType)
}
