package controller

import (
	"cyberwalk_backend/internal/service"
	"cyberwalk_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

const maxVideoUploadSize = 200 << 20 // 200MB

type MediaController struct {
	Media *service.MediaService
}

func NewMediaController(media *service.MediaService) *MediaController {
	return &MediaController{Media: media}
}

// UploadSceneVideo godoc
// @Summary Upload a clip for a story scene
// @Description Probes the file and rejects anything without a video stream
// @Tags media
// @Accept  mpfd
// @Produce  json
// @Security ApiKeyAuth
// @Param   videoId path string true "Scene video id"
// @Param   file formData file true "Video file"
// @Success 200 {object} util.Response{data=util.VideoInfo}
// @Failure 400 {object} util.Response "Missing or unplayable file"
// @Failure 404 {object} util.Response "Scene not found"
// @Router /api/editor/scenes/{videoId}/video [post]
func (c *MediaController) UploadSceneVideo(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	if fileHeader.Size > maxVideoUploadSize {
		util.BadRequest(ctx, "file too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	info, err := c.Media.UploadSceneVideo(ctx.Request.Context(), ctx.Param("videoId"), fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, util.ErrSceneNotFound) {
			util.GameError(ctx, err)
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Success(ctx, info)
}

// UploadAvatar godoc
// @Summary Upload a profile avatar image
// @Tags media
// @Accept  mpfd
// @Produce  json
// @Security ApiKeyAuth
// @Param   file formData file true "Image file"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "Missing file"
// @Router /api/editor/avatars [post]
func (c *MediaController) UploadAvatar(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := c.Media.UploadAvatar(ctx.Request.Context(), fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url})
}
