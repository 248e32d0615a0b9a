package controller

import (
	"cyberwalk_backend/internal/service"
	"cyberwalk_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// StoryController serves the single-player video walkthrough: sessions and
// the scene graph behind them.
type StoryController struct {
	Story *service.StoryService
}

func NewStoryController(story *service.StoryService) *StoryController {
	return &StoryController{Story: story}
}

// StartSession godoc
// @Summary Start a solo walkthrough
// @Description Creates a session positioned at the opening scene
// @Tags story
// @Produce  json
// @Success 201 {object} util.Response{data=model.GameSession}
// @Router /api/story/sessions [post]
func (c *StoryController) StartSession(ctx *gin.Context) {
	session, err := c.Story.CreateSession()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, session)
}

// GetSession godoc
// @Summary Session state
// @Tags story
// @Produce  json
// @Param   sessionId path string true "Session id"
// @Success 200 {object} util.Response{data=model.GameSession}
// @Failure 404 {object} util.Response "Session not found"
// @Router /api/story/sessions/{sessionId} [get]
func (c *StoryController) GetSession(ctx *gin.Context) {
	session, err := c.Story.GetSession(ctx.Param("sessionId"))
	if err != nil {
		util.GameError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// swagger:model StoryChoiceRequest
type StoryChoiceRequest struct {
	OptionID uint `json:"optionId" binding:"required"`
}

// MakeChoice godoc
// @Summary Pick a branch
// @Description Applies the option's score delta and moves the session to the target scene
// @Tags story
// @Accept  json
// @Produce  json
// @Param   sessionId path string true "Session id"
// @Param   body body StoryChoiceRequest true "Chosen option"
// @Success 200 {object} util.Response{data=model.GameSession}
// @Failure 404 {object} util.Response "Session or option not found"
// @Router /api/story/sessions/{sessionId}/choice [post]
func (c *StoryController) MakeChoice(ctx *gin.Context) {
	var req StoryChoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.Story.MakeChoice(ctx.Param("sessionId"), req.OptionID)
	if err != nil {
		util.GameError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// CompleteSession godoc
// @Summary Mark a session completed
// @Tags story
// @Produce  json
// @Param   sessionId path string true "Session id"
// @Success 200 {object} util.Response{data=model.GameSession}
// @Failure 404 {object} util.Response "Session not found"
// @Router /api/story/sessions/{sessionId}/complete [post]
func (c *StoryController) CompleteSession(ctx *gin.Context) {
	session, err := c.Story.CompleteSession(ctx.Param("sessionId"))
	if err != nil {
		util.GameError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// GetScene godoc
// @Summary Scene by video id
// @Tags story
// @Produce  json
// @Param   videoId path string true "Video id"
// @Success 200 {object} util.Response{data=model.StoryScene}
// @Failure 404 {object} util.Response "Scene not found"
// @Router /api/story/scenes/{videoId} [get]
func (c *StoryController) GetScene(ctx *gin.Context) {
	scene, err := c.Story.GetScene(ctx.Param("videoId"))
	if err != nil {
		util.GameError(ctx, err)
		return
	}
	util.Success(ctx, scene)
}

// ListScenes godoc
// @Summary All scenes in the graph
// @Tags story
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.StoryScene}
// @Router /api/story/scenes [get]
func (c *StoryController) ListScenes(ctx *gin.Context) {
	scenes, err := c.Story.ListScenes()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, scenes)
}
