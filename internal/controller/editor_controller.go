package controller

import (
	"cyberwalk_backend/internal/service"
	"cyberwalk_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

// EditorController is the authoring surface behind the editor role. Handlers
// follow one shape: bind, delegate, map errors.
type EditorController struct {
	Editor *service.EditorService
}

func NewEditorController(editor *service.EditorService) *EditorController {
	return &EditorController{Editor: editor}
}

// ListLevels godoc
// @Summary All levels including disabled ones
// @Tags editor
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Level}
// @Router /api/editor/levels [get]
func (c *EditorController) ListLevels(ctx *gin.Context) {
	levels, err := c.Editor.ListLevels()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, levels)
}

// GetLevel godoc
// @Summary One level with its full content tree
// @Tags editor
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Level id"
// @Success 200 {object} util.Response{data=model.Level}
// @Failure 404 {object} util.Response "Level not found"
// @Router /api/editor/levels/{id} [get]
func (c *EditorController) GetLevel(ctx *gin.Context) {
	level, err := c.Editor.GetLevel(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		c.editorError(ctx, err)
		return
	}
	util.Success(ctx, level)
}

// CreateLevel godoc
// @Summary Create a level
// @Tags editor
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.LevelRequest true "Level data"
// @Success 201 {object} util.Response{data=model.Level}
// @Failure 400 {object} util.Response "Invalid request"
// @Router /api/editor/levels [post]
func (c *EditorController) CreateLevel(ctx *gin.Context) {
	var req service.LevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	level, err := c.Editor.CreateLevel(req)
	if err != nil {
		c.editorError(ctx, err)
		return
	}
	util.Created(ctx, level)
}

// UpdateLevel godoc
// @Summary Update a level
// @Tags editor
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Level id"
// @Param   body body service.LevelRequest true "Level data"
// @Success 200 {object} util.Response{data=model.Level}
// @Failure 404 {object} util.Response "Level not found"
// @Router /api/editor/levels/{id} [put]
func (c *EditorController) UpdateLevel(ctx *gin.Context) {
	var req service.LevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	level, err := c.Editor.UpdateLevel(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		c.editorError(ctx, err)
		return
	}
	util.Success(ctx, level)
}

// DeleteLevel godoc
// @Summary Delete a level and everything under it
// @Tags editor
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Level id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Level not found"
// @Router /api/editor/levels/{id} [delete]
func (c *EditorController) DeleteLevel(ctx *gin.Context) {
	if err := c.Editor.DeleteLevel(util.MustParseUint(ctx.Param("id"))); err != nil {
		c.editorError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CreateProfile godoc
// @Summary Add a defender profile to a level
// @Tags editor
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Level id"
// @Param   body body service.ProfileRequest true "Profile data"
// @Success 201 {object} util.Response{data=model.DefenderProfile}
// @Failure 404 {object} util.Response "Level not found"
// @Router /api/editor/levels/{id}/defender-profiles [post]
func (c *EditorController) CreateProfile(ctx *gin.Context) {
	var req service.ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	profile, err := c.Editor.CreateProfile(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		c.editorError(ctx, err)
		return
	}
	util.Created(ctx, profile)
}

// UpdateProfile godoc
// @Summary Update a defender profile
// @Tags editor
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Profile id"
// @Param   body body service.ProfileRequest true "Profile data"
// @Success 200 {object} util.Response{data=model.DefenderProfile}
// @Failure 404 {object} util.Response "Profile not found"
// @Router /api/editor/defender-profiles/{id} [put]
func (c *EditorController) UpdateProfile(ctx *gin.Context) {
	var req service.ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	profile, err := c.Editor.UpdateProfile(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		c.editorError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// DeleteProfile godoc
// @Summary Delete a defender profile
// @Tags editor
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Profile id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Profile not found"
// @Router /api/editor/defender-profiles/{id} [delete]
func (c *EditorController) DeleteProfile(ctx *gin.Context) {
	if err := c.Editor.DeleteProfile(util.MustParseUint(ctx.Param("id"))); err != nil {
		c.editorError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CreateScenario godoc
// @Summary Add an attack scenario to a level
// @Tags editor
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Level id"
// @Param   body body service.ScenarioRequest true "Scenario data"
// @Success 201 {object} util.Response{data=model.AttackScenario}
// @Failure 404 {object} util.Response "Level not found"
// @Router /api/editor/levels/{id}/attack-scenarios [post]
func (c *EditorController) CreateScenario(ctx *gin.Context) {
	var req service.ScenarioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	scenario, err := c.Editor.CreateScenario(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		c.editorError(ctx, err)
		return
	}
	util.Created(ctx, scenario)
}

// UpdateScenario godoc
// @Summary Update an attack scenario
// @Tags editor
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Scenario id"
// @Param   body body service.ScenarioRequest true "Scenario data"
// @Success 200 {object} util.Response{data=model.AttackScenario}
// @Failure 404 {object} util.Response "Scenario not found"
// @Router /api/editor/attack-scenarios/{id} [put]
func (c *EditorController) UpdateScenario(ctx *gin.Context) {
	var req service.ScenarioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	scenario, err := c.Editor.UpdateScenario(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		c.editorError(ctx, err)
		return
	}
	util.Success(ctx, scenario)
}

// DeleteScenario godoc
// @Summary Delete an attack scenario
// @Tags editor
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Scenario id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Scenario not found"
// @Router /api/editor/attack-scenarios/{id} [delete]
func (c *EditorController) DeleteScenario(ctx *gin.Context) {
	if err := c.Editor.DeleteScenario(util.MustParseUint(ctx.Param("id"))); err != nil {
		c.editorError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CreateOption godoc
// @Summary Add an attack option to a scenario
// @Tags editor
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Scenario id"
// @Param   body body service.OptionRequest true "Option data"
// @Success 201 {object} util.Response{data=model.AttackOption}
// @Failure 404 {object} util.Response "Scenario not found"
// @Router /api/editor/attack-scenarios/{id}/options [post]
func (c *EditorController) CreateOption(ctx *gin.Context) {
	var req service.OptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	option, err := c.Editor.CreateOption(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		c.editorError(ctx, err)
		return
	}
	util.Created(ctx, option)
}

// UpdateOption godoc
// @Summary Update an attack option
// @Tags editor
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Option id"
// @Param   body body service.OptionRequest true "Option data"
// @Success 200 {object} util.Response{data=model.AttackOption}
// @Failure 404 {object} util.Response "Option not found"
// @Router /api/editor/attack-options/{id} [put]
func (c *EditorController) UpdateOption(ctx *gin.Context) {
	var req service.OptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	option, err := c.Editor.UpdateOption(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		c.editorError(ctx, err)
		return
	}
	util.Success(ctx, option)
}

// DeleteOption godoc
// @Summary Delete an attack option
// @Tags editor
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Option id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Option not found"
// @Router /api/editor/attack-options/{id} [delete]
func (c *EditorController) DeleteOption(ctx *gin.Context) {
	if err := c.Editor.DeleteOption(util.MustParseUint(ctx.Param("id"))); err != nil {
		c.editorError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CreateChoice godoc
// @Summary Add a defender choice to an attack option
// @Tags editor
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Option id"
// @Param   body body service.ChoiceRequest true "Choice data"
// @Success 201 {object} util.Response{data=model.DefenderChoice}
// @Failure 404 {object} util.Response "Option not found"
// @Router /api/editor/attack-options/{id}/choices [post]
func (c *EditorController) CreateChoice(ctx *gin.Context) {
	var req service.ChoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	choice, err := c.Editor.CreateChoice(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		c.editorError(ctx, err)
		return
	}
	util.Created(ctx, choice)
}

// UpdateChoice godoc
// @Summary Update a defender choice
// @Tags editor
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Choice id"
// @Param   body body service.ChoiceRequest true "Choice data"
// @Success 200 {object} util.Response{data=model.DefenderChoice}
// @Failure 404 {object} util.Response "Choice not found"
// @Router /api/editor/defender-choices/{id} [put]
func (c *EditorController) UpdateChoice(ctx *gin.Context) {
	var req service.ChoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	choice, err := c.Editor.UpdateChoice(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		c.editorError(ctx, err)
		return
	}
	util.Success(ctx, choice)
}

// DeleteChoice godoc
// @Summary Delete a defender choice
// @Tags editor
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Choice id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Choice not found"
// @Router /api/editor/defender-choices/{id} [delete]
func (c *EditorController) DeleteChoice(ctx *gin.Context) {
	if err := c.Editor.DeleteChoice(util.MustParseUint(ctx.Param("id"))); err != nil {
		c.editorError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// editorError maps missing-content sentinels to 404 and validation errors
// from the service layer to 400.
func (c *EditorController) editorError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrLevelNotFound),
		errors.Is(err, util.ErrProfileNotFound),
		errors.Is(err, util.ErrScenarioNotFound),
		errors.Is(err, util.ErrOptionNotFound),
		errors.Is(err, util.ErrChoiceNotFound):
		util.Error(ctx, 404, err.Error())
	case errors.Is(err, util.ErrInvalidRiskLevel), errors.Is(err, util.ErrInvalidPersonaList):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
