package controller

import (
	"cyberwalk_backend/internal/service"
	"cyberwalk_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ContentController exposes the read-only content graph to players. Every
// response here is safe to show either side of the table; defender choices in
// particular come back stripped of outcomes and deltas.
type ContentController struct {
	Content *service.ContentService
}

func NewContentController(content *service.ContentService) *ContentController {
	return &ContentController{Content: content}
}

// GetLevels godoc
// @Summary List playable levels
// @Description Enabled levels in display order
// @Tags content
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Level}
// @Router /api/game/levels [get]
func (c *ContentController) GetLevels(ctx *gin.Context) {
	levels, err := c.Content.GetAvailableLevels()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, levels)
}

// GetProfiles godoc
// @Summary Defender profiles of a level
// @Tags content
// @Produce  json
// @Param   levelId path int true "Level id"
// @Success 200 {object} util.Response{data=[]model.DefenderProfile}
// @Router /api/game/levels/{levelId}/defender-profiles [get]
func (c *ContentController) GetProfiles(ctx *gin.Context) {
	profiles, err := c.Content.GetDefenderProfiles(util.MustParseUint(ctx.Param("levelId")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, profiles)
}

// GetScenarios godoc
// @Summary Attack scenarios of a level
// @Tags content
// @Produce  json
// @Param   levelId path int true "Level id"
// @Success 200 {object} util.Response{data=[]model.AttackScenario}
// @Router /api/game/levels/{levelId}/attack-scenarios [get]
func (c *ContentController) GetScenarios(ctx *gin.Context) {
	scenarios, err := c.Content.GetAttackScenarios(util.MustParseUint(ctx.Param("levelId")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, scenarios)
}

// GetOptions godoc
// @Summary Attack options of a scenario
// @Tags content
// @Produce  json
// @Param   scenarioId path int true "Scenario id"
// @Success 200 {object} util.Response{data=[]model.AttackOption}
// @Router /api/game/attack-scenarios/{scenarioId}/options [get]
func (c *ContentController) GetOptions(ctx *gin.Context) {
	options, err := c.Content.GetAttackOptions(util.MustParseUint(ctx.Param("scenarioId")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, options)
}

// GetChoices godoc
// @Summary Defender choices for an attack option
// @Description Label and description only; outcomes stay hidden until resolved
// @Tags content
// @Produce  json
// @Param   optionId path int true "Option id"
// @Success 200 {object} util.Response{data=[]service.ChoiceView}
// @Router /api/game/attack-options/{optionId}/choices [get]
func (c *ContentController) GetChoices(ctx *gin.Context) {
	choices, err := c.Content.GetDefenderChoices(util.MustParseUint(ctx.Param("optionId")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, choices)
}
