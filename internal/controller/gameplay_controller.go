package controller

import (
	"cyberwalk_backend/internal/model"
	"cyberwalk_backend/internal/service"
	"cyberwalk_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GamePlayController struct {
	GamePlay *service.GamePlayService
}

func NewGamePlayController(gamePlay *service.GamePlayService) *GamePlayController {
	return &GamePlayController{GamePlay: gamePlay}
}

// swagger:model SelectIDRequest
type SelectIDRequest struct {
	ID uint `json:"id" binding:"required"`
}

// GetState godoc
// @Summary Poll game state
// @Description Snapshot of the room for both players; unchosen defender outcomes are never included
// @Tags gameplay
// @Produce  json
// @Param   roomCode path string true "Room code"
// @Success 200 {object} util.Response{data=game.GameState}
// @Failure 404 {object} util.Response "Room not found"
// @Router /api/game/rooms/{roomCode}/state [get]
func (c *GamePlayController) GetState(ctx *gin.Context) {
	state, err := c.GamePlay.GetGameState(ctx.Request.Context(), ctx.Param("roomCode"))
	if err != nil {
		util.GameError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// StartGame godoc
// @Summary Start or restart the game
// @Description Resets scores, phase and content selection
// @Tags gameplay
// @Produce  json
// @Param   roomCode path string true "Room code"
// @Success 200 {object} util.Response{data=model.GameRoom}
// @Failure 404 {object} util.Response "Room not found"
// @Router /api/game/rooms/{roomCode}/start [post]
func (c *GamePlayController) StartGame(ctx *gin.Context) {
	room, err := c.GamePlay.StartNewGame(ctx.Param("roomCode"))
	if err != nil {
		util.GameError(ctx, err)
		return
	}
	util.Success(ctx, room)
}

// SelectLevel godoc
// @Summary Attacker selects a level
// @Tags gameplay
// @Accept  json
// @Produce  json
// @Param   roomCode path string true "Room code"
// @Param   body body SelectIDRequest true "Level id"
// @Success 200 {object} util.Response{data=model.GameRoom}
// @Failure 404 {object} util.Response "Room or level not found"
// @Failure 409 {object} util.Response "Not the attacker's turn"
// @Router /api/game/rooms/{roomCode}/select-level [post]
func (c *GamePlayController) SelectLevel(ctx *gin.Context) {
	c.runSelect(ctx, c.GamePlay.SelectLevel)
}

// SelectProfile godoc
// @Summary Select the defender profile
// @Tags gameplay
// @Accept  json
// @Produce  json
// @Param   roomCode path string true "Room code"
// @Param   body body SelectIDRequest true "Profile id"
// @Success 200 {object} util.Response{data=model.GameRoom}
// @Failure 404 {object} util.Response "Room or profile not found"
// @Router /api/game/rooms/{roomCode}/select-profile [post]
func (c *GamePlayController) SelectProfile(ctx *gin.Context) {
	c.runSelect(ctx, c.GamePlay.SelectDefenderProfile)
}

// SelectScenario godoc
// @Summary Attacker selects an attack scenario
// @Tags gameplay
// @Accept  json
// @Produce  json
// @Param   roomCode path string true "Room code"
// @Param   body body SelectIDRequest true "Scenario id"
// @Success 200 {object} util.Response{data=model.GameRoom}
// @Failure 404 {object} util.Response "Room or scenario not found"
// @Failure 409 {object} util.Response "Not the attacker's turn"
// @Router /api/game/rooms/{roomCode}/select-attack-scenario [post]
func (c *GamePlayController) SelectScenario(ctx *gin.Context) {
	c.runSelect(ctx, c.GamePlay.SelectAttackScenario)
}

// SelectOption godoc
// @Summary Attacker launches an attack option
// @Description Consumes one attack from the level budget and hands the turn to the defender
// @Tags gameplay
// @Accept  json
// @Produce  json
// @Param   roomCode path string true "Room code"
// @Param   body body SelectIDRequest true "Option id"
// @Success 200 {object} util.Response{data=model.GameRoom}
// @Failure 404 {object} util.Response "Room or option not found"
// @Failure 409 {object} util.Response "Not the attacker's turn"
// @Router /api/game/rooms/{roomCode}/select-attack-option [post]
func (c *GamePlayController) SelectOption(ctx *gin.Context) {
	c.runSelect(ctx, c.GamePlay.SelectAttackOption)
}

// MakeChoice godoc
// @Summary Defender responds to the current attack
// @Description Applies both score deltas; may chain into a follow-up attack
// @Tags gameplay
// @Accept  json
// @Produce  json
// @Param   roomCode path string true "Room code"
// @Param   body body SelectIDRequest true "Choice id"
// @Success 200 {object} util.Response{data=model.GameRoom}
// @Failure 404 {object} util.Response "Room or choice not found"
// @Failure 409 {object} util.Response "Not the defender's turn"
// @Router /api/game/rooms/{roomCode}/defender-choice [post]
func (c *GamePlayController) MakeChoice(ctx *gin.Context) {
	c.runSelect(ctx, c.GamePlay.MakeDefenderChoice)
}

// NextRound godoc
// @Summary Advance past the outcome screen
// @Description No-op outside the outcome phase, so double-clicks are harmless
// @Tags gameplay
// @Produce  json
// @Param   roomCode path string true "Room code"
// @Success 200 {object} util.Response{data=model.GameRoom}
// @Failure 404 {object} util.Response "Room not found"
// @Router /api/game/rooms/{roomCode}/next-round [post]
func (c *GamePlayController) NextRound(ctx *gin.Context) {
	room, err := c.GamePlay.ContinueToNextRound(ctx.Param("roomCode"))
	if err != nil {
		util.GameError(ctx, err)
		return
	}
	util.Success(ctx, room)
}

func (c *GamePlayController) runSelect(ctx *gin.Context, apply func(code string, id uint) (*model.GameRoom, error)) {
	var req SelectIDRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	room, err := apply(ctx.Param("roomCode"), req.ID)
	if err != nil {
		util.GameError(ctx, err)
		return
	}
	util.Success(ctx, room)
}
