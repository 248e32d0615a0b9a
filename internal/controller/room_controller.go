package controller

import (
	"cyberwalk_backend/internal/game"
	"cyberwalk_backend/internal/model"
	"cyberwalk_backend/internal/service"
	"cyberwalk_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomService *service.RoomService
}

func NewRoomController(roomService *service.RoomService) *RoomController {
	return &RoomController{RoomService: roomService}
}

// CreateRoom godoc
// @Summary Create a game room
// @Description Opens a new room and returns its shareable code
// @Tags rooms
// @Produce  json
// @Success 201 {object} util.Response{data=model.GameRoom}
// @Router /api/game/rooms [post]
func (c *RoomController) CreateRoom(ctx *gin.Context) {
	room, err := c.RoomService.CreateRoom()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, room)
}

// swagger:model JoinRoomRequest
type JoinRoomRequest struct {
	Role string `json:"role" binding:"required"`
}

// JoinRoom godoc
// @Summary Join a room
// @Description Claims the ATTACKER or DEFENDER slot and returns a session id
// @Tags rooms
// @Accept  json
// @Produce  json
// @Param   roomCode path string true "Room code"
// @Param   body body JoinRoomRequest true "Role to claim"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "Unknown role"
// @Failure 404 {object} util.Response "Room not found"
// @Failure 409 {object} util.Response "Role already taken"
// @Router /api/game/rooms/{roomCode}/join [post]
func (c *RoomController) JoinRoom(ctx *gin.Context) {
	var req JoinRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	role, err := game.ParseRole(req.Role)
	if err != nil {
		util.GameError(ctx, err)
		return
	}

	room, err := c.RoomService.JoinRoom(ctx.Param("roomCode"), role)
	if err != nil {
		util.GameError(ctx, err)
		return
	}

	resp := gin.H{
		"roomCode": room.RoomCode,
		"role":     role,
		"status":   room.Status,
	}
	switch role {
	case model.RoleAttacker:
		resp["sessionId"] = room.AttackerSessionID
	case model.RoleDefender:
		resp["sessionId"] = room.DefenderSessionID
	}
	util.Success(ctx, resp)
}

// GetRoom godoc
// @Summary Room status
// @Tags rooms
// @Produce  json
// @Param   roomCode path string true "Room code"
// @Success 200 {object} util.Response{data=model.GameRoom}
// @Failure 404 {object} util.Response "Room not found"
// @Router /api/game/rooms/{roomCode} [get]
func (c *RoomController) GetRoom(ctx *gin.Context) {
	room, err := c.RoomService.GetRoomStatus(ctx.Param("roomCode"))
	if err != nil {
		util.GameError(ctx, err)
		return
	}
	util.Success(ctx, room)
}
