package util

import (
	"cyberwalk_backend/pkg/logger"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Forbidden")
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "Resource not found")
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err))
	InternalServerError(c)
}

// GameError maps the gameplay error taxonomy to HTTP statuses: missing
// content or rooms are 404, turn and role conflicts are 409, an unknown role
// is 400, everything else is a 500.
func GameError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRoomNotFound),
		errors.Is(err, ErrLevelNotFound),
		errors.Is(err, ErrProfileNotFound),
		errors.Is(err, ErrScenarioNotFound),
		errors.Is(err, ErrOptionNotFound),
		errors.Is(err, ErrChoiceNotFound),
		errors.Is(err, ErrSceneNotFound),
		errors.Is(err, ErrSessionNotFound):
		Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNotAttackerTurn), errors.Is(err, ErrNotDefenderTurn),
		errors.Is(err, ErrRoleTaken):
		Conflict(c, err.Error())
	case errors.Is(err, ErrInvalidRole):
		BadRequest(c, err.Error())
	default:
		LogInternalError(c, err)
	}
}
