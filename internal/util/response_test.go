package util

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func gameErrorStatus(t *testing.T, err error) int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	GameError(c, err)
	return w.Code
}

func TestGameErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"room missing", ErrRoomNotFound, http.StatusNotFound},
		{"level missing", ErrLevelNotFound, http.StatusNotFound},
		{"choice missing", ErrChoiceNotFound, http.StatusNotFound},
		{"scene missing", ErrSceneNotFound, http.StatusNotFound},
		{"attacker turn", ErrNotAttackerTurn, http.StatusConflict},
		{"defender turn", ErrNotDefenderTurn, http.StatusConflict},
		{"role taken", ErrRoleTaken, http.StatusConflict},
		{"bad role", ErrInvalidRole, http.StatusBadRequest},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gameErrorStatus(t, tt.err))
		})
	}
}
