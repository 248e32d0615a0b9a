package game

import (
	"cyberwalk_backend/internal/model"
	"cyberwalk_backend/internal/util"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectNilContent(t *testing.T) {
	room := newTestRoom()

	state := Project(room, nil, nil, nil)

	assert.Equal(t, "ABC123", state.RoomCode)
	assert.Equal(t, "PLAYING", state.Status)
	assert.Equal(t, "LEVEL_SELECT", state.GamePhase)
	assert.Empty(t, state.CurrentLevelName)
	assert.Empty(t, state.DefenderProfileName)
	assert.Empty(t, state.CurrentAttackMessage)
	assert.Zero(t, state.MaxAttacks)
	assert.False(t, state.AttackerJoined)
	assert.False(t, state.DefenderJoined)
}

func TestProjectFullContent(t *testing.T) {
	room := newTestRoom()
	sid := "session-1"
	room.AttackerSessionID = &sid
	room.AttackerScore = 30
	room.DefenderScore = -40
	delta := -40
	room.LastDefenderScoreDelta = &delta

	level := &model.Level{Name: "Hostel Life", MaxAttacks: 5}
	profile := &model.DefenderProfile{
		Name:          "Sifat",
		Description:   "CS student",
		Age:           21,
		Occupation:    "Student",
		TechSavviness: "HIGH",
	}
	option := &model.AttackOption{
		AttackerMessage:    "Send money now!",
		ImpersonatedEntity: "Mother",
	}

	state := Project(room, level, profile, option)

	assert.Equal(t, "Hostel Life", state.CurrentLevelName)
	assert.Equal(t, 5, state.MaxAttacks)
	assert.Equal(t, "Sifat", state.DefenderProfileName)
	assert.Equal(t, 21, state.DefenderAge)
	assert.Equal(t, "HIGH", state.DefenderTechSavviness)
	assert.Equal(t, "Send money now!", state.CurrentAttackMessage)
	assert.Equal(t, "Mother", state.ImpersonatedEntity)
	assert.True(t, state.AttackerJoined)
	assert.False(t, state.DefenderJoined)
	require.NotNil(t, state.LastDefenderScoreDelta)
	assert.Equal(t, -40, *state.LastDefenderScoreDelta)
}

// Session ids identify a player's claim on a room and must never appear in
// the shared state both clients poll.
func TestProjectionHidesSessionIDs(t *testing.T) {
	room := newTestRoom()
	sid := "secret-session-id"
	room.AttackerSessionID = &sid
	room.DefenderSessionID = &sid

	data, err := json.Marshal(Project(room, nil, nil, nil))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret-session-id")
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    model.PlayerRole
		wantErr error
	}{
		{"ATTACKER", model.RoleAttacker, nil},
		{"attacker", model.RoleAttacker, nil},
		{"Defender", model.RoleDefender, nil},
		{"SPECTATOR", "", util.ErrInvalidRole},
		{"", "", util.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run("parse_"+strings.ToLower(tt.input), func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
