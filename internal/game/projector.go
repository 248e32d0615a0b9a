package game

import (
	"cyberwalk_backend/internal/model"
	"cyberwalk_backend/internal/util"
	"strings"
)

// GameState is the client-facing snapshot of a room. It carries the narrative
// text for whatever the room currently points at, and nothing about defender
// choices that have not been offered yet.
// swagger:model GameState
type GameState struct {
	RoomCode  string `json:"roomCode"`
	Status    string `json:"status"`
	GamePhase string `json:"gamePhase"`

	AttackerScore int `json:"attackerScore"`
	DefenderScore int `json:"defenderScore"`

	AttackerTurn bool `json:"isAttackerTurn"`
	CurrentRound int  `json:"currentRound"`
	MaxRounds    int  `json:"maxRounds"`

	AttacksPerformed int `json:"attacksPerformed"`
	MaxAttacks       int `json:"maxAttacks"`

	LastActionMessage string `json:"lastActionMessage"`
	LastOutcome       string `json:"lastOutcome"`

	LastDefenderScoreDelta *int `json:"lastDefenderScoreDelta,omitempty"`
	LastAttackerScoreDelta *int `json:"lastAttackerScoreDelta,omitempty"`

	AttackerJoined bool `json:"attackerJoined"`
	DefenderJoined bool `json:"defenderJoined"`

	CurrentLevelName string `json:"currentLevelName,omitempty"`

	DefenderProfileName        string `json:"defenderProfileName,omitempty"`
	DefenderProfileDescription string `json:"defenderProfileDescription,omitempty"`
	DefenderAge                int    `json:"defenderAge,omitempty"`
	DefenderAgeGroup           string `json:"defenderAgeGroup,omitempty"`
	DefenderOccupation         string `json:"defenderOccupation,omitempty"`
	DefenderTechSavviness      string `json:"defenderTechSavviness,omitempty"`
	DefenderMentalState        string `json:"defenderMentalState,omitempty"`
	DefenderFinancialStatus    string `json:"defenderFinancialStatus,omitempty"`
	DefenderAvatarIcon         string `json:"defenderAvatarIcon,omitempty"`

	CurrentAttackMessage string `json:"currentAttackMessage,omitempty"`
	ImpersonatedEntity   string `json:"impersonatedEntity,omitempty"`
}

// Project renders the room for clients. Content arguments correspond to the
// room's pointers and may be nil when the pointer is unset.
func Project(room *model.GameRoom, level *model.Level, profile *model.DefenderProfile, option *model.AttackOption) *GameState {
	state := &GameState{
		RoomCode:          room.RoomCode,
		Status:            string(room.Status),
		GamePhase:         string(room.GamePhase),
		AttackerScore:     room.AttackerScore,
		DefenderScore:     room.DefenderScore,
		AttackerTurn:      room.AttackerTurn,
		CurrentRound:      room.CurrentRound,
		MaxRounds:         room.MaxRounds,
		AttacksPerformed:  room.AttacksPerformed,
		LastActionMessage: room.LastActionMessage,
		LastOutcome:       room.LastOutcome,

		LastDefenderScoreDelta: room.LastDefenderScoreDelta,
		LastAttackerScoreDelta: room.LastAttackerScoreDelta,

		AttackerJoined: room.AttackerSessionID != nil,
		DefenderJoined: room.DefenderSessionID != nil,
	}

	if level != nil {
		state.CurrentLevelName = level.Name
		state.MaxAttacks = level.MaxAttacks
	}

	if profile != nil {
		state.DefenderProfileName = profile.Name
		state.DefenderProfileDescription = profile.Description
		state.DefenderAge = profile.Age
		state.DefenderAgeGroup = profile.AgeGroup
		state.DefenderOccupation = profile.Occupation
		state.DefenderTechSavviness = profile.TechSavviness
		state.DefenderMentalState = profile.MentalState
		state.DefenderFinancialStatus = profile.FinancialStatus
		state.DefenderAvatarIcon = profile.AvatarIcon
	}

	if option != nil {
		state.CurrentAttackMessage = option.AttackerMessage
		state.ImpersonatedEntity = option.ImpersonatedEntity
	}

	return state
}

// ParseRole narrows the free-form role string from the HTTP boundary to the
// closed two-variant type.
func ParseRole(s string) (model.PlayerRole, error) {
	switch model.PlayerRole(strings.ToUpper(s)) {
	case model.RoleAttacker:
		return model.RoleAttacker, nil
	case model.RoleDefender:
		return model.RoleDefender, nil
	default:
		return "", util.ErrInvalidRole
	}
}
