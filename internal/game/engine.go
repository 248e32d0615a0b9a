// Package game holds the room state machine. Every transition is a function
// over a GameRoom plus the content entities it references; persistence and
// transport stay outside so the rules can be tested on their own.
package game

import (
	"cyberwalk_backend/internal/model"
	"cyberwalk_backend/internal/util"
	"fmt"
)

// MaxFollowUpDepth bounds a follow-up chain within one exchange. Authored
// content can point followUpAttackOptionId at an earlier option and form a
// cycle; once the bound is hit the exchange is force-concluded.
const MaxFollowUpDepth = 8

// ContentStore is the read-only view of the content graph the engine needs.
// Implementations return the matching util sentinel error when an id is
// absent.
type ContentStore interface {
	FindLevel(id uint) (*model.Level, error)
	FindProfile(id uint) (*model.DefenderProfile, error)
	FindScenario(id uint) (*model.AttackScenario, error)
	FindOption(id uint) (*model.AttackOption, error)
	FindChoice(id uint) (*model.DefenderChoice, error)
}

// Engine advances a room one command at a time. It mutates the room it is
// given and nothing else; callers persist the result.
type Engine struct {
	Content ContentStore
}

func NewEngine(content ContentStore) *Engine {
	return &Engine{Content: content}
}

// StartNewGame resets every mutable gameplay field. Idempotent on a fresh
// room.
func (e *Engine) StartNewGame(room *model.GameRoom) error {
	room.CurrentLevelID = nil
	room.CurrentDefenderProfileID = nil
	room.CurrentAttackScenarioID = nil
	room.CurrentAttackOptionID = nil
	room.GamePhase = model.PhaseLevelSelect
	room.Status = model.RoomPlaying
	room.AttackerTurn = true
	room.CurrentRound = 1
	room.AttackerScore = 0
	room.DefenderScore = 0
	room.AttacksPerformed = 0
	room.FollowUpDepth = 0
	room.LastActionMessage = "New game started!"
	room.LastOutcome = ""
	room.LastDefenderScoreDelta = nil
	room.LastAttackerScoreDelta = nil
	return nil
}

func (e *Engine) SelectLevel(room *model.GameRoom, levelID uint) error {
	if err := requireAttackerTurn(room); err != nil {
		return err
	}

	level, err := e.Content.FindLevel(levelID)
	if err != nil {
		return err
	}

	room.CurrentLevelID = &level.ID
	room.GamePhase = model.PhaseProfileSelect
	room.LastActionMessage = "Level selected: " + level.Name
	return nil
}

// SelectProfile is not turn-gated: the profile screen is informational and
// either side's client may advance it.
func (e *Engine) SelectProfile(room *model.GameRoom, profileID uint) error {
	profile, err := e.Content.FindProfile(profileID)
	if err != nil {
		return err
	}

	room.CurrentDefenderProfileID = &profile.ID
	room.GamePhase = model.PhaseAttackTypeSelect
	room.LastActionMessage = "Target profile: " + profile.Name
	return nil
}

func (e *Engine) SelectScenario(room *model.GameRoom, scenarioID uint) error {
	if err := requireAttackerTurn(room); err != nil {
		return err
	}

	scenario, err := e.Content.FindScenario(scenarioID)
	if err != nil {
		return err
	}

	room.CurrentAttackScenarioID = &scenario.ID
	room.GamePhase = model.PhaseAttackOptionSelect
	room.LastActionMessage = "Attack vector: " + scenario.Name
	return nil
}

// SelectOption consumes one attack slot and hands the turn to the defender.
// When the budget is already spent the room goes straight to GAME_OVER
// without consuming the option.
func (e *Engine) SelectOption(room *model.GameRoom, optionID uint) error {
	if err := requireAttackerTurn(room); err != nil {
		return err
	}

	if room.CurrentLevelID != nil {
		level, err := e.Content.FindLevel(*room.CurrentLevelID)
		if err != nil {
			return err
		}
		if room.AttacksPerformed >= level.MaxAttacks {
			endGame(room, "Maximum attacks reached! Game over.")
			return nil
		}
	}

	option, err := e.Content.FindOption(optionID)
	if err != nil {
		return err
	}

	room.CurrentAttackOptionID = &option.ID
	room.GamePhase = model.PhaseDefenderResponse
	room.AttackerTurn = false
	room.AttacksPerformed++
	room.FollowUpDepth = 0
	room.LastActionMessage = "Attack launched: " + option.Label
	return nil
}

// ApplyChoice resolves the defender's response: score deltas are additive and
// independent. A choice carrying a follow-up keeps the exchange alive against
// the follow-up option without flipping the turn or consuming another attack
// slot; otherwise the exchange concludes and the attack budget decides
// whether the game ends.
func (e *Engine) ApplyChoice(room *model.GameRoom, choiceID uint) error {
	if err := requireDefenderTurn(room); err != nil {
		return err
	}

	choice, err := e.Content.FindChoice(choiceID)
	if err != nil {
		return err
	}

	var followUp *model.AttackOption
	if choice.FollowUpAttackOptionID != nil && !choice.EndsScenario && room.FollowUpDepth < MaxFollowUpDepth {
		followUp, err = e.Content.FindOption(*choice.FollowUpAttackOptionID)
		if err != nil {
			return err
		}
	}

	room.DefenderScore += choice.DefenderScoreDelta
	room.AttackerScore += choice.AttackerScoreDelta

	defDelta := choice.DefenderScoreDelta
	atkDelta := choice.AttackerScoreDelta
	room.LastDefenderScoreDelta = &defDelta
	room.LastAttackerScoreDelta = &atkDelta

	room.LastOutcome = choice.Outcome
	room.LastActionMessage = "Defender chose: " + choice.Label

	if followUp != nil {
		room.CurrentAttackOptionID = &followUp.ID
		room.FollowUpDepth++
		room.LastActionMessage = "Follow-up attack: " + followUp.Label
		return nil
	}

	room.CurrentAttackOptionID = nil
	room.AttackerTurn = true
	room.FollowUpDepth = 0
	room.CurrentRound++

	if e.budgetSpent(room) {
		endGame(room, "All attacks completed! Game over.")
		return nil
	}

	room.GamePhase = model.PhaseOutcomeDisplay
	return nil
}

// ContinueRound advances OUTCOME_DISPLAY back to attack selection. In any
// other phase it leaves the room untouched; stale clients re-sync by
// re-fetching state.
func (e *Engine) ContinueRound(room *model.GameRoom) error {
	if room.GamePhase != model.PhaseOutcomeDisplay {
		return nil
	}

	if e.budgetSpent(room) {
		endGame(room, "All attacks completed! Game over.")
		return nil
	}

	room.GamePhase = model.PhaseAttackTypeSelect
	room.LastOutcome = ""
	room.LastActionMessage = fmt.Sprintf("Round %d begins!", room.CurrentRound)
	return nil
}

// Join claims a role slot. A slot, once occupied, is never reassigned. The
// room leaves WAITING as soon as the attacker is present.
func (e *Engine) Join(room *model.GameRoom, role model.PlayerRole) error {
	switch role {
	case model.RoleAttacker:
		if room.AttackerSessionID != nil {
			return util.ErrRoleTaken
		}
		sid := model.GenerateUUID()
		room.AttackerSessionID = &sid
	case model.RoleDefender:
		if room.DefenderSessionID != nil {
			return util.ErrRoleTaken
		}
		sid := model.GenerateUUID()
		room.DefenderSessionID = &sid
	default:
		return util.ErrInvalidRole
	}

	if room.AttackerSessionID != nil && room.Status == model.RoomWaiting {
		room.Status = model.RoomPlaying
	}
	return nil
}

func (e *Engine) budgetSpent(room *model.GameRoom) bool {
	if room.CurrentLevelID == nil {
		return false
	}
	level, err := e.Content.FindLevel(*room.CurrentLevelID)
	if err != nil {
		return false
	}
	return room.AttacksPerformed >= level.MaxAttacks
}

func endGame(room *model.GameRoom, message string) {
	room.GamePhase = model.PhaseGameOver
	room.Status = model.RoomRoundOver
	room.LastActionMessage = message
}

func requireAttackerTurn(room *model.GameRoom) error {
	if !room.AttackerTurn {
		return util.ErrNotAttackerTurn
	}
	return nil
}

func requireDefenderTurn(room *model.GameRoom) error {
	if room.AttackerTurn {
		return util.ErrNotDefenderTurn
	}
	return nil
}
