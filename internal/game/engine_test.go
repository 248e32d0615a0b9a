package game

import (
	"cyberwalk_backend/internal/model"
	"cyberwalk_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	levels    map[uint]*model.Level
	profiles  map[uint]*model.DefenderProfile
	scenarios map[uint]*model.AttackScenario
	options   map[uint]*model.AttackOption
	choices   map[uint]*model.DefenderChoice
}

func (s *fakeStore) FindLevel(id uint) (*model.Level, error) {
	if l, ok := s.levels[id]; ok {
		return l, nil
	}
	return nil, util.ErrLevelNotFound
}

func (s *fakeStore) FindProfile(id uint) (*model.DefenderProfile, error) {
	if p, ok := s.profiles[id]; ok {
		return p, nil
	}
	return nil, util.ErrProfileNotFound
}

func (s *fakeStore) FindScenario(id uint) (*model.AttackScenario, error) {
	if sc, ok := s.scenarios[id]; ok {
		return sc, nil
	}
	return nil, util.ErrScenarioNotFound
}

func (s *fakeStore) FindOption(id uint) (*model.AttackOption, error) {
	if o, ok := s.options[id]; ok {
		return o, nil
	}
	return nil, util.ErrOptionNotFound
}

func (s *fakeStore) FindChoice(id uint) (*model.DefenderChoice, error) {
	if c, ok := s.choices[id]; ok {
		return c, nil
	}
	return nil, util.ErrChoiceNotFound
}

func withID(id uint) model.BaseModel {
	return model.BaseModel{ID: id}
}

// newTestStore builds a minimal content graph: one level, one profile, one
// scenario, one attack option with a good and a bad choice.
func newTestStore(maxAttacks int) *fakeStore {
	return &fakeStore{
		levels: map[uint]*model.Level{
			1: {BaseModel: withID(1), Name: "Hostel Life", MaxAttacks: maxAttacks},
		},
		profiles: map[uint]*model.DefenderProfile{
			10: {BaseModel: withID(10), LevelID: 1, Name: "Sifat"},
		},
		scenarios: map[uint]*model.AttackScenario{
			20: {BaseModel: withID(20), LevelID: 1, Name: "Family Emergency Call"},
		},
		options: map[uint]*model.AttackOption{
			30: {BaseModel: withID(30), AttackScenarioID: 20, Label: "Call as Mother", AttackerMessage: "Send money now!"},
		},
		choices: map[uint]*model.DefenderChoice{
			40: {BaseModel: withID(40), AttackOptionID: 30, Label: "Verify first", DefenderScoreDelta: 25, AttackerScoreDelta: -15, ChoiceType: model.ChoiceTypeCorrect},
			41: {BaseModel: withID(41), AttackOptionID: 30, Label: "Send money", DefenderScoreDelta: -40, AttackerScoreDelta: 30, ChoiceType: model.ChoiceTypeWrong},
		},
	}
}

func newTestRoom() *model.GameRoom {
	return &model.GameRoom{
		RoomCode:     "ABC123",
		Status:       model.RoomPlaying,
		GamePhase:    model.PhaseLevelSelect,
		AttackerTurn: true,
		CurrentRound: 1,
		MaxRounds:    3,
	}
}

// advance drives a room through level, profile and scenario selection.
func advance(t *testing.T, e *Engine, room *model.GameRoom) {
	t.Helper()
	require.NoError(t, e.SelectLevel(room, 1))
	require.NoError(t, e.SelectProfile(room, 10))
	require.NoError(t, e.SelectScenario(room, 20))
}

func TestFullGameFlowSingleAttack(t *testing.T) {
	e := NewEngine(newTestStore(1))
	room := newTestRoom()

	require.NoError(t, e.StartNewGame(room))
	assert.Equal(t, model.PhaseLevelSelect, room.GamePhase)
	assert.True(t, room.AttackerTurn)

	advance(t, e, room)
	assert.Equal(t, model.PhaseAttackOptionSelect, room.GamePhase)

	require.NoError(t, e.SelectOption(room, 30))
	assert.Equal(t, model.PhaseDefenderResponse, room.GamePhase)
	assert.False(t, room.AttackerTurn)
	assert.Equal(t, 1, room.AttacksPerformed)

	require.NoError(t, e.ApplyChoice(room, 40))
	assert.Equal(t, model.PhaseGameOver, room.GamePhase)
	assert.Equal(t, model.RoomRoundOver, room.Status)
	assert.Equal(t, 25, room.DefenderScore)
	assert.Equal(t, -15, room.AttackerScore)
}

func TestScoresAccumulateAcrossExchanges(t *testing.T) {
	e := NewEngine(newTestStore(5))
	room := newTestRoom()

	require.NoError(t, e.StartNewGame(room))
	advance(t, e, room)

	require.NoError(t, e.SelectOption(room, 30))
	require.NoError(t, e.ApplyChoice(room, 41))
	assert.Equal(t, -40, room.DefenderScore)
	assert.Equal(t, 30, room.AttackerScore)
	assert.Equal(t, model.PhaseOutcomeDisplay, room.GamePhase)

	require.NoError(t, e.ContinueRound(room))
	assert.Equal(t, model.PhaseAttackTypeSelect, room.GamePhase)
	assert.Empty(t, room.LastOutcome)

	require.NoError(t, e.SelectScenario(room, 20))
	require.NoError(t, e.SelectOption(room, 30))
	require.NoError(t, e.ApplyChoice(room, 40))

	assert.Equal(t, -15, room.DefenderScore)
	assert.Equal(t, 15, room.AttackerScore)
	assert.Equal(t, 2, room.AttacksPerformed)
}

func TestTurnEnforcement(t *testing.T) {
	e := NewEngine(newTestStore(5))
	room := newTestRoom()

	require.NoError(t, e.StartNewGame(room))

	// Defender-only command during attacker's turn.
	err := e.ApplyChoice(room, 40)
	assert.ErrorIs(t, err, util.ErrNotDefenderTurn)

	advance(t, e, room)
	require.NoError(t, e.SelectOption(room, 30))

	// Attacker commands while it's the defender's turn.
	assert.ErrorIs(t, e.SelectOption(room, 30), util.ErrNotAttackerTurn)
	assert.ErrorIs(t, e.SelectLevel(room, 1), util.ErrNotAttackerTurn)
	assert.ErrorIs(t, e.SelectScenario(room, 20), util.ErrNotAttackerTurn)

	// The failed commands must not have consumed anything.
	assert.Equal(t, 1, room.AttacksPerformed)
	assert.Equal(t, model.PhaseDefenderResponse, room.GamePhase)
}

func TestAttackBudgetNeverExceeded(t *testing.T) {
	store := newTestStore(2)
	e := NewEngine(store)
	room := newTestRoom()

	require.NoError(t, e.StartNewGame(room))
	advance(t, e, room)

	for i := 0; i < 2; i++ {
		require.NoError(t, e.SelectOption(room, 30))
		require.NoError(t, e.ApplyChoice(room, 41))
	}

	assert.Equal(t, 2, room.AttacksPerformed)
	assert.Equal(t, model.PhaseGameOver, room.GamePhase)

	// A stale attacker client trying to launch another attack must not
	// push the count past the budget.
	room.GamePhase = model.PhaseAttackOptionSelect
	room.Status = model.RoomPlaying
	require.NoError(t, e.SelectOption(room, 30))
	assert.Equal(t, 2, room.AttacksPerformed)
	assert.Equal(t, model.PhaseGameOver, room.GamePhase)
}

func TestContinueRoundOutsideOutcomeIsNoop(t *testing.T) {
	e := NewEngine(newTestStore(5))
	room := newTestRoom()

	require.NoError(t, e.StartNewGame(room))
	advance(t, e, room)
	require.NoError(t, e.SelectOption(room, 30))

	before := *room
	require.NoError(t, e.ContinueRound(room))
	assert.Equal(t, before, *room)
}

func TestFollowUpChain(t *testing.T) {
	store := newTestStore(5)
	store.options[31] = &model.AttackOption{BaseModel: withID(31), AttackScenarioID: 20, Label: "Fake portal"}
	followUpID := uint(31)
	store.choices[42] = &model.DefenderChoice{
		BaseModel:              withID(42),
		AttackOptionID:         30,
		Label:                  "Open the link",
		DefenderScoreDelta:     -10,
		AttackerScoreDelta:     10,
		FollowUpAttackOptionID: &followUpID,
	}
	store.choices[43] = &model.DefenderChoice{
		BaseModel:          withID(43),
		AttackOptionID:     31,
		Label:              "Close the page",
		DefenderScoreDelta: 35,
		AttackerScoreDelta: -25,
		EndsScenario:       true,
	}

	e := NewEngine(store)
	room := newTestRoom()

	require.NoError(t, e.StartNewGame(room))
	advance(t, e, room)
	require.NoError(t, e.SelectOption(room, 30))

	// The follow-up keeps the exchange alive: still the defender's turn,
	// no extra attack consumed, room now points at the follow-up option.
	require.NoError(t, e.ApplyChoice(room, 42))
	assert.Equal(t, model.PhaseDefenderResponse, room.GamePhase)
	assert.False(t, room.AttackerTurn)
	assert.Equal(t, 1, room.AttacksPerformed)
	require.NotNil(t, room.CurrentAttackOptionID)
	assert.Equal(t, uint(31), *room.CurrentAttackOptionID)

	// Resolving the follow-up concludes the exchange normally.
	require.NoError(t, e.ApplyChoice(room, 43))
	assert.Equal(t, model.PhaseOutcomeDisplay, room.GamePhase)
	assert.True(t, room.AttackerTurn)
	assert.Nil(t, room.CurrentAttackOptionID)
	assert.Equal(t, 25, room.DefenderScore)
	assert.Equal(t, -15, room.AttackerScore)
}

func TestFollowUpCycleIsBounded(t *testing.T) {
	store := newTestStore(5)
	// Choice 42 loops back to option 30 forever.
	selfID := uint(30)
	store.choices[42] = &model.DefenderChoice{
		BaseModel:              withID(42),
		AttackOptionID:         30,
		Label:                  "Keep talking",
		DefenderScoreDelta:     -1,
		AttackerScoreDelta:     1,
		FollowUpAttackOptionID: &selfID,
	}

	e := NewEngine(store)
	room := newTestRoom()

	require.NoError(t, e.StartNewGame(room))
	advance(t, e, room)
	require.NoError(t, e.SelectOption(room, 30))

	for i := 0; i < MaxFollowUpDepth; i++ {
		require.NoError(t, e.ApplyChoice(room, 42))
		assert.Equal(t, model.PhaseDefenderResponse, room.GamePhase)
	}

	// Depth limit hit: the next application concludes the exchange even
	// though the choice still names a follow-up.
	require.NoError(t, e.ApplyChoice(room, 42))
	assert.True(t, room.AttackerTurn)
	assert.Nil(t, room.CurrentAttackOptionID)
	assert.Equal(t, 1, room.AttacksPerformed)
}

func TestEndsScenarioOverridesFollowUp(t *testing.T) {
	store := newTestStore(5)
	followUpID := uint(30)
	store.choices[42] = &model.DefenderChoice{
		BaseModel:              withID(42),
		AttackOptionID:         30,
		Label:                  "Hang up",
		DefenderScoreDelta:     30,
		AttackerScoreDelta:     -20,
		FollowUpAttackOptionID: &followUpID,
		EndsScenario:           true,
	}

	e := NewEngine(store)
	room := newTestRoom()

	require.NoError(t, e.StartNewGame(room))
	advance(t, e, room)
	require.NoError(t, e.SelectOption(room, 30))
	require.NoError(t, e.ApplyChoice(room, 42))

	assert.Equal(t, model.PhaseOutcomeDisplay, room.GamePhase)
	assert.True(t, room.AttackerTurn)
	assert.Nil(t, room.CurrentAttackOptionID)
}

func TestJoinRoles(t *testing.T) {
	e := NewEngine(newTestStore(5))
	room := &model.GameRoom{RoomCode: "ABC123", Status: model.RoomWaiting}

	require.NoError(t, e.Join(room, model.RoleDefender))
	require.NotNil(t, room.DefenderSessionID)
	assert.Equal(t, model.RoomWaiting, room.Status)

	require.NoError(t, e.Join(room, model.RoleAttacker))
	require.NotNil(t, room.AttackerSessionID)
	assert.Equal(t, model.RoomPlaying, room.Status)

	// Slots are never reassigned.
	attackerSID := *room.AttackerSessionID
	assert.ErrorIs(t, e.Join(room, model.RoleAttacker), util.ErrRoleTaken)
	assert.Equal(t, attackerSID, *room.AttackerSessionID)

	assert.ErrorIs(t, e.Join(room, "SPECTATOR"), util.ErrInvalidRole)
}

func TestStartNewGameResetsEverything(t *testing.T) {
	e := NewEngine(newTestStore(5))
	room := newTestRoom()

	require.NoError(t, e.StartNewGame(room))
	advance(t, e, room)
	require.NoError(t, e.SelectOption(room, 30))
	require.NoError(t, e.ApplyChoice(room, 41))

	require.NoError(t, e.StartNewGame(room))
	assert.Equal(t, model.PhaseLevelSelect, room.GamePhase)
	assert.Equal(t, model.RoomPlaying, room.Status)
	assert.Zero(t, room.AttackerScore)
	assert.Zero(t, room.DefenderScore)
	assert.Zero(t, room.AttacksPerformed)
	assert.Equal(t, 1, room.CurrentRound)
	assert.True(t, room.AttackerTurn)
	assert.Nil(t, room.CurrentLevelID)
	assert.Nil(t, room.CurrentAttackOptionID)
	assert.Nil(t, room.LastDefenderScoreDelta)
}

func TestMissingContentErrors(t *testing.T) {
	e := NewEngine(newTestStore(5))
	room := newTestRoom()
	require.NoError(t, e.StartNewGame(room))

	assert.ErrorIs(t, e.SelectLevel(room, 999), util.ErrLevelNotFound)
	assert.ErrorIs(t, e.SelectProfile(room, 999), util.ErrProfileNotFound)
	assert.ErrorIs(t, e.SelectScenario(room, 999), util.ErrScenarioNotFound)

	advance(t, e, room)
	assert.ErrorIs(t, e.SelectOption(room, 999), util.ErrOptionNotFound)

	require.NoError(t, e.SelectOption(room, 30))
	assert.ErrorIs(t, e.ApplyChoice(room, 999), util.ErrChoiceNotFound)

	// Failed lookups leave the room consistent.
	assert.Equal(t, model.PhaseDefenderResponse, room.GamePhase)
	assert.Equal(t, 1, room.AttacksPerformed)
}
