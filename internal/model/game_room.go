package model

type RoomStatus string

const (
	RoomWaiting   RoomStatus = "WAITING"
	RoomPlaying   RoomStatus = "PLAYING"
	RoomRoundOver RoomStatus = "ROUND_OVER"
)

type GamePhase string

const (
	PhaseLevelSelect        GamePhase = "LEVEL_SELECT"
	PhaseProfileSelect      GamePhase = "PROFILE_SELECT"
	PhaseAttackTypeSelect   GamePhase = "ATTACK_TYPE_SELECT"
	PhaseAttackOptionSelect GamePhase = "ATTACK_OPTION_SELECT"
	PhaseDefenderResponse   GamePhase = "DEFENDER_RESPONSE"
	PhaseOutcomeDisplay     GamePhase = "OUTCOME_DISPLAY"
	PhaseGameOver           GamePhase = "GAME_OVER"
)

type PlayerRole string

const (
	RoleAttacker PlayerRole = "ATTACKER"
	RoleDefender PlayerRole = "DEFENDER"
)

// GameRoom is the mutable aggregate of one two-party session. It is created
// once, mutated by exactly one command at a time inside a locking
// transaction, and never deleted; GAME_OVER is the terminal state.
// swagger:model GameRoom
type GameRoom struct {
	BaseModel

	RoomCode string `gorm:"size:12;uniqueIndex;not null" json:"roomCode"`

	AttackerSessionID *string `gorm:"size:36" json:"attackerSessionId,omitempty"`
	DefenderSessionID *string `gorm:"size:36" json:"defenderSessionId,omitempty"`

	Status    RoomStatus `gorm:"type:enum('WAITING','PLAYING','ROUND_OVER');default:'WAITING'" json:"status"`
	GamePhase GamePhase  `gorm:"size:30;default:'LEVEL_SELECT'" json:"gamePhase"`

	AttackerScore int `gorm:"default:0" json:"attackerScore"`
	DefenderScore int `gorm:"default:0" json:"defenderScore"`

	AttackerTurn bool `gorm:"default:true" json:"isAttackerTurn"`

	CurrentRound     int `gorm:"default:1" json:"currentRound"`
	MaxRounds        int `gorm:"default:3" json:"maxRounds"`
	AttacksPerformed int `gorm:"default:0" json:"attacksPerformed"`

	// Depth of the current follow-up chain, reset when an exchange ends.
	// Bounds authored chains that would otherwise loop forever.
	FollowUpDepth int `gorm:"default:0" json:"-"`

	CurrentLevelID           *uint `json:"currentLevelId,omitempty"`
	CurrentDefenderProfileID *uint `json:"currentDefenderProfileId,omitempty"`
	CurrentAttackScenarioID  *uint `json:"currentAttackScenarioId,omitempty"`
	CurrentAttackOptionID    *uint `json:"currentAttackOptionId,omitempty"`

	LastActionMessage string `gorm:"size:1000" json:"lastActionMessage"`
	LastOutcome       string `gorm:"size:2000" json:"lastOutcome"`

	LastDefenderScoreDelta *int `json:"lastDefenderScoreDelta,omitempty"`
	LastAttackerScoreDelta *int `json:"lastAttackerScoreDelta,omitempty"`
}

func (GameRoom) TableName() string {
	return "game_rooms"
}
