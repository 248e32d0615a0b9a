package model

const (
	LevelDifficultyEasy   = "EASY"
	LevelDifficultyMedium = "MEDIUM"
	LevelDifficultyHard   = "HARD"
	LevelDifficultyExpert = "EXPERT"
)

// Level is one playable chapter of the simulation. It owns the defender
// personas and the attack scenarios the attacker can pick from, and carries
// the attack budget that bounds a session.
// swagger:model Level
type Level struct {
	BaseModel

	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Difficulty  string `gorm:"type:enum('EASY','MEDIUM','HARD','EXPERT');default:'EASY'" json:"difficulty"`
	Enabled     bool   `gorm:"default:true" json:"enabled"`
	OrderIndex  int    `gorm:"default:0" json:"orderIndex"`
	MaxAttacks  int    `gorm:"default:5" json:"maxAttacks"`

	DefenderProfiles []DefenderProfile `gorm:"foreignKey:LevelID;constraint:OnDelete:CASCADE" json:"defenderProfiles,omitempty"`
	AttackScenarios  []AttackScenario  `gorm:"foreignKey:LevelID;constraint:OnDelete:CASCADE" json:"attackScenarios,omitempty"`
}

func (Level) TableName() string {
	return "levels"
}
