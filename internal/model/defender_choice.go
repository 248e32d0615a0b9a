package model

const (
	ChoiceTypeCorrect = "CORRECT"
	ChoiceTypeWrong   = "WRONG"
	ChoiceTypeRisky   = "RISKY"
	ChoiceTypeNeutral = "NEUTRAL"
)

// DefenderChoice is one possible response to an attack option. The two score
// deltas are independent; authored content is usually anti-correlated but
// nothing enforces that. A choice may chain into a follow-up option instead
// of ending the exchange.
// swagger:model DefenderChoice
type DefenderChoice struct {
	BaseModel

	AttackOptionID uint `gorm:"index;not null" json:"attackOptionId"`

	Label       string `gorm:"size:255;not null" json:"label"`
	Description string `gorm:"size:2000" json:"description"`
	Outcome     string `gorm:"size:2000" json:"outcome"`

	DefenderScoreDelta int `json:"defenderScoreDelta"`
	AttackerScoreDelta int `json:"attackerScoreDelta"`

	ChoiceType       string `gorm:"size:50" json:"choiceType"` // CORRECT, WRONG, RISKY, NEUTRAL
	CriticallyWrong  bool   `gorm:"default:false" json:"criticallyWrong"`
	CriticallyRight  bool   `gorm:"default:false" json:"criticallyRight"`
	EducationalNote  string `gorm:"size:1000" json:"educationalNote"`

	FollowUpAttackOptionID *uint `json:"followUpAttackOptionId,omitempty"`
	EndsScenario           bool  `gorm:"default:false" json:"endsScenario"`
}

func (DefenderChoice) TableName() string {
	return "defender_choices"
}
