package model

// swagger:model AttackScenario
type AttackScenario struct {
	BaseModel

	LevelID uint `gorm:"index;not null" json:"levelId"`

	AttackType        string `gorm:"size:100;not null" json:"attackType"` // FAKE_CALL, FAKE_WIFI, PHISHING_EMAIL, ...
	Name              string `gorm:"size:255;not null" json:"name"`
	Description       string `gorm:"size:2000" json:"description"`
	AttackerNarrative string `gorm:"size:1000" json:"attackerNarrative"`

	AttackOptions []AttackOption `gorm:"foreignKey:AttackScenarioID;constraint:OnDelete:CASCADE" json:"attackOptions,omitempty"`
}

func (AttackScenario) TableName() string {
	return "attack_scenarios"
}
