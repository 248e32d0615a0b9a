package model

// AttackOption is one concrete attacker move under a scenario.
// swagger:model AttackOption
type AttackOption struct {
	BaseModel

	AttackScenarioID uint `gorm:"index;not null" json:"attackScenarioId"`

	Label              string `gorm:"size:255;not null" json:"label"`
	Description        string `gorm:"size:1000" json:"description"`
	AttackerMessage    string `gorm:"size:2000" json:"attackerMessage"`
	ImpersonatedEntity string `gorm:"size:500" json:"impersonatedEntity"`

	BaseAttackerPoints int  `gorm:"default:0" json:"baseAttackerPoints"`
	RiskLevel          int  `gorm:"default:1" json:"riskLevel"` // 1-5
	CriticalRisk       bool `gorm:"default:false" json:"criticalRisk"`

	DefenderChoices []DefenderChoice `gorm:"foreignKey:AttackOptionID;constraint:OnDelete:CASCADE" json:"defenderChoices,omitempty"`
}

func (AttackOption) TableName() string {
	return "attack_options"
}
