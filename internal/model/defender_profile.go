package model

import "encoding/json"

// DefenderProfile is a narrative persona attached to a level. The fields are
// presentation context only, gameplay never derives vulnerability from them.
// swagger:model DefenderProfile
type DefenderProfile struct {
	BaseModel

	LevelID uint `gorm:"index;not null" json:"levelId"`

	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"size:1000" json:"description"`

	Age             int    `json:"age"`
	AgeGroup        string `gorm:"size:50" json:"ageGroup"`  // YOUNG, MIDDLE_AGED, ELDERLY
	Occupation      string `gorm:"size:500" json:"occupation"`
	TechSavviness   string `gorm:"size:50" json:"techSavviness"`   // LOW, MEDIUM, HIGH
	MentalState     string `gorm:"size:50" json:"mentalState"`     // CALM, STRESSED, ANXIOUS, DISTRACTED
	FinancialStatus string `gorm:"size:50" json:"financialStatus"` // STABLE, STRUGGLING, WEALTHY
	AvatarIcon      string `gorm:"size:255" json:"avatarIcon"`

	Relationships   json.RawMessage `gorm:"type:json" json:"relationships"`   // e.g. ["mother","bank"]
	Vulnerabilities json.RawMessage `gorm:"type:json" json:"vulnerabilities"` // e.g. ["trusting","impulsive"]
}

func (DefenderProfile) TableName() string {
	return "defender_profiles"
}
