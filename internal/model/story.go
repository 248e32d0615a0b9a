package model

import "time"

// StoryScene is one node of the solo-mode video walkthrough. Scenes are
// addressed by a short video id ("1", "1_1", ...) and branch through their
// options.
// swagger:model StoryScene
type StoryScene struct {
	BaseModel

	VideoID   string `gorm:"size:20;uniqueIndex;not null" json:"videoId"`
	VideoPath string `gorm:"size:255;not null" json:"videoPath"`

	Description         string `gorm:"size:1000" json:"description"`
	AttackType          string `gorm:"size:100" json:"attackType"`
	AttackerDescription string `gorm:"size:1000" json:"attackerDescription"`

	LeafNode    bool   `gorm:"default:false" json:"isLeafNode"`
	NextVideoID string `gorm:"size:20" json:"nextVideoId,omitempty"`

	Options []StoryOption `gorm:"foreignKey:StorySceneID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

func (StoryScene) TableName() string {
	return "story_scenes"
}

// swagger:model StoryOption
type StoryOption struct {
	BaseModel

	StorySceneID uint `gorm:"index;not null" json:"storySceneId"`

	Label         string `gorm:"size:255;not null" json:"label"`
	TargetVideoID string `gorm:"size:20;not null" json:"targetVideoId"`

	DefenderScoreDelta int `json:"defenderScoreDelta"`
	AttackerScoreDelta int `json:"attackerScoreDelta"`

	Position        string   `gorm:"size:50" json:"position"`        // bottom-left, bottom-right
	InteractionType string   `gorm:"size:50" json:"interactionType"` // click, hotspot, drag, keyboard
	AppearTime      *float64 `json:"appearTime,omitempty"`           // seconds from scene start
}

func (StoryOption) TableName() string {
	return "story_options"
}

// GameSession tracks one solo walkthrough of the story graph.
// swagger:model GameSession
type GameSession struct {
	BaseModel

	SessionID      string    `gorm:"size:36;uniqueIndex;not null" json:"sessionId"`
	CurrentScore   int       `gorm:"default:0" json:"currentScore"`
	CurrentVideoID string    `gorm:"size:20;default:'1'" json:"currentVideoId"`
	StartTime      time.Time `json:"startTime"`
	LastUpdated    time.Time `json:"lastUpdated"`
	Completed      bool      `gorm:"default:false" json:"isCompleted"`
}

func (GameSession) TableName() string {
	return "game_sessions"
}
