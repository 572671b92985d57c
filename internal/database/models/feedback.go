package models

import "github.com/google/uuid"

// TeamFeedback is a free-text message about a team. A nil TeamID means general feedback.
type TeamFeedback struct {
	BaseModel
	UserID      uuid.UUID  `json:"user" gorm:"type:uuid;not null;index"`
	TeamID      *uuid.UUID `json:"team" gorm:"type:uuid;index"`
	Message     string     `json:"message" gorm:"type:text;not null"`
	IsAnonymous bool       `json:"is_anonymous" gorm:"not null;default:false"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Team *Team `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for TeamFeedback
func (TeamFeedback) TableName() string {
	return "team_feedbacks"
}
