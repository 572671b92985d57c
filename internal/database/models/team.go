package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Team represents a named group of users
type Team struct {
	BaseModel
	TeamName string `json:"team_name" gorm:"not null;size:255"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamMember links a user to a team. JoinedAt orders a user's memberships.
type TeamMember struct {
	TeamID   uuid.UUID `json:"team_id" gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey;index"`
	JoinedAt time.Time `json:"joined_at" gorm:"not null"`

	Team *Team `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}

// BeforeCreate stamps the membership time
func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.JoinedAt.IsZero() {
		m.JoinedAt = time.Now()
	}
	return nil
}
