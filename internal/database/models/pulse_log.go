package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PulseLog is a user's weekly mood/workload check-in
type PulseLog struct {
	BaseModel
	UserID         uuid.UUID  `json:"user" gorm:"type:uuid;not null;index:idx_pulse_logs_user_week,priority:1"`
	Mood           int        `json:"mood" gorm:"not null"`
	Workload       int        `json:"workload" gorm:"not null"`
	Comment        *string    `json:"comment" gorm:"type:text"`
	Timestamp      time.Time  `json:"timestamp" gorm:"not null;index:idx_pulse_logs_timestamp,sort:desc"`
	TimestampLocal *time.Time `json:"timestamp_local"`
	TeamID         *uuid.UUID `json:"team" gorm:"type:uuid;index"`
	Year           int        `json:"year" gorm:"not null;index:idx_pulse_logs_user_week,priority:2"`
	WeekIndex      int        `json:"week_index" gorm:"not null;index:idx_pulse_logs_user_week,priority:3"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Team *Team `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for PulseLog
func (PulseLog) TableName() string {
	return "pulse_logs"
}

// BeforeCreate stamps the submission time
func (p *PulseLog) BeforeCreate(tx *gorm.DB) error {
	if err := p.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if p.Timestamp.IsZero() {
		p.Timestamp = time.Now()
	}
	return nil
}
