package models

import (
	"time"

	"gorm.io/gorm"
)

// EventLog is an administrative record of something that happened in the system
type EventLog struct {
	BaseModel
	Timestamp time.Time `json:"timestamp" gorm:"not null;index:idx_event_logs_timestamp,sort:desc"`
	EventName string    `json:"event_name" gorm:"not null;size:255;index"`
	Metadata  *string   `json:"metadata" gorm:"type:text"`
}

// TableName returns the table name for EventLog
func (EventLog) TableName() string {
	return "event_logs"
}

func (e *EventLog) BeforeCreate(tx *gorm.DB) error {
	if err := e.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	return nil
}
