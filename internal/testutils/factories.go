package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"teampulse-backend/internal/database/models"

	"github.com/google/uuid"
)

var sequence atomic.Int64

func next() int64 {
	return sequence.Add(1)
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates an active, non-staff test User with a unique username and email.
// Password holds a placeholder, not a real hash.
func (f *UserFactory) Create() *models.User {
	n := next()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:  fmt.Sprintf("user%d", n),
		Email:     fmt.Sprintf("user%d@example.com", n),
		Password:  "not-a-real-hash",
		FirstName: "Test",
		LastName:  fmt.Sprintf("User %d", n),
		IsActive:  true,
	}
}

// WithUsername sets a custom username and a matching email
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	user.Email = username + "@example.com"
	return user
}

// Admin creates a staff user
func (f *UserFactory) Admin() *models.User {
	user := f.Create()
	user.IsStaff = true
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TeamName:  fmt.Sprintf("Team %d", next()),
	}
}

// WithName sets a custom team name
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.TeamName = name
	return team
}

// MoodFactory provides methods to create test Mood data
type MoodFactory struct{}

// NewMoodFactory creates a new MoodFactory
func NewMoodFactory() *MoodFactory {
	return &MoodFactory{}
}

// WithValue creates a test Mood with the given value
func (f *MoodFactory) WithValue(value int) *models.Mood {
	return &models.Mood{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Value:       value,
		Description: fmt.Sprintf("Mood %d", value),
	}
}

// WorkloadFactory provides methods to create test Workload data
type WorkloadFactory struct{}

// NewWorkloadFactory creates a new WorkloadFactory
func NewWorkloadFactory() *WorkloadFactory {
	return &WorkloadFactory{}
}

// WithValue creates a test Workload with the given value
func (f *WorkloadFactory) WithValue(value int) *models.Workload {
	return &models.Workload{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Value:       value,
		Description: fmt.Sprintf("Workload %d", value),
	}
}

// PulseLogFactory provides methods to create test PulseLog data
type PulseLogFactory struct{}

// NewPulseLogFactory creates a new PulseLogFactory
func NewPulseLogFactory() *PulseLogFactory {
	return &PulseLogFactory{}
}

// ForUser creates a pulse log for the user in the current ISO week
func (f *PulseLogFactory) ForUser(userID uuid.UUID, teamID *uuid.UUID) *models.PulseLog {
	now := time.Now()
	year, week := now.ISOWeek()
	return &models.PulseLog{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    userID,
		TeamID:    teamID,
		Mood:      3,
		Workload:  3,
		Timestamp: now,
		Year:      year,
		WeekIndex: week,
	}
}

// FeedbackFactory provides methods to create test TeamFeedback data
type FeedbackFactory struct{}

// NewFeedbackFactory creates a new FeedbackFactory
func NewFeedbackFactory() *FeedbackFactory {
	return &FeedbackFactory{}
}

// ForUser creates a named feedback entry from the user
func (f *FeedbackFactory) ForUser(userID uuid.UUID, teamID *uuid.UUID) *models.TeamFeedback {
	return &models.TeamFeedback{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    userID,
		TeamID:    teamID,
		Message:   fmt.Sprintf("feedback %d", next()),
	}
}

// EventLogFactory provides methods to create test EventLog data
type EventLogFactory struct{}

// NewEventLogFactory creates a new EventLogFactory
func NewEventLogFactory() *EventLogFactory {
	return &EventLogFactory{}
}

// WithName creates an event log entry with the given name
func (f *EventLogFactory) WithName(name string) *models.EventLog {
	return &models.EventLog{
		BaseModel: models.BaseModel{ID: uuid.New()},
		EventName: name,
		Timestamp: time.Now(),
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User     *UserFactory
	Team     *TeamFactory
	Mood     *MoodFactory
	Workload *WorkloadFactory
	PulseLog *PulseLogFactory
	Feedback *FeedbackFactory
	EventLog *EventLogFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:     NewUserFactory(),
		Team:     NewTeamFactory(),
		Mood:     NewMoodFactory(),
		Workload: NewWorkloadFactory(),
		PulseLog: NewPulseLogFactory(),
		Feedback: NewFeedbackFactory(),
		EventLog: NewEventLogFactory(),
	}
}
