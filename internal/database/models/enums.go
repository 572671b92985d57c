package models

// EventName identifies an automatically recorded event log entry
type EventName string

const (
	EventUserRegistered    EventName = "user_registered"
	EventUserRoleChanged   EventName = "user_role_changed"
	EventUserDeleted       EventName = "user_deleted"
	EventTeamMemberAdded   EventName = "team_member_added"
	EventTeamMemberRemoved EventName = "team_member_removed"
)

// IsValid checks if the EventName is one of the recorded system events
func (e EventName) IsValid() bool {
	switch e {
	case EventUserRegistered, EventUserRoleChanged, EventUserDeleted,
		EventTeamMemberAdded, EventTeamMemberRemoved:
		return true
	}
	return false
}
