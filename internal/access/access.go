// Package access holds the role and membership rules that decide what a caller
// may see and change. Rules are pure: services pass in the caller and the data the
// rule needs, and apply the returned predicate to their queries.
package access

import (
	"slices"

	apperrors "teampulse-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Caller is the authenticated identity a request acts as
type Caller struct {
	UserID   uuid.UUID
	Username string
	IsStaff  bool
}

// Resource names a kind of row guarded by the access rules
type Resource string

const (
	ResourceUser     Resource = "user"
	ResourceTeam     Resource = "team"
	ResourceMood     Resource = "mood"
	ResourceWorkload Resource = "workload"
	ResourcePulseLog Resource = "pulse_log"
	ResourceFeedback Resource = "feedback"
	ResourceEventLog Resource = "event_log"
)

// Action is what the caller wants to do with a resource
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Predicate narrows a query to the rows a caller may touch
type Predicate func(*gorm.DB) *gorm.DB

func unrestricted(db *gorm.DB) *gorm.DB { return db }

// Authorize reports whether the caller may perform the action on the resource kind
// at all. Row-level restrictions are expressed by Scope.
func Authorize(caller Caller, resource Resource, action Action) error {
	if caller.IsStaff {
		return nil
	}

	switch resource {
	case ResourceUser, ResourceEventLog:
		return apperrors.ErrAdminRequired
	case ResourceTeam, ResourceMood, ResourceWorkload:
		if action != ActionRead {
			return apperrors.ErrAdminRequired
		}
		return nil
	case ResourcePulseLog, ResourceFeedback:
		return nil
	}
	return apperrors.ErrAdminRequired
}

// Scope returns the row filter for the caller. Admins are never restricted.
func Scope(caller Caller, resource Resource, action Action) Predicate {
	if caller.IsStaff {
		return unrestricted
	}

	switch resource {
	case ResourcePulseLog:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("pulse_logs.user_id = ?", caller.UserID)
		}
	case ResourceFeedback:
		if action == ActionRead {
			return func(db *gorm.DB) *gorm.DB {
				return db.Where(
					"(team_feedbacks.team_id IN (SELECT team_id FROM team_members WHERE user_id = ?) OR team_feedbacks.user_id = ?)",
					caller.UserID, caller.UserID,
				)
			}
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("team_feedbacks.user_id = ?", caller.UserID)
		}
	}
	return unrestricted
}

// ResolveTeam decides which team a new pulse log or feedback entry is filed under.
// memberships must be ordered by join time, oldest first.
//
// Admins keep whatever they asked for, including no team. Other callers may only
// name a team they belong to and otherwise get their earliest membership.
func ResolveTeam(caller Caller, resource Resource, requested *uuid.UUID, memberships []uuid.UUID) (*uuid.UUID, error) {
	if caller.IsStaff {
		return requested, nil
	}

	if requested != nil {
		if !slices.Contains(memberships, *requested) {
			return nil, apperrors.ErrNotTeamMember
		}
		team := *requested
		return &team, nil
	}

	if len(memberships) == 0 {
		return nil, apperrors.NewValidationError("team", "You must belong to a team to submit "+noun(resource))
	}
	team := memberships[0]
	return &team, nil
}

func noun(resource Resource) string {
	switch resource {
	case ResourceFeedback:
		return "feedback"
	case ResourcePulseLog:
		return "a pulse log"
	}
	return string(resource)
}

// CheckStaffChange guards against leaving the system without an administrator.
// adminCount is the number of staff users, counted in the same transaction as the
// write. Deleting a user is checked as a change to non-staff.
func CheckStaffChange(currentIsStaff, newIsStaff bool, adminCount int64) error {
	if currentIsStaff && !newIsStaff && adminCount <= 1 {
		return apperrors.ErrLastAdmin
	}
	return nil
}
