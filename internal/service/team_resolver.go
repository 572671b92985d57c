package service

import (
	"context"
	"errors"
	"fmt"

	"teampulse-backend/internal/access"
	apperrors "teampulse-backend/internal/errors"
	"teampulse-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// teamResolver applies the team assignment rule for new pulse logs and feedback
type teamResolver struct {
	teams repository.TeamRepositoryInterface
}

func (r teamResolver) resolve(ctx context.Context, caller access.Caller, resource access.Resource, requested *uuid.UUID) (*uuid.UUID, error) {
	var memberships []uuid.UUID
	if !caller.IsStaff {
		ids, err := r.teams.ListTeamIDsForUser(ctx, caller.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to get team memberships: %w", err)
		}
		memberships = ids
	}

	teamID, err := access.ResolveTeam(caller, resource, requested, memberships)
	if err != nil {
		return nil, err
	}

	// Membership already proves existence for everyone but admins
	if caller.IsStaff && teamID != nil {
		if _, err := r.teams.GetByID(ctx, *teamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewValidationError("team", fmt.Sprintf("Invalid pk %q - object does not exist.", teamID.String()))
			}
			return nil, fmt.Errorf("failed to verify team: %w", err)
		}
	}
	return teamID, nil
}
