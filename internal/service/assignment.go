// internal/service/assignment.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/opshive/hrms/internal/audit"
	"github.com/opshive/hrms/internal/domain"
	"github.com/opshive/hrms/internal/model"
	"github.com/opshive/hrms/internal/repository"
)

// AssignmentService manages the employee/team many-to-many relation. Both
// sides must resolve under the caller's organisation before any row is
// touched, which is how cross-tenant references get rejected.
type AssignmentService struct {
	teams       repository.TeamRepositoryIface
	employees   repository.EmployeeRepositoryIface
	assignments repository.AssignmentRepositoryIface
	recorder    audit.Recorder
}

func NewAssignmentService(
	teams repository.TeamRepositoryIface,
	employees repository.EmployeeRepositoryIface,
	assignments repository.AssignmentRepositoryIface,
	recorder audit.Recorder,
) *AssignmentService {
	return &AssignmentService{
		teams:       teams,
		employees:   employees,
		assignments: assignments,
		recorder:    recorder,
	}
}

func (s *AssignmentService) Assign(ctx context.Context, orgID, userID, teamID, employeeID uuid.UUID) (*model.EmployeeTeam, error) {
	if _, err := s.teams.FindByIDAndOrg(ctx, teamID, orgID); err != nil {
		return nil, err
	}
	if _, err := s.employees.FindByIDAndOrg(ctx, employeeID, orgID); err != nil {
		return nil, err
	}

	if _, err := s.assignments.Find(ctx, employeeID, teamID); err == nil {
		return nil, domain.ErrAlreadyAssigned
	} else if !errors.Is(err, domain.ErrAssignmentNotFound) {
		return nil, err
	}

	assignment := &model.EmployeeTeam{
		EmployeeID: employeeID,
		TeamID:     teamID,
		AssignedAt: time.Now(),
	}

	// The unique pair index catches the race where two requests pass the
	// existence check above at the same time.
	if err := s.assignments.Create(ctx, assignment); err != nil {
		return nil, err
	}

	if err := s.recorder.Record(ctx, orgID, &userID, audit.ActionTeamAssign, map[string]interface{}{
		"teamId":     teamID.String(),
		"employeeId": employeeID.String(),
	}); err != nil {
		return nil, fmt.Errorf("recording assignment: %w", err)
	}

	return assignment, nil
}

func (s *AssignmentService) Unassign(ctx context.Context, orgID, userID, teamID, employeeID uuid.UUID) error {
	if _, err := s.teams.FindByIDAndOrg(ctx, teamID, orgID); err != nil {
		return err
	}
	if _, err := s.employees.FindByIDAndOrg(ctx, employeeID, orgID); err != nil {
		return err
	}

	if err := s.assignments.Delete(ctx, employeeID, teamID); err != nil {
		return err
	}

	if err := s.recorder.Record(ctx, orgID, &userID, audit.ActionTeamUnassign, map[string]interface{}{
		"teamId":     teamID.String(),
		"employeeId": employeeID.String(),
	}); err != nil {
		return fmt.Errorf("recording unassignment: %w", err)
	}

	return nil
}
