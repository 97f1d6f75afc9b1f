// internal/service/team.go
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/opshive/hrms/internal/audit"
	"github.com/opshive/hrms/internal/domain"
	"github.com/opshive/hrms/internal/model"
	"github.com/opshive/hrms/internal/repository"
)

type TeamService struct {
	teams    repository.TeamRepositoryIface
	recorder audit.Recorder
	validate *validator.Validate
}

func NewTeamService(teams repository.TeamRepositoryIface, recorder audit.Recorder) *TeamService {
	return &TeamService{
		teams:    teams,
		recorder: recorder,
		validate: validator.New(),
	}
}

type CreateTeamInput struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

func (s *TeamService) Create(ctx context.Context, orgID, userID uuid.UUID, input CreateTeamInput) (*model.Team, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	team := &model.Team{
		OrganisationID: orgID,
		Name:           input.Name,
		Description:    input.Description,
	}

	if err := s.teams.Create(ctx, team); err != nil {
		return nil, err
	}

	if err := s.recorder.Record(ctx, orgID, &userID, audit.ActionTeamCreate, map[string]interface{}{
		"teamId":      team.ID.String(),
		"name":        team.Name,
		"description": team.Description,
	}); err != nil {
		return nil, fmt.Errorf("recording team create: %w", err)
	}

	return team, nil
}

func (s *TeamService) List(ctx context.Context, orgID uuid.UUID) ([]model.TeamWithEmployees, error) {
	return s.teams.FindByOrganisation(ctx, orgID)
}

type UpdateTeamInput struct {
	Name        string     `json:"name"`
	Description NullString `json:"description"`
}

// Update mirrors EmployeeService.Update: blank name keeps the prior
// value, description applies when present including explicit null.
func (s *TeamService) Update(ctx context.Context, orgID, userID, id uuid.UUID, input UpdateTeamInput) (*model.Team, error) {
	team, err := s.teams.FindByIDAndOrg(ctx, id, orgID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		team.Name = input.Name
	}
	if input.Description.Set {
		team.Description = input.Description.Value
	}

	if err := s.teams.Update(ctx, team); err != nil {
		return nil, err
	}

	if err := s.recorder.Record(ctx, orgID, &userID, audit.ActionTeamUpdate, map[string]interface{}{
		"teamId": id.String(),
		"updates": map[string]interface{}{
			"name": input.Name,
		},
	}); err != nil {
		return nil, fmt.Errorf("recording team update: %w", err)
	}

	return team, nil
}

func (s *TeamService) Delete(ctx context.Context, orgID, userID, id uuid.UUID) error {
	if _, err := s.teams.FindByIDAndOrg(ctx, id, orgID); err != nil {
		return err
	}

	if err := s.teams.Delete(ctx, id, orgID); err != nil {
		return err
	}

	if err := s.recorder.Record(ctx, orgID, &userID, audit.ActionTeamDelete, map[string]interface{}{
		"teamId": id.String(),
	}); err != nil {
		return fmt.Errorf("recording team delete: %w", err)
	}

	return nil
}
