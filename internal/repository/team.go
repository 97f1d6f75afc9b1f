// internal/repository/team.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/opshive/hrms/internal/domain"
	"github.com/opshive/hrms/internal/model"
)

type TeamRepositoryIface interface {
	Create(ctx context.Context, team *model.Team) error
	FindByOrganisation(ctx context.Context, orgID uuid.UUID) ([]model.TeamWithEmployees, error)
	FindByIDAndOrg(ctx context.Context, id, orgID uuid.UUID) (*model.Team, error)
	Update(ctx context.Context, team *model.Team) error
	Delete(ctx context.Context, id, orgID uuid.UUID) error
}

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, team *model.Team) error {
	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		return fmt.Errorf("creating team: %w", err)
	}
	return nil
}

// FindByOrganisation returns every team under orgID with its member
// employees and assignment timestamps.
func (r *TeamRepository) FindByOrganisation(ctx context.Context, orgID uuid.UUID) ([]model.TeamWithEmployees, error) {
	var teams []model.Team
	if err := r.db.WithContext(ctx).Where("organisation_id = ?", orgID).Order("created_at").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("finding teams: %w", err)
	}

	var links []model.EmployeeTeam
	if err := r.db.WithContext(ctx).
		Select("employee_teams.*").
		Table("employee_teams").
		Joins("JOIN teams ON teams.id = employee_teams.team_id").
		Where("teams.organisation_id = ?", orgID).
		Find(&links).Error; err != nil {
		return nil, fmt.Errorf("finding assignments: %w", err)
	}

	var employees []model.Employee
	if err := r.db.WithContext(ctx).Where("organisation_id = ?", orgID).Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("finding employees: %w", err)
	}

	employeesByID := make(map[uuid.UUID]model.Employee, len(employees))
	for _, e := range employees {
		employeesByID[e.ID] = e
	}

	members := make(map[uuid.UUID][]model.AssignedEmployee, len(teams))
	for _, link := range links {
		employee, ok := employeesByID[link.EmployeeID]
		if !ok {
			continue
		}
		members[link.TeamID] = append(members[link.TeamID], model.AssignedEmployee{
			Employee:   employee,
			AssignedAt: link.AssignedAt,
		})
	}

	result := make([]model.TeamWithEmployees, 0, len(teams))
	for _, t := range teams {
		employees := members[t.ID]
		if employees == nil {
			employees = []model.AssignedEmployee{}
		}
		result = append(result, model.TeamWithEmployees{Team: t, Employees: employees})
	}

	return result, nil
}

func (r *TeamRepository) FindByIDAndOrg(ctx context.Context, id, orgID uuid.UUID) (*model.Team, error) {
	var team model.Team
	if err := r.db.WithContext(ctx).Where("id = ? AND organisation_id = ?", id, orgID).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("finding team: %w", err)
	}
	return &team, nil
}

func (r *TeamRepository) Update(ctx context.Context, team *model.Team) error {
	if err := r.db.WithContext(ctx).Save(team).Error; err != nil {
		return fmt.Errorf("updating team: %w", err)
	}
	return nil
}

// Delete removes assignments referencing the team before the team row,
// mirroring EmployeeRepository.Delete.
func (r *TeamRepository) Delete(ctx context.Context, id, orgID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&model.EmployeeTeam{}).Error; err != nil {
			return fmt.Errorf("deleting assignments: %w", err)
		}

		res := tx.Where("id = ? AND organisation_id = ?", id, orgID).Delete(&model.Team{})
		if res.Error != nil {
			return fmt.Errorf("deleting team: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrTeamNotFound
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
