// internal/repository/employee.go
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

type EmployeeRepositoryIface interface {
	Create(ctx context.Context, employee *model.Employee) error
	FindByOrganisation(ctx context.Context, orgID uuid.UUID) ([]model.EmployeeWithTeams, error)
	FindByIDAndOrg(ctx context.Context, id, orgID uuid.UUID) (*model.Employee, error)
	Update(ctx context.Context, employee *model.Employee) error
	Delete(ctx context.Context, id, orgID uuid.UUID) error
}

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	if err := r.db.WithContext(ctx).Create(employee).Error; err != nil {
		return fmt.Errorf("creating employee: %w", err)
	}
	return nil
}

// FindByOrganisation returns every employee under orgID together with
// their assigned teams and assignment timestamps. Assignments only ever
// link rows of the same organisation, so the team lookup can filter on
// orgID as well.
func (r *EmployeeRepository) FindByOrganisation(ctx context.Context, orgID uuid.UUID) ([]model.EmployeeWithTeams, error) {
	var employees []model.Employee
	if err := r.db.WithContext(ctx).Where("organisation_id = ?", orgID).Order("created_at").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("finding employees: %w", err)
	}

	var links []model.EmployeeTeam
	if err := r.db.WithContext(ctx).
		Select("employee_teams.*").
		Table("employee_teams").
		Joins("JOIN employees ON employees.id = employee_teams.employee_id").
		Where("employees.organisation_id = ?", orgID).
		Find(&links).Error; err != nil {
		return nil, fmt.Errorf("finding assignments: %w", err)
	}

	var teams []model.Team
	if err := r.db.WithContext(ctx).Where("organisation_id = ?", orgID).Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("finding teams: %w", err)
	}

	teamsByID := make(map[uuid.UUID]model.Team, len(teams))
	for _, t := range teams {
		teamsByID[t.ID] = t
	}

	assigned := make(map[uuid.UUID][]model.AssignedTeam, len(employees))
	for _, link := range links {
		team, ok := teamsByID[link.TeamID]
		if !ok {
			continue
		}
		assigned[link.EmployeeID] = append(assigned[link.EmployeeID], model.AssignedTeam{
			Team:       team,
			AssignedAt: link.AssignedAt,
		})
	}

	result := make([]model.EmployeeWithTeams, 0, len(employees))
	for _, e := range employees {
		teams := assigned[e.ID]
		if teams == nil {
			teams = []model.AssignedTeam{}
		}
		result = append(result, model.EmployeeWithTeams{Employee: e, Teams: teams})
	}

	return result, nil
}

func (r *EmployeeRepository) FindByIDAndOrg(ctx context.Context, id, orgID uuid.UUID) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.WithContext(ctx).Where("id = ? AND organisation_id = ?", id, orgID).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("finding employee: %w", err)
	}
	return &employee, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	if err := r.db.WithContext(ctx).Save(employee).Error; err != nil {
		return fmt.Errorf("updating employee: %w", err)
	}
	return nil
}

// Delete removes the employee's assignment rows and then the employee
// itself in one transaction. The assignment cleanup must land first so no
// join row ever dangles.
func (r *EmployeeRepository) Delete(ctx context.Context, id, orgID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).Delete(&model.EmployeeTeam{}).Error; err != nil {
			return fmt.Errorf("deleting assignments: %w", err)
		}

		res := tx.Where("id = ? AND organisation_id = ?", id, orgID).Delete(&model.Employee{})
		if res.Error != nil {
			return fmt.Errorf("deleting employee: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrEmployeeNotFound
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
