// internal/repository/assignment.go
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

type AssignmentRepositoryIface interface {
	Create(ctx context.Context, assignment *model.EmployeeTeam) error
	Find(ctx context.Context, employeeID, teamID uuid.UUID) (*model.EmployeeTeam, error)
	Delete(ctx context.Context, employeeID, teamID uuid.UUID) error
}

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create inserts the join row. A unique violation on the pair index means
// a concurrent request won the race between the service's existence check
// and this insert; it surfaces as ErrAlreadyAssigned either way.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *model.EmployeeTeam) error {
	if err := r.db.WithContext(ctx).Create(assignment).Error; err != nil {
		if isUniqueViolation(err, "idx_employee_team") {
			return domain.ErrAlreadyAssigned
		}
		return fmt.Errorf("creating assignment: %w", err)
	}
	return nil
}

func (r *AssignmentRepository) Find(ctx context.Context, employeeID, teamID uuid.UUID) (*model.EmployeeTeam, error) {
	var assignment model.EmployeeTeam
	if err := r.db.WithContext(ctx).
		Where("employee_id = ? AND team_id = ?", employeeID, teamID).
		First(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("finding assignment: %w", err)
	}
	return &assignment, nil
}

func (r *AssignmentRepository) Delete(ctx context.Context, employeeID, teamID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("employee_id = ? AND team_id = ?", employeeID, teamID).
		Delete(&model.EmployeeTeam{})
	if res.Error != nil {
		return fmt.Errorf("deleting assignment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrAssignmentNotFound
	}
	return nil
}
