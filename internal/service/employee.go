// internal/service/employee.go
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

// EmployeeService is tenant-scoped: every operation takes the caller's
// organisation id and never touches rows outside it.
type EmployeeService struct {
	employees repository.EmployeeRepositoryIface
	recorder  audit.Recorder
	validate  *validator.Validate
}

func NewEmployeeService(employees repository.EmployeeRepositoryIface, recorder audit.Recorder) *EmployeeService {
	return &EmployeeService{
		employees: employees,
		recorder:  recorder,
		validate:  validator.New(),
	}
}

type CreateEmployeeInput struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone"`
}

func (s *EmployeeService) Create(ctx context.Context, orgID, userID uuid.UUID, input CreateEmployeeInput) (*model.Employee, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	employee := &model.Employee{
		OrganisationID: orgID,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Phone:          input.Phone,
	}

	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, err
	}

	if err := s.recorder.Record(ctx, orgID, &userID, audit.ActionEmployeeCreate, map[string]interface{}{
		"employeeId": employee.ID.String(),
		"first_name": employee.FirstName,
		"last_name":  employee.LastName,
		"email":      employee.Email,
	}); err != nil {
		return nil, fmt.Errorf("recording employee create: %w", err)
	}

	return employee, nil
}

func (s *EmployeeService) List(ctx context.Context, orgID uuid.UUID) ([]model.EmployeeWithTeams, error) {
	return s.employees.FindByOrganisation(ctx, orgID)
}

type UpdateEmployeeInput struct {
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Phone     NullString `json:"phone"`
}

// Update applies a partial update. Blank name/email fields keep their
// prior values; phone is applied whenever the key was present, including
// an explicit null that clears it.
func (s *EmployeeService) Update(ctx context.Context, orgID, userID, id uuid.UUID, input UpdateEmployeeInput) (*model.Employee, error) {
	employee, err := s.employees.FindByIDAndOrg(ctx, id, orgID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != "" {
		employee.FirstName = input.FirstName
	}
	if input.LastName != "" {
		employee.LastName = input.LastName
	}
	if input.Email != "" {
		employee.Email = input.Email
	}
	if input.Phone.Set {
		employee.Phone = input.Phone.Value
	}

	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, err
	}

	if err := s.recorder.Record(ctx, orgID, &userID, audit.ActionEmployeeUpdate, map[string]interface{}{
		"employeeId": id.String(),
		"updates": map[string]interface{}{
			"first_name": input.FirstName,
			"last_name":  input.LastName,
			"email":      input.Email,
		},
	}); err != nil {
		return nil, fmt.Errorf("recording employee update: %w", err)
	}

	return employee, nil
}

// Delete removes the employee and, through the repository transaction,
// every assignment row referencing them first.
func (s *EmployeeService) Delete(ctx context.Context, orgID, userID, id uuid.UUID) error {
	if _, err := s.employees.FindByIDAndOrg(ctx, id, orgID); err != nil {
		return err
	}

	if err := s.employees.Delete(ctx, id, orgID); err != nil {
		return err
	}

	if err := s.recorder.Record(ctx, orgID, &userID, audit.ActionEmployeeDelete, map[string]interface{}{
		"employeeId": id.String(),
	}); err != nil {
		return fmt.Errorf("recording employee delete: %w", err)
	}

	return nil
}
