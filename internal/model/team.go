// internal/model/team.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganisationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organisation_id"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	Description    *string   `gorm:"type:text" json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// EmployeeTeam is the explicit many-to-many join between employees and
// teams. The composite unique index is what turns two concurrent assigns
// of the same pair into a conflict instead of duplicate rows; the service
// layer's existence check alone cannot close that window.
type EmployeeTeam struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_employee_team" json:"employee_id"`
	TeamID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_employee_team" json:"team_id"`
	AssignedAt time.Time `json:"assigned_at"`
}

// TableName keeps the historical join table name.
func (EmployeeTeam) TableName() string {
	return "employee_teams"
}

// AssignedEmployee mirrors AssignedTeam for the team list view.
type AssignedEmployee struct {
	Employee
	AssignedAt time.Time `json:"assigned_at"`
}

type TeamWithEmployees struct {
	Team
	Employees []AssignedEmployee `json:"employees"`
}
