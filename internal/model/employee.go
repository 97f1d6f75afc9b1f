// internal/model/employee.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Employee email deliberately carries no unique index: tenants import
// rosters where several employees share a mailbox.
type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganisationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organisation_id"`
	FirstName      string    `gorm:"type:text;not null" json:"first_name"`
	LastName       string    `gorm:"type:text;not null" json:"last_name"`
	Email          string    `gorm:"type:text;not null" json:"email"`
	Phone          *string   `gorm:"type:text" json:"phone"`
	CreatedAt      time.Time `json:"created_at"`
}

// AssignedTeam is a team plus the timestamp of the assignment that links
// it to a particular employee.
type AssignedTeam struct {
	Team
	AssignedAt time.Time `json:"assigned_at"`
}

// EmployeeWithTeams is the list-view shape: an employee together with
// every team they are assigned to.
type EmployeeWithTeams struct {
	Employee
	Teams []AssignedTeam `json:"teams"`
}
