// internal/audit/recorder.go
package audit

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/opshive/hrms/internal/model"
	"github.com/opshive/hrms/internal/repository"
)

// Action tags written to the audit trail, one per mutating operation.
const (
	ActionRegister       = "register"
	ActionLogin          = "login"
	ActionEmployeeCreate = "employee_create"
	ActionEmployeeUpdate = "employee_update"
	ActionEmployeeDelete = "employee_delete"
	ActionTeamCreate     = "team_create"
	ActionTeamUpdate     = "team_update"
	ActionTeamDelete     = "team_delete"
	ActionTeamAssign     = "team_assign"
	ActionTeamUnassign   = "team_unassign"
)

// Recorder appends one immutable log row per state-changing action.
type Recorder interface {
	Record(ctx context.Context, orgID uuid.UUID, userID *uuid.UUID, action string, meta map[string]interface{}) error
}

// LogRecorder writes audit rows through the log repository.
type LogRecorder struct {
	logs repository.LogRepositoryIface
}

func NewLogRecorder(logs repository.LogRepositoryIface) *LogRecorder {
	return &LogRecorder{logs: logs}
}

func (r *LogRecorder) Record(ctx context.Context, orgID uuid.UUID, userID *uuid.UUID, action string, meta map[string]interface{}) error {
	return r.logs.Create(ctx, &model.Log{
		OrganisationID: orgID,
		UserID:         userID,
		Action:         action,
		Meta:           datatypes.JSONMap(meta),
	})
}

// NoopRecorder discards everything. Useful in tests that do not assert on
// the audit trail.
type NoopRecorder struct{}

func (NoopRecorder) Record(ctx context.Context, orgID uuid.UUID, userID *uuid.UUID, action string, meta map[string]interface{}) error {
	return nil
}
