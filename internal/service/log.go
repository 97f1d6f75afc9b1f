// internal/service/log.go
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/opshive/hrms/internal/model"
	"github.com/opshive/hrms/internal/repository"
)

const (
	defaultLogPageSize = 50
	maxLogPageSize     = 200
)

// LogService exposes the read-only view over the audit trail.
type LogService struct {
	logs repository.LogRepositoryIface
}

func NewLogService(logs repository.LogRepositoryIface) *LogService {
	return &LogService{logs: logs}
}

func (s *LogService) List(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]*model.Log, int64, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultLogPageSize
	}
	if limit > maxLogPageSize {
		limit = maxLogPageSize
	}
	return s.logs.FindByOrganisationPaginated(ctx, orgID, offset, limit)
}
