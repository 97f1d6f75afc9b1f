// internal/repository/log.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/opshive/hrms/internal/model"
)

type LogRepositoryIface interface {
	Create(ctx context.Context, entry *model.Log) error
	FindByOrganisationPaginated(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]*model.Log, int64, error)
}

type LogRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{db: db}
}

func (r *LogRepository) Create(ctx context.Context, entry *model.Log) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("creating log entry: %w", err)
	}
	return nil
}

// FindByOrganisationPaginated returns the newest entries first. Log rows
// are append-only so there is no Update or Delete here.
func (r *LogRepository) FindByOrganisationPaginated(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]*model.Log, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Log{}).Where("organisation_id = ?", orgID).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting log entries: %w", err)
	}

	var entries []*model.Log
	if err := r.db.WithContext(ctx).
		Where("organisation_id = ?", orgID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("finding log entries: %w", err)
	}

	return entries, count, nil
}
