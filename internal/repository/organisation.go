// internal/repository/organisation.go
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

type OrganisationRepositoryIface interface {
	FindByName(ctx context.Context, name string) (*model.Organisation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organisation, error)
	CreateWithAdmin(ctx context.Context, org *model.Organisation, admin *model.User, entry *model.Log) error
}

type OrganisationRepository struct {
	db *gorm.DB
}

func NewOrganisationRepository(db *gorm.DB) *OrganisationRepository {
	return &OrganisationRepository{db: db}
}

func (r *OrganisationRepository) FindByName(ctx context.Context, name string) (*model.Organisation, error) {
	var org model.Organisation
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding organisation: %w", err)
	}
	return &org, nil
}

func (r *OrganisationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organisation, error) {
	var org model.Organisation
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding organisation: %w", err)
	}
	return &org, nil
}

// CreateWithAdmin creates the organisation, its first admin user and the
// registration audit row in one transaction. Unique indexes on the org
// name and user email backstop concurrent registrations; a violation
// surfaces as the matching domain error rather than a raw pg error.
func (r *OrganisationRepository) CreateWithAdmin(ctx context.Context, org *model.Organisation, admin *model.User, entry *model.Log) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			if isUniqueViolation(err, "idx_organisations_name") {
				return domain.ErrOrganisationExists
			}
			return fmt.Errorf("creating organisation: %w", err)
		}

		admin.OrganisationID = org.ID
		if err := tx.Create(admin).Error; err != nil {
			if isUniqueViolation(err, "idx_users_email") {
				return domain.ErrEmailAlreadyExists
			}
			return fmt.Errorf("creating admin user: %w", err)
		}

		entry.OrganisationID = org.ID
		entry.UserID = &admin.ID
		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("creating audit entry: %w", err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrOrganisationExists) || errors.Is(err, domain.ErrEmailAlreadyExists) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
