package organizationrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/tenant"
	"fooddelivery/internal/pkg/errs"
)

// GormOrganizationRepository implements OrganizationRepository using GORM.
type GormOrganizationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormOrganizationRepository creates a new GORM organization repository.
func NewGormOrganizationRepository(db *gorm.DB, tracker aggregateTracker) *GormOrganizationRepository {
	return &GormOrganizationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new organization and assigns the generated ID back onto the aggregate.
func (r *GormOrganizationRepository) Add(ctx context.Context, aggregate *tenant.Organization) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing organization to the database.
func (r *GormOrganizationRepository) Update(ctx context.Context, aggregate *tenant.Organization) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrganizationDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "kind", "enterprise_id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("organization", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an organization by ID.
func (r *GormOrganizationRepository) Get(ctx context.Context, id kernel.ID) (*tenant.Organization, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrganizationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("organization", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an organization by ID.
func (r *GormOrganizationRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrganizationDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("organization", id.String())
	}

	return nil
}
