package enterpriserepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/tenant"
	"fooddelivery/internal/pkg/errs"
)

// GormEnterpriseRepository implements EnterpriseRepository using GORM.
type GormEnterpriseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormEnterpriseRepository creates a new GORM enterprise repository.
func NewGormEnterpriseRepository(db *gorm.DB, tracker aggregateTracker) *GormEnterpriseRepository {
	return &GormEnterpriseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new enterprise and assigns the generated ID back onto the aggregate.
func (r *GormEnterpriseRepository) Add(ctx context.Context, aggregate *tenant.Enterprise) error {
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

// Update saves an existing enterprise to the database.
func (r *GormEnterpriseRepository) Update(ctx context.Context, aggregate *tenant.Enterprise) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&EnterpriseDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "kind").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("enterprise", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an enterprise by ID.
func (r *GormEnterpriseRepository) Get(ctx context.Context, id kernel.ID) (*tenant.Enterprise, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EnterpriseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("enterprise", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an enterprise by ID.
func (r *GormEnterpriseRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&EnterpriseDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("enterprise", id.String())
	}

	return nil
}
