package workrequestrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/workrequest"
	"fooddelivery/internal/pkg/errs"
)

// GormWorkRequestRepository implements WorkRequestRepository using GORM.
type GormWorkRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormWorkRequestRepository creates a new GORM work request repository.
func NewGormWorkRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkRequestRepository {
	return &GormWorkRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new work request and assigns the generated ID back onto the aggregate.
func (r *GormWorkRequestRepository) Add(ctx context.Context, aggregate *workrequest.WorkRequest) error {
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

// Update saves an existing work request to the database.
func (r *GormWorkRequestRepository) Update(ctx context.Context, aggregate *workrequest.WorkRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&WorkRequestDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "message").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("work request", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a work request by ID.
func (r *GormWorkRequestRepository) Get(ctx context.Context, id kernel.ID) (*workrequest.WorkRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("work request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
