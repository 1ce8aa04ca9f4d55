// Package workrequestrepo provides data transfer objects and mapping
// functions for work request persistence.
package workrequestrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/workrequest"
)

// WorkRequestDTO represents the database structure for persisting work
// requests. A null related order reference means the request concerns no
// specific order.
type WorkRequestDTO struct {
	ID                   int64  `gorm:"primaryKey;autoIncrement"`
	Kind                 string `gorm:"size:64"`
	SenderEnterpriseID   int64  `gorm:"index"`
	ReceiverEnterpriseID int64  `gorm:"index"`
	RelatedOrderID       *int64
	Status               string `gorm:"size:32"`
	Message              string
	CreatedAt            time.Time `gorm:"index"`
}

// TableName specifies the database table name for work request entities.
func (WorkRequestDTO) TableName() string {
	return "work_requests"
}

// fromDomain converts a work request aggregate to its database representation.
func fromDomain(request *workrequest.WorkRequest) WorkRequestDTO {
	var relatedOrderID *int64
	if id := request.RelatedOrderID(); id != nil {
		raw := id.Int64()
		relatedOrderID = &raw
	}

	return WorkRequestDTO{
		ID:                   request.ID().Int64(),
		Kind:                 request.Kind(),
		SenderEnterpriseID:   request.SenderEnterpriseID().Int64(),
		ReceiverEnterpriseID: request.ReceiverEnterpriseID().Int64(),
		RelatedOrderID:       relatedOrderID,
		Status:               request.Status().String(),
		Message:              request.Message(),
		CreatedAt:            request.CreatedAt(),
	}
}

// toDomain converts a database DTO to a work request aggregate.
func toDomain(dto WorkRequestDTO) (*workrequest.WorkRequest, error) {
	status, err := workrequest.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var relatedOrderID *kernel.ID
	if dto.RelatedOrderID != nil {
		id := kernel.ID(*dto.RelatedOrderID)
		relatedOrderID = &id
	}

	return workrequest.RestoreWorkRequest(
		kernel.ID(dto.ID),
		dto.Kind,
		kernel.ID(dto.SenderEnterpriseID),
		kernel.ID(dto.ReceiverEnterpriseID),
		relatedOrderID,
		status,
		dto.Message,
		dto.CreatedAt,
	)
}
