package queries

import (
	"database/sql"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

// OrderResponse represents one order row in a filtered listing. The delivery
// man reference is zero while unassigned.
type OrderResponse struct {
	ID              kernel.ID
	CustomerID      kernel.ID
	RestaurantID    kernel.ID
	DeliveryManID   kernel.ID
	Status          string
	CreatedAt       time.Time
	DeliveryAddress string
	Comment         string
}

const orderSelectColumns = `
		id,
		customer_id,
		restaurant_id,
		delivery_man_id,
		status,
		created_at,
		delivery_address,
		comment
`

// scanOrderRows drains a result set of order rows into responses.
func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var resp OrderResponse
		var deliveryManID sql.NullInt64

		err := rows.Scan(
			&resp.ID,
			&resp.CustomerID,
			&resp.RestaurantID,
			&deliveryManID,
			&resp.Status,
			&resp.CreatedAt,
			&resp.DeliveryAddress,
			&resp.Comment,
		)
		if err != nil {
			return nil, err
		}

		if deliveryManID.Valid {
			resp.DeliveryManID = kernel.ID(deliveryManID.Int64)
		}
		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
