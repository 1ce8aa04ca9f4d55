package http

import "time"

// Error is the uniform error payload. Messages never carry storage detail;
// those stay in the server log.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LoginRequest carries raw credentials. Whitespace is tolerated and trimmed
// during authentication.
type LoginRequest struct {
	Username string `json:"username"`
	Secret   string `json:"secret"`
}

// LoginResponse returns the minted session token and the signed-in identity.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// User is the outward representation of an account. Credentials never appear.
type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Role           string `json:"role"`
	Name           string `json:"name"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	OrganizationID int64  `json:"organizationId,omitempty"`
}

// NewUser carries the fields for creating or replacing an account.
type NewUser struct {
	Username       string `json:"username"`
	Secret         string `json:"secret"`
	Role           string `json:"role"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	OrganizationID int64  `json:"organizationId"`
}

// Enterprise is the outward representation of an enterprise.
type Enterprise struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// NewEnterprise carries the fields for creating or replacing an enterprise.
type NewEnterprise struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// Organization is the outward representation of an organization.
type Organization struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Kind         string `json:"kind"`
	EnterpriseID int64  `json:"enterpriseId"`
}

// NewOrganization carries the fields for creating or replacing an organization.
type NewOrganization struct {
	Name         string `json:"name"`
	Kind         string `json:"kind"`
	EnterpriseID int64  `json:"enterpriseId"`
}

// Order is the outward representation of an order.
type Order struct {
	ID              int64     `json:"id"`
	CustomerID      int64     `json:"customerId"`
	RestaurantID    int64     `json:"restaurantId"`
	DeliveryManID   int64     `json:"deliveryManId,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	DeliveryAddress string    `json:"deliveryAddress"`
	Comment         string    `json:"comment,omitempty"`
}

// NewOrder carries the fields for placing an order.
type NewOrder struct {
	CustomerID      int64          `json:"customerId"`
	RestaurantID    int64          `json:"restaurantId"`
	DeliveryAddress string         `json:"deliveryAddress"`
	Comment         string         `json:"comment"`
	Items           []NewOrderLine `json:"items"`
}

// NewOrderLine pairs a menu item with a quantity.
type NewOrderLine struct {
	MenuItemID int64 `json:"menuItemId"`
	Quantity   int   `json:"quantity"`
}

// OrderStatusUpdate carries a status transition request. DeliveryManID of
// zero means no assignment change.
type OrderStatusUpdate struct {
	Status        string `json:"status"`
	DeliveryManID int64  `json:"deliveryManId"`
}

// OrderItem is the outward representation of an order's snapshot line.
type OrderItem struct {
	ID           int64   `json:"id"`
	OrderID      int64   `json:"orderId"`
	MenuItemName string  `json:"menuItemName"`
	UnitPrice    float64 `json:"unitPrice"`
	Quantity     int     `json:"quantity"`
}

// MenuItem is the outward representation of a dish.
type MenuItem struct {
	ID           int64   `json:"id"`
	RestaurantID int64   `json:"restaurantId"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Description  string  `json:"description,omitempty"`
}

// NewMenuItem carries the fields for creating or replacing a dish.
type NewMenuItem struct {
	RestaurantID int64   `json:"restaurantId"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
}

// WorkRequest is the outward representation of an inter-enterprise request.
type WorkRequest struct {
	ID                   int64     `json:"id"`
	Kind                 string    `json:"kind"`
	SenderEnterpriseID   int64     `json:"senderEnterpriseId"`
	ReceiverEnterpriseID int64     `json:"receiverEnterpriseId"`
	RelatedOrderID       int64     `json:"relatedOrderId,omitempty"`
	Status               string    `json:"status"`
	Message              string    `json:"message,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
}

// NewWorkRequest carries the fields for sending a work request.
type NewWorkRequest struct {
	Kind                 string `json:"kind"`
	SenderEnterpriseID   int64  `json:"senderEnterpriseId"`
	ReceiverEnterpriseID int64  `json:"receiverEnterpriseId"`
	RelatedOrderID       int64  `json:"relatedOrderId"`
	Message              string `json:"message"`
}

// WorkRequestStatusUpdate carries a status transition request.
type WorkRequestStatusUpdate struct {
	Status string `json:"status"`
}
