package apiclient

import "time"

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

type ProductInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

// ProductPatch updates only the non-nil fields.
type ProductPatch struct {
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// ClientRecord is a customer as stored by the backend.
type ClientRecord struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type ClientInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// ClientPatch updates only the non-nil fields.
type ClientPatch struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

type ProductRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type OrderItem struct {
	ID       int64      `json:"id"`
	Product  ProductRef `json:"product"`
	Quantity int        `json:"quantity"`
	Price    float64    `json:"price"`
	Subtotal float64    `json:"subtotal"`
}

type Order struct {
	ID         int64       `json:"id"`
	Date       string      `json:"date"`
	Customer   Customer    `json:"customer"`
	ItemsCount int         `json:"itemsCount"`
	Total      float64     `json:"total"`
	Items      []OrderItem `json:"items"`
}

type OrderLine struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type OrderInput struct {
	CustomerID int64       `json:"customerId"`
	Items      []OrderLine `json:"items"`
}

// OrderLineUpdate edits an existing line when ID is set, or adds one.
// The backend expects string identifiers on this endpoint.
type OrderLineUpdate struct {
	ID        *int64 `json:"id,omitempty"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type OrderUpdate struct {
	ClientID string            `json:"clientId,omitempty"`
	Items    []OrderLineUpdate `json:"items,omitempty"`
}

// ItemInput adds or edits a line through the nested /orders/{id}/items routes.
type ItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type OrderItemInput struct {
	OrderID   int64 `json:"orderId"`
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type OrderItemUpdate struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}
