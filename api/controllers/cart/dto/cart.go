package dto

import "github.com/shopspring/decimal"

// AddItemRequest is the body of POST /cart/items. Quantity defaults to 1.
type AddItemRequest struct {
	BookID   *int `json:"bookId" validate:"required"`
	Quantity *int `json:"quantity"`
}

// RemoveItemRequest is the body of POST /cart/remove.
type RemoveItemRequest struct {
	BookID *int `json:"bookId" validate:"required"`
}

// UpdateQuantityRequest is the body of POST /cart/quantity. Range checks
// belong to the cart service so rejections keep the success=false shape.
type UpdateQuantityRequest struct {
	BookID   *int `json:"bookId" validate:"required"`
	Quantity *int `json:"quantity" validate:"required"`
}

// CartItem is one line of the cart view.
type CartItem struct {
	BookID    int             `json:"bookId"`
	Title     string          `json:"title"`
	Author    string          `json:"author"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"imageUrl"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// Cart is the full cart view.
type Cart struct {
	Items      []CartItem      `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}
