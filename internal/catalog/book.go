package catalog

import "github.com/shopspring/decimal"

// Book is an immutable catalog record.
type Book struct {
	ID              int             `json:"id"`
	Title           string          `json:"title"`
	Author          string          `json:"author"`
	Genre           string          `json:"genre"`
	PublicationYear int             `json:"publicationYear"` // negative values are BCE
	ISBN            string          `json:"isbn"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	ImageURL        string          `json:"imageUrl"`
}

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}
