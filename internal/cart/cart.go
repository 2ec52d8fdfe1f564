package cart

import (
	"github.com/angelmondragon/booklibrary/internal/catalog"
	"github.com/shopspring/decimal"
)

// Item is a cart line. Book fields are snapshotted when the line is created.
type Item struct {
	BookID   int             `json:"bookId"`
	Title    string          `json:"title"`
	Author   string          `json:"author"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"imageUrl"`
	Quantity int             `json:"quantity"`
}

// LineTotal is Price × Quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart holds at most one line per book, in insertion order.
// A Cart is not safe for concurrent use; the Store serialises access per session.
type Cart struct {
	Items []Item `json:"items"`
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{Items: []Item{}}
}

// AddItem increases the quantity of an existing line or appends a new one.
// Quantities are not validated here.
func (c *Cart) AddItem(book catalog.Book, quantity int) {
	if i := c.indexOf(book.ID); i >= 0 {
		c.Items[i].Quantity += quantity
		return
	}
	c.Items = append(c.Items, Item{
		BookID:   book.ID,
		Title:    book.Title,
		Author:   book.Author,
		Price:    book.Price,
		ImageURL: book.ImageURL,
		Quantity: quantity,
	})
}

// RemoveItem deletes the line for bookID, if any.
func (c *Cart) RemoveItem(bookID int) {
	i := c.indexOf(bookID)
	if i < 0 {
		return
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
}

// UpdateQuantity sets the absolute quantity of an existing line.
// A quantity of zero or less removes the line; unknown books are ignored.
func (c *Cart) UpdateQuantity(bookID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(bookID)
		return
	}
	if i := c.indexOf(bookID); i >= 0 {
		c.Items[i].Quantity = quantity
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = []Item{}
}

// Item returns the line for bookID.
func (c *Cart) Item(bookID int) (Item, bool) {
	if i := c.indexOf(bookID); i >= 0 {
		return c.Items[i], true
	}
	return Item{}, false
}

// Len is the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.Items)
}

// TotalItems sums the quantities of every line.
func (c *Cart) TotalItems() int {
	total := 0
	for _, it := range c.Items {
		total += it.Quantity
	}
	return total
}

// TotalPrice sums the line totals.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// Clone returns a deep copy. A nil cart clones to an empty one.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return New()
	}
	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	return &Cart{Items: items}
}

func (c *Cart) indexOf(bookID int) int {
	for i, it := range c.Items {
		if it.BookID == bookID {
			return i
		}
	}
	return -1
}
