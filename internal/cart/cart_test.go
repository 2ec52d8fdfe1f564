package cart

import (
	"testing"

	"github.com/angelmondragon/booklibrary/internal/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBook(id int, price string) catalog.Book {
	return catalog.Book{
		ID:     id,
		Title:  "Book",
		Author: "Author",
		Price:  decimal.RequireFromString(price),
	}
}

func TestAddItemMergesQuantities(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ q1, q2 int }{{1, 1}, {2, 3}, {10, 1}} {
		c := New()
		c.AddItem(testBook(1, "9.99"), tc.q1)
		c.AddItem(testBook(1, "9.99"), tc.q2)

		require.Equal(t, 1, c.Len())
		item, ok := c.Item(1)
		require.True(t, ok)
		assert.Equal(t, tc.q1+tc.q2, item.Quantity)
	}
}

func TestAddItemSnapshotsBook(t *testing.T) {
	t.Parallel()

	book := catalog.Book{ID: 7, Title: "The Hobbit", Author: "J.R.R. Tolkien", Price: decimal.RequireFromString("11.99"), ImageURL: "/images/books/7.jpg"}
	c := New()
	c.AddItem(book, 1)

	book.Price = decimal.RequireFromString("99")
	c.AddItem(book, 1)

	item, _ := c.Item(7)
	assert.Equal(t, "The Hobbit", item.Title)
	assert.Equal(t, "/images/books/7.jpg", item.ImageURL)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("11.99")))
}

func TestAddItemKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	c := New()
	c.AddItem(testBook(3, "1"), 1)
	c.AddItem(testBook(1, "1"), 1)
	c.AddItem(testBook(2, "1"), 1)
	c.AddItem(testBook(3, "1"), 1)

	got := []int{}
	for _, it := range c.Items {
		got = append(got, it.BookID)
	}
	assert.Equal(t, []int{3, 1, 2}, got)
}

func TestUpdateQuantityNonPositiveRemoves(t *testing.T) {
	t.Parallel()

	for _, q := range []int{0, -1, -50} {
		viaUpdate := New()
		viaUpdate.AddItem(testBook(1, "5"), 2)
		viaUpdate.AddItem(testBook(2, "5"), 1)
		viaUpdate.UpdateQuantity(1, q)

		viaRemove := New()
		viaRemove.AddItem(testBook(1, "5"), 2)
		viaRemove.AddItem(testBook(2, "5"), 1)
		viaRemove.RemoveItem(1)

		assert.Equal(t, viaRemove.Items, viaUpdate.Items, "quantity %d", q)
	}
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	t.Parallel()

	c := New()
	c.AddItem(testBook(1, "5"), 2)
	c.UpdateQuantity(1, 7)

	item, _ := c.Item(1)
	assert.Equal(t, 7, item.Quantity)
}

func TestAbsentBookLeavesItemsUnchanged(t *testing.T) {
	t.Parallel()

	c := New()
	c.AddItem(testBook(1, "5"), 2)
	c.AddItem(testBook(2, "3.50"), 1)
	before := c.Clone().Items

	c.RemoveItem(99)
	assert.Equal(t, before, c.Items)

	c.UpdateQuantity(99, 4)
	assert.Equal(t, before, c.Items)

	c.UpdateQuantity(99, 0)
	assert.Equal(t, before, c.Items)
}

func TestTotals(t *testing.T) {
	t.Parallel()

	c := New()
	assert.Equal(t, 0, c.TotalItems())
	assert.True(t, c.TotalPrice().IsZero())

	c.AddItem(testBook(1, "12.99"), 2)
	c.AddItem(testBook(2, "0.10"), 3)
	assert.Equal(t, 5, c.TotalItems())
	assert.Equal(t, "26.28", c.TotalPrice().StringFixed(2))

	c.UpdateQuantity(1, 1)
	assert.Equal(t, 4, c.TotalItems())
	assert.Equal(t, "13.29", c.TotalPrice().StringFixed(2))

	item, _ := c.Item(2)
	assert.Equal(t, "0.30", item.LineTotal().StringFixed(2))
}

func TestClear(t *testing.T) {
	t.Parallel()

	c := New()
	c.AddItem(testBook(1, "12.99"), 2)
	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.TotalItems())
	assert.True(t, c.TotalPrice().IsZero())
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	c := New()
	c.AddItem(testBook(1, "1"), 1)
	clone := c.Clone()
	clone.UpdateQuantity(1, 9)
	clone.AddItem(testBook(2, "1"), 1)

	item, _ := c.Item(1)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, 1, c.Len())

	var nilCart *Cart
	assert.Equal(t, 0, nilCart.Clone().Len())
}
