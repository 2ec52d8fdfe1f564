package cart

import (
	cartdto "github.com/angelmondragon/booklibrary/api/controllers/cart/dto"
	cartsvc "github.com/angelmondragon/booklibrary/internal/cart"
)

func newCartView(c *cartsvc.Cart) cartdto.Cart {
	items := make([]cartdto.CartItem, 0, c.Len())
	for _, item := range c.Items {
		items = append(items, cartdto.CartItem{
			BookID:    item.BookID,
			Title:     item.Title,
			Author:    item.Author,
			Price:     item.Price,
			ImageURL:  item.ImageURL,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal(),
		})
	}
	return cartdto.Cart{
		Items:      items,
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}
