package cart

import (
	"net/http"

	cartdto "github.com/angelmondragon/booklibrary/api/controllers/cart/dto"
	"github.com/angelmondragon/booklibrary/api/validators"
)

const defaultAddQuantity = 1

func decodeAddItem(r *http.Request) (bookID, quantity int, err error) {
	var payload cartdto.AddItemRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return 0, 0, err
	}
	quantity = defaultAddQuantity
	if payload.Quantity != nil {
		quantity = *payload.Quantity
	}
	return *payload.BookID, quantity, nil
}

func decodeRemoveItem(r *http.Request) (int, error) {
	var payload cartdto.RemoveItemRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return 0, err
	}
	return *payload.BookID, nil
}

func decodeUpdateQuantity(r *http.Request) (bookID, quantity int, err error) {
	var payload cartdto.UpdateQuantityRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return 0, 0, err
	}
	return *payload.BookID, *payload.Quantity, nil
}
