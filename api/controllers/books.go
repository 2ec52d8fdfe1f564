package controllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/booklibrary/api/responses"
	"github.com/angelmondragon/booklibrary/api/validators"
	"github.com/angelmondragon/booklibrary/internal/catalog"
	pkgerrors "github.com/angelmondragon/booklibrary/pkg/errors"
	"github.com/angelmondragon/booklibrary/pkg/logger"
	"github.com/angelmondragon/booklibrary/pkg/types"
)

// BookCatalog is the read side of the catalog used by the book handlers.
type BookCatalog interface {
	List(term string, page int) catalog.Page
	ByID(id int) (catalog.Book, bool)
}

type booksPage struct {
	Items      []catalog.Book `json:"items"`
	SearchTerm string         `json:"searchTerm"`
}

// BooksList serves one page of the catalog filtered by the optional search term.
func BooksList(books BookCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if books == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		page, err := validators.ParseQueryInt(r, "page", 1, 1, math.MaxInt32)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		term := validators.QueryString(r, "search")

		result := books.List(term, page)
		responses.WriteList(w, booksPage{Items: result.Items, SearchTerm: term}, types.PageMeta{
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalItems: result.TotalItems,
			TotalPages: result.TotalPages,
		})
	}
}

// BookGet serves a single book by id.
func BookGet(books BookCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if books == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		id, err := strconv.Atoi(chi.URLParam(r, "bookId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid book id"))
			return
		}
		book, ok := books.ByID(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "Book not found"))
			return
		}
		responses.WriteSuccess(w, book)
	}
}
