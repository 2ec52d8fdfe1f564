package catalog

import (
	"strings"

	"github.com/angelmondragon/booklibrary/pkg/pagination"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSearchCacheSize bounds the memoised search results when no size is configured.
const DefaultSearchCacheSize = 256

// Page is one page of search results.
type Page struct {
	Items      []Book
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
}

// Catalog serves the immutable book set. It is safe for concurrent use.
type Catalog struct {
	books    []Book
	byID     map[int]int
	pageSize int
	searches *lru.Cache[string, []Book]
}

// Options configures a Catalog.
type Options struct {
	PageSize        int
	SearchCacheSize int
}

// New builds a catalog over the built-in reference books.
func New(opts Options) (*Catalog, error) {
	return newCatalog(referenceBooks, opts)
}

func newCatalog(books []Book, opts Options) (*Catalog, error) {
	size := opts.SearchCacheSize
	if size <= 0 {
		size = DefaultSearchCacheSize
	}
	cache, err := lru.New[string, []Book](size)
	if err != nil {
		return nil, err
	}

	owned := make([]Book, len(books))
	copy(owned, books)
	index := make(map[int]int, len(owned))
	for i, b := range owned {
		index[b.ID] = i
	}

	return &Catalog{
		books:    owned,
		byID:     index,
		pageSize: pagination.NormalizePageSize(opts.PageSize),
		searches: cache,
	}, nil
}

// PageSize reports the number of books per page.
func (c *Catalog) PageSize() int {
	return c.pageSize
}

// All returns every book in id order.
func (c *Catalog) All() []Book {
	out := make([]Book, len(c.books))
	copy(out, c.books)
	return out
}

// ByID looks up a single book.
func (c *Catalog) ByID(id int) (Book, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Book{}, false
	}
	return c.books[i], true
}

// Search returns the books whose title, author, genre or description contain
// term, ignoring case. A blank term matches everything; any other term is
// matched as given, surrounding spaces included.
func (c *Catalog) Search(term string) []Book {
	if strings.TrimSpace(term) == "" {
		return c.All()
	}
	key := strings.ToLower(term)

	if cached, ok := c.searches.Get(key); ok {
		return cloneBooks(cached)
	}

	matches := make([]Book, 0)
	for _, b := range c.books {
		if matchesTerm(b, key) {
			matches = append(matches, b)
		}
	}
	c.searches.Add(key, matches)
	return cloneBooks(matches)
}

// List returns the requested page of Search(term). Pages below 1 are treated as 1.
func (c *Catalog) List(term string, page int) Page {
	items, w := pagination.Slice(c.Search(term), pagination.Params{Page: page, PageSize: c.pageSize})
	return Page{
		Items:      items,
		Page:       w.Page,
		PageSize:   w.PageSize,
		TotalItems: w.TotalItems,
		TotalPages: w.TotalPages,
	}
}

func matchesTerm(b Book, lowered string) bool {
	return strings.Contains(strings.ToLower(b.Title), lowered) ||
		strings.Contains(strings.ToLower(b.Author), lowered) ||
		strings.Contains(strings.ToLower(b.Genre), lowered) ||
		strings.Contains(strings.ToLower(b.Description), lowered)
}

func cloneBooks(in []Book) []Book {
	out := make([]Book, len(in))
	copy(out, in)
	return out
}
