package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New(Options{PageSize: 10, SearchCacheSize: 8})
	require.NoError(t, err)
	return c
}

func ids(books []Book) []int {
	out := make([]int, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID)
	}
	return out
}

func TestReferenceBooksInIDOrder(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	all := c.All()
	require.Len(t, all, 30)
	for i, b := range all {
		assert.Equal(t, i+1, b.ID)
		assert.False(t, b.Price.IsNegative(), "book %d has a negative price", b.ID)
		assert.NotEmpty(t, b.Title)
	}

	odyssey, ok := c.ByID(15)
	require.True(t, ok)
	assert.Equal(t, -800, odyssey.PublicationYear)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	for _, term := range []string{"orwell", "ORWELL", "Orwell", " Orwell"} {
		assert.Equal(t, []int{2, 9}, ids(c.Search(term)), "term %q", term)
	}
}

func TestSearchMatchesEveryField(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	assert.Equal(t, []int{6}, ids(c.Search("wizard")))
	assert.Equal(t, []int{7, 8}, ids(c.Search("tolkien")))
	assert.Equal(t, []int{13, 24, 26}, ids(c.Search("gothic")))
	assert.Equal(t, []int{1}, ids(c.Search("mockingbird")))
}

func TestSearchBlankTermReturnsAll(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	assert.Len(t, c.Search(""), 30)
	assert.Len(t, c.Search("   \t"), 30)
}

func TestSearchKeepsSurroundingSpaces(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	assert.Equal(t, []int{9}, ids(c.Search("Farm")))
	assert.Empty(t, c.Search("Farm "))
	assert.Empty(t, c.Search("  orwell  "))
	assert.Equal(t, []int{9}, ids(c.Search("Farm")), "cached entry for the trimmed term is unaffected")
}

func TestSearchNoMatchIsEmpty(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	res := c.Search("zzzz-not-a-book")
	require.NotNil(t, res)
	assert.Empty(t, res)
}

func TestSearchResultsAreIsolatedFromCache(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	first := c.Search("orwell")
	first[0].Title = "mutated"

	second := c.Search("orwell")
	assert.Equal(t, "1984", second[0].Title)

	book, ok := c.ByID(2)
	require.True(t, ok)
	assert.Equal(t, "1984", book.Title)
}

func TestByIDUnknown(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	_, ok := c.ByID(31)
	assert.False(t, ok)
	_, ok = c.ByID(0)
	assert.False(t, ok)
}

func TestListPages(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)

	first := c.List("", 1)
	assert.Equal(t, 30, first.TotalItems)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 1, first.Page)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, ids(first.Items))

	third := c.List("", 3)
	assert.Equal(t, []int{21, 22, 23, 24, 25, 26, 27, 28, 29, 30}, ids(third.Items))

	past := c.List("", 4)
	assert.Empty(t, past.Items)
	assert.Equal(t, 3, past.TotalPages)

	clamped := c.List("", 0)
	assert.Equal(t, 1, clamped.Page)
	assert.Len(t, clamped.Items, 10)
}

func TestListFilteredPaging(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	page := c.List("fantasy", 1)
	assert.Equal(t, 4, page.TotalItems)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, []int{6, 7, 8, 11}, ids(page.Items))

	empty := c.List("zzzz", 1)
	assert.Equal(t, 0, empty.TotalItems)
	assert.Equal(t, 0, empty.TotalPages)
	assert.Empty(t, empty.Items)
}

func TestListTwentyFiveBookPaging(t *testing.T) {
	t.Parallel()

	books := make([]Book, 25)
	for i := range books {
		books[i] = Book{ID: i + 1, Title: "Book", Price: decimal.NewFromInt(1)}
	}
	c, err := newCatalog(books, Options{PageSize: 10})
	require.NoError(t, err)

	page := c.List("", 3)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, []int{21, 22, 23, 24, 25}, ids(page.Items))
}
