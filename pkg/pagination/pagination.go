package pagination

const (
	// DefaultPageSize is the standard page size when none is configured.
	DefaultPageSize = 10
	// MaxPageSize caps how many rows any page may carry.
	MaxPageSize = 100
)

// Params holds page-number pagination inputs from controllers or services.
type Params struct {
	Page     int
	PageSize int
}

// Window is the resolved slice bounds for one page of a result set.
type Window struct {
	Page       int
	PageSize   int
	Offset     int
	End        int
	TotalItems int
	TotalPages int
}

// NormalizePageSize enforces the default and maximum page sizes.
func NormalizePageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// NormalizePage clamps the page number to the first page.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// TotalPages returns ceil(total/size), zero for an empty set.
func TotalPages(total, size int) int {
	size = NormalizePageSize(size)
	if total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Resolve computes the offsets of the requested page over total items.
// A page past the end yields an empty window (Offset == End == total).
func Resolve(params Params, total int) Window {
	size := NormalizePageSize(params.PageSize)
	page := NormalizePage(params.Page)
	if total < 0 {
		total = 0
	}

	offset := (page - 1) * size
	if offset > total {
		offset = total
	}
	end := offset + size
	if end > total {
		end = total
	}
	return Window{
		Page:       page,
		PageSize:   size,
		Offset:     offset,
		End:        end,
		TotalItems: total,
		TotalPages: TotalPages(total, size),
	}
}

// Slice returns the page of items selected by params along with its window.
func Slice[T any](items []T, params Params) ([]T, Window) {
	w := Resolve(params, len(items))
	page := make([]T, w.End-w.Offset)
	copy(page, items[w.Offset:w.End])
	return page, w
}
