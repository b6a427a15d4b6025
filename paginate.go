package simpleinput

// Page is one window of a paginated list.
type Page[T any] struct {
	Items     []T // items visible on this page
	PageCount int // ceil(len(items) / pageSize)
	HasNext   bool
	HasPrev   bool
}

// Paginate returns page number page (1-based) of items, pageSize items per
// page. Pages outside 1..PageCount have no items; keeping page in range is
// left to the caller. A pageSize < 1 yields no pages at all.
func Paginate[T any](items []T, pageSize, page int) Page[T] {
	if pageSize < 1 {
		return Page[T]{}
	}
	count := (len(items) + pageSize - 1) / pageSize
	p := Page[T]{
		PageCount: count,
		HasNext:   page < count,
		HasPrev:   page > 1,
	}
	start := (page - 1) * pageSize
	if start < 0 || start >= len(items) {
		return p
	}
	end := min(start+pageSize, len(items))
	p.Items = items[start:end:end]
	return p
}
