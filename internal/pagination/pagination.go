package pagination

import "strconv"

// DefaultPageSize is the page size used by every feed in the service.
const DefaultPageSize = 10

// Page is one slice of an ordered result set.
type Page[T any] struct {
	Items     []T
	Number    int
	Size      int
	Total     int
	PageCount int
}

// ParsePage interprets a raw page query parameter. Missing, malformed
// or non-positive values fall back to page 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Paginate slices an ordered result set into a fixed-size page. Page
// numbers are 1-based; out-of-range numbers clamp to the last valid
// page, and an empty input yields a single empty page.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size < 1 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	pageCount := (total + size - 1) / size
	if pageCount == 0 {
		pageCount = 1
	}
	if page > pageCount {
		page = pageCount
	}

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return Page[T]{
		Items:     items[start:end],
		Number:    page,
		Size:      size,
		Total:     total,
		PageCount: pageCount,
	}
}
