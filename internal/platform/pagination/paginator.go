package pagination

import (
	"net/url"
	"slices"
	"strconv"
)

// Result holds one page plus the cursors and Link header for navigating
// from it.
type Result[T any] struct {
	Items      []T
	Total      int
	LinkHeader string
	NextCursor string
	PrevCursor string
}

// Paginate applies cursor-based pagination to an already-filtered slice.
// The cursor value is the ID of the last item on the previous page; an
// unknown value restarts from the beginning of the slice.
func Paginate[T any](
	items []T,
	cursor Cursor,
	limit int,
	cursorType string,
	getID func(T) string,
	baseURL string,
	query url.Values,
) Result[T] {
	total := len(items)

	start := 0
	if cursor.Value != "" {
		if i := slices.IndexFunc(items, func(item T) bool {
			return getID(item) == cursor.Value
		}); i >= 0 {
			start = i + 1
		}
	}

	end := min(start+limit, total)
	page := items[start:end]

	var next string
	if end < total && len(page) > 0 {
		next = Cursor{Type: cursorType, Value: getID(page[len(page)-1])}.Encode()
	}

	var prev string
	switch {
	case start == 0:
		// first page, nothing before it
	case start <= limit:
		// previous page is the first one; an empty value means "from the top"
		prev = Cursor{Type: cursorType}.Encode()
	default:
		prev = Cursor{Type: cursorType, Value: getID(items[start-1-limit])}.Encode()
	}

	q := cloneValues(query)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	return Result[T]{
		Items:      page,
		Total:      total,
		LinkHeader: BuildLinkHeader(baseURL, q, next, prev),
		NextCursor: next,
		PrevCursor: prev,
	}
}
