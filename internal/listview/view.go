// Package listview keeps the state of one paginated, filtered admin table.
//
// Every fetch is numbered. Starting a fetch cancels the one in flight, and
// a result whose number is no longer the latest is dropped, so responses
// that arrive out of order cannot overwrite newer rows.
package listview

import (
	"context"
	"errors"
	"sync"

	"digigrow-web/internal/core/domain"
)

// DefaultPageSize is the page size of every admin table.
const DefaultPageSize = 10

// ErrSuperseded is returned by a fetch whose result was discarded because a
// newer fetch started after it.
var ErrSuperseded = errors.New("listview: fetch superseded")

// Fetcher loads one page for filter.
type Fetcher[F comparable, T any] func(ctx context.Context, filter F, page, size int) (domain.Page[T], error)

// View is safe for concurrent use.
type View[F comparable, T any] struct {
	fetch Fetcher[F, T]
	size  int

	mu            sync.Mutex
	filter        F
	page          int
	rows          []T
	totalPages    int
	totalElements int64
	loaded        bool
	loading       bool
	seq           uint64
	cancel        context.CancelFunc
}

// New creates a view on filter. Nothing is fetched until the first call to
// Refresh, SetFilter or SetPage. A non-positive size means DefaultPageSize.
func New[F comparable, T any](filter F, fetch Fetcher[F, T], size int) *View[F, T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &View[F, T]{fetch: fetch, size: size, filter: filter}
}

// SetFilter switches the filter, resets the page to zero and fetches once.
func (v *View[F, T]) SetFilter(ctx context.Context, filter F) error {
	v.mu.Lock()
	v.filter = filter
	v.page = 0
	v.mu.Unlock()
	return v.load(ctx)
}

// SetPage moves to page p, clamped at zero, and fetches it.
func (v *View[F, T]) SetPage(ctx context.Context, p int) error {
	if p < 0 {
		p = 0
	}
	v.mu.Lock()
	v.page = p
	v.mu.Unlock()
	return v.load(ctx)
}

// Refresh refetches the current page.
func (v *View[F, T]) Refresh(ctx context.Context) error {
	return v.load(ctx)
}

// Apply runs mutate and, when it succeeds, refetches the current page. A
// failed mutation leaves the rows as they were.
func (v *View[F, T]) Apply(ctx context.Context, mutate func(ctx context.Context) error) error {
	if err := mutate(ctx); err != nil {
		return err
	}
	return v.load(ctx)
}

func (v *View[F, T]) load(ctx context.Context) error {
	v.mu.Lock()
	v.seq++
	seq := v.seq
	if v.cancel != nil {
		v.cancel()
	}
	fctx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	filter, page := v.filter, v.page
	v.loading = true
	v.mu.Unlock()

	p, err := v.fetch(fctx, filter, page, v.size)
	cancel()

	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.seq {
		return ErrSuperseded
	}
	v.loading = false
	v.cancel = nil
	if err != nil {
		return err
	}
	v.rows = p.Content
	v.totalPages = p.TotalPages
	v.totalElements = p.TotalElements
	v.loaded = true
	return nil
}

// Snapshot is a consistent copy of the view state for rendering.
type Snapshot[F comparable, T any] struct {
	Filter        F
	Page          int
	Size          int
	Rows          []T
	TotalPages    int
	TotalElements int64
	Loading       bool
	Loaded        bool
}

func (v *View[F, T]) Snapshot() Snapshot[F, T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	rows := make([]T, len(v.rows))
	copy(rows, v.rows)
	return Snapshot[F, T]{
		Filter:        v.filter,
		Page:          v.page,
		Size:          v.size,
		Rows:          rows,
		TotalPages:    max(v.totalPages, 1),
		TotalElements: v.totalElements,
		Loading:       v.loading,
		Loaded:        v.loaded,
	}
}

// ShowPagination reports whether there is more than one page.
func (s Snapshot[F, T]) ShowPagination() bool { return s.TotalPages > 1 }

func (s Snapshot[F, T]) HasPrev() bool { return s.Page > 0 }

func (s Snapshot[F, T]) HasNext() bool { return s.Page+1 < s.TotalPages }

// DisplayPage is the one-based page number shown to the admin.
func (s Snapshot[F, T]) DisplayPage() int { return s.Page + 1 }
