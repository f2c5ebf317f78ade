package listview_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digigrow-web/internal/core/domain"
	"digigrow-web/internal/listview"
)

type call struct {
	filter string
	page   int
	size   int
}

type recorder struct {
	mu    sync.Mutex
	calls []call
	pages map[string]domain.Page[int]
	err   error
}

func (r *recorder) fetch(_ context.Context, filter string, page, size int) (domain.Page[int], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call{filter, page, size})
	if r.err != nil {
		return domain.Page[int]{}, r.err
	}
	return r.pages[filter], nil
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func TestSetFilter_ResetsPageAndFetchesOnce(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{pages: map[string]domain.Page[int]{
		"":        {Content: []int{1, 2}, TotalPages: 5},
		"PENDING": {Content: []int{3}, TotalPages: 1},
	}}
	v := listview.New[string, int]("", rec.fetch, 0)

	require.NoError(t, v.SetPage(ctx, 3))
	require.Equal(t, 1, rec.count())

	require.NoError(t, v.SetFilter(ctx, "PENDING"))

	assert.Equal(t, 2, rec.count())
	assert.Equal(t, call{"PENDING", 0, listview.DefaultPageSize}, rec.calls[1])
	snap := v.Snapshot()
	assert.Equal(t, 0, snap.Page)
	assert.Equal(t, "PENDING", snap.Filter)
	assert.Equal(t, []int{3}, snap.Rows)
}

func TestSnapshot_Pagination(t *testing.T) {
	tests := []struct {
		name       string
		page       domain.Page[int]
		wantRows   int
		wantPaging bool
		wantTotal  int
	}{
		{name: "single page", page: domain.Page[int]{Content: []int{1, 2, 3}, TotalPages: 1}, wantRows: 3, wantTotal: 1},
		{name: "empty", page: domain.Page[int]{TotalPages: 0}, wantRows: 0, wantTotal: 1},
		{name: "many pages", page: domain.Page[int]{Content: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, TotalPages: 4}, wantRows: 10, wantPaging: true, wantTotal: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{pages: map[string]domain.Page[int]{"": tt.page}}
			v := listview.New[string, int]("", rec.fetch, 10)
			require.NoError(t, v.Refresh(context.Background()))

			snap := v.Snapshot()
			assert.Len(t, snap.Rows, tt.wantRows)
			assert.Equal(t, tt.wantPaging, snap.ShowPagination())
			assert.Equal(t, tt.wantTotal, snap.TotalPages)
			assert.True(t, snap.Loaded)
			assert.False(t, snap.HasPrev())
			assert.Equal(t, tt.wantPaging, snap.HasNext())
			assert.Equal(t, 1, snap.DisplayPage())
		})
	}
}

func TestSetPage_ClampsAtZero(t *testing.T) {
	rec := &recorder{pages: map[string]domain.Page[int]{"": {TotalPages: 2}}}
	v := listview.New[string, int]("", rec.fetch, 10)

	require.NoError(t, v.SetPage(context.Background(), -4))
	assert.Equal(t, 0, rec.calls[0].page)
}

func TestFetchError_KeepsLastSnapshot(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{pages: map[string]domain.Page[int]{"": {Content: []int{1}, TotalPages: 1}}}
	v := listview.New[string, int]("", rec.fetch, 10)
	require.NoError(t, v.Refresh(ctx))

	rec.err = errors.New("boom")
	require.Error(t, v.Refresh(ctx))

	snap := v.Snapshot()
	assert.Equal(t, []int{1}, snap.Rows)
	assert.False(t, snap.Loading)
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{pages: map[string]domain.Page[int]{"": {Content: []int{1}, TotalPages: 1}}}
	v := listview.New[string, int]("", rec.fetch, 10)
	require.NoError(t, v.Refresh(ctx))

	mutateErr := errors.New("status update failed")
	err := v.Apply(ctx, func(context.Context) error { return mutateErr })
	require.ErrorIs(t, err, mutateErr)
	assert.Equal(t, 1, rec.count(), "failed mutation does not refetch")
	assert.Equal(t, []int{1}, v.Snapshot().Rows)

	rec.pages[""] = domain.Page[int]{Content: []int{9}, TotalPages: 1}
	require.NoError(t, v.Apply(ctx, func(context.Context) error { return nil }))
	assert.Equal(t, 2, rec.count(), "successful mutation refetches once")
	assert.Equal(t, []int{9}, v.Snapshot().Rows)
}

func TestOutOfOrderResponsesAreDiscarded(t *testing.T) {
	ctx := context.Background()
	started := make(chan struct{})
	release := make(chan struct{})
	var canceled atomic.Bool

	fetch := func(ctx context.Context, filter string, _, _ int) (domain.Page[string], error) {
		if filter == "SLOW" {
			close(started)
			<-release
			canceled.Store(ctx.Err() != nil)
			return domain.Page[string]{Content: []string{"stale"}, TotalPages: 1}, nil
		}
		return domain.Page[string]{Content: []string{"fresh"}, TotalPages: 1}, nil
	}
	v := listview.New[string, string]("", fetch, 10)

	slowErr := make(chan error, 1)
	go func() { slowErr <- v.SetFilter(ctx, "SLOW") }()
	<-started

	require.NoError(t, v.SetFilter(ctx, "FAST"))
	close(release)

	require.ErrorIs(t, <-slowErr, listview.ErrSuperseded)
	assert.True(t, canceled.Load(), "superseded fetch is canceled")
	snap := v.Snapshot()
	assert.Equal(t, "FAST", snap.Filter)
	assert.Equal(t, []string{"fresh"}, snap.Rows)
	assert.False(t, snap.Loading)
}
