package client

import (
	"context"
	"net/http"
	"net/url"
	"sync"
)

// Collection is one resource group. L is the list item, D the detail
// returned by slug and I the write body.
type Collection[L, D, I any] struct {
	c    *Client
	path string

	// fromList turns a cached list item into a detail; nil disables cache
	// lookups in GetBySlug.
	fromList func(L) (D, bool)
	slugOf   func(L) string

	mu     sync.RWMutex
	items  []L
	loaded bool
}

func newCollection[L, D, I any](c *Client, path string, fromList func(L) (D, bool)) *Collection[L, D, I] {
	return &Collection[L, D, I]{c: c, path: path, fromList: fromList, slugOf: slugField[L]}
}

// FetchAll loads the list from the API and replaces the cache.
func (col *Collection[L, D, I]) FetchAll(ctx context.Context) ([]L, error) {
	var items []L
	if err := col.c.doJSON(ctx, http.MethodGet, col.path, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []L{}
	}

	col.mu.Lock()
	col.items = items
	col.loaded = true
	col.mu.Unlock()
	return items, nil
}

// Cached returns the last fetched list and whether one exists.
func (col *Collection[L, D, I]) Cached() ([]L, bool) {
	col.mu.RLock()
	defer col.mu.RUnlock()
	if !col.loaded {
		return nil, false
	}
	return append([]L(nil), col.items...), true
}

// GetBySlug answers from the cache when it can, otherwise asks the API.
// A missing record yields an error matching ErrNotFound.
func (col *Collection[L, D, I]) GetBySlug(ctx context.Context, slug string) (D, error) {
	if d, ok := col.lookup(slug); ok {
		return d, nil
	}

	var d D
	err := col.c.doJSON(ctx, http.MethodGet, col.itemPath(slug), nil, &d)
	return d, err
}

func (col *Collection[L, D, I]) Invalidate() {
	col.mu.Lock()
	col.items = nil
	col.loaded = false
	col.mu.Unlock()
}

func (col *Collection[L, D, I]) Create(ctx context.Context, in I) error {
	defer col.Invalidate()
	return col.c.doJSON(ctx, http.MethodPost, col.path, in, nil)
}

func (col *Collection[L, D, I]) Update(ctx context.Context, slug string, in I) error {
	defer col.Invalidate()
	return col.c.doJSON(ctx, http.MethodPut, col.itemPath(slug), in, nil)
}

func (col *Collection[L, D, I]) Delete(ctx context.Context, slug string) error {
	defer col.Invalidate()
	return col.c.doJSON(ctx, http.MethodDelete, col.itemPath(slug), nil, nil)
}

func (col *Collection[L, D, I]) lookup(slug string) (D, bool) {
	var zero D
	if col.fromList == nil {
		return zero, false
	}
	col.mu.RLock()
	defer col.mu.RUnlock()
	for _, item := range col.items {
		if col.slugOf(item) == slug {
			return col.fromList(item)
		}
	}
	return zero, false
}

func (col *Collection[L, D, I]) itemPath(slug string) string {
	return col.path + "/" + url.PathEscape(slug)
}

func identity[T any](v T) (T, bool) { return v, true }

func slugField[L any](item L) string {
	switch v := any(item).(type) {
	case Film:
		return v.Slug
	case Gallery:
		return v.Slug
	case MusicVideo:
		return v.Slug
	case PostSummary:
		return v.Slug
	}
	return ""
}
