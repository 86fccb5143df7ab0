package passage

import (
	"context"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Memo caches parsed chapters in memory, keyed by reference and version.
// It is safe for concurrent use.
type Memo struct {
	next  Source
	cache *lru.Cache[memoKey, []Element]
}

type memoKey struct {
	reference string
	version   string
}

// NewMemo wraps next with an LRU holding up to size chapters.
func NewMemo(next Source, size int) (*Memo, error) {
	cache, err := lru.New[memoKey, []Element](size)
	if err != nil {
		return nil, err
	}
	return &Memo{next: next, cache: cache}, nil
}

// Chapter returns the cached elements or loads them from the wrapped Source.
// Callers get their own copy of the slice.
func (m *Memo) Chapter(ctx context.Context, reference, version string) ([]Element, error) {
	key := memoKey{reference: reference, version: version}
	if elements, ok := m.cache.Get(key); ok {
		return slices.Clone(elements), nil
	}
	elements, err := m.next.Chapter(ctx, reference, version)
	if err != nil {
		return nil, err
	}
	m.cache.Add(key, slices.Clone(elements))
	return elements, nil
}

// Len reports the number of cached chapters.
func (m *Memo) Len() int { return m.cache.Len() }
