// Package cache memoizes dictionary lookups and autocomplete suggestions for
// the lifetime of the process. Nothing is evicted.
//
// The mutex only guards the maps. It is not held across the upstream call,
// so concurrent misses for the same key each fetch and the last write wins.
// Both writes carry the same data.
package cache

import (
	"context"
	"sync"

	"github.com/lojasmm/definebot/internal/mw"
	"github.com/lojasmm/definebot/internal/observability"
)

const (
	// SuggestionSource is the autocomplete index whose suggestions are kept.
	SuggestionSource = "owl-combined"
	MaxSuggestions   = 25
)

type Upstream interface {
	Lookup(ctx context.Context, term string) (mw.LookupResult, error)
	Autocomplete(ctx context.Context, prefix string) ([]mw.Suggestion, error)
}

type Cache struct {
	upstream Upstream

	mu          sync.Mutex
	results     map[string]mw.LookupResult
	suggestions map[string][]string
}

func New(upstream Upstream) *Cache {
	return &Cache{
		upstream:    upstream,
		results:     make(map[string]mw.LookupResult),
		suggestions: make(map[string][]string),
	}
}

// Resolve returns the lookup result for term, fetching it on a miss.
// Empty results are cached; failed fetches are not.
func (c *Cache) Resolve(ctx context.Context, term string) (mw.LookupResult, error) {
	c.mu.Lock()
	result, ok := c.results[term]
	c.mu.Unlock()
	if ok {
		observability.CacheHits.Add(1)
		return result, nil
	}
	observability.CacheMisses.Add(1)

	result, err := c.upstream.Lookup(ctx, term)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = mw.LookupResult{}
	}

	c.mu.Lock()
	c.results[term] = result
	c.mu.Unlock()
	return result, nil
}

// Autocomplete returns up to MaxSuggestions words for the exact prefix.
func (c *Cache) Autocomplete(ctx context.Context, prefix string) ([]string, error) {
	c.mu.Lock()
	words, ok := c.suggestions[prefix]
	c.mu.Unlock()
	if ok {
		observability.CacheHits.Add(1)
		return words, nil
	}
	observability.CacheMisses.Add(1)

	docs, err := c.upstream.Autocomplete(ctx, prefix)
	if err != nil {
		return nil, err
	}

	words = make([]string, 0, MaxSuggestions)
	for _, d := range docs {
		if d.Ref != SuggestionSource {
			continue
		}
		words = append(words, d.Word)
		if len(words) == MaxSuggestions {
			break
		}
	}

	c.mu.Lock()
	c.suggestions[prefix] = words
	c.mu.Unlock()
	return words, nil
}
