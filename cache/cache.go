// Package cache provides a Badger-backed memoization layer in front of
// an extractor.Extractor, so repeated identical questions against a
// slow or expensive extraction oracle skip re-extraction. This is not
// provenance persistence: it caches only the extractor's raw output, a
// separate concern from the reasoning chain's JSON export.
package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/dcrowell-labs/chronoverify/extractor"
)

// ExtractionCache wraps an extractor.Extractor with a Badger-backed
// cache keyed by (question, level). Query results are not cached: the
// prototype's pure-query path is meant to reflect the oracle's raw,
// possibly-inconsistent behavior on every call.
type ExtractionCache struct {
	inner extractor.Extractor
	db    *badger.DB
}

// cachedResponse mirrors extractor.Response for JSON (de)serialization.
type cachedResponse struct {
	Events    []extractor.Event    `json:"events"`
	Relations []extractor.Relation `json:"relations"`
	RawAnswer string               `json:"raw_answer"`
	Level     extractor.Level      `json:"level"`
	Metadata  map[string]any       `json:"metadata"`
}

// Open opens (or creates) a Badger-backed cache at path, wrapping inner.
func Open(path string, inner extractor.Extractor) (*ExtractionCache, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("cache: failed to open badger: %w", err)
	}

	return &ExtractionCache{inner: inner, db: db}, nil
}

// Close closes the underlying database.
func (c *ExtractionCache) Close() error {
	return c.db.Close()
}

func cacheKey(text string, level extractor.Level) []byte {
	return []byte(fmt.Sprintf("extract:%d:%s", level, text))
}

// Extract returns a cached Response for (text, level) if present,
// otherwise calls the wrapped extractor and stores the result.
func (c *ExtractionCache) Extract(ctx context.Context, text string, level extractor.Level) (extractor.Response, error) {
	key := cacheKey(text, level)

	if resp, ok, err := c.lookup(key); err != nil {
		return extractor.Response{}, err
	} else if ok {
		return resp, nil
	}

	resp, err := c.inner.Extract(ctx, text, level)
	if err != nil {
		return extractor.Response{}, err
	}

	if err := c.store(key, resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// Query is passed straight through to the wrapped extractor; the pure
// query path is not memoized.
func (c *ExtractionCache) Query(ctx context.Context, text string) (string, error) {
	return c.inner.Query(ctx, text)
}

func (c *ExtractionCache) lookup(key []byte) (extractor.Response, bool, error) {
	var raw []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			raw = append([]byte(nil), val...)
			return nil
		})
	})
	if err == badger.ErrKeyNotFound {
		return extractor.Response{}, false, nil
	}
	if err != nil {
		return extractor.Response{}, false, fmt.Errorf("cache: lookup failed: %w", err)
	}

	var cr cachedResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return extractor.Response{}, false, fmt.Errorf("cache: decoding cached response: %w", err)
	}
	return extractor.Response{
		Events:    cr.Events,
		Relations: cr.Relations,
		RawAnswer: cr.RawAnswer,
		Level:     cr.Level,
		Metadata:  cr.Metadata,
	}, true, nil
}

func (c *ExtractionCache) store(key []byte, resp extractor.Response) error {
	data, err := json.Marshal(cachedResponse{
		Events:    resp.Events,
		Relations: resp.Relations,
		RawAnswer: resp.RawAnswer,
		Level:     resp.Level,
		Metadata:  resp.Metadata,
	})
	if err != nil {
		return fmt.Errorf("cache: encoding response: %w", err)
	}

	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}
