// Package exemplar persists solved question/SQL pairs in a vector index
// and serves nearest-neighbour lookups for synthesis prompts.
package exemplar

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/gridiron/internal/db/redis"
	"github.com/kailas-cloud/gridiron/internal/domain"
)

// store is the consumer interface for exemplar index operations (ISP).
type store interface {
	EnsureExemplarIndex(ctx context.Context, index, prefix string, dimensions int) error
	AddExemplar(ctx context.Context, key, question, sql string, vector []float32) error
	SearchNearest(ctx context.Context, index string, vector []float32, k int) ([]redis.ExemplarDoc, error)
}

// Repo implements usecase/retrieve.Index.
type Repo struct {
	store  store
	index  string
	prefix string
}

// New creates an exemplar repository.
func New(s store, index, keyPrefix string) *Repo {
	return &Repo{
		store:  s,
		index:  index,
		prefix: keyPrefix + "exemplar:",
	}
}

// EnsureIndex creates the vector index if absent.
func (r *Repo) EnsureIndex(ctx context.Context, dimensions int) error {
	if err := r.store.EnsureExemplarIndex(ctx, r.index, r.prefix, dimensions); err != nil {
		return fmt.Errorf("ensure exemplar index: %w", err)
	}
	return nil
}

// Add stores one solved question/SQL pair.
func (r *Repo) Add(ctx context.Context, id, question, sql string, vector []float32) error {
	if err := r.store.AddExemplar(ctx, r.prefix+id, question, sql, vector); err != nil {
		return fmt.Errorf("add exemplar %s: %w", id, err)
	}
	return nil
}

// Nearest returns the single closest stored exemplar. The second return is
// false when the index is empty or missing; an error means the backend
// lookup itself failed.
func (r *Repo) Nearest(ctx context.Context, vector []float32) (domain.Exemplar, bool, error) {
	docs, err := r.store.SearchNearest(ctx, r.index, vector, 1)
	if err != nil {
		return domain.Exemplar{}, false, fmt.Errorf("nearest exemplar: %w", err)
	}
	if len(docs) == 0 {
		return domain.Exemplar{}, false, nil
	}

	return domain.Exemplar{
		Question: docs[0].Question,
		SQL:      docs[0].SQL,
		Score:    docs[0].Score,
	}, true, nil
}
