package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/rueidis"
)

// ErrKeyNotFound reports a missing record key.
var ErrKeyNotFound = errors.New("key not found")

// SetJSON stores a JSON document under key.
func (s *Store) SetJSON(ctx context.Context, key string, doc []byte) error {
	cmd := s.b().Set().Key(key).Value(string(doc)).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// GetJSON fetches a JSON document by key.
func (s *Store) GetJSON(ctx context.Context, key string) ([]byte, error) {
	cmd := s.b().Get().Key(key).Build()
	doc, err := s.do(ctx, cmd).AsBytes()
	if err != nil {
		if errors.Is(err, rueidis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return doc, nil
}
