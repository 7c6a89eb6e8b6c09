package redis

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/redis/rueidis"
)

// Exemplar field names in the index HASH documents.
const (
	fieldQuestion = "question"
	fieldSQL      = "sql"
	fieldVector   = "vector"
)

// ExemplarDoc is one stored question/SQL pair with its match score.
type ExemplarDoc struct {
	Key      string
	Question string
	SQL      string
	Score    float64
}

// EnsureExemplarIndex creates the HNSW vector index if it does not exist.
func (s *Store) EnsureExemplarIndex(ctx context.Context, index, prefix string, dimensions int) error {
	cmd := s.b().Arbitrary("FT.CREATE").Args(
		index, "ON", "HASH",
		"PREFIX", "1", prefix,
		"SCHEMA",
		fieldQuestion, "TEXT",
		fieldSQL, "TEXT",
		fieldVector, "VECTOR", "HNSW", "6",
		"TYPE", "FLOAT32",
		"DIM", strconv.Itoa(dimensions),
		"DISTANCE_METRIC", "COSINE",
	).Build()

	if err := s.do(ctx, cmd).Error(); err != nil {
		if isRedisErr(err, "index already exists") {
			return nil
		}
		return fmt.Errorf("create exemplar index: %w", err)
	}
	return nil
}

// AddExemplar stores one question/SQL pair under the index prefix.
func (s *Store) AddExemplar(ctx context.Context, key, question, sql string, vector []float32) error {
	cmd := s.b().Hset().Key(key).FieldValue().
		FieldValue(fieldQuestion, question).
		FieldValue(fieldSQL, sql).
		FieldValue(fieldVector, vectorToBytes(vector)).
		Build()

	if err := s.do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("store exemplar: %w", err)
	}
	return nil
}

// SearchNearest runs a KNN top-k similarity search against the exemplar
// index. A missing or empty index yields an empty result, not an error.
func (s *Store) SearchNearest(ctx context.Context, index string, vector []float32, k int) ([]ExemplarDoc, error) {
	if len(vector) == 0 {
		return nil, fmt.Errorf("vector is required")
	}
	if k <= 0 {
		return nil, fmt.Errorf("k must be positive")
	}

	cmd := s.b().Arbitrary("FT.SEARCH").Args(
		index,
		fmt.Sprintf("*=>[KNN %d @%s $BLOB]", k, fieldVector),
		"RETURN", "3", fieldQuestion, fieldSQL, "__vector_score",
		"PARAMS", "2", "BLOB", vectorToBytes(vector),
		"DIALECT", "2",
	).Build()

	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		if isRedisErr(err, "no such index") || isRedisErr(err, "unknown index name") {
			return nil, nil
		}
		return nil, fmt.Errorf("exemplar search: %w", err)
	}

	return parseExemplarResult(raw)
}

func parseExemplarResult(raw []rueidis.RedisMessage) ([]ExemplarDoc, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}
	if total == 0 {
		return nil, nil
	}

	docs := make([]ExemplarDoc, 0, total)
	// 2-stride: [total, key1, fields1, key2, fields2, ...]
	for i := 1; i+1 < len(raw); i += 2 {
		key, err := raw[i].ToString()
		if err != nil {
			continue
		}

		fields, err := raw[i+1].ToArray()
		if err != nil {
			continue
		}

		doc := ExemplarDoc{Key: key}
		for j := 0; j+1 < len(fields); j += 2 {
			name, err := fields[j].ToString()
			if err != nil {
				continue
			}
			value, err := fields[j+1].ToString()
			if err != nil {
				continue
			}
			switch name {
			case fieldQuestion:
				doc.Question = value
			case fieldSQL:
				doc.SQL = value
			case "__vector_score":
				if d, err := strconv.ParseFloat(value, 64); err == nil {
					doc.Score = max(0, 1.0-d) // cosine distance → similarity, clamped to [0,1]
				}
			}
		}

		docs = append(docs, doc)
	}

	return docs, nil
}

func vectorToBytes(v []float32) string {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return string(buf)
}
