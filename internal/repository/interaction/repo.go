// Package interaction persists answered-question records and their
// correctness feedback.
package interaction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/gridiron/internal/db/redis"
	"github.com/kailas-cloud/gridiron/internal/domain"
)

// store is the consumer interface for record persistence (ISP).
type store interface {
	SetJSON(ctx context.Context, key string, doc []byte) error
	GetJSON(ctx context.Context, key string) ([]byte, error)
}

// Repo implements usecase/chat.Recorder.
type Repo struct {
	store  store
	prefix string
}

// New creates an interaction repository.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, prefix: keyPrefix + "interaction:"}
}

// record is the stored JSON shape.
type record struct {
	ID        string            `json:"id"`
	Session   string            `json:"session"`
	Question  string            `json:"question"`
	Corrected string            `json:"corrected_question,omitempty"`
	Bucket    string            `json:"bucket"`
	SQL       string            `json:"sql,omitempty"`
	Answer    string            `json:"answer"`
	Usage     map[string][2]int `json:"usage,omitempty"` // stage -> [input, output]
	CreatedAt time.Time         `json:"created_at"`
	Correct   *bool             `json:"correct,omitempty"`
	Category  string            `json:"category,omitempty"`
}

// Save stores a completed interaction.
func (r *Repo) Save(ctx context.Context, in *domain.Interaction) error {
	rec := record{
		ID:        in.ID,
		Session:   in.Session,
		Question:  in.Question,
		Corrected: in.Corrected,
		Bucket:    in.Bucket.String(),
		SQL:       in.SQL,
		Answer:    in.Answer,
		CreatedAt: in.CreatedAt,
		Correct:   in.Correct,
		Category:  in.Category,
	}
	if in.Usage != nil {
		rec.Usage = make(map[string][2]int)
		for _, stage := range []domain.Stage{
			domain.StageClassify, domain.StageRetrieve, domain.StageSynthesis,
			domain.StageAnswer, domain.StageExpert,
		} {
			if u := in.Usage.Stage(stage); u.InputTokens > 0 || u.OutputTokens > 0 {
				rec.Usage[string(stage)] = [2]int{u.InputTokens, u.OutputTokens}
			}
		}
	}

	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal interaction %s: %w", in.ID, err)
	}
	if err := r.store.SetJSON(ctx, r.prefix+in.ID, doc); err != nil {
		return fmt.Errorf("save interaction %s: %w", in.ID, err)
	}
	return nil
}

// Get fetches a stored interaction by ID.
func (r *Repo) Get(ctx context.Context, id string) (*domain.Interaction, error) {
	doc, err := r.store.GetJSON(ctx, r.prefix+id)
	if err != nil {
		if errors.Is(err, redis.ErrKeyNotFound) {
			return nil, domain.ErrInteractionNotFound
		}
		return nil, fmt.Errorf("get interaction %s: %w", id, err)
	}

	var rec record
	if err := json.Unmarshal(doc, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal interaction %s: %w", id, err)
	}

	bucket, _ := domain.ParseBucket(rec.Bucket)
	out := &domain.Interaction{
		ID:        rec.ID,
		Session:   rec.Session,
		Question:  rec.Question,
		Corrected: rec.Corrected,
		Bucket:    bucket,
		SQL:       rec.SQL,
		Answer:    rec.Answer,
		CreatedAt: rec.CreatedAt,
		Correct:   rec.Correct,
		Category:  rec.Category,
	}
	if len(rec.Usage) > 0 {
		out.Usage = domain.NewUsage()
		for stage, counts := range rec.Usage {
			out.Usage.Add(domain.Stage(stage), counts[0], counts[1])
		}
	}
	return out, nil
}

// SetFeedback marks a stored interaction correct or incorrect. The bucket
// on the record is the one the classifier chose for that request.
func (r *Repo) SetFeedback(ctx context.Context, id string, correct bool, category string) error {
	in, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	in.Correct = &correct
	in.Category = category
	return r.Save(ctx, in)
}
