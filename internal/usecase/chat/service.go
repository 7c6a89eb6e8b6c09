// Package chat orchestrates the question-answering pipeline: classify,
// retrieve, synthesize, execute, guard, answer, with an expert fallback.
package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/gridiron/internal/domain"
	"github.com/kailas-cloud/gridiron/internal/logger"
	"github.com/kailas-cloud/gridiron/internal/metrics"
)

// User-facing apologies. Kept fixed so failures never leak internals.
const (
	apologyNoAnswer = "I am sorry, I do not have an answer for that question."
	apologyError    = "I'm sorry, an error occurred while processing your request. Please try again."
)

// Request outcomes for the pipeline counter.
const (
	outcomeAnswered = "answered"
	outcomeExpert   = "expert"
	outcomeApology  = "apology"
)

// Service runs the full pipeline for one question at a time. All request
// state is local to Respond; the only shared state is the per-session
// history window.
type Service struct {
	classifier Classifier
	retriever  Retriever
	synth      Synthesizer
	exec       Executor
	answerer   Answerer
	expert     Expert
	recorder   Recorder
	guard      *Guard
	sessions   *sessions
	retries    int
	now        func() time.Time
}

// New wires the orchestrator.
func New(classifier Classifier, retriever Retriever, synth Synthesizer, exec Executor,
	answerer Answerer, expert Expert, recorder Recorder, guard *Guard, cfg Config) *Service {
	return &Service{
		classifier: classifier,
		retriever:  retriever,
		synth:      synth,
		exec:       exec,
		answerer:   answerer,
		expert:     expert,
		recorder:   recorder,
		guard:      guard,
		sessions:   newSessions(cfg.SessionHistory),
		retries:    cfg.ExecutionRetries,
		now:        time.Now,
	}
}

// Respond answers one question, emitting events as work progresses. Every
// call ends with exactly one done event, whatever happens in between, and
// returns the completed interaction record.
func (s *Service) Respond(ctx context.Context, session, question string, emit domain.EmitFunc) *domain.Interaction {
	in := &domain.Interaction{
		ID:        uuid.NewString(),
		Session:   session,
		Question:  question,
		Usage:     domain.NewUsage(),
		CreatedAt: s.now().UTC(),
	}
	log := logger.FromContext(ctx).With(zap.String("interaction_id", in.ID))

	outcome := s.respond(ctx, log, in, emit)
	emit(domain.Event{Kind: domain.EventKindAnswer, Status: domain.StatusDone, Bucket: in.Bucket})
	metrics.PipelineRequestsTotal.WithLabelValues(in.Bucket.String(), outcome).Inc()

	if in.Answer != "" {
		s.sessions.add(session, question, in.Answer)
	}
	if err := s.recorder.Save(ctx, in); err != nil {
		log.Warn("save interaction", zap.Error(err))
	}
	return in
}

// respond runs the pipeline proper. Panics are absorbed here so one bad
// request can never take the process down.
func (s *Service) respond(ctx context.Context, log *zap.Logger, in *domain.Interaction, emit domain.EmitFunc) (outcome string) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("pipeline panic", zap.Any("panic", r))
			s.say(in, emit, apologyError)
			outcome = outcomeApology
		}
	}()

	res, err := s.classifier.Classify(ctx, s.sessions.history(in.Session), in.Question)
	if err != nil {
		log.Error("classify question", zap.Error(err))
		s.say(in, emit, apologyError)
		return outcomeApology
	}
	in.Bucket = res.Bucket
	in.Usage.Add(domain.StageClassify, res.Usage.InputTokens, res.Usage.OutputTokens)
	log = log.With(zap.String("bucket", in.Bucket.String()))

	if in.Bucket == domain.BucketExpertAnalysis {
		question := res.Message
		if question == "" {
			question = in.Question
		}
		in.Corrected = question
		return s.consultExpert(ctx, log, in, question, emit)
	}
	if in.Bucket.IsTerminal() || !res.Routable {
		msg := res.Message
		if msg == "" {
			msg = apologyNoAnswer
		}
		s.say(in, emit, msg)
		return outcomeAnswered
	}

	question := res.Message
	if question == "" {
		question = in.Question
	}
	in.Corrected = question

	exemplar, rusage, err := s.retriever.Retrieve(ctx, question)
	in.Usage.Add(domain.StageRetrieve, rusage.InputTokens, rusage.OutputTokens)
	if err != nil {
		log.Error("retrieve exemplar", zap.Error(err))
		s.say(in, emit, apologyError)
		return outcomeApology
	}

	sql, susage, err := s.synth.Synthesize(ctx, in.Bucket, question, exemplar)
	in.Usage.Add(domain.StageSynthesis, susage.InputTokens, susage.OutputTokens)
	if err != nil {
		if errors.Is(err, domain.ErrSynthesisFailed) {
			log.Info("synthesis declined", zap.Error(err))
			return s.consultExpert(ctx, log, in, question, emit)
		}
		log.Error("synthesize sql", zap.Error(err))
		s.say(in, emit, apologyError)
		return outcomeApology
	}
	in.SQL = sql
	emit(domain.Event{Fragment: sql, Kind: domain.EventKindQuery, Status: domain.StatusGenerating, Bucket: in.Bucket})

	rows, err := s.executeWithRetry(ctx, log, in, question, exemplar)
	if err != nil {
		if domain.Recoverable(err) {
			log.Warn("execution exhausted", zap.Error(err))
			return s.consultExpert(ctx, log, in, question, emit)
		}
		log.Error("execute sql", zap.Error(err))
		s.say(in, emit, apologyError)
		return outcomeApology
	}

	serialized := rows.Serialize()
	if err := s.guard.Check(serialized); err != nil {
		log.Info("result over budget", zap.Error(err))
		return s.consultExpert(ctx, log, in, question, emit)
	}

	stream, err := s.answerer.Answer(ctx, question, in.SQL, serialized)
	if err != nil {
		log.Error("stream answer", zap.Error(err))
		s.say(in, emit, apologyError)
		return outcomeApology
	}
	answer, streamErr := relay(stream, in.Bucket, emit)
	in.Answer = answer
	// Streamed calls report no token usage, so the stage is accounted
	// with the local tokenizer.
	in.Usage.Add(domain.StageAnswer,
		s.guard.Count(question+"\n"+in.SQL+"\n"+serialized), s.guard.Count(answer))
	if streamErr != nil {
		log.Warn("answer stream interrupted", zap.Error(streamErr))
		if answer == "" {
			s.say(in, emit, apologyError)
			return outcomeApology
		}
		// A partial answer was already delivered; the request still
		// ends with a done event.
	}
	return outcomeAnswered
}

// executeWithRetry runs the query, and on failure re-synthesizes and
// re-executes up to the configured retry budget.
func (s *Service) executeWithRetry(ctx context.Context, log *zap.Logger, in *domain.Interaction, question string, exemplar domain.Exemplar) (domain.Rows, error) {
	rows, err := s.exec.Query(ctx, in.SQL)
	if err == nil {
		return rows, nil
	}
	if s.retries <= 0 {
		return domain.Rows{}, err
	}
	log.Warn("execute sql", zap.Error(err))

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = 100 * time.Millisecond
	policy := backoff.WithContext(backoff.WithMaxRetries(expo, uint64(s.retries-1)), ctx)

	attempt := func() error {
		metrics.ExecutionRetriesTotal.Inc()
		sql, usage, serr := s.synth.Synthesize(ctx, in.Bucket, question, exemplar)
		in.Usage.Add(domain.StageSynthesis, usage.InputTokens, usage.OutputTokens)
		if serr != nil {
			return backoff.Permanent(serr)
		}
		in.SQL = sql
		r, qerr := s.exec.Query(ctx, sql)
		if qerr != nil {
			log.Warn("execute sql", zap.Error(qerr))
			return qerr
		}
		rows = r
		return nil
	}
	if rerr := backoff.Retry(attempt, policy); rerr != nil {
		return domain.Rows{}, rerr
	}
	return rows, nil
}

// consultExpert reroutes the question to the qualitative path.
func (s *Service) consultExpert(ctx context.Context, log *zap.Logger, in *domain.Interaction, question string, emit domain.EmitFunc) string {
	stream, err := s.expert.Consult(ctx, question)
	if err != nil {
		log.Error("consult expert", zap.Error(err))
		s.say(in, emit, apologyError)
		return outcomeApology
	}
	answer, streamErr := relay(stream, in.Bucket, emit)
	in.Answer = answer
	in.Usage.Add(domain.StageExpert, s.guard.Count(question), s.guard.Count(answer))
	if streamErr != nil {
		log.Warn("expert stream interrupted", zap.Error(streamErr))
	}
	if answer == "" {
		s.say(in, emit, apologyNoAnswer)
		return outcomeApology
	}
	return outcomeExpert
}

// say records and emits a single complete answer fragment.
func (s *Service) say(in *domain.Interaction, emit domain.EmitFunc, msg string) {
	in.Answer = msg
	emit(domain.Event{Fragment: msg, Kind: domain.EventKindAnswer, Status: domain.StatusGenerating, Bucket: in.Bucket})
}

// relay forwards stream fragments as answer events, in order, and returns
// the concatenated text.
func relay(stream *domain.Stream, bucket domain.Bucket, emit domain.EmitFunc) (string, error) {
	var b strings.Builder
	for frag := range stream.Fragments() {
		b.WriteString(frag)
		emit(domain.Event{Fragment: frag, Kind: domain.EventKindAnswer, Status: domain.StatusGenerating, Bucket: bucket})
	}
	return b.String(), stream.Err()
}
