package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/kailas-cloud/gridiron/internal/domain"
	"github.com/kailas-cloud/gridiron/internal/metrics"
	"github.com/kailas-cloud/gridiron/internal/usecase/classify"
)

func TestMain(m *testing.M) {
	metrics.RegisterPipelineMetrics()
	m.Run()
}

type mockClassifier struct {
	result     classify.Result
	err        error
	gotHistory [][]string
}

func (m *mockClassifier) Classify(_ context.Context, history []string, _ string) (classify.Result, error) {
	m.gotHistory = append(m.gotHistory, history)
	return m.result, m.err
}

type mockRetriever struct {
	exemplar domain.Exemplar
	err      error
	calls    int
}

func (m *mockRetriever) Retrieve(context.Context, string) (domain.Exemplar, domain.StageUsage, error) {
	m.calls++
	return m.exemplar, domain.StageUsage{InputTokens: 10}, m.err
}

type mockSynthesizer struct {
	sql   string
	err   error
	calls int
}

func (m *mockSynthesizer) Synthesize(context.Context, domain.Bucket, string, domain.Exemplar) (string, domain.StageUsage, error) {
	m.calls++
	return m.sql, domain.StageUsage{InputTokens: 500, OutputTokens: 60}, m.err
}

type mockExecutor struct {
	rows  domain.Rows
	errs  []error // consumed per call; nil past the end
	calls int
}

func (m *mockExecutor) Query(context.Context, string) (domain.Rows, error) {
	m.calls++
	if m.calls <= len(m.errs) && m.errs[m.calls-1] != nil {
		return domain.Rows{}, m.errs[m.calls-1]
	}
	return m.rows, nil
}

type mockStreamer struct {
	fragments []string
	err       error // fail the call before a stream opens
	closeErr  error // close the stream with this error after the fragments
	calls     int
}

func (m *mockStreamer) stream(ctx context.Context) (*domain.Stream, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	s := domain.NewStream()
	go func() {
		for _, frag := range m.fragments {
			if !s.Push(ctx, frag) {
				s.Close(ctx.Err())
				return
			}
		}
		s.Close(m.closeErr)
	}()
	return s, nil
}

type mockAnswerer struct{ mockStreamer }

func (m *mockAnswerer) Answer(ctx context.Context, _, _, _ string) (*domain.Stream, error) {
	return m.stream(ctx)
}

type mockExpert struct {
	mockStreamer
	gotQuestion string
}

func (m *mockExpert) Consult(ctx context.Context, question string) (*domain.Stream, error) {
	m.gotQuestion = question
	return m.stream(ctx)
}

type mockRecorder struct {
	saved []*domain.Interaction
	err   error
}

func (m *mockRecorder) Save(_ context.Context, in *domain.Interaction) error {
	m.saved = append(m.saved, in)
	return m.err
}

type fixedCounter struct{ n int }

func (c fixedCounter) Count(string) int { return c.n }

type wordCounter struct{}

func (wordCounter) Count(text string) int { return len(strings.Fields(text)) }

// deps bundles one fully mocked pipeline with a working default path.
type deps struct {
	classifier *mockClassifier
	retriever  *mockRetriever
	synth      *mockSynthesizer
	exec       *mockExecutor
	answerer   *mockAnswerer
	expert     *mockExpert
	recorder   *mockRecorder
	guard      *Guard
	cfg        Config
}

func defaultDeps() *deps {
	return &deps{
		classifier: &mockClassifier{result: classify.Result{
			Bucket:   domain.BucketTeamGameLog,
			Routable: true,
			Message:  "How many games did the Ravens win in 2023?",
		}},
		retriever: &mockRetriever{exemplar: domain.DefaultExemplar},
		synth:     &mockSynthesizer{sql: `SELECT COUNT(*) FROM teamlog`},
		exec: &mockExecutor{rows: domain.Rows{
			Columns: []string{"count"},
			Records: [][]any{{int64(13)}},
		}},
		answerer: &mockAnswerer{mockStreamer{fragments: []string{"The Ravens won ", "13 games."}}},
		expert:   &mockExpert{mockStreamer: mockStreamer{fragments: []string{"Expert take."}}},
		recorder: &mockRecorder{},
		guard:    NewGuard(fixedCounter{n: 100}, 5000),
		cfg:      Config{ExecutionRetries: 2, SessionHistory: 6},
	}
}

func (d *deps) service() *Service {
	s := New(d.classifier, d.retriever, d.synth, d.exec, d.answerer, d.expert, d.recorder, d.guard, d.cfg)
	s.now = func() time.Time { return time.Date(2024, time.November, 10, 12, 0, 0, 0, time.UTC) }
	return s
}

func collect(t *testing.T, svc *Service, session, question string) (*domain.Interaction, []domain.Event) {
	t.Helper()
	var events []domain.Event
	in := svc.Respond(context.Background(), session, question, func(e domain.Event) {
		events = append(events, e)
	})
	if in == nil {
		t.Fatal("Respond returned nil interaction")
	}
	if len(events) == 0 {
		t.Fatal("no events emitted")
	}
	last := events[len(events)-1]
	if last.Status != domain.StatusDone {
		t.Fatalf("last event status = %s, want done", last.Status)
	}
	for _, e := range events[:len(events)-1] {
		if e.Status == domain.StatusDone {
			t.Fatal("done emitted before the final event")
		}
	}
	return in, events
}

func answerText(events []domain.Event) string {
	var b strings.Builder
	for _, e := range events {
		if e.Kind == domain.EventKindAnswer && e.Status == domain.StatusGenerating {
			b.WriteString(e.Fragment)
		}
	}
	return b.String()
}

func TestRespond_DataBucket(t *testing.T) {
	d := defaultDeps()
	in, events := collect(t, d.service(), "s1", "how many games did ravens win in 2023")

	if in.Bucket != domain.BucketTeamGameLog {
		t.Errorf("bucket = %s", in.Bucket)
	}
	if in.SQL != `SELECT COUNT(*) FROM teamlog` {
		t.Errorf("sql = %q", in.SQL)
	}
	if in.Answer != "The Ravens won 13 games." {
		t.Errorf("answer = %q", in.Answer)
	}
	if in.Corrected != "How many games did the Ravens win in 2023?" {
		t.Errorf("corrected = %q", in.Corrected)
	}

	if events[0].Kind != domain.EventKindQuery || events[0].Fragment != in.SQL {
		t.Errorf("first event should carry the query, got %+v", events[0])
	}
	if got := answerText(events); got != in.Answer {
		t.Errorf("emitted answer = %q, want %q", got, in.Answer)
	}

	total := in.Usage.Total()
	if total.InputTokens == 0 || total.OutputTokens == 0 {
		t.Errorf("usage not accumulated: %+v", total)
	}
	if in.Usage.Stage(domain.StageSynthesis).InputTokens != 500 {
		t.Errorf("synthesis usage = %+v", in.Usage.Stage(domain.StageSynthesis))
	}
	// The answer stage streams without provider usage, so the tokenizer
	// counts stand in for it.
	if got := in.Usage.Stage(domain.StageAnswer); got.InputTokens == 0 || got.OutputTokens == 0 {
		t.Errorf("answer usage = %+v", got)
	}

	if len(d.recorder.saved) != 1 || d.recorder.saved[0].ID != in.ID {
		t.Error("interaction not recorded")
	}
	if d.expert.calls != 0 {
		t.Error("expert consulted on the happy path")
	}
}

func TestRespond_ConversationShortCircuits(t *testing.T) {
	d := defaultDeps()
	d.classifier.result = classify.Result{
		Bucket:   domain.BucketConversation,
		Routable: true,
		Message:  "Hello! Ask me anything about the NFL.",
	}
	in, events := collect(t, d.service(), "s1", "hi there")

	if in.Answer != "Hello! Ask me anything about the NFL." {
		t.Errorf("answer = %q", in.Answer)
	}
	if d.retriever.calls != 0 || d.synth.calls != 0 || d.exec.calls != 0 || d.answerer.calls != 0 {
		t.Error("terminal bucket reached a SQL stage")
	}
	for _, e := range events {
		if e.Kind == domain.EventKindQuery {
			t.Error("terminal bucket emitted a query event")
		}
	}
}

func TestRespond_UnroutableApologizes(t *testing.T) {
	d := defaultDeps()
	d.classifier.result = classify.Result{Bucket: domain.BucketNoBucket, Routable: false}
	in, _ := collect(t, d.service(), "s1", "asdf qwerty")

	if in.Answer != apologyNoAnswer {
		t.Errorf("answer = %q", in.Answer)
	}
	if d.synth.calls != 0 || d.exec.calls != 0 {
		t.Error("unroutable question reached a SQL stage")
	}
}

func TestRespond_ExpertAnalysisStreamsExpert(t *testing.T) {
	d := defaultDeps()
	d.classifier.result = classify.Result{
		Bucket:   domain.BucketExpertAnalysis,
		Routable: true,
		Message:  "Which team has the best offensive line?",
	}
	in, _ := collect(t, d.service(), "s1", "which team has the best o-line?")

	if in.Answer != "Expert take." {
		t.Errorf("answer = %q", in.Answer)
	}
	if d.expert.calls != 1 {
		t.Errorf("expert calls = %d", d.expert.calls)
	}
	if d.synth.calls != 0 || d.exec.calls != 0 {
		t.Error("expert bucket reached a SQL stage")
	}
	if d.expert.gotQuestion != "Which team has the best offensive line?" {
		t.Errorf("expert received %q, want the corrected question", d.expert.gotQuestion)
	}
	if in.Corrected != "Which team has the best offensive line?" {
		t.Errorf("corrected = %q", in.Corrected)
	}
	if got := in.Usage.Stage(domain.StageExpert); got.InputTokens == 0 || got.OutputTokens == 0 {
		t.Errorf("expert usage = %+v", got)
	}
}

func TestRespond_SynthesisFailureFallsBackToExpert(t *testing.T) {
	d := defaultDeps()
	d.synth.err = domain.ErrSynthesisFailed
	in, _ := collect(t, d.service(), "s1", "question")

	if d.exec.calls != 0 {
		t.Error("failed synthesis reached the executor")
	}
	if d.expert.calls != 1 {
		t.Errorf("expert calls = %d", d.expert.calls)
	}
	if in.Answer != "Expert take." {
		t.Errorf("answer = %q", in.Answer)
	}
}

func TestRespond_ExecutionRetriesThenExpert(t *testing.T) {
	d := defaultDeps()
	boom := fmt.Errorf("syntax error: %w", domain.ErrExecutionFailed)
	d.exec.errs = []error{boom, boom, boom}
	in, _ := collect(t, d.service(), "s1", "question")

	// One initial attempt plus two retries.
	if d.exec.calls != 3 {
		t.Errorf("executor calls = %d, want 3", d.exec.calls)
	}
	if d.synth.calls != 3 {
		t.Errorf("synthesizer calls = %d, want 3", d.synth.calls)
	}
	if d.expert.calls != 1 {
		t.Errorf("expert calls = %d, want 1", d.expert.calls)
	}
	if in.Answer != "Expert take." {
		t.Errorf("answer = %q", in.Answer)
	}
}

func TestRespond_ExecutionRecoversOnRetry(t *testing.T) {
	d := defaultDeps()
	d.exec.errs = []error{fmt.Errorf("bad column: %w", domain.ErrExecutionFailed)}
	in, _ := collect(t, d.service(), "s1", "question")

	if d.exec.calls != 2 {
		t.Errorf("executor calls = %d, want 2", d.exec.calls)
	}
	if d.expert.calls != 0 {
		t.Error("expert consulted after a successful retry")
	}
	if in.Answer != "The Ravens won 13 games." {
		t.Errorf("answer = %q", in.Answer)
	}
}

func TestRespond_OversizedResultSkipsAnswerer(t *testing.T) {
	d := defaultDeps()
	d.guard = NewGuard(fixedCounter{n: 9000}, 5000)
	in, _ := collect(t, d.service(), "s1", "question")

	if d.answerer.calls != 0 {
		t.Error("oversized result reached the answer synthesizer")
	}
	if d.expert.calls != 1 {
		t.Errorf("expert calls = %d", d.expert.calls)
	}
	if in.Answer != "Expert take." {
		t.Errorf("answer = %q", in.Answer)
	}
}

func TestRespond_RetrievalErrorApologizes(t *testing.T) {
	d := defaultDeps()
	d.retriever.err = fmt.Errorf("redis down: %w", domain.ErrRetrievalFailed)
	in, _ := collect(t, d.service(), "s1", "question")

	if in.Answer != apologyError {
		t.Errorf("answer = %q", in.Answer)
	}
	if d.synth.calls != 0 || d.expert.calls != 0 {
		t.Error("retrieval failure continued the pipeline")
	}
}

func TestRespond_ClassifierErrorApologizes(t *testing.T) {
	d := defaultDeps()
	d.classifier.err = domain.ErrGenerationProviderError
	in, _ := collect(t, d.service(), "s1", "question")

	if in.Answer != apologyError {
		t.Errorf("answer = %q", in.Answer)
	}
}

func TestRespond_AnswererErrorStillEndsDone(t *testing.T) {
	d := defaultDeps()
	d.answerer.err = domain.ErrGenerationProviderError
	in, _ := collect(t, d.service(), "s1", "question")

	if in.Answer != apologyError {
		t.Errorf("answer = %q", in.Answer)
	}
}

func TestRespond_AnswerStreamFailsBeforeFirstFragment(t *testing.T) {
	d := defaultDeps()
	d.answerer.fragments = nil
	d.answerer.closeErr = domain.ErrGenerationProviderError
	in, events := collect(t, d.service(), "s1", "question")

	if in.Answer != apologyError {
		t.Errorf("answer = %q, want apology", in.Answer)
	}
	if got := answerText(events); got != apologyError {
		t.Errorf("emitted answer = %q, want apology", got)
	}
	if d.expert.calls != 0 {
		t.Error("expert consulted on an answer stream failure")
	}
}

func TestRespond_AnswerStreamFailsMidwayKeepsPartial(t *testing.T) {
	d := defaultDeps()
	d.answerer.fragments = []string{"The Ravens"}
	d.answerer.closeErr = domain.ErrGenerationProviderError
	in, _ := collect(t, d.service(), "s1", "question")

	if in.Answer != "The Ravens" {
		t.Errorf("answer = %q, want the delivered partial", in.Answer)
	}
}

func TestRespond_SessionHistoryFeedsClassifier(t *testing.T) {
	d := defaultDeps()
	svc := d.service()

	collect(t, svc, "s1", "how many games did ravens win in 2023")
	collect(t, svc, "s1", "what about the chiefs")

	if len(d.classifier.gotHistory) != 2 {
		t.Fatalf("classifier calls = %d", len(d.classifier.gotHistory))
	}
	if len(d.classifier.gotHistory[0]) != 0 {
		t.Errorf("first turn should see empty history, got %v", d.classifier.gotHistory[0])
	}
	second := strings.Join(d.classifier.gotHistory[1], "\n")
	if !strings.Contains(second, "how many games did ravens win in 2023") {
		t.Errorf("second turn missing prior question: %q", second)
	}
	if !strings.Contains(second, "The Ravens won 13 games.") {
		t.Errorf("second turn missing prior answer: %q", second)
	}
}

func TestRespond_SessionsAreIsolated(t *testing.T) {
	d := defaultDeps()
	svc := d.service()

	collect(t, svc, "s1", "first question")
	collect(t, svc, "s2", "other session")

	if len(d.classifier.gotHistory[1]) != 0 {
		t.Errorf("session s2 saw s1's history: %v", d.classifier.gotHistory[1])
	}
}

type panicClassifier struct{}

func (panicClassifier) Classify(context.Context, []string, string) (classify.Result, error) {
	panic("unexpected")
}

func TestRespond_PanicIsAbsorbed(t *testing.T) {
	d := defaultDeps()
	svc := New(panicClassifier{}, d.retriever, d.synth, d.exec, d.answerer, d.expert, d.recorder, d.guard, d.cfg)

	in, _ := collect(t, svc, "s1", "question")
	if in.Answer != apologyError {
		t.Errorf("answer = %q", in.Answer)
	}
}

func TestGuard_Check(t *testing.T) {
	g := NewGuard(wordCounter{}, 3)

	if err := g.Check("one two three"); err != nil {
		t.Errorf("within budget: %v", err)
	}
	err := g.Check("one two three four")
	if !errors.Is(err, domain.ErrResultTooLarge) {
		t.Errorf("expected ErrResultTooLarge, got %v", err)
	}
}

func TestSessions_Window(t *testing.T) {
	s := newSessions(2)
	for i := 0; i < 5; i++ {
		s.add("k", fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i))
	}
	got := s.history("k")
	if len(got) != 4 {
		t.Fatalf("history length = %d, want 4", len(got))
	}
	if got[0] != "User: q3" || got[3] != "Assistant: a4" {
		t.Errorf("unexpected window: %v", got)
	}
}

func TestSessions_EvictsWhenFull(t *testing.T) {
	s := newSessions(2)
	for i := 0; i < maxSessions+10; i++ {
		s.add(fmt.Sprintf("session-%d", i), "q", "a")
	}
	if len(s.turns) > maxSessions {
		t.Errorf("session table grew to %d, want at most %d", len(s.turns), maxSessions)
	}
	// A returning session must not evict its own history.
	s.add("session-0", "q2", "a2")
	before := len(s.turns)
	s.add("session-0", "q3", "a3")
	if len(s.turns) != before {
		t.Errorf("existing session changed table size: %d -> %d", before, len(s.turns))
	}
}
