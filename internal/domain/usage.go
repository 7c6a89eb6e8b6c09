package domain

// Stage names a pipeline step for token accounting.
type Stage string

const (
	StageClassify  Stage = "classify"
	StageRetrieve  Stage = "retrieve"
	StageSynthesis Stage = "synthesis"
	StageAnswer    Stage = "answer"
	StageExpert    Stage = "expert"
)

// StageUsage holds token counts for one pipeline stage.
type StageUsage struct {
	InputTokens  int
	OutputTokens int
}

// Usage accumulates per-stage token counts for a single request. The
// orchestrator owns one Usage value per request and threads it explicitly;
// it is never shared across requests.
type Usage struct {
	stages map[Stage]StageUsage
}

// NewUsage creates an empty per-request usage collector.
func NewUsage() *Usage {
	return &Usage{stages: make(map[Stage]StageUsage)}
}

// Add records tokens consumed by a stage.
func (u *Usage) Add(stage Stage, in, out int) {
	if u == nil {
		return
	}
	s := u.stages[stage]
	s.InputTokens += in
	s.OutputTokens += out
	u.stages[stage] = s
}

// Stage returns the accumulated counts for one stage.
func (u *Usage) Stage(stage Stage) StageUsage {
	if u == nil {
		return StageUsage{}
	}
	return u.stages[stage]
}

// Total sums counts across all stages.
func (u *Usage) Total() StageUsage {
	var t StageUsage
	if u == nil {
		return t
	}
	for _, s := range u.stages {
		t.InputTokens += s.InputTokens
		t.OutputTokens += s.OutputTokens
	}
	return t
}
