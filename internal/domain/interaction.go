package domain

import "time"

// Interaction is the completed record of one answered question: everything
// the persistence collaborator needs to compute cost and store history. The
// bucket travels on this value, never as process-wide state, so concurrent
// sessions cannot corrupt each other.
type Interaction struct {
	ID        string
	Session   string
	Question  string
	Corrected string
	Bucket    Bucket
	SQL       string
	Answer    string
	Usage     *Usage
	CreatedAt time.Time

	// Feedback fields, written later via the feedback endpoint.
	Correct  *bool
	Category string
}

// Event is one increment of the chat wire protocol: a text fragment tagged
// with what it is (the generated query or answer text) and whether more
// fragments follow. Every request terminates with a StatusDone event.
type Event struct {
	Fragment string
	Kind     EventKind
	Status   EventStatus
	Bucket   Bucket
}

// EventKind tags what an event's fragment contains.
type EventKind string

const (
	EventKindQuery  EventKind = "query"
	EventKindAnswer EventKind = "answer"
)

// EventStatus marks stream progress.
type EventStatus string

const (
	StatusGenerating EventStatus = "generating"
	StatusDone       EventStatus = "done"
)

// EmitFunc delivers one event to the client. Implementations forward
// fragments in call order; the orchestrator never reorders or batches.
type EmitFunc func(Event)
