package chat

import (
	"fmt"
	"sync"
)

// maxSessions bounds the session table; an arbitrary session is dropped
// when a new one would exceed it.
const maxSessions = 1024

// sessions keeps a short rolling history per chat session so follow-up
// questions classify with context. State is scoped to the session key;
// concurrent sessions never see each other's turns.
type sessions struct {
	mu    sync.Mutex
	turns map[string][]string
	limit int
}

func newSessions(limit int) *sessions {
	return &sessions{turns: make(map[string][]string), limit: limit}
}

// history returns a copy of the session's prior turns, oldest first, one
// formatted line per utterance.
func (s *sessions) history(session string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.turns[session]
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

// add records one completed turn and trims the window.
func (s *sessions) add(session, question, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.turns[session]; !ok && len(s.turns) >= maxSessions {
		for k := range s.turns {
			delete(s.turns, k)
			break
		}
	}
	lines := append(s.turns[session],
		fmt.Sprintf("User: %s", question),
		fmt.Sprintf("Assistant: %s", answer),
	)
	if max := s.limit * 2; len(lines) > max {
		lines = lines[len(lines)-max:]
	}
	s.turns[session] = lines
}
