package domain

import "context"

// Stream is a finite, one-directional sequence of text fragments produced
// by a streaming generation call. The producer pushes fragments in emission
// order and closes the stream exactly once; the consumer pulls until the
// fragment channel closes. Concatenating all fragments in order yields the
// full answer text. A Stream is not restartable.
type Stream struct {
	fragments chan string
	done      chan struct{}
	err       error
}

// NewStream creates a stream with a small producer-side buffer.
func NewStream() *Stream {
	return &Stream{
		fragments: make(chan string, 16),
		done:      make(chan struct{}),
	}
}

// Push delivers one fragment to the consumer. It returns false once ctx is
// cancelled, letting producers stop early when the client disconnects.
func (s *Stream) Push(ctx context.Context, fragment string) bool {
	select {
	case s.fragments <- fragment:
		return true
	case <-ctx.Done():
		return false
	}
}

// Close ends the stream, recording an optional terminal error. Must be
// called exactly once by the producer.
func (s *Stream) Close(err error) {
	s.err = err
	close(s.fragments)
	close(s.done)
}

// Fragments returns the consumer channel. It is closed when the producer
// finishes or fails.
func (s *Stream) Fragments() <-chan string {
	return s.fragments
}

// Err reports the producer's terminal error. Valid after Fragments closes.
func (s *Stream) Err() error {
	<-s.done
	return s.err
}

// Drain consumes the stream to completion and returns the concatenated
// text. It stops early, without error, if ctx is cancelled.
func (s *Stream) Drain(ctx context.Context) (string, error) {
	var out []byte
	for {
		select {
		case frag, ok := <-s.fragments:
			if !ok {
				return string(out), s.Err()
			}
			out = append(out, frag...)
		case <-ctx.Done():
			return string(out), ctx.Err()
		}
	}
}
