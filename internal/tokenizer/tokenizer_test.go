package tokenizer

import "testing"

func newTestCounter(t *testing.T) *Counter {
	t.Helper()
	c, err := NewCounter()
	if err != nil {
		t.Skipf("encoding unavailable: %v", err)
	}
	return c
}

func TestCountEmpty(t *testing.T) {
	c := newTestCounter(t)
	if n := c.Count(""); n != 0 {
		t.Errorf("Count(\"\") = %d, want 0", n)
	}
}

func TestCountGrowsWithText(t *testing.T) {
	c := newTestCounter(t)

	short := c.Count("How many wins do the 49ers have?")
	long := c.Count("How many wins do the 49ers have in the 2024 regular season, and how does that compare to the Seahawks?")

	if short <= 0 {
		t.Fatalf("short count = %d, want > 0", short)
	}
	if long <= short {
		t.Errorf("long count = %d, want > %d", long, short)
	}
}
