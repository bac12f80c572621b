package querylog

import (
	"fmt"
	"testing"
)

func TestTopCountsAndOrder(t *testing.T) {
	log := New()
	for _, q := range []string{"x", "x", "y"} {
		log.Append(q)
	}

	top := log.Top(5)
	if len(top) != 2 {
		t.Fatalf("expected 2 distinct queries, got %d", len(top))
	}
	if top[0].Text != "x" || top[0].Count != 2 {
		t.Fatalf("expected x:2 first, got %s:%d", top[0].Text, top[0].Count)
	}
	if top[1].Text != "y" || top[1].Count != 1 {
		t.Fatalf("expected y:1 second, got %s:%d", top[1].Text, top[1].Count)
	}
}

func TestTopTieBreakFirstSeen(t *testing.T) {
	log := New()
	for _, q := range []string{"b", "a", "c", "a", "c", "b"} {
		log.Append(q)
	}

	top := log.Top(5)
	want := []string{"b", "a", "c"}
	for i, text := range want {
		if top[i].Text != text || top[i].Count != 2 {
			t.Fatalf("position %d: expected %s:2, got %s:%d", i, text, top[i].Text, top[i].Count)
		}
	}
}

func TestTopLimit(t *testing.T) {
	log := New()
	for i := 0; i < 10; i++ {
		log.Append(fmt.Sprintf("q%d", i))
	}

	if got := len(log.Top(5)); got != 5 {
		t.Fatalf("expected top list capped at 5, got %d", got)
	}
}

func TestTopEmpty(t *testing.T) {
	log := New()
	if top := log.Top(5); len(top) != 0 {
		t.Fatalf("expected empty result for empty log, got %v", top)
	}
	if log.Len() != 0 {
		t.Fatalf("expected empty log")
	}
}
