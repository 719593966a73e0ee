package chat

import (
	"math/rand"
	"testing"
	"time"
)

func TestReplyComesFromCannedTable(t *testing.T) {
	r := NewResponderWithSource(rand.NewSource(1))

	table := map[string]bool{}
	for _, c := range cannedResponses {
		table[c] = true
	}

	for i := 0; i < 50; i++ {
		m := r.Reply("anything at all")
		if !table[m.Text] {
			t.Fatalf("reply not in canned table: %q", m.Text)
		}
		if m.Role != RoleAssistant {
			t.Errorf("expected assistant role, got %s", m.Role)
		}
		if m.ID == "" {
			t.Error("expected message id")
		}
	}
}

func TestReplyIgnoresInput(t *testing.T) {
	a := NewResponderWithSource(rand.NewSource(7))
	b := NewResponderWithSource(rand.NewSource(7))

	for i := 0; i < 10; i++ {
		if a.Reply("question one").Text != b.Reply("completely different").Text {
			t.Fatal("selection must not depend on input")
		}
	}
}

func TestGreeting(t *testing.T) {
	m := NewResponder().Greeting()
	if m.Text != greetingText || m.Role != RoleAssistant {
		t.Errorf("unexpected greeting %+v", m)
	}
}

func TestDelayRange(t *testing.T) {
	r := NewResponderWithSource(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		d := r.Delay()
		if d < 1500*time.Millisecond || d >= 2500*time.Millisecond {
			t.Fatalf("delay out of range: %v", d)
		}
	}
}
