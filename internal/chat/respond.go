// Package chat implements the mock assistant responder: a closed table of
// canned replies picked at random, plus a markdown-subset renderer.
package chat

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Role identifies a message author.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single chat message.
type Message struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
	Text string `json:"text"`
}

const (
	typingDelay  = 1500 * time.Millisecond
	typingJitter = 1000 * time.Millisecond
)

// cannedResponses is the fixed reply table. Selection is uniform and
// independent of the user's input.
var cannedResponses = []string{
	"I'd be happy to help! Let me analyze that for you.\n\nHere's what I found:\n\n- The layout adapts cleanly to small screens\n- Controls are sized for touch input\n- The interface follows a consistent dark color scheme",

	"Great question! Here's a code example:\n\n```javascript\nfunction greet(name) {\n  return `Hello, ${name}!`;\n}\n\nconsole.log(greet('World'));\n```\n\nThis function demonstrates a simple greeting pattern.",

	"I can help you with that! The key considerations are:\n\n- User experience on mobile devices\n- Touch-optimized controls\n- Responsive layout design\n- Performance optimization\n\nWould you like me to elaborate on any of these points?",

	"Let me create that for you:\n\n```css\n.container {\n  display: flex;\n  flex-direction: column;\n  background: #1a1a1a;\n  color: #e8e8e8;\n}\n```\n\nThis CSS creates a dark-themed container with flexbox layout.",
}

const greetingText = "Hi! I'm your AI pair programmer. I can help you write code, debug issues, explain complex concepts, and build applications.\n\nWhat would you like to work on today?"

// Responder produces canned assistant replies.
type Responder struct {
	rng *rand.Rand
}

// NewResponder returns a responder with a time-seeded source.
func NewResponder() *Responder {
	return NewResponderWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewResponderWithSource returns a responder using the given random
// source, for deterministic tests.
func NewResponderWithSource(src rand.Source) *Responder {
	return &Responder{rng: rand.New(src)}
}

// Reply picks one canned response uniformly at random. The input is
// ignored; the table is closed.
func (r *Responder) Reply(input string) Message {
	_ = input
	return Message{
		ID:   uuid.NewString(),
		Role: RoleAssistant,
		Text: cannedResponses[r.rng.Intn(len(cannedResponses))],
	}
}

// Greeting returns the fixed new-conversation message.
func (r *Responder) Greeting() Message {
	return Message{
		ID:   uuid.NewString(),
		Role: RoleAssistant,
		Text: greetingText,
	}
}

// Delay returns a simulated typing delay of 1.5s plus up to 1s of jitter.
func (r *Responder) Delay() time.Duration {
	return typingDelay + time.Duration(r.rng.Int63n(int64(typingJitter)))
}
