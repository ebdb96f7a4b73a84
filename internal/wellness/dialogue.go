// internal/wellness/dialogue.go
package wellness

import (
	"math/rand"
	"sync"
	"time"
)

// Phase identifies where a wellness exchange is: OPENING when the caller
// supplied no prior user text, FOLLOW_UP otherwise. The bot never advances
// the phase itself; the caller decides what the next call is.
type Phase string

const (
	PhaseOpening  Phase = "OPENING"
	PhaseFollowUp Phase = "FOLLOW_UP"
)

// ClosingRemark ends a follow-up round when the coin flip decides not to
// ask another question.
const ClosingRemark = "Remember, I'm here if you want to talk more."

// Rand is the random source the bot depends on. *rand.Rand satisfies it;
// tests substitute a deterministic stub.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Bot is the wellness dialogue engine: greeting/question pools, the
// empathetic rule table, and the follow-up coin flip. All tables are fixed at
// construction; the only mutable state is the random source, guarded by a
// mutex so the bot is safe for concurrent requests.
type Bot struct {
	greetings []string
	questions []string
	rules     []Rule
	fallbacks []string

	followUpProbability float64

	mu  sync.Mutex
	rng Rand
}

// Option customizes a Bot.
type Option func(*Bot)

// WithRand injects a random source. Tests use this to force pool indexes and
// both coin-flip branches.
func WithRand(rng Rand) Option {
	return func(b *Bot) { b.rng = rng }
}

// WithFollowUpProbability overrides the probability of asking another
// wellness question after an empathetic response. The shipped default is 0.7.
func WithFollowUpProbability(p float64) Option {
	return func(b *Bot) { b.followUpProbability = p }
}

// NewBot constructs the wellness bot with the shipped pools and rules.
func NewBot(opts ...Option) *Bot {
	b := &Bot{
		greetings: []string{
			"Hello there! I'm here to listen. How are you doing today?",
			"Hi! It's good to connect. What's on your mind?",
			"Hey! I hope you're having an okay day. Want to talk about anything?",
			"Greetings! I'm your friendly support bot. How can I help you feel a bit better today?",
		},
		questions: []string{
			"How are you feeling today, really?",
			"Is there anything on your mind that you'd like to share?",
			"What kind of thoughts have you been having lately?",
			"On a scale of 1 to 10, how would you rate your current mood?",
			"Remember, I'm here to listen without judgment. What's up?",
		},
		rules:               DefaultRules(),
		fallbacks:           DefaultFallbacks(),
		followUpProbability: 0.7,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return b
}

// Greeting returns a random greeting from the pool.
func (b *Bot) Greeting() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.greetings[b.rng.Intn(len(b.greetings))]
}

// Question returns a random wellness check question from the pool.
func (b *Bot) Question() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.questions[b.rng.Intn(len(b.questions))]
}

// Respond returns the empathetic response for the given user text.
func (b *Bot) Respond(text string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.respond(text)
}

// ChatRound runs one round of the wellness dialogue.
//
// OPENING (userText == ""): greeting plus a wellness check question, both
// picked uniformly at random. This is the sole entry point of an exchange.
//
// FOLLOW_UP: an empathetic response for the user's text, then with
// probability followUpProbability another wellness question, otherwise the
// fixed closing remark. The coin flip is evaluated exactly once per call.
func (b *Bot) ChatRound(phase Phase, userText string) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if phase == PhaseOpening {
		greeting := b.greetings[b.rng.Intn(len(b.greetings))]
		question := b.questions[b.rng.Intn(len(b.questions))]
		return greeting + " " + question
	}

	response := b.respond(userText)
	if b.rng.Float64() < b.followUpProbability {
		return response + " " + b.questions[b.rng.Intn(len(b.questions))]
	}
	return response + " " + ClosingRemark
}

// Greetings exposes the greeting pool for tests and boundary checks.
func (b *Bot) Greetings() []string {
	return b.greetings
}

// Questions exposes the wellness question pool.
func (b *Bot) Questions() []string {
	return b.questions
}
