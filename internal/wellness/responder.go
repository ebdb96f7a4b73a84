// internal/wellness/responder.go
package wellness

import "strings"

// Rule maps one sentiment keyword to its canned empathetic response.
// Rule order is the tie-break: the first keyword found as a substring of the
// input wins, by declaration order, not by longest or most specific match.
type Rule struct {
	Keyword  string
	Response string
}

// DefaultRules returns the shipped keyword table in its contractual order.
func DefaultRules() []Rule {
	return []Rule{
		{Keyword: "sad", Response: "I'm sorry to hear you're feeling sad. Remember it's okay to feel this way, and you're not alone."},
		{Keyword: "stressed", Response: "It sounds like you're going through a lot. Take a deep breath; we can explore ways to manage this stress if you like."},
		{Keyword: "anxious", Response: "Anxiety can be really tough. I'm here for you. Sometimes just talking about it can help."},
		{Keyword: "lonely", Response: "Feeling lonely is a difficult emotion. Thank you for sharing that with me. I'm here to keep you company."},
		{Keyword: "happy", Response: "That's wonderful to hear you're feeling happy! What's bringing you joy?"},
		{Keyword: "angry", Response: "It's understandable to feel angry sometimes. What's causing this feeling for you?"},
		{Keyword: "tired", Response: "Feeling tired can make everything seem harder. Make sure you're giving yourself time to rest."},
	}
}

// DefaultFallbacks returns the pool used when no keyword matches.
func DefaultFallbacks() []string {
	return []string{
		"Thank you for sharing that with me. It takes courage to open up.",
		"I'm here to listen. Tell me more if you feel comfortable.",
		"That sounds important. How is it affecting you?",
		"I understand. Sometimes just expressing our feelings can make a difference.",
		"Remember to be kind to yourself.",
	}
}

// respond picks the canned response for the first keyword found in the input,
// or a random fallback when none match. Case-insensitive substring matching,
// same first-match discipline as the phrase matcher.
func (b *Bot) respond(text string) string {
	textLower := strings.ToLower(text)
	for _, rule := range b.rules {
		if strings.Contains(textLower, rule.Keyword) {
			return rule.Response
		}
	}
	return b.fallbacks[b.rng.Intn(len(b.fallbacks))]
}
