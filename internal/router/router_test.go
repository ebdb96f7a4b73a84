// internal/router/router_test.go
package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/common/logger"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/nlp"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/translate"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/wellness"
)

// ==========================
// Test Helpers
// ==========================

// stubRand pins the wellness bot's pool picks to index zero and its coin flip
// below the follow-up threshold, so replies are deterministic.
type stubRand struct {
	float float64
}

func (s *stubRand) Intn(int) int     { return 0 }
func (s *stubRand) Float64() float64 { return s.float }

func testTable(t *testing.T) *nlp.Table {
	t.Helper()
	table, err := nlp.NewTable([]nlp.Definition{
		{Name: nlp.IntentGreet, Samples: map[string][]string{
			"en": {"hello", "hi"},
			"es": {"hola"},
		}},
		{Name: nlp.IntentMentalWellness, Samples: map[string][]string{
			"en": {"i feel sad", "i am stressed"},
			"es": {"me siento triste"},
		}},
		{Name: nlp.IntentVisaStatus, Samples: map[string][]string{
			"en": {"check my visa status"},
			"es": {"verificar estado de mi visa"},
		}},
		{Name: nlp.IntentFarewell, Samples: map[string][]string{
			"en": {"bye", "goodbye"},
		}},
	})
	require.NoError(t, err)
	return table
}

func testRouter(t *testing.T, translator translate.Translator) *Router {
	t.Helper()
	bot := wellness.NewBot(wellness.WithRand(&stubRand{float: 0.1}))
	return New(testTable(t), bot, translator, "en", logger.NewNoOpLogger(), nil)
}

// echoTranslator tags every call so tests can observe the bridging direction.
func echoTranslator() translate.Translator {
	return translate.Func(func(_ context.Context, text, targetLang, sourceLang string) (string, error) {
		return text + " [" + sourceLang + "->" + targetLang + "]", nil
	})
}

func failingTranslator() translate.Translator {
	return translate.Func(func(_ context.Context, _, _, _ string) (string, error) {
		return "", errors.New("translation backend unavailable")
	})
}

// ==========================
// Handle Dispatch
// ==========================

func TestHandle_PivotLanguageBranches(t *testing.T) {
	r := testRouter(t, translate.Passthrough())
	bot := wellness.NewBot(wellness.WithRand(&stubRand{float: 0.1}))

	tests := []struct {
		name         string
		text         string
		wantIntent   string
		wantResponse string
	}{
		{
			name:         "greeting uses the wellness greeting pool",
			text:         "hello there",
			wantIntent:   "greet",
			wantResponse: bot.Greetings()[0],
		},
		{
			name:       "wellness intent runs a follow-up round",
			text:       "i feel sad today",
			wantIntent: "ask_mental_wellness",
			wantResponse: wellness.DefaultRules()[0].Response + " " +
				bot.Questions()[0],
		},
		{
			name:         "visa intent redirects to the immigration endpoint",
			text:         "please check my visa status",
			wantIntent:   "check_visa_status",
			wantResponse: "This query (intent: check_visa_status) would be handled by the immigration module. For example, try the /immigration endpoint for specific details.",
		},
		{
			name:         "farewell",
			text:         "goodbye for now",
			wantIntent:   "farewell",
			wantResponse: "Goodbye! Take care.",
		},
		{
			name:         "no match falls back to the rephrase prompt",
			text:         "what is the meaning of life",
			wantIntent:   "unknown",
			wantResponse: "I'm not sure how to help with that. Can you try rephrasing?",
		},
		{
			name:         "empty text is valid and resolves to unknown",
			text:         "",
			wantIntent:   "unknown",
			wantResponse: "I'm not sure how to help with that. Can you try rephrasing?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := r.Handle(context.Background(), tt.text, "en")
			assert.Equal(t, tt.wantIntent, result.Intent)
			assert.Equal(t, tt.wantResponse, result.Response)
		})
	}
}

// ==========================
// Pivot Bridging
// ==========================

func TestHandle_NonPivotLanguageBridgesBothWays(t *testing.T) {
	r := testRouter(t, echoTranslator())
	bot := wellness.NewBot(wellness.WithRand(&stubRand{float: 0.1}))

	t.Run("greeting is matched in the user's language and translated out", func(t *testing.T) {
		result := r.Handle(context.Background(), "hola amigo", "es")

		assert.Equal(t, "greet", result.Intent)
		assert.Equal(t, bot.Greetings()[0]+" [en->es]", result.Response)
	})

	t.Run("wellness text is bridged into the pivot before the bot sees it", func(t *testing.T) {
		// Inbound bridge rewrites the Spanish text to an English sadness
		// phrase so the rule fires; outbound bridge tags the reply.
		bridging := translate.Func(func(_ context.Context, text, targetLang, _ string) (string, error) {
			if targetLang == "en" {
				return "i am sad", nil
			}
			return text + " [->" + targetLang + "]", nil
		})
		br := testRouter(t, bridging)

		result := br.Handle(context.Background(), "me siento triste", "es")

		assert.Equal(t, "ask_mental_wellness", result.Intent)
		assert.Equal(t, wellness.DefaultRules()[0].Response+" "+bot.Questions()[0]+" [->es]", result.Response)
	})

	t.Run("pivot language skips translation entirely", func(t *testing.T) {
		result := r.Handle(context.Background(), "hello", "en")

		assert.Equal(t, "greet", result.Intent)
		assert.NotContains(t, result.Response, "[")
	})
}

func TestHandle_TranslationFailureFallsBackToPivotText(t *testing.T) {
	r := testRouter(t, failingTranslator())
	bot := wellness.NewBot(wellness.WithRand(&stubRand{float: 0.1}))

	result := r.Handle(context.Background(), "hola", "es")

	assert.Equal(t, "greet", result.Intent)
	assert.Equal(t, bot.Greetings()[0], result.Response)
}

// ==========================
// Shipped Intent Data
// ==========================

// The shipped intents file must detect English greeting phrases under
// non-pivot languages too, so "hello" asked in Spanish is greeted in Spanish
// instead of falling through to the unknown-intent reply.
func TestHandle_ShippedIntentsGreetAcrossLanguages(t *testing.T) {
	table, err := nlp.Load("../../configs/intents.json")
	require.NoError(t, err)

	bot := wellness.NewBot(wellness.WithRand(&stubRand{float: 0.1}))
	r := New(table, bot, translate.NewSimulator(logger.NewNoOpLogger()), "en", logger.NewNoOpLogger(), nil)

	t.Run("hello under es is a greet bridged to spanish", func(t *testing.T) {
		result := r.Handle(context.Background(), "hello", "es")

		assert.Equal(t, "greet", result.Intent)
		assert.Contains(t, result.Response, "(simulated translation to es)")
	})

	t.Run("hola under es is a greet", func(t *testing.T) {
		result := r.Handle(context.Background(), "hola amigo", "es")

		assert.Equal(t, "greet", result.Intent)
	})

	t.Run("hello under en stays unbridged", func(t *testing.T) {
		result := r.Handle(context.Background(), "hello there", "en")

		assert.Equal(t, "greet", result.Intent)
		assert.NotContains(t, result.Response, "simulated translation")
	})
}

// ==========================
// Wellness Rounds
// ==========================

func TestWellnessRound(t *testing.T) {
	bot := wellness.NewBot(wellness.WithRand(&stubRand{float: 0.1}))

	t.Run("opening ignores user text and pairs greeting with question", func(t *testing.T) {
		r := testRouter(t, translate.Passthrough())

		got := r.WellnessRound(context.Background(), wellness.PhaseOpening, "ignored", "en")

		assert.Equal(t, bot.Greetings()[0]+" "+bot.Questions()[0], got)
	})

	t.Run("follow-up bridges the user text and the reply", func(t *testing.T) {
		r := testRouter(t, echoTranslator())

		got := r.WellnessRound(context.Background(), wellness.PhaseFollowUp, "estoy triste", "es")

		assert.Contains(t, got, "[en->es]")
	})

	t.Run("coin flip above threshold closes the round", func(t *testing.T) {
		closing := wellness.NewBot(wellness.WithRand(&stubRand{float: 0.9}))
		r := New(testTable(t), closing, translate.Passthrough(), "en", logger.NewNoOpLogger(), nil)

		got := r.WellnessRound(context.Background(), wellness.PhaseFollowUp, "i feel sad", "en")

		assert.Contains(t, got, wellness.ClosingRemark)
	})
}

// ==========================
// Localize
// ==========================

func TestLocalize(t *testing.T) {
	t.Run("pivot language returns the input unchanged", func(t *testing.T) {
		r := testRouter(t, failingTranslator())
		steps := []string{"Visa Interview", "Port of Entry"}

		assert.Equal(t, steps, r.Localize(context.Background(), steps, "en"))
	})

	t.Run("non-pivot language translates each entry", func(t *testing.T) {
		r := testRouter(t, echoTranslator())

		got := r.Localize(context.Background(), []string{"Visa Interview"}, "es")

		assert.Equal(t, []string{"Visa Interview [en->es]"}, got)
	})

	t.Run("failure keeps the pivot entries", func(t *testing.T) {
		r := testRouter(t, failingTranslator())

		got := r.Localize(context.Background(), []string{"Visa Interview"}, "es")

		assert.Equal(t, []string{"Visa Interview"}, got)
	})
}
