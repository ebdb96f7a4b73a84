// internal/router/router.go
package router

import (
	"context"
	"time"

	apperrors "github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/common/errors"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/common/logger"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/common/metrics"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/common/observability"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/nlp"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/translate"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/wellness"
)

// IntentUnknown is how the no-match sentinel is rendered at the boundary.
const IntentUnknown = "unknown"

// Fixed replies for the non-delegating branches. The visa reply deliberately
// redirects to the immigration endpoint: no entity extraction is performed on
// conversational visa questions.
const (
	farewellReply = "Goodbye! Take care."
	fallbackReply = "I'm not sure how to help with that. Can you try rephrasing?"
)

// Result is the outcome of routing one utterance.
type Result struct {
	Response string
	Intent   string
}

// Router normalizes an utterance, detects its intent, dispatches to the
// matching domain handler, and bridges every reply through the pivot
// language. All lookups degrade to defined fallbacks; routing itself never
// fails.
type Router struct {
	table      *nlp.Table
	bot        *wellness.Bot
	translator translate.Translator
	pivot      string
	logger     logger.Logger
	obs        *observability.Observability
}

// New builds the router. obs may be nil.
func New(table *nlp.Table, bot *wellness.Bot, translator translate.Translator, pivot string, log logger.Logger, obs *observability.Observability) *Router {
	return &Router{
		table:      table,
		bot:        bot,
		translator: translator,
		pivot:      pivot,
		logger:     log.WithFields(map[string]interface{}{"component": "router"}),
		obs:        obs,
	}
}

// Handle routes one utterance and assembles the reply in the requested
// language. An empty text is valid input and resolves to the unknown-intent
// reply; rejecting an absent text field is the HTTP boundary's job.
func (r *Router) Handle(ctx context.Context, text, language string) Result {
	start := time.Now()

	intent := r.table.Match(text, language)
	metrics.IntentsDetected.WithLabelValues(r.renderIntent(intent), language).Inc()

	var response string
	switch intent {
	case nlp.IntentGreet:
		// The wellness bot's greeting pool doubles as the generic greeting.
		response = r.toUser(ctx, r.bot.Greeting(), language)

	case nlp.IntentMentalWellness, nlp.IntentMentalHelp:
		pivotText := r.toPivot(ctx, text, language)
		metrics.WellnessExchanges.WithLabelValues(string(wellness.PhaseFollowUp)).Inc()
		reply := r.bot.ChatRound(wellness.PhaseFollowUp, pivotText)
		response = r.toUser(ctx, reply, language)

	case nlp.IntentVisaStatus, nlp.IntentVisaTypes:
		response = r.toUser(ctx, visaRedirectReply(intent), language)

	case nlp.IntentFarewell:
		response = r.toUser(ctx, farewellReply, language)

	default:
		response = r.toUser(ctx, fallbackReply, language)
	}

	rendered := r.renderIntent(intent)

	r.logger.Info("utterance routed", map[string]interface{}{
		"intent":   rendered,
		"language": language,
	})
	if r.obs != nil {
		r.obs.RecordRequestProcessed(ctx, rendered)
		r.obs.RecordRequestDuration(ctx, time.Since(start), rendered)
	}

	return Result{Response: response, Intent: rendered}
}

// WellnessRound runs one wellness dialogue round with pivot bridging on both
// sides, outside of intent routing. Used by the dedicated wellness endpoints.
func (r *Router) WellnessRound(ctx context.Context, phase wellness.Phase, text, language string) string {
	metrics.WellnessExchanges.WithLabelValues(string(phase)).Inc()

	if phase == wellness.PhaseOpening {
		return r.toUser(ctx, r.bot.ChatRound(wellness.PhaseOpening, ""), language)
	}

	pivotText := r.toPivot(ctx, text, language)
	reply := r.bot.ChatRound(wellness.PhaseFollowUp, pivotText)
	return r.toUser(ctx, reply, language)
}

// Localize translates a list of pivot-language strings into the requested
// language, used for immigration step and document lists.
func (r *Router) Localize(ctx context.Context, texts []string, language string) []string {
	if language == r.pivot {
		return texts
	}
	out := make([]string, len(texts))
	for i, text := range texts {
		out[i] = r.toUser(ctx, text, language)
	}
	return out
}

// toUser bridges pivot-language text out to the user's language. Translation
// failure is recoverable: the untranslated pivot text is returned.
func (r *Router) toUser(ctx context.Context, text, language string) string {
	if language == r.pivot {
		return text
	}

	translated, err := r.translator.Translate(ctx, text, language, r.pivot)
	if err != nil {
		bridgeErr := apperrors.NewTranslationFailedError(err)
		metrics.TranslationCalls.WithLabelValues("to_user", "error").Inc()
		r.logger.WithError(bridgeErr).Warn("returning pivot text", map[string]interface{}{
			"targetLang": language,
			"code":       string(bridgeErr.Code),
			"retryable":  apperrors.IsRetryable(bridgeErr),
		})
		return text
	}
	metrics.TranslationCalls.WithLabelValues("to_user", "ok").Inc()
	return translated
}

// toPivot bridges user-language text into the pivot language so the domain
// handlers can operate on it.
func (r *Router) toPivot(ctx context.Context, text, language string) string {
	if language == r.pivot {
		return text
	}

	translated, err := r.translator.Translate(ctx, text, r.pivot, language)
	if err != nil {
		bridgeErr := apperrors.NewTranslationFailedError(err)
		metrics.TranslationCalls.WithLabelValues("to_pivot", "error").Inc()
		r.logger.WithError(bridgeErr).Warn("using raw text", map[string]interface{}{
			"sourceLang": language,
			"code":       string(bridgeErr.Code),
			"retryable":  apperrors.IsRetryable(bridgeErr),
		})
		return text
	}
	metrics.TranslationCalls.WithLabelValues("to_pivot", "ok").Inc()
	return translated
}

func (r *Router) renderIntent(intent string) string {
	if intent == nlp.IntentNone {
		return IntentUnknown
	}
	return intent
}

func visaRedirectReply(intent string) string {
	return "This query (intent: " + intent + ") would be handled by the immigration module. For example, try the /immigration endpoint for specific details."
}
