// internal/server/handlers.go
package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/common/errors"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/models"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/session"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/wellness"
)

// respondError converts a StandardError into the wire shape. Only the message
// is exposed; code and details stay in the logs.
func (s *Server) respondError(c *gin.Context, err *apperrors.StandardError) {
	s.logger.Warn("request rejected", map[string]interface{}{
		"requestId": c.GetString(requestIDKey),
		"code":      string(err.Code),
		"category":  apperrors.GetErrorCategory(err.Code),
		"message":   err.Message,
	})
	c.JSON(apperrors.HTTPStatus(err.Code), gin.H{"error": err.Message})
}

// handleChat routes a free-form utterance through intent detection.
func (s *Server) handleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, apperrors.NewInvalidJSONError(err.Error()))
		return
	}
	if req.Text == nil {
		s.respondError(c, apperrors.NewMissingFieldError("text"))
		return
	}

	language := s.pivotOrDefault(req.Language)
	result := s.router.Handle(c.Request.Context(), *req.Text, language)

	c.JSON(http.StatusOK, models.ChatResponse{
		Response: result.Response,
		Intent:   result.Intent,
	})
}

// handleImmigration resolves the remaining stages and document list for a
// visa journey position. Unknown coordinates are not errors: the response
// carries the invalid-stage marker or empty lists instead.
func (s *Server) handleImmigration(c *gin.Context) {
	var req models.ImmigrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, apperrors.NewInvalidJSONError(err.Error()))
		return
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"country", req.Country},
		{"visa_type", req.VisaType},
		{"stage", req.Stage},
	} {
		if f.value == "" {
			missing = append(missing, "'"+f.name+"'")
		}
	}
	if len(missing) > 0 {
		err := apperrors.NewMissingFieldError(strings.Join(missing, ", "))
		err.Message = "Missing one or more fields: 'country', 'visa_type', 'stage'."
		s.respondError(c, err)
		return
	}

	language := s.pivotOrDefault(req.Language)
	ctx := c.Request.Context()

	steps := s.knowledge.RemainingStages(req.VisaType, req.Stage)
	documents := s.knowledge.RequiredDocuments(req.VisaType, req.Stage)

	c.JSON(http.StatusOK, models.ImmigrationResponse{
		Country:           req.Country,
		VisaType:          req.VisaType,
		CurrentStage:      req.Stage,
		NextSteps:         s.router.Localize(ctx, steps, language),
		RequiredDocuments: s.router.Localize(ctx, documents, language),
	})
}

// handleVisaTypes lists the visa types for one country code.
func (s *Server) handleVisaTypes(c *gin.Context) {
	country := c.Query("country")
	if country == "" {
		s.respondError(c, apperrors.NewMissingFieldError("country"))
		return
	}

	c.JSON(http.StatusOK, models.VisaTypesResponse{
		Country:   strings.ToUpper(country),
		VisaTypes: s.knowledge.VisaTypes(country),
	})
}

// handleDocumentDetails returns the reference entry for one document name.
func (s *Server) handleDocumentDetails(c *gin.Context) {
	name := c.Param("name")
	detail, ok := s.knowledge.DocumentDetails(name)
	if !ok {
		s.respondError(c, apperrors.NewNotFoundError("document"))
		return
	}

	c.JSON(http.StatusOK, models.DocumentDetailResponse{
		Name:    detail.Name,
		Purpose: detail.Purpose,
		Link:    detail.Link,
		Notes:   detail.Notes,
	})
}

// handleWellness runs one follow-up round of the wellness dialogue. An empty
// text is a valid check-in; only an absent field is rejected.
func (s *Server) handleWellness(c *gin.Context) {
	var req models.WellnessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, apperrors.NewInvalidJSONError(err.Error()))
		return
	}
	if req.Text == nil {
		s.respondError(c, apperrors.NewMissingFieldError("text"))
		return
	}

	language := s.pivotOrDefault(req.Language)
	reply := s.router.WellnessRound(c.Request.Context(), wellness.PhaseFollowUp, *req.Text, language)

	resp := models.WellnessResponse{Response: reply}
	if req.SessionID != "" {
		resp.Turns = s.recordTurn(c, req.SessionID)
	}
	c.JSON(http.StatusOK, resp)
}

// handleWellnessGreeting opens a wellness exchange with a greeting and a
// check-in question.
func (s *Server) handleWellnessGreeting(c *gin.Context) {
	language := s.pivotOrDefault(c.Query("language"))
	reply := s.router.WellnessRound(c.Request.Context(), wellness.PhaseOpening, "", language)

	c.JSON(http.StatusOK, models.WellnessResponse{Response: reply})
}

// recordTurn bumps the exchange counter for a caller-supplied session id.
// Store failures degrade to an untracked exchange rather than failing the
// conversation round.
func (s *Server) recordTurn(c *gin.Context, sessionID string) int {
	ctx := c.Request.Context()

	state, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, session.ErrNotFound) {
		state = &session.State{SessionID: sessionID}
	} else if err != nil {
		storeErr := apperrors.NewSessionStoreFailedError(err)
		s.logger.WithError(storeErr).Warn("session lookup failed", map[string]interface{}{
			"sessionId": sessionID,
			"code":      string(storeErr.Code),
		})
		return 0
	}

	state.Turns++
	state.UpdatedAt = time.Now().UTC()
	if err := s.sessions.Save(ctx, state); err != nil {
		storeErr := apperrors.NewSessionStoreFailedError(err)
		s.logger.WithError(storeErr).Warn("session save failed", map[string]interface{}{
			"sessionId": sessionID,
			"code":      string(storeErr.Code),
		})
		return 0
	}
	return state.Turns
}

// handleTranscribe converts audio to text via the configured recognizer.
func (s *Server) handleTranscribe(c *gin.Context) {
	var req models.TranscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, apperrors.NewInvalidJSONError(err.Error()))
		return
	}
	if len(req.Audio) == 0 {
		s.respondError(c, apperrors.NewMissingFieldError("audio"))
		return
	}

	language := s.pivotOrDefault(req.Language)
	text, err := s.recognizer.Transcribe(c.Request.Context(), req.Audio, language)
	if err != nil {
		s.respondError(c, apperrors.NewSpeechRecognitionError(err))
		return
	}

	c.JSON(http.StatusOK, models.TranscribeResponse{Text: text, Language: language})
}

// handleSynthesize converts text to audio via the configured synthesizer.
func (s *Server) handleSynthesize(c *gin.Context) {
	var req models.SynthesizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, apperrors.NewInvalidJSONError(err.Error()))
		return
	}
	if req.Text == nil || *req.Text == "" {
		s.respondError(c, apperrors.NewMissingFieldError("text"))
		return
	}

	language := s.pivotOrDefault(req.Language)
	audio, err := s.synth.Synthesize(c.Request.Context(), *req.Text, language)
	if err != nil {
		s.respondError(c, apperrors.NewSpeechSynthesisError(err))
		return
	}

	c.JSON(http.StatusOK, models.SynthesizeResponse{Audio: audio, Language: language})
}
