// internal/server/server.go
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/common/config"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/common/logger"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/immigration"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/router"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/session"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/speech"
)

// Server wires the conversational router, the immigration knowledge base and
// the speech simulators behind the HTTP boundary. All request validation
// happens here; the domain packages below never see malformed input.
type Server struct {
	config     *config.Config
	logger     logger.Logger
	router     *router.Router
	knowledge  *immigration.Knowledge
	sessions   session.Store
	recognizer speech.Recognizer
	synth      speech.Synthesizer
}

// New assembles the server from its already-constructed dependencies.
func New(cfg *config.Config, log logger.Logger, r *router.Router, k *immigration.Knowledge, sessions session.Store, rec speech.Recognizer, synth speech.Synthesizer) *Server {
	return &Server{
		config:     cfg,
		logger:     log.WithFields(map[string]interface{}{"component": "server"}),
		router:     r,
		knowledge:  k,
		sessions:   sessions,
		recognizer: rec,
		synth:      synth,
	}
}

// Routes builds the gin engine with the middleware chain and all endpoints.
func (s *Server) Routes() http.Handler {
	engine := gin.New()
	engine.Use(requestIDMiddleware(), s.loggingMiddleware(), metricsMiddleware(), gin.Recovery(), corsMiddleware())

	engine.GET("/healthz", s.handleHealthz)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	engine.POST("/chat", s.handleChat)

	engine.POST("/immigration", s.handleImmigration)
	engine.GET("/immigration/visa-types", s.handleVisaTypes)
	engine.GET("/immigration/documents/:name", s.handleDocumentDetails)

	engine.POST("/wellness", s.handleWellness)
	engine.GET("/wellness/greeting", s.handleWellnessGreeting)

	engine.POST("/speech/transcribe", s.handleTranscribe)
	engine.POST("/speech/synthesize", s.handleSynthesize)

	return engine
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": s.config.App.Name})
}

// pivotOrDefault applies the configured pivot when the client omits language.
func (s *Server) pivotOrDefault(language string) string {
	if language == "" {
		return s.config.Language.Pivot
	}
	return language
}
