// internal/translate/remote.go
package translate

import (
	"context"
	"time"

	httpclient "github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/common/http"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/common/logger"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/common/metrics"
)

// Remote calls a LibreTranslate-compatible HTTP backend. The router treats
// its failures as recoverable, so a flaky backend degrades to untranslated
// pivot text instead of failing requests.
type Remote struct {
	client   *httpclient.Client
	endpoint string
	logger   logger.Logger
}

// NewRemote builds the HTTP-backed translator.
func NewRemote(endpoint string, timeout time.Duration, log logger.Logger) *Remote {
	return &Remote{
		client:   httpclient.NewClient(timeout),
		endpoint: endpoint,
		logger:   log.WithFields(map[string]interface{}{"component": "translate-remote"}),
	}
}

type remoteRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type remoteResponse struct {
	TranslatedText string `json:"translatedText"`
}

func (r *Remote) Translate(ctx context.Context, text, targetLang, sourceLang string) (string, error) {
	req := remoteRequest{
		Q:      text,
		Source: sourceLang,
		Target: targetLang,
		Format: "text",
	}

	var resp remoteResponse
	if err := r.client.PostJSON(ctx, r.endpoint, req, &resp); err != nil {
		metrics.TranslationCalls.WithLabelValues("remote", "error").Inc()
		r.logger.WithError(err).Warn("remote translation failed", map[string]interface{}{
			"sourceLang": sourceLang,
			"targetLang": targetLang,
		})
		return "", err
	}

	metrics.TranslationCalls.WithLabelValues("remote", "ok").Inc()
	return resp.TranslatedText, nil
}
