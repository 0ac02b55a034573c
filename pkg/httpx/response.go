package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	pkgrequestctx "github.com/derschnepf/Synergy-app/pkg/requestctx"
)

// WriteJSON writes a JSON response with the provided status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteRawJSON writes an already encoded JSON body.
func WriteRawJSON(w http.ResponseWriter, status int, b []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

// WriteError standardizes error responses and logs with correlation id.
func WriteError(w http.ResponseWriter, r *http.Request, he *HTTPError) {
	cid := pkgrequestctx.CorrelationID(r.Context())
	if cid != "" {
		w.Header().Set("X-Correlation-Id", cid)
	}
	body := map[string]any{
		"code":           he.Code,
		"message":        he.Message,
		"correlation_id": cid,
	}
	if he.Details != nil {
		body["details"] = he.Details
	}
	status := he.StatusCode
	if status == 0 {
		status = http.StatusInternalServerError
	}

	level := zerolog.WarnLevel
	if status >= http.StatusInternalServerError {
		level = zerolog.ErrorLevel
	}
	logger := pkgrequestctx.Logger(r.Context())
	logger.WithLevel(level).
		Str("code", he.Code).
		Int("status", status).
		Err(he.Err).
		Msg(he.Message)
	WriteJSON(w, status, map[string]any{"error": body})
}
