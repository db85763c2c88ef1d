package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/observability"
	"go.uber.org/zap"
)

type Response struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Success: false, Message: message})
}

// RespondWithServiceError renders a *domain.Error as is. Anything else is
// an unexpected failure: it is logged, reported and hidden behind a 500.
func RespondWithServiceError(w http.ResponseWriter, err error) {
	var de *domain.Error
	if errors.As(err, &de) {
		RespondWithJSON(w, de.Status, Response{Success: false, Message: de.Message, Errors: de.Errors})
		return
	}
	zap.L().Error("request failed", zap.Error(err))
	observability.CaptureErr(err)
	RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}

// DecodeJSON reads the request body into v.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errors.New("empty body")
	}
	return json.NewDecoder(r.Body).Decode(v)
}
