package trivia

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	httperrors "github.com/dcortis/matchday-trivia/pkg/http/errors"
)

// HTTPHandler exposes the question endpoint.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

// HandleGetQuestion responds with one freshly generated question.
// Route: GET /v1/trivia/question
//
// The success payload is an array of exactly one question; the array wrapper
// is kept for forward compatibility with multi-question batches.
func (h *HTTPHandler) HandleGetQuestion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeMethodNotAllowed, "only GET is supported")
		return
	}

	q, err := h.svc.NextQuestion(r.Context())
	if err != nil {
		var insufficient *InsufficientDataError
		if errors.As(err, &insufficient) {
			h.logger.Warn().Err(err).Msg("not enough match data to build a question")
			httperrors.RespondError(w, http.StatusInternalServerError, httperrors.ErrCodeInsufficientData, insufficient.Error())
			return
		}
		h.logger.Error().Err(err).Msg("question generation failed")
		httperrors.RespondInternalError(w, "failed to generate question")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode([]Question{q}); err != nil {
		h.logger.Error().Err(err).Msg("response encode failed")
	}
}
