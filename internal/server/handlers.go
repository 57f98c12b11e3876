package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"web-summarizer/internal/domain"

	"github.com/google/uuid"
	"go.mau.fi/util/exhttp"
)

const (
	requestIDHeader = "X-Request-ID"

	internalErrorDetail = "internal server error"
)

type summarizeRequest struct {
	URL    string `json:"url"`
	Method string `json:"method,omitempty"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := uuid.NewString()
	w.Header().Set(requestIDHeader, requestID)

	var body summarizeRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.log.WarnContext(ctx, "Failed to decode request body",
			"error", err,
			"component", "handler",
			"requestID", requestID)

		exhttp.WriteJSONResponse(w, http.StatusBadRequest, errorResponse{
			Detail: fmt.Sprintf("invalid request body: %s", err),
		})

		return
	}

	result, err := s.runner.Run(ctx, requestID, domain.SummaryRequest{
		URL:    body.URL,
		Method: body.Method,
	})
	if err != nil {
		status, detail := errorStatus(err)
		if status == http.StatusInternalServerError && detail == internalErrorDetail {
			s.log.ErrorContext(ctx, "Unclassified pipeline error",
				"error", err,
				"component", "handler",
				"requestID", requestID)
		}

		exhttp.WriteJSONResponse(w, status, errorResponse{Detail: detail})

		return
	}

	exhttp.WriteJSONResponse(w, http.StatusOK, summarizeResponse{Summary: result.Summary})
}

// errorStatus maps pipeline errors to the HTTP status and detail returned to
// the caller.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrFetch):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrExtraction):
		return http.StatusInternalServerError, err.Error()
	case errors.Is(err, domain.ErrSummarization):
		return http.StatusInternalServerError, err.Error()
	default:
		return http.StatusInternalServerError, internalErrorDetail
	}
}
