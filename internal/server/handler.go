// Package server provides the HTTP surface: a JSON explain endpoint and an
// embedded single-page UI.
package server

import (
	_ "embed"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/r-okamoto/explainer/internal/explanation"
	"github.com/r-okamoto/explainer/internal/inference"
)

//go:embed index.html
var indexPage []byte

// ExplainRequest is the request body of POST /api/v1/explain
type ExplainRequest struct {
	Paragraph string `json:"paragraph"`
}

// ErrorResponse is returned on any failed request. Kind is "parse" or
// "schema" for malformed model output, empty otherwise.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// ExplainHandler serves the explain API and the UI page.
type ExplainHandler struct {
	explainer *explanation.Explainer
	model     string
}

func NewExplainHandler(explainer *explanation.Explainer, model string) *ExplainHandler {
	return &ExplainHandler{
		explainer: explainer,
		model:     model,
	}
}

// NewServeMux registers all routes for the handler
func NewServeMux(handler *ExplainHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handler.Index)
	mux.HandleFunc("POST /api/v1/explain", handler.Explain)
	return mux
}

func (h *ExplainHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexPage)
}

func (h *ExplainHandler) Explain(w http.ResponseWriter, r *http.Request) {
	var request ExplainRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.explainer.Explain(r.Context(), request.Paragraph)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// writeError maps the two error kinds onto status codes: empty input and
// malformed model output are client-visible 4xx, provider failures are 502.
func (h *ExplainHandler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, explanation.ErrEmptyParagraph) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: explanation.ErrEmptyParagraph.Error()})
		return
	}

	var validationErr *explanation.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: validationErr.Error(),
			Kind:  string(validationErr.Kind),
		})
		return
	}

	var requestErr *inference.RequestError
	if errors.As(err, &requestErr) {
		slog.Default().Error("model request failed", "error", requestErr)
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "request failed"})
		return
	}

	slog.Default().Error("explain failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Default().Error("failed to encode response", "error", err)
	}
}
