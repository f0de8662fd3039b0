package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"points_hotel/internal/adapters/observability"
	"points_hotel/internal/app"
	"points_hotel/internal/domain"
)

type Handlers struct{ S *app.SearchService }

type problem struct {
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Status  int      `json:"status"`
	Detail  string   `json:"detail,omitempty"`
	Invalid []string `json:"invalid,omitempty"` // offending filter fields, when applicable
}

type searchResponse struct {
	Count   int            `json:"count"`
	Results []domain.Hotel `json:"results"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/search", h.search)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string, invalid []string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	p := problem{Type: "about:blank", Title: title, Status: status, Detail: detail, Invalid: invalid}
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// search runs the query pipeline. Error mapping: missing query and schema
// violations are client errors; everything else (missing credential,
// malformed model output, unexpected fault) is service-unavailable.
func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		observability.ObserveSearch("client_error", 0)
		writeProblem(w, http.StatusBadRequest, "Missing query", "q must be a non-empty string", nil)
		return
	}

	results, err := h.S.Search(r.Context(), query)
	if err != nil {
		var serr *domain.SchemaError
		switch {
		case errors.As(err, &serr):
			observability.ObserveSearch("client_error", 0)
			writeProblem(w, http.StatusBadRequest, "Invalid filter", "translated filter violates the schema", serr.Fields)
		default:
			log.Error().Err(err).Str("query", query).Msg("search failed")
			observability.ObserveSearch("unavailable", 0)
			writeProblem(w, http.StatusServiceUnavailable, "Search unavailable", err.Error(), nil)
		}
		return
	}

	if results == nil {
		results = []domain.Hotel{}
	}
	observability.ObserveSearch("ok", len(results))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(searchResponse{Count: len(results), Results: results}); err != nil {
		log.Error().Err(err).Msg("failed to write search response")
	}
}
