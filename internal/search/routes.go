package search

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts search endpoints under /api/search on the given router.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/search", func(r chi.Router) {
		r.Get("/", handleSearch(svc))
		r.Get("/html", handleSearchHTML(svc))
		r.Get("/stats", handleStats(svc))
	})
}

// searchResponse is the JSON body for GET /api/search. Visible is false when
// the query was too short (or the index is unavailable) and nothing ran.
type searchResponse struct {
	Visible bool `json:"visible"`
	Display
}

func handleSearch(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))

		d, ok := svc.Query(query, HTMLMarker)
		if !ok {
			writeJSON(w, http.StatusOK, searchResponse{Display: Display{Query: query, Results: []ResultView{}}})
			return
		}
		writeJSON(w, http.StatusOK, searchResponse{Visible: true, Display: d})
	}
}

func handleSearchHTML(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))

		d, ok := svc.Query(query, HTMLMarker)
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := WriteHTML(w, d); err != nil {
			slog.Error("rendering search results", "error", err)
		}
	}
}

func handleStats(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Stats())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
