package theme

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ClientCookie identifies a browser across page loads.
const ClientCookie = "docsite_client"

// RegisterRoutes mounts theme endpoints under /api/theme on the given router.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/theme", func(r chi.Router) {
		r.Get("/", handleGet(store))
		r.Put("/", handleSet(store))
		r.Post("/toggle", handleToggle(store))
	})
}

type themeResponse struct {
	Theme Theme     `json:"theme"`
	Icons IconState `json:"icons"`
}

type setRequest struct {
	Theme string `json:"theme"`
}

func handleGet(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := ensureClientID(w, r)

		t, err := store.Get(r.Context(), clientID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, themeResponse{Theme: t, Icons: Icons(t)})
	}
}

func handleSet(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := ensureClientID(w, r)

		var req setRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		t, err := Parse(req.Theme)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := store.Set(r.Context(), clientID, t); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, themeResponse{Theme: t, Icons: Icons(t)})
	}
}

func handleToggle(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := ensureClientID(w, r)

		t, err := store.Toggle(r.Context(), clientID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, themeResponse{Theme: t, Icons: Icons(t)})
	}
}

// ensureClientID returns the client id from the cookie, issuing a new one
// when the request has none.
func ensureClientID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(ClientCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     ClientCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
