package rest

import (
	"net/http"

	"github.com/heartmarshall/notes-backend/internal/transport/middleware"
)

// NewRouter registers the health probes and the note routes. requireAuth
// wraps only the note routes; global wraps the whole mux.
func NewRouter(
	notes *NoteHandler,
	health *HealthHandler,
	requireAuth middleware.Middleware,
	global ...middleware.Middleware,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	protected := func(h http.HandlerFunc) http.Handler { return requireAuth(h) }

	mux.Handle("POST /notes", protected(notes.Create))
	mux.Handle("GET /notes", protected(notes.List))
	mux.Handle("GET /notes/{id}", protected(notes.Get))
	mux.Handle("PUT /notes/{id}", protected(notes.Update))
	mux.Handle("DELETE /notes/{id}", protected(notes.Delete))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "route not found")
	})

	return middleware.Chain(global...)(mux)
}
