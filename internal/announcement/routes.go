package announcement

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/facts/random", h.RandomFact)
	r.Get("/platforms", h.SearchPlatforms)
	r.Get("/{id}", h.Get)

	return r
}
