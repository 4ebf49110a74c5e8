package goal

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	r.Post("/{goalId}/steps", h.CreateStep)
	r.Get("/{goalId}/steps", h.ListSteps)
	r.Put("/steps/{stepId}", h.UpdateStep)
	r.Delete("/steps/{stepId}", h.DeleteStep)

	return r
}
