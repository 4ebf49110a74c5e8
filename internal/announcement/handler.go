package announcement

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/skillfolio/skillfolio-lambda/internal/config"
	util "github.com/skillfolio/skillfolio-lambda/internal/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func parseDateParam(r *http.Request, name string) (*util.DateOnly, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	var d util.DateOnly
	if err := d.UnmarshalJSON([]byte(`"` + raw + `"`)); err != nil {
		return nil, err
	}
	return &d, nil
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var filter ListAnnouncementsFilter
	filter.Platform = strings.TrimSpace(r.URL.Query().Get("platform"))

	if raw := r.URL.Query().Get("type"); raw != "" {
		t := Type(strings.ToLower(raw))
		if !t.IsValid() {
			http.Error(w, ErrUnknownType.Error(), http.StatusBadRequest)
			return
		}
		filter.Type = &t
	}

	startsAfter, err := parseDateParam(r, "starts_at_after")
	if err != nil {
		http.Error(w, "invalid starts_at_after", http.StatusBadRequest)
		return
	}
	filter.StartsAtAfter = startsAfter

	endsBefore, err := parseDateParam(r, "ends_at_before")
	if err != nil {
		http.Error(w, "invalid ends_at_before", http.StatusBadRequest)
		return
	}
	filter.EndsAtBefore = endsBefore

	announcements, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.WithError(err).Error("Failed to list announcements")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, announcements)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	a, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrAnnouncementNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, a)
}

func (h *Handler) RandomFact(w http.ResponseWriter, r *http.Request) {
	fact, err := h.service.RandomFact(r.Context())
	if err != nil {
		if errors.Is(err, ErrNoActiveFacts) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, fact)
}

func (h *Handler) SearchPlatforms(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	cost := r.URL.Query().Get("cost")
	certs := r.URL.Query().Get("certs")

	config.JSON(w, http.StatusOK, h.service.SearchPlatforms(r.Context(), q, cost, certs))
}
