package announcement

import (
	"net/http"
	"strconv"

	"github.com/tusharpolymers/onboard-portal/internal"
	"github.com/tusharpolymers/onboard-portal/internal/transport"
)

type Handler struct {
	*transport.BaseHandler
	Repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(nil),
		Repo:        repo,
	}
}

// List handles GET /announcements
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := internal.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 50 {
			limit = l
		}
	}

	items, err := h.Repo.GetLatest(limit)
	if err != nil {
		h.Logger.Error("List: failed to load announcements", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, items)
}
