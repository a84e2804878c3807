package dashboardhandler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/domain/dashboard"
	"backoffice/internal/transport/http/api"
)

type Handler struct {
	Store dashboard.StoreAPI
	Now   func() time.Time
}

func NewHandler(store dashboard.StoreAPI) *Handler {
	return &Handler{Store: store, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard/stats", h.handleStats)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Store.Stats(r.Context(), h.Now())
	if err != nil {
		api.FailError(w, http.StatusInternalServerError, "Gagal mengambil data dashboard", err)
		return
	}
	api.SuccessData(w, stats)
}
