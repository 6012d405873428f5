package health

import (
	"mountmix/shared/constant"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
}

func New() Handler {
	return Handler{}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health is the liveness probe. The payload is fixed.
// @Summary Liveness probe
// @Produce json
// @Success 200 {object} map[string]string "ok"
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
