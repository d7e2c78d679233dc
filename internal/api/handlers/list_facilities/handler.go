package list_facilities

import (
	"net/http"

	"github.com/m04kA/SMC-AmenityBooking/internal/api/handlers"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities
// Публичный endpoint - каталог объектов с действующими правилами
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /facilities - Failed to list facilities: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /facilities - Facilities retrieved successfully: count=%d", len(result.Facilities))
	handlers.RespondJSON(w, http.StatusOK, result)
}
