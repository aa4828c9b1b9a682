package dashboard

import (
	"hotelier/infras/otel"
	"hotelier/internal/domains/dashboard/service"
	"hotelier/shared/constant"
	"hotelier/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/dashboard/stats", handler.GetStats)
}

// GetStats returns the admin dashboard counters and the latest bookings.
// @Summary Dashboard statistics
// @Tags Admin Dashboard
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Failure 500 {object} response.Error "Failed to fetch dashboard stats"
// @Router /api/admin/dashboard/stats [get]
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}
