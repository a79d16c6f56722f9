package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-weather-dashboard/internal/logger"
	"github.com/MKhiriev/go-weather-dashboard/internal/utils"
	"github.com/MKhiriev/go-weather-dashboard/models"
)

// apiWeather answers {"current": ..., "forecast": [...]} for the city in the
// path. current is null when the provider returned nothing usable.
func (h *Handler) apiWeather(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	city := chi.URLParam(r, "city")

	report, err := h.services.WeatherService.Lookup(r.Context(), identity, city)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("city", city).Msg("weather lookup failed")
		writeJSONError(w, err)
		return
	}

	if report.Forecast == nil {
		report.Forecast = []models.DailyForecast{}
	}

	writeJSON(w, report, http.StatusOK)
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		writeJSON(w, map[string]string{"status": "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func writeJSON(w http.ResponseWriter, data any, statusCode int) {
	_, _ = utils.WriteJSON(w, data, statusCode)
}
