package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/", h.index)
		r.Get("/register", h.registerForm)
		r.Post("/register", h.register)
		r.Get("/login", h.loginForm)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/dashboard", h.protected(h.dashboard))
		r.Post("/update_city", h.protected(h.updateCity))
		r.Get("/weather_history", h.protected(h.weatherHistory))
		r.Get("/api/weather/{city}", h.protected(h.apiWeather))
		r.Get("/profile", h.protected(h.profile))
		r.Post("/update_preferences", h.protected(h.updatePreferences))
	})

	// operational routes
	router.Group(func(r chi.Router) {
		r.Get("/healthz", h.healthz)
		r.Get("/version", h.getServerVersion)
		if h.metrics != nil {
			r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
		}
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
