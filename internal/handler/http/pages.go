package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-weather-dashboard/internal/app"
	"github.com/MKhiriev/go-weather-dashboard/internal/logger"
	"github.com/MKhiriev/go-weather-dashboard/internal/service"
	"github.com/MKhiriev/go-weather-dashboard/internal/store"
	"github.com/MKhiriev/go-weather-dashboard/internal/utils"
	"github.com/MKhiriev/go-weather-dashboard/internal/views"
	"github.com/MKhiriev/go-weather-dashboard/models"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	if _, err := h.identityFromRequest(r); err == nil {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	h.render(w, r, views.PageIndex, "", nil)
}

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, views.PageRegister, h.username(r), nil)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Error(w, "invalid form was passed", http.StatusBadRequest)
		return
	}

	_, err := h.services.AuthService.RegisterUser(ctx, models.User{
		Username: r.PostForm.Get("username"),
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
		City:     r.PostForm.Get("city"),
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserAlreadyExists):
			h.addFlash(w, r, views.FlashDanger, app.MsgUserAlreadyExists)
		case errors.Is(err, service.ErrInvalidDataProvided):
			h.addFlash(w, r, views.FlashDanger, app.MsgInvalidRegistration)
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/register", http.StatusFound)
		return
	}

	h.addFlash(w, r, views.FlashSuccess, app.MsgRegistrationSuccessful)
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, views.PageLogin, h.username(r), nil)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Error(w, "invalid form was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, r.PostForm.Get("username"), r.PostForm.Get("password"), utils.ClientIP(r))
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		flashes := append(h.popFlashes(w, r), views.Flash{Level: views.FlashDanger, Message: app.MsgInvalidLoginPassword})
		h.renderPage(w, r, views.PageLogin, views.PageData{Flashes: flashes})
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, token)
	h.addFlash(w, r, views.FlashSuccess, app.MsgLoginSuccessful)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	h.addFlash(w, r, views.FlashInfo, app.MsgLoggedOut)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	user, report, err := h.services.WeatherService.Dashboard(r.Context(), identity)
	if err != nil {
		h.handlePageError(w, r, err)
		return
	}

	h.render(w, r, views.PageDashboard, identity.Username, views.DashboardData{
		User:   user,
		Report: report,
		Units:  user.Preferences.Units,
	})
}

func (h *Handler) updateCity(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	city := strings.TrimSpace(r.PostFormValue("city"))

	updated, err := h.services.UserService.UpdateCity(r.Context(), identity, city)
	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		h.addFlash(w, r, views.FlashDanger, app.MsgCityTooLong)
	case err != nil:
		h.handlePageError(w, r, err)
		return
	case updated:
		h.addFlash(w, r, views.FlashSuccess, fmt.Sprintf(app.MsgCityUpdated, city))
	}

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (h *Handler) weatherHistory(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	queries, err := h.services.WeatherService.History(r.Context(), identity)
	if err != nil {
		h.handlePageError(w, r, err)
		return
	}

	h.render(w, r, views.PageHistory, identity.Username, views.HistoryData{Queries: queries})
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	profile, err := h.services.UserService.Profile(r.Context(), identity)
	if err != nil {
		h.handlePageError(w, r, err)
		return
	}

	h.render(w, r, views.PageProfile, identity.Username, views.ProfileData{Profile: profile})
}

func (h *Handler) updatePreferences(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	prefs := models.Preferences{
		Units:         models.ParseUnits(r.PostFormValue("units")),
		Notifications: r.PostFormValue("notifications") == "on",
	}

	if err := h.services.UserService.UpdatePreferences(r.Context(), identity, prefs); err != nil {
		h.handlePageError(w, r, err)
		return
	}

	h.addFlash(w, r, views.FlashSuccess, app.MsgPreferencesUpdated)
	http.Redirect(w, r, "/profile", http.StatusFound)
}

// handlePageError answers a failed page request. A session pointing at a
// user that no longer exists is dropped.
func (h *Handler) handlePageError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrNoUserWasFound) {
		h.clearSessionCookie(w)
		h.addFlash(w, r, views.FlashWarning, app.MsgLoginRequired)
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("error handling page request")
	status := statusFromError(err)
	http.Error(w, http.StatusText(status), status)
}

// render shows page with the pending flash messages.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, page, username string, data any) {
	h.renderPage(w, r, page, views.PageData{
		Username: username,
		Flashes:  h.popFlashes(w, r),
		Data:     data,
	})
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, page string, data views.PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, page, data); err != nil {
		logger.FromRequest(r).Err(err).Str("page", page).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
