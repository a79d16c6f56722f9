package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-weather-dashboard/internal/app"
	"github.com/MKhiriev/go-weather-dashboard/internal/logger"
	"github.com/MKhiriev/go-weather-dashboard/internal/views"
	"github.com/MKhiriev/go-weather-dashboard/models"
)

const sessionCookieName = "session"

// protectedHandlerFunc is a handler that runs only for an authenticated caller.
type protectedHandlerFunc func(w http.ResponseWriter, r *http.Request, identity models.Identity)

// protected resolves the caller's identity from the session cookie and passes
// it to next. Anonymous callers are redirected to the login page.
func (h *Handler) protected(next protectedHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := h.identityFromRequest(r)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Str("uri", r.RequestURI).Msg("anonymous access to protected route")
			h.addFlash(w, r, views.FlashWarning, app.MsgLoginRequired)
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		next(w, r, identity)
	}
}

// identityFromRequest validates the session cookie. Missing, expired and
// invalid tokens all yield an error.
func (h *Handler) identityFromRequest(r *http.Request) (models.Identity, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return models.Identity{}, ErrNoSessionCookie
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), cookie.Value)
	if err != nil {
		return models.Identity{}, err
	}

	return token.Identity(), nil
}

// username returns the caller's username or "" for anonymous callers.
func (h *Handler) username(r *http.Request) string {
	identity, err := h.identityFromRequest(r)
	if err != nil {
		return ""
	}
	return identity.Username
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.Token) {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}

	if h.sessionDuration > 0 {
		cookie.MaxAge = int(h.sessionDuration / time.Second)
	}

	http.SetCookie(w, cookie)
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
