package http

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-weather-dashboard/internal/logger"
	"github.com/MKhiriev/go-weather-dashboard/internal/utils"
	"github.com/MKhiriev/go-weather-dashboard/internal/views"
)

const flashCookieName = "flash"

// addFlash queues a message for the next rendered page. Messages already
// queued by an earlier request are kept.
func (h *Handler) addFlash(w http.ResponseWriter, r *http.Request, level, message string) {
	flashes, err := h.readFlashes(r)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("dropping unreadable flash cookie")
	}
	flashes = append(flashes, views.Flash{Level: level, Message: message})

	value, err := h.encodeFlashes(flashes)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error encoding flash messages")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlashes returns the queued messages and clears the flash cookie.
func (h *Handler) popFlashes(w http.ResponseWriter, r *http.Request) []views.Flash {
	if _, err := r.Cookie(flashCookieName); err != nil {
		return nil
	}

	flashes, err := h.readFlashes(r)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("dropping unreadable flash cookie")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	return flashes
}

func (h *Handler) readFlashes(r *http.Request) ([]views.Flash, error) {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	payload, ok := utils.VerifySignedValue(cookie.Value, h.sessionSignKey)
	if !ok {
		return nil, ErrInvalidFlashCookie
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFlashCookie, err)
	}

	var flashes []views.Flash
	if err = json.Unmarshal(raw, &flashes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFlashCookie, err)
	}

	return flashes, nil
}

func (h *Handler) encodeFlashes(flashes []views.Flash) (string, error) {
	raw, err := json.Marshal(flashes)
	if err != nil {
		return "", err
	}

	return utils.SignValue(base64.RawURLEncoding.EncodeToString(raw), h.sessionSignKey), nil
}
