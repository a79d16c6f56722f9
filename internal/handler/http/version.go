package http

import (
	"net/http"
)

// getServerVersion answers {"version": "..."} with the build version.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"version": h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
}
