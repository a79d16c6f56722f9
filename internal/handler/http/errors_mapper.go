package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-weather-dashboard/internal/service"
	"github.com/MKhiriev/go-weather-dashboard/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:    http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
	store.ErrEncodingPayload:  http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeJSONError answers an API request with {"error": "..."} and the status
// mapped from err.
func writeJSONError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	writeJSON(w, map[string]string{"error": http.StatusText(status)}, status)
}
