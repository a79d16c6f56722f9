package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-weather-dashboard/internal/config"
	"github.com/MKhiriev/go-weather-dashboard/internal/logger"
	"github.com/MKhiriev/go-weather-dashboard/internal/mock"
	"github.com/MKhiriev/go-weather-dashboard/internal/service"
	"github.com/MKhiriev/go-weather-dashboard/internal/views"
	"github.com/MKhiriev/go-weather-dashboard/models"
)

const (
	testSignKey = "handler-test-key"
	testToken   = "valid-session-token"
)

var testIdentity = models.Identity{UserID: 7, Username: "alice"}

type testEnv struct {
	handler *Handler
	router  http.Handler

	auth    *mock.MockAuthService
	users   *mock.MockUserService
	weather *mock.MockWeatherService
	appInfo *mock.MockAppInfoService
	health  *mock.MockHealthService
	metrics *fakeMetrics
}

type recordedRequest struct {
	method string
	route  string
	status int
}

type fakeMetrics struct {
	requests []recordedRequest
}

func (f *fakeMetrics) RecordHTTPRequest(method, route string, statusCode int, _ time.Duration) {
	f.requests = append(f.requests, recordedRequest{method: method, route: route, status: statusCode})
}

func (f *fakeMetrics) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	})
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	renderer, err := views.New()
	require.NoError(t, err)

	env := &testEnv{
		auth:    mock.NewMockAuthService(ctrl),
		users:   mock.NewMockUserService(ctrl),
		weather: mock.NewMockWeatherService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
		health:  mock.NewMockHealthService(ctrl),
		metrics: &fakeMetrics{},
	}

	services := &service.Services{
		AuthService:    env.auth,
		UserService:    env.users,
		WeatherService: env.weather,
		AppInfoService: env.appInfo,
		HealthService:  env.health,
	}

	cfg := config.StructuredConfig{
		App: config.App{SessionSignKey: testSignKey, SessionDuration: time.Hour},
	}

	env.handler = NewHandler(services, renderer, env.metrics, cfg, logger.Nop())
	env.router = env.handler.Init()

	// any token other than testToken is rejected
	env.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, raw string) (models.Token, error) {
			if raw != testToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{SignedString: raw, UserID: testIdentity.UserID, Username: testIdentity.Username}, nil
		},
	).AnyTimes()

	return env
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func newFormRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func authenticated(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: testToken})
	return req
}

func findCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// flashesOf decodes the flash cookie set by a response.
func flashesOf(t *testing.T, h *Handler, rr *httptest.ResponseRecorder) []views.Flash {
	t.Helper()

	cookie := findCookie(rr, flashCookieName)
	if cookie == nil || cookie.Value == "" {
		return nil
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	flashes, err := h.readFlashes(req)
	require.NoError(t, err)
	return flashes
}
