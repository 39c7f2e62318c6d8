package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DentalBooking/internal/service/identity"
)

type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) Authenticate(token string) (*identity.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Claims), args.Error(1)
}

type adminList map[string]bool

func (a adminList) IsAdmin(email string) bool { return a[email] }

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.lines = append(l.lines, "INFO "+fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.lines = append(l.lines, "WARN "+fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Error(format string, v ...interface{}) {
	l.lines = append(l.lines, "ERROR "+fmt.Sprintf(format, v...))
}

type mockHTTPMetrics struct {
	mock.Mock
}

func (m *mockHTTPMetrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	m.Called(method, route, status, duration)
}

// echoUser отвечает ID пользователя из контекста
var echoUser = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	_, _ = w.Write([]byte(user.ID))
})

func TestAuth(t *testing.T) {
	auth := &mockAuthenticator{}
	auth.On("Authenticate", "good").Return(&identity.Claims{UserID: "u-1", Email: "maria@example.com"}, nil)
	auth.On("Authenticate", "old").Return(nil, identity.ErrTokenExpired)
	auth.On("Authenticate", "bad").Return(nil, identity.ErrInvalidToken)

	handler := Auth(auth)(echoUser)

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{"valid", "Bearer good", http.StatusOK, "u-1"},
		{"lowercase scheme", "bearer good", http.StatusOK, "u-1"},
		{"missing", "", http.StatusUnauthorized, msgAuthHeaderRequired},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, msgAuthHeaderFormat},
		{"empty token", "Bearer  ", http.StatusUnauthorized, msgAuthHeaderFormat},
		{"expired", "Bearer old", http.StatusUnauthorized, msgTokenExpired},
		{"invalid", "Bearer bad", http.StatusUnauthorized, msgTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/me/bookings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	handler := AdminOnly(adminList{"admin@clinic.ph": true})(echoUser)

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
	assert.Equal(t, http.StatusUnauthorized, serve(req).Code)

	patient := req.WithContext(WithUser(req.Context(), User{ID: "u-1", Email: "maria@example.com"}))
	assert.Equal(t, http.StatusForbidden, serve(patient).Code)

	admin := req.WithContext(WithUser(req.Context(), User{ID: "u-9", Email: "admin@clinic.ph"}))
	rec := serve(admin)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-9", rec.Body.String())
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))

	req.Header.Set(RequestIDHeader, strings.Repeat("x", 100))
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.NotEqual(t, strings.Repeat("x", 100), seen)
}

func TestLogging_LevelByStatus(t *testing.T) {
	logger := &recordingLogger{}
	handler := RequestID(Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings/x", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, logger.lines, 1)
	assert.True(t, strings.HasPrefix(logger.lines[0], "WARN GET /api/v1/admin/bookings/x -> 404"))
	assert.Contains(t, logger.lines[0], "request_id=req-1")
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &mockHTTPMetrics{}
	m.On("ObserveHTTP", http.MethodDelete, "/api/v1/admin/bookings/{bookingId}", http.StatusNoContent, mock.Anything).Return()

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/admin/bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodDelete)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/api/v1/admin/bookings/b-1", nil))

	m.AssertExpectations(t)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2, time.Minute)
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"))

	now = now.Add(time.Second)
	assert.True(t, rl.Allow("10.0.0.1"))

	now = now.Add(2 * time.Minute)
	rl.Cleanup()
	assert.Empty(t, rl.visitors)
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl := NewRateLimiter(0.001, 1, time.Minute)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	serve := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contacts", nil)
		req.RemoteAddr = "192.0.2.10:51000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusCreated, serve())
	assert.Equal(t, http.StatusTooManyRequests, serve())
}
