package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openclinic/hms/internal/config"
	"github.com/openclinic/hms/internal/domain"
	"github.com/openclinic/hms/internal/service"
	"github.com/openclinic/hms/internal/store"
	"github.com/openclinic/hms/pkg/auth"
	"github.com/openclinic/hms/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router *gin.Engine
	store  *store.Store
	jwt    *auth.JWTManager
}

func newTestServer(t *testing.T, strict bool) *testServer {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{Name: "hms-test", Environment: "test", Version: "test"},
		JWT: config.JWTConfig{
			Secret:          "test-secret-long-enough-for-hmac-use",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: time.Hour,
			Issuer:          "hms-test",
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
			MaxAge:         time.Hour,
		},
		RateLimit: config.RateLimitConfig{
			RequestsPerSecond:     1000,
			BurstSize:             1000,
			AuthRequestsPerMinute: 1000,
		},
	}

	log := zap.NewNop()
	collector := metrics.NewCollector("test", prometheus.NewRegistry())
	jwtManager := auth.NewJWTManager(cfg.JWT)
	st := store.New(store.SystemClock())

	activitySvc := service.NewActivityService(st, log, collector, 64)
	t.Cleanup(activitySvc.Shutdown)

	svcs := Services{
		Auth:          service.NewAuthService(st, jwtManager, activitySvc, log, strict),
		Patients:      service.NewPatientService(st, activitySvc, collector, log, strict),
		Appointments:  service.NewAppointmentService(st, activitySvc, collector, log),
		Records:       service.NewMedicalRecordService(st, activitySvc, log),
		Prescriptions: service.NewPrescriptionService(st, activitySvc, collector, log),
		Staff:         service.NewStaffService(st, activitySvc, log),
		Tasks:         service.NewTaskService(st, activitySvc, collector, log),
	}

	return &testServer{
		router: NewRouter(cfg, log, collector, jwtManager, st, svcs),
		store:  st,
		jwt:    jwtManager,
	}
}

func (s *testServer) token(t *testing.T) string {
	t.Helper()
	pair, err := s.jwt.GenerateTokenPair(&domain.Claims{
		UserID:   1,
		Username: "tester",
		Role:     domain.RoleAdmin,
	})
	require.NoError(t, err)
	return pair.AccessToken
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, false)

	w := srv.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	srv := newTestServer(t, false)

	for _, path := range []string{"/api/patients", "/api/users", "/api/activity-logs/recent"} {
		w := srv.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)

		body := decode[map[string]string](t, w)
		assert.Equal(t, "Unauthorized", body["message"], path)
	}

	w := srv.do(t, http.MethodGet, "/api/patients", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthFlow(t *testing.T) {
	srv := newTestServer(t, false)

	w := srv.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "drsmith",
		"password": "s3cret-pw",
		"name":     "Dr. Smith",
		"role":     "doctor",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[domain.User](t, w)
	assert.Equal(t, int64(1), created.ID)

	w = srv.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"username": "drsmith",
		"password": "s3cret-pw",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var loginBody struct {
		Token domain.TokenPair `json:"token"`
		User  domain.User      `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginBody))
	require.NotEmpty(t, loginBody.Token.AccessToken)
	assert.Equal(t, "drsmith", loginBody.User.Username)

	w = srv.do(t, http.MethodGet, "/api/auth/me", loginBody.Token.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[domain.User](t, w)
	assert.Equal(t, "drsmith", me.Username)

	// Refresh gives a usable new pair.
	w = srv.do(t, http.MethodPost, "/api/auth/refresh", "", map[string]any{
		"refresh_token": loginBody.Token.RefreshToken,
	})
	require.Equal(t, http.StatusOK, w.Code)
	fresh := decode[domain.TokenPair](t, w)
	w = srv.do(t, http.MethodGet, "/api/auth/me", fresh.AccessToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = srv.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"username": "drsmith",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPatientLifecycle(t *testing.T) {
	srv := newTestServer(t, false)
	token := srv.token(t)

	w := srv.do(t, http.MethodPost, "/api/patients", token, map[string]any{
		"patient_id":    "PT-001",
		"name":          "Jane Doe",
		"date_of_birth": "1985-02-10T00:00:00Z",
		"gender":        "female",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[domain.Patient](t, w)
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.RegistrationDate.IsZero())

	w = srv.do(t, http.MethodGet, "/api/patients/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = srv.do(t, http.MethodGet, "/api/patients/lookup/PT-001", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	found := decode[domain.Patient](t, w)
	assert.Equal(t, created.ID, found.ID)

	w = srv.do(t, http.MethodPatch, "/api/patients/1", token, map[string]any{
		"name": "Jane Doe-Smith",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[domain.Patient](t, w)
	assert.Equal(t, "Jane Doe-Smith", updated.Name)
	assert.Equal(t, created.Gender, updated.Gender)
	assert.Equal(t, created.RegistrationDate, updated.RegistrationDate)

	w = srv.do(t, http.MethodGet, "/api/patients", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]domain.Patient](t, w)
	assert.Len(t, list, 1)
}

func TestNotFoundBody(t *testing.T) {
	srv := newTestServer(t, false)
	token := srv.token(t)

	w := srv.do(t, http.MethodGet, "/api/patients/99", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	body := decode[map[string]string](t, w)
	assert.Equal(t, "patient not found", body["message"])

	w = srv.do(t, http.MethodGet, "/api/appointments/99", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidationErrorBody(t *testing.T) {
	srv := newTestServer(t, false)
	token := srv.token(t)

	w := srv.do(t, http.MethodPost, "/api/patients", token, map[string]any{
		"name": "No ID Provided",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Validation failed", body.Message)
	assert.NotEmpty(t, body.Errors)
}

func TestDuplicatePatientConflictInStrictMode(t *testing.T) {
	srv := newTestServer(t, true)
	token := srv.token(t)

	payload := map[string]any{
		"patient_id":    "PT-001",
		"name":          "Jane Doe",
		"date_of_birth": "1985-02-10T00:00:00Z",
		"gender":        "female",
	}
	w := srv.do(t, http.MethodPost, "/api/patients", token, payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = srv.do(t, http.MethodPost, "/api/patients", token, payload)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDepartmentsSeeded(t *testing.T) {
	srv := newTestServer(t, false)
	token := srv.token(t)

	w := srv.do(t, http.MethodGet, "/api/departments", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]domain.Department](t, w)
	require.Len(t, list, 5)
	assert.Equal(t, "Cardiology", list[0].Name)
}

func TestAppointmentRoutes(t *testing.T) {
	srv := newTestServer(t, false)
	token := srv.token(t)

	w := srv.do(t, http.MethodPost, "/api/appointments", token, map[string]any{
		"patient_id":       1,
		"doctor_id":        2,
		"appointment_date": "2026-09-01T10:30:00Z",
		"purpose":          "consultation",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[domain.Appointment](t, w)
	assert.Equal(t, domain.AppointmentPending, created.Status)

	w = srv.do(t, http.MethodPatch, "/api/appointments/1", token, map[string]any{
		"status": "confirmed",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[domain.Appointment](t, w)
	assert.Equal(t, domain.AppointmentConfirmed, updated.Status)
	assert.Equal(t, created.AppointmentDate, updated.AppointmentDate)

	w = srv.do(t, http.MethodGet, "/api/appointments/doctor/2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Appointment](t, w), 1)

	w = srv.do(t, http.MethodGet, "/api/appointments/patient/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Appointment](t, w), 1)
}

func TestTasksByUserEmptyList(t *testing.T) {
	srv := newTestServer(t, false)
	token := srv.token(t)

	w := srv.do(t, http.MethodGet, "/api/tasks/user/99", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Task](t, w), 0)
}

func TestRecentActivityDefaultLimit(t *testing.T) {
	srv := newTestServer(t, false)
	token := srv.token(t)

	for i := 0; i < 15; i++ {
		srv.store.AppendActivityLog(&domain.CreateActivityLogCommand{ActivityType: "login"})
	}

	w := srv.do(t, http.MethodGet, "/api/activity-logs/recent", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.ActivityLog](t, w), 10)

	w = srv.do(t, http.MethodGet, "/api/activity-logs/recent?limit=3", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.ActivityLog](t, w), 3)
}

func TestCreateActivityLog(t *testing.T) {
	srv := newTestServer(t, false)
	token := srv.token(t)

	w := srv.do(t, http.MethodPost, "/api/activity-logs", token, map[string]any{
		"activity_type": "registration",
		"description":   "walk-in registration recorded at the front desk",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[domain.ActivityLog](t, w)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "registration", created.ActivityType)
	assert.False(t, created.Timestamp.IsZero())
	// The caller's identity is attached when the body names no user.
	require.NotNil(t, created.UserID)
	assert.Equal(t, int64(1), *created.UserID)

	w = srv.do(t, http.MethodGet, "/api/activity-logs/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[domain.ActivityLog](t, w)
	assert.Equal(t, created.ID, got.ID)

	// activity_type is required.
	w = srv.do(t, http.MethodPost, "/api/activity-logs", token, map[string]any{
		"description": "missing type",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodOptions, "/api/patients", nil)
	req.Header.Set("Origin", "https://app.example")
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDEchoed(t *testing.T) {
	srv := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, "fixed-id", w.Header().Get("X-Request-ID"))
}
