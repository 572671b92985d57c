package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"teampulse-backend/internal/api/handlers"
	"teampulse-backend/internal/api/routes"
	"teampulse-backend/internal/auth"
	"teampulse-backend/internal/config"
	"teampulse-backend/internal/database/models"
	"teampulse-backend/internal/mocks"
	"teampulse-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	router   *gin.Engine
	tokens   *auth.AuthService
	users    *mocks.MockUserRepositoryInterface
	teams    *mocks.MockTeamServiceInterface
	eventLog *mocks.MockEventLogServiceInterface
}

func newFixture(t *testing.T) *fixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	tokens, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret:  "routes-test-secret",
		Issuer:     "teampulse-test",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}, nil)
	require.NoError(t, err)

	f := &fixture{
		tokens:   tokens,
		users:    mocks.NewMockUserRepositoryInterface(ctrl),
		teams:    mocks.NewMockTeamServiceInterface(ctrl),
		eventLog: mocks.NewMockEventLogServiceInterface(ctrl),
	}

	userService := mocks.NewMockUserServiceInterface(ctrl)
	f.router = routes.SetupRoutes(&config.Config{AllowedOrigins: []string{"*"}}, auth.NewAuthMiddleware(tokens, f.users), routes.Handlers{
		Health:   handlers.NewHealthHandler(nil, nil),
		Token:    auth.NewAuthHandler(tokens),
		Account:  handlers.NewAccountHandler(userService),
		User:     handlers.NewUserHandler(userService),
		Team:     handlers.NewTeamHandler(f.teams),
		Mood:     handlers.NewMoodHandler(mocks.NewMockMoodServiceInterface(ctrl)),
		Workload: handlers.NewWorkloadHandler(mocks.NewMockWorkloadServiceInterface(ctrl)),
		PulseLog: handlers.NewPulseLogHandler(mocks.NewMockPulseLogServiceInterface(ctrl)),
		Feedback: handlers.NewFeedbackHandler(mocks.NewMockFeedbackServiceInterface(ctrl)),
		EventLog: handlers.NewEventLogHandler(f.eventLog),
	})
	return f
}

// bearer issues an access token for user and makes the middleware find it
func (f *fixture) bearer(t *testing.T, user *models.User) string {
	f.users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil).AnyTimes()
	pair, err := f.tokens.GenerateTokenPair(user)
	require.NoError(t, err)
	return "Bearer " + pair.Access
}

func (f *fixture) do(method, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)
	return recorder
}

func TestRoutes_PublicEndpoints(t *testing.T) {
	f := newFixture(t)

	f.teams.EXPECT().ListPublic(gomock.Any()).Return([]service.PublicTeamResponse{}, nil)
	recorder := f.do(http.MethodGet, "/api/v1/teams/public", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))

	recorder = f.do(http.MethodGet, "/health/live", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRoutes_AuthenticationRequired(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{"/api/v1/teams", "/api/v1/pulse-logs", "/api/v1/feedback", "/api/v1/users/me", "/api/v1/moods"} {
		recorder := f.do(http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, path)
	}
}

func TestRoutes_AdminOnly(t *testing.T) {
	f := newFixture(t)
	member := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "alice", IsActive: true}
	token := f.bearer(t, member)

	for _, path := range []string{"/api/v1/users", "/api/v1/event-logs"} {
		recorder := f.do(http.MethodGet, path, token)
		assert.Equal(t, http.StatusForbidden, recorder.Code, path)
	}

	recorder := f.do(http.MethodPost, "/api/v1/teams", token)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRoutes_AdminReachesEventLogs(t *testing.T) {
	f := newFixture(t)
	admin := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "root", IsStaff: true, IsActive: true}
	token := f.bearer(t, admin)

	f.eventLog.EXPECT().
		List(gomock.Any(), gomock.Any(), "", 1, 20).
		Return(&service.EventLogListResponse{EventLogs: []service.EventLogResponse{}, Page: 1, PageSize: 20}, nil)

	recorder := f.do(http.MethodGet, "/api/v1/event-logs", token)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRoutes_DisabledAccountRejected(t *testing.T) {
	f := newFixture(t)
	inactive := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "gone", IsActive: false}
	token := f.bearer(t, inactive)

	recorder := f.do(http.MethodGet, "/api/v1/teams", token)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
