package handlers_test

import (
	"net/http"
	"testing"

	"teampulse-backend/internal/api/handlers"
	apperrors "teampulse-backend/internal/errors"
	"teampulse-backend/internal/mocks"
	"teampulse-backend/internal/service"
	"teampulse-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestEventLogHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockEventLogServiceInterface(ctrl)
	admin := testutils.NewCaller("root", true)

	handler := handlers.NewEventLogHandler(mockService)
	httpSuite := testutils.SetupHTTPTestAs(admin)
	events := httpSuite.Router.Group("/api/v1/event-logs")
	events.GET("", handler.ListEventLogs)
	events.POST("", handler.CreateEventLog)
	events.GET("/:id", handler.GetEventLog)
	events.PUT("/:id", handler.UpdateEventLog)
	events.PATCH("/:id", handler.UpdateEventLog)
	events.DELETE("/:id", handler.DeleteEventLog)

	t.Run("List by name", func(t *testing.T) {
		mockService.EXPECT().
			List(gomock.Any(), admin, "user_deleted", 1, 20).
			Return(&service.EventLogListResponse{EventLogs: []service.EventLogResponse{{EventName: "user_deleted"}}, Total: 1, Page: 1, PageSize: 20}, nil)

		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/v1/event-logs?event_name=user_deleted", nil)

		var response service.EventLogListResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "user_deleted", response.EventLogs[0].EventName)
	})

	t.Run("Create requires event_name", func(t *testing.T) {
		mockService.EXPECT().
			Create(gomock.Any(), admin, &service.EventLogRequest{}).
			Return(nil, apperrors.FieldErrors{"event_name": "This field is required."})

		recorder := httpSuite.MakeRequest(http.MethodPost, "/api/v1/event-logs", map[string]interface{}{})

		testutils.AssertFieldErrors(t, recorder, map[string]string{"event_name": "This field is required."})
	})

	t.Run("Patch", func(t *testing.T) {
		id := uuid.New()
		metadata := "{}"
		mockService.EXPECT().
			Update(gomock.Any(), admin, id, &service.EventLogRequest{Metadata: &metadata}, true).
			Return(&service.EventLogResponse{ID: id, EventName: "maintenance", Metadata: &metadata}, nil)

		recorder := httpSuite.MakeRequest(http.MethodPatch, "/api/v1/event-logs/"+id.String(), map[string]interface{}{"metadata": "{}"})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Members are forbidden", func(t *testing.T) {
		member := testutils.NewCaller("alice", false)
		memberSuite := testutils.SetupHTTPTestAs(member)
		memberSuite.Router.DELETE("/api/v1/event-logs/:id", handler.DeleteEventLog)

		id := uuid.New()
		mockService.EXPECT().Delete(gomock.Any(), member, id).Return(apperrors.ErrAdminRequired)

		recorder := memberSuite.MakeRequest(http.MethodDelete, "/api/v1/event-logs/"+id.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "permission")
	})
}
