package handlers_test

import (
	"net/http"
	"testing"

	"teampulse-backend/internal/access"
	"teampulse-backend/internal/api/handlers"
	apperrors "teampulse-backend/internal/errors"
	"teampulse-backend/internal/mocks"
	"teampulse-backend/internal/service"
	"teampulse-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PulseLogHandlerTestSuite defines the test suite for PulseLogHandler
type PulseLogHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockPulseLogServiceInterface
	member      access.Caller
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *PulseLogHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockPulseLogServiceInterface(suite.ctrl)
	suite.member = testutils.NewCaller("alice", false)

	handler := handlers.NewPulseLogHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTestAs(suite.member)
	logs := suite.httpSuite.Router.Group("/api/v1/pulse-logs")
	{
		logs.GET("", handler.ListPulseLogs)
		logs.POST("", handler.CreatePulseLog)
		logs.GET("/:id", handler.GetPulseLog)
		logs.PUT("/:id", handler.UpdatePulseLog)
		logs.PATCH("/:id", handler.UpdatePulseLog)
		logs.DELETE("/:id", handler.DeletePulseLog)
	}
}

// TearDownTest cleans up after each test
func (suite *PulseLogHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PulseLogHandlerTestSuite) TestListPulseLogs_Filters() {
	team := uuid.New()
	year := 2024
	week := 12
	mood := 4

	suite.mockService.EXPECT().
		List(gomock.Any(), suite.member, service.PulseLogQuery{Team: &team, Year: &year, WeekIndex: &week, Mood: &mood, Ordering: "week_index"}, 1, 20).
		Return(&service.PulseLogListResponse{PulseLogs: []service.PulseLogResponse{}, Page: 1, PageSize: 20}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/pulse-logs?team="+team.String()+"&year=2024&week_index=12&mood=4&ordering=week_index", nil)

	var response service.PulseLogListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Empty(suite.T(), response.PulseLogs)
}

func (suite *PulseLogHandlerTestSuite) TestListPulseLogs_InvalidFilters() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/pulse-logs?team=eng&year=last", nil)

	testutils.AssertFieldErrors(suite.T(), recorder, map[string]string{
		"team": "Enter a valid UUID.",
		"year": "Enter a whole number.",
	})
}

func (suite *PulseLogHandlerTestSuite) TestCreatePulseLog() {
	suite.Run("Success", func() {
		mood, workload := 4, 2
		suite.mockService.EXPECT().
			Create(gomock.Any(), suite.member, &service.PulseLogRequest{Mood: &mood, Workload: &workload}).
			Return(&service.PulseLogResponse{ID: uuid.New(), User: suite.member.UserID, UserName: "alice", Mood: 4, Workload: 2, Year: 2025, WeekIndex: 1}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/pulse-logs", map[string]interface{}{"mood": 4, "workload": 2})

		var response service.PulseLogResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
		assert.Equal(suite.T(), "alice", response.UserName)
		assert.Equal(suite.T(), 1, response.WeekIndex)
	})

	suite.Run("No team", func() {
		suite.mockService.EXPECT().
			Create(gomock.Any(), suite.member, gomock.Any()).
			Return(nil, apperrors.NewValidationError("team", "You must belong to a team to submit a pulse log"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/pulse-logs", map[string]interface{}{"mood": 4, "workload": 2})

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "You must belong to a team to submit a pulse log")
	})

	suite.Run("Wrong type", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/pulse-logs", map[string]interface{}{"mood": "happy"})

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
	})
}

func (suite *PulseLogHandlerTestSuite) TestUpdatePulseLog_Patch() {
	id := uuid.New()
	comment := "Better now"
	suite.mockService.EXPECT().
		Update(gomock.Any(), suite.member, id, &service.PulseLogRequest{Comment: &comment}, true).
		Return(&service.PulseLogResponse{ID: id, Comment: &comment}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/pulse-logs/"+id.String(), map[string]interface{}{"comment": comment})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *PulseLogHandlerTestSuite) TestGetPulseLog_OtherUsersLogIsNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().GetByID(gomock.Any(), suite.member, id).Return(nil, apperrors.ErrPulseLogNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/pulse-logs/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "pulse log not found")
}

func (suite *PulseLogHandlerTestSuite) TestDeletePulseLog() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), suite.member, id).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/pulse-logs/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestPulseLogHandlerTestSuite runs the test suite
func TestPulseLogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PulseLogHandlerTestSuite))
}
