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

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	admin       access.Caller
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockService)
	suite.admin = testutils.NewCaller("root", true)

	suite.httpSuite = testutils.SetupHTTPTestAs(suite.admin)
	teams := suite.httpSuite.Router.Group("/api/v1/teams")
	{
		teams.GET("/public", suite.handler.ListPublicTeams)
		teams.GET("", suite.handler.ListTeams)
		teams.POST("", suite.handler.CreateTeam)
		teams.GET("/:id", suite.handler.GetTeam)
		teams.PUT("/:id", suite.handler.UpdateTeam)
		teams.PATCH("/:id", suite.handler.UpdateTeam)
		teams.DELETE("/:id", suite.handler.DeleteTeam)
		teams.POST("/:id/add-member", suite.handler.AddMember)
		teams.POST("/:id/remove-member", suite.handler.RemoveMember)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) TestListPublicTeams() {
	id := uuid.New()
	suite.mockService.EXPECT().ListPublic(gomock.Any()).Return([]service.PublicTeamResponse{{ID: id, Name: "Eng"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/public", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(suite.T(), `[{"id":"`+id.String()+`","name":"Eng"}]`, recorder.Body.String())
}

func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.Run("Success", func() {
		name := "Platform"
		suite.mockService.EXPECT().
			Create(gomock.Any(), suite.admin, &service.TeamRequest{TeamName: &name}).
			Return(&service.TeamResponse{ID: uuid.New(), TeamName: name, Members: []service.TeamMemberResponse{}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]interface{}{"team_name": "Platform"})

		var response service.TeamResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
		assert.Equal(suite.T(), "Platform", response.TeamName)
	})

	suite.Run("Missing name", func() {
		suite.mockService.EXPECT().
			Create(gomock.Any(), suite.admin, gomock.Any()).
			Return(nil, apperrors.FieldErrors{"team_name": "This field is required."})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]interface{}{})

		testutils.AssertFieldErrors(suite.T(), recorder, map[string]string{"team_name": "This field is required."})
	})
}

func (suite *TeamHandlerTestSuite) TestUpdateTeam_PutAndPatch() {
	id := uuid.New()
	name := "Renamed"

	suite.mockService.EXPECT().
		Update(gomock.Any(), suite.admin, id, &service.TeamRequest{TeamName: &name}, false).
		Return(&service.TeamResponse{ID: id, TeamName: name}, nil)
	suite.mockService.EXPECT().
		Update(gomock.Any(), suite.admin, id, &service.TeamRequest{}, true).
		Return(&service.TeamResponse{ID: id, TeamName: name}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/teams/"+id.String(), map[string]interface{}{"team_name": "Renamed"})
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	recorder = suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/teams/"+id.String(), map[string]interface{}{})
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	id := uuid.New()

	suite.Run("Success", func() {
		suite.mockService.EXPECT().Delete(gomock.Any(), suite.admin, id).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/"+id.String(), nil)
		assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	})

	suite.Run("Not found", func() {
		suite.mockService.EXPECT().Delete(gomock.Any(), suite.admin, id).Return(apperrors.ErrTeamNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/"+id.String(), nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team not found")
	})
}

func (suite *TeamHandlerTestSuite) TestMembership() {
	teamID := uuid.New()
	userID := uuid.New()

	suite.Run("Add member", func() {
		suite.mockService.EXPECT().
			AddMember(gomock.Any(), suite.admin, teamID, &service.TeamMemberRequest{UserID: &userID}).
			Return(&service.StatusResponse{Status: "member added"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/"+teamID.String()+"/add-member", map[string]interface{}{"user_id": userID})

		assert.Equal(suite.T(), http.StatusOK, recorder.Code)
		assert.JSONEq(suite.T(), `{"status":"member added"}`, recorder.Body.String())
	})

	suite.Run("Remove member without user_id", func() {
		suite.mockService.EXPECT().
			RemoveMember(gomock.Any(), suite.admin, teamID, &service.TeamMemberRequest{}).
			Return(nil, apperrors.FieldErrors{"user_id": "This field is required."})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/"+teamID.String()+"/remove-member", map[string]interface{}{})

		testutils.AssertFieldErrors(suite.T(), recorder, map[string]string{"user_id": "This field is required."})
	})

	suite.Run("Internal error is hidden", func() {
		suite.mockService.EXPECT().
			AddMember(gomock.Any(), suite.admin, teamID, gomock.Any()).
			Return(nil, assert.AnError)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/"+teamID.String()+"/add-member", map[string]interface{}{"user_id": userID})

		assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
		assert.JSONEq(suite.T(), `{"error":"Internal server error"}`, recorder.Body.String())
	})
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
