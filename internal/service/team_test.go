package service_test

import (
	"context"
	"testing"

	"teampulse-backend/internal/access"
	"teampulse-backend/internal/database/models"
	apperrors "teampulse-backend/internal/errors"
	"teampulse-backend/internal/mocks"
	"teampulse-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockTeamRepo *mocks.MockTeamRepositoryInterface
	mockUserRepo *mocks.MockUserRepositoryInterface
	mockEvents   *mocks.MockEventRecorder
	teamService  *service.TeamService
	ctx          context.Context
	admin        access.Caller
	member       access.Caller
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockEvents = mocks.NewMockEventRecorder(suite.ctrl)
	suite.teamService = service.NewTeamService(suite.mockTeamRepo, suite.mockUserRepo, suite.mockEvents, service.NewValidator())
	suite.ctx = context.Background()
	suite.admin = access.Caller{UserID: uuid.New(), Username: "root", IsStaff: true}
	suite.member = access.Caller{UserID: uuid.New(), Username: "alice"}
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) TestListPublic() {
	eng := models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, TeamName: "Eng"}
	suite.mockTeamRepo.EXPECT().ListAll(gomock.Any()).Return([]models.Team{eng}, nil)

	resp, err := suite.teamService.ListPublic(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []service.PublicTeamResponse{{ID: eng.ID, Name: "Eng"}}, resp)
}

func (suite *TeamServiceTestSuite) TestList_WithMembers() {
	eng := models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, TeamName: "Eng"}
	ops := models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, TeamName: "Ops"}
	alice := models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "alice"}
	bob := models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "bob"}

	suite.mockTeamRepo.EXPECT().GetAll(gomock.Any(), 10, 10).Return([]models.Team{eng, ops}, int64(12), nil)
	suite.mockTeamRepo.EXPECT().GetMembers(gomock.Any(), []uuid.UUID{eng.ID, ops.ID}).
		Return(map[uuid.UUID][]models.User{eng.ID: {alice, bob}}, nil)

	resp, err := suite.teamService.List(suite.ctx, suite.member, 2, 10)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(12), resp.Total)
	assert.Equal(suite.T(), 2, resp.Teams[0].MemberCount)
	assert.Equal(suite.T(), "bob", resp.Teams[0].Members[1].Username)
	assert.Equal(suite.T(), 0, resp.Teams[1].MemberCount)
	assert.NotNil(suite.T(), resp.Teams[1].Members)
}

func (suite *TeamServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.teamService.GetByID(suite.ctx, suite.member, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

func (suite *TeamServiceTestSuite) TestCreate() {
	suite.Run("member forbidden", func() {
		name := "Eng"
		_, err := suite.teamService.Create(suite.ctx, suite.member, &service.TeamRequest{TeamName: &name})
		assert.True(suite.T(), apperrors.IsAuthorization(err))
	})

	suite.Run("blank name", func() {
		name := "   "
		_, err := suite.teamService.Create(suite.ctx, suite.admin, &service.TeamRequest{TeamName: &name})
		assert.Equal(suite.T(), map[string]string{"team_name": "This field may not be blank."}, apperrors.Fields(err))
	})

	suite.Run("missing name", func() {
		_, err := suite.teamService.Create(suite.ctx, suite.admin, &service.TeamRequest{})
		assert.Equal(suite.T(), map[string]string{"team_name": "This field is required."}, apperrors.Fields(err))
	})

	suite.Run("success", func() {
		name := " Platform "
		suite.mockTeamRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, team *models.Team) error {
			assert.Equal(suite.T(), "Platform", team.TeamName)
			team.ID = uuid.New()
			return nil
		})

		resp, err := suite.teamService.Create(suite.ctx, suite.admin, &service.TeamRequest{TeamName: &name})
		assert.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Platform", resp.TeamName)
		assert.Equal(suite.T(), 0, resp.MemberCount)
	})
}

func (suite *TeamServiceTestSuite) TestUpdate_PartialWithoutName() {
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, TeamName: "Eng"}
	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
	suite.mockTeamRepo.EXPECT().GetMembers(gomock.Any(), []uuid.UUID{team.ID}).Return(map[uuid.UUID][]models.User{}, nil)

	resp, err := suite.teamService.Update(suite.ctx, suite.admin, team.ID, &service.TeamRequest{}, true)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Eng", resp.TeamName)
}

func (suite *TeamServiceTestSuite) TestAddMember() {
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, TeamName: "Eng"}
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "alice"}

	suite.Run("added records event", func() {
		suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
		suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
		suite.mockTeamRepo.EXPECT().AddMember(gomock.Any(), team.ID, user.ID).Return(true, nil)
		suite.mockEvents.EXPECT().Record(gomock.Any(), models.EventTeamMemberAdded, gomock.Any())

		resp, err := suite.teamService.AddMember(suite.ctx, suite.admin, team.ID, &service.TeamMemberRequest{UserID: &user.ID})
		assert.NoError(suite.T(), err)
		assert.Equal(suite.T(), "member added", resp.Status)
	})

	suite.Run("already a member", func() {
		suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
		suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
		suite.mockTeamRepo.EXPECT().AddMember(gomock.Any(), team.ID, user.ID).Return(false, nil)

		resp, err := suite.teamService.AddMember(suite.ctx, suite.admin, team.ID, &service.TeamMemberRequest{UserID: &user.ID})
		assert.NoError(suite.T(), err)
		assert.Equal(suite.T(), "member added", resp.Status)
	})

	suite.Run("unknown team", func() {
		missing := uuid.New()
		suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), missing).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.teamService.AddMember(suite.ctx, suite.admin, missing, &service.TeamMemberRequest{UserID: &user.ID})
		assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
	})

	suite.Run("unknown user", func() {
		missing := uuid.New()
		suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
		suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), missing).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.teamService.AddMember(suite.ctx, suite.admin, team.ID, &service.TeamMemberRequest{UserID: &missing})
		assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
	})

	suite.Run("missing user id", func() {
		suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)

		_, err := suite.teamService.AddMember(suite.ctx, suite.admin, team.ID, &service.TeamMemberRequest{})
		assert.Equal(suite.T(), map[string]string{"user_id": "This field is required."}, apperrors.Fields(err))
	})

	suite.Run("member forbidden", func() {
		_, err := suite.teamService.AddMember(suite.ctx, suite.member, team.ID, &service.TeamMemberRequest{UserID: &user.ID})
		assert.True(suite.T(), apperrors.IsAuthorization(err))
	})
}

func (suite *TeamServiceTestSuite) TestRemoveMember_NotAMember() {
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, TeamName: "Eng"}
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "alice"}
	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
	suite.mockTeamRepo.EXPECT().RemoveMember(gomock.Any(), team.ID, user.ID).Return(false, nil)

	resp, err := suite.teamService.RemoveMember(suite.ctx, suite.admin, team.ID, &service.TeamMemberRequest{UserID: &user.ID})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "member removed", resp.Status)
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
