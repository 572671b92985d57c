package service_test

import (
	"context"
	"testing"

	"teampulse-backend/internal/access"
	"teampulse-backend/internal/database/models"
	apperrors "teampulse-backend/internal/errors"
	"teampulse-backend/internal/mocks"
	"teampulse-backend/internal/repository"
	"teampulse-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// FeedbackServiceTestSuite defines the test suite for FeedbackService
type FeedbackServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockFeedbackRepo *mocks.MockFeedbackRepositoryInterface
	mockTeamRepo     *mocks.MockTeamRepositoryInterface
	feedbackService  *service.FeedbackService
	ctx              context.Context
	admin            access.Caller
	member           access.Caller
}

// SetupTest sets up the test suite
func (suite *FeedbackServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockFeedbackRepo = mocks.NewMockFeedbackRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.feedbackService = service.NewFeedbackService(suite.mockFeedbackRepo, suite.mockTeamRepo, service.NewValidator())
	suite.ctx = context.Background()
	suite.admin = access.Caller{UserID: uuid.New(), Username: "root", IsStaff: true}
	suite.member = access.Caller{UserID: uuid.New(), Username: "alice"}
}

// TearDownTest cleans up after each test
func (suite *FeedbackServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *FeedbackServiceTestSuite) feedback(anonymous bool, team *models.Team) models.TeamFeedback {
	fb := models.TeamFeedback{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		UserID:      uuid.New(),
		Message:     "Standups run long",
		IsAnonymous: anonymous,
		User:        &models.User{Username: "bob"},
		Team:        team,
	}
	if team != nil {
		fb.TeamID = &team.ID
	}
	return fb
}

func (suite *FeedbackServiceTestSuite) TestList_AnonymityAndGeneralTeam() {
	eng := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, TeamName: "Eng"}
	items := []models.TeamFeedback{suite.feedback(true, eng), suite.feedback(false, nil)}
	suite.mockFeedbackRepo.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), service.DefaultPageSize, 0).Return(items, int64(2), nil)

	resp, err := suite.feedbackService.List(suite.ctx, suite.member, service.FeedbackQuery{}, 1, 20)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Anonymous", resp.Feedback[0].Username)
	assert.Equal(suite.T(), "Eng", resp.Feedback[0].TeamName)
	assert.Nil(suite.T(), resp.Feedback[0].User)
	assert.Equal(suite.T(), "bob", resp.Feedback[1].Username)
	assert.Equal(suite.T(), "General", resp.Feedback[1].TeamName)
}

func (suite *FeedbackServiceTestSuite) TestList_AdminSeesAuthorButNotName() {
	items := []models.TeamFeedback{suite.feedback(true, nil)}
	suite.mockFeedbackRepo.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(items, int64(1), nil)

	resp, err := suite.feedbackService.List(suite.ctx, suite.admin, service.FeedbackQuery{}, 1, 20)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Anonymous", resp.Feedback[0].Username)
	assert.Equal(suite.T(), &items[0].UserID, resp.Feedback[0].User)
}

func (suite *FeedbackServiceTestSuite) TestList_PassesFilters() {
	team := uuid.New()
	anonymous := true
	suite.mockFeedbackRepo.EXPECT().List(gomock.Any(), repository.FeedbackFilter{TeamID: &team, IsAnonymous: &anonymous, Ordering: "created_at"}, gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.TeamFeedback{}, int64(0), nil)

	_, err := suite.feedbackService.List(suite.ctx, suite.member, service.FeedbackQuery{Team: &team, IsAnonymous: &anonymous, Ordering: "created_at"}, 1, 20)

	assert.NoError(suite.T(), err)
}

func (suite *FeedbackServiceTestSuite) TestCreate() {
	eng := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, TeamName: "Eng"}

	suite.Run("empty message", func() {
		_, err := suite.feedbackService.Create(suite.ctx, suite.member, &service.FeedbackRequest{})
		assert.Equal(suite.T(), map[string]string{"message": "This field may not be blank."}, apperrors.Fields(err))
	})

	suite.Run("blank message", func() {
		_, err := suite.feedbackService.Create(suite.ctx, suite.member, &service.FeedbackRequest{Message: "  "})
		assert.Equal(suite.T(), map[string]string{"message": "This field may not be blank."}, apperrors.Fields(err))
	})

	suite.Run("no team membership", func() {
		suite.mockTeamRepo.EXPECT().ListTeamIDsForUser(gomock.Any(), suite.member.UserID).Return([]uuid.UUID{}, nil)

		_, err := suite.feedbackService.Create(suite.ctx, suite.member, &service.FeedbackRequest{Message: "hello"})
		assert.Equal(suite.T(), map[string]string{"team": "You must belong to a team to submit feedback"}, apperrors.Fields(err))
	})

	suite.Run("anonymous feedback filed under first team", func() {
		suite.mockTeamRepo.EXPECT().ListTeamIDsForUser(gomock.Any(), suite.member.UserID).Return([]uuid.UUID{eng.ID}, nil)

		var created models.TeamFeedback
		suite.mockFeedbackRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fb *models.TeamFeedback) error {
			fb.ID = uuid.New()
			created = *fb
			return nil
		})
		suite.mockFeedbackRepo.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ uuid.UUID, _ repository.Scope) (*models.TeamFeedback, error) {
			reloaded := created
			reloaded.User = &models.User{Username: "alice"}
			reloaded.Team = eng
			return &reloaded, nil
		})

		resp, err := suite.feedbackService.Create(suite.ctx, suite.member, &service.FeedbackRequest{Message: " hello ", IsAnonymous: true})
		assert.NoError(suite.T(), err)
		assert.Equal(suite.T(), "hello", created.Message)
		assert.Equal(suite.T(), suite.member.UserID, created.UserID)
		assert.Equal(suite.T(), "Anonymous", resp.Username)
		assert.Equal(suite.T(), "Eng", resp.TeamName)
		assert.True(suite.T(), resp.IsAnonymous)
	})
}

func (suite *FeedbackServiceTestSuite) TestDelete_NotOwnerIsNotFound() {
	id := uuid.New()
	suite.mockFeedbackRepo.EXPECT().GetByID(gomock.Any(), id, gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

	err := suite.feedbackService.Delete(suite.ctx, suite.member, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrFeedbackNotFound)
}

// TestFeedbackServiceTestSuite runs the test suite
func TestFeedbackServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FeedbackServiceTestSuite))
}
