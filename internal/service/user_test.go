package service_test

import (
	"context"
	"errors"
	"testing"

	"teampulse-backend/internal/access"
	"teampulse-backend/internal/auth"
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

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	mockTeamRepo *mocks.MockTeamRepositoryInterface
	mockTokens   *mocks.MockTokenIssuer
	mockEvents   *mocks.MockEventRecorder
	userService  *service.UserService
	ctx          context.Context
	admin        access.Caller
	member       access.Caller
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockTokens = mocks.NewMockTokenIssuer(suite.ctrl)
	suite.mockEvents = mocks.NewMockEventRecorder(suite.ctrl)
	suite.userService = service.NewUserService(suite.mockUserRepo, suite.mockTeamRepo, suite.mockTokens, suite.mockEvents, service.NewValidator())
	suite.ctx = context.Background()
	suite.admin = access.Caller{UserID: uuid.New(), Username: "root", IsStaff: true}
	suite.member = access.Caller{UserID: uuid.New(), Username: "alice"}
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserServiceTestSuite) expectNoTeams() {
	suite.mockTeamRepo.EXPECT().GetTeamsForUsers(gomock.Any(), gomock.Any()).Return(map[uuid.UUID][]models.Team{}, nil)
}

func (suite *UserServiceTestSuite) TestRegister_Success() {
	req := &service.RegisterRequest{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "correct-horse-battery",
		FirstName: "Alice",
	}

	var stored *models.User
	suite.mockUserRepo.EXPECT().ExistsByUsername(gomock.Any(), "alice").Return(false, nil)
	suite.mockUserRepo.EXPECT().ExistsByEmail(gomock.Any(), "alice@example.com").Return(false, nil)
	suite.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user *models.User) error {
		user.ID = uuid.New()
		stored = user
		return nil
	})
	suite.mockTokens.EXPECT().GenerateTokenPair(gomock.Any()).Return(&auth.TokenPair{Access: "a", Refresh: "r"}, nil)
	suite.mockEvents.EXPECT().Record(gomock.Any(), models.EventUserRegistered, gomock.Any())

	resp, err := suite.userService.Register(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "alice", resp.Username)
	assert.Equal(suite.T(), "a", resp.Access)
	assert.Equal(suite.T(), "r", resp.Refresh)
	assert.False(suite.T(), resp.IsStaff)
	assert.Empty(suite.T(), resp.Teams)
	assert.NotEqual(suite.T(), "correct-horse-battery", stored.Password)
	assert.True(suite.T(), auth.CheckPassword(stored.Password, "correct-horse-battery"))
}

func (suite *UserServiceTestSuite) TestRegister_InvalidFields() {
	req := &service.RegisterRequest{
		Username: "ab",
		Email:    "not-an-email",
		Password: "short",
	}

	_, err := suite.userService.Register(suite.ctx, req)

	assert.True(suite.T(), apperrors.IsValidation(err))
	fields := apperrors.Fields(err)
	assert.Contains(suite.T(), fields, "username")
	assert.Contains(suite.T(), fields, "email")
	assert.Contains(suite.T(), fields, "password")
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateUsername() {
	req := &service.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "correct-horse-battery",
	}
	suite.mockUserRepo.EXPECT().ExistsByUsername(gomock.Any(), "alice").Return(true, nil)
	suite.mockUserRepo.EXPECT().ExistsByEmail(gomock.Any(), "other@example.com").Return(false, nil)

	_, err := suite.userService.Register(suite.ctx, req)

	assert.Equal(suite.T(), map[string]string{"username": "A user with that username already exists."}, apperrors.Fields(err))
}

func (suite *UserServiceTestSuite) TestLogin() {
	hashed, err := auth.HashPassword("correct-horse-battery")
	suite.Require().NoError(err)
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  hashed,
		FirstName: "Alice",
		LastName:  "Smith",
		IsActive:  true,
	}

	suite.Run("success by email", func() {
		suite.mockUserRepo.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
		suite.mockTokens.EXPECT().GenerateTokenPair(user).Return(&auth.TokenPair{Access: "a", Refresh: "r"}, nil)

		resp, err := suite.userService.Login(suite.ctx, &service.LoginRequest{Email: "alice@example.com", Password: "correct-horse-battery"})

		assert.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Alice", resp.FirstName)
		assert.Equal(suite.T(), "Smith", resp.LastName)
		assert.Equal(suite.T(), "a", resp.Access)
	})

	suite.Run("success by username", func() {
		suite.mockUserRepo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
		suite.mockTokens.EXPECT().GenerateTokenPair(user).Return(&auth.TokenPair{Access: "a", Refresh: "r"}, nil)

		_, err := suite.userService.Login(suite.ctx, &service.LoginRequest{Username: "alice", Password: "correct-horse-battery"})
		assert.NoError(suite.T(), err)
	})

	suite.Run("wrong password", func() {
		suite.mockUserRepo.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil)

		_, err := suite.userService.Login(suite.ctx, &service.LoginRequest{Email: "alice@example.com", Password: "wrong-password"})
		assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
	})

	suite.Run("unknown user", func() {
		suite.mockUserRepo.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.userService.Login(suite.ctx, &service.LoginRequest{Email: "nobody@example.com", Password: "whatever-password"})
		assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
	})

	suite.Run("inactive user", func() {
		inactive := *user
		inactive.IsActive = false
		suite.mockUserRepo.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(&inactive, nil)

		_, err := suite.userService.Login(suite.ctx, &service.LoginRequest{Email: "alice@example.com", Password: "correct-horse-battery"})
		assert.ErrorIs(suite.T(), err, apperrors.ErrUserDisabled)
	})

	suite.Run("missing credentials", func() {
		_, err := suite.userService.Login(suite.ctx, &service.LoginRequest{Email: "alice@example.com"})
		assert.True(suite.T(), apperrors.IsValidation(err))
	})
}

func (suite *UserServiceTestSuite) TestUpdateMe_OnlyNames() {
	first := "Alicia"
	updated := &models.User{BaseModel: models.BaseModel{ID: suite.member.UserID}, Username: "alice", FirstName: first}
	suite.mockUserRepo.EXPECT().
		Update(gomock.Any(), suite.member.UserID, map[string]interface{}{"first_name": first}).
		Return(updated, nil)
	suite.expectNoTeams()

	resp, err := suite.userService.UpdateMe(suite.ctx, suite.member, &service.UpdateProfileRequest{FirstName: &first})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Alicia", resp.FirstName)
}

func (suite *UserServiceTestSuite) TestList_RequiresAdmin() {
	_, err := suite.userService.List(suite.ctx, suite.member, 1, 20)

	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *UserServiceTestSuite) TestList_IncludesTeams() {
	alice := models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "alice"}
	suite.mockUserRepo.EXPECT().GetAll(gomock.Any(), 20, 0).Return([]models.User{alice}, int64(1), nil)
	suite.mockTeamRepo.EXPECT().GetTeamsForUsers(gomock.Any(), []uuid.UUID{alice.ID}).
		Return(map[uuid.UUID][]models.Team{alice.ID: {{TeamName: "Eng"}}}, nil)

	resp, err := suite.userService.List(suite.ctx, suite.admin, 0, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), service.DefaultPageSize, resp.PageSize)
	assert.Equal(suite.T(), []string{"Eng"}, resp.Users[0].Teams)
}

func (suite *UserServiceTestSuite) TestUpdate_DemoteLastAdminBlocked() {
	target := &models.User{BaseModel: models.BaseModel{ID: suite.admin.UserID}, Username: "root", IsStaff: true}
	demote := false

	suite.mockUserRepo.EXPECT().
		UpdateWithStaffGuard(gomock.Any(), target.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ map[string]interface{}, guard repository.StaffGuard) (*models.User, error) {
			if err := guard(target, 1); err != nil {
				return nil, err
			}
			return target, nil
		})

	_, err := suite.userService.Update(suite.ctx, suite.admin, target.ID, &service.UpdateUserRequest{IsStaff: &demote})

	assert.ErrorIs(suite.T(), err, apperrors.ErrLastAdmin)
	assert.Equal(suite.T(), map[string]string{"is_staff": "cannot remove the last remaining admin"}, apperrors.Fields(err))
}

func (suite *UserServiceTestSuite) TestUpdate_DemoteWithTwoAdminsRecordsEvent() {
	target := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "second", IsStaff: true}
	demote := false

	suite.mockUserRepo.EXPECT().
		UpdateWithStaffGuard(gomock.Any(), target.ID, map[string]interface{}{"is_staff": false}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ map[string]interface{}, guard repository.StaffGuard) (*models.User, error) {
			if err := guard(target, 2); err != nil {
				return nil, err
			}
			demoted := *target
			demoted.IsStaff = false
			return &demoted, nil
		})
	suite.mockEvents.EXPECT().Record(gomock.Any(), models.EventUserRoleChanged, gomock.Any()).
		Do(func(_ context.Context, _ models.EventName, metadata map[string]interface{}) {
			assert.Equal(suite.T(), false, metadata["is_staff"])
			assert.Equal(suite.T(), "root", metadata["changed_by"])
		})
	suite.expectNoTeams()

	resp, err := suite.userService.Update(suite.ctx, suite.admin, target.ID, &service.UpdateUserRequest{IsStaff: &demote})

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.IsStaff)
}

func (suite *UserServiceTestSuite) TestUpdate_NotFound() {
	name := "x"
	id := uuid.New()
	suite.mockUserRepo.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.userService.Update(suite.ctx, suite.admin, id, &service.UpdateUserRequest{FirstName: &name})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *UserServiceTestSuite) TestDelete() {
	suite.Run("last admin blocked", func() {
		target := &models.User{BaseModel: models.BaseModel{ID: suite.admin.UserID}, IsStaff: true}
		suite.mockUserRepo.EXPECT().DeleteWithStaffGuard(gomock.Any(), target.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, guard repository.StaffGuard) (*models.User, error) {
				return nil, guard(target, 1)
			})

		err := suite.userService.Delete(suite.ctx, suite.admin, target.ID)
		assert.ErrorIs(suite.T(), err, apperrors.ErrLastAdmin)
	})

	suite.Run("regular user", func() {
		target := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "bob"}
		suite.mockUserRepo.EXPECT().DeleteWithStaffGuard(gomock.Any(), target.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, guard repository.StaffGuard) (*models.User, error) {
				if err := guard(target, 1); err != nil {
					return nil, err
				}
				return target, nil
			})
		suite.mockEvents.EXPECT().Record(gomock.Any(), models.EventUserDeleted, gomock.Any())

		err := suite.userService.Delete(suite.ctx, suite.admin, target.ID)
		assert.NoError(suite.T(), err)
	})

	suite.Run("repository failure", func() {
		id := uuid.New()
		suite.mockUserRepo.EXPECT().DeleteWithStaffGuard(gomock.Any(), id, gomock.Any()).Return(nil, errors.New("boom"))

		err := suite.userService.Delete(suite.ctx, suite.admin, id)
		assert.Error(suite.T(), err)
		assert.False(suite.T(), apperrors.IsNotFound(err))
	})
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
