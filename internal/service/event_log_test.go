package service_test

import (
	"context"
	"errors"
	"math"
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
)

// EventLogServiceTestSuite defines the test suite for EventLogService
type EventLogServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockEventLogRepo *mocks.MockEventLogRepositoryInterface
	eventLogService  *service.EventLogService
	ctx              context.Context
	admin            access.Caller
	member           access.Caller
}

// SetupTest sets up the test suite
func (suite *EventLogServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEventLogRepo = mocks.NewMockEventLogRepositoryInterface(suite.ctrl)
	suite.eventLogService = service.NewEventLogService(suite.mockEventLogRepo, service.NewValidator())
	suite.ctx = context.Background()
	suite.admin = access.Caller{UserID: uuid.New(), Username: "root", IsStaff: true}
	suite.member = access.Caller{UserID: uuid.New(), Username: "alice"}
}

// TearDownTest cleans up after each test
func (suite *EventLogServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EventLogServiceTestSuite) TestMemberForbidden() {
	_, err := suite.eventLogService.List(suite.ctx, suite.member, "", 1, 20)
	assert.True(suite.T(), apperrors.IsAuthorization(err))

	err = suite.eventLogService.Delete(suite.ctx, suite.member, uuid.New())
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *EventLogServiceTestSuite) TestList_FiltersByName() {
	events := []models.EventLog{{EventName: "user_registered"}}
	suite.mockEventLogRepo.EXPECT().List(gomock.Any(), "user_registered", 50, 50).Return(events, int64(51), nil)

	resp, err := suite.eventLogService.List(suite.ctx, suite.admin, "user_registered", 2, 50)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(51), resp.Total)
	assert.Equal(suite.T(), "user_registered", resp.EventLogs[0].EventName)
}

func (suite *EventLogServiceTestSuite) TestList_HugePageIsClamped() {
	offset := (service.MaxPage - 1) * 50
	suite.mockEventLogRepo.EXPECT().List(gomock.Any(), "", 50, offset).Return(nil, int64(3), nil)

	resp, err := suite.eventLogService.List(suite.ctx, suite.admin, "", math.MaxInt, 50)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.MaxPage, resp.Page)
	assert.Greater(suite.T(), offset, 0)
}

func (suite *EventLogServiceTestSuite) TestCreate() {
	suite.Run("requires event name", func() {
		_, err := suite.eventLogService.Create(suite.ctx, suite.admin, &service.EventLogRequest{})
		assert.Equal(suite.T(), map[string]string{"event_name": "This field is required."}, apperrors.Fields(err))
	})

	suite.Run("success", func() {
		name := "maintenance"
		meta := "window opened"
		suite.mockEventLogRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, event *models.EventLog) error {
			assert.Equal(suite.T(), "maintenance", event.EventName)
			assert.Equal(suite.T(), &meta, event.Metadata)
			return nil
		})

		resp, err := suite.eventLogService.Create(suite.ctx, suite.admin, &service.EventLogRequest{EventName: &name, Metadata: &meta})
		assert.NoError(suite.T(), err)
		assert.Equal(suite.T(), "maintenance", resp.EventName)
	})
}

func (suite *EventLogServiceTestSuite) TestUpdate_PartialKeepsName() {
	event := &models.EventLog{BaseModel: models.BaseModel{ID: uuid.New()}, EventName: "maintenance"}
	meta := "window closed"
	suite.mockEventLogRepo.EXPECT().GetByID(gomock.Any(), event.ID).Return(event, nil)
	suite.mockEventLogRepo.EXPECT().Update(gomock.Any(), event).Return(nil)

	resp, err := suite.eventLogService.Update(suite.ctx, suite.admin, event.ID, &service.EventLogRequest{Metadata: &meta}, true)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "maintenance", resp.EventName)
	assert.Equal(suite.T(), "window closed", *resp.Metadata)
}

func (suite *EventLogServiceTestSuite) TestRecord_StoresJSONMetadata() {
	suite.mockEventLogRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, event *models.EventLog) error {
		assert.Equal(suite.T(), "team_member_added", event.EventName)
		assert.JSONEq(suite.T(), `{"team_name":"Eng","username":"alice"}`, *event.Metadata)
		return nil
	})

	suite.eventLogService.Record(suite.ctx, models.EventTeamMemberAdded, map[string]interface{}{
		"team_name": "Eng",
		"username":  "alice",
	})
}

func (suite *EventLogServiceTestSuite) TestRecord_SwallowsFailures() {
	suite.mockEventLogRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	assert.NotPanics(suite.T(), func() {
		suite.eventLogService.Record(suite.ctx, models.EventUserDeleted, nil)
	})
}

// TestEventLogServiceTestSuite runs the test suite
func TestEventLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EventLogServiceTestSuite))
}
