//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"teampulse-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// EventLogRepositoryTestSuite tests the EventLogRepository
type EventLogRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *EventLogRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *EventLogRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewEventLogRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *EventLogRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *EventLogRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *EventLogRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestListNewestFirst tests ordering and the name filter
func (suite *EventLogRepositoryTestSuite) TestListNewestFirst() {
	older := suite.factories.EventLog.WithName("user_registered")
	older.Timestamp = time.Now().Add(-time.Hour)
	newer := suite.factories.EventLog.WithName("user_registered")
	other := suite.factories.EventLog.WithName("user_deleted")
	for _, e := range []interface{}{older, newer, other} {
		suite.Require().NoError(suite.baseTestSuite.DB.Create(e).Error)
	}

	events, total, err := suite.repo.List(suite.ctx, "user_registered", 20, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Equal(newer.ID, events[0].ID)
	suite.Equal(older.ID, events[1].ID)
}

// TestCreateStampsTimestamp tests that a zero timestamp is filled in
func (suite *EventLogRepositoryTestSuite) TestCreateStampsTimestamp() {
	event := suite.factories.EventLog.WithName("manual")
	event.Timestamp = time.Time{}

	suite.NoError(suite.repo.Create(suite.ctx, event))
	suite.False(event.Timestamp.IsZero())
}

// Run the test suite
func TestEventLogRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EventLogRepositoryTestSuite))
}
