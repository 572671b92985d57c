//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"teampulse-backend/internal/database/models"
	"teampulse-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	users         *UserRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.users = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamRepositoryTestSuite) newTeam(name string) *models.Team {
	team := suite.factories.Team.WithName(name)
	suite.Require().NoError(suite.repo.Create(suite.ctx, team))
	return team
}

func (suite *TeamRepositoryTestSuite) newUser() *models.User {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.users.Create(suite.ctx, user))
	return user
}

// TestCreate tests creating a new team
func (suite *TeamRepositoryTestSuite) TestCreate() {
	team := suite.factories.Team.Create()

	err := suite.repo.Create(suite.ctx, team)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)
	suite.NotZero(team.CreatedAt)
}

// TestDuplicateNamesAllowed tests that team names are not unique
func (suite *TeamRepositoryTestSuite) TestDuplicateNamesAllowed() {
	suite.newTeam("Eng")
	err := suite.repo.Create(suite.ctx, suite.factories.Team.WithName("Eng"))

	suite.NoError(err)
}

// TestListAll tests the public listing order
func (suite *TeamRepositoryTestSuite) TestListAll() {
	suite.newTeam("Ops")
	suite.newTeam("Eng")

	teams, err := suite.repo.ListAll(suite.ctx)

	suite.NoError(err)
	suite.Len(teams, 2)
	suite.Equal("Eng", teams[0].TeamName)
	suite.Equal("Ops", teams[1].TeamName)
}

// TestMembership tests idempotent add and remove
func (suite *TeamRepositoryTestSuite) TestMembership() {
	team := suite.newTeam("Eng")
	user := suite.newUser()

	added, err := suite.repo.AddMember(suite.ctx, team.ID, user.ID)
	suite.NoError(err)
	suite.True(added)

	added, err = suite.repo.AddMember(suite.ctx, team.ID, user.ID)
	suite.NoError(err)
	suite.False(added)

	members, err := suite.repo.GetMembers(suite.ctx, []uuid.UUID{team.ID})
	suite.NoError(err)
	suite.Len(members[team.ID], 1)
	suite.Equal(user.Username, members[team.ID][0].Username)

	removed, err := suite.repo.RemoveMember(suite.ctx, team.ID, user.ID)
	suite.NoError(err)
	suite.True(removed)

	removed, err = suite.repo.RemoveMember(suite.ctx, team.ID, user.ID)
	suite.NoError(err)
	suite.False(removed)
}

// TestListTeamIDsForUser tests membership ordering by join time
func (suite *TeamRepositoryTestSuite) TestListTeamIDsForUser() {
	user := suite.newUser()
	later := suite.newTeam("Later")
	earlier := suite.newTeam("Earlier")

	db := suite.baseTestSuite.DB
	now := time.Now()
	suite.Require().NoError(db.Create(&models.TeamMember{TeamID: later.ID, UserID: user.ID, JoinedAt: now}).Error)
	suite.Require().NoError(db.Create(&models.TeamMember{TeamID: earlier.ID, UserID: user.ID, JoinedAt: now.Add(-time.Hour)}).Error)

	ids, err := suite.repo.ListTeamIDsForUser(suite.ctx, user.ID)

	suite.NoError(err)
	suite.Equal([]uuid.UUID{earlier.ID, later.ID}, ids)
}

// TestDeleteCascadesMemberships tests that deleting a team removes its memberships
func (suite *TeamRepositoryTestSuite) TestDeleteCascadesMemberships() {
	team := suite.newTeam("Eng")
	user := suite.newUser()
	_, err := suite.repo.AddMember(suite.ctx, team.ID, user.ID)
	suite.Require().NoError(err)

	suite.NoError(suite.repo.Delete(suite.ctx, team.ID))

	_, err = suite.repo.GetByID(suite.ctx, team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	ids, err := suite.repo.ListTeamIDsForUser(suite.ctx, user.ID)
	suite.NoError(err)
	suite.Empty(ids)
}

// TestGetTeamsForUsers tests the batched team lookup used by user responses
func (suite *TeamRepositoryTestSuite) TestGetTeamsForUsers() {
	eng := suite.newTeam("Eng")
	ops := suite.newTeam("Ops")
	alice := suite.newUser()
	bob := suite.newUser()
	loner := suite.newUser()
	for _, m := range []struct{ team, user uuid.UUID }{
		{eng.ID, alice.ID},
		{ops.ID, alice.ID},
		{ops.ID, bob.ID},
	} {
		_, err := suite.repo.AddMember(suite.ctx, m.team, m.user)
		suite.Require().NoError(err)
	}

	teams, err := suite.repo.GetTeamsForUsers(suite.ctx, []uuid.UUID{alice.ID, bob.ID, loner.ID})

	suite.NoError(err)
	suite.Len(teams[alice.ID], 2)
	suite.Len(teams[bob.ID], 1)
	suite.Equal("Ops", teams[bob.ID][0].TeamName)
	suite.Empty(teams[loner.ID])
}

// Run the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
