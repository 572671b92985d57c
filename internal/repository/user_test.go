//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"teampulse-backend/internal/database/models"
	"teampulse-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

var errBlocked = errors.New("blocked")

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *UserRepositoryTestSuite) create(user *models.User) *models.User {
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))
	return user
}

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.Create()

	err := suite.repo.Create(suite.ctx, user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
	suite.NotZero(user.CreatedAt)
	suite.NotZero(user.UpdatedAt)
}

// TestCreateDuplicateUsername tests the username unique index
func (suite *UserRepositoryTestSuite) TestCreateDuplicateUsername() {
	suite.create(suite.factories.User.WithUsername("alice"))

	dup := suite.factories.User.WithUsername("alice")
	dup.Email = "other@example.com"
	err := suite.repo.Create(suite.ctx, dup)

	suite.Error(err)
	suite.True(IsUniqueViolation(err))
	suite.Contains(UniqueConstraint(err), "username")
}

// TestGetByEmailIgnoresCase tests case-insensitive email lookup
func (suite *UserRepositoryTestSuite) TestGetByEmailIgnoresCase() {
	user := suite.create(suite.factories.User.WithUsername("bob"))

	found, err := suite.repo.GetByEmail(suite.ctx, "BOB@example.com")

	suite.NoError(err)
	suite.Equal(user.ID, found.ID)

	exists, err := suite.repo.ExistsByEmail(suite.ctx, "Bob@Example.com")
	suite.NoError(err)
	suite.True(exists)
}

// TestGetByIDNotFound tests retrieving a missing user
func (suite *UserRepositoryTestSuite) TestGetByIDNotFound() {
	user, err := suite.repo.GetByID(suite.ctx, uuid.New())

	suite.Error(err)
	suite.Nil(user)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetAll tests pagination
func (suite *UserRepositoryTestSuite) TestGetAll() {
	for i := 0; i < 3; i++ {
		suite.create(suite.factories.User.Create())
	}

	users, total, err := suite.repo.GetAll(suite.ctx, 2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(users, 2)
}

// TestUpdate tests partial column updates
func (suite *UserRepositoryTestSuite) TestUpdate() {
	user := suite.create(suite.factories.User.Create())

	updated, err := suite.repo.Update(suite.ctx, user.ID, map[string]interface{}{"first_name": "Alice", "is_active": false})

	suite.NoError(err)
	suite.Equal("Alice", updated.FirstName)
	suite.False(updated.IsActive)
	suite.Equal(user.LastName, updated.LastName)
}

// TestUpdateWithStaffGuard tests that the guard sees the admin count and can block the change
func (suite *UserRepositoryTestSuite) TestUpdateWithStaffGuard() {
	admin := suite.create(suite.factories.User.Admin())
	suite.create(suite.factories.User.Create())

	var seen int64
	_, err := suite.repo.UpdateWithStaffGuard(suite.ctx, admin.ID, map[string]interface{}{"is_staff": false},
		func(current *models.User, adminCount int64) error {
			seen = adminCount
			suite.True(current.IsStaff)
			return errBlocked
		})

	suite.ErrorIs(err, errBlocked)
	suite.Equal(int64(1), seen)

	reloaded, err := suite.repo.GetByID(suite.ctx, admin.ID)
	suite.NoError(err)
	suite.True(reloaded.IsStaff)
}

// TestUpdateWithStaffGuardApplies tests a permitted demotion
func (suite *UserRepositoryTestSuite) TestUpdateWithStaffGuardApplies() {
	first := suite.create(suite.factories.User.Admin())
	suite.create(suite.factories.User.Admin())

	updated, err := suite.repo.UpdateWithStaffGuard(suite.ctx, first.ID, map[string]interface{}{"is_staff": false},
		func(_ *models.User, adminCount int64) error {
			suite.Equal(int64(2), adminCount)
			return nil
		})

	suite.NoError(err)
	suite.False(updated.IsStaff)

	count, err := suite.repo.CountStaff(suite.ctx)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestConcurrentDemotions tests that two simultaneous demotions cannot remove both admins
func (suite *UserRepositoryTestSuite) TestConcurrentDemotions() {
	a := suite.create(suite.factories.User.Admin())
	b := suite.create(suite.factories.User.Admin())

	guard := func(current *models.User, adminCount int64) error {
		if current.IsStaff && adminCount <= 1 {
			return errBlocked
		}
		return nil
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []uuid.UUID{a.ID, b.ID} {
		wg.Add(1)
		go func(i int, id uuid.UUID) {
			defer wg.Done()
			_, errs[i] = suite.repo.UpdateWithStaffGuard(suite.ctx, id, map[string]interface{}{"is_staff": false}, guard)
		}(i, id)
	}
	wg.Wait()

	failures := 0
	for _, err := range errs {
		if err != nil {
			suite.ErrorIs(err, errBlocked)
			failures++
		}
	}
	suite.Equal(1, failures)

	count, err := suite.repo.CountStaff(suite.ctx)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestDeleteWithStaffGuard tests deletion through the guard
func (suite *UserRepositoryTestSuite) TestDeleteWithStaffGuard() {
	user := suite.create(suite.factories.User.Create())

	deleted, err := suite.repo.DeleteWithStaffGuard(suite.ctx, user.ID, func(*models.User, int64) error { return nil })

	suite.NoError(err)
	suite.Equal(user.Username, deleted.Username)

	_, err = suite.repo.GetByID(suite.ctx, user.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteWithStaffGuardMissing tests deleting an unknown user
func (suite *UserRepositoryTestSuite) TestDeleteWithStaffGuardMissing() {
	_, err := suite.repo.DeleteWithStaffGuard(suite.ctx, uuid.New(), func(*models.User, int64) error { return nil })

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// Run the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
