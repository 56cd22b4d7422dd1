//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"
	"time"

	"advisory-portal-backend/internal/database/models"
	"advisory-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// EntryLockRepositoryTestSuite tests the EntryLockRepository
type EntryLockRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *EntryLockRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *EntryLockRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewEntryLockRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *EntryLockRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *EntryLockRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *EntryLockRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedAssignedSheet persists a team, a member user, a sheet with entries and
// the assignment linking them
func (suite *EntryLockRepositoryTestSuite) seedAssignedSheet(entryCount int) (*models.Team, *models.User, *models.AdvisorySheet, []*models.SourceEntry, *models.TeamSheet) {
	team, user, sheet, entries, assignment := suite.factories.CreateAssignedSheet(entryCount)

	db := suite.baseTestSuite.DB
	suite.Require().NoError(db.Create(team).Error)
	suite.Require().NoError(db.Create(user).Error)
	suite.Require().NoError(db.Create(sheet).Error)
	for _, entry := range entries {
		suite.Require().NoError(db.Create(entry).Error)
	}
	suite.Require().NoError(db.Create(assignment).Error)

	return team, user, sheet, entries, assignment
}

// TestAcquire tests acquiring a lock on a free entry
func (suite *EntryLockRepositoryTestSuite) TestAcquire() {
	team, user, _, entries, _ := suite.seedAssignedSheet(1)

	lock := suite.factories.Lock.For(entries[0].ID, user.ID, team.ID)
	err := suite.repo.Acquire(lock)
	suite.NoError(err)

	active, err := suite.repo.GetActiveByEntry(entries[0].ID, time.Now())
	suite.NoError(err)
	suite.Equal(user.ID, active.LockedBy)
	suite.Equal(team.ID, active.TeamID)
}

// TestAcquireHeldEntry tests that a second acquisition hits the unique index
func (suite *EntryLockRepositoryTestSuite) TestAcquireHeldEntry() {
	team, user, _, entries, _ := suite.seedAssignedSheet(1)
	other := suite.factories.User.WithTeam(team.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(other).Error)

	first := suite.factories.Lock.For(entries[0].ID, user.ID, team.ID)
	suite.NoError(suite.repo.Acquire(first))

	second := suite.factories.Lock.For(entries[0].ID, other.ID, team.ID)
	err := suite.repo.Acquire(second)
	suite.Error(err)
	suite.True(errors.Is(err, ErrLockHeld))

	// the original holder keeps the lock
	active, err := suite.repo.GetActiveByEntry(entries[0].ID, time.Now())
	suite.NoError(err)
	suite.Equal(user.ID, active.LockedBy)
}

// TestAcquireReclaimsExpiredLock tests that an expired row does not block
// acquisition
func (suite *EntryLockRepositoryTestSuite) TestAcquireReclaimsExpiredLock() {
	team, user, _, entries, _ := suite.seedAssignedSheet(1)
	other := suite.factories.User.WithTeam(team.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(other).Error)

	expired := suite.factories.Lock.Expired(entries[0].ID, user.ID, team.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(expired).Error)

	fresh := suite.factories.Lock.For(entries[0].ID, other.ID, team.ID)
	err := suite.repo.Acquire(fresh)
	suite.NoError(err)

	active, err := suite.repo.GetActiveByEntry(entries[0].ID, time.Now())
	suite.NoError(err)
	suite.Equal(other.ID, active.LockedBy)
}

// TestGetActiveByEntryIgnoresExpired tests lazy expiry on reads
func (suite *EntryLockRepositoryTestSuite) TestGetActiveByEntryIgnoresExpired() {
	team, user, _, entries, _ := suite.seedAssignedSheet(1)

	expired := suite.factories.Lock.Expired(entries[0].ID, user.ID, team.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(expired).Error)

	_, err := suite.repo.GetActiveByEntry(entries[0].ID, time.Now())
	suite.Error(err)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

// TestGetActiveBySheet tests listing active locks across a sheet's entries
func (suite *EntryLockRepositoryTestSuite) TestGetActiveBySheet() {
	team, user, sheet, entries, _ := suite.seedAssignedSheet(3)

	suite.NoError(suite.repo.Acquire(suite.factories.Lock.For(entries[0].ID, user.ID, team.ID)))
	suite.NoError(suite.repo.Acquire(suite.factories.Lock.For(entries[1].ID, user.ID, team.ID)))
	expired := suite.factories.Lock.Expired(entries[2].ID, user.ID, team.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(expired).Error)

	locks, err := suite.repo.GetActiveBySheet(sheet.ID, time.Now())
	suite.NoError(err)
	suite.Len(locks, 2)
	for _, lock := range locks {
		suite.NotNil(lock.Holder)
		suite.Equal(user.Username, lock.Holder.Username)
	}
}

// TestRefresh tests extending the TTL of a held lock
func (suite *EntryLockRepositoryTestSuite) TestRefresh() {
	team, user, _, entries, _ := suite.seedAssignedSheet(1)

	lock := suite.factories.Lock.For(entries[0].ID, user.ID, team.ID)
	suite.NoError(suite.repo.Acquire(lock))

	newExpiry := time.Now().Add(2 * time.Hour)
	suite.NoError(suite.repo.Refresh(entries[0].ID, user.ID, newExpiry))

	active, err := suite.repo.GetActiveByEntry(entries[0].ID, time.Now())
	suite.NoError(err)
	suite.WithinDuration(newExpiry, active.ExpiresAt, time.Second)
}

// TestRelease tests that only the holder can release
func (suite *EntryLockRepositoryTestSuite) TestRelease() {
	team, user, _, entries, _ := suite.seedAssignedSheet(1)
	other := suite.factories.User.WithTeam(team.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(other).Error)

	lock := suite.factories.Lock.For(entries[0].ID, user.ID, team.ID)
	suite.NoError(suite.repo.Acquire(lock))

	// releasing as somebody else matches no rows
	err := suite.repo.Release(entries[0].ID, other.ID)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))

	// the holder releases successfully
	suite.NoError(suite.repo.Release(entries[0].ID, user.ID))

	_, err = suite.repo.GetActiveByEntry(entries[0].ID, time.Now())
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

// TestForceRelease tests releasing regardless of holder
func (suite *EntryLockRepositoryTestSuite) TestForceRelease() {
	team, user, _, entries, _ := suite.seedAssignedSheet(1)

	lock := suite.factories.Lock.For(entries[0].ID, user.ID, team.ID)
	suite.NoError(suite.repo.Acquire(lock))

	suite.NoError(suite.repo.ForceRelease(entries[0].ID))

	_, err := suite.repo.GetActiveByEntry(entries[0].ID, time.Now())
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

// TestDeleteExpired tests the sweep removes only aged-out rows
func (suite *EntryLockRepositoryTestSuite) TestDeleteExpired() {
	team, user, _, entries, _ := suite.seedAssignedSheet(3)

	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.factories.Lock.Expired(entries[0].ID, user.ID, team.ID)).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.factories.Lock.Expired(entries[1].ID, user.ID, team.ID)).Error)
	suite.NoError(suite.repo.Acquire(suite.factories.Lock.For(entries[2].ID, user.ID, team.ID)))

	released, err := suite.repo.DeleteExpired(time.Now())
	suite.NoError(err)
	suite.Equal(int64(2), released)

	// the active lock survives
	active, err := suite.repo.GetActiveByEntry(entries[2].ID, time.Now())
	suite.NoError(err)
	suite.Equal(user.ID, active.LockedBy)
}

// TestEntryLockRepositoryTestSuite runs the test suite
func TestEntryLockRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EntryLockRepositoryTestSuite))
}
