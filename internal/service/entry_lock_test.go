package service_test

import (
	"errors"
	"testing"
	"time"

	"advisory-portal-backend/internal/database/models"
	apperrors "advisory-portal-backend/internal/errors"
	"advisory-portal-backend/internal/mocks"
	"advisory-portal-backend/internal/notify"
	"advisory-portal-backend/internal/repository"
	"advisory-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const testLockTTL = 30 * time.Minute

// EntryLockServiceTestSuite defines the test suite for EntryLockService
type EntryLockServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockLockRepo      *mocks.MockEntryLockRepositoryInterface
	mockSheetRepo     *mocks.MockSheetRepositoryInterface
	mockTeamSheetRepo *mocks.MockTeamSheetRepositoryInterface
	mockResponseRepo  *mocks.MockSheetResponseRepositoryInterface
	mockUserRepo      *mocks.MockUserRepositoryInterface
	lockService       *service.EntryLockService

	userID  uuid.UUID
	teamID  uuid.UUID
	sheetID uuid.UUID
	entryID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *EntryLockServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLockRepo = mocks.NewMockEntryLockRepositoryInterface(suite.ctrl)
	suite.mockSheetRepo = mocks.NewMockSheetRepositoryInterface(suite.ctrl)
	suite.mockTeamSheetRepo = mocks.NewMockTeamSheetRepositoryInterface(suite.ctrl)
	suite.mockResponseRepo = mocks.NewMockSheetResponseRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)

	suite.lockService = service.NewEntryLockService(
		suite.mockLockRepo,
		suite.mockSheetRepo,
		suite.mockTeamSheetRepo,
		suite.mockResponseRepo,
		suite.mockUserRepo,
		notify.NoopPublisher{},
		testLockTTL,
	)

	suite.userID = uuid.New()
	suite.teamID = uuid.New()
	suite.sheetID = uuid.New()
	suite.entryID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *EntryLockServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EntryLockServiceTestSuite) teamUser() *models.User {
	teamID := suite.teamID
	return &models.User{
		BaseModel: models.BaseModel{ID: suite.userID},
		Username:  "alice",
		FullName:  "Alice Smith",
		TeamID:    &teamID,
		IsActive:  true,
	}
}

func (suite *EntryLockServiceTestSuite) sourceEntry() *models.SourceEntry {
	return &models.SourceEntry{
		BaseModel:   models.BaseModel{ID: suite.entryID},
		SheetID:     suite.sheetID,
		VendorName:  "Acme",
		ProductName: "Widget Server",
		RiskLevel:   models.RiskLevelHigh,
	}
}

func (suite *EntryLockServiceTestSuite) assignment(status models.AssignmentStatus) *models.TeamSheet {
	return &models.TeamSheet{
		BaseModel: models.BaseModel{ID: uuid.New()},
		SheetID:   suite.sheetID,
		TeamID:    suite.teamID,
		Status:    status,
	}
}

// expectResolve wires the user -> entry -> assignment lookup chain
func (suite *EntryLockServiceTestSuite) expectResolve(status models.AssignmentStatus) {
	suite.mockUserRepo.EXPECT().GetByID(suite.userID).Return(suite.teamUser(), nil)
	suite.mockSheetRepo.EXPECT().GetEntryByID(suite.entryID).Return(suite.sourceEntry(), nil)
	suite.mockTeamSheetRepo.EXPECT().GetBySheetAndTeam(suite.sheetID, suite.teamID).
		Return(suite.assignment(status), nil)
}

// TestLockEntry tests lock acquisition
func (suite *EntryLockServiceTestSuite) TestLockEntry() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.expectResolve(models.AssignmentStatusInProgress)
		suite.mockLockRepo.EXPECT().GetActiveByEntry(suite.entryID, gomock.Any()).
			Return(nil, gorm.ErrRecordNotFound)
		suite.mockLockRepo.EXPECT().Acquire(gomock.Any()).
			DoAndReturn(func(lock *models.EntryLock) error {
				assert.Equal(t, suite.entryID, lock.EntryID)
				assert.Equal(t, suite.userID, lock.LockedBy)
				assert.Equal(t, suite.teamID, lock.TeamID)
				assert.WithinDuration(t, time.Now().Add(testLockTTL), lock.ExpiresAt, 5*time.Second)
				return nil
			})

		resp, err := suite.lockService.LockEntry(suite.entryID, suite.userID)
		require.NoError(t, err)
		assert.Equal(t, suite.entryID, resp.EntryID)
		assert.Equal(t, suite.userID, resp.LockedBy)
		assert.Equal(t, suite.teamID, resp.TeamID)
	})

	suite.T().Run("Relock Refreshes Own Lock", func(t *testing.T) {
		suite.expectResolve(models.AssignmentStatusInProgress)
		existing := &models.EntryLock{
			EntryID:   suite.entryID,
			LockedBy:  suite.userID,
			TeamID:    suite.teamID,
			LockedAt:  time.Now().Add(-time.Minute),
			ExpiresAt: time.Now().Add(time.Minute),
		}
		suite.mockLockRepo.EXPECT().GetActiveByEntry(suite.entryID, gomock.Any()).
			Return(existing, nil)
		suite.mockLockRepo.EXPECT().Refresh(suite.entryID, suite.userID, gomock.Any()).
			Return(nil)

		resp, err := suite.lockService.LockEntry(suite.entryID, suite.userID)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(testLockTTL), resp.ExpiresAt, 5*time.Second)
	})

	suite.T().Run("Held By Another User", func(t *testing.T) {
		suite.expectResolve(models.AssignmentStatusInProgress)
		holderID := uuid.New()
		suite.mockLockRepo.EXPECT().GetActiveByEntry(suite.entryID, gomock.Any()).
			Return(&models.EntryLock{
				EntryID:  suite.entryID,
				LockedBy: holderID,
				TeamID:   suite.teamID,
				Holder:   &models.User{FullName: "Bob Jones"},
			}, nil)

		_, err := suite.lockService.LockEntry(suite.entryID, suite.userID)

		var lockedErr *apperrors.EntryLockedError
		require.ErrorAs(t, err, &lockedErr)
		assert.Equal(t, holderID, lockedErr.LockedBy)
		assert.Equal(t, "Bob Jones", lockedErr.LockedByName)
	})

	suite.T().Run("Lost Insert Race", func(t *testing.T) {
		suite.expectResolve(models.AssignmentStatusInProgress)
		holderID := uuid.New()
		suite.mockLockRepo.EXPECT().GetActiveByEntry(suite.entryID, gomock.Any()).
			Return(nil, gorm.ErrRecordNotFound)
		suite.mockLockRepo.EXPECT().Acquire(gomock.Any()).Return(repository.ErrLockHeld)
		suite.mockLockRepo.EXPECT().GetActiveByEntry(suite.entryID, gomock.Any()).
			Return(&models.EntryLock{EntryID: suite.entryID, LockedBy: holderID}, nil)

		_, err := suite.lockService.LockEntry(suite.entryID, suite.userID)

		var lockedErr *apperrors.EntryLockedError
		require.ErrorAs(t, err, &lockedErr)
		assert.Equal(t, holderID, lockedErr.LockedBy)
	})

	suite.T().Run("Completed Assignment", func(t *testing.T) {
		suite.expectResolve(models.AssignmentStatusCompleted)

		_, err := suite.lockService.LockEntry(suite.entryID, suite.userID)
		assert.ErrorIs(t, err, &apperrors.AssignmentCompletedError{})
	})

	suite.T().Run("User Without Team", func(t *testing.T) {
		user := suite.teamUser()
		user.TeamID = nil
		suite.mockUserRepo.EXPECT().GetByID(suite.userID).Return(user, nil)

		_, err := suite.lockService.LockEntry(suite.entryID, suite.userID)
		assert.ErrorIs(t, err, apperrors.ErrUserNotAssignedToTeam)
	})

	suite.T().Run("Entry Not Found", func(t *testing.T) {
		suite.mockUserRepo.EXPECT().GetByID(suite.userID).Return(suite.teamUser(), nil)
		suite.mockSheetRepo.EXPECT().GetEntryByID(suite.entryID).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.lockService.LockEntry(suite.entryID, suite.userID)
		assert.ErrorIs(t, err, apperrors.ErrEntryNotFound)
	})

	suite.T().Run("Sheet Not Assigned To Team", func(t *testing.T) {
		suite.mockUserRepo.EXPECT().GetByID(suite.userID).Return(suite.teamUser(), nil)
		suite.mockSheetRepo.EXPECT().GetEntryByID(suite.entryID).Return(suite.sourceEntry(), nil)
		suite.mockTeamSheetRepo.EXPECT().GetBySheetAndTeam(suite.sheetID, suite.teamID).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.lockService.LockEntry(suite.entryID, suite.userID)
		assert.ErrorIs(t, err, apperrors.ErrEntryNotInAssignedSheet)
	})
}

// TestUnlockEntry tests lock release
func (suite *EntryLockServiceTestSuite) TestUnlockEntry() {
	suite.T().Run("Holder Releases", func(t *testing.T) {
		suite.mockSheetRepo.EXPECT().GetEntryByID(suite.entryID).Return(suite.sourceEntry(), nil)
		suite.mockLockRepo.EXPECT().Release(suite.entryID, suite.userID).Return(nil)

		err := suite.lockService.UnlockEntry(suite.entryID, suite.userID, false)
		assert.NoError(t, err)
	})

	suite.T().Run("Non-Holder Is Rejected", func(t *testing.T) {
		suite.mockSheetRepo.EXPECT().GetEntryByID(suite.entryID).Return(suite.sourceEntry(), nil)
		suite.mockLockRepo.EXPECT().Release(suite.entryID, suite.userID).
			Return(gorm.ErrRecordNotFound)

		err := suite.lockService.UnlockEntry(suite.entryID, suite.userID, false)
		assert.ErrorIs(t, err, &apperrors.NotLockHolderError{})
	})

	suite.T().Run("Admin Forces Release", func(t *testing.T) {
		suite.mockSheetRepo.EXPECT().GetEntryByID(suite.entryID).Return(suite.sourceEntry(), nil)
		suite.mockLockRepo.EXPECT().ForceRelease(suite.entryID).Return(nil)

		err := suite.lockService.UnlockEntry(suite.entryID, suite.userID, true)
		assert.NoError(t, err)
	})

	suite.T().Run("Entry Not Found", func(t *testing.T) {
		suite.mockSheetRepo.EXPECT().GetEntryByID(suite.entryID).
			Return(nil, gorm.ErrRecordNotFound)

		err := suite.lockService.UnlockEntry(suite.entryID, suite.userID, false)
		assert.ErrorIs(t, err, apperrors.ErrEntryNotFound)
	})
}

// TestGetAvailableEntries tests the per-sheet entry projection
func (suite *EntryLockServiceTestSuite) TestGetAvailableEntries() {
	suite.T().Run("Annotates Locks And Responses", func(t *testing.T) {
		suite.mockUserRepo.EXPECT().GetByID(suite.userID).Return(suite.teamUser(), nil)
		assignment := suite.assignment(models.AssignmentStatusInProgress)
		mine := suite.sourceEntry()
		theirs := &models.SourceEntry{
			BaseModel:   models.BaseModel{ID: uuid.New()},
			SheetID:     suite.sheetID,
			VendorName:  "Initech",
			ProductName: "TPS Gateway",
			RiskLevel:   models.RiskLevelMedium,
		}
		free := &models.SourceEntry{
			BaseModel: models.BaseModel{ID: uuid.New()},
			SheetID:   suite.sheetID,
			RiskLevel: models.RiskLevelLow,
		}

		suite.mockTeamSheetRepo.EXPECT().GetBySheetAndTeam(suite.sheetID, suite.teamID).
			Return(assignment, nil)
		suite.mockSheetRepo.EXPECT().GetEntriesBySheetID(suite.sheetID).
			Return([]models.SourceEntry{*mine, *theirs, *free}, nil)
		suite.mockLockRepo.EXPECT().GetActiveBySheet(suite.sheetID, gomock.Any()).
			Return([]models.EntryLock{
				{EntryID: mine.ID, LockedBy: suite.userID, TeamID: suite.teamID},
				{EntryID: theirs.ID, LockedBy: uuid.New(), TeamID: suite.teamID,
					Holder: &models.User{FullName: "Bob Jones"}},
			}, nil)
		responseID := uuid.New()
		suite.mockResponseRepo.EXPECT().GetByAssignment(assignment.ID).
			Return([]models.SheetResponse{
				{
					BaseModel:       models.BaseModel{ID: responseID},
					TeamSheetID:     assignment.ID,
					OriginalEntryID: theirs.ID,
					IsCompleted:     true,
					ResponseFields:  models.ResponseFields{DeployedInKE: models.AnswerNo},
				},
			}, nil)

		snapshots, err := suite.lockService.GetAvailableEntries(suite.sheetID, suite.teamID, suite.userID)
		require.NoError(t, err)
		require.Len(t, snapshots, 3)

		assert.True(t, snapshots[0].IsLockedByMe)
		assert.False(t, snapshots[0].IsLocked)

		assert.True(t, snapshots[1].IsLocked)
		assert.Equal(t, "Bob Jones", snapshots[1].LockedByName)
		assert.True(t, snapshots[1].IsCompleted)
		require.NotNil(t, snapshots[1].ResponseID)
		assert.Equal(t, responseID, *snapshots[1].ResponseID)
		require.NotNil(t, snapshots[1].Response)
		assert.Equal(t, models.AnswerNo, snapshots[1].Response.DeployedInKE)

		assert.False(t, snapshots[2].IsLocked)
		assert.False(t, snapshots[2].IsLockedByMe)
		assert.Nil(t, snapshots[2].Response)
	})

	suite.T().Run("No Assignment", func(t *testing.T) {
		suite.mockUserRepo.EXPECT().GetByID(suite.userID).Return(suite.teamUser(), nil)
		suite.mockTeamSheetRepo.EXPECT().GetBySheetAndTeam(suite.sheetID, suite.teamID).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.lockService.GetAvailableEntries(suite.sheetID, suite.teamID, suite.userID)
		assert.ErrorIs(t, err, apperrors.ErrAssignmentNotFound)
	})

	suite.T().Run("Caller From Another Team Is Rejected", func(t *testing.T) {
		// nothing is loaded for the target team: the membership check comes
		// before any assignment or response read
		otherTeamID := uuid.New()
		suite.mockUserRepo.EXPECT().GetByID(suite.userID).Return(suite.teamUser(), nil)

		_, err := suite.lockService.GetAvailableEntries(suite.sheetID, otherTeamID, suite.userID)
		assert.ErrorIs(t, err, apperrors.ErrNotTeamMember)
	})

	suite.T().Run("Caller Without Team Is Rejected", func(t *testing.T) {
		user := suite.teamUser()
		user.TeamID = nil
		suite.mockUserRepo.EXPECT().GetByID(suite.userID).Return(user, nil)

		_, err := suite.lockService.GetAvailableEntries(suite.sheetID, suite.teamID, suite.userID)
		assert.ErrorIs(t, err, apperrors.ErrNotTeamMember)
	})

	suite.T().Run("Admin May Read Any Team", func(t *testing.T) {
		otherTeamID := uuid.New()
		admin := suite.teamUser()
		admin.IsAdmin = true
		suite.mockUserRepo.EXPECT().GetByID(suite.userID).Return(admin, nil)

		assignment := suite.assignment(models.AssignmentStatusInProgress)
		assignment.TeamID = otherTeamID
		suite.mockTeamSheetRepo.EXPECT().GetBySheetAndTeam(suite.sheetID, otherTeamID).
			Return(assignment, nil)
		suite.mockSheetRepo.EXPECT().GetEntriesBySheetID(suite.sheetID).
			Return([]models.SourceEntry{*suite.sourceEntry()}, nil)
		suite.mockLockRepo.EXPECT().GetActiveBySheet(suite.sheetID, gomock.Any()).
			Return([]models.EntryLock{}, nil)
		suite.mockResponseRepo.EXPECT().GetByAssignment(assignment.ID).
			Return([]models.SheetResponse{}, nil)

		snapshots, err := suite.lockService.GetAvailableEntries(suite.sheetID, otherTeamID, suite.userID)
		require.NoError(t, err)
		assert.Len(t, snapshots, 1)
	})
}

// TestReleaseExpiredLocks tests the TTL sweep
func (suite *EntryLockServiceTestSuite) TestReleaseExpiredLocks() {
	suite.T().Run("Returns Released Count", func(t *testing.T) {
		suite.mockLockRepo.EXPECT().DeleteExpired(gomock.Any()).Return(int64(3), nil)

		count, err := suite.lockService.ReleaseExpiredLocks()
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	suite.T().Run("Propagates Repository Error", func(t *testing.T) {
		suite.mockLockRepo.EXPECT().DeleteExpired(gomock.Any()).
			Return(int64(0), errors.New("connection reset"))

		_, err := suite.lockService.ReleaseExpiredLocks()
		assert.Error(t, err)
	})
}

// TestEntryLockServiceTestSuite runs the test suite
func TestEntryLockServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EntryLockServiceTestSuite))
}
