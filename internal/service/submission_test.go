package service_test

import (
	"errors"
	"testing"
	"time"

	"advisory-portal-backend/internal/database/models"
	apperrors "advisory-portal-backend/internal/errors"
	"advisory-portal-backend/internal/mocks"
	"advisory-portal-backend/internal/notify"
	"advisory-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// SubmissionServiceTestSuite defines the test suite for SubmissionService
type SubmissionServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockTeamSheetRepo *mocks.MockTeamSheetRepositoryInterface
	mockResponseRepo  *mocks.MockSheetResponseRepositoryInterface
	mockSheetRepo     *mocks.MockSheetRepositoryInterface
	mockLockRepo      *mocks.MockEntryLockRepositoryInterface
	mockUserRepo      *mocks.MockUserRepositoryInterface
	submissionService *service.SubmissionService

	userID       uuid.UUID
	teamID       uuid.UUID
	sheetID      uuid.UUID
	assignmentID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *SubmissionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamSheetRepo = mocks.NewMockTeamSheetRepositoryInterface(suite.ctrl)
	suite.mockResponseRepo = mocks.NewMockSheetResponseRepositoryInterface(suite.ctrl)
	suite.mockSheetRepo = mocks.NewMockSheetRepositoryInterface(suite.ctrl)
	suite.mockLockRepo = mocks.NewMockEntryLockRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)

	suite.submissionService = service.NewSubmissionService(
		nil,
		suite.mockTeamSheetRepo,
		suite.mockResponseRepo,
		suite.mockSheetRepo,
		suite.mockLockRepo,
		suite.mockUserRepo,
		notify.NoopPublisher{},
	)

	suite.userID = uuid.New()
	suite.teamID = uuid.New()
	suite.sheetID = uuid.New()
	suite.assignmentID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *SubmissionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SubmissionServiceTestSuite) teamUser() *models.User {
	teamID := suite.teamID
	return &models.User{
		BaseModel: models.BaseModel{ID: suite.userID},
		Username:  "alice",
		TeamID:    &teamID,
		IsActive:  true,
	}
}

func (suite *SubmissionServiceTestSuite) assignment(status models.AssignmentStatus) *models.TeamSheet {
	return &models.TeamSheet{
		BaseModel:  models.BaseModel{ID: suite.assignmentID},
		SheetID:    suite.sheetID,
		TeamID:     suite.teamID,
		Status:     status,
		AssignedAt: time.Now().Add(-time.Hour),
	}
}

func (suite *SubmissionServiceTestSuite) entry() models.SourceEntry {
	return models.SourceEntry{
		BaseModel: models.BaseModel{ID: uuid.New()},
		SheetID:   suite.sheetID,
		RiskLevel: models.RiskLevelHigh,
	}
}

// expectAssignmentLookup wires the user -> assignment resolution
func (suite *SubmissionServiceTestSuite) expectAssignmentLookup(status models.AssignmentStatus) {
	suite.mockUserRepo.EXPECT().GetByID(suite.userID).Return(suite.teamUser(), nil)
	suite.mockTeamSheetRepo.EXPECT().GetBySheetAndTeam(suite.sheetID, suite.teamID).
		Return(suite.assignment(status), nil)
}

// TestStart tests the assigned -> in_progress transition
func (suite *SubmissionServiceTestSuite) TestStart() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.expectAssignmentLookup(models.AssignmentStatusAssigned)
		suite.mockTeamSheetRepo.EXPECT().
			MarkStarted(suite.assignmentID, suite.userID, gomock.Any()).
			Return(nil)
		started := suite.assignment(models.AssignmentStatusInProgress)
		suite.mockTeamSheetRepo.EXPECT().GetByID(suite.assignmentID).Return(started, nil)

		resp, err := suite.submissionService.Start(suite.sheetID, suite.userID)
		require.NoError(t, err)
		assert.Equal(t, models.AssignmentStatusInProgress, resp.Status)
	})

	suite.T().Run("Idempotent When Already Started", func(t *testing.T) {
		suite.expectAssignmentLookup(models.AssignmentStatusInProgress)
		// no MarkStarted expectation: restarting must not touch the row
		suite.mockTeamSheetRepo.EXPECT().GetByID(suite.assignmentID).
			Return(suite.assignment(models.AssignmentStatusInProgress), nil)

		resp, err := suite.submissionService.Start(suite.sheetID, suite.userID)
		require.NoError(t, err)
		assert.Equal(t, models.AssignmentStatusInProgress, resp.Status)
	})

	suite.T().Run("Already Completed", func(t *testing.T) {
		suite.expectAssignmentLookup(models.AssignmentStatusCompleted)

		_, err := suite.submissionService.Start(suite.sheetID, suite.userID)
		assert.ErrorIs(t, err, &apperrors.AssignmentCompletedError{})
	})

	suite.T().Run("User Without Team", func(t *testing.T) {
		user := suite.teamUser()
		user.TeamID = nil
		suite.mockUserRepo.EXPECT().GetByID(suite.userID).Return(user, nil)

		_, err := suite.submissionService.Start(suite.sheetID, suite.userID)
		assert.ErrorIs(t, err, apperrors.ErrUserNotAssignedToTeam)
	})

	suite.T().Run("No Assignment", func(t *testing.T) {
		suite.mockUserRepo.EXPECT().GetByID(suite.userID).Return(suite.teamUser(), nil)
		suite.mockTeamSheetRepo.EXPECT().GetBySheetAndTeam(suite.sheetID, suite.teamID).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.submissionService.Start(suite.sheetID, suite.userID)
		assert.ErrorIs(t, err, apperrors.ErrAssignmentNotFound)
	})
}

// TestSubmit tests the failure modes that must leave the assignment open
func (suite *SubmissionServiceTestSuite) TestSubmit() {
	suite.T().Run("Already Completed", func(t *testing.T) {
		suite.expectAssignmentLookup(models.AssignmentStatusCompleted)

		_, err := suite.submissionService.Submit(suite.sheetID, suite.userID, nil)
		assert.ErrorIs(t, err, &apperrors.AssignmentCompletedError{})
	})

	suite.T().Run("Sheet Has No Entries", func(t *testing.T) {
		suite.expectAssignmentLookup(models.AssignmentStatusInProgress)
		suite.mockSheetRepo.EXPECT().GetEntriesBySheetID(suite.sheetID).
			Return([]models.SourceEntry{}, nil)

		_, err := suite.submissionService.Submit(suite.sheetID, suite.userID, nil)
		assert.ErrorIs(t, err, apperrors.ErrSheetHasNoEntries)
	})

	suite.T().Run("Entry Without Values Or Draft", func(t *testing.T) {
		suite.expectAssignmentLookup(models.AssignmentStatusInProgress)
		uncovered := suite.entry()
		suite.mockSheetRepo.EXPECT().GetEntriesBySheetID(suite.sheetID).
			Return([]models.SourceEntry{uncovered}, nil)
		suite.mockResponseRepo.EXPECT().GetByAssignment(suite.assignmentID).
			Return([]models.SheetResponse{}, nil)

		_, err := suite.submissionService.Submit(suite.sheetID, suite.userID,
			map[uuid.UUID]models.ResponseFields{})
		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("Invalid Entry Leaves Assignment Open", func(t *testing.T) {
		suite.expectAssignmentLookup(models.AssignmentStatusInProgress)
		good := suite.entry()
		bad := suite.entry()
		suite.mockSheetRepo.EXPECT().GetEntriesBySheetID(suite.sheetID).
			Return([]models.SourceEntry{good, bad}, nil)
		suite.mockResponseRepo.EXPECT().GetByAssignment(suite.assignmentID).
			Return([]models.SheetResponse{}, nil)

		// the valid entry still lands as a draft; the cascade has filled in
		// the downstream fields before the row reaches storage
		suite.mockResponseRepo.EXPECT().
			Upsert(gomock.Nil(), gomock.Any()).
			DoAndReturn(func(_ *gorm.DB, row *models.SheetResponse) error {
				assert.Equal(t, good.ID, row.OriginalEntryID)
				assert.Equal(t, models.AnswerNotApplicable, row.CurrentStatus)
				return nil
			})
		// no MarkCompleted expectation: the status flip must not happen

		_, err := suite.submissionService.Submit(suite.sheetID, suite.userID,
			map[uuid.UUID]models.ResponseFields{
				good.ID: {DeployedInKE: models.AnswerNo},
				// deployed but no current status: fails completion validation
				bad.ID: {DeployedInKE: models.AnswerYes},
			})

		var partialErr *apperrors.PartialSubmissionError
		require.ErrorAs(t, err, &partialErr)
		assert.Equal(t, []uuid.UUID{bad.ID}, partialErr.FailedEntryIDs)
	})

	suite.T().Run("Upsert Failure Keeps Prior Completion Marks", func(t *testing.T) {
		suite.expectAssignmentLookup(models.AssignmentStatusInProgress)
		entry := suite.entry()
		suite.mockSheetRepo.EXPECT().GetEntriesBySheetID(suite.sheetID).
			Return([]models.SourceEntry{entry}, nil)

		submittedAt := time.Now().Add(-time.Hour)
		submittedBy := uuid.New()
		draft := models.SheetResponse{
			TeamSheetID:     suite.assignmentID,
			OriginalEntryID: entry.ID,
			IsCompleted:     true,
			SubmittedBy:     &submittedBy,
			SubmittedAt:     &submittedAt,
			ResponseFields:  models.ResponseFields{DeployedInKE: models.AnswerNo},
		}
		suite.mockResponseRepo.EXPECT().GetByAssignment(suite.assignmentID).
			Return([]models.SheetResponse{draft}, nil)

		// entries absent from the request fall back to their saved draft,
		// and the earlier completion stamp rides along
		suite.mockResponseRepo.EXPECT().
			Upsert(gomock.Nil(), gomock.Any()).
			DoAndReturn(func(_ *gorm.DB, row *models.SheetResponse) error {
				assert.Equal(t, models.AnswerNo, row.DeployedInKE)
				assert.True(t, row.IsCompleted)
				require.NotNil(t, row.SubmittedBy)
				assert.Equal(t, submittedBy, *row.SubmittedBy)
				return errors.New("connection reset")
			})

		_, err := suite.submissionService.Submit(suite.sheetID, suite.userID,
			map[uuid.UUID]models.ResponseFields{})

		var partialErr *apperrors.PartialSubmissionError
		require.ErrorAs(t, err, &partialErr)
		assert.Equal(t, []uuid.UUID{entry.ID}, partialErr.FailedEntryIDs)
	})
}

// TestReopen tests the admin completed -> in_progress transition
func (suite *SubmissionServiceTestSuite) TestReopen() {
	adminID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockTeamSheetRepo.EXPECT().GetBySheetAndTeam(suite.sheetID, suite.teamID).
			Return(suite.assignment(models.AssignmentStatusCompleted), nil)
		suite.mockTeamSheetRepo.EXPECT().
			Reopen(suite.assignmentID, adminID, "entry 7 needs a corrected date", gomock.Any()).
			Return(nil)
		reopened := suite.assignment(models.AssignmentStatusInProgress)
		reopened.ReopenReason = "entry 7 needs a corrected date"
		suite.mockTeamSheetRepo.EXPECT().GetByID(suite.assignmentID).Return(reopened, nil)

		resp, err := suite.submissionService.Reopen(suite.sheetID, suite.teamID, adminID,
			"entry 7 needs a corrected date")
		require.NoError(t, err)
		assert.Equal(t, models.AssignmentStatusInProgress, resp.Status)
		assert.Equal(t, "entry 7 needs a corrected date", resp.ReopenReason)
	})

	suite.T().Run("Empty Reason", func(t *testing.T) {
		_, err := suite.submissionService.Reopen(suite.sheetID, suite.teamID, adminID, "")
		assert.ErrorIs(t, err, apperrors.ErrReopenReasonRequired)
	})

	suite.T().Run("Not Completed", func(t *testing.T) {
		suite.mockTeamSheetRepo.EXPECT().GetBySheetAndTeam(suite.sheetID, suite.teamID).
			Return(suite.assignment(models.AssignmentStatusInProgress), nil)

		_, err := suite.submissionService.Reopen(suite.sheetID, suite.teamID, adminID, "reason")
		assert.ErrorIs(t, err, apperrors.ErrAssignmentNotCompleted)
	})

	suite.T().Run("Assignment Not Found", func(t *testing.T) {
		suite.mockTeamSheetRepo.EXPECT().GetBySheetAndTeam(suite.sheetID, suite.teamID).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.submissionService.Reopen(suite.sheetID, suite.teamID, adminID, "reason")
		assert.ErrorIs(t, err, apperrors.ErrAssignmentNotFound)
	})
}

// TestGetTeamAssignments tests the per-team assignment listing
func (suite *SubmissionServiceTestSuite) TestGetTeamAssignments() {
	suite.mockTeamSheetRepo.EXPECT().GetByTeamID(suite.teamID).
		Return([]models.TeamSheet{
			*suite.assignment(models.AssignmentStatusCompleted),
			*suite.assignment(models.AssignmentStatusAssigned),
		}, nil)

	assignments, err := suite.submissionService.GetTeamAssignments(suite.teamID)
	suite.Require().NoError(err)
	suite.Len(assignments, 2)
	suite.Equal(models.AssignmentStatusCompleted, assignments[0].Status)
	suite.Equal(models.AssignmentStatusAssigned, assignments[1].Status)
}

// TestSubmissionServiceTestSuite runs the test suite
func TestSubmissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SubmissionServiceTestSuite))
}
