//go:build integration
// +build integration

package service_test

import (
	"errors"
	"testing"
	"time"

	"advisory-portal-backend/internal/database/models"
	"advisory-portal-backend/internal/notify"
	"advisory-portal-backend/internal/repository"
	"advisory-portal-backend/internal/service"
	"advisory-portal-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AssignmentFlowTestSuite exercises the full lifecycle of one assignment
// through the real repositories: locking, drafting with the field cascade,
// per-entry completion, relocking by a teammate and the final sheet
// submission. The mocked service tests cover each step in isolation; this
// suite checks that the steps compose against real storage.
type AssignmentFlowTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet

	lockRepo      *repository.EntryLockRepository
	teamSheetRepo *repository.TeamSheetRepository
	responseRepo  *repository.SheetResponseRepository

	lockService     *service.EntryLockService
	responseService *service.TeamResponseService
	submission      *service.SubmissionService
}

// SetupSuite runs before all tests in the suite
func (suite *AssignmentFlowTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()

	db := suite.baseTestSuite.DB
	suite.lockRepo = repository.NewEntryLockRepository(db)
	suite.teamSheetRepo = repository.NewTeamSheetRepository(db)
	suite.responseRepo = repository.NewSheetResponseRepository(db)
	sheetRepo := repository.NewSheetRepository(db)
	userRepo := repository.NewUserRepository(db)
	publisher := notify.NoopPublisher{}

	suite.lockService = service.NewEntryLockService(
		suite.lockRepo, sheetRepo, suite.teamSheetRepo, suite.responseRepo,
		userRepo, publisher, 30*time.Minute)
	suite.responseService = service.NewTeamResponseService(
		suite.responseRepo, suite.teamSheetRepo, sheetRepo, suite.lockRepo,
		userRepo, publisher, validator.New())
	suite.submission = service.NewSubmissionService(
		db, suite.teamSheetRepo, suite.responseRepo, sheetRepo,
		suite.lockRepo, userRepo, publisher)
}

// TearDownSuite runs after all tests in the suite
func (suite *AssignmentFlowTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AssignmentFlowTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AssignmentFlowTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedAssignedSheet persists a sheet with two entries assigned to one team
// with two members
func (suite *AssignmentFlowTestSuite) seedAssignedSheet() (member, teammate *models.User, entries []*models.SourceEntry, assignment *models.TeamSheet) {
	team, member, sheet, seeded, teamSheet := suite.factories.CreateAssignedSheet(2)
	teammate = suite.factories.User.WithTeam(team.ID)

	db := suite.baseTestSuite.DB
	suite.Require().NoError(db.Create(team).Error)
	suite.Require().NoError(db.Create(member).Error)
	suite.Require().NoError(db.Create(teammate).Error)
	suite.Require().NoError(db.Create(sheet).Error)
	for _, entry := range seeded {
		suite.Require().NoError(db.Create(entry).Error)
	}
	suite.Require().NoError(db.Create(teamSheet).Error)

	return member, teammate, seeded, teamSheet
}

// TestAssignmentLifecycle walks one assignment from the first lock to the
// completed submission
func (suite *AssignmentFlowTestSuite) TestAssignmentLifecycle() {
	alice, bob, entries, assignment := suite.seedAssignedSheet()
	first, second := entries[0], entries[1]

	// Alice locks the first entry.
	lock, err := suite.lockService.LockEntry(first.ID, alice.ID)
	suite.Require().NoError(err)
	suite.Equal(alice.ID, lock.LockedBy)

	// Her draft says the product is not deployed, yet also claims the vendor
	// was contacted. The read-back must be the corrected record: the cascade
	// clears the contradictory fields before anything is stored.
	contactDate := time.Now()
	draft, err := suite.responseService.SaveDraftByEntry(first.ID, alice.ID, models.ResponseFields{
		DeployedInKE:      models.AnswerNo,
		VendorContacted:   models.AnswerYes,
		VendorContactDate: &contactDate,
	})
	suite.Require().NoError(err)
	suite.Equal(models.AnswerNo, draft.DeployedInKE)
	suite.Equal(models.AnswerNotApplicable, draft.VendorContacted)
	suite.Nil(draft.VendorContactDate)
	suite.False(draft.IsCompleted)

	// Completing the entry stamps it and releases her lock, so Bob can take
	// the same entry straight away.
	completed, err := suite.responseService.CompleteEntry(first.ID, alice.ID, models.ResponseFields{
		DeployedInKE: models.AnswerNo,
	})
	suite.Require().NoError(err)
	suite.True(completed.IsCompleted)
	suite.Require().NotNil(completed.SubmittedBy)
	suite.Equal(alice.ID, *completed.SubmittedBy)

	relock, err := suite.lockService.LockEntry(first.ID, bob.ID)
	suite.Require().NoError(err)
	suite.Equal(bob.ID, relock.LockedBy)

	// Alice submits the sheet with values for the second entry only; the
	// first entry falls back to its completed response.
	result, err := suite.submission.Submit(assignment.SheetID, alice.ID, map[uuid.UUID]models.ResponseFields{
		second.ID: {DeployedInKE: models.AnswerNo},
	})
	suite.Require().NoError(err)
	suite.Equal(2, result.EntriesCompleted)

	reloaded, err := suite.teamSheetRepo.GetByID(assignment.ID)
	suite.Require().NoError(err)
	suite.Equal(models.AssignmentStatusCompleted, reloaded.Status)
	suite.NotNil(reloaded.CompletedAt)

	// Submission force-releases the team's remaining locks, Bob's included.
	_, err = suite.lockRepo.GetActiveByEntry(first.ID, time.Now())
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))

	responses, err := suite.responseRepo.GetByAssignment(assignment.ID)
	suite.Require().NoError(err)
	suite.Len(responses, 2)
	for _, response := range responses {
		suite.True(response.IsCompleted)
		suite.NotNil(response.SubmittedAt)
	}
}

func TestAssignmentFlowTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentFlowTestSuite))
}
