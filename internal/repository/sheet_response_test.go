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

// SheetResponseRepositoryTestSuite tests the SheetResponseRepository
type SheetResponseRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SheetResponseRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *SheetResponseRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewSheetResponseRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *SheetResponseRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SheetResponseRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *SheetResponseRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedAssignedSheet persists the full chain needed for response rows
func (suite *SheetResponseRepositoryTestSuite) seedAssignedSheet(entryCount int) (*models.User, []*models.SourceEntry, *models.TeamSheet) {
	team, user, sheet, entries, assignment := suite.factories.CreateAssignedSheet(entryCount)

	db := suite.baseTestSuite.DB
	suite.Require().NoError(db.Create(team).Error)
	suite.Require().NoError(db.Create(user).Error)
	suite.Require().NoError(db.Create(sheet).Error)
	for _, entry := range entries {
		suite.Require().NoError(db.Create(entry).Error)
	}
	suite.Require().NoError(db.Create(assignment).Error)

	return user, entries, assignment
}

// TestUpsertInsertsThenReplaces tests that saving twice keeps one row
func (suite *SheetResponseRepositoryTestSuite) TestUpsertInsertsThenReplaces() {
	_, entries, assignment := suite.seedAssignedSheet(1)

	first := suite.factories.Response.For(assignment.ID, entries[0].ID)
	first.CurrentStatus = "Investigating"
	suite.NoError(suite.repo.Upsert(nil, first))

	second := suite.factories.Response.For(assignment.ID, entries[0].ID)
	second.CurrentStatus = "Patch scheduled"
	second.Comments = "vendor fix confirmed"
	suite.NoError(suite.repo.Upsert(nil, second))

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.SheetResponse{}).
		Where("team_sheet_id = ?", assignment.ID).Count(&count).Error)
	suite.Equal(int64(1), count)

	stored, err := suite.repo.GetByAssignmentAndEntry(assignment.ID, entries[0].ID)
	suite.NoError(err)
	suite.Equal("Patch scheduled", stored.CurrentStatus)
	suite.Equal("vendor fix confirmed", stored.Comments)
}

// TestPreMaterializeKeepsExistingDraft tests that blank rows never overwrite
// drafts
func (suite *SheetResponseRepositoryTestSuite) TestPreMaterializeKeepsExistingDraft() {
	_, entries, assignment := suite.seedAssignedSheet(1)

	draft := suite.factories.Response.For(assignment.ID, entries[0].ID)
	draft.CurrentStatus = "Work in progress"
	suite.NoError(suite.repo.Upsert(nil, draft))

	blank := &models.SheetResponse{
		TeamSheetID:     assignment.ID,
		OriginalEntryID: entries[0].ID,
	}
	suite.NoError(suite.repo.PreMaterialize(nil, blank))

	stored, err := suite.repo.GetByAssignmentAndEntry(assignment.ID, entries[0].ID)
	suite.NoError(err)
	suite.Equal("Work in progress", stored.CurrentStatus)
}

// TestPreMaterializeCreatesBlankRow tests first-time materialization
func (suite *SheetResponseRepositoryTestSuite) TestPreMaterializeCreatesBlankRow() {
	_, entries, assignment := suite.seedAssignedSheet(1)

	blank := &models.SheetResponse{
		TeamSheetID:     assignment.ID,
		OriginalEntryID: entries[0].ID,
	}
	suite.NoError(suite.repo.PreMaterialize(nil, blank))

	stored, err := suite.repo.GetByAssignmentAndEntry(assignment.ID, entries[0].ID)
	suite.NoError(err)
	suite.False(stored.IsCompleted)
	suite.Empty(stored.CurrentStatus)
}

// TestUpdateStatusAndComments tests the narrow post-completion write path
func (suite *SheetResponseRepositoryTestSuite) TestUpdateStatusAndComments() {
	user, entries, assignment := suite.seedAssignedSheet(1)

	response := suite.factories.Response.Completed(assignment.ID, entries[0].ID, user.ID)
	response.DeployedInKE = models.AnswerYes
	suite.NoError(suite.repo.Upsert(nil, response))

	suite.NoError(suite.repo.UpdateStatusAndComments(response.ID, "Patched", "rolled out on all sites", time.Now()))

	stored, err := suite.repo.GetByID(response.ID)
	suite.NoError(err)
	suite.Equal("Patched", stored.CurrentStatus)
	suite.Equal("rolled out on all sites", stored.Comments)
	// everything else stays untouched
	suite.True(stored.IsCompleted)
	suite.Equal(models.AnswerYes, stored.DeployedInKE)
}

// TestUpdateStatusAndCommentsMissingRow tests the zero-rows-affected path
func (suite *SheetResponseRepositoryTestSuite) TestUpdateStatusAndCommentsMissingRow() {
	suite.seedAssignedSheet(1)

	err := suite.repo.UpdateStatusAndComments(suite.factories.Response.Create().ID, "Patched", "", time.Now())
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

// TestMarkAllCompleted tests the bulk completion flip during submission
func (suite *SheetResponseRepositoryTestSuite) TestMarkAllCompleted() {
	user, entries, assignment := suite.seedAssignedSheet(3)

	earlier := time.Now().Add(-time.Hour).Truncate(time.Second)
	done := suite.factories.Response.Completed(assignment.ID, entries[0].ID, user.ID)
	done.SubmittedAt = &earlier
	suite.NoError(suite.repo.Upsert(nil, done))
	suite.NoError(suite.repo.Upsert(nil, suite.factories.Response.For(assignment.ID, entries[1].ID)))
	suite.NoError(suite.repo.Upsert(nil, suite.factories.Response.For(assignment.ID, entries[2].ID)))

	now := time.Now()
	suite.NoError(suite.repo.MarkAllCompleted(nil, assignment.ID, user.ID, now))

	total, completed, err := suite.repo.CountByAssignment(assignment.ID)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Equal(int64(3), completed)

	// the entry completed earlier keeps its original stamp
	stored, err := suite.repo.GetByAssignmentAndEntry(assignment.ID, entries[0].ID)
	suite.NoError(err)
	suite.WithinDuration(earlier, *stored.SubmittedAt, time.Second)
}

// TestCountByAssignment tests total and completed counters
func (suite *SheetResponseRepositoryTestSuite) TestCountByAssignment() {
	user, entries, assignment := suite.seedAssignedSheet(3)

	suite.NoError(suite.repo.Upsert(nil, suite.factories.Response.Completed(assignment.ID, entries[0].ID, user.ID)))
	suite.NoError(suite.repo.Upsert(nil, suite.factories.Response.For(assignment.ID, entries[1].ID)))

	total, completed, err := suite.repo.CountByAssignment(assignment.ID)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Equal(int64(1), completed)
}

// TestSheetResponseRepositoryTestSuite runs the test suite
func TestSheetResponseRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SheetResponseRepositoryTestSuite))
}
