package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"advisory-portal-backend/internal/api/handlers"
	"advisory-portal-backend/internal/database/models"
	apperrors "advisory-portal-backend/internal/errors"
	"advisory-portal-backend/internal/mocks"
	"advisory-portal-backend/internal/service"
	"advisory-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SheetHandlerTestSuite defines the test suite for SheetHandler
type SheetHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockSheets     *mocks.MockSheetServiceInterface
	mockSubmission *mocks.MockSubmissionServiceInterface
	handler        *handlers.SheetHandler
	httpSuite      *testutils.HTTPTestSuite

	userID uuid.UUID
	teamID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *SheetHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSheets = mocks.NewMockSheetServiceInterface(suite.ctrl)
	suite.mockSubmission = mocks.NewMockSubmissionServiceInterface(suite.ctrl)

	suite.handler = handlers.NewSheetHandler(suite.mockSheets, suite.mockSubmission)
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.userID = uuid.New()
	suite.teamID = uuid.New()

	suite.httpSuite.UseIdentity(func() testutils.TestIdentity {
		teamID := suite.teamID
		return testutils.TestIdentity{
			UserID:   suite.userID,
			Username: "tester",
			TeamID:   &teamID,
		}
	})

	v1 := suite.httpSuite.Router.Group("/api/v1")
	sheets := v1.Group("/sheets")
	{
		sheets.GET("", suite.handler.ListSheets)
		sheets.POST("", suite.handler.CreateSheet)
		sheets.GET("/:sheetId", suite.handler.GetSheet)
		sheets.POST("/:sheetId/start", suite.handler.StartSheet)
		sheets.POST("/:sheetId/submit", suite.handler.SubmitSheet)
		sheets.POST("/:sheetId/distribute", suite.handler.DistributeSheet)
		sheets.GET("/:sheetId/assignments", suite.handler.GetSheetAssignments)
	}
	v1.GET("/assignments", suite.handler.GetMyAssignments)
}

// TearDownTest cleans up after each test
func (suite *SheetHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateSheet tests the CreateSheet handler
func (suite *SheetHandlerTestSuite) TestCreateSheet() {
	suite.T().Run("Success", func(t *testing.T) {
		sheetID := uuid.New()

		requestBody := map[string]interface{}{
			"title": "June 2025 Advisories",
			"month": 6,
			"year":  2025,
			"entries": []map[string]interface{}{
				{
					"vendor_name":  "Acme",
					"product_name": "Widget Server",
					"cve":          "CVE-2025-0001",
					"risk_level":   "High",
				},
			},
		}

		expectedResponse := &service.SheetDetailResponse{
			SheetResponse: service.SheetResponse{
				ID:         sheetID,
				Title:      "June 2025 Advisories",
				Month:      6,
				Year:       2025,
				EntryCount: 1,
			},
		}

		suite.mockSheets.EXPECT().
			Create(suite.userID, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/sheets", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.SheetDetailResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, sheetID, response.ID)
		assert.Equal(t, 1, response.EntryCount)
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/v1/sheets", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")

		recorder := httptest.NewRecorder()
		suite.httpSuite.Router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Empty Entries Rejected", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"title":   "Empty sheet",
			"month":   6,
			"year":    2025,
			"entries": []map[string]interface{}{},
		}

		suite.mockSheets.EXPECT().
			Create(suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrSheetHasNoEntries).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/sheets", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestGetSheet tests the GetSheet handler
func (suite *SheetHandlerTestSuite) TestGetSheet() {
	suite.T().Run("Success", func(t *testing.T) {
		sheetID := uuid.New()

		expectedResponse := &service.SheetDetailResponse{
			SheetResponse: service.SheetResponse{
				ID:    sheetID,
				Title: "June 2025 Advisories",
			},
		}

		suite.mockSheets.EXPECT().
			GetByID(sheetID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/sheets/%s", sheetID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		sheetID := uuid.New()

		suite.mockSheets.EXPECT().
			GetByID(sheetID).
			Return(nil, apperrors.ErrSheetNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/sheets/%s", sheetID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "sheet not found")
	})
}

// TestListSheets tests the ListSheets handler
func (suite *SheetHandlerTestSuite) TestListSheets() {
	suite.T().Run("Defaults", func(t *testing.T) {
		suite.mockSheets.EXPECT().
			GetAll(1, 20).
			Return(&service.SheetListResponse{}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/sheets", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Out Of Range Page Size Falls Back", func(t *testing.T) {
		suite.mockSheets.EXPECT().
			GetAll(3, 20).
			Return(&service.SheetListResponse{}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/sheets?page=3&page_size=999", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestDistributeSheet tests the DistributeSheet handler
func (suite *SheetHandlerTestSuite) TestDistributeSheet() {
	suite.T().Run("Success", func(t *testing.T) {
		sheetID := uuid.New()
		teamA := uuid.New()
		teamB := uuid.New()

		requestBody := map[string]interface{}{
			"team_ids": []string{teamA.String(), teamB.String()},
		}

		expectedResult := &service.DistributeResult{
			SheetID:     sheetID,
			Assigned:    []uuid.UUID{teamA},
			AlreadyHeld: []uuid.UUID{teamB},
		}

		suite.mockSheets.EXPECT().
			Distribute(sheetID, suite.userID, gomock.Any()).
			Return(expectedResult, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/sheets/%s/distribute", sheetID), requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.DistributeResult
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, []uuid.UUID{teamA}, response.Assigned)
		assert.Equal(t, []uuid.UUID{teamB}, response.AlreadyHeld)
	})

	suite.T().Run("Team Not Found", func(t *testing.T) {
		sheetID := uuid.New()

		requestBody := map[string]interface{}{
			"team_ids": []string{uuid.New().String()},
		}

		suite.mockSheets.EXPECT().
			Distribute(sheetID, suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/sheets/%s/distribute", sheetID), requestBody)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestStartSheet tests the StartSheet handler
func (suite *SheetHandlerTestSuite) TestStartSheet() {
	suite.T().Run("Success", func(t *testing.T) {
		sheetID := uuid.New()
		now := time.Now()

		expectedResponse := &service.AssignmentResponse{
			ID:        uuid.New(),
			SheetID:   sheetID,
			TeamID:    suite.teamID,
			Status:    models.AssignmentStatusInProgress,
			StartedAt: &now,
		}

		suite.mockSubmission.EXPECT().
			Start(sheetID, suite.userID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/sheets/%s/start", sheetID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.AssignmentResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, models.AssignmentStatusInProgress, response.Status)
	})

	suite.T().Run("Already Completed", func(t *testing.T) {
		sheetID := uuid.New()

		suite.mockSubmission.EXPECT().
			Start(sheetID, suite.userID).
			Return(nil, &apperrors.AssignmentCompletedError{TeamSheetID: uuid.New()}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/sheets/%s/start", sheetID), nil)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

// TestSubmitSheet tests the SubmitSheet handler
func (suite *SheetHandlerTestSuite) TestSubmitSheet() {
	suite.T().Run("Success", func(t *testing.T) {
		sheetID := uuid.New()
		entryID := uuid.New()

		requestBody := map[string]interface{}{
			"responses": map[string]interface{}{
				entryID.String(): map[string]interface{}{
					"deployed_in_ke": "Y",
					"current_status": "Patched",
				},
			},
		}

		expectedResult := &service.SubmissionResult{
			TeamSheetID:      uuid.New(),
			SheetID:          sheetID,
			TeamID:           suite.teamID,
			EntriesCompleted: 1,
			CompletedAt:      time.Now(),
		}

		suite.mockSubmission.EXPECT().
			Submit(sheetID, suite.userID, gomock.Any()).
			Return(expectedResult, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/sheets/%s/submit", sheetID), requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.SubmissionResult
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 1, response.EntriesCompleted)
	})

	suite.T().Run("Partial Failure Keeps Assignment Open", func(t *testing.T) {
		sheetID := uuid.New()
		failedA := uuid.New()
		failedB := uuid.New()

		requestBody := map[string]interface{}{
			"responses": map[string]interface{}{},
		}

		suite.mockSubmission.EXPECT().
			Submit(sheetID, suite.userID, gomock.Any()).
			Return(nil, &apperrors.PartialSubmissionError{FailedEntryIDs: []uuid.UUID{failedA, failedB}}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/sheets/%s/submit", sheetID), requestBody)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)

		var response map[string]any
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "in_progress", response["assignment_status"])

		failed, ok := response["failed_entry_ids"].([]any)
		assert.True(t, ok)
		assert.Len(t, failed, 2)
		assert.Contains(t, failed, failedA.String())
		assert.Contains(t, failed, failedB.String())
	})

	suite.T().Run("Already Completed", func(t *testing.T) {
		sheetID := uuid.New()

		requestBody := map[string]interface{}{
			"responses": map[string]interface{}{},
		}

		suite.mockSubmission.EXPECT().
			Submit(sheetID, suite.userID, gomock.Any()).
			Return(nil, &apperrors.AssignmentCompletedError{TeamSheetID: uuid.New()}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/sheets/%s/submit", sheetID), requestBody)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

// TestGetMyAssignments tests the GetMyAssignments handler
func (suite *SheetHandlerTestSuite) TestGetMyAssignments() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := []service.AssignmentResponse{
			{ID: uuid.New(), TeamID: suite.teamID, Status: models.AssignmentStatusAssigned},
		}

		suite.mockSubmission.EXPECT().
			GetTeamAssignments(suite.teamID).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/assignments", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []service.AssignmentResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 1)
	})
}

// TestSheetHandlerTestSuite runs the test suite
func TestSheetHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SheetHandlerTestSuite))
}
