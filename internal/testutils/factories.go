package testutils

import (
	"time"

	"advisory-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "team-" + id.String()[:8],
		Description: "A test team",
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The password is "password123".
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     "user-" + id.String()[:8],
		Email:        "user-" + id.String()[:8] + "@test.com",
		PasswordHash: string(hash),
		FullName:     "Test User",
		IsAdmin:      false,
		IsActive:     true,
	}
}

// WithTeam sets the team ID for the user
func (f *UserFactory) WithTeam(teamID uuid.UUID) *models.User {
	user := f.Create()
	user.TeamID = &teamID
	return user
}

// WithAdmin creates an admin user
func (f *UserFactory) WithAdmin() *models.User {
	user := f.Create()
	user.IsAdmin = true
	return user
}

// WithUsername sets a custom username for the user
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	user.Email = username + "@test.com"
	return user
}

// SheetFactory provides methods to create test AdvisorySheet data
type SheetFactory struct{}

// NewSheetFactory creates a new SheetFactory
func NewSheetFactory() *SheetFactory {
	return &SheetFactory{}
}

// Create creates a test AdvisorySheet with default values
func (f *SheetFactory) Create() *models.AdvisorySheet {
	id := uuid.New()
	return &models.AdvisorySheet{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:      "Advisories " + id.String()[:8],
		Month:      6,
		Year:       2025,
		UploadedBy: uuid.New(),
	}
}

// WithUploader sets the uploading admin for the sheet
func (f *SheetFactory) WithUploader(adminID uuid.UUID) *models.AdvisorySheet {
	sheet := f.Create()
	sheet.UploadedBy = adminID
	return sheet
}

// EntryFactory provides methods to create test SourceEntry data
type EntryFactory struct{}

// NewEntryFactory creates a new EntryFactory
func NewEntryFactory() *EntryFactory {
	return &EntryFactory{}
}

// Create creates a test SourceEntry with default values
func (f *EntryFactory) Create() *models.SourceEntry {
	id := uuid.New()
	return &models.SourceEntry{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SheetID:     uuid.New(),
		VendorName:  "Acme",
		ProductName: "Widget Server",
		CVE:         "CVE-2025-0001",
		RiskLevel:   models.RiskLevelHigh,
		SourceURL:   "https://advisories.test.com/CVE-2025-0001",
	}
}

// WithSheet sets the sheet ID for the entry
func (f *EntryFactory) WithSheet(sheetID uuid.UUID) *models.SourceEntry {
	entry := f.Create()
	entry.SheetID = sheetID
	return entry
}

// WithRiskLevel sets a custom risk level for the entry
func (f *EntryFactory) WithRiskLevel(level models.RiskLevel) *models.SourceEntry {
	entry := f.Create()
	entry.RiskLevel = level
	return entry
}

// TeamSheetFactory provides methods to create test TeamSheet data
type TeamSheetFactory struct{}

// NewTeamSheetFactory creates a new TeamSheetFactory
func NewTeamSheetFactory() *TeamSheetFactory {
	return &TeamSheetFactory{}
}

// Create creates a test TeamSheet with default values
func (f *TeamSheetFactory) Create() *models.TeamSheet {
	return &models.TeamSheet{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SheetID:    uuid.New(),
		TeamID:     uuid.New(),
		Status:     models.AssignmentStatusAssigned,
		AssignedAt: time.Now(),
		AssignedBy: uuid.New(),
	}
}

// For sets the sheet and team for the assignment
func (f *TeamSheetFactory) For(sheetID, teamID uuid.UUID) *models.TeamSheet {
	assignment := f.Create()
	assignment.SheetID = sheetID
	assignment.TeamID = teamID
	return assignment
}

// WithStatus sets a custom status for the assignment
func (f *TeamSheetFactory) WithStatus(status models.AssignmentStatus) *models.TeamSheet {
	assignment := f.Create()
	assignment.Status = status
	if status != models.AssignmentStatusAssigned {
		now := time.Now()
		userID := uuid.New()
		assignment.StartedAt = &now
		assignment.StartedBy = &userID
	}
	return assignment
}

// ResponseFactory provides methods to create test SheetResponse data
type ResponseFactory struct{}

// NewResponseFactory creates a new ResponseFactory
func NewResponseFactory() *ResponseFactory {
	return &ResponseFactory{}
}

// Create creates a draft SheetResponse with default values
func (f *ResponseFactory) Create() *models.SheetResponse {
	return &models.SheetResponse{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamSheetID:     uuid.New(),
		OriginalEntryID: uuid.New(),
		ResponseFields: models.ResponseFields{
			DeployedInKE:  models.AnswerYes,
			CurrentStatus: "Patch scheduled",
			Site:          "main",
		},
	}
}

// For sets the assignment and entry for the response
func (f *ResponseFactory) For(teamSheetID, entryID uuid.UUID) *models.SheetResponse {
	response := f.Create()
	response.TeamSheetID = teamSheetID
	response.OriginalEntryID = entryID
	return response
}

// Completed marks the response as completed by the given user
func (f *ResponseFactory) Completed(teamSheetID, entryID, userID uuid.UUID) *models.SheetResponse {
	response := f.For(teamSheetID, entryID)
	now := time.Now()
	response.IsCompleted = true
	response.SubmittedBy = &userID
	response.SubmittedAt = &now
	return response
}

// LockFactory provides methods to create test EntryLock data
type LockFactory struct{}

// NewLockFactory creates a new LockFactory
func NewLockFactory() *LockFactory {
	return &LockFactory{}
}

// Create creates a test EntryLock with a 30 minute TTL
func (f *LockFactory) Create() *models.EntryLock {
	now := time.Now()
	return &models.EntryLock{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		EntryID:   uuid.New(),
		LockedBy:  uuid.New(),
		TeamID:    uuid.New(),
		LockedAt:  now,
		ExpiresAt: now.Add(30 * time.Minute),
	}
}

// For sets the entry, holder and team for the lock
func (f *LockFactory) For(entryID, userID, teamID uuid.UUID) *models.EntryLock {
	lock := f.Create()
	lock.EntryID = entryID
	lock.LockedBy = userID
	lock.TeamID = teamID
	return lock
}

// Expired creates a lock whose TTL has already elapsed
func (f *LockFactory) Expired(entryID, userID, teamID uuid.UUID) *models.EntryLock {
	lock := f.For(entryID, userID, teamID)
	lock.LockedAt = time.Now().Add(-time.Hour)
	lock.ExpiresAt = time.Now().Add(-30 * time.Minute)
	return lock
}

// FactorySet provides access to all factories
type FactorySet struct {
	Team      *TeamFactory
	User      *UserFactory
	Sheet     *SheetFactory
	Entry     *EntryFactory
	TeamSheet *TeamSheetFactory
	Response  *ResponseFactory
	Lock      *LockFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:      NewTeamFactory(),
		User:      NewUserFactory(),
		Sheet:     NewSheetFactory(),
		Entry:     NewEntryFactory(),
		TeamSheet: NewTeamSheetFactory(),
		Response:  NewResponseFactory(),
		Lock:      NewLockFactory(),
	}
}

// CreateAssignedSheet creates a team, a member user, a sheet with entries
// and an assignment linking them. Nothing is persisted; callers insert the
// returned rows in dependency order.
func (fs *FactorySet) CreateAssignedSheet(entryCount int) (*models.Team, *models.User, *models.AdvisorySheet, []*models.SourceEntry, *models.TeamSheet) {
	team := fs.Team.Create()
	user := fs.User.WithTeam(team.ID)
	sheet := fs.Sheet.Create()

	entries := make([]*models.SourceEntry, 0, entryCount)
	for i := 0; i < entryCount; i++ {
		entries = append(entries, fs.Entry.WithSheet(sheet.ID))
	}

	assignment := fs.TeamSheet.For(sheet.ID, team.ID)
	return team, user, sheet, entries, assignment
}
