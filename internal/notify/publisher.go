package notify

import (
	"github.com/sirupsen/logrus"
)

// Publisher receives domain events from the core services. The core never
// holds subscriber lists itself; dashboards, SSE fan-out, or message brokers
// plug in behind this interface. Publishing is fire-and-forget: a failing
// subscriber must not fail the operation that emitted the event.
type Publisher interface {
	EntryLocked(e EntryLockedEvent)
	EntryUnlocked(e EntryUnlockedEvent)
	ResponseSaved(e ResponseSavedEvent)
	EntryCompleted(e EntryCompletedEvent)
	AssignmentStarted(e AssignmentStartedEvent)
	AssignmentCompleted(e AssignmentCompletedEvent)
	AssignmentReopened(e AssignmentReopenedEvent)
}

// NoopPublisher discards all events. Used in tests and when no broadcast
// collaborator is configured.
type NoopPublisher struct{}

func (NoopPublisher) EntryLocked(EntryLockedEvent)                 {}
func (NoopPublisher) EntryUnlocked(EntryUnlockedEvent)             {}
func (NoopPublisher) ResponseSaved(ResponseSavedEvent)             {}
func (NoopPublisher) EntryCompleted(EntryCompletedEvent)           {}
func (NoopPublisher) AssignmentStarted(AssignmentStartedEvent)     {}
func (NoopPublisher) AssignmentCompleted(AssignmentCompletedEvent) {}
func (NoopPublisher) AssignmentReopened(AssignmentReopenedEvent)   {}

// LogPublisher writes every event as a structured log line. It doubles as
// the audit feed until a real broadcast collaborator is wired in.
type LogPublisher struct {
	log *logrus.Entry
}

// NewLogPublisher creates a publisher that logs events with the given entry
func NewLogPublisher(log *logrus.Entry) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) EntryLocked(e EntryLockedEvent) {
	p.log.WithFields(logrus.Fields{
		"entry_id":   e.EntryID,
		"team_id":    e.TeamID,
		"locked_by":  e.LockedBy,
		"expires_at": e.ExpiresAt,
	}).Info("entry_locked")
}

func (p *LogPublisher) EntryUnlocked(e EntryUnlockedEvent) {
	p.log.WithFields(logrus.Fields{
		"entry_id":    e.EntryID,
		"released_by": e.ReleasedBy,
		"forced":      e.Forced,
	}).Info("entry_unlocked")
}

func (p *LogPublisher) ResponseSaved(e ResponseSavedEvent) {
	p.log.WithFields(logrus.Fields{
		"response_id":   e.ResponseID,
		"entry_id":      e.EntryID,
		"team_sheet_id": e.TeamSheetID,
		"saved_by":      e.SavedBy,
	}).Info("response_saved")
}

func (p *LogPublisher) EntryCompleted(e EntryCompletedEvent) {
	p.log.WithFields(logrus.Fields{
		"response_id":   e.ResponseID,
		"entry_id":      e.EntryID,
		"team_sheet_id": e.TeamSheetID,
		"completed_by":  e.CompletedBy,
	}).Info("entry_completed")
}

func (p *LogPublisher) AssignmentStarted(e AssignmentStartedEvent) {
	p.log.WithFields(logrus.Fields{
		"team_sheet_id": e.TeamSheetID,
		"sheet_id":      e.SheetID,
		"team_id":       e.TeamID,
		"started_by":    e.StartedBy,
	}).Info("assignment_started")
}

func (p *LogPublisher) AssignmentCompleted(e AssignmentCompletedEvent) {
	p.log.WithFields(logrus.Fields{
		"team_sheet_id": e.TeamSheetID,
		"sheet_id":      e.SheetID,
		"team_id":       e.TeamID,
		"completed_by":  e.CompletedBy,
		"entries":       e.EntriesCount,
	}).Info("assignment_completed")
}

func (p *LogPublisher) AssignmentReopened(e AssignmentReopenedEvent) {
	p.log.WithFields(logrus.Fields{
		"team_sheet_id": e.TeamSheetID,
		"sheet_id":      e.SheetID,
		"team_id":       e.TeamID,
		"reopened_by":   e.ReopenedBy,
		"reason":        e.Reason,
	}).Info("assignment_reopened")
}
