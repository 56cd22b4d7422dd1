package handlers

import (
	"errors"
	"net/http"

	apperrors "advisory-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to HTTP status codes. Lock conflicts and
// completed assignments are 409 so clients can distinguish them from plain
// validation failures; failed submissions return the entry ids that need
// another attempt.
func respondError(c *gin.Context, err error) {
	var lockedErr *apperrors.EntryLockedError
	if errors.As(err, &lockedErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":          err.Error(),
			"entry_id":       lockedErr.EntryID,
			"locked_by":      lockedErr.LockedBy,
			"locked_by_name": lockedErr.LockedByName,
		})
		return
	}

	var partialErr *apperrors.PartialSubmissionError
	if errors.As(err, &partialErr) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":             err.Error(),
			"failed_entry_ids":  partialErr.FailedEntryIDs,
			"assignment_status": "in_progress",
		})
		return
	}

	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsNotLockHolder(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAssignmentCompleted(err),
		errors.Is(err, apperrors.ErrSheetAlreadyAssigned),
		errors.Is(err, apperrors.ErrAssignmentNotCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrReopenReasonRequired),
		errors.Is(err, apperrors.ErrSheetHasNoEntries),
		errors.Is(err, apperrors.ErrEntryNotInAssignedSheet):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
