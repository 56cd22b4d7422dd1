package service

import (
	"advisory-portal-backend/internal/database/models"
	apperrors "advisory-portal-backend/internal/errors"
)

// ApplyCascade enforces the field dependency rules on a response payload so
// the stored state is never self-contradictory. It is a pure function of the
// current field values and is applied on every save, regardless of which
// field triggered the save, so the result does not depend on save order.
// Applying it twice yields the same result as applying it once.
//
// Precedence order:
//  1. deployed_in_ke = N forces the yes/no fields to N/A and clears every
//     dependent detail field.
//  2. vendor_contacted != Y clears the vendor contact date.
//  3. compensatory_controls_provided != Y clears the control details and
//     estimated time.
//  4. patching in {N, N/A, No} clears both patching dates.
func ApplyCascade(fields models.ResponseFields) models.ResponseFields {
	if fields.DeployedInKE == models.AnswerNo {
		fields.Site = models.AnswerNotApplicable
		fields.CurrentStatus = models.AnswerNotApplicable
		fields.VendorContacted = models.AnswerNotApplicable
		fields.CompensatoryControlsProvided = models.AnswerNotApplicable
		fields.Patching = models.AnswerNotApplicable

		fields.VendorContactDate = nil
		fields.PatchingEstReleaseDate = nil
		fields.ImplementationDate = nil
		fields.CompensatoryControlsDetails = ""
		fields.EstimatedTime = ""
		return fields
	}

	if fields.VendorContacted != models.AnswerYes {
		fields.VendorContactDate = nil
	}

	if fields.CompensatoryControlsProvided != models.AnswerYes {
		fields.CompensatoryControlsDetails = ""
		fields.EstimatedTime = ""
	}

	if fields.Patching == models.AnswerNo || fields.Patching == models.AnswerNotApplicable || fields.Patching == "No" {
		fields.PatchingEstReleaseDate = nil
		fields.ImplementationDate = nil
	}

	return fields
}

// ValidateForCompletion checks the minimum shape required to mark an entry
// completed. A deployed entry must at least carry a current status.
func ValidateForCompletion(fields models.ResponseFields) error {
	if fields.DeployedInKE == models.AnswerYes && fields.CurrentStatus == "" {
		return apperrors.NewValidationError("current_status", "required when deployed_in_ke is Y")
	}
	if fields.DeployedInKE == "" {
		return apperrors.NewValidationError("deployed_in_ke", "must be answered before completing the entry")
	}
	return nil
}
