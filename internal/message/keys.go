// Package message defines the i18n message keys used by the service and the
// typed errors that carry them to the HTTP boundary.
package message

// Message keys follow the <service>.error.<entity>.<detail> convention so
// that clients can localize responses without parsing English text.
const (
	service = "referenceData"
	errBase = service + ".error"

	// Authorization.
	KeyUnauthorized        = errBase + ".authorization"
	KeyUnauthorizedGeneric = errBase + ".authorization.generic"

	// Value parsing inside search parameters.
	KeyInvalidUUIDFormat    = errBase + ".invalid.format.uuid"
	KeyInvalidBooleanFormat = errBase + ".invalid.format.boolean"
	KeyInvalidDateFormat    = errBase + ".invalid.format.date"

	// Role and right model.
	KeyRoleMustHaveARight          = errBase + ".role.mustHaveARight"
	KeyRoleRightsAreDifferentTypes = errBase + ".role.rightsAreDifferentTypes"
	KeyRoleNameDuplicated          = errBase + ".role.name.duplicated"
	KeyRoleNotFound                = errBase + ".role.notFound"
	KeyRoleRightsEmpty             = errBase + ".role.rights.empty"
	KeyRightNotFound               = errBase + ".right.notFound"
	KeyRightNameDuplicated         = errBase + ".right.name.duplicated"
	KeyRightInUse                  = errBase + ".right.assigned.deleting.notAllowed"

	// Role assignments.
	KeyRoleAssignmentScopeMismatch = errBase + ".roleAssignment.scope.mismatch"
	KeyRoleAssignmentUnknownShape  = errBase + ".roleAssignment.scope.unrecognized"

	// Per-entity search parameter validation.
	KeyFacilitySearchInvalidParams         = errBase + ".facility.search.invalidParams"
	KeyProgramSearchInvalidParams          = errBase + ".program.search.invalidParams"
	KeySupplyLineSearchInvalidParams       = errBase + ".supplyLine.search.invalidParams"
	KeyOrderableSearchInvalidParams        = errBase + ".orderable.search.invalidParams"
	KeySupervisoryNodeSearchInvalidParams  = errBase + ".supervisoryNode.search.invalidParams"
	KeySystemNotificationInvalidParams     = errBase + ".systemNotification.search.invalidParams"
	KeyFtapSearchInvalidParams             = errBase + ".facilityTypeApprovedProduct.search.invalidParams"
	KeyFtapSearchLacksParameters           = errBase + ".facilityTypeApprovedProduct.search.lacksParameters"
	KeyOrderableFulfillInvalidParams       = errBase + ".orderableFulFill.search.invalidParams"
	KeyFacilityIDWithoutProgramID          = errBase + ".orderableFulFill.search.facilityId.without.programId"
	KeyProgramIDWithoutFacilityID          = errBase + ".orderableFulFill.search.programId.without.facilityId"
	KeyIDsTogetherWithFacilityAndProgramID = errBase + ".orderableFulFill.search.id.notTogether.with.facilityIdAndProgramId"

	// Entity lookups and persistence.
	KeyUserNotFound               = errBase + ".user.notFound"
	KeyUserUsernameDuplicated     = errBase + ".user.username.duplicated"
	KeyFacilityNotFound           = errBase + ".facility.notFound"
	KeyFacilityTypeNotFound       = errBase + ".facilityType.notFound"
	KeyGeographicZoneNotFound     = errBase + ".geographicZone.notFound"
	KeyProgramNotFound            = errBase + ".program.notFound"
	KeyOrderableNotFound          = errBase + ".orderable.notFound"
	KeySupplyLineNotFound         = errBase + ".supplyLine.notFound"
	KeySupervisoryNodeNotFound    = errBase + ".supervisoryNode.notFound"
	KeyProcessingScheduleNotFound = errBase + ".processingSchedule.notFound"
	KeyProcessingPeriodNotFound   = errBase + ".processingPeriod.notFound"
	KeyProcessingPeriodGap        = errBase + ".processingPeriod.gap.notAllowed"
	KeySystemNotificationNotFound = errBase + ".systemNotification.notFound"
	KeyServiceAccountNotFound     = errBase + ".serviceAccount.notFound"

	// Request bodies.
	KeyValidationFailed = errBase + ".validation"
	KeyIDMismatch       = errBase + ".validation.idMismatch"

	// Auth tokens.
	KeyTokenInvalid = errBase + ".token.invalid"
	KeyTokenMissing = errBase + ".token.missing"
)
