package params

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/openlogistics-io/referencedata/internal/message"
)

const (
	orderableFulfillParamID         = "id"
	orderableFulfillParamFacilityID = "facilityId"
	orderableFulfillParamProgramID  = "programId"
)

var orderableFulfillAllowedParams = []string{
	orderableFulfillParamID, orderableFulfillParamFacilityID, orderableFulfillParamProgramID,
}

// OrderableFulfillSearchParams are the validated criteria of an
// orderable-fulfills search. facilityId and programId must be supplied
// together or not at all, and id excludes both.
type OrderableFulfillSearchParams struct {
	ids        []uuid.UUID
	facilityID uuid.UUID
	programIDs []uuid.UUID
}

// NewOrderableFulfillSearchParams validates and extracts orderable-fulfill
// search criteria from a raw query map, including the cross-field rules.
func NewOrderableFulfillSearchParams(query url.Values) (*OrderableFulfillSearchParams, error) {
	raw := NewSearchParams(query)

	if err := raw.checkAllowList(orderableFulfillAllowedParams, message.KeyOrderableFulfillInvalidParams); err != nil {
		return nil, err
	}

	hasFacility := raw.Has(orderableFulfillParamFacilityID)
	hasProgram := raw.Has(orderableFulfillParamProgramID)

	if hasFacility && !hasProgram {
		return nil, message.NewValidationError(message.KeyFacilityIDWithoutProgramID)
	}

	if hasProgram && !hasFacility {
		return nil, message.NewValidationError(message.KeyProgramIDWithoutFacilityID)
	}

	if raw.Has(orderableFulfillParamID) && (hasFacility || hasProgram) {
		return nil, message.NewValidationError(message.KeyIDsTogetherWithFacilityAndProgramID)
	}

	out := &OrderableFulfillSearchParams{}

	var err error

	if out.ids, err = raw.GetUUIDs(orderableFulfillParamID); err != nil {
		return nil, err
	}

	if out.facilityID, err = raw.GetUUID(orderableFulfillParamFacilityID); err != nil {
		return nil, err
	}

	if out.programIDs, err = raw.GetUUIDs(orderableFulfillParamProgramID); err != nil {
		return nil, err
	}

	return out, nil
}

// IDs returns the searched orderable ids, empty set when absent.
func (p *OrderableFulfillSearchParams) IDs() []uuid.UUID { return p.ids }

// FacilityID returns the facility filter, uuid.Nil when absent.
func (p *OrderableFulfillSearchParams) FacilityID() uuid.UUID { return p.facilityID }

// ProgramIDs returns the program filters, empty set when absent.
func (p *OrderableFulfillSearchParams) ProgramIDs() []uuid.UUID { return p.programIDs }

// IsSearchByFacilityAndProgram reports whether the facility/program criteria
// pair drives the search.
func (p *OrderableFulfillSearchParams) IsSearchByFacilityAndProgram() bool {
	return p.facilityID != uuid.Nil && len(p.programIDs) > 0
}

// Equal compares two orderable-fulfill search criteria by value.
func (p *OrderableFulfillSearchParams) Equal(other *OrderableFulfillSearchParams) bool {
	return other != nil &&
		p.facilityID == other.facilityID &&
		equalUUIDSet(p.ids, other.ids) &&
		equalUUIDSet(p.programIDs, other.programIDs)
}
