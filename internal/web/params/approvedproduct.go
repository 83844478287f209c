package params

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/openlogistics-io/referencedata/internal/message"
)

const (
	approvedProductParamFacilityType = "facilityType"
	approvedProductParamProgram      = "program"
	approvedProductParamActive       = "active"
	approvedProductParamOrderableID  = "orderableId"
)

var approvedProductAllowedParams = []string{
	approvedProductParamFacilityType, approvedProductParamProgram,
	approvedProductParamActive, approvedProductParamOrderableID,
}

// ApprovedProductSearchParams are the validated criteria of a facility-type
// approved-product search. At least one facilityType is required; the
// requirement is checked at construction together with the allow-list.
type ApprovedProductSearchParams struct {
	facilityTypeCodes []string
	programCode       string
	active            bool
	orderableIDs      []uuid.UUID
}

// NewApprovedProductSearchParams validates and extracts approved-product
// search criteria from a raw query map.
func NewApprovedProductSearchParams(query url.Values) (*ApprovedProductSearchParams, error) {
	raw := NewSearchParams(query)

	if err := raw.checkAllowList(approvedProductAllowedParams, message.KeyFtapSearchInvalidParams); err != nil {
		return nil, err
	}

	if !raw.Has(approvedProductParamFacilityType) {
		return nil, message.NewValidationError(
			message.KeyFtapSearchLacksParameters, approvedProductParamFacilityType)
	}

	out := &ApprovedProductSearchParams{
		facilityTypeCodes: raw.GetStrings(approvedProductParamFacilityType),
		programCode:       raw.GetFirst(approvedProductParamProgram),
		// absent active means "only active products"
		active: true,
	}

	var err error

	if raw.Has(approvedProductParamActive) {
		if out.active, err = raw.GetBool(approvedProductParamActive); err != nil {
			return nil, err
		}
	}

	if out.orderableIDs, err = raw.GetUUIDs(approvedProductParamOrderableID); err != nil {
		return nil, err
	}

	return out, nil
}

// FacilityTypeCodes returns the facility-type filters, never empty.
func (p *ApprovedProductSearchParams) FacilityTypeCodes() []string { return p.facilityTypeCodes }

// ProgramCode returns the program-code filter, "" when absent.
func (p *ApprovedProductSearchParams) ProgramCode() string { return p.programCode }

// Active returns the active filter, true when absent.
func (p *ApprovedProductSearchParams) Active() bool { return p.active }

// OrderableIDs returns the orderable filters, empty set when absent.
func (p *ApprovedProductSearchParams) OrderableIDs() []uuid.UUID { return p.orderableIDs }

// Equal compares two approved-product search criteria by value.
func (p *ApprovedProductSearchParams) Equal(other *ApprovedProductSearchParams) bool {
	return other != nil &&
		p.programCode == other.programCode && p.active == other.active &&
		equalStringSet(p.facilityTypeCodes, other.facilityTypeCodes) &&
		equalUUIDSet(p.orderableIDs, other.orderableIDs)
}
