package params

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/openlogistics-io/referencedata/internal/message"
)

const (
	supplyLineParamProgramID           = "programId"
	supplyLineParamSupervisoryNodeID   = "supervisoryNodeId"
	supplyLineParamSupplyingFacilityID = "supplyingFacilityId"
	supplyLineParamExpand              = "expand"
)

var supplyLineAllowedParams = []string{
	supplyLineParamProgramID, supplyLineParamSupervisoryNodeID,
	supplyLineParamSupplyingFacilityID, supplyLineParamExpand,
}

// SupplyLineSearchParams are the validated criteria of a supply-line search.
type SupplyLineSearchParams struct {
	programID            uuid.UUID
	supervisoryNodeID    uuid.UUID
	supplyingFacilityIDs []uuid.UUID
	expand               []string
}

// NewSupplyLineSearchParams validates and extracts supply-line search
// criteria from a raw query map.
func NewSupplyLineSearchParams(query url.Values) (*SupplyLineSearchParams, error) {
	raw := NewSearchParams(query)

	if err := raw.checkAllowList(supplyLineAllowedParams, message.KeySupplyLineSearchInvalidParams); err != nil {
		return nil, err
	}

	out := &SupplyLineSearchParams{expand: raw.GetStrings(supplyLineParamExpand)}

	var err error

	if out.programID, err = raw.GetUUID(supplyLineParamProgramID); err != nil {
		return nil, err
	}

	if out.supervisoryNodeID, err = raw.GetUUID(supplyLineParamSupervisoryNodeID); err != nil {
		return nil, err
	}

	if out.supplyingFacilityIDs, err = raw.GetUUIDs(supplyLineParamSupplyingFacilityID); err != nil {
		return nil, err
	}

	return out, nil
}

// ProgramID returns the program filter, uuid.Nil when absent.
func (p *SupplyLineSearchParams) ProgramID() uuid.UUID { return p.programID }

// SupervisoryNodeID returns the supervisory-node filter, uuid.Nil when
// absent.
func (p *SupplyLineSearchParams) SupervisoryNodeID() uuid.UUID { return p.supervisoryNodeID }

// SupplyingFacilityIDs returns the supplying-facility filters, empty set
// when absent.
func (p *SupplyLineSearchParams) SupplyingFacilityIDs() []uuid.UUID { return p.supplyingFacilityIDs }

// Expand returns the requested response expansions, empty set when absent.
func (p *SupplyLineSearchParams) Expand() []string { return p.expand }

// Equal compares two supply-line search criteria by value.
func (p *SupplyLineSearchParams) Equal(other *SupplyLineSearchParams) bool {
	return other != nil &&
		p.programID == other.programID &&
		p.supervisoryNodeID == other.supervisoryNodeID &&
		equalUUIDSet(p.supplyingFacilityIDs, other.supplyingFacilityIDs) &&
		equalStringSet(p.expand, other.expand)
}
