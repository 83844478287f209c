package params

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/openlogistics-io/referencedata/internal/message"
)

const (
	supervisoryNodeParamID         = "id"
	supervisoryNodeParamCode       = "code"
	supervisoryNodeParamName       = "name"
	supervisoryNodeParamFacilityID = "facilityId"
	supervisoryNodeParamProgramID  = "programId"
	supervisoryNodeParamZoneID     = "zoneId"
)

var supervisoryNodeAllowedParams = []string{
	supervisoryNodeParamID, supervisoryNodeParamCode, supervisoryNodeParamName,
	supervisoryNodeParamFacilityID, supervisoryNodeParamProgramID, supervisoryNodeParamZoneID,
}

// SupervisoryNodeSearchParams are the validated criteria of a
// supervisory-node search.
type SupervisoryNodeSearchParams struct {
	ids        []uuid.UUID
	code       string
	name       string
	facilityID uuid.UUID
	programID  uuid.UUID
	zoneID     uuid.UUID
}

// NewSupervisoryNodeSearchParams validates and extracts supervisory-node
// search criteria from a raw query map.
func NewSupervisoryNodeSearchParams(query url.Values) (*SupervisoryNodeSearchParams, error) {
	raw := NewSearchParams(query)

	if err := raw.checkAllowList(
		supervisoryNodeAllowedParams, message.KeySupervisoryNodeSearchInvalidParams); err != nil {
		return nil, err
	}

	out := &SupervisoryNodeSearchParams{
		code: raw.GetFirst(supervisoryNodeParamCode),
		name: raw.GetFirst(supervisoryNodeParamName),
	}

	var err error

	if out.ids, err = raw.GetUUIDs(supervisoryNodeParamID); err != nil {
		return nil, err
	}

	if out.facilityID, err = raw.GetUUID(supervisoryNodeParamFacilityID); err != nil {
		return nil, err
	}

	if out.programID, err = raw.GetUUID(supervisoryNodeParamProgramID); err != nil {
		return nil, err
	}

	if out.zoneID, err = raw.GetUUID(supervisoryNodeParamZoneID); err != nil {
		return nil, err
	}

	return out, nil
}

// IDs returns the searched node ids, empty set when absent.
func (p *SupervisoryNodeSearchParams) IDs() []uuid.UUID { return p.ids }

// Code returns the code filter, "" when absent.
func (p *SupervisoryNodeSearchParams) Code() string { return p.code }

// Name returns the name filter, "" when absent.
func (p *SupervisoryNodeSearchParams) Name() string { return p.name }

// FacilityID returns the facility filter, uuid.Nil when absent.
func (p *SupervisoryNodeSearchParams) FacilityID() uuid.UUID { return p.facilityID }

// ProgramID returns the program filter, uuid.Nil when absent.
func (p *SupervisoryNodeSearchParams) ProgramID() uuid.UUID { return p.programID }

// ZoneID returns the geographic-zone filter, uuid.Nil when absent.
func (p *SupervisoryNodeSearchParams) ZoneID() uuid.UUID { return p.zoneID }

// Equal compares two supervisory-node search criteria by value.
func (p *SupervisoryNodeSearchParams) Equal(other *SupervisoryNodeSearchParams) bool {
	return other != nil &&
		p.code == other.code && p.name == other.name &&
		p.facilityID == other.facilityID && p.programID == other.programID &&
		p.zoneID == other.zoneID &&
		equalUUIDSet(p.ids, other.ids)
}
