package params

import (
	"encoding/json"
	"net/url"

	"github.com/google/uuid"

	"github.com/openlogistics-io/referencedata/internal/message"
)

const (
	facilityParamID           = "id"
	facilityParamCode         = "code"
	facilityParamName         = "name"
	facilityParamType         = "type"
	facilityParamZoneID       = "zoneId"
	facilityParamRecurse      = "recurse"
	facilityParamExtraData    = "extraData"
	facilityParamExcludeWards = "excludeWardsServices"
	facilityParamActive       = "active"
)

var facilityAllowedParams = []string{
	facilityParamID, facilityParamCode, facilityParamName, facilityParamType,
	facilityParamZoneID, facilityParamRecurse, facilityParamExtraData,
	facilityParamExcludeWards, facilityParamActive,
}

// FacilitySearchParams are the validated criteria of a facility search.
type FacilitySearchParams struct {
	ids                  []uuid.UUID
	code                 string
	name                 string
	facilityTypeCode     string
	zoneID               uuid.UUID
	recurse              bool
	extraData            map[string]string
	excludeWardsServices bool
	active               *bool
}

// NewFacilitySearchParams validates and extracts facility search criteria
// from a raw query map.
func NewFacilitySearchParams(query url.Values) (*FacilitySearchParams, error) {
	raw := NewSearchParams(query)

	if err := raw.checkAllowList(facilityAllowedParams, message.KeyFacilitySearchInvalidParams); err != nil {
		return nil, err
	}

	out := &FacilitySearchParams{
		code:             raw.GetFirst(facilityParamCode),
		name:             raw.GetFirst(facilityParamName),
		facilityTypeCode: raw.GetFirst(facilityParamType),
	}

	var err error

	if out.ids, err = raw.GetUUIDs(facilityParamID); err != nil {
		return nil, err
	}

	if out.zoneID, err = raw.GetUUID(facilityParamZoneID); err != nil {
		return nil, err
	}

	if out.recurse, err = raw.GetBool(facilityParamRecurse); err != nil {
		return nil, err
	}

	if out.excludeWardsServices, err = raw.GetBool(facilityParamExcludeWards); err != nil {
		return nil, err
	}

	if out.active, err = raw.GetBoolPtr(facilityParamActive); err != nil {
		return nil, err
	}

	if raw.Has(facilityParamExtraData) {
		if err = json.Unmarshal([]byte(raw.GetFirst(facilityParamExtraData)), &out.extraData); err != nil {
			return nil, message.NewValidationError(
				message.KeyFacilitySearchInvalidParams, facilityParamExtraData)
		}
	}

	return out, nil
}

// IDs returns the searched facility ids, empty set when absent.
func (p *FacilitySearchParams) IDs() []uuid.UUID { return p.ids }

// Code returns the code filter, "" when absent.
func (p *FacilitySearchParams) Code() string { return p.code }

// Name returns the name filter, "" when absent.
func (p *FacilitySearchParams) Name() string { return p.name }

// FacilityTypeCode returns the facility-type code filter, "" when absent.
func (p *FacilitySearchParams) FacilityTypeCode() string { return p.facilityTypeCode }

// ZoneID returns the geographic zone filter, uuid.Nil when absent.
func (p *FacilitySearchParams) ZoneID() uuid.UUID { return p.zoneID }

// Recurse reports whether the zone filter includes descendant zones. False
// when absent.
func (p *FacilitySearchParams) Recurse() bool { return p.recurse }

// ExtraData returns the extra-data filter map, nil when absent.
func (p *FacilitySearchParams) ExtraData() map[string]string { return p.extraData }

// ExcludeWardsServices reports whether ward/service facilities are excluded.
// False when absent.
func (p *FacilitySearchParams) ExcludeWardsServices() bool { return p.excludeWardsServices }

// Active returns the active filter, nil when the search is not filtered by
// active state.
func (p *FacilitySearchParams) Active() *bool { return p.active }

// Equal compares two facility search criteria by value.
func (p *FacilitySearchParams) Equal(other *FacilitySearchParams) bool {
	if other == nil {
		return false
	}

	if p.code != other.code || p.name != other.name ||
		p.facilityTypeCode != other.facilityTypeCode || p.zoneID != other.zoneID ||
		p.recurse != other.recurse || p.excludeWardsServices != other.excludeWardsServices {
		return false
	}

	if !equalBoolPtr(p.active, other.active) || !equalUUIDSet(p.ids, other.ids) {
		return false
	}

	if len(p.extraData) != len(other.extraData) {
		return false
	}

	for key, value := range p.extraData {
		if other.extraData[key] != value {
			return false
		}
	}

	return true
}

func equalBoolPtr(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

func equalUUIDSet(a, b []uuid.UUID) bool {
	if len(a) != len(b) {
		return false
	}

	set := make(map[uuid.UUID]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}

	for _, id := range b {
		if _, ok := set[id]; !ok {
			return false
		}
	}

	return true
}

func equalStringSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	set := make(map[string]struct{}, len(a))
	for _, value := range a {
		set[value] = struct{}{}
	}

	for _, value := range b {
		if _, ok := set[value]; !ok {
			return false
		}
	}

	return true
}
