package params

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/openlogistics-io/referencedata/internal/message"
)

const (
	programParamID   = "id"
	programParamName = "name"
)

var programAllowedParams = []string{programParamID, programParamName}

// ProgramSearchParams are the validated criteria of a program search.
type ProgramSearchParams struct {
	ids  []uuid.UUID
	name string
}

// NewProgramSearchParams validates and extracts program search criteria from
// a raw query map.
func NewProgramSearchParams(query url.Values) (*ProgramSearchParams, error) {
	raw := NewSearchParams(query)

	if err := raw.checkAllowList(programAllowedParams, message.KeyProgramSearchInvalidParams); err != nil {
		return nil, err
	}

	out := &ProgramSearchParams{name: raw.GetFirst(programParamName)}

	var err error
	if out.ids, err = raw.GetUUIDs(programParamID); err != nil {
		return nil, err
	}

	return out, nil
}

// IDs returns the searched program ids, empty set when absent.
func (p *ProgramSearchParams) IDs() []uuid.UUID { return p.ids }

// Name returns the name filter, "" when absent.
func (p *ProgramSearchParams) Name() string { return p.name }

// Equal compares two program search criteria by value.
func (p *ProgramSearchParams) Equal(other *ProgramSearchParams) bool {
	return other != nil && p.name == other.name && equalUUIDSet(p.ids, other.ids)
}
