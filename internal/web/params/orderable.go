package params

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/openlogistics-io/referencedata/internal/message"
)

const (
	orderableParamID          = "id"
	orderableParamCode        = "code"
	orderableParamName        = "name"
	orderableParamProgramCode = "program"
)

var orderableAllowedParams = []string{
	orderableParamID, orderableParamCode, orderableParamName, orderableParamProgramCode,
}

// OrderableSearchParams are the validated criteria of an orderable search.
type OrderableSearchParams struct {
	ids         []uuid.UUID
	code        string
	name        string
	programCode string
	empty       bool
}

// NewOrderableSearchParams validates and extracts orderable search criteria
// from a raw query map.
func NewOrderableSearchParams(query url.Values) (*OrderableSearchParams, error) {
	raw := NewSearchParams(query)

	if err := raw.checkAllowList(orderableAllowedParams, message.KeyOrderableSearchInvalidParams); err != nil {
		return nil, err
	}

	out := &OrderableSearchParams{
		code:        raw.GetFirst(orderableParamCode),
		name:        raw.GetFirst(orderableParamName),
		programCode: raw.GetFirst(orderableParamProgramCode),
		empty:       raw.IsEmpty(),
	}

	var err error
	if out.ids, err = raw.GetUUIDs(orderableParamID); err != nil {
		return nil, err
	}

	return out, nil
}

// IDs returns the searched orderable ids, empty set when absent.
func (p *OrderableSearchParams) IDs() []uuid.UUID { return p.ids }

// Code returns the product-code filter, "" when absent.
func (p *OrderableSearchParams) Code() string { return p.code }

// Name returns the full-product-name filter, "" when absent.
func (p *OrderableSearchParams) Name() string { return p.name }

// ProgramCode returns the program-code filter, "" when absent.
func (p *OrderableSearchParams) ProgramCode() string { return p.programCode }

// IsEmpty reports whether no criteria were supplied at all, meaning the
// search returns everything.
func (p *OrderableSearchParams) IsEmpty() bool { return p.empty }

// Equal compares two orderable search criteria by value.
func (p *OrderableSearchParams) Equal(other *OrderableSearchParams) bool {
	return other != nil &&
		p.code == other.code && p.name == other.name &&
		p.programCode == other.programCode &&
		equalUUIDSet(p.ids, other.ids)
}
