// Package params implements validated, typed wrappers over raw request
// query parameters. Each searchable entity gets its own params type with an
// allow-list of recognized keys: unknown keys fail construction, absent
// recognized keys yield documented defaults.
package params

import (
	"net/url"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/openlogistics-io/referencedata/internal/message"
)

// Keys handled by the pagination and security layers, never treated as
// search criteria.
const (
	keyPage        = "page"
	keySize        = "size"
	keySort        = "sort"
	keyAccessToken = "access_token"
)

// SearchParams wraps a multi-valued query-parameter map and exposes typed
// accessors. Paging and token keys are stripped at construction so entity
// allow-lists never need to mention them.
type SearchParams struct {
	values url.Values
}

// NewSearchParams copies the query map and strips paging/token keys.
func NewSearchParams(query url.Values) SearchParams {
	values := make(url.Values, len(query))

	for key, list := range query {
		switch key {
		case keyPage, keySize, keySort, keyAccessToken:
			continue
		}

		values[key] = append([]string(nil), list...)
	}

	return SearchParams{values: values}
}

// Has reports whether the key is present.
func (p SearchParams) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// IsEmpty reports whether no search keys are present.
func (p SearchParams) IsEmpty() bool {
	return len(p.values) == 0
}

// Keys returns the present keys sorted for stable error reporting.
func (p SearchParams) Keys() []string {
	keys := make([]string, 0, len(p.values))
	for key := range p.values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// GetFirst returns the first value for the key, "" when absent.
func (p SearchParams) GetFirst(key string) string {
	return p.values.Get(key)
}

// GetStrings returns all values for the key as a set (order not preserved,
// duplicates collapsed). Empty set when absent.
func (p SearchParams) GetStrings(key string) []string {
	list := p.values[key]
	if len(list) == 0 {
		return []string{}
	}

	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))

	for _, value := range list {
		if _, ok := seen[value]; ok {
			continue
		}

		seen[value] = struct{}{}
		out = append(out, value)
	}

	sort.Strings(out)

	return out
}

// GetUUID parses the first value for the key, uuid.Nil when absent.
func (p SearchParams) GetUUID(key string) (uuid.UUID, error) {
	if !p.Has(key) {
		return uuid.Nil, nil
	}

	return parseUUID(p.GetFirst(key), key)
}

// GetUUIDs parses every value for the key into a set. Empty set when absent.
func (p SearchParams) GetUUIDs(key string) ([]uuid.UUID, error) {
	list := p.values[key]
	if len(list) == 0 {
		return []uuid.UUID{}, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(list))
	out := make([]uuid.UUID, 0, len(list))

	for _, value := range list {
		id, err := parseUUID(value, key)
		if err != nil {
			return nil, err
		}

		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out, nil
}

// GetBool parses the first value for the key, false when absent.
func (p SearchParams) GetBool(key string) (bool, error) {
	if !p.Has(key) {
		return false, nil
	}

	switch p.GetFirst(key) {
	case "true", "TRUE", "True", "1":
		return true, nil
	case "false", "FALSE", "False", "0":
		return false, nil
	default:
		return false, message.NewValidationError(message.KeyInvalidBooleanFormat, p.GetFirst(key), key)
	}
}

// GetBoolPtr parses the first value for the key, nil when absent. Used where
// "not filtered" differs from "filtered to false".
func (p SearchParams) GetBoolPtr(key string) (*bool, error) {
	if !p.Has(key) {
		return nil, nil
	}

	value, err := p.GetBool(key)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

// GetDate parses the first value for the key as an ISO date (2006-01-02),
// zero time when absent.
func (p SearchParams) GetDate(key string) (time.Time, error) {
	if !p.Has(key) {
		return time.Time{}, nil
	}

	value := p.GetFirst(key)

	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, message.NewValidationError(message.KeyInvalidDateFormat, value, key)
	}

	return date, nil
}

// Equal compares by contained values, ignoring key order.
func (p SearchParams) Equal(other SearchParams) bool {
	if len(p.values) != len(other.values) {
		return false
	}

	for key, list := range p.values {
		otherList, ok := other.values[key]
		if !ok || len(list) != len(otherList) {
			return false
		}

		for i := range list {
			if list[i] != otherList[i] {
				return false
			}
		}
	}

	return true
}

// checkAllowList fails with the given message key when any present key is
// outside the allowed set.
func (p SearchParams) checkAllowList(allowed []string, messageKey string) error {
	for key := range p.values {
		found := false

		for _, candidate := range allowed {
			if key == candidate {
				found = true
				break
			}
		}

		if !found {
			return message.NewValidationError(messageKey, key)
		}
	}

	return nil
}

func parseUUID(value, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, message.NewValidationError(message.KeyInvalidUUIDFormat, value, key)
	}

	return id, nil
}
