package params

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/openlogistics-io/referencedata/internal/message"
)

const (
	systemNotificationParamAuthorID    = "authorId"
	systemNotificationParamIsDisplayed = "isDisplayed"
	systemNotificationParamExpand      = "expand"
)

var systemNotificationAllowedParams = []string{
	systemNotificationParamAuthorID, systemNotificationParamIsDisplayed,
	systemNotificationParamExpand,
}

// SystemNotificationSearchParams are the validated criteria of a
// system-notification search.
type SystemNotificationSearchParams struct {
	authorID    uuid.UUID
	isDisplayed *bool
	expand      []string
}

// NewSystemNotificationSearchParams validates and extracts
// system-notification search criteria from a raw query map.
func NewSystemNotificationSearchParams(query url.Values) (*SystemNotificationSearchParams, error) {
	raw := NewSearchParams(query)

	if err := raw.checkAllowList(
		systemNotificationAllowedParams, message.KeySystemNotificationInvalidParams); err != nil {
		return nil, err
	}

	out := &SystemNotificationSearchParams{expand: raw.GetStrings(systemNotificationParamExpand)}

	var err error

	if out.authorID, err = raw.GetUUID(systemNotificationParamAuthorID); err != nil {
		return nil, err
	}

	if out.isDisplayed, err = raw.GetBoolPtr(systemNotificationParamIsDisplayed); err != nil {
		return nil, err
	}

	return out, nil
}

// AuthorID returns the author filter, uuid.Nil when absent.
func (p *SystemNotificationSearchParams) AuthorID() uuid.UUID { return p.authorID }

// IsDisplayed returns the display filter, nil when the search is not
// filtered by display state.
func (p *SystemNotificationSearchParams) IsDisplayed() *bool { return p.isDisplayed }

// Expand returns the requested response expansions, empty set when absent.
func (p *SystemNotificationSearchParams) Expand() []string { return p.expand }

// Equal compares two system-notification search criteria by value.
func (p *SystemNotificationSearchParams) Equal(other *SystemNotificationSearchParams) bool {
	return other != nil &&
		p.authorID == other.authorID &&
		equalBoolPtr(p.isDisplayed, other.isDisplayed) &&
		equalStringSet(p.expand, other.expand)
}
