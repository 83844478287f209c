package params

import (
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlogistics-io/referencedata/internal/message"
)

func TestNewSearchParams_StripsPagingAndTokenKeys(t *testing.T) {
	raw := NewSearchParams(url.Values{
		"page":         {"2"},
		"size":         {"10"},
		"sort":         {"name"},
		"access_token": {"secret"},
		"name":         {"clinic"},
	})

	assert.Equal(t, []string{"name"}, raw.Keys())
	assert.False(t, raw.Has("page"))
	assert.False(t, raw.Has("access_token"))
}

func TestSearchParams_GetUUID(t *testing.T) {
	id := uuid.New()
	raw := NewSearchParams(url.Values{"zoneId": {id.String()}})

	parsed, err := raw.GetUUID("zoneId")
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	absent, err := raw.GetUUID("facilityId")
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, absent)
}

func TestSearchParams_GetUUID_Malformed(t *testing.T) {
	raw := NewSearchParams(url.Values{"zoneId": {"not-a-uuid"}})

	_, err := raw.GetUUID("zoneId")
	require.Error(t, err)

	var vErr *message.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, message.KeyInvalidUUIDFormat, vErr.MessageKey())
}

func TestSearchParams_GetUUIDs_CollectsSet(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	raw := NewSearchParams(url.Values{"id": {first.String(), second.String(), first.String()}})

	ids, err := raw.GetUUIDs("id")
	require.NoError(t, err)
	assert.Len(t, ids, 2)
	assert.Contains(t, ids, first)
	assert.Contains(t, ids, second)

	empty, err := raw.GetUUIDs("missing")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSearchParams_GetBool(t *testing.T) {
	raw := NewSearchParams(url.Values{"recurse": {"true"}, "active": {"maybe"}})

	recurse, err := raw.GetBool("recurse")
	require.NoError(t, err)
	assert.True(t, recurse)

	absent, err := raw.GetBool("missing")
	require.NoError(t, err)
	assert.False(t, absent)

	_, err = raw.GetBool("active")
	require.Error(t, err)

	var vErr *message.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, message.KeyInvalidBooleanFormat, vErr.MessageKey())
}

func TestSearchParams_GetDate(t *testing.T) {
	raw := NewSearchParams(url.Values{"startDate": {"2024-02-29"}, "endDate": {"02/29/2024"}})

	date, err := raw.GetDate("startDate")
	require.NoError(t, err)
	assert.Equal(t, 2024, date.Year())

	_, err = raw.GetDate("endDate")
	require.Error(t, err)
}

func TestSearchParams_Equal(t *testing.T) {
	a := NewSearchParams(url.Values{"name": {"x"}, "id": {"1", "2"}})
	b := NewSearchParams(url.Values{"id": {"1", "2"}, "name": {"x"}})
	c := NewSearchParams(url.Values{"name": {"y"}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
