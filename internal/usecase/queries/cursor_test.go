//go:build unit

package queries

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	ts := time.Date(2026, 5, 20, 18, 30, 0, 123456789, time.UTC)

	encoded := EncodeAfterCursor(ts, id)
	gotTime, gotID, err := DecodeAfterCursor(encoded)
	require.NoError(t, err)

	// Round-trips at microsecond precision, matching timestamptz storage.
	assert.Equal(t, ts.UnixMicro(), gotTime.UnixMicro())
	assert.Equal(t, id, gotID)
}

func TestDecodeAfterCursorRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name   string
		cursor string
	}{
		{"empty", ""},
		{"not base64", "%%%"},
		{"missing version prefix", "MTIzNC1hYmNk"},
		{"garbage payload", EncodeAfterCursor(time.Now(), uuid.New())[:8]},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := DecodeAfterCursor(c.cursor)
			assert.Error(t, err)
		})
	}
}

func TestNameCursorRoundTrip(t *testing.T) {
	id := uuid.New()

	// Names with separators and non-ASCII must survive the encoding.
	for _, name := range []string{
		"Royal Albert Hall",
		"venue:with:colons",
		"dash-and_underscore",
		"Théâtre du Châtelet",
		"",
	} {
		encoded := encodeNameCursor(name, id)
		gotName, gotID, err := decodeNameCursor(encoded)
		require.NoError(t, err, "name %q", name)
		assert.Equal(t, name, gotName)
		assert.Equal(t, id, gotID)
	}
}

func TestDecodeNameCursorRejectsMalformedInput(t *testing.T) {
	for _, cursor := range []string{"", "not base64 %%%", "dW5rbm93bg=="} {
		_, _, err := decodeNameCursor(cursor)
		assert.Error(t, err, "cursor %q", cursor)
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, ValidateLimit(0))
	assert.Equal(t, 20, ValidateLimit(-5))
	assert.Equal(t, 1, ValidateLimit(1))
	assert.Equal(t, 150, ValidateLimit(150))
	assert.Equal(t, MaxListLimit, ValidateLimit(MaxListLimit))
	assert.Equal(t, MaxListLimit, ValidateLimit(MaxListLimit+1))
}
