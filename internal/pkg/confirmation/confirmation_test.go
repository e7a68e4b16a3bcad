//go:build unit

package confirmation_test

import (
	"testing"

	"ticket-booking/internal/pkg/confirmation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomGeneratorNewCode(t *testing.T) {
	g := confirmation.NewRandomGenerator()

	code, err := g.NewCode()
	require.NoError(t, err)
	assert.Len(t, code, confirmation.CodeLength)

	for _, r := range code {
		isUpper := r >= 'A' && r <= 'Z'
		isDigit := r >= '0' && r <= '9'
		assert.True(t, isUpper || isDigit, "unexpected character %q", r)
	}
}

func TestRandomGeneratorCodesVary(t *testing.T) {
	g := confirmation.NewRandomGenerator()

	seen := make(map[string]bool)
	for range 100 {
		code, err := g.NewCode()
		require.NoError(t, err)
		seen[code] = true
	}

	// 100 draws from a 36^8 space colliding would indicate a broken source.
	assert.Greater(t, len(seen), 95)
}

func TestFixedGenerator(t *testing.T) {
	g := &confirmation.FixedGenerator{Code: "FIXED123"}

	for range 3 {
		code, err := g.NewCode()
		require.NoError(t, err)
		assert.Equal(t, "FIXED123", code)
	}
}
