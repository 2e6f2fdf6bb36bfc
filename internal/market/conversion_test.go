package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertIdentity(t *testing.T) {
	assert.Equal(t, 123.45, Convert(123.45, "USD", "USD"))
	assert.Equal(t, -42.0, Convert(-42.0, "JPY", "JPY"))
}

func TestConvertKnownPairs(t *testing.T) {
	assert.InDelta(t, 110, Convert(100, "EUR", "USD"), 1e-9)
	assert.InDelta(t, 91, Convert(100, "USD", "EUR"), 1e-9)
	assert.InDelta(t, 0.7, Convert(100, "JPY", "USD"), 1e-9)
	assert.InDelta(t, 77, Convert(100, "USD", "GBP"), 1e-9)
	assert.InDelta(t, 130, Convert(100, "GBP", "USD"), 1e-9)
}

func TestConvertMissingPairDefaultsToOne(t *testing.T) {
	// Unknown pairs fall back to DefaultRate, not an error. No inverse
	// derivation either: (CHF,USD) is absent even though conversions
	// into CHF would be too.
	assert.Equal(t, 100.0, Convert(100, "CHF", "USD"))
	assert.Equal(t, 55.5, Convert(55.5, "XXX", "YYY"))
}
