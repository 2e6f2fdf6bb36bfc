package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestValueTradeForexLong(t *testing.T) {
	// EUR/USD long, entry 1.1000, exit 1.1050, 1 lot, pip value 10:
	// 50 pips * 1 * 10 = 500 USD
	inst, ok := Resolve("EUR/USD")
	require.True(t, ok)

	res := ValueTrade(inst, "USD", DirectionLong, 1.1000, f(1.1050), 1)
	require.NotNil(t, res)
	assert.InDelta(t, 500, res.Amount, 1e-6)
	assert.Equal(t, "USD", res.Currency)
}

func TestValueTradeForexShortJPY(t *testing.T) {
	// USD/JPY short, entry 140.00, exit 139.50: pip size is 0.01, so
	// (140.00-139.50)/0.01 = 50 pips, * 1 lot * 1000 = 50000 JPY
	inst, ok := Resolve("USD/JPY")
	require.True(t, ok)

	res := ValueTrade(inst, "USD", DirectionShort, 140.00, f(139.50), 1)
	require.NotNil(t, res)
	assert.InDelta(t, 50000, res.Amount, 1e-6)
	assert.Equal(t, "JPY", res.Currency)

	// Converted at (JPY,USD)=0.007 => 350 USD
	assert.InDelta(t, 350, Convert(res.Amount, res.Currency, "USD"), 1e-6)
}

func TestValueTradeStockLoss(t *testing.T) {
	// AAPL long, entry 150, exit 145, 10 shares => -50 USD
	inst, ok := Resolve("AAPL")
	require.True(t, ok)

	res := ValueTrade(inst, "USD", DirectionLong, 150, f(145), 10)
	require.NotNil(t, res)
	assert.InDelta(t, -50, res.Amount, 1e-6)
	assert.Equal(t, "USD", res.Currency)
}

func TestValueTradeFuturesIgnoresSize(t *testing.T) {
	inst, ok := Resolve("SP500")
	require.True(t, ok)

	// contract_size 5 * point_value 50 = 250 per point, whatever the size
	a := ValueTrade(inst, "USD", DirectionLong, 5000, f(5002), 1)
	b := ValueTrade(inst, "USD", DirectionLong, 5000, f(5002), 10)
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.InDelta(t, 500, a.Amount, 1e-6)
	assert.Equal(t, a.Amount, b.Amount)
}

func TestValueTradeCommodity(t *testing.T) {
	inst, ok := Resolve("GOLD")
	require.True(t, ok)

	res := ValueTrade(inst, "USD", DirectionShort, 2400, f(2390), 3)
	require.NotNil(t, res)
	assert.InDelta(t, 1000, res.Amount, 1e-6) // 10 * contract_size 100
	assert.Equal(t, "USD", res.Currency)
}

func TestValueTradeUnclassified(t *testing.T) {
	inst := Unclassified("MY-CUSTOM-THING")

	res := ValueTrade(inst, "EUR", DirectionLong, 10, f(12), 5)
	require.NotNil(t, res)
	assert.InDelta(t, 10, res.Amount, 1e-6)
	// Settles in the journal currency, so conversion is a no-op.
	assert.Equal(t, "EUR", res.Currency)
}

func TestValueTradeOpenHasNoResult(t *testing.T) {
	inst, ok := Resolve("EUR/USD")
	require.True(t, ok)

	res := ValueTrade(inst, "USD", DirectionLong, 1.1000, nil, 1)
	assert.Nil(t, res, "an open trade has no result yet, not a zero result")
}

func TestValueTradeIdempotent(t *testing.T) {
	inst, ok := Resolve("GBP/JPY")
	require.True(t, ok)

	a := ValueTrade(inst, "USD", DirectionLong, 190.00, f(190.25), 2)
	b := ValueTrade(inst, "USD", DirectionLong, 190.00, f(190.25), 2)
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, *a, *b)
}

func TestPipSize(t *testing.T) {
	assert.Equal(t, 0.01, PipSize("JPY"))
	assert.Equal(t, 0.0001, PipSize("USD"))
	assert.Equal(t, 0.0001, PipSize("GBP"))
}

func TestPercentage(t *testing.T) {
	assert.InDelta(t, 5.0, Percentage(500, 10000), 1e-9)
	assert.InDelta(t, -2.5, Percentage(-250, 10000), 1e-9)

	// Zero or negative capital yields 0 rather than dividing by zero.
	assert.Zero(t, Percentage(500, 0))
	assert.Zero(t, Percentage(500, -100))
}

func TestResolveUnknownSymbol(t *testing.T) {
	_, ok := Resolve("NOT-A-SYMBOL")
	assert.False(t, ok)

	// Lookup is case-sensitive.
	_, ok = Resolve("eur/usd")
	assert.False(t, ok)
}

func TestScenarioEURUSDFullPipeline(t *testing.T) {
	inst, ok := Resolve("EUR/USD")
	require.True(t, ok)

	res := ValueTrade(inst, "USD", DirectionLong, 1.1000, f(1.1050), 1)
	require.NotNil(t, res)

	converted := Convert(res.Amount, res.Currency, "USD")
	assert.InDelta(t, 500, converted, 1e-6)
	assert.InDelta(t, 5.0, Percentage(converted, 10000), 1e-9)
}
