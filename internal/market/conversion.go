package market

// DefaultRate is the multiplier applied when a currency pair is absent from
// the conversion table. Missing pairs are treated as already being in the
// target currency. This is a deliberate, known limitation kept for
// compatibility with historical computed results: there is no inverse
// derivation and no cross-rate triangulation.
const DefaultRate = 1.0

// pair is an ordered (from, to) currency pair.
type pair struct {
	from, to string
}

// conversionRates is the static exchange-rate table. Lookup is exact-pair
// only.
var conversionRates = map[pair]float64{
	{"USD", "USD"}: 1,
	{"EUR", "USD"}: 1.1,
	{"USD", "EUR"}: 0.91,
	{"JPY", "USD"}: 0.007,
	{"USD", "JPY"}: 140,
	{"EUR", "EUR"}: 1,
	{"JPY", "EUR"}: 0.0064,
	{"EUR", "JPY"}: 130,
	{"JPY", "JPY"}: 1,
	{"GBP", "USD"}: 1.3,
	{"USD", "GBP"}: 0.77,
	{"GBP", "GBP"}: 1,
}

// Convert converts an amount from one currency to another using the static
// table. Identity pairs and unknown pairs use DefaultRate.
func Convert(amount float64, from, to string) float64 {
	if from == to {
		return amount
	}
	rate, ok := conversionRates[pair{from, to}]
	if !ok {
		rate = DefaultRate
	}
	return amount * rate
}
