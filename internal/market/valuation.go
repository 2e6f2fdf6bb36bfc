package market

// Direction represents the side of a trade
type Direction string

const (
	DirectionLong  Direction = "long"
	DirectionShort Direction = "short"
)

// Valid reports whether the direction is one of the two known tokens.
func (d Direction) Valid() bool {
	return d == DirectionLong || d == DirectionShort
}

// RawResult is a realized P&L in the instrument's settlement currency,
// before conversion to the journal currency.
type RawResult struct {
	Amount   float64
	Currency string
}

// pip sizes per forex quoting convention
const (
	pipSizeStandard = 0.0001
	pipSizeJPY      = 0.01
)

// PipSize returns the smallest standardized price increment for a forex pair
// given its quote currency: 0.01 for JPY-quoted pairs, 0.0001 otherwise.
func PipSize(quoteCurrency string) float64 {
	if quoteCurrency == "JPY" {
		return pipSizeJPY
	}
	return pipSizeStandard
}

// ValueTrade computes the raw P&L of a trade in the instrument's settlement
// currency. It returns nil when exit is nil: an open trade has no result yet,
// which must never be conflated with a zero-valued result.
//
// The sign rule is uniform across categories: long = exit-entry,
// short = entry-exit. The category only changes the multiplier and whether
// the delta is normalized to pips first.
//
// The function is pure and idempotent; it is called identically at both
// trade-open time (provisional valuation) and trade-close time.
func ValueTrade(inst Instrument, journalCurrency string, dir Direction, entry float64, exit *float64, size float64) *RawResult {
	if exit == nil {
		return nil
	}

	delta := *exit - entry
	if dir == DirectionShort {
		delta = entry - *exit
	}

	var amount float64
	switch inst.Category {
	case CategoryForex:
		pips := delta / PipSize(inst.QuoteCurrency)
		amount = pips * size * inst.PipValue
	case CategoryStock:
		amount = delta * size * inst.Multiplier
	case CategoryFutures:
		// Sizing is implicit in the contract: the user-entered size does
		// not participate.
		amount = delta * inst.ContractSize * inst.PointValue
	case CategoryCommodity:
		amount = delta * inst.ContractSize
	default:
		amount = delta * size
	}

	return &RawResult{
		Amount:   amount,
		Currency: inst.SettlementCurrency(journalCurrency),
	}
}

// Percentage derives the percentage-of-capital figure for a converted result.
// A zero or negative initial capital yields 0: no percentage is meaningful,
// but it is not an error.
func Percentage(result, initialCapital float64) float64 {
	if initialCapital <= 0 {
		return 0
	}
	return result / initialCapital * 100
}
