// Package market contains the static instrument catalog, the currency
// conversion table and the trade valuation engine. Everything in this package
// is pure: no I/O, no mutable state, safe to call from any goroutine.
package market

// Category represents the financial-market category of an instrument
type Category string

const (
	CategoryForex        Category = "forex"
	CategoryStock        Category = "stock"
	CategoryFutures      Category = "futures"
	CategoryCommodity    Category = "commodity"
	CategoryUnclassified Category = "unclassified"
)

// Instrument describes a catalog entry and its category-specific sizing
// constants. Only the fields relevant to the category are populated:
// forex carries PipValue/QuoteCurrency, stocks carry Multiplier/Currency,
// futures carry ContractSize/PointValue/Currency and commodities
// ContractSize/Currency. Unclassified instruments carry none of them.
type Instrument struct {
	Symbol        string
	Category      Category
	PipValue      float64 // forex: money per pip per lot
	QuoteCurrency string  // forex
	Multiplier    float64 // stock: shares per unit
	ContractSize  float64 // futures, commodity
	PointValue    float64 // futures
	Currency      string  // stock, futures, commodity
}

// catalog is the static instrument table, loaded once at process start.
// It is never mutated at runtime.
var catalog = map[string]Instrument{
	// Forex
	"EUR/USD": {Symbol: "EUR/USD", Category: CategoryForex, PipValue: 10, QuoteCurrency: "USD"},
	"GBP/USD": {Symbol: "GBP/USD", Category: CategoryForex, PipValue: 10, QuoteCurrency: "USD"},
	"USD/JPY": {Symbol: "USD/JPY", Category: CategoryForex, PipValue: 1000, QuoteCurrency: "JPY"},
	"AUD/USD": {Symbol: "AUD/USD", Category: CategoryForex, PipValue: 10, QuoteCurrency: "USD"},
	"USD/CHF": {Symbol: "USD/CHF", Category: CategoryForex, PipValue: 10, QuoteCurrency: "USD"},
	"NZD/USD": {Symbol: "NZD/USD", Category: CategoryForex, PipValue: 10, QuoteCurrency: "USD"},
	"EUR/JPY": {Symbol: "EUR/JPY", Category: CategoryForex, PipValue: 1000, QuoteCurrency: "JPY"},
	"GBP/JPY": {Symbol: "GBP/JPY", Category: CategoryForex, PipValue: 1000, QuoteCurrency: "JPY"},
	"EUR/GBP": {Symbol: "EUR/GBP", Category: CategoryForex, PipValue: 10, QuoteCurrency: "GBP"},

	// Stocks
	"AAPL":  {Symbol: "AAPL", Category: CategoryStock, Multiplier: 1, Currency: "USD"},
	"TSLA":  {Symbol: "TSLA", Category: CategoryStock, Multiplier: 1, Currency: "USD"},
	"MSFT":  {Symbol: "MSFT", Category: CategoryStock, Multiplier: 1, Currency: "USD"},
	"AMZN":  {Symbol: "AMZN", Category: CategoryStock, Multiplier: 1, Currency: "USD"},
	"GOOGL": {Symbol: "GOOGL", Category: CategoryStock, Multiplier: 1, Currency: "USD"},
	"FB":    {Symbol: "FB", Category: CategoryStock, Multiplier: 1, Currency: "USD"},

	// Index futures
	"CAC40":   {Symbol: "CAC40", Category: CategoryFutures, ContractSize: 10, PointValue: 10, Currency: "EUR"},
	"SP500":   {Symbol: "SP500", Category: CategoryFutures, ContractSize: 5, PointValue: 50, Currency: "USD"},
	"DAX":     {Symbol: "DAX", Category: CategoryFutures, ContractSize: 25, PointValue: 5, Currency: "EUR"},
	"FTSE100": {Symbol: "FTSE100", Category: CategoryFutures, ContractSize: 10, PointValue: 10, Currency: "GBP"},

	// Commodities
	"OIL":    {Symbol: "OIL", Category: CategoryCommodity, ContractSize: 100, Currency: "USD"},
	"GOLD":   {Symbol: "GOLD", Category: CategoryCommodity, ContractSize: 100, Currency: "USD"},
	"SILVER": {Symbol: "SILVER", Category: CategoryCommodity, ContractSize: 5000, Currency: "USD"},
	"COPPER": {Symbol: "COPPER", Category: CategoryCommodity, ContractSize: 25000, Currency: "USD"},
}

// Resolve looks up a symbol in the static catalog. The match is exact and
// case-sensitive. A miss is not an error: the caller treats the trade as
// unclassified (see Unclassified) so users can log arbitrary instruments.
func Resolve(symbol string) (Instrument, bool) {
	inst, ok := catalog[symbol]
	return inst, ok
}

// Unclassified returns the generic instrument used for symbols absent from
// the catalog. It values with a plain unit multiplier in the journal's own
// currency.
func Unclassified(symbol string) Instrument {
	return Instrument{Symbol: symbol, Category: CategoryUnclassified}
}

// Symbols returns every catalog symbol, for populating instrument pickers.
func Symbols() []string {
	out := make([]string, 0, len(catalog))
	for s := range catalog {
		out = append(out, s)
	}
	return out
}

// SettlementCurrency is the currency the instrument's raw P&L is denominated
// in before conversion to the journal currency. Unclassified instruments
// settle in the journal's own currency, making conversion a no-op.
func (i Instrument) SettlementCurrency(journalCurrency string) string {
	switch i.Category {
	case CategoryForex:
		return i.QuoteCurrency
	case CategoryStock, CategoryFutures, CategoryCommodity:
		return i.Currency
	default:
		return journalCurrency
	}
}
