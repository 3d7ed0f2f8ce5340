package cards

const (
	// DefaultCardPrice substitutes for a missing or errored price when
	// totaling. The per-row record keeps the raw value.
	DefaultCardPrice = 1.00

	// GradingCost is the professional grading service fee per card.
	GradingCost = 30.00

	// ErrorSentinel marks a price that could not be fetched or parsed.
	ErrorSentinel = -1

	// NoRowID marks the absence of a row identifier. It is a distinct
	// constant from ErrorSentinel: one is a price, the other is a row
	// marker, and they never share a channel.
	NoRowID = -1

	// OverheadPerCard is the fixed per-unit sell cost:
	// USPS shipping + toploader + sleeve.
	OverheadPerCard = 0.60 + 0.17 + 0.08
)

// ItemRequest is one card to price. Built once at ingestion, immutable after.
type ItemRequest struct {
	RowID       int    // dense zero-based position among valid input rows
	SetID       string // card set slug, e.g. "pokemon-base-set"
	CardID      string // card slug within the set
	TargetGrade Grade
	Count       int    // quantity owned, >= 1
	Notes       string // opaque pass-through
}

// PriceQuote is the per-grade price table fetched for one card. A nil Prices
// map is the "unavailable" marker: the page was retrieved but held no
// recognizable price table.
type PriceQuote struct {
	Prices map[Grade]float64
}

// Unavailable reports whether the source page lacked a price table.
func (q PriceQuote) Unavailable() bool {
	return q.Prices == nil
}

// UnavailableQuote returns the explicit no-table marker.
func UnavailableQuote() PriceQuote {
	return PriceQuote{}
}

// Valuation is the computed outcome for one card. EffectivePrice is 0 when
// the source listed no price and ErrorSentinel when the fetch or parse
// failed; both flow through aggregation instead of aborting the batch.
type Valuation struct {
	RowID          int
	SetID          string
	CardID         string
	TargetGrade    Grade
	Count          int
	Notes          string
	EffectivePrice float64
	Gradeworthy    bool
}
