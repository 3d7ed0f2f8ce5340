package report

import (
	"sort"

	"card_valuation/internal/cards"
)

// Classification says how a row's effective price entered the totals.
type Classification int

const (
	// Priced rows contribute their effective price as-is.
	Priced Classification = iota
	// NoPriceData rows had no listed price; the default card price is
	// substituted in the totals while the row keeps its 0.
	NoPriceData
	// FetchOrParseError rows carry the error sentinel; the default card
	// price is substituted in the totals while the row keeps the sentinel.
	FetchOrParseError
)

// Report is the finished valuation: rows restored to input order plus the
// derived totals and the classification lists surfaced to the operator.
type Report struct {
	Rows        []cards.Valuation
	TotalBuy    float64
	TotalSell   float64
	TotalCount  int
	NoPriceRows []cards.Valuation
	ErrorRows   []cards.Valuation
}

// Classify maps one valuation to its totaling treatment.
func Classify(v cards.Valuation) Classification {
	switch v.EffectivePrice {
	case 0:
		return NoPriceData
	case cards.ErrorSentinel:
		return FetchOrParseError
	default:
		return Priced
	}
}

// Build assembles the final report from the unordered valuation set.
//
// The fetch pool makes no ordering promise, so the sort on row id here is
// the only ordering guarantee in the whole pipeline. Defaulted prices feed
// the totals only; each row keeps its raw 0 or sentinel so "no data",
// "priced at zero" and "real price" stay distinguishable downstream.
func Build(valuations []cards.Valuation) Report {
	rows := make([]cards.Valuation, len(valuations))
	copy(rows, valuations)
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].RowID < rows[j].RowID
	})

	rep := Report{Rows: rows}
	for _, row := range rows {
		price := row.EffectivePrice
		switch Classify(row) {
		case NoPriceData:
			rep.NoPriceRows = append(rep.NoPriceRows, row)
			price = cards.DefaultCardPrice
		case FetchOrParseError:
			rep.ErrorRows = append(rep.ErrorRows, row)
			price = cards.DefaultCardPrice
		}

		rep.TotalBuy += price * float64(row.Count)
		rep.TotalCount += row.Count
	}

	rep.TotalSell = rep.TotalBuy - float64(rep.TotalCount)*cards.OverheadPerCard
	return rep
}
