package pricing

import (
	"card_valuation/internal/cards"
)

// Evaluate applies the grading-economics decision to one fetched quote.
//
// Grading is worth paying for only when the graded resale value, net of the
// grading fee, strictly beats the raw ungraded value. Cards already targeted
// at Ungraded never enter that comparison. A failed fetch or an unavailable
// quote yields the error sentinel with no further computation.
func Evaluate(req cards.ItemRequest, quote cards.PriceQuote, fetchErr error) cards.Valuation {
	v := cards.Valuation{
		RowID:       req.RowID,
		SetID:       req.SetID,
		CardID:      req.CardID,
		TargetGrade: req.TargetGrade,
		Count:       req.Count,
		Notes:       req.Notes,
	}

	if fetchErr != nil || quote.Unavailable() {
		v.EffectivePrice = cards.ErrorSentinel
		return v
	}

	ungraded := quote.Prices[cards.Ungraded]
	if req.TargetGrade == cards.Ungraded {
		v.EffectivePrice = ungraded
		return v
	}

	graded := quote.Prices[req.TargetGrade] - cards.GradingCost
	if graded > ungraded {
		v.EffectivePrice = graded
		v.Gradeworthy = true
		return v
	}

	v.EffectivePrice = ungraded
	return v
}
