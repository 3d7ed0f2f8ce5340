package report

import (
	"github.com/rs/zerolog/log"

	"card_valuation/internal/cards"
)

// Summarize emits the operator-facing run summary: every row in order, the
// NoPriceData and FetchOrParseError lists (always, even when empty), and
// the two totals to two decimal places.
func Summarize(rep Report) {
	for i, row := range rep.Rows {
		log.Info().Msgf("%d: %s, %s, %s, count: %d: Gradeworthy: %t, $%.2f",
			i, row.SetID, row.CardID, row.TargetGrade, row.Count, row.Gradeworthy, row.EffectivePrice)
	}

	log.Info().Int("rows", len(rep.NoPriceRows)).Msg("Rows without price data")
	for _, row := range rep.NoPriceRows {
		log.Info().Msgf("%d: No price data: %s %s, defaulting to $%.2f",
			row.RowID, row.SetID, row.CardID, cards.DefaultCardPrice)
	}

	log.Info().Int("rows", len(rep.ErrorRows)).Msg("Rows with fetch or parse errors")
	for _, row := range rep.ErrorRows {
		log.Info().Msgf("%d: Card id not found: %s %s, defaulting to $%.2f",
			row.RowID, row.SetID, row.CardID, cards.DefaultCardPrice)
	}

	log.Info().Msgf("Total buy: $%.2f", rep.TotalBuy)
	log.Info().Msgf("Total sell: $%.2f", rep.TotalSell)
}
