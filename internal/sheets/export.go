package sheets

import (
	"context"
	"fmt"
	"time"

	"card_valuation/internal/config"
	"card_valuation/internal/report"
	"card_valuation/internal/retry"

	"github.com/rs/zerolog/log"
)

// ExportReport appends the finished valuation to a spreadsheet: a dated
// header row, every per-card row (raw price preserved, as in the CSV), and
// the two totals rows.
func ExportReport(ctx context.Context, client *Client, spreadsheetID, sheetRange string, rep report.Report) error {
	rows := buildExportRows(rep)

	log.Debug().
		Str("spreadsheet_id", spreadsheetID).
		Str("range", sheetRange).
		Int("rows", len(rows)).
		Msg("Exporting report to sheet")

	_, err := retry.WithRetry(ctx, config.Default.SheetExport, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, client.AppendRows(ctx, spreadsheetID, sheetRange, rows)
	})
	if err != nil {
		return fmt.Errorf("failed to export report: %w", err)
	}

	log.Info().
		Int("rows", len(rep.Rows)).
		Float64("total_buy", rep.TotalBuy).
		Float64("total_sell", rep.TotalSell).
		Msg("Report exported to sheet")

	return nil
}

func buildExportRows(rep report.Report) [][]interface{} {
	rows := make([][]interface{}, 0, len(rep.Rows)+3)

	runDate := time.Now().Format("2006-01-02 15:04")
	rows = append(rows, []interface{}{"Valuation run " + runDate, "", "", "", "", "", ""})

	for _, row := range rep.Rows {
		rows = append(rows, []interface{}{
			row.SetID,
			row.CardID,
			row.TargetGrade.String(),
			row.Count,
			row.EffectivePrice,
			row.Gradeworthy,
			row.Notes,
		})
	}

	rows = append(rows,
		[]interface{}{"total buy", "", "", "", rep.TotalBuy, "", ""},
		[]interface{}{"total sell", "", "", "", rep.TotalSell, "", ""},
	)

	return rows
}
