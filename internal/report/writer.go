package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

var csvHeader = []string{"set_id", "card_id", "grade_id", "count", "price", "gradeworthy", "notes"}

// WriteCSV persists the report as a delimited table: one record per row
// with the raw price preserved (0 and the error sentinel included), then
// the two totals rows.
func WriteCSV(path string, rep Report) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rep.Rows {
		record := []string{
			row.SetID,
			row.CardID,
			row.TargetGrade.String(),
			strconv.Itoa(row.Count),
			formatPrice(row.EffectivePrice),
			strconv.FormatBool(row.Gradeworthy),
			row.Notes,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row.RowID, err)
		}
	}

	totals := [][]string{
		{"total buy", "", "", "", formatPrice(rep.TotalBuy), "", ""},
		{"total sell", "", "", "", formatPrice(rep.TotalSell), "", ""},
	}
	for _, record := range totals {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write totals row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}

	log.Debug().
		Str("path", path).
		Int("rows", len(rep.Rows)).
		Msg("Wrote report file")

	return nil
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
