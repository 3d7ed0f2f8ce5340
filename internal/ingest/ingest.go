package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"card_valuation/internal/cards"

	"github.com/rs/zerolog/log"
)

// Input columns. card_number is carried in the source file but plays no
// part in valuation.
const (
	colSetID = iota
	colCardID
	colGradeCode
	colCount
	colCardNumber
	colNotes
	numColumns
)

// ReadRequests loads the collection CSV into ItemRequests. The first row is
// a header. Blank or unrecognized grade codes default to Ungraded, a blank
// count defaults to 1, and rows with a zero count are dropped. Row ids are
// dense zero-based positions over the kept rows.
func ReadRequests(path string) ([]cards.ItemRequest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var requests []cards.ItemRequest
	for i, row := range rows {
		if i == 0 {
			continue // header
		}

		req, ok := parseRow(row, i+1)
		if !ok {
			continue
		}

		req.RowID = len(requests)
		requests = append(requests, req)
	}

	log.Debug().
		Int("total_rows", len(rows)).
		Int("requests", len(requests)).
		Msg("Loaded input file")

	return requests, nil
}

// parseRow validates and coerces one data row. Bad rows are skipped, never
// fatal: a single malformed line must not sink the run.
func parseRow(row []string, lineNum int) (cards.ItemRequest, bool) {
	if len(row) < numColumns {
		log.Warn().
			Int("line", lineNum).
			Int("columns", len(row)).
			Msg("Skipping row with insufficient columns")
		return cards.ItemRequest{}, false
	}

	setID := strings.TrimSpace(row[colSetID])
	cardID := strings.TrimSpace(row[colCardID])
	if setID == "" || cardID == "" {
		log.Warn().
			Int("line", lineNum).
			Str("set_id", setID).
			Str("card_id", cardID).
			Msg("Skipping row with missing card identity")
		return cards.ItemRequest{}, false
	}

	count := 1
	if countStr := strings.TrimSpace(row[colCount]); countStr != "" {
		parsed, err := strconv.Atoi(countStr)
		if err != nil {
			log.Warn().
				Int("line", lineNum).
				Str("count", countStr).
				Msg("Skipping row with unparseable count")
			return cards.ItemRequest{}, false
		}
		count = parsed
	}
	if count == 0 {
		log.Debug().
			Int("line", lineNum).
			Str("set_id", setID).
			Str("card_id", cardID).
			Msg("Skipping zero-count row")
		return cards.ItemRequest{}, false
	}

	return cards.ItemRequest{
		SetID:       setID,
		CardID:      cardID,
		TargetGrade: cards.ParseGradeCode(strings.TrimSpace(row[colGradeCode])),
		Count:       count,
		Notes:       row[colNotes],
	}, true
}
