package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"card_valuation/internal/cards"
)

func TestWriteCSV(t *testing.T) {
	rep := Build([]cards.Valuation{
		{RowID: 0, SetID: "pokemon-base-set", CardID: "charizard-4", TargetGrade: cards.Grade9, Count: 2, EffectivePrice: 120.5, Gradeworthy: true, Notes: "holo"},
		{RowID: 1, SetID: "pokemon-base-set", CardID: "pikachu-58", TargetGrade: cards.Ungraded, Count: 1, EffectivePrice: 0},
		{RowID: 2, SetID: "pokemon-jungle", CardID: "missing-1", TargetGrade: cards.Grade7, Count: 1, EffectivePrice: cards.ErrorSentinel},
	})

	path := filepath.Join(t.TempDir(), "prices_test.csv")
	if err := WriteCSV(path, rep); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open written file: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}

	// header + 3 rows + 2 totals
	if len(records) != 6 {
		t.Fatalf("got %d records, want 6", len(records))
	}

	if records[0][0] != "set_id" || records[0][4] != "price" {
		t.Errorf("unexpected header: %v", records[0])
	}

	// Raw values survive in the per-row records.
	if records[1][4] != "120.5" || records[1][5] != "true" {
		t.Errorf("priced row = %v", records[1])
	}
	if records[2][4] != "0" {
		t.Errorf("no-data row price = %q, want raw 0", records[2][4])
	}
	if records[3][4] != "-1" {
		t.Errorf("error row price = %q, want raw sentinel", records[3][4])
	}

	if records[4][0] != "total buy" || records[5][0] != "total sell" {
		t.Errorf("totals rows = %v, %v", records[4], records[5])
	}
}
