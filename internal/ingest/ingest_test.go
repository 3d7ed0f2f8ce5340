package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"card_valuation/internal/cards"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "collection.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	return path
}

func TestReadRequests(t *testing.T) {
	path := writeInput(t, `set_id,card_id,grade_id,count,card_number,notes
pokemon-base-set,charizard-4,9,2,4,holo
pokemon-base-set,pikachu-58,,,58,
pokemon-jungle,snorlax-11,x,3,11,traded
`)

	requests, err := ReadRequests(path)
	if err != nil {
		t.Fatalf("ReadRequests failed: %v", err)
	}
	if len(requests) != 3 {
		t.Fatalf("got %d requests, want 3", len(requests))
	}

	first := requests[0]
	if first.TargetGrade != cards.Grade9 || first.Count != 2 || first.Notes != "holo" {
		t.Errorf("first request = %+v", first)
	}

	// Blank grade code and count take their documented defaults.
	second := requests[1]
	if second.TargetGrade != cards.Ungraded {
		t.Errorf("blank grade = %v, want Ungraded", second.TargetGrade)
	}
	if second.Count != 1 {
		t.Errorf("blank count = %d, want 1", second.Count)
	}

	// Unrecognized grade code also defaults to Ungraded.
	if requests[2].TargetGrade != cards.Ungraded {
		t.Errorf("unknown grade code = %v, want Ungraded", requests[2].TargetGrade)
	}

	for i, req := range requests {
		if req.RowID != i {
			t.Errorf("request %d has RowID %d", i, req.RowID)
		}
	}
}

func TestReadRequestsDropsInvalidRows(t *testing.T) {
	path := writeInput(t, `set_id,card_id,grade_id,count,card_number,notes
pokemon-base-set,charizard-4,9,2,4,
short,row
pokemon-base-set,sold-out-1,u,0,9,
,missing-set,u,1,1,
pokemon-fossil,aerodactyl-1,7,1,1,
`)

	requests, err := ReadRequests(path)
	if err != nil {
		t.Fatalf("ReadRequests failed: %v", err)
	}
	if len(requests) != 2 {
		t.Fatalf("got %d requests, want 2", len(requests))
	}

	// Row ids stay dense over the kept rows.
	if requests[0].CardID != "charizard-4" || requests[0].RowID != 0 {
		t.Errorf("first kept request = %+v", requests[0])
	}
	if requests[1].CardID != "aerodactyl-1" || requests[1].RowID != 1 {
		t.Errorf("second kept request = %+v", requests[1])
	}
}

func TestReadRequestsMissingFile(t *testing.T) {
	if _, err := ReadRequests(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}
