package artifact

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"afcon-fantasy-tracker/internal/enrich"
	"afcon-fantasy-tracker/internal/market"
	"afcon-fantasy-tracker/internal/store"
)

func i64(v int64) *int64     { return &v }
func f64(v float64) *float64 { return &v }
func str(v string) *string   { return &v }

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return records
}

func TestWriteOwnershipCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "enriched.csv")
	rows := []enrich.Row{
		{
			Row: market.Row{
				PlayerID:        i64(1),
				Name:            str("Sadio Mané"),
				Team:            str("Senegal"),
				Position:        str("F"),
				TotalPoints:     f64(48),
				OwnedPercentage: f64(61.2),
			},
			LeagueOwnPct:   f64(0.75),
			LeagueStartPct: f64(0.5),
			LeagueCptPct:   f64(0.25),
			LeagueOwners:   []string{"Alpha FC", "Bravo FC", "Charlie FC"},
		},
		{
			Row: market.Row{PlayerID: i64(2), Name: str("Unowned Player")},
		},
	}

	if err := WriteOwnershipCSV(path, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records := readCSV(t, path)
	if !reflect.DeepEqual(records[0], OwnershipHeader) {
		t.Errorf("header = %v, want %v", records[0], OwnershipHeader)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3 (header + 2 rows)", len(records))
	}

	first := records[1]
	if first[0] != "Sadio Mané" || first[1] != "Senegal" || first[2] != "F" {
		t.Errorf("identity cells = %v", first[:3])
	}
	if first[3] != "48" || first[4] != "48" {
		t.Errorf("points cells = %v, want total mirrored into round points", first[3:5])
	}
	if first[6] != "0.75" || first[7] != "0.5" || first[8] != "0.25" {
		t.Errorf("league rate cells = %v, want fractions", first[6:9])
	}
	if first[9] != "Alpha FC, Bravo FC, Charlie FC" {
		t.Errorf("owners cell = %q", first[9])
	}

	second := records[2]
	for _, idx := range []int{5, 6, 7, 8} {
		if second[idx] != "" {
			t.Errorf("unmatched row cell %d = %q, want empty", idx, second[idx])
		}
	}
}

func TestWriteMarketCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "market.csv")
	rows := []market.Row{
		{PlayerID: i64(9), Name: str("Mohamed Salah"), Price: f64(11.5), FixturesCount: 3},
	}

	if err := WriteMarketCSV(path, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records := readCSV(t, path)
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[1][0] != "9" || records[1][1] != "Mohamed Salah" || records[1][6] != "11.5" {
		t.Errorf("row = %v", records[1])
	}
}

func TestWriteCSV_LeavesNoTempFilesBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "enriched.csv")
	if err := WriteOwnershipCSV(path, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	st := store.NewJSONStore(t.TempDir())

	snap := OwnershipSnapshot{
		RunID:            "run-1",
		LeagueID:         87294,
		RoundID:          803,
		GeneratedAtUTC:   "2026-01-20T12:00:00Z",
		ParticipantCount: 4,
		Rows: []enrich.Row{
			{Row: market.Row{PlayerID: i64(1)}, LeagueOwnPct: f64(0.25)},
		},
	}
	if err := WriteOwnershipSnapshot(st, snap); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := ReadOwnershipSnapshot(st, 87294, 803)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.RunID != "run-1" || got.ParticipantCount != 4 || got.RowCount != 1 {
		t.Errorf("snapshot = %+v", got)
	}
	if got.Rows[0].LeagueOwnPct == nil || *got.Rows[0].LeagueOwnPct != 0.25 {
		t.Errorf("row rate = %v, want 0.25", got.Rows[0].LeagueOwnPct)
	}
}

func TestReadMarketSnapshot_Missing(t *testing.T) {
	st := store.NewJSONStore(t.TempDir())
	if _, err := ReadMarketSnapshot(st, 999); err == nil {
		t.Fatal("expected error for missing snapshot")
	}
}
