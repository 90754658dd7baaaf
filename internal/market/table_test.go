package market

import (
	"errors"
	"testing"
)

func entryWithID(id int64) RawEntry {
	return RawEntry{FantasyPlayer: &RawFantasyPlayer{Player: &RawPlayer{ID: i64(id)}}}
}

func TestBuildTable_PreservesInputOrder(t *testing.T) {
	rows, err := BuildTable([]RawEntry{entryWithID(3), entryWithID(1), entryWithID(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int64{3, 1, 2}
	if len(rows) != len(want) {
		t.Fatalf("rows = %d, want %d", len(rows), len(want))
	}
	for i, id := range want {
		if *rows[i].PlayerID != id {
			t.Errorf("rows[%d].PlayerID = %d, want %d", i, *rows[i].PlayerID, id)
		}
	}
}

func TestBuildTable_DropsRowsWithoutPlayerID(t *testing.T) {
	rows, err := BuildTable([]RawEntry{entryWithID(5), {}, entryWithID(6)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 (id-less row dropped)", len(rows))
	}
}

func TestBuildTable_EmptyIsHardError(t *testing.T) {
	_, err := BuildTable(nil)
	if !errors.Is(err, ErrEmptyMarket) {
		t.Fatalf("err = %v, want ErrEmptyMarket", err)
	}

	_, err = BuildTable([]RawEntry{{}, {}})
	if !errors.Is(err, ErrEmptyMarket) {
		t.Fatalf("err = %v, want ErrEmptyMarket when every row lacks a player id", err)
	}
}

func TestFilterByOwnership(t *testing.T) {
	rows := []Row{
		{PlayerID: i64(1), OwnedPercentage: f64(80)},
		{PlayerID: i64(2), OwnedPercentage: f64(10)},
		{PlayerID: i64(3)}, // no ownership → treated as 0
	}

	got := FilterByOwnership(rows, f64(5), f64(50))
	if len(got) != 1 || *got[0].PlayerID != 2 {
		t.Fatalf("bounded filter kept %d rows, want exactly player 2", len(got))
	}

	got = FilterByOwnership(rows, nil, nil)
	if len(got) != 3 {
		t.Errorf("open filter kept %d rows, want 3", len(got))
	}

	got = FilterByOwnership(rows, nil, f64(50))
	if len(got) != 2 {
		t.Errorf("max-only filter kept %d rows, want 2 (null counts as 0)", len(got))
	}
}

func TestSortRows_DescendingWithNilLast(t *testing.T) {
	rows := []Row{
		{PlayerID: i64(1), Price: f64(5)},
		{PlayerID: i64(2)},
		{PlayerID: i64(3), Price: f64(9)},
	}
	SortRows(rows, SortByPrice)

	want := []int64{3, 1, 2}
	for i, id := range want {
		if *rows[i].PlayerID != id {
			t.Errorf("rows[%d].PlayerID = %d, want %d", i, *rows[i].PlayerID, id)
		}
	}
}

func TestSortRows_UnknownKeyFallsBackToPrice(t *testing.T) {
	rows := []Row{
		{PlayerID: i64(1), Price: f64(1)},
		{PlayerID: i64(2), Price: f64(2)},
	}
	SortRows(rows, "bogus")
	if *rows[0].PlayerID != 2 {
		t.Errorf("rows[0].PlayerID = %d, want 2", *rows[0].PlayerID)
	}
}
