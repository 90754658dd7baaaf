package market

import "testing"

func i64(v int64) *int64       { return &v }
func f64(v float64) *float64   { return &v }
func str(v string) *string     { return &v }
func intp(v int) *int          { return &v }

func sampleEntry() RawEntry {
	return RawEntry{
		ID:             i64(900),
		RoundPlayerID:  i64(77),
		Price:          f64(9.5),
		ExpectedPoints: f64(4.2),
		FantasyPlayer: &RawFantasyPlayer{
			ID:              i64(500),
			Player:          &RawPlayer{ID: i64(11), Name: str("Achraf Hakimi"), Slug: str("achraf-hakimi"), Position: str("D")},
			Team:            &RawTeam{ID: i64(3), Name: str("Morocco")},
			AverageScore:    f64(5.1),
			TotalScore:      f64(51),
			Form:            f64(6.0),
			OwnedPercentage: f64(42.7),
			OwnedCount:      intp(1200),
		},
		Fixtures: []RawFixture{
			{EventID: i64(2), EventStartTimestamp: i64(300), FixtureDifficulty: f64(4), Team: &RawTeam{ID: i64(9), Name: str("Ghana")}},
			{EventID: i64(1), EventStartTimestamp: i64(100), FixtureDifficulty: f64(2), Team: &RawTeam{ID: i64(8), Name: str("Senegal")}},
		},
	}
}

func TestNormalizeEntry_FlattensNestedFields(t *testing.T) {
	row := NormalizeEntry(sampleEntry())

	if row.PlayerID == nil || *row.PlayerID != 11 {
		t.Fatalf("PlayerID = %v, want 11", row.PlayerID)
	}
	if row.Name == nil || *row.Name != "Achraf Hakimi" {
		t.Errorf("Name = %v, want Achraf Hakimi", row.Name)
	}
	if row.Team == nil || *row.Team != "Morocco" {
		t.Errorf("Team = %v, want Morocco", row.Team)
	}
	if row.Price == nil || *row.Price != 9.5 {
		t.Errorf("Price = %v, want 9.5", row.Price)
	}
	if row.TotalPoints == nil || *row.TotalPoints != 51 {
		t.Errorf("TotalPoints = %v, want 51", row.TotalPoints)
	}
	if row.FantasyID == nil || *row.FantasyID != 500 {
		t.Errorf("FantasyID = %v, want 500 (fantasyPlayer.id wins over entry id)", row.FantasyID)
	}
	if row.FixturesCount != 2 {
		t.Errorf("FixturesCount = %d, want 2", row.FixturesCount)
	}
}

func TestNormalizeEntry_EmptyRecordDegradesToNil(t *testing.T) {
	row := NormalizeEntry(RawEntry{})

	if row.PlayerID != nil {
		t.Errorf("PlayerID = %v, want nil", row.PlayerID)
	}
	if row.Name != nil || row.Team != nil || row.Price != nil {
		t.Errorf("expected nil identity fields, got name=%v team=%v price=%v", row.Name, row.Team, row.Price)
	}
	if row.EventStartISOUTC != nil {
		t.Errorf("EventStartISOUTC = %v, want nil", row.EventStartISOUTC)
	}
	if row.FixturesCount != 0 {
		t.Errorf("FixturesCount = %d, want 0", row.FixturesCount)
	}
}

func TestNormalizeEntry_TopLevelPlayerFallback(t *testing.T) {
	e := RawEntry{
		Player: &RawPlayer{ID: i64(22), Name: str("Mohamed Salah")},
		Team:   &RawTeam{ID: i64(4), Name: str("Egypt")},
	}
	row := NormalizeEntry(e)

	if row.PlayerID == nil || *row.PlayerID != 22 {
		t.Fatalf("PlayerID = %v, want 22 from top-level player", row.PlayerID)
	}
	if row.Team == nil || *row.Team != "Egypt" {
		t.Errorf("Team = %v, want Egypt from top-level team", row.Team)
	}
}

func TestNormalizeEntry_PriceFallsBackToFantasyPrice(t *testing.T) {
	e := RawEntry{FantasyPlayer: &RawFantasyPlayer{Price: f64(7.0)}}
	row := NormalizeEntry(e)
	if row.Price == nil || *row.Price != 7.0 {
		t.Errorf("Price = %v, want 7.0 from fantasyPlayer.price", row.Price)
	}
}

func TestNextFixture_EarliestDatedWins(t *testing.T) {
	fixtures := []RawFixture{
		{EventID: i64(1), EventStartTimestamp: i64(300)},
		{EventID: i64(2), EventStartTimestamp: i64(100)},
		{EventID: i64(3)},
	}
	next := nextFixture(fixtures)
	if next.EventStartTimestamp == nil || *next.EventStartTimestamp != 100 {
		t.Errorf("next fixture ts = %v, want 100", next.EventStartTimestamp)
	}
}

func TestNextFixture_AllUndatedFallsBackToFirst(t *testing.T) {
	fixtures := []RawFixture{
		{EventID: i64(7)},
		{EventID: i64(8)},
	}
	next := nextFixture(fixtures)
	if next.EventID == nil || *next.EventID != 7 {
		t.Errorf("next fixture event id = %v, want 7 (first in input order)", next.EventID)
	}
}

func TestNextFixture_NoFixtures(t *testing.T) {
	next := nextFixture(nil)
	if next.EventID != nil || next.EventStartTimestamp != nil {
		t.Errorf("expected zero fixture, got %+v", next)
	}
}

func TestNormalizeEntry_KickoffISO(t *testing.T) {
	e := RawEntry{Fixtures: []RawFixture{{EventStartTimestamp: i64(1737331200)}}}
	row := NormalizeEntry(e)
	if row.EventStartISOUTC == nil {
		t.Fatal("EventStartISOUTC = nil, want value")
	}
	if *row.EventStartISOUTC != "2025-01-20T00:00:00Z" {
		t.Errorf("EventStartISOUTC = %s, want 2025-01-20T00:00:00Z", *row.EventStartISOUTC)
	}
}
