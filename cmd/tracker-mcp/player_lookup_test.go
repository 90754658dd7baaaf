package main

import "testing"

func TestLookupPlayer_MarketOnly(t *testing.T) {
	cfg := tmpCfg(t)
	writeMarketSnapshot(t, cfg,
		marketRow(1, "Salah", "Egypt", "F", 60),
		marketRow(2, "Hakimi", "Morocco", "D", 40),
	)

	out, err := lookupPlayer(cfg, PlayerLookupArgs{PlayerID: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Market == nil || *out.Market.Name != "Hakimi" {
		t.Fatalf("Market = %+v, want Hakimi", out.Market)
	}
	if out.League != nil {
		t.Errorf("League = %+v, want nil without a league arg", out.League)
	}
}

func TestLookupPlayer_WithLeague(t *testing.T) {
	cfg := tmpCfg(t)
	writeOwnershipSnapshot(t, cfg, enrichRow(1, "Salah", "Egypt", "F", f64(0.75)))

	out, err := lookupPlayer(cfg, PlayerLookupArgs{PlayerID: 1, League: 87294})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Market == nil || *out.Market.Name != "Salah" {
		t.Fatalf("Market = %+v, want Salah", out.Market)
	}
	if out.League == nil || out.League.LeagueOwnPct == nil || *out.League.LeagueOwnPct != 0.75 {
		t.Errorf("League = %+v, want ownership rate 0.75", out.League)
	}
}

func TestLookupPlayer_NotFound(t *testing.T) {
	cfg := tmpCfg(t)
	writeMarketSnapshot(t, cfg, marketRow(1, "Salah", "Egypt", "F", 60))

	if _, err := lookupPlayer(cfg, PlayerLookupArgs{PlayerID: 99}); err == nil {
		t.Fatal("expected error for unknown player")
	}
}

func TestLookupPlayer_IDRequired(t *testing.T) {
	cfg := tmpCfg(t)
	if _, err := lookupPlayer(cfg, PlayerLookupArgs{}); err == nil {
		t.Fatal("expected error for missing player_id")
	}
}
