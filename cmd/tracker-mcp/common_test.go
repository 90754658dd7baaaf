package main

import (
	"testing"

	"afcon-fantasy-tracker/internal/artifact"
	"afcon-fantasy-tracker/internal/enrich"
	"afcon-fantasy-tracker/internal/league"
	"afcon-fantasy-tracker/internal/market"
	"afcon-fantasy-tracker/internal/store"
)

func i64(v int64) *int64     { return &v }
func f64(v float64) *float64 { return &v }
func str(v string) *string   { return &v }

// tmpCfg returns a ServerConfig rooted at a temp derived dir.
func tmpCfg(t *testing.T) ServerConfig {
	t.Helper()
	return ServerConfig{
		DerivedRoot:  t.TempDir(),
		DefaultRound: 803,
	}
}

func marketRow(id int64, name, team, pos string, owned float64) market.Row {
	return market.Row{
		PlayerID:        i64(id),
		Name:            str(name),
		Team:            str(team),
		Position:        str(pos),
		OwnedPercentage: f64(owned),
	}
}

// writeMarketSnapshot stores a market snapshot for round 803.
func writeMarketSnapshot(t *testing.T, cfg ServerConfig, rows ...market.Row) {
	t.Helper()
	st := store.NewJSONStore(cfg.DerivedRoot)
	err := artifact.WriteMarketSnapshot(st, artifact.MarketSnapshot{
		RunID:          "run-m",
		RoundID:        803,
		GeneratedAtUTC: "2026-01-20T12:00:00Z",
		Rows:           rows,
	})
	if err != nil {
		t.Fatalf("write market snapshot: %v", err)
	}
}

// writeOwnershipSnapshot stores an ownership snapshot for league 87294,
// round 803.
func writeOwnershipSnapshot(t *testing.T, cfg ServerConfig, rows ...enrich.Row) {
	t.Helper()
	st := store.NewJSONStore(cfg.DerivedRoot)
	err := artifact.WriteOwnershipSnapshot(st, artifact.OwnershipSnapshot{
		RunID:            "run-o",
		LeagueID:         87294,
		RoundID:          803,
		GeneratedAtUTC:   "2026-01-20T13:00:00Z",
		ParticipantCount: 4,
		Participants: []league.Participant{
			{UserID: "u1", TeamName: "Alpha FC"},
			{UserID: "u2", TeamName: "Bravo FC"},
		},
		Rows: rows,
	})
	if err != nil {
		t.Fatalf("write ownership snapshot: %v", err)
	}
}
