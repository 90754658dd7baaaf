package main

import (
	"fmt"
	"strings"

	"afcon-fantasy-tracker/internal/artifact"
	"afcon-fantasy-tracker/internal/metrics"
	"afcon-fantasy-tracker/internal/store"
)

// resolveRound falls back to the configured default round when a call
// passes 0.
func resolveRound(cfg ServerConfig, round int) (int, error) {
	if round > 0 {
		return round, nil
	}
	if cfg.DefaultRound > 0 {
		return cfg.DefaultRound, nil
	}
	return 0, fmt.Errorf("round is required")
}

// resolveLeague falls back to the configured default league.
func resolveLeague(cfg ServerConfig, league int) (int, error) {
	if league > 0 {
		return league, nil
	}
	if cfg.DefaultLeague > 0 {
		return cfg.DefaultLeague, nil
	}
	return 0, fmt.Errorf("league is required")
}

func loadMarketSnapshot(cfg ServerConfig, round int) (artifact.MarketSnapshot, error) {
	st := store.NewJSONStore(cfg.DerivedRoot)
	snap, err := artifact.ReadMarketSnapshot(st, round)
	if err != nil {
		return artifact.MarketSnapshot{}, err
	}
	metrics.SetSnapshotRows("market", snap.RowCount)
	return snap, nil
}

func loadOwnershipSnapshot(cfg ServerConfig, leagueID, round int) (artifact.OwnershipSnapshot, error) {
	st := store.NewJSONStore(cfg.DerivedRoot)
	snap, err := artifact.ReadOwnershipSnapshot(st, leagueID, round)
	if err != nil {
		return artifact.OwnershipSnapshot{}, err
	}
	metrics.SetSnapshotRows("ownership", snap.RowCount)
	return snap, nil
}

// matchFold reports whether a nullable cell equals want, case-insensitively.
// An empty want matches everything.
func matchFold(cell *string, want string) bool {
	if want == "" {
		return true
	}
	if cell == nil {
		return false
	}
	return strings.EqualFold(*cell, want)
}
