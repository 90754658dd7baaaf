package artifact

import (
	"fmt"

	"afcon-fantasy-tracker/internal/enrich"
	"afcon-fantasy-tracker/internal/league"
	"afcon-fantasy-tracker/internal/market"
	"afcon-fantasy-tracker/internal/store"
)

// MarketSnapshot is the normalized market table for one round, stamped
// with run metadata.
type MarketSnapshot struct {
	RunID          string       `json:"run_id"`
	RoundID        int          `json:"round_id"`
	GeneratedAtUTC string       `json:"generated_at_utc"`
	RowCount       int          `json:"row_count"`
	Rows           []market.Row `json:"rows"`
}

// OwnershipSnapshot is the enriched table plus the league context it was
// computed from.
type OwnershipSnapshot struct {
	RunID            string               `json:"run_id"`
	LeagueID         int                  `json:"league_id"`
	RoundID          int                  `json:"round_id"`
	GeneratedAtUTC   string               `json:"generated_at_utc"`
	ParticipantCount int                  `json:"participant_count"`
	Participants     []league.Participant `json:"participants"`
	RowCount         int                  `json:"row_count"`
	Rows             []enrich.Row         `json:"rows"`
}

func MarketSnapshotRel(roundID int) string {
	return fmt.Sprintf("market/round_%d.json", roundID)
}

func OwnershipSnapshotRel(leagueID, roundID int) string {
	return fmt.Sprintf("ownership/league_%d_round_%d.json", leagueID, roundID)
}

func WriteMarketSnapshot(st *store.JSONStore, snap MarketSnapshot) error {
	snap.RowCount = len(snap.Rows)
	return st.WriteJSON(MarketSnapshotRel(snap.RoundID), snap)
}

func ReadMarketSnapshot(st *store.JSONStore, roundID int) (MarketSnapshot, error) {
	var snap MarketSnapshot
	if err := st.ReadJSON(MarketSnapshotRel(roundID), &snap); err != nil {
		return MarketSnapshot{}, fmt.Errorf("market snapshot for round %d: %w", roundID, err)
	}
	return snap, nil
}

func WriteOwnershipSnapshot(st *store.JSONStore, snap OwnershipSnapshot) error {
	snap.RowCount = len(snap.Rows)
	return st.WriteJSON(OwnershipSnapshotRel(snap.LeagueID, snap.RoundID), snap)
}

func ReadOwnershipSnapshot(st *store.JSONStore, leagueID, roundID int) (OwnershipSnapshot, error) {
	var snap OwnershipSnapshot
	if err := st.ReadJSON(OwnershipSnapshotRel(leagueID, roundID), &snap); err != nil {
		return OwnershipSnapshot{}, fmt.Errorf("ownership snapshot for league %d round %d: %w", leagueID, roundID, err)
	}
	return snap, nil
}
