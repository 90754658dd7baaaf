// Package trend compares market snapshots across rounds and reports
// per-player ownership movement.
package trend

import (
	"sort"
	"time"

	"afcon-fantasy-tracker/internal/market"
)

// PlayerDelta describes one player's movement between two rounds. Entered
// marks a player absent from the earlier round, Left one absent from the
// later round; Change is nil unless both rounds carry an ownership figure.
type PlayerDelta struct {
	PlayerID    int64    `json:"player_id"`
	Name        *string  `json:"name"`
	Team        *string  `json:"team"`
	Position    *string  `json:"position"`
	OwnedBefore *float64 `json:"owned_before"`
	OwnedAfter  *float64 `json:"owned_after"`
	Change      *float64 `json:"change"`
	Entered     bool     `json:"entered,omitempty"`
	Left        bool     `json:"left,omitempty"`
}

// Report is the movement report between two rounds of the same market.
type Report struct {
	FromRound      int           `json:"from_round"`
	ToRound        int           `json:"to_round"`
	GeneratedAtUTC string        `json:"generated_at_utc"`
	Deltas         []PlayerDelta `json:"deltas"`
}

// BuildReport diffs two normalized market tables. Rows without a player id
// never reach a snapshot, so every row here is keyed by one. Deltas are
// ordered by absolute ownership change descending; entries without a
// computable change sort after those with one.
func BuildReport(fromRound, toRound int, prev, curr []market.Row) *Report {
	prevBy := make(map[int64]market.Row, len(prev))
	for _, r := range prev {
		if r.PlayerID != nil {
			prevBy[*r.PlayerID] = r
		}
	}

	deltas := make([]PlayerDelta, 0, len(curr))
	seen := make(map[int64]bool, len(curr))
	for _, r := range curr {
		if r.PlayerID == nil {
			continue
		}
		id := *r.PlayerID
		seen[id] = true

		d := PlayerDelta{
			PlayerID:   id,
			Name:       r.Name,
			Team:       r.Team,
			Position:   r.Position,
			OwnedAfter: r.OwnedPercentage,
		}
		if p, ok := prevBy[id]; ok {
			d.OwnedBefore = p.OwnedPercentage
			if d.OwnedBefore != nil && d.OwnedAfter != nil {
				change := *d.OwnedAfter - *d.OwnedBefore
				d.Change = &change
			}
		} else {
			d.Entered = true
		}
		deltas = append(deltas, d)
	}

	for _, r := range prev {
		if r.PlayerID == nil || seen[*r.PlayerID] {
			continue
		}
		deltas = append(deltas, PlayerDelta{
			PlayerID:    *r.PlayerID,
			Name:        r.Name,
			Team:        r.Team,
			Position:    r.Position,
			OwnedBefore: r.OwnedPercentage,
			Left:        true,
		})
	}

	sort.SliceStable(deltas, func(i, j int) bool {
		return absChange(deltas[i]) > absChange(deltas[j])
	})

	return &Report{
		FromRound:      fromRound,
		ToRound:        toRound,
		GeneratedAtUTC: time.Now().UTC().Format(time.RFC3339),
		Deltas:         deltas,
	}
}

func absChange(d PlayerDelta) float64 {
	if d.Change == nil {
		return -1
	}
	if *d.Change < 0 {
		return -*d.Change
	}
	return *d.Change
}
