// Package enrich joins the round market table with a league's ownership
// aggregate and orders the result for the output artifact.
package enrich

import (
	"sort"

	"afcon-fantasy-tracker/internal/league"
	"afcon-fantasy-tracker/internal/market"
)

// Row is a market row extended with league ownership rates. The rates are
// fractions in [0,1]; they are nil when the player appears in no squad in
// the league. Scaling to percent is a presentation concern.
type Row struct {
	market.Row
	LeagueOwnPct   *float64 `json:"league_own_pct"`
	LeagueStartPct *float64 `json:"league_start_pct"`
	LeagueCptPct   *float64 `json:"league_cpt_pct"`
	LeagueOwners   []string `json:"league_owners,omitempty"`
}

// Merge left-outer joins market rows with the aggregate on player id. Every
// market row appears exactly once in the output, in input order. A matched
// row gets all three rates (a rostered player who was never started or
// captained gets 0, not nil); an unmatched row keeps nil rates and no
// owners list.
func Merge(rows []market.Row, agg league.Aggregate) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		enriched := Row{Row: r}
		if r.PlayerID != nil {
			if teams, ok := agg.TeamCount[*r.PlayerID]; ok {
				enriched.LeagueOwnPct = rate(teams, agg.ParticipantCount)
				enriched.LeagueStartPct = rate(agg.StarterCount[*r.PlayerID], agg.ParticipantCount)
				enriched.LeagueCptPct = rate(agg.CaptainCount[*r.PlayerID], agg.ParticipantCount)
				enriched.LeagueOwners = agg.Owners[*r.PlayerID]
			}
		}
		out = append(out, enriched)
	}
	return out
}

func rate(count, participants int) *float64 {
	if participants == 0 {
		return nil
	}
	v := float64(count) / float64(participants)
	return &v
}

// SortRows orders rows by league ownership desc, then league start rate
// desc, then league captain rate desc, then global ownership desc. A nil
// value sorts below any real value, including 0.
func SortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if c := compareDesc(a.LeagueOwnPct, b.LeagueOwnPct); c != 0 {
			return c < 0
		}
		if c := compareDesc(a.LeagueStartPct, b.LeagueStartPct); c != 0 {
			return c < 0
		}
		if c := compareDesc(a.LeagueCptPct, b.LeagueCptPct); c != 0 {
			return c < 0
		}
		return compareDesc(a.OwnedPercentage, b.OwnedPercentage) < 0
	})
}

// compareDesc orders two nullable values descending: -1 when a comes first,
// 1 when b does, 0 on a tie. nil loses to every non-nil value.
func compareDesc(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a > *b:
		return -1
	case *a < *b:
		return 1
	default:
		return 0
	}
}
