package main

import (
	"afcon-fantasy-tracker/internal/enrich"
)

// LeagueOwnershipArgs are the input arguments for the league_ownership tool.
type LeagueOwnershipArgs struct {
	League   int    `json:"league" jsonschema:"Fantasy league id (0 = configured default)"`
	Round    int    `json:"round" jsonschema:"Fantasy round id (0 = configured default)"`
	Position string `json:"position,omitempty" jsonschema:"Filter by position letter (F, M, D, G)"`
	Team     string `json:"team,omitempty" jsonschema:"Filter by national team name"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Maximum rows to return (0 = all)"`
}

// OwnershipMetrics summarizes the filtered subset: row count, distinct
// teams and positions, and the mean league ownership fraction across rows
// that have one.
type OwnershipMetrics struct {
	Players          int      `json:"players"`
	UniqueTeams      int      `json:"unique_teams"`
	UniquePositions  int      `json:"unique_positions"`
	AvgLeagueOwnPct  *float64 `json:"avg_league_own_pct"`
	ParticipantCount int      `json:"participant_count"`
}

// LeagueOwnershipOutput is the output of the league_ownership tool. Rate
// fields are fractions in [0,1]; scale to percent at display time.
type LeagueOwnershipOutput struct {
	League         int              `json:"league"`
	Round          int              `json:"round"`
	RunID          string           `json:"run_id"`
	GeneratedAtUTC string           `json:"generated_at_utc"`
	Metrics        OwnershipMetrics `json:"metrics"`
	TotalRows      int              `json:"total_rows"`
	Rows           []enrich.Row     `json:"rows"`
}

func buildLeagueOwnership(cfg ServerConfig, args LeagueOwnershipArgs) (LeagueOwnershipOutput, error) {
	leagueID, err := resolveLeague(cfg, args.League)
	if err != nil {
		return LeagueOwnershipOutput{}, err
	}
	round, err := resolveRound(cfg, args.Round)
	if err != nil {
		return LeagueOwnershipOutput{}, err
	}

	snap, err := loadOwnershipSnapshot(cfg, leagueID, round)
	if err != nil {
		return LeagueOwnershipOutput{}, err
	}

	rows := make([]enrich.Row, 0, len(snap.Rows))
	for _, r := range snap.Rows {
		if !matchFold(r.Position, args.Position) {
			continue
		}
		if !matchFold(r.Team, args.Team) {
			continue
		}
		rows = append(rows, r)
	}

	m := summarize(rows)
	m.ParticipantCount = snap.ParticipantCount

	total := len(rows)
	if args.Limit > 0 && args.Limit < len(rows) {
		rows = rows[:args.Limit]
	}

	return LeagueOwnershipOutput{
		League:         leagueID,
		Round:          round,
		RunID:          snap.RunID,
		GeneratedAtUTC: snap.GeneratedAtUTC,
		Metrics:        m,
		TotalRows:      total,
		Rows:           rows,
	}, nil
}

func summarize(rows []enrich.Row) OwnershipMetrics {
	teams := make(map[string]struct{})
	positions := make(map[string]struct{})
	sum := 0.0
	n := 0
	for _, r := range rows {
		if r.Team != nil {
			teams[*r.Team] = struct{}{}
		}
		if r.Position != nil {
			positions[*r.Position] = struct{}{}
		}
		if r.LeagueOwnPct != nil {
			sum += *r.LeagueOwnPct
			n++
		}
	}
	m := OwnershipMetrics{
		Players:         len(rows),
		UniqueTeams:     len(teams),
		UniquePositions: len(positions),
	}
	if n > 0 {
		avg := sum / float64(n)
		m.AvgLeagueOwnPct = &avg
	}
	return m
}
