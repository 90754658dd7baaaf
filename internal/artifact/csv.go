// Package artifact writes the pipeline's output files: the market and
// enriched CSV tables and the derived JSON snapshots.
package artifact

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"afcon-fantasy-tracker/internal/enrich"
	"afcon-fantasy-tracker/internal/market"
)

// OwnershipHeader is the fixed column set of the enriched table. The league
// rate columns hold fractions in [0,1]; Global Own % keeps the upstream
// 0-100 scale. Display scaling is the consumer's job.
var OwnershipHeader = []string{
	"Player", "Team", "Pos", "Total Points", "Round Points",
	"Global Own %", "League Own %", "League Start %", "League Cpt %",
	"League Owners",
}

// WriteOwnershipCSV writes the enriched table to path. The file appears
// atomically: rows are written to a temp file in the target directory and
// renamed into place, so a failed run never leaves a partial artifact.
func WriteOwnershipCSV(path string, rows []enrich.Row) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, OwnershipHeader)
	for _, r := range rows {
		records = append(records, []string{
			strCell(r.Name),
			strCell(r.Team),
			strCell(r.Position),
			floatCell(r.TotalPoints),
			floatCell(r.TotalPoints), // round points mirror total points, as the source data always has
			floatCell(r.OwnedPercentage),
			floatCell(r.LeagueOwnPct),
			floatCell(r.LeagueStartPct),
			floatCell(r.LeagueCptPct),
			strings.Join(r.LeagueOwners, ", "),
		})
	}
	return writeCSV(path, records)
}

// MarketHeader is the flat market snapshot column set, one per Row field.
var MarketHeader = []string{
	"player_id", "name", "slug", "position", "team", "team_id",
	"price", "expected_points", "average_score", "average_score_rank",
	"total_points", "total_points_rank", "form", "form_rank",
	"owned_percentage", "owned_count", "owned_rank", "adds", "drops",
	"total_players_on_position", "has_left_competition", "round_player_id",
	"fantasy_id", "status", "fixture_difficulty", "event_id",
	"event_start_timestamp", "event_start_iso_utc", "fixtures_count",
	"next_opponent", "next_opponent_id",
}

// WriteMarketCSV writes the normalized market table to path, atomically.
func WriteMarketCSV(path string, rows []market.Row) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, MarketHeader)
	for _, r := range rows {
		records = append(records, []string{
			intCell(r.PlayerID),
			strCell(r.Name),
			strCell(r.Slug),
			strCell(r.Position),
			strCell(r.Team),
			intCell(r.TeamID),
			floatCell(r.Price),
			floatCell(r.ExpectedPoints),
			floatCell(r.AverageScore),
			smallIntCell(r.AverageScoreRank),
			floatCell(r.TotalPoints),
			smallIntCell(r.TotalPointsRank),
			floatCell(r.Form),
			smallIntCell(r.FormRank),
			floatCell(r.OwnedPercentage),
			smallIntCell(r.OwnedCount),
			smallIntCell(r.OwnedRank),
			smallIntCell(r.Adds),
			smallIntCell(r.Drops),
			smallIntCell(r.TotalPlayersOnPosition),
			boolCell(r.HasLeftCompetition),
			intCell(r.RoundPlayerID),
			intCell(r.FantasyID),
			strCell(r.Status),
			floatCell(r.FixtureDifficulty),
			intCell(r.EventID),
			intCell(r.EventStartTimestamp),
			strCell(r.EventStartISOUTC),
			strconv.Itoa(r.FixturesCount),
			strCell(r.NextOpponent),
			intCell(r.NextOpponentID),
		})
	}
	return writeCSV(path, records)
}

func writeCSV(path string, records [][]string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.WriteAll(records); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Null cells are written empty; the consumer null-fills on read.

func strCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func intCell(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func smallIntCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func boolCell(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}
