// Package market turns raw round-market payloads into a flat, stable table
// of player rows keyed by player id.
package market

import (
	"sort"
	"time"
)

// Row is one flattened market row. Nullable upstream fields stay pointers
// so that an absent value survives the round trip to JSON instead of
// collapsing to a zero.
type Row struct {
	PlayerID               *int64   `json:"player_id"`
	Name                   *string  `json:"name"`
	Slug                   *string  `json:"slug"`
	Position               *string  `json:"position"`
	Team                   *string  `json:"team"`
	TeamID                 *int64   `json:"team_id"`
	Price                  *float64 `json:"price"`
	ExpectedPoints         *float64 `json:"expected_points"`
	AverageScore           *float64 `json:"average_score"`
	AverageScoreRank       *int     `json:"average_score_rank"`
	TotalPoints            *float64 `json:"total_points"`
	TotalPointsRank        *int     `json:"total_points_rank"`
	Form                   *float64 `json:"form"`
	FormRank               *int     `json:"form_rank"`
	OwnedPercentage        *float64 `json:"owned_percentage"`
	OwnedCount             *int     `json:"owned_count"`
	OwnedRank              *int     `json:"owned_rank"`
	Adds                   *int     `json:"adds"`
	Drops                  *int     `json:"drops"`
	TotalPlayersOnPosition *int     `json:"total_players_on_position"`
	HasLeftCompetition     *bool    `json:"has_left_competition"`
	RoundPlayerID          *int64   `json:"round_player_id"`
	FantasyID              *int64   `json:"fantasy_id"`
	Status                 *string  `json:"status"`
	FixtureDifficulty      *float64 `json:"fixture_difficulty"`
	EventID                *int64   `json:"event_id"`
	EventStartTimestamp    *int64   `json:"event_start_timestamp"`
	EventStartISOUTC       *string  `json:"event_start_iso_utc"`
	FixturesCount          int      `json:"fixtures_count"`
	NextOpponent           *string  `json:"next_opponent"`
	NextOpponentID         *int64   `json:"next_opponent_id"`
}

// NormalizeEntry flattens one raw market entry into a Row. It never fails:
// every missing nested object degrades to nil fields on the output. Field
// lookups that have two upstream homes (player, team, price, ...) take the
// first non-nil alternative in a fixed order.
func NormalizeEntry(e RawEntry) Row {
	var fantasy RawFantasyPlayer
	if e.FantasyPlayer != nil {
		fantasy = *e.FantasyPlayer
	}

	player := firstPlayer(fantasy.Player, e.Player)
	team := firstTeam(fantasy.Team, e.Team)
	next := nextFixture(e.Fixtures)

	var opponent RawTeam
	if next.Team != nil {
		opponent = *next.Team
	}

	return Row{
		PlayerID:               player.ID,
		Name:                   player.Name,
		Slug:                   player.Slug,
		Position:               player.Position,
		Team:                   team.Name,
		TeamID:                 team.ID,
		Price:                  firstFloat(e.Price, fantasy.Price),
		ExpectedPoints:         e.ExpectedPoints,
		AverageScore:           fantasy.AverageScore,
		AverageScoreRank:       fantasy.AverageScoreRank,
		TotalPoints:            firstFloat(fantasy.TotalScore, fantasy.TotalPoints),
		TotalPointsRank:        fantasy.TotalScoreRank,
		Form:                   fantasy.Form,
		FormRank:               fantasy.FormRank,
		OwnedPercentage:        fantasy.OwnedPercentage,
		OwnedCount:             fantasy.OwnedCount,
		OwnedRank:              fantasy.OwnedRank,
		Adds:                   fantasy.Adds,
		Drops:                  fantasy.Drops,
		TotalPlayersOnPosition: fantasy.TotalPlayersOnPosition,
		HasLeftCompetition:     fantasy.HasLeftCompetition,
		RoundPlayerID:          e.RoundPlayerID,
		FantasyID:              firstInt(fantasy.ID, e.ID),
		Status:                 fantasy.Status,
		FixtureDifficulty:      next.FixtureDifficulty,
		EventID:                next.EventID,
		EventStartTimestamp:    next.EventStartTimestamp,
		EventStartISOUTC:       isoUTC(next.EventStartTimestamp),
		FixturesCount:          len(e.Fixtures),
		NextOpponent:           opponent.Name,
		NextOpponentID:         opponent.ID,
	}
}

// nextFixture picks the chronologically earliest fixture that has a known
// start timestamp. When no fixture carries one, the first fixture in input
// order wins; with no fixtures at all the zero value is returned.
func nextFixture(fixtures []RawFixture) RawFixture {
	dated := make([]RawFixture, 0, len(fixtures))
	for _, f := range fixtures {
		if f.EventStartTimestamp != nil {
			dated = append(dated, f)
		}
	}
	if len(dated) > 0 {
		sort.SliceStable(dated, func(i, j int) bool {
			return *dated[i].EventStartTimestamp < *dated[j].EventStartTimestamp
		})
		return dated[0]
	}
	if len(fixtures) > 0 {
		return fixtures[0]
	}
	return RawFixture{}
}

func isoUTC(ts *int64) *string {
	if ts == nil {
		return nil
	}
	s := time.Unix(*ts, 0).UTC().Format("2006-01-02T15:04:05Z")
	return &s
}

func firstPlayer(alts ...*RawPlayer) RawPlayer {
	for _, p := range alts {
		if p != nil {
			return *p
		}
	}
	return RawPlayer{}
}

func firstTeam(alts ...*RawTeam) RawTeam {
	for _, t := range alts {
		if t != nil {
			return *t
		}
	}
	return RawTeam{}
}

func firstFloat(alts ...*float64) *float64 {
	for _, f := range alts {
		if f != nil {
			return f
		}
	}
	return nil
}

func firstInt(alts ...*int64) *int64 {
	for _, i := range alts {
		if i != nil {
			return i
		}
	}
	return nil
}
