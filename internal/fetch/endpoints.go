package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"afcon-fantasy-tracker/internal/league"
	"afcon-fantasy-tracker/internal/market"
)

// MarketQuery drives the round players pagination.
type MarketQuery struct {
	RoundID        int
	Positions      []string // "F", "M", "D", "G"; "ALL" disables the filter
	ResultsPerPage int
	SortParam      string // upstream column name, e.g. "price"
	SortOrder      string // "ASC" or "DESC"
}

// RoundPlayersPage fetches one page of the round market for a position.
func (c *Client) RoundPlayersPage(ctx context.Context, q MarketQuery, position string, page int, force bool) (market.RoundPlayersPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("resultsPerPage", strconv.Itoa(q.ResultsPerPage))
	query.Set("sortParam", q.SortParam)
	query.Set("sortOrder", q.SortOrder)
	if position != "" && position != "ALL" {
		query.Set("position", position)
	}

	rel := fmt.Sprintf("round/%d/players/%s/page_%d.json", q.RoundID, positionKey(position), page)
	body, err := c.FetchRaw(ctx, fmt.Sprintf("/fantasy/round/%d/players", q.RoundID), query, rel, force)
	if err != nil {
		return market.RoundPlayersPage{}, err
	}

	var out market.RoundPlayersPage
	if err := json.Unmarshal(body, &out); err != nil {
		return market.RoundPlayersPage{}, fmt.Errorf("%w: decode round %d players page %d: %v", ErrUpstream, q.RoundID, page, err)
	}
	return out, nil
}

// RoundPlayers walks every page for every requested position and returns
// the concatenated raw entries in source order.
func (c *Client) RoundPlayers(ctx context.Context, q MarketQuery, force bool) ([]market.RawEntry, error) {
	positions := q.Positions
	if len(positions) == 0 {
		positions = []string{"ALL"}
	}

	var all []market.RawEntry
	for _, pos := range positions {
		for page := 0; ; page++ {
			p, err := c.RoundPlayersPage(ctx, q, pos, page, force)
			if err != nil {
				return nil, err
			}
			all = append(all, p.Players...)
			c.Log.Debug("market page fetched",
				slog.String("position", pos),
				slog.Int("page", page),
				slog.Int("players", len(p.Players)))
			if !p.HasNextPage {
				break
			}
		}
	}
	return all, nil
}

// LeagueParticipants fetches a league's entrant list.
func (c *Client) LeagueParticipants(ctx context.Context, leagueID int, force bool) ([]league.Participant, error) {
	query := url.Values{}
	query.Set("page", "0")
	query.Set("q", "")

	rel := fmt.Sprintf("league/%d/participants.json", leagueID)
	body, err := c.FetchRaw(ctx, fmt.Sprintf("/fantasy/league/%d/participants", leagueID), query, rel, force)
	if err != nil {
		return nil, err
	}

	var page league.ParticipantsPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("%w: decode league %d participants: %v", ErrUpstream, leagueID, err)
	}
	return league.ParticipantsFromPage(page), nil
}

// UserRoundSquad fetches one participant's squad for a round.
func (c *Client) UserRoundSquad(ctx context.Context, userID league.UserID, roundID int, force bool) (league.Squad, error) {
	rel := fmt.Sprintf("user/%s/round/%d/squad.json", userID, roundID)
	body, err := c.FetchRaw(ctx, fmt.Sprintf("/fantasy/user/%s/round/%d/squad", userID, roundID), nil, rel, force)
	if err != nil {
		return league.Squad{}, err
	}

	var payload league.SquadPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return league.Squad{}, fmt.Errorf("%w: decode squad for user %s: %v", ErrUpstream, userID, err)
	}
	return league.SquadFromPayload(userID, payload), nil
}

func positionKey(pos string) string {
	if pos == "" {
		return "ALL"
	}
	return pos
}
