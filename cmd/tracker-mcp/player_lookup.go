package main

import (
	"fmt"

	"afcon-fantasy-tracker/internal/enrich"
	"afcon-fantasy-tracker/internal/market"
)

// PlayerLookupArgs are the input arguments for the player_lookup tool.
type PlayerLookupArgs struct {
	PlayerID int64 `json:"player_id" jsonschema:"Player id (required)"`
	Round    int   `json:"round" jsonschema:"Fantasy round id (0 = configured default)"`
	League   int   `json:"league,omitempty" jsonschema:"League id for ownership rates (0 = market row only)"`
}

// PlayerLookupOutput is the output of the player_lookup tool. League is
// nil when no league was requested or the ownership snapshot is missing
// the player.
type PlayerLookupOutput struct {
	Round  int         `json:"round"`
	Market *market.Row `json:"market"`
	League *enrich.Row `json:"league,omitempty"`
}

func lookupPlayer(cfg ServerConfig, args PlayerLookupArgs) (PlayerLookupOutput, error) {
	if args.PlayerID == 0 {
		return PlayerLookupOutput{}, fmt.Errorf("player_id is required")
	}
	round, err := resolveRound(cfg, args.Round)
	if err != nil {
		return PlayerLookupOutput{}, err
	}

	out := PlayerLookupOutput{Round: round}

	if args.League > 0 {
		snap, err := loadOwnershipSnapshot(cfg, args.League, round)
		if err != nil {
			return PlayerLookupOutput{}, err
		}
		for i := range snap.Rows {
			r := snap.Rows[i]
			if r.PlayerID != nil && *r.PlayerID == args.PlayerID {
				out.Market = &r.Row
				out.League = &r
				return out, nil
			}
		}
		return PlayerLookupOutput{}, fmt.Errorf("player %d not found in league %d round %d", args.PlayerID, args.League, round)
	}

	snap, err := loadMarketSnapshot(cfg, round)
	if err != nil {
		return PlayerLookupOutput{}, err
	}
	for i := range snap.Rows {
		if snap.Rows[i].PlayerID != nil && *snap.Rows[i].PlayerID == args.PlayerID {
			out.Market = &snap.Rows[i]
			return out, nil
		}
	}
	return PlayerLookupOutput{}, fmt.Errorf("player %d not found in round %d market", args.PlayerID, round)
}
