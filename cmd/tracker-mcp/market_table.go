package main

import (
	"afcon-fantasy-tracker/internal/market"
)

// MarketTableArgs are the input arguments for the market_table tool.
type MarketTableArgs struct {
	Round        int      `json:"round" jsonschema:"Fantasy round id (0 = configured default)"`
	Position     string   `json:"position,omitempty" jsonschema:"Filter by position letter (F, M, D, G)"`
	MinOwnership *float64 `json:"min_ownership,omitempty" jsonschema:"Minimum global ownership percentage"`
	MaxOwnership *float64 `json:"max_ownership,omitempty" jsonschema:"Maximum global ownership percentage"`
	Limit        int      `json:"limit,omitempty" jsonschema:"Maximum rows to return (0 = all)"`
}

// MarketTableOutput is the output of the market_table tool.
type MarketTableOutput struct {
	Round          int          `json:"round"`
	RunID          string       `json:"run_id"`
	GeneratedAtUTC string       `json:"generated_at_utc"`
	TotalRows      int          `json:"total_rows"`
	Rows           []market.Row `json:"rows"`
}

func buildMarketTable(cfg ServerConfig, args MarketTableArgs) (MarketTableOutput, error) {
	round, err := resolveRound(cfg, args.Round)
	if err != nil {
		return MarketTableOutput{}, err
	}

	snap, err := loadMarketSnapshot(cfg, round)
	if err != nil {
		return MarketTableOutput{}, err
	}

	rows := make([]market.Row, 0, len(snap.Rows))
	for _, r := range snap.Rows {
		if !matchFold(r.Position, args.Position) {
			continue
		}
		rows = append(rows, r)
	}
	rows = market.FilterByOwnership(rows, args.MinOwnership, args.MaxOwnership)

	total := len(rows)
	if args.Limit > 0 && args.Limit < len(rows) {
		rows = rows[:args.Limit]
	}

	return MarketTableOutput{
		Round:          round,
		RunID:          snap.RunID,
		GeneratedAtUTC: snap.GeneratedAtUTC,
		TotalRows:      total,
		Rows:           rows,
	}, nil
}
