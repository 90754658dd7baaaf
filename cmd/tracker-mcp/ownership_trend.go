package main

import (
	"fmt"

	"afcon-fantasy-tracker/internal/trend"
)

// OwnershipTrendArgs are the input arguments for the ownership_trend tool.
type OwnershipTrendArgs struct {
	FromRound int `json:"from_round" jsonschema:"Earlier round id (required)"`
	ToRound   int `json:"to_round" jsonschema:"Later round id (0 = configured default)"`
	Limit     int `json:"limit,omitempty" jsonschema:"Maximum deltas to return (0 = all)"`
}

// OwnershipTrendOutput is the output of the ownership_trend tool.
type OwnershipTrendOutput struct {
	Report      *trend.Report `json:"report"`
	TotalDeltas int           `json:"total_deltas"`
}

func buildOwnershipTrend(cfg ServerConfig, args OwnershipTrendArgs) (OwnershipTrendOutput, error) {
	if args.FromRound <= 0 {
		return OwnershipTrendOutput{}, fmt.Errorf("from_round is required")
	}
	toRound, err := resolveRound(cfg, args.ToRound)
	if err != nil {
		return OwnershipTrendOutput{}, err
	}
	if args.FromRound == toRound {
		return OwnershipTrendOutput{}, fmt.Errorf("from_round and to_round must differ")
	}

	prev, err := loadMarketSnapshot(cfg, args.FromRound)
	if err != nil {
		return OwnershipTrendOutput{}, err
	}
	curr, err := loadMarketSnapshot(cfg, toRound)
	if err != nil {
		return OwnershipTrendOutput{}, err
	}

	rep := trend.BuildReport(args.FromRound, toRound, prev.Rows, curr.Rows)
	total := len(rep.Deltas)
	if args.Limit > 0 && args.Limit < len(rep.Deltas) {
		rep.Deltas = rep.Deltas[:args.Limit]
	}

	return OwnershipTrendOutput{Report: rep, TotalDeltas: total}, nil
}
