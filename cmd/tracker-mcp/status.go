package main

// PipelineStatusArgs are the input arguments for pipeline_status.
type PipelineStatusArgs struct {
	Round  int `json:"round" jsonschema:"Fantasy round id (0 = configured default)"`
	League int `json:"league,omitempty" jsonschema:"League id (0 = configured default, skip if none)"`
}

// SnapshotStatus describes one stored snapshot.
type SnapshotStatus struct {
	Present        bool   `json:"present"`
	RunID          string `json:"run_id,omitempty"`
	GeneratedAtUTC string `json:"generated_at_utc,omitempty"`
	Rows           int    `json:"rows,omitempty"`
}

// PipelineStatusOutput is the output of the pipeline_status tool.
type PipelineStatusOutput struct {
	Round     int            `json:"round"`
	League    int            `json:"league,omitempty"`
	Market    SnapshotStatus `json:"market"`
	Ownership SnapshotStatus `json:"ownership"`
}

func buildPipelineStatus(cfg ServerConfig, args PipelineStatusArgs) (PipelineStatusOutput, error) {
	round, err := resolveRound(cfg, args.Round)
	if err != nil {
		return PipelineStatusOutput{}, err
	}

	out := PipelineStatusOutput{Round: round}

	if snap, err := loadMarketSnapshot(cfg, round); err == nil {
		out.Market = SnapshotStatus{
			Present:        true,
			RunID:          snap.RunID,
			GeneratedAtUTC: snap.GeneratedAtUTC,
			Rows:           snap.RowCount,
		}
	}

	leagueID := args.League
	if leagueID == 0 {
		leagueID = cfg.DefaultLeague
	}
	if leagueID > 0 {
		out.League = leagueID
		if snap, err := loadOwnershipSnapshot(cfg, leagueID, round); err == nil {
			out.Ownership = SnapshotStatus{
				Present:        true,
				RunID:          snap.RunID,
				GeneratedAtUTC: snap.GeneratedAtUTC,
				Rows:           snap.RowCount,
			}
		}
	}

	return out, nil
}
