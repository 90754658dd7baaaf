// Command tracker runs the ownership pipeline: fetch the round market and
// the league rosters, normalize, aggregate, merge, and write the enriched
// CSV. Either everything completes and the artifacts are written, or the
// run aborts and the previous artifacts are left untouched.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"afcon-fantasy-tracker/internal/artifact"
	"afcon-fantasy-tracker/internal/config"
	"afcon-fantasy-tracker/internal/enrich"
	"afcon-fantasy-tracker/internal/fetch"
	"afcon-fantasy-tracker/internal/league"
	"afcon-fantasy-tracker/internal/market"
	"afcon-fantasy-tracker/internal/store"
)

func main() {
	var (
		roundID    = flag.Int("round", 0, "fantasy round id (overrides config)")
		leagueID   = flag.Int("league", 0, "fantasy league id (overrides config; 0 skips league ownership)")
		live       = flag.Bool("live", false, "disable cache reads and raw writes")
		refreshNow = flag.Bool("refresh-now", false, "refetch even when a cached payload exists")
		printTop   = flag.Int("print-top", -1, "preview the top N enriched rows (overrides config)")
	)
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	if *roundID > 0 {
		cfg.RoundID = *roundID
	}
	if *leagueID > 0 {
		cfg.LeagueID = *leagueID
	}
	if *printTop >= 0 {
		cfg.PrintTop = *printTop
	}

	log := newLogger(cfg.LogLevel)
	runID := uuid.NewString()
	log = log.With(slog.String("run_id", runID), slog.Int("round", cfg.RoundID))

	st := store.NewJSONStore(cfg.RawRoot)
	client := fetch.NewClient(st, cfg.BaseURL, fetch.Headers{
		UserAgent:      cfg.UserAgent,
		Accept:         cfg.Accept,
		AcceptLanguage: cfg.AcceptLanguage,
		Referer:        cfg.Referer,
		XRequestedWith: cfg.XRequestedWith,
		Cookie:         cfg.Cookie,
		Extra:          cfg.ExtraHeaders,
	}, log)
	client.HTTP.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	client.Sleep = time.Duration(cfg.SleepMS) * time.Millisecond
	client.UseCache = !*live
	client.DisableWrite = *live
	client.PrettyWrite = !*live

	derived := store.NewJSONStore(cfg.DerivedRoot)
	generatedAt := time.Now().UTC().Format(time.RFC3339)

	// Market side: fetch -> normalize -> filter -> sort -> snapshot.
	rows := buildMarket(ctx, log, cfg, client, derived, runID, generatedAt, *refreshNow)

	if cfg.LeagueID == 0 {
		log.Info("no league configured; market snapshot only")
		return
	}

	// League side: participants -> squads -> aggregate.
	agg, participants := buildOwnership(ctx, log, cfg, client, *refreshNow)

	enriched := enrich.Merge(rows, agg)
	enrich.SortRows(enriched)

	snap := artifact.OwnershipSnapshot{
		RunID:            runID,
		LeagueID:         cfg.LeagueID,
		RoundID:          cfg.RoundID,
		GeneratedAtUTC:   generatedAt,
		ParticipantCount: agg.ParticipantCount,
		Participants:     participants,
		Rows:             enriched,
	}
	if err := artifact.WriteOwnershipSnapshot(derived, snap); err != nil {
		fatal(log, "write ownership snapshot", err)
	}

	// The CSV is the terminal artifact; nothing may be written after a
	// failure past this point.
	outPath := filepath.Join(cfg.OutDir, fmt.Sprintf("afcon_fantasy_market_%d_with_league_ownership.csv", cfg.RoundID))
	if err := artifact.WriteOwnershipCSV(outPath, enriched); err != nil {
		fatal(log, "write enriched csv", err)
	}
	log.Info("enriched table written",
		slog.String("path", outPath),
		slog.Int("rows", len(enriched)),
		slog.Int("participants", agg.ParticipantCount))

	if cfg.PrintTop > 0 {
		printPreview(enriched, cfg.PrintTop)
	}
}

func buildMarket(ctx context.Context, log *slog.Logger, cfg *config.Config, client *fetch.Client, derived *store.JSONStore, runID, generatedAt string, force bool) []market.Row {
	entries, err := client.RoundPlayers(ctx, fetch.MarketQuery{
		RoundID:        cfg.RoundID,
		Positions:      cfg.PositionList(),
		ResultsPerPage: cfg.ResultsPerPage,
		SortParam:      cfg.SortParam,
		SortOrder:      cfg.SortOrder,
	}, force)
	if err != nil {
		fatal(log, "fetch market", err)
	}
	log.Info("market fetched", slog.Int("entries", len(entries)))

	rows, err := market.BuildTable(entries)
	if err != nil {
		fatal(log, "normalize market", err)
	}

	minOwn, maxOwn := cfg.OwnershipBounds()
	rows = market.FilterByOwnership(rows, minOwn, maxOwn)
	if len(rows) == 0 {
		fatal(log, "filter market", fmt.Errorf("no players left after ownership filter"))
	}
	market.SortRows(rows, cfg.SortBy)

	if err := artifact.WriteMarketSnapshot(derived, artifact.MarketSnapshot{
		RunID:          runID,
		RoundID:        cfg.RoundID,
		GeneratedAtUTC: generatedAt,
		Rows:           rows,
	}); err != nil {
		fatal(log, "write market snapshot", err)
	}

	marketCSV := filepath.Join(cfg.OutDir, fmt.Sprintf("afcon_fantasy_market_%d.csv", cfg.RoundID))
	if err := artifact.WriteMarketCSV(marketCSV, rows); err != nil {
		fatal(log, "write market csv", err)
	}
	log.Info("market table written", slog.String("path", marketCSV), slog.Int("rows", len(rows)))
	return rows
}

func buildOwnership(ctx context.Context, log *slog.Logger, cfg *config.Config, client *fetch.Client, force bool) (league.Aggregate, []league.Participant) {
	participants, err := client.LeagueParticipants(ctx, cfg.LeagueID, force)
	if err != nil {
		fatal(log, "fetch participants", err)
	}
	log.Info("participants fetched", slog.Int("league", cfg.LeagueID), slog.Int("count", len(participants)))

	// One squad call per participant, in participant order. A single
	// failure aborts the run: partial rosters would skew every rate.
	squads := make(map[league.UserID]league.Squad, len(participants))
	for _, p := range participants {
		squad, err := client.UserRoundSquad(ctx, p.UserID, cfg.RoundID, force)
		if err != nil {
			fatal(log, fmt.Sprintf("fetch squad for %q", p.TeamName), err)
		}
		squads[p.UserID] = squad
	}

	agg, err := league.BuildAggregate(participants, squads)
	if err != nil {
		fatal(log, "aggregate rosters", err)
	}
	return agg, participants
}

func printPreview(rows []enrich.Row, top int) {
	if top > len(rows) {
		top = len(rows)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Player\tTeam\tPos\tLeague Own %\tLeague Start %\tLeague Cpt %\tGlobal Own %")
	for _, r := range rows[:top] {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			deref(r.Name), deref(r.Team), deref(r.Position),
			pct(r.LeagueOwnPct), pct(r.LeagueStartPct), pct(r.LeagueCptPct),
			num(r.OwnedPercentage))
	}
	w.Flush()
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func pct(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", *v*100)
}

func num(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func fatal(log *slog.Logger, stage string, err error) {
	log.Error(stage, slog.Any("error", err))
	os.Exit(1)
}
