// Command tracker-mcp serves the pipeline's stored snapshots to MCP
// clients over HTTP: the market table, the league ownership table, player
// and participant lookups, round-over-round ownership movement, and a
// pipeline status probe.
package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"afcon-fantasy-tracker/internal/config"
	"afcon-fantasy-tracker/internal/metrics"
)

// ServerConfig points the tools at the pipeline's output roots and
// supplies the round/league used when a call omits them.
type ServerConfig struct {
	DerivedRoot   string
	DefaultRound  int
	DefaultLeague int
}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func main() {
	var (
		addr        = flag.String("addr", "", "HTTP listen address (overrides config)")
		mcpPath     = flag.String("path", "", "HTTP path for the MCP endpoint (overrides config)")
		derivedRoot = flag.String("derived-root", "", "root directory for derived snapshots (overrides config)")
		requireAuth = flag.Bool("require-auth", true, "require API key auth via TRACKER_MCP_API_KEY")
	)
	flag.Parse()

	appCfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	if *addr == "" {
		*addr = appCfg.Addr
	}
	if *mcpPath == "" {
		*mcpPath = appCfg.MCPPath
	}
	if *derivedRoot == "" {
		*derivedRoot = appCfg.DerivedRoot
	}

	cfg := ServerConfig{
		DerivedRoot:   *derivedRoot,
		DefaultRound:  appCfg.RoundID,
		DefaultLeague: appCfg.LeagueID,
	}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "afcon-fantasy-tracker",
			Version: "0.1.0",
		},
		nil,
	)

	registry := make([]toolInfo, 0, 8)

	addTool(server, &registry, &mcp.Tool{
		Name:        "market_table",
		Description: "Round market table with optional position and ownership filters",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args MarketTableArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildMarketTable(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		b, _ := json.MarshalIndent(out, "", "  ")
		return toolJSONBytes(b), nil, nil
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "league_ownership",
		Description: "Enriched ownership table for a league, filterable by position and team, with summary metrics",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args LeagueOwnershipArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildLeagueOwnership(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		b, _ := json.MarshalIndent(out, "", "  ")
		return toolJSONBytes(b), nil, nil
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "player_lookup",
		Description: "Lookup a player's market row and league rates by player id",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args PlayerLookupArgs) (*mcp.CallToolResult, any, error) {
		out, err := lookupPlayer(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		b, _ := json.MarshalIndent(out, "", "  ")
		return toolJSONBytes(b), nil, nil
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "league_participants",
		Description: "List league entrants (user id, team name) from the ownership snapshot",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args LeagueParticipantsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildLeagueParticipants(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		b, _ := json.MarshalIndent(out, "", "  ")
		return toolJSONBytes(b), nil, nil
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "ownership_trend",
		Description: "Per-player ownership movement between two rounds' market snapshots",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args OwnershipTrendArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildOwnershipTrend(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		b, _ := json.MarshalIndent(out, "", "  ")
		return toolJSONBytes(b), nil, nil
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "pipeline_status",
		Description: "Run metadata of the stored market and ownership snapshots",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args PipelineStatusArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildPipelineStatus(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		b, _ := json.MarshalIndent(out, "", "  ")
		return toolJSONBytes(b), nil, nil
	})

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	apiKey := strings.TrimSpace(os.Getenv("TRACKER_MCP_API_KEY"))
	if *requireAuth && apiKey == "" {
		log.Fatal("TRACKER_MCP_API_KEY is required (set env var or run with --require-auth=false)")
	}

	withAuth := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			metrics.CountRequest(r.URL.Path)
			if apiKey == "" {
				next(w, r)
				return
			}
			key := strings.TrimSpace(r.Header.Get(appCfg.AuthHeader))
			if key == "" {
				if authz := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
					key = strings.TrimSpace(authz[7:])
				}
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next(w, r)
		}
	}

	http.HandleFunc("/health", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))

	http.HandleFunc("/tools", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
		w.Write(b)
	}))

	http.Handle("/metrics", metrics.Handler())

	http.HandleFunc(*mcpPath, withAuth(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))

	log.Printf("MCP HTTP server listening on %s%s", *addr, *mcpPath)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal(err)
	}
}

// addTool registers the tool and wraps its handler with call metrics.
func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	name := tool.Name
	wrapped := func(ctx context.Context, req *mcp.CallToolRequest, args T) (*mcp.CallToolResult, any, error) {
		start := time.Now()
		res, out, err := handler(ctx, req, args)
		callErr := err
		if callErr == nil && res != nil && res.IsError {
			callErr = fmt.Errorf("tool error")
		}
		metrics.ObserveToolCall(name, callErr, time.Since(start))
		return res, out, err
	}
	mcp.AddTool(server, tool, wrapped)
}

func toolJSONBytes(res []byte) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(res)},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
