// Package config defines pipeline and server configuration and its loading
// order: defaults, then an optional YAML file, then environment variables.
package config

// Config holds every tunable of the tracker. Upstream header values are
// pass-through strings captured from a browser session; leave them empty
// when the endpoint is not challenged.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// BaseURL is the upstream API root.
	BaseURL string `koanf:"base_url"`

	// RoundID is the fantasy round to target.
	RoundID int `koanf:"round_id"`

	// LeagueID is the fantasy league whose ownership is computed.
	LeagueID int `koanf:"league_id"`

	// Upstream request headers.
	UserAgent      string            `koanf:"user_agent"`
	Accept         string            `koanf:"accept"`
	AcceptLanguage string            `koanf:"accept_language"`
	Referer        string            `koanf:"referer"`
	XRequestedWith string            `koanf:"x_requested_with"`
	Cookie         string            `koanf:"cookie"`
	ExtraHeaders   map[string]string `koanf:"extra_headers"`

	// Market fetch knobs.
	Positions      string `koanf:"positions"` // comma-separated, e.g. "F,M,D,G"; "ALL" disables the filter
	ResultsPerPage int    `koanf:"results_per_page"`
	SortParam      string `koanf:"sort_param"` // upstream sort column
	SortOrder      string `koanf:"sort_order"` // ASC or DESC
	SortBy         string `koanf:"sort_by"`    // local market snapshot sort column

	// Ownership bounds applied to the market table; a negative value means
	// the bound is off.
	MinOwnership float64 `koanf:"min_ownership"`
	MaxOwnership float64 `koanf:"max_ownership"`

	// TimeoutSeconds bounds each upstream request; SleepMS spaces them.
	TimeoutSeconds int `koanf:"timeout_seconds"`
	SleepMS        int `koanf:"sleep_ms"`

	// Output locations.
	RawRoot     string `koanf:"raw_root"`
	DerivedRoot string `koanf:"derived_root"`
	OutDir      string `koanf:"out_dir"`

	// PrintTop is how many enriched rows the CLI previews after sorting.
	PrintTop int `koanf:"print_top"`

	// MCP server settings.
	Addr        string `koanf:"addr"`
	MCPPath     string `koanf:"mcp_path"`
	RequireAuth bool   `koanf:"require_auth"`
	AuthHeader  string `koanf:"auth_header"`
}

// New returns a Config with the shareable-safe defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		BaseURL:        "https://www.sofascore.com/api/v1",
		RoundID:        803,
		LeagueID:       0,
		UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
		Accept:         "application/json, text/plain, */*",
		AcceptLanguage: "en-US,en;q=0.9",
		Referer:        "https://www.sofascore.com/",
		Positions:      "F,M,D,G",
		ResultsPerPage: 200,
		SortParam:      "price",
		SortOrder:      "DESC",
		SortBy:         "price",
		MinOwnership:   -1,
		MaxOwnership:   -1,
		TimeoutSeconds: 15,
		SleepMS:        250,
		RawRoot:        "data/raw",
		DerivedRoot:    "data/derived",
		OutDir:         "data/out",
		PrintTop:       10,
		Addr:           ":8080",
		MCPPath:        "/mcp",
		RequireAuth:    true,
		AuthHeader:     "X-API-Key",
	}
}

// PositionList splits the configured positions, uppercased and trimmed.
// An empty config value yields ["ALL"].
func (c *Config) PositionList() []string {
	return splitPositions(c.Positions)
}

// OwnershipBounds translates the sentinel -1 values into optional bounds.
func (c *Config) OwnershipBounds() (min, max *float64) {
	if c.MinOwnership >= 0 {
		v := c.MinOwnership
		min = &v
	}
	if c.MaxOwnership >= 0 {
		v := c.MaxOwnership
		max = &v
	}
	return min, max
}
