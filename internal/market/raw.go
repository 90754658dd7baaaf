package market

// RoundPlayersPage mirrors one page of the upstream round players endpoint.
type RoundPlayersPage struct {
	Players     []RawEntry `json:"players"`
	HasNextPage bool       `json:"hasNextPage"`
}

// RawEntry is one market entry exactly as the upstream returns it. Every
// nested object is optional; normalization must never assume any of them
// is populated.
type RawEntry struct {
	ID             *int64            `json:"id"`
	RoundPlayerID  *int64            `json:"roundPlayerId"`
	Price          *float64          `json:"price"`
	ExpectedPoints *float64          `json:"expectedPoints"`
	FantasyPlayer  *RawFantasyPlayer `json:"fantasyPlayer"`
	Player         *RawPlayer        `json:"player"`
	Team           *RawTeam          `json:"team"`
	Fixtures       []RawFixture      `json:"fixtures"`
}

// RawFantasyPlayer carries the season-level fantasy stats for a player.
type RawFantasyPlayer struct {
	ID                     *int64     `json:"id"`
	Player                 *RawPlayer `json:"player"`
	Team                   *RawTeam   `json:"team"`
	Price                  *float64   `json:"price"`
	AverageScore           *float64   `json:"averageScore"`
	AverageScoreRank       *int       `json:"averageScoreRank"`
	TotalScore             *float64   `json:"totalScore"`
	TotalPoints            *float64   `json:"totalPoints"`
	TotalScoreRank         *int       `json:"totalScoreRank"`
	Form                   *float64   `json:"form"`
	FormRank               *int       `json:"formRank"`
	OwnedPercentage        *float64   `json:"ownedPercentage"`
	OwnedCount             *int       `json:"ownedCount"`
	OwnedRank              *int       `json:"ownedRank"`
	Adds                   *int       `json:"adds"`
	Drops                  *int       `json:"drops"`
	TotalPlayersOnPosition *int       `json:"totalPlayersOnPosition"`
	HasLeftCompetition     *bool      `json:"hasLeftCompetition"`
	Status                 *string    `json:"status"`
}

type RawPlayer struct {
	ID       *int64  `json:"id"`
	Name     *string `json:"name"`
	Slug     *string `json:"slug"`
	Position *string `json:"position"`
}

type RawTeam struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

// RawFixture is one upcoming fixture attached to a market entry. Team is
// the opponent. EventStartTimestamp is a unix timestamp in seconds and is
// nil for fixtures that have no confirmed kickoff yet.
type RawFixture struct {
	EventID             *int64   `json:"eventId"`
	EventStartTimestamp *int64   `json:"eventStartTimestamp"`
	FixtureDifficulty   *float64 `json:"fixtureDifficulty"`
	Team                *RawTeam `json:"team"`
}
