package league

// SquadPayload mirrors the upstream per-user round squad response. As with
// the market payload, every nested object is optional.
type SquadPayload struct {
	UserRound *struct {
		Score *float64 `json:"score"`
	} `json:"userRound"`
	Squad *struct {
		Name    *string          `json:"name"`
		Players []rawSquadPlayer `json:"players"`
	} `json:"squad"`
}

type rawSquadPlayer struct {
	FantasyPlayer *struct {
		Player *struct {
			ID *int64 `json:"id"`
		} `json:"player"`
	} `json:"fantasyPlayer"`
	Substitute bool `json:"substitute"`
	Captain    bool `json:"captain"`
}

// Squad is one participant's selected roster for a round, split into
// starters and substitutes. Captain is nil when no slot is captained.
type Squad struct {
	UserID      UserID   `json:"user_id"`
	Name        string   `json:"name"`
	Score       *float64 `json:"score"`
	Starters    []int64  `json:"starters"`
	Substitutes []int64  `json:"substitutes"`
	Captain     *int64   `json:"captain"`
}

// SquadFromPayload flattens a raw squad payload for one participant.
// Slots that carry no player id are skipped; the captain flag on such a
// slot is ignored too.
func SquadFromPayload(userID UserID, p SquadPayload) Squad {
	s := Squad{UserID: userID}
	if p.UserRound != nil {
		s.Score = p.UserRound.Score
	}
	if p.Squad == nil {
		return s
	}
	if p.Squad.Name != nil {
		s.Name = *p.Squad.Name
	}
	for _, sp := range p.Squad.Players {
		if sp.FantasyPlayer == nil || sp.FantasyPlayer.Player == nil || sp.FantasyPlayer.Player.ID == nil {
			continue
		}
		id := *sp.FantasyPlayer.Player.ID
		if sp.Substitute {
			s.Substitutes = append(s.Substitutes, id)
		} else {
			s.Starters = append(s.Starters, id)
		}
		if sp.Captain {
			s.Captain = &id
		}
	}
	return s
}
