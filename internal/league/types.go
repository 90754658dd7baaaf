// Package league models fantasy-league participants and their round squads,
// and folds them into per-player ownership aggregates.
package league

import (
	"bytes"
	"fmt"
	"strconv"
)

// UserID is an upstream participant identifier. The API has returned these
// both as JSON numbers and as strings, so decoding accepts either form.
type UserID string

func (u *UserID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*u = ""
		return nil
	}
	if b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return fmt.Errorf("user id: %w", err)
		}
		*u = UserID(s)
		return nil
	}
	*u = UserID(b)
	return nil
}

// Participant is one fantasy-league entrant. TeamName is a display name and
// is not guaranteed unique within a league.
type Participant struct {
	UserID   UserID `json:"user_id"`
	TeamName string `json:"team_name"`
}

// ParticipantsPage mirrors the upstream participants payload.
type ParticipantsPage struct {
	Participants []rawParticipant `json:"participants"`
}

type rawParticipant struct {
	UserID   UserID  `json:"userId"`
	TeamName *string `json:"teamName"`
}

// ParticipantsFromPage converts a raw participants payload, preserving
// upstream order.
func ParticipantsFromPage(page ParticipantsPage) []Participant {
	out := make([]Participant, 0, len(page.Participants))
	for _, p := range page.Participants {
		name := ""
		if p.TeamName != nil {
			name = *p.TeamName
		}
		out = append(out, Participant{UserID: p.UserID, TeamName: name})
	}
	return out
}
