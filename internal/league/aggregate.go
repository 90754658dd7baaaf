package league

import "fmt"

// Aggregate holds per-player ownership counts for one (league, round),
// plus the league-wide participant count used as the rate denominator.
// It is built in a single pass and never mutated afterwards.
type Aggregate struct {
	TeamCount        map[int64]int      `json:"team_count"`
	StarterCount     map[int64]int      `json:"starter_count"`
	CaptainCount     map[int64]int      `json:"captain_count"`
	Owners           map[int64][]string `json:"owners"`
	ParticipantCount int                `json:"participant_count"`
}

// BuildAggregate folds every participant's squad into ownership counts.
// Participants are processed in slice order and that order is preserved in
// the per-player owners lists, so identical input always produces identical
// output. A participant without a squad in the map is a hard error: partial
// league data must abort the run, not skew the rates.
func BuildAggregate(participants []Participant, squads map[UserID]Squad) (Aggregate, error) {
	agg := Aggregate{
		TeamCount:        make(map[int64]int),
		StarterCount:     make(map[int64]int),
		CaptainCount:     make(map[int64]int),
		Owners:           make(map[int64][]string),
		ParticipantCount: len(participants),
	}

	for _, p := range participants {
		squad, ok := squads[p.UserID]
		if !ok {
			return Aggregate{}, fmt.Errorf("no squad for participant %q (%s)", p.TeamName, p.UserID)
		}

		for _, id := range squad.Starters {
			agg.TeamCount[id]++
			agg.StarterCount[id]++
			agg.Owners[id] = append(agg.Owners[id], p.TeamName)
		}
		for _, id := range squad.Substitutes {
			agg.TeamCount[id]++
			agg.Owners[id] = append(agg.Owners[id], p.TeamName)
		}
		if squad.Captain != nil {
			agg.CaptainCount[*squad.Captain]++
		}
	}

	return agg, nil
}
