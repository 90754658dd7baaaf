package main

import (
	"afcon-fantasy-tracker/internal/league"
)

// LeagueParticipantsArgs are the input arguments for league_participants.
type LeagueParticipantsArgs struct {
	League int `json:"league" jsonschema:"Fantasy league id (0 = configured default)"`
	Round  int `json:"round" jsonschema:"Fantasy round id (0 = configured default)"`
}

// LeagueParticipantsOutput is the output of the league_participants tool.
type LeagueParticipantsOutput struct {
	League           int                  `json:"league"`
	Round            int                  `json:"round"`
	ParticipantCount int                  `json:"participant_count"`
	Participants     []league.Participant `json:"participants"`
}

func buildLeagueParticipants(cfg ServerConfig, args LeagueParticipantsArgs) (LeagueParticipantsOutput, error) {
	leagueID, err := resolveLeague(cfg, args.League)
	if err != nil {
		return LeagueParticipantsOutput{}, err
	}
	round, err := resolveRound(cfg, args.Round)
	if err != nil {
		return LeagueParticipantsOutput{}, err
	}

	snap, err := loadOwnershipSnapshot(cfg, leagueID, round)
	if err != nil {
		return LeagueParticipantsOutput{}, err
	}

	return LeagueParticipantsOutput{
		League:           leagueID,
		Round:            round,
		ParticipantCount: snap.ParticipantCount,
		Participants:     snap.Participants,
	}, nil
}
