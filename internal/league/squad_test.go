package league

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSquadFromPayload(t *testing.T) {
	raw := []byte(`{
		"userRound": {"score": 61.5},
		"squad": {
			"name": "Desert Foxes XI",
			"players": [
				{"fantasyPlayer": {"player": {"id": 1}}, "substitute": false, "captain": true},
				{"fantasyPlayer": {"player": {"id": 2}}, "substitute": false, "captain": false},
				{"fantasyPlayer": {"player": {"id": 3}}, "substitute": true, "captain": false},
				{"substitute": true, "captain": false}
			]
		}
	}`)

	var payload SquadPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	squad := SquadFromPayload("u1", payload)

	if squad.Name != "Desert Foxes XI" {
		t.Errorf("Name = %q, want Desert Foxes XI", squad.Name)
	}
	if squad.Score == nil || *squad.Score != 61.5 {
		t.Errorf("Score = %v, want 61.5", squad.Score)
	}
	if !reflect.DeepEqual(squad.Starters, []int64{1, 2}) {
		t.Errorf("Starters = %v, want [1 2]", squad.Starters)
	}
	if !reflect.DeepEqual(squad.Substitutes, []int64{3}) {
		t.Errorf("Substitutes = %v, want [3] (id-less slot skipped)", squad.Substitutes)
	}
	if squad.Captain == nil || *squad.Captain != 1 {
		t.Errorf("Captain = %v, want 1", squad.Captain)
	}
}

func TestSquadFromPayload_EmptyPayload(t *testing.T) {
	squad := SquadFromPayload("u1", SquadPayload{})
	if squad.Captain != nil || squad.Score != nil || len(squad.Starters) != 0 {
		t.Errorf("empty payload should yield empty squad, got %+v", squad)
	}
}

func TestUserID_DecodesNumbersAndStrings(t *testing.T) {
	cases := []struct {
		in   string
		want UserID
	}{
		{`"abc123"`, "abc123"},
		{`982615`, "982615"},
		{`null`, ""},
	}
	for _, tc := range cases {
		var u UserID
		if err := json.Unmarshal([]byte(tc.in), &u); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if u != tc.want {
			t.Errorf("UserID(%s) = %q, want %q", tc.in, u, tc.want)
		}
	}
}

func TestParticipantsFromPage_PreservesOrder(t *testing.T) {
	raw := []byte(`{"participants": [
		{"userId": 10, "teamName": "First"},
		{"userId": "u-20"},
		{"userId": 30, "teamName": "Third"}
	]}`)

	var page ParticipantsPage
	if err := json.Unmarshal(raw, &page); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := ParticipantsFromPage(page)
	want := []Participant{
		{UserID: "10", TeamName: "First"},
		{UserID: "u-20", TeamName: ""},
		{UserID: "30", TeamName: "Third"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("participants = %v, want %v", got, want)
	}
}
