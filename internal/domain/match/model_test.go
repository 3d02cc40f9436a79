package match

import (
	"testing"
	"time"
)

func TestMatch_IsFinished(t *testing.T) {
	home := 2
	away := 1

	cases := []struct {
		name      string
		homeScore *int
		awayScore *int
		want      bool
	}{
		{name: "no scores", want: false},
		{name: "only home score", homeScore: &home, want: false},
		{name: "only away score", awayScore: &away, want: false},
		{name: "both scores", homeScore: &home, awayScore: &away, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := Match{
				Date:      time.Date(2025, time.May, 10, 16, 30, 0, 0, time.UTC),
				HomeScore: tc.homeScore,
				AwayScore: tc.awayScore,
			}
			if got := m.IsFinished(); got != tc.want {
				t.Fatalf("IsFinished: got=%t want=%t", got, tc.want)
			}
		})
	}
}

func TestMatch_IsClubMatch(t *testing.T) {
	cases := []struct {
		name string
		home bool
		away bool
		want bool
	}{
		{name: "neither side", want: false},
		{name: "home side", home: true, want: true},
		{name: "away side", away: true, want: true},
		{name: "both sides", home: true, away: true, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := Match{
				Home: Side{TeamID: 1, Name: "TJ Družba Hlavnice", IsClubTeam: tc.home},
				Away: Side{TeamID: 2, Name: "Sokol Slavkov", IsClubTeam: tc.away},
			}
			if got := m.IsClubMatch(); got != tc.want {
				t.Fatalf("IsClubMatch: got=%t want=%t", got, tc.want)
			}
		})
	}
}
