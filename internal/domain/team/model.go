package team

import "fmt"

// Team is one club inside a league. Exactly one team should carry the
// IsClubTeam flag for the site's own club; reads resolve ties by lowest id.
type Team struct {
	ID          int64
	LeagueID    *int64
	Name        string
	City        string
	FoundedYear *int
	FlagPath    string
	IsClubTeam  bool
}

func (t Team) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
