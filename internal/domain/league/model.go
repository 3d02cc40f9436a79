package league

import "fmt"

// League is one competition season, e.g. "Okresní přebor - 2024/2025".
// (name, season) is unique.
type League struct {
	ID          int64
	Name        string
	Season      string
	Description string
}

func (l League) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.Season == "" {
		return fmt.Errorf("league season is required")
	}

	return nil
}

func (l League) DisplayName() string {
	return l.Name + " - " + l.Season
}
