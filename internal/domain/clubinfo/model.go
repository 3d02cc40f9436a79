package clubinfo

import "time"

// ClubInfo is the single record describing the club itself.
type ClubInfo struct {
	Name         string
	FoundedYear  int
	History      string
	LogoPath     string
	Address      string
	ContactEmail string
	ContactPhone string
}

// YearsOfExistence reports how long the club has existed as of now.
// Zero when the founded year is unset or in the future.
func (c ClubInfo) YearsOfExistence(now time.Time) int {
	if c.FoundedYear <= 0 {
		return 0
	}
	years := now.Year() - c.FoundedYear
	if years < 0 {
		return 0
	}
	return years
}
