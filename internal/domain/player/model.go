package player

import (
	"fmt"
	"time"
)

// Position is a roster display group.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

func ParsePosition(v string) (Position, error) {
	switch Position(v) {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return Position(v), nil
	default:
		return "", fmt.Errorf("unknown player position %q", v)
	}
}

// Player is one roster entry. (team, jersey number) is unique.
type Player struct {
	ID           int64
	TeamID       int64
	JerseyNumber int
	FirstName    string
	LastName     string
	Position     Position
	BirthDate    *time.Time
	PhotoPath    string
	Goals        int
	YellowCards  int
	RedCards     int
}

func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p Player) Validate() error {
	if p.TeamID <= 0 {
		return fmt.Errorf("player team id is required")
	}
	if p.JerseyNumber <= 0 {
		return fmt.Errorf("player jersey number must be positive")
	}
	if p.FirstName == "" || p.LastName == "" {
		return fmt.Errorf("player name is required")
	}
	if _, err := ParsePosition(string(p.Position)); err != nil {
		return err
	}

	return nil
}
