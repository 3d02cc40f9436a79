package management

import "fmt"

// Role is a management function inside the club.
type Role string

const (
	RolePresident Role = "PRESIDENT"
	RoleCoach     Role = "COACH"
	RoleAssistant Role = "ASSISTANT"
	RoleTreasurer Role = "TREASURER"
	RoleSecretary Role = "SECRETARY"
	RoleManager   Role = "MANAGER"
	RoleOther     Role = "OTHER"
)

func ParseRole(v string) (Role, error) {
	switch Role(v) {
	case RolePresident, RoleCoach, RoleAssistant, RoleTreasurer, RoleSecretary, RoleManager, RoleOther:
		return Role(v), nil
	default:
		return "", fmt.Errorf("unknown management role %q", v)
	}
}

// Member is one person on the club's management page, ordered by
// (display order, role).
type Member struct {
	ID           int64
	FirstName    string
	LastName     string
	Role         Role
	PhotoPath    string
	Bio          string
	Phone        string
	Email        string
	DisplayOrder int
}

func (m Member) FullName() string {
	return m.FirstName + " " + m.LastName
}
