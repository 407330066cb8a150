package engine

import "fmt"

// Role is an organizational role. Roles are a fixed set; each role maps to
// exactly one questionnaire level.
type Role string

const (
	RoleFounder     Role = "founder"
	RoleCoFounder   Role = "co_founder"
	RoleCEO         Role = "ceo"
	RoleCFO         Role = "cfo"
	RoleCTO         Role = "cto"
	RoleCOO         Role = "coo"
	RoleProjectHead Role = "project_head"
	RoleHRManager   Role = "hr_manager"
	RoleRecruiter   Role = "recruiter"
	RoleHRExecutive Role = "hr_executive"
)

// Level selects which questionnaire fields and which rule set apply to a
// reviewer. It is derived from the role, never supplied by a user.
type Level int

const (
	Level1 Level = 1 // strategic / ownership
	Level2 Level = 2 // execution / delivery
	Level3 Level = 3 // HR / operations support
)

var roleLevels = map[Role]Level{
	RoleFounder:     Level1,
	RoleCoFounder:   Level1,
	RoleCEO:         Level2,
	RoleCFO:         Level2,
	RoleCTO:         Level2,
	RoleCOO:         Level2,
	RoleProjectHead: Level2,
	RoleHRManager:   Level3,
	RoleRecruiter:   Level3,
	RoleHRExecutive: Level3,
}

// LevelForRole returns the questionnaire level for a role.
func LevelForRole(role Role) (Level, error) {
	level, ok := roleLevels[role]
	if !ok {
		return 0, fmt.Errorf("%w: unknown role %q", ErrUnknownRole, role)
	}
	return level, nil
}

// ValidRole reports whether role is one of the fixed organizational roles.
func ValidRole(role Role) bool {
	_, ok := roleLevels[role]
	return ok
}

// escalationRoles is the upper tier whose high-risk submissions escalate the
// overall risk directly. Note that this set is wider than questionnaire
// level 1: it additionally contains ceo and cfo, which answer the level 2
// questionnaire. The two groupings are intentionally kept separate.
var escalationRoles = map[Role]bool{
	RoleFounder:   true,
	RoleCoFounder: true,
	RoleCEO:       true,
	RoleCFO:       true,
}

// EscalationRole reports whether a high-risk submission from this role forces
// the overall risk to high.
func EscalationRole(role Role) bool {
	return escalationRoles[role]
}

// CanCreateJobOpenings reports whether the role may propose job openings.
func CanCreateJobOpenings(role Role) bool {
	return role == RoleFounder || role == RoleCoFounder
}

// Roles lists all organizational roles in hierarchy order.
func Roles() []Role {
	return []Role{
		RoleFounder, RoleCoFounder,
		RoleCEO, RoleCFO, RoleCTO, RoleCOO, RoleProjectHead,
		RoleHRManager, RoleRecruiter, RoleHRExecutive,
	}
}
