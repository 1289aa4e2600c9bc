package access

import (
	"fmt"
	"strings"
	"sync"
)

// Roles stored on accounts
const (
	RoleStudent = "STUDENT"
	RoleCoach   = "COACH"
	RoleAdmin   = "ADMIN"
)

// Action identifies an administrative action evaluated by the guard
type Action string

const (
	ActionSuspend         Action = "SUSPEND"
	ActionBan             Action = "BAN"
	ActionFlag            Action = "FLAG"
	ActionActivate        Action = "ACTIVATE"
	ActionDelete          Action = "DELETE"
	ActionChangeRole      Action = "CHANGE_ROLE"
	ActionEditAccount     Action = "EDIT_ACCOUNT"
	ActionModerateContent Action = "MODERATE_CONTENT"
)

// Identity describes an acting or targeted account as the guard sees it.
// Superadmin standing is derived from the sealed allow-list, never from Role.
type Identity struct {
	ID    uint
	Role  string
	Email string
}

// DeniedError carries the reason an action was refused
type DeniedError struct {
	Reason string
}

func (e *DeniedError) Error() string {
	return e.Reason
}

func deny(format string, args ...interface{}) error {
	return &DeniedError{Reason: fmt.Sprintf(format, args...)}
}

// defaultSuperAdmins is the compiled-in root identity list. Seal may extend
// it from configuration at startup; nothing can shrink or alter it afterwards.
var defaultSuperAdmins = []string{"admin@gmail.com"}

var (
	sealOnce    sync.Once
	superAdmins map[string]bool
)

func buildSet(extra []string) map[string]bool {
	set := make(map[string]bool, len(defaultSuperAdmins)+len(extra))
	for _, email := range defaultSuperAdmins {
		set[strings.ToLower(email)] = true
	}
	for _, email := range extra {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			set[email] = true
		}
	}
	return set
}

// Seal fixes the superadmin allow-list for the lifetime of the process.
// Only the first call has any effect.
func Seal(emails []string) {
	sealOnce.Do(func() {
		superAdmins = buildSet(emails)
	})
}

// IsSuperAdmin reports whether the email is on the sealed allow-list.
func IsSuperAdmin(email string) bool {
	if superAdmins == nil {
		Seal(nil)
	}
	return superAdmins[strings.ToLower(email)]
}

// destructive actions are the ones the self-guard and superadmin immunity
// protect against
func destructive(action Action) bool {
	switch action {
	case ActionSuspend, ActionBan, ActionDelete, ActionChangeRole:
		return true
	}
	return false
}

// CanPerform evaluates whether actor may perform action on target. Rules are
// evaluated in order and the first match wins; anything not explicitly
// allowed is denied. A nil return means the action is allowed. This is the
// sole authority: route-level middleware only hides actions, it never
// replaces this check.
func CanPerform(actor Identity, action Action, target Identity) error {
	// Rule 1: no actor may target themselves with a destructive action.
	if destructive(action) && actor.ID != 0 && actor.ID == target.ID {
		return deny("you cannot perform this action on your own account")
	}

	// Rule 2: superadmin immunity. Checked before any role logic so that no
	// role assignment, including another superadmin, can get past it.
	if destructive(action) && IsSuperAdmin(target.Email) {
		return deny("this account is protected and cannot be modified")
	}

	actorSuper := IsSuperAdmin(actor.Email)

	// Rule 3: admin accounts are managed by superadmins only.
	if target.Role == RoleAdmin {
		if !actorSuper {
			return deny("only a superadmin may manage admin accounts")
		}
		return nil
	}

	// Rule 4: admins (and superadmins regardless of stored role) may moderate
	// content and manage student/coach accounts.
	if actorSuper || actor.Role == RoleAdmin {
		switch action {
		case ActionModerateContent, ActionSuspend, ActionBan, ActionFlag,
			ActionActivate, ActionDelete, ActionChangeRole, ActionEditAccount:
			return nil
		}
	}

	// Rule 5: deny by default.
	return deny("you do not have permission to perform this action")
}
