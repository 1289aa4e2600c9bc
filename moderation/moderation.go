package moderation

import "fmt"

// Status defines the moderation status of a submitted record
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Moderation actions accepted from the admin surface
const (
	ActionApprove = "APPROVE"
	ActionReject  = "REJECT"
)

// QuickRejectReasons is the fixed list of canned rejection notes offered to
// admins. Free-text notes are also accepted.
var QuickRejectReasons = []string{
	"Duplicate submission",
	"Insufficient information",
	"Inappropriate or offensive content",
	"Suspected spam or self-promotion",
	"Broken or misleading course link",
}

// Decision is the outcome of applying a moderation action to a record.
// Changed is false when the record was already in the requested status;
// re-applying the same decision is a success, not an error.
type Decision struct {
	NewStatus Status
	Changed   bool
	Note      string
}

// ValidStatus reports whether s is one of the known moderation statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Apply resolves a moderation action against the record's current status.
// Any status may move to APPROVED or REJECTED; there is no path back to
// PENDING. The transition itself is a single-field update on one record, so
// the caller either persists Decision.NewStatus or keeps the prior status on
// a store failure; no partial state exists.
func Apply(current Status, action, note string) (Decision, error) {
	if !ValidStatus(current) {
		return Decision{}, fmt.Errorf("unknown moderation status %q", current)
	}

	var target Status
	switch action {
	case ActionApprove:
		target = StatusApproved
	case ActionReject:
		target = StatusRejected
	default:
		return Decision{}, fmt.Errorf("invalid action %q: use APPROVE or REJECT", action)
	}

	if current == target {
		return Decision{NewStatus: current, Changed: false, Note: note}, nil
	}

	return Decision{NewStatus: target, Changed: true, Note: note}, nil
}
