package model

// SmartAlert is a behavioral alert record. Id is deterministic over
// (type, app label or "global", calendar day), which is what makes alert
// insertion idempotent within a day. JSON field names match the records
// persisted by existing installations.
type SmartAlert struct {
	Id        string `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
	AppLabel  string `json:"appLabel,omitempty"`
}

// Well-known alert types raised by the limit and access checks.
const (
	AlertUsageAccess   = "USAGE_ACCESS"
	AlertLimitExceeded = "LIMIT_EXCEEDED"
	AlertNoLimits      = "NO_LIMITS"
)
