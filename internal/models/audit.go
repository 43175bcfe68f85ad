package models

import "time"

// AuditAction is the closed set of security events that get recorded.
type AuditAction string

const (
	AuditActionLogin  AuditAction = "login"
	AuditActionLogout AuditAction = "logout"
	AuditActionFailed AuditAction = "failed"
)

// AuditLog represents one security event. Rows are append-only: the
// application exposes no update or delete path for them. UserID is NULL for
// failed attempts and after the user is deleted.
type AuditLog struct {
	ID        string      `db:"id" json:"id"`
	UserID    *string     `db:"user_id" json:"user_id,omitempty"`
	Action    AuditAction `db:"action" json:"action"`
	IPAddress string      `db:"ip_address" json:"ip_address"`
	UserAgent string      `db:"user_agent" json:"user_agent"`
	Details   string      `db:"details" json:"details"`
	Timestamp time.Time   `db:"timestamp" json:"timestamp"`
}

// AuthEvent is the typed record the authentication flow hands to the audit
// writer right after each outcome. A direct call, not a pub/sub hook.
type AuthEvent struct {
	Action    AuditAction
	UserID    *string
	Username  string
	IP        string
	UserAgent string
}
