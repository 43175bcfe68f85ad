package models

import "time"

// Permission enumerates the grantable permissions. Grants are stored per
// user and are independent of the staff flag; superusers implicitly hold
// every permission.
type Permission string

const (
	PermissionViewTask     Permission = "view_task"
	PermissionChangeTask   Permission = "change_task"
	PermissionDeleteTask   Permission = "delete_task"
	PermissionViewLogEntry Permission = "view_logentry"
)

// KnownPermissions lists every permission the grant table accepts.
var KnownPermissions = []Permission{
	PermissionViewTask,
	PermissionChangeTask,
	PermissionDeleteTask,
	PermissionViewLogEntry,
}

// Valid reports whether p is one of the known grantable permissions.
func (p Permission) Valid() bool {
	for _, known := range KnownPermissions {
		if p == known {
			return true
		}
	}
	return false
}

// User represents an application user stored in the users table.
type User struct {
	ID           string     `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	PasswordHash string     `db:"password_hash" json:"-"`
	IsStaff      bool       `db:"is_staff" json:"is_staff"`
	IsSuperuser  bool       `db:"is_superuser" json:"is_superuser"`
	Active       bool       `db:"active" json:"active"`
	LastLogin    *time.Time `db:"last_login" json:"last_login,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`

	// Permissions holds the user's grants, loaded from user_permissions.
	Permissions []Permission `db:"-" json:"permissions"`
}

// HasPermission reports whether the user may perform the given action.
func (u *User) HasPermission(p Permission) bool {
	if u.IsSuperuser {
		return true
	}
	for _, granted := range u.Permissions {
		if granted == p {
			return true
		}
	}
	return false
}
