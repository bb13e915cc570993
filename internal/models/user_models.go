package models

// Console roles. The role decides which layout the browser routes to and
// which route groups the gateway lets the session reach.
const (
	RoleAdmin         = "admin"
	RoleInventoryRep  = "inventory_representative"
	RoleProductionRep = "production_representative"
	RoleSalesRep      = "sales_representative"
)

// Profile statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// UserProfile carries the role and status attached to a user account.
type UserProfile struct {
	Role   string `json:"role"`
	Status string `json:"status"`
}

// User represents an account in the remote store's user list. Login succeeds
// only when username and email both match and the profile status is active.
type User struct {
	ID        int64       `json:"id"`
	Username  string      `json:"username" binding:"required"`
	Email     string      `json:"email" binding:"required"`
	FirstName string      `json:"first_name,omitempty"`
	LastName  string      `json:"last_name,omitempty"`
	Profile   UserProfile `json:"userprofile"`
}

// AuditLog is one administrative audit entry.
type AuditLog struct {
	LogID     int64  `json:"log_id"`
	Timestamp string `json:"timestamp"`
	User      int64  `json:"user,omitempty"`
	Action    string `json:"action"`
	Details   string `json:"details,omitempty"`
}
