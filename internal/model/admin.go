package model

import "time"

// AdminUser is a user account as seen by the administration API.
type AdminUser struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	IsActive  bool       `json:"isActive"`
	Roles     []string   `json:"roles"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// UpdateUserRequest patches an account; nil fields are left unchanged.
type UpdateUserRequest struct {
	IsActive *bool    `json:"isActive,omitempty"`
	Roles    []string `json:"roles,omitempty"`
}
