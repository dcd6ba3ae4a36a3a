package domain

import "errors"

// Role is the access tier an actor operates under.
type Role string

const (
	RoleCore    Role = "CORE"
	RoleManager Role = "MANAGER"
	RoleAdmin   Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCore, RoleManager, RoleAdmin:
		return true
	}
	return false
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")
var ErrUserNotFound = errors.New("user not found")

// User is a roster entry: an account that may authenticate.
type User struct {
	ID              int64   `json:"id" bson:"_id"`
	Username        string  `json:"username" bson:"username"`
	PasswordHash    string  `json:"-" bson:"password_hash,omitempty"`
	Role            Role    `json:"role" bson:"role"`
	AssignedVillage Village `json:"assigned_village,omitempty" bson:"assigned_village,omitempty"`
}

// Actor is the authenticated identity carried through every repository
// call for the lifetime of a session. AssignedVillage is set exactly
// when Role is MANAGER.
type Actor struct {
	ID              int64   `json:"id"`
	Username        string  `json:"username"`
	Role            Role    `json:"role"`
	AssignedVillage Village `json:"assigned_village,omitempty"`
}

// Actor returns the session identity for a roster entry.
func (u User) Actor() Actor {
	return Actor{
		ID:              u.ID,
		Username:        u.Username,
		Role:            u.Role,
		AssignedVillage: u.AssignedVillage,
	}
}
