package domain

import "time"

// Role is the coarse-grained RBAC role carried by every account.
type Role string

const (
	RoleClient Role = "CLIENT"
	RoleAdmin  Role = "ADMIN"
)

// ParseRole maps a raw string onto the closed role set.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleClient, RoleAdmin:
		return r, true
	default:
		return "", false
	}
}

// User is both the credential record and the "user" resource.
type User struct {
	ID           int64      `json:"id" bson:"_id"`
	FirstName    string     `json:"first_name" bson:"first_name"`
	LastName     string     `json:"last_name" bson:"last_name"`
	Email        string     `json:"email" bson:"email"`
	PasswordHash string     `json:"-" bson:"password_hash"`
	Role         Role       `json:"role" bson:"role"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" bson:"updated_at"`
	DeletedAt    *time.Time `json:"-" bson:"deleted_at"`
}

// Ownership returns the authorization view of the account. A user owns itself.
func (u *User) Ownership() Resource {
	return Resource{
		Kind:      KindUser,
		ID:        u.ID,
		OwnerID:   u.ID,
		Published: true,
		DeletedAt: u.DeletedAt,
	}
}
