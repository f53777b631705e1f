package domain

import "time"

// Role controls what editorial operations a user may perform. Admins publish
// directly and manage the team; editors submit articles for approval.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleEditor
}

// User is a CMS account. PasswordHash is bcrypt and never serialized.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Subscriber is a newsletter signup captured from the public site.
type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactMessage is a reader message relayed to the newsroom inbox.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}
