package domain

import (
	"context"
	"time"
)

// Role codes carried on users and in token claims.
const (
	RoleAdmin     = "admin"
	RoleOrganizer = "organizer"
	RoleStudent   = "student"
	RoleSponsor   = "sponsor"
)

// User represents a platform account.
// swagger:model User
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    Status    `json:"status"`
	CollegeID *string   `json:"college_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) DocumentID() string       { return u.ID }
func (u *User) DocumentKind() EntityKind { return KindUser }
func (u *User) DocumentStatus() Status   { return u.Status }

// DisplayName falls back to the email, then the id.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Email != "" {
		return u.Email
	}
	return u.ID
}

// Principal is the authenticated caller extracted from a bearer token.
type Principal struct {
	UserID string
	Email  string
	Roles  []string
}

// HasRole reports whether the principal carries role.
func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated principal.
type TokenVerifier interface {
	Verify(token string) (*Principal, error)
}

// AdminDirectory lists the ids of every admin account.
type AdminDirectory interface {
	ListAdminIDs(ctx context.Context) ([]string, error)
}
