package ports

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
)

// Identity is the resolved caller identity attached to authenticated
// requests. Authentication itself (sign-in, session issuance) is an
// external concern; the core only asks "is there a valid caller".
type Identity struct {
	UserID kernel.UUID
	Name   string
	Email  string

	// Role is stored on the user record ("customer", "staff", ...) but is
	// not consulted by any operation: every authenticated caller may list
	// and create orders and append updates. Kept on the identity so a
	// future authorization check has the data it needs.
	Role string
}

// IdentityProvider resolves an opaque session token into a caller identity.
type IdentityProvider interface {
	// Resolve returns the identity behind the given session token.
	// Returns an UnauthorizedError for empty, unknown, or expired tokens.
	Resolve(ctx context.Context, token string) (Identity, error)
}

// SessionStore exposes session maintenance operations used by background
// jobs rather than the request path.
type SessionStore interface {
	// DeleteExpired removes all sessions whose expiry is before now and
	// reports how many rows were deleted.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
