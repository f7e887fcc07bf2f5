package sessionrepo

import (
	"context"
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/ports"
	"shiptrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormIdentityProvider resolves session tokens against the sessions table.
// Implements both IdentityProvider for the request path and SessionStore
// for background maintenance.
type GormIdentityProvider struct {
	db *gorm.DB
}

// NewGormIdentityProvider creates a token resolver backed by GORM.
func NewGormIdentityProvider(db *gorm.DB) *GormIdentityProvider {
	return &GormIdentityProvider{db: db}
}

// Resolve returns the identity behind the given session token. Unknown
// and expired tokens are indistinguishable to the caller; both read as
// unauthorized.
func (p *GormIdentityProvider) Resolve(ctx context.Context, token string) (ports.Identity, error) {
	if token == "" {
		return ports.Identity{}, errs.NewUnauthorizedError("session token is required")
	}

	var session SessionDTO
	err := p.db.WithContext(ctx).
		Preload("User").
		First(&session, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Identity{}, errs.NewUnauthorizedError("unknown session token")
		}
		return ports.Identity{}, err
	}

	if !session.ExpiresAt.After(time.Now().UTC()) {
		return ports.Identity{}, errs.NewUnauthorizedError("session has expired")
	}

	userID, err := kernel.UUIDFromBytes(session.UserID[:])
	if err != nil {
		return ports.Identity{}, err
	}

	return ports.Identity{
		UserID: userID,
		Name:   session.User.Name,
		Email:  session.User.Email,
		Role:   session.User.Role,
	}, nil
}

// DeleteExpired removes all sessions whose expiry is before now and
// reports how many rows were deleted.
func (p *GormIdentityProvider) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := p.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&SessionDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
