// Package sessionrepo provides persistence for user accounts and session
// tokens. Sessions are issued by an external sign-in flow; this package only
// resolves and expires them.
package sessionrepo

import (
	"time"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for user accounts.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Role      string    `gorm:"type:varchar(50);not null;default:customer"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null"`
}

// TableName specifies the database table name for user entities.
// Overrides GORM's default naming convention to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// SessionDTO represents the database structure for session tokens.
// Deleting a user cascades to their sessions.
type SessionDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Token     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `gorm:"type:timestamptz;not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`

	User UserDTO `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for session entities.
// Overrides GORM's default naming convention to use "sessions".
func (SessionDTO) TableName() string {
	return "sessions"
}
