package ports

import (
	"context"

	"github.com/randomtoy/menu-designer/internal/domain"
)

// SessionStore holds editing sessions for the lifetime of the process.
type SessionStore interface {
	Get(ctx context.Context, id string) (domain.Session, error)
	Save(ctx context.Context, s domain.Session) error
	// Update applies fn to the stored session and saves the result as one
	// step. Nothing is saved when fn fails.
	Update(ctx context.Context, id string, fn func(domain.Session) (domain.Session, error)) (domain.Session, error)
}
