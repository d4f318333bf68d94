package session

import (
	"context"

	"github.com/honeycarbs/jobboard/internal/domain"
)

// StorageKey is the durable slot holding the serialized current user
const StorageKey = "jobboard_user"

// UserRepository is the known-users list
type UserRepository interface {
	// FindByEmail matches case-insensitively after trimming; domain.ErrNotFound when absent
	FindByEmail(ctx context.Context, email string) (domain.User, error)

	// GetByID returns domain.ErrNotFound when the id is unknown
	GetByID(ctx context.Context, id string) (domain.User, error)

	// Create stores the user, domain.ErrEmailTaken if the email is already known
	Create(ctx context.Context, user domain.User) error
}

// Storage is a durable key-value store for the session record
type Storage interface {
	// Load returns domain.ErrNotFound when the key is missing
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
