package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/slangstash/slang-service/internal/user/domain UserRepository

import "context"

// UserRepository lookups return nil without an error when no row matches.
type UserRepository interface {
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, user *User) error
	MarkVerified(ctx context.Context, email string) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	UpdateByUsername(ctx context.Context, currentUsername string, user *User) error
	DeleteByEmail(ctx context.Context, email string) error
	List(ctx context.Context) ([]User, error)
}
