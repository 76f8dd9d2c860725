package account

import "context"

type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByID(ctx context.Context, id int64) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	MarkVerified(ctx context.Context, id int64) error

	InsertToken(ctx context.Context, t *APIToken) error
	RevokeToken(ctx context.Context, jti string) error
	TokenRevoked(ctx context.Context, jti string) (bool, error)
}
