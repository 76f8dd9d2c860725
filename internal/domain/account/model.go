package account

import "time"

type User struct {
	ID              int64      `db:"id"                json:"id"`
	Name            string     `db:"name"              json:"name"`
	Email           string     `db:"email"             json:"email"`
	PasswordHash    string     `db:"password"          json:"-"`
	EmailVerifiedAt *time.Time `db:"email_verified_at" json:"email_verified_at"`
	CreatedAt       time.Time  `db:"created_at"        json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"        json:"updated_at"`
}

func (u *User) Verified() bool {
	return u.EmailVerifiedAt != nil
}

// APIToken records an issued bearer token by its jti so logout can
// revoke it. The token itself is never stored.
type APIToken struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	TokenID   string    `db:"token_id"`
	Revoked   bool      `db:"revoked"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}
