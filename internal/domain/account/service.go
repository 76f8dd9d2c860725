package account

import (
	"context"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/maternity/records/internal/platform/auth"
	"github.com/maternity/records/internal/validation"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidLink        = errors.New("invalid or expired verification link")
)

type Service struct {
	repo      Repository
	issuer    *auth.TokenIssuer
	signer    *auth.URLSigner
	log       zerolog.Logger
	verifyTTL time.Duration
}

func NewService(repo Repository, issuer *auth.TokenIssuer, signer *auth.URLSigner, log zerolog.Logger, verifyTTL time.Duration) *Service {
	return &Service{repo: repo, issuer: issuer, signer: signer, log: log, verifyTTL: verifyTTL}
}

func (s *Service) emailTaken(ctx context.Context, value interface{}) (bool, error) {
	email, ok := value.(string)
	if !ok {
		return false, nil
	}
	return s.repo.EmailTaken(ctx, email)
}

// Register creates the user and issues a signed verification link. There
// is no mailer; the link is written to the log for delivery out of band.
func (s *Service) Register(ctx context.Context, fields map[string]interface{}) (*User, validation.Errors, error) {
	errs, err := validation.Validate(ctx, fields, registerRules(s.emailTaken))
	if err != nil {
		return nil, nil, err
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	name, _ := fields["name"].(string)
	email, _ := fields["email"].(string)
	password, _ := fields["password"].(string)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := &User{Name: name, Email: email, PasswordHash: string(hash)}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, nil, err
	}

	s.logVerificationLink(user)
	return user, nil, nil
}

// Login checks the credentials, issues a bearer token and records its
// jti so logout can revoke it.
func (s *Service) Login(ctx context.Context, email, password string) (string, *User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, jti, expiresAt, err := s.issuer.Issue(user.ID, user.Name)
	if err != nil {
		return "", nil, err
	}
	if err := s.repo.InsertToken(ctx, &APIToken{UserID: user.ID, TokenID: jti, ExpiresAt: expiresAt}); err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *Service) Logout(ctx context.Context, jti string) error {
	return s.repo.RevokeToken(ctx, jti)
}

// IsRevoked satisfies the bearer-auth middleware's revocation check.
func (s *Service) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return s.repo.TokenRevoked(ctx, jti)
}

func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return user, err
}

// VerifyEmail validates a signed verification link and marks the user
// verified. Verifying an already-verified user is a no-op.
func (s *Service) VerifyEmail(ctx context.Context, id int64, hash string, expires int64, signature string) (*User, error) {
	if err := s.signer.Verify(verifyPath(id, hash), expires, signature); err != nil {
		return nil, ErrInvalidLink
	}

	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare([]byte(emailHash(user.Email)), []byte(hash)) != 1 {
		return nil, ErrInvalidLink
	}

	if !user.Verified() {
		if err := s.repo.MarkVerified(ctx, user.ID); err != nil {
			return nil, err
		}
		now := time.Now()
		user.EmailVerifiedAt = &now
	}
	return user, nil
}

// ResendVerification regenerates the signed link for the user.
func (s *Service) ResendVerification(ctx context.Context, id int64) error {
	user, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	s.logVerificationLink(user)
	return nil
}

func (s *Service) logVerificationLink(user *User) {
	path := verifyPath(user.ID, emailHash(user.Email))
	expires, signature := s.signer.Sign(path, s.verifyTTL)
	s.log.Info().
		Int64("user_id", user.ID).
		Str("link", fmt.Sprintf("%s?expires=%d&signature=%s", path, expires, signature)).
		Msg("verification link issued")
}

func verifyPath(id int64, hash string) string {
	return fmt.Sprintf("/api/verify-email/%d/%s", id, hash)
}

func emailHash(email string) string {
	sum := sha1.Sum([]byte(email))
	return hex.EncodeToString(sum[:])
}
