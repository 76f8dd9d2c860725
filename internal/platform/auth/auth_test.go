package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestTokenIssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)

	token, jti, _, err := issuer.Issue(42, "Jane Doe")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if jti == "" {
		t.Error("expected non-empty jti")
	}

	claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	uid, err := claims.UserID()
	if err != nil {
		t.Fatalf("UserID() error: %v", err)
	}
	if uid != 42 {
		t.Errorf("expected user id 42, got %d", uid)
	}
	if claims.ID != jti {
		t.Errorf("expected jti %q, got %q", jti, claims.ID)
	}
	if claims.Name != "Jane Doe" {
		t.Errorf("expected name Jane Doe, got %q", claims.Name)
	}
}

func TestTokenParseWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer([]byte("secret-a"), time.Hour)
	other := NewTokenIssuer([]byte("secret-b"), time.Hour)

	token, _, _, err := issuer.Issue(1, "")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if _, err := other.Parse(token); err == nil {
		t.Error("expected error parsing token with wrong secret")
	}
}

func TestTokenParseExpired(t *testing.T) {
	issuer := NewTokenIssuer([]byte("secret"), -time.Minute)

	token, _, _, err := issuer.Issue(1, "")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if _, err := issuer.Parse(token); err == nil {
		t.Error("expected error parsing expired token")
	}
}

type fakeRevocations struct {
	revoked map[string]bool
}

func (f *fakeRevocations) IsRevoked(_ context.Context, jti string) (bool, error) {
	return f.revoked[jti], nil
}

func TestBearerAuthMiddleware(t *testing.T) {
	issuer := NewTokenIssuer([]byte("secret"), time.Hour)
	token, jti, _, err := issuer.Issue(7, "Test User")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	revocations := &fakeRevocations{revoked: map[string]bool{}}
	mw := BearerAuth(issuer, revocations)
	handler := mw(func(c echo.Context) error {
		uid := UserIDFromContext(c.Request().Context())
		if uid != 7 {
			t.Errorf("expected user id 7 on context, got %d", uid)
		}
		return c.NoContent(http.StatusOK)
	})

	e := echo.New()

	tests := []struct {
		name       string
		header     string
		revokeJTI  string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, "", http.StatusOK},
		{"missing header", "", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", "", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", "", http.StatusUnauthorized},
		{"revoked token", "Bearer " + token, jti, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			revocations.revoked = map[string]bool{}
			if tt.revokeJTI != "" {
				revocations.revoked[tt.revokeJTI] = true
			}

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler(c)
			status := rec.Code
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}
			if status != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, status)
			}
		})
	}
}

func TestURLSignerRoundTrip(t *testing.T) {
	signer := NewURLSigner([]byte("secret"))

	expires, sig := signer.Sign("/api/verify-email/3/abc", time.Hour)
	if err := signer.Verify("/api/verify-email/3/abc", expires, sig); err != nil {
		t.Errorf("expected valid signature, got %v", err)
	}

	if err := signer.Verify("/api/verify-email/4/abc", expires, sig); err == nil {
		t.Error("expected error for altered path")
	}
	if err := signer.Verify("/api/verify-email/3/abc", expires+1, sig); err == nil {
		t.Error("expected error for altered expiry")
	}
}

func TestURLSignerExpired(t *testing.T) {
	signer := NewURLSigner([]byte("secret"))

	expires, sig := signer.Sign("/api/verify-email/3/abc", -time.Minute)
	if err := signer.Verify("/api/verify-email/3/abc", expires, sig); err == nil {
		t.Error("expected error for expired link")
	}
}
