package client

import (
	"time"

	"starclip/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken   = errs.New("invalid bearer token")
	ErrSessionExpired = errs.New("session expired")
)

// Claims is the subset of the bearer token the client cares about. The token
// is issued and verified server-side; the client only decodes it to know who
// the dashboard belongs to and when the session runs out.
type Claims struct {
	CreatorID string `json:"creator_id"`
	jwt.RegisteredClaims
}

// Session carries the bearer credential for one authenticated dashboard
// owner. It is handed to the client explicitly; nothing in this module reads
// ambient storage.
type Session struct {
	token     string
	creatorID string
	expiresAt time.Time
}

// NewSession decodes the bearer token without verifying its signature (the
// client does not hold the signing secret; the server rejects tampered
// tokens anyway).
func NewSession(token string) (*Session, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, errs.Mark(err, ErrInvalidToken)
	}

	s := &Session{token: token, creatorID: claims.CreatorID}
	if claims.CreatorID == "" {
		s.creatorID = claims.Subject
	}
	if claims.ExpiresAt != nil {
		s.expiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}

func (s *Session) Token() string        { return s.token }
func (s *Session) CreatorID() string    { return s.creatorID }
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

// Expired reports whether the session is past its expiry. Tokens without an
// exp claim never expire client-side.
func (s *Session) Expired(now time.Time) bool {
	return !s.expiresAt.IsZero() && now.After(s.expiresAt)
}
