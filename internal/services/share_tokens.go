package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

const shareIssuer = "trip-quote"

// ShareTokens signs links that let a guest open the export of one session without
// knowing its id.
type ShareTokens struct {
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

func (t ShareTokens) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

// Enabled reports whether a signing secret is configured.
func (t ShareTokens) Enabled() bool { return len(t.Secret) > 0 }

// Issue returns a signed token for sessionID and its expiry.
func (t ShareTokens) Issue(sessionID string) (string, time.Time, error) {
	if !t.Enabled() {
		return "", time.Time{}, domain.ConflictError{Resource: "share link", Msg: "sharing is disabled"}
	}
	ttl := t.TTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	now := t.now()
	exp := now.Add(ttl)

	claims := jwt.RegisteredClaims{
		Issuer:    shareIssuer,
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.Secret)
	if err != nil {
		return "", time.Time{}, domain.InternalError{Msg: "failed to sign share link", Err: err}
	}
	return token, exp, nil
}

// Verify returns the session id carried by a valid token.
func (t ShareTokens) Verify(token string) (string, error) {
	if !t.Enabled() {
		return "", domain.ConflictError{Resource: "share link", Msg: "sharing is disabled"}
	}
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return t.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(shareIssuer),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ValidationError{Field: "token", Msg: "share link expired", Err: err}
		}
		return "", domain.ValidationError{Field: "token", Msg: "invalid share link", Err: err}
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", domain.ValidationError{Field: "token", Msg: "invalid share link"}
	}
	return claims.Subject, nil
}

// String hides the secret when the struct is logged.
func (t ShareTokens) String() string {
	return fmt.Sprintf("ShareTokens{enabled=%v ttl=%s}", t.Enabled(), t.TTL)
}
