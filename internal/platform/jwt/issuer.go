// Package jwtmw implements token issuance, verification and the request
// authentication middleware.
package jwtmw

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, malformed payload, or past expiry. Callers never learn
// which.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the payload carried by both access and refresh tokens. The same
// schema is used at signin and refresh: the registered subject plus explicit
// id and email claims.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Issuer creates and verifies signed tokens.
type Issuer interface {
	// IssuePair signs an access and a refresh token for the given user.
	IssuePair(userID, email string) (accessToken, refreshToken string, err error)
	// VerifyAccess validates a token against the access secret.
	VerifyAccess(token string) (*Claims, error)
	// VerifyRefresh validates a token against the refresh secret.
	VerifyRefresh(token string) (*Claims, error)
}

type issuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewIssuer creates an Issuer with separate secrets and lifetimes for access
// and refresh tokens.
func NewIssuer(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) Issuer {
	return &issuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (i *issuer) sign(userID, email string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			// Timestamps are whole seconds, so jti keeps tokens issued
			// back to back distinct. Rotation depends on that.
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// IssuePair signs both tokens concurrently. Both signatures complete before
// the pair is returned.
func (i *issuer) IssuePair(userID, email string) (string, string, error) {
	var (
		access, refresh       string
		accessErr, refreshErr error
		wg                    sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		access, accessErr = i.sign(userID, email, i.accessSecret, i.accessTTL)
	}()
	go func() {
		defer wg.Done()
		refresh, refreshErr = i.sign(userID, email, i.refreshSecret, i.refreshTTL)
	}()
	wg.Wait()

	if accessErr != nil {
		return "", "", accessErr
	}
	if refreshErr != nil {
		return "", "", refreshErr
	}
	return access, refresh, nil
}

func (i *issuer) VerifyAccess(token string) (*Claims, error) {
	return verify(token, i.accessSecret)
}

func (i *issuer) VerifyRefresh(token string) (*Claims, error) {
	return verify(token, i.refreshSecret)
}

func verify(tokenStr string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; anything else is a forgery attempt.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
