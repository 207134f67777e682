package usecase

import (
	"context"
	"errors"
	"fmt"

	"task_backend/internal/feature/auth/domain/entity"
	"task_backend/internal/platform/hash"
	jwtmw "task_backend/internal/platform/jwt"
	"task_backend/internal/shared/apperr"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. Returns ErrEmailAlreadyExists when the
	// email is taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmailLike retrieves a user whose email contains the given
	// string, case-insensitively. Returns ErrUserNotFound when no user
	// matches.
	FindByEmailLike(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by ID. Returns ErrUserNotFound when absent.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// UpdateRefreshTokenHash overwrites the user's stored refresh-token
	// hash. Last write wins; this is what rotates the session.
	UpdateRefreshTokenHash(ctx context.Context, userID, tokenHash string) error
}

// TokenIssuer abstracts token creation and refresh-token verification.
type TokenIssuer interface {
	IssuePair(userID, email string) (accessToken, refreshToken string, err error)
	VerifyRefresh(token string) (*jwtmw.Claims, error)
}

// CredentialHasher abstracts one-way hashing for passwords and refresh
// tokens.
type CredentialHasher interface {
	Hash(secret string) (string, error)
	Verify(secret, hashed string) bool
	HashToken(token string) (string, error)
	VerifyToken(token, hashed string) bool
}

// TokenPair is the result of a successful signin or refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthUsecase composes the hasher, token issuer and user repository into the
// signup, signin, refresh and identity-resolution flows.
type AuthUsecase struct {
	users  UserRepository
	tokens TokenIssuer
	hasher CredentialHasher
}

// NewAuthUsecase creates a new AuthUsecase.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, hasher CredentialHasher) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens, hasher: hasher}
}

// Signup registers a new user with a hashed password. No tokens are issued;
// the caller signs in separately.
//
// The duplicate check intentionally uses the same substring email match as
// signin, so an email containing an existing one is rejected too.
func (u *AuthUsecase) Signup(ctx context.Context, email, password string) error {
	_, err := u.users.FindByEmailLike(ctx, email)
	if err == nil {
		return apperr.New(apperr.KindDuplicate, "User already exists with this email")
	}
	if !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := u.users.Create(ctx, &entity.User{Email: email, Password: hashed}); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return apperr.New(apperr.KindDuplicate, "User already exists with this email")
		}
		return err
	}
	return nil
}

// Signin authenticates a user and returns a fresh token pair. The stored
// refresh-token hash is overwritten even on a plain login, so any previously
// issued refresh token stops working.
func (u *AuthUsecase) Signin(ctx context.Context, email, password string) (TokenPair, error) {
	user, err := u.users.FindByEmailLike(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// Burn a bcrypt compare so lookup misses take as long as
			// password mismatches.
			u.hasher.Verify(password, hash.DummyHash)
			return TokenPair{}, apperr.New(apperr.KindUnauthorized, "User not found")
		}
		return TokenPair{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if !u.hasher.Verify(password, user.Password) {
		return TokenPair{}, apperr.New(apperr.KindUnauthorized, "Invalid password")
	}

	return u.issueAndRotate(ctx, user)
}

// RefreshTokens exchanges a valid refresh token for a new pair, rotating the
// stored hash. Re-presenting the old token afterwards fails the hash
// comparison.
func (u *AuthUsecase) RefreshTokens(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := u.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return TokenPair{}, apperr.Wrap(apperr.KindUnauthorized, "Invalid or expired token", err)
	}

	user, err := u.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return TokenPair{}, apperr.New(apperr.KindBadRequest, "No user found or refresh token not set")
		}
		return TokenPair{}, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.RefreshTokenHash == nil {
		return TokenPair{}, apperr.New(apperr.KindBadRequest, "No user found or refresh token not set")
	}

	if !u.hasher.VerifyToken(refreshToken, *user.RefreshTokenHash) {
		return TokenPair{}, apperr.New(apperr.KindUnauthorized, "Invalid refresh token")
	}

	return u.issueAndRotate(ctx, user)
}

// issueAndRotate signs a new pair and overwrites the stored refresh hash.
// Both must succeed for the pair to be returned.
func (u *AuthUsecase) issueAndRotate(ctx context.Context, user *entity.User) (TokenPair, error) {
	access, refresh, err := u.tokens.IssuePair(user.ID, user.Email)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	tokenHash, err := u.hasher.HashToken(refresh)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to hash refresh token: %w", err)
	}
	if err := u.users.UpdateRefreshTokenHash(ctx, user.ID, tokenHash); err != nil {
		return TokenPair{}, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// UserReadByID loads a user by ID for callers that already hold a verified
// token.
func (u *AuthUsecase) UserReadByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperr.New(apperr.KindUnauthorized, "User not found")
		}
		return nil, err
	}
	return user, nil
}

// ResolveGateIdentity implements the request gate's identity lookup. A
// missing or soft-deleted user is rejected.
func (u *AuthUsecase) ResolveGateIdentity(ctx context.Context, userID string) (jwtmw.Identity, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return jwtmw.Identity{}, apperr.New(apperr.KindUnauthorized, "User not found or deleted")
		}
		return jwtmw.Identity{}, err
	}
	if user.IsDeleted {
		return jwtmw.Identity{}, apperr.New(apperr.KindUnauthorized, "User not found or deleted")
	}
	return jwtmw.Identity{ID: user.ID, Email: user.Email}, nil
}
