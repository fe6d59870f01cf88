package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cleansync/models"
	"cleansync/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 72 * time.Hour

// Register creates a new account and issues an auth token.
func (svc *DefaultUserService) Register(ctx context.Context, fullName, email, phone, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if fullName == "" || email == "" || password == "" {
		return nil, NewUserError("name, email and password are required")
	}
	if len(password) < 8 {
		return nil, NewUserError("password must be at least 8 characters")
	}

	if existing, _ := svc.Repo.GetByEmail(ctx, email); existing != nil {
		return nil, NewUserError("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		FullName:     fullName,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := svc.Repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return svc.issueToken(ctx, u)
}

// Authenticate verifies credentials and issues a fresh auth token.
func (svc *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := svc.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, NewUserError("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, NewUserError("invalid email or password")
	}

	return svc.issueToken(ctx, u)
}

// issueToken signs a JWT, stores its hash on the account and primes the auth
// cache so the middleware can validate without a store round-trip.
func (svc *DefaultUserService) issueToken(ctx context.Context, u *models.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	hash := utils.HashToken(token)
	if err := svc.Repo.UpdateTokenHash(ctx, u.ID, hash); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}
	u.TokenHash = hash

	if authCache := utils.GetAuthCacheClient(); authCache != nil {
		_ = authCache.Set(ctx, utils.AuthCachePrefix+u.ID, hash, utils.AuthCacheTTL).Err()
	}

	return &AuthResult{User: u, Token: token}, nil
}
