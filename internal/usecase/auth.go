package usecase

import (
	"context"
	"crypto/hmac"
	"errors"
	"strings"

	domainErrors "github.com/greencart/storefront/internal/domain/errors"
	"github.com/greencart/storefront/internal/domain/model"
	"github.com/greencart/storefront/internal/domain/repository"
	pkgAuth "github.com/greencart/storefront/internal/pkg/auth"
)

// SellerCredentials holds the single configured seller account.
type SellerCredentials struct {
	Email    string
	Password string
}

// AuthUseCase handles customer and seller authentication.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
	seller SellerCredentials
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, seller SellerCredentials) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy, seller: seller}
}

// Register creates a new user and returns an auth token.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, name, email, hash)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID, pkgAuth.AudienceUser)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates customer credentials and returns an auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID, pkgAuth.AudienceUser)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// AuthenticateSeller checks the configured seller account and returns a
// seller-audience token.
func (u *AuthUseCase) AuthenticateSeller(_ context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	emailOK := hmac.Equal([]byte(email), []byte(strings.ToLower(u.seller.Email)))
	passwordOK := hmac.Equal([]byte(password), []byte(u.seller.Password))
	if !emailOK || !passwordOK {
		return "", domainErrors.ErrInvalidCredentials
	}
	return u.tokens.IssueToken(0, pkgAuth.AudienceSeller)
}

// ParseToken extracts subject and audience from the provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, pkgAuth.Audience, error) {
	if token == "" {
		return 0, "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches a user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
