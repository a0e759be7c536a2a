package test

import (
	"errors"

	pkgAuth "github.com/greencart/storefront/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(int64, pkgAuth.Audience) (string, error)
	ParseFn func(string) (int64, pkgAuth.Audience, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(subject int64, audience pkgAuth.Audience) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(subject, audience)
	}
	return string(audience) + "-token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (int64, pkgAuth.Audience, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, pkgAuth.AudienceUser, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenParserStub implements middleware token parsing contract.
type TokenParserStub struct {
	ID       int64
	Audience pkgAuth.Audience
	Err      error
	ParseFn  func(string) (int64, pkgAuth.Audience, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseToken(token string) (int64, pkgAuth.Audience, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return 0, "", s.Err
	}
	audience := s.Audience
	if audience == "" {
		audience = pkgAuth.AudienceUser
	}
	return s.ID, audience, nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
