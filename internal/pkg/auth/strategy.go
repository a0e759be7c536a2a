package auth

import "time"

// Audience names the caller class a token was issued for.
type Audience string

const (
	AudienceUser   Audience = "user"
	AudienceSeller Audience = "seller"
)

type Strategy interface {
	IssueToken(subject int64, audience Audience) (string, error)
	ParseToken(token string) (int64, Audience, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
