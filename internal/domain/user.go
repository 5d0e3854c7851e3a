package domain

import (
	"strings"
	"time"
)

// User is a signed-in account as reported by the auth provider.
type User struct {
	ID          string
	Email       string
	DisplayName string
	PhotoURL    string
	CreatedAt   time.Time

	// FavoriteIDs and CollectionIDs are the provider-side denormalized lists.
	// The cache keeps its own favorites table and never reads these.
	FavoriteIDs   []string
	CollectionIDs []string
}

// Session is an authenticated session issued by the auth provider.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	User         User
}

// Expired reports whether the session's access token is past its expiry.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Credentials are the inputs to sign in and sign up.
type Credentials struct {
	Email       string
	Password    string
	DisplayName string
}

// Validate checks the credential fields needed by sign in.
// Sign up additionally needs a display name, see ValidateSignUp.
func (c Credentials) Validate() error {
	if !strings.Contains(c.Email, "@") {
		return NewValidationError("email", "must be an email address")
	}

	if c.Password == "" {
		return NewValidationError("password", "must not be empty")
	}

	return nil
}

// ValidateSignUp checks credentials for account creation.
func (c Credentials) ValidateSignUp() error {
	if err := c.Validate(); err != nil {
		return err
	}

	if strings.TrimSpace(c.DisplayName) == "" {
		return NewValidationError("name", "must not be empty")
	}

	return nil
}
