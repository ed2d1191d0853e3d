// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"dindigul/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data submitted by the login form.
type LoginInput struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// SignupInput defines the data submitted by the signup form.
type SignupInput struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Password string `json:"password"`
}

// --- Output DTOs ---

// SessionOutput returns the active user after a successful login or
// signup, plus the route the client should navigate to.
type SessionOutput struct {
	User       *entity.User
	RedirectTo string
}

// SessionUsecase defines the interface for the session store. It owns the
// single active user and the durable record behind it.
//
// Login and Signup are behaviorally identical upsert-style passwordless
// session creation: the password is validated against form rules and then
// discarded. No credentials are checked and no duplicate accounts are
// detected; there is no account database to check against.
type SessionUsecase interface {
	// Login validates the form, fabricates a user record, makes it the
	// active user and persists it.
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)

	// Signup behaves like Login but additionally requires a name and a
	// delivery area.
	Signup(ctx context.Context, input *SignupInput) (*SessionOutput, error)

	// Logout clears the active user and removes the persisted record.
	Logout(ctx context.Context) error

	// IsAuthenticated reports whether an active user is present.
	IsAuthenticated(ctx context.Context) bool

	// CurrentUser returns the active user, or nil when logged out.
	CurrentUser(ctx context.Context) *entity.User
}
