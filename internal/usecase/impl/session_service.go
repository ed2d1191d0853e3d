// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"dindigul/internal/domain/entity"
	"dindigul/internal/domain/repository"
	"dindigul/internal/domain/service"
	"dindigul/internal/errors"
	"dindigul/internal/usecase"

	"github.com/google/uuid"
)

// userRecordKey is the fixed key the serialized active user is stored
// under. It survives from the browser-era localStorage entry.
const userRecordKey = "dindigul_user"

// loginForm carries the login fields through validation. The password is
// checked against form rules and then discarded; no credential exists to
// verify it against.
type loginForm struct {
	Phone    string `json:"phone" validate:"required,inphone"`
	Password string `json:"password" validate:"required,min=6"`
}

// signupForm additionally requires a name and a delivery area.
type signupForm struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required,inphone"`
	Location string `json:"location" validate:"required,deliveryarea"`
	Password string `json:"password" validate:"required,min=6"`
}

var loginMessages = fieldMessages{
	"phone": {
		"required": "Phone number is required",
		"inphone":  "Enter a valid 10-digit phone number",
	},
	"password": {
		"required": "Password is required",
		"min":      "Password must be at least 6 characters",
	},
}

var signupMessages = fieldMessages{
	"name": {
		"required": "Name is required",
	},
	"phone": {
		"required": "Phone number is required",
		"inphone":  "Enter a valid 10-digit phone number",
	},
	"location": {
		"required":     "Please select your area",
		"deliveryarea": "Please select your area",
	},
	"password": {
		"required": "Password is required",
		"min":      "Password must be at least 6 characters",
	},
}

// sessionService implements the SessionUsecase interface. It owns the
// single active user exclusively and mirrors it into the durable store.
type sessionService struct {
	store    repository.UserRecordStore
	notifier service.Notifier
	logger   *slog.Logger

	mu   sync.RWMutex
	user *entity.User
}

// NewSessionService is the constructor for sessionService. It loads the
// persisted user record once; an absent or malformed record fails open to
// the logged-out state and is never an error.
func NewSessionService(
	ctx context.Context,
	store repository.UserRecordStore,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.SessionUsecase {
	srv := &sessionService{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
	srv.user = srv.loadPersistedUser(ctx)

	return srv
}

// loadPersistedUser reads the stored record, tolerating every failure.
func (srv *sessionService) loadPersistedUser(ctx context.Context) *entity.User {
	raw, err := srv.store.Get(ctx, userRecordKey)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		srv.logger.Warn("Failed to read persisted user record, starting logged out", slog.Any("error", err))

		return nil
	}

	var user entity.User
	if err := json.Unmarshal(raw, &user); err != nil {
		srv.logger.Warn("Persisted user record is malformed, starting logged out", slog.Any("error", err))

		return nil
	}

	srv.logger.Info("Restored session from persisted record", slog.String("userID", user.ID))

	return &user
}

// Login validates the form and creates an upsert-style passwordless
// session: a fresh user record is fabricated from the form, made active
// and persisted. Behaviorally identical to Signup apart from the form.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	form := &loginForm{
		Phone:    strings.TrimSpace(input.Phone),
		Password: input.Password,
	}
	if verr := validateForm(form, loginMessages); verr != nil {
		return nil, verr
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = "User"
	}

	user := &entity.User{
		ID:    "user_" + uuid.NewString(),
		Name:  name,
		Phone: form.Phone,
	}
	if err := srv.activate(ctx, user); err != nil {
		return nil, err
	}

	srv.notifier.Notify(ctx, "Welcome back!", "You have successfully logged in.")

	return &usecase.SessionOutput{User: user, RedirectTo: "/"}, nil
}

// Signup validates the form and creates the session the same way Login
// does. No duplicate-account detection exists; see DESIGN.md.
func (srv *sessionService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SessionOutput, error) {
	form := &signupForm{
		Name:     strings.TrimSpace(input.Name),
		Phone:    strings.TrimSpace(input.Phone),
		Location: input.Location,
		Password: input.Password,
	}
	if verr := validateForm(form, signupMessages); verr != nil {
		return nil, verr
	}

	user := &entity.User{
		ID:       "user_" + uuid.NewString(),
		Name:     form.Name,
		Phone:    form.Phone,
		Location: form.Location,
	}
	if err := srv.activate(ctx, user); err != nil {
		return nil, err
	}

	srv.notifier.Notify(ctx, "Account created!", "Welcome to Dindigul Foods!")

	return &usecase.SessionOutput{User: user, RedirectTo: "/"}, nil
}

// activate swaps the active user and mirrors it into the durable store.
func (srv *sessionService) activate(ctx context.Context, user *entity.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "failed to serialize user record")
	}
	if err := srv.store.Set(ctx, userRecordKey, raw); err != nil {
		srv.logger.Error("Failed to persist user record", slog.String("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to persist user record")
	}

	srv.mu.Lock()
	srv.user = user
	srv.mu.Unlock()

	srv.logger.Info("Session created", slog.String("userID", user.ID))

	return nil
}

// Logout clears the active user and removes the persisted record.
func (srv *sessionService) Logout(ctx context.Context) error {
	if err := srv.store.Remove(ctx, userRecordKey); err != nil {
		return errors.Wrap(err, "failed to remove persisted user record")
	}

	srv.mu.Lock()
	srv.user = nil
	srv.mu.Unlock()

	srv.logger.Info("Session cleared")

	return nil
}

// IsAuthenticated reports whether an active user is present.
func (srv *sessionService) IsAuthenticated(ctx context.Context) bool {
	return srv.CurrentUser(ctx) != nil
}

// CurrentUser returns the active user, or nil when logged out.
func (srv *sessionService) CurrentUser(ctx context.Context) *entity.User {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.user
}
