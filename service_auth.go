package fobini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AuthService orchestrates register, login, and logout, and answers
// session-state questions. Successful register/login persist the session
// through the SessionManager; logout and server-side 401s clear it.
type AuthService struct {
	client   *Client
	sessions *SessionManager
	validate *validator.Validate
}

// NewAuthService creates an AuthService over the given client and sessions.
func NewAuthService(client *Client, sessions *SessionManager) *AuthService {
	return &AuthService{
		client:   client,
		sessions: sessions,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Register creates a new account. On a success:true response the returned
// token and user are persisted and the session becomes authenticated; any
// other outcome leaves the session untouched.
func (a *AuthService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if err := a.validate.Struct(req); err != nil {
		return nil, &ValidationError{Message: validationMessage(err)}
	}

	var resp RegisterResponse
	if err := a.client.Do(ctx, endpointRegister(req), &resp); err != nil {
		return nil, err
	}

	if !resp.Success || resp.Data == nil {
		msg := fallbackValidationMessage
		if resp.Message != nil && *resp.Message != "" {
			msg = *resp.Message
		}
		return nil, &ValidationError{Message: msg}
	}

	if err := a.sessions.SaveSession(resp.Data.Token, resp.Data.User); err != nil {
		a.client.logger.Warn("failed to persist session after register", "error", err)
	}
	return &resp.Data.User, nil
}

// Login authenticates with an email address or username. The response shape
// guarantees data presence, so any non-error result persists the session.
func (a *AuthService) Login(ctx context.Context, emailOrUsername, password string) (*User, error) {
	req := LoginRequest{EmailOrUsername: emailOrUsername, Password: password}
	if err := a.validate.Struct(req); err != nil {
		return nil, &ValidationError{Message: validationMessage(err)}
	}

	var resp LoginResponse
	if err := a.client.Do(ctx, endpointLogin(req), &resp); err != nil {
		return nil, err
	}

	if err := a.sessions.SaveSession(resp.Data.Token, resp.Data.User); err != nil {
		a.client.logger.Warn("failed to persist session after login", "error", err)
	}
	return &resp.Data.User, nil
}

// Logout clears the persisted session. Idempotent.
func (a *AuthService) Logout() {
	a.sessions.ClearSession()
}

// IsLoggedIn reports whether a session is active.
func (a *AuthService) IsLoggedIn() bool {
	return a.sessions.IsLoggedIn()
}

// CurrentUser returns the cached user snapshot, or nil when anonymous.
func (a *AuthService) CurrentUser() *User {
	return a.sessions.CurrentUser()
}

// validationMessage flattens validator errors into one readable message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
