package fobini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newAuthFixture wires a client and session manager against the test server.
func newAuthFixture(t *testing.T, handler http.HandlerFunc) (*AuthService, *SessionManager, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sessions := NewSessionManager(newMemStore(), nil)
	client := NewClient(
		WithBaseURL(server.URL),
		WithSession(sessions),
	)
	return NewAuthService(client, sessions), sessions, server
}

func TestLoginPersistsSession(t *testing.T) {
	auth, sessions, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if body["emailOrUsername"] != "a@b.co" {
			t.Errorf("expected emailOrUsername=a@b.co, got %v", body["emailOrUsername"])
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(LoginResponse{
			Success: true,
			Data: SessionData{
				Token: "tok-login",
				User:  User{ID: "u1", Email: "a@b.co", Username: "abc"},
			},
		})
	})

	user, err := auth.Login(context.Background(), "a@b.co", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u1" {
		t.Errorf("expected user u1, got %q", user.ID)
	}
	if !sessions.IsLoggedIn() {
		t.Error("expected logged-in state after login")
	}
	if tok, _ := sessions.AccessToken(); tok != "tok-login" {
		t.Errorf("expected tok-login persisted, got %q", tok)
	}
	if cached := sessions.CurrentUser(); cached == nil || cached.Email != "a@b.co" {
		t.Errorf("expected cached user, got %+v", cached)
	}
}

func TestLoginLocalValidation(t *testing.T) {
	called := false
	auth, _, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := auth.Login(context.Background(), "", "secret1")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if called {
		t.Error("expected no request for an empty identifier")
	}
}

func TestRegisterPersistsOnSuccess(t *testing.T) {
	auth, sessions, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/register" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(RegisterResponse{
			Success: true,
			Data: &SessionData{
				Token: "tok-reg",
				User:  User{ID: "u2", Email: "new@b.co", Username: "newbie"},
			},
		})
	})

	user, err := auth.Register(context.Background(), RegisterRequest{
		Email:           "new@b.co",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Username:        "newbie",
		FirstName:       "New",
		LastName:        "User",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "newbie" {
		t.Errorf("expected newbie, got %q", user.Username)
	}
	if tok, _ := sessions.AccessToken(); tok != "tok-reg" {
		t.Errorf("expected tok-reg persisted, got %q", tok)
	}
}

func TestRegisterFailureStaysAnonymous(t *testing.T) {
	msg := "Email zaten kayıtlı"
	auth, sessions, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(RegisterResponse{Success: false, Message: &msg})
	})

	_, err := auth.Register(context.Background(), RegisterRequest{
		Email:           "dup@b.co",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Username:        "dup",
		FirstName:       "D",
		LastName:        "U",
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Message != msg {
		t.Errorf("expected server message, got %q", verr.Message)
	}
	if sessions.IsLoggedIn() {
		t.Error("expected anonymous state after failed register")
	}
}

func TestRegisterValidationRules(t *testing.T) {
	auth, _, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("expected no request for an invalid payload")
	})

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"bad email", RegisterRequest{Email: "nope", Password: "secret1", ConfirmPassword: "secret1", Username: "abc", FirstName: "A", LastName: "B"}},
		{"short password", RegisterRequest{Email: "a@b.co", Password: "12345", ConfirmPassword: "12345", Username: "abc", FirstName: "A", LastName: "B"}},
		{"password mismatch", RegisterRequest{Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret2", Username: "abc", FirstName: "A", LastName: "B"}},
		{"short username", RegisterRequest{Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret1", Username: "ab", FirstName: "A", LastName: "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Register(context.Background(), tt.req)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestLogoutClearsSession(t *testing.T) {
	auth, sessions, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(LoginResponse{
			Success: true,
			Data:    SessionData{Token: "tok", User: User{ID: "u1"}},
		})
	})

	if _, err := auth.Login(context.Background(), "a@b.co", "secret1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	auth.Logout()

	if auth.IsLoggedIn() {
		t.Error("expected anonymous state after logout")
	}
	if sessions.CurrentUser() != nil {
		t.Error("expected nil user after logout")
	}
}

func TestServer401LogsOut(t *testing.T) {
	// First call succeeds and persists a session, second answers 401.
	logins := 0
	auth, sessions, server := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/login" {
			logins++
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(LoginResponse{
				Success: true,
				Data:    SessionData{Token: "tok", User: User{ID: "u1"}},
			})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	})

	if _, err := auth.Login(context.Background(), "a@b.co", "secret1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	client := NewClient(WithBaseURL(server.URL), WithSession(sessions))
	phobias := NewPhobiaService(client)
	_, err := phobias.GetPhobias(context.Background(), PhobiaListOptions{})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if sessions.IsLoggedIn() {
		t.Error("expected session cleared after server 401")
	}
}
