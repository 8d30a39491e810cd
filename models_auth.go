package fobini

// RegisterRequest is the payload for the register endpoint.
// Validate tags are checked client-side before any request is built.
type RegisterRequest struct {
	Email           string  `json:"email" validate:"required,email"`
	Password        string  `json:"password" validate:"required,min=6"`
	ConfirmPassword string  `json:"confirmPassword" validate:"required,eqfield=Password"`
	Username        string  `json:"username" validate:"required,min=3"`
	FirstName       string  `json:"firstName" validate:"required"`
	LastName        string  `json:"lastName" validate:"required"`
	ProfileImage    *string `json:"profileImage,omitempty"`
}

// LoginRequest is the payload for the login endpoint.
type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

// User is an immutable snapshot of the authenticated user's profile,
// replaced wholesale whenever a fresh profile arrives.
type User struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	ProfileImage *string `json:"profileImage,omitempty"`
	CreatedAt    *string `json:"createdAt,omitempty"`
	UpdatedAt    *string `json:"updatedAt,omitempty"`
}

// SessionData is the data payload of register and login responses.
type SessionData struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterResponse is the envelope returned by the register endpoint.
// Data is absent when Success is false.
type RegisterResponse struct {
	Success bool         `json:"success"`
	Message *string      `json:"message,omitempty"`
	Data    *SessionData `json:"data,omitempty"`
}

// LoginResponse is the envelope returned by the login endpoint.
type LoginResponse struct {
	Success bool        `json:"success"`
	Message *string     `json:"message,omitempty"`
	Data    SessionData `json:"data"`
}
