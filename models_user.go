package fobini

// UserProfile is the server's full profile record. Unlike the User
// snapshot embedded in auth responses, timestamps are always present.
type UserProfile struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	ProfileImage *string `json:"profileImage,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// asUser converts the profile into the cached User snapshot form.
func (p UserProfile) asUser() User {
	createdAt := p.CreatedAt
	updatedAt := p.UpdatedAt
	return User{
		ID:           p.ID,
		Email:        p.Email,
		Username:     p.Username,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		ProfileImage: p.ProfileImage,
		CreatedAt:    &createdAt,
		UpdatedAt:    &updatedAt,
	}
}

type userProfileResponse struct {
	Success bool        `json:"success"`
	Data    UserProfile `json:"data"`
}
