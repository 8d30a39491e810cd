package fobini

import "context"

// UserService reads and updates the user's profile. Fresh profiles refresh
// the session's cached user snapshot.
type UserService struct {
	client   *Client
	sessions *SessionManager
}

// NewUserService creates a UserService over the given client and sessions.
func NewUserService(client *Client, sessions *SessionManager) *UserService {
	return &UserService{client: client, sessions: sessions}
}

// GetProfile fetches the current profile and refreshes the cached snapshot.
func (u *UserService) GetProfile(ctx context.Context) (*UserProfile, error) {
	var resp userProfileResponse
	if err := u.client.Do(ctx, endpointUserProfile(), &resp); err != nil {
		return nil, err
	}
	u.cacheProfile(resp.Data)
	return &resp.Data, nil
}

// UpdateProfile changes the user's name and returns the updated profile.
func (u *UserService) UpdateProfile(ctx context.Context, firstName, lastName string) (*UserProfile, error) {
	var resp userProfileResponse
	if err := u.client.Do(ctx, endpointUpdateUserProfile(firstName, lastName), &resp); err != nil {
		return nil, err
	}
	u.cacheProfile(resp.Data)
	return &resp.Data, nil
}

func (u *UserService) cacheProfile(profile UserProfile) {
	if u.sessions == nil {
		return
	}
	if err := u.sessions.SaveUser(profile.asUser()); err != nil {
		u.client.logger.Warn("failed to cache profile", "error", err)
	}
}
