package schema

type (
	// Credentials represents login request
	Credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	// Registration represents account creation request
	Registration struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Email    string `json:"email,omitempty"`
	}

	// LoginResponse represents the login endpoint result
	LoginResponse struct {
		Token        string `json:"token"`
		RefreshToken string `json:"refreshToken"`
	}

	// RegisterResponse represents the register endpoint result
	RegisterResponse struct {
		Message string `json:"message,omitempty"`
		User    *User  `json:"user,omitempty"`
	}

	User struct {
		ID       ID     `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email,omitempty"`
	}

	RefreshRequest struct {
		RefreshToken string `json:"refreshToken"`
	}

	// RefreshResponse accepts both camel and snake case token fields.
	RefreshResponse struct {
		AccessToken       string `json:"accessToken,omitempty"`
		SnakeAccessToken  string `json:"access_token,omitempty"`
		RefreshToken      string `json:"refreshToken,omitempty"`
		SnakeRefreshToken string `json:"refresh_token,omitempty"`
	}

	// Message represents a generic backend acknowledgement or error body
	Message struct {
		Message string `json:"message,omitempty"`
		Error   string `json:"error,omitempty"`
	}
)

// Access returns the access token regardless of the casing used by the backend.
func (r *RefreshResponse) Access() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}
	return r.SnakeAccessToken
}

// Refresh returns the rotated refresh token, if any.
func (r *RefreshResponse) Refresh() string {
	if r.RefreshToken != "" {
		return r.RefreshToken
	}
	return r.SnakeRefreshToken
}

// Text returns the first non empty message field.
func (m *Message) Text() string {
	if m.Message != "" {
		return m.Message
	}
	return m.Error
}
