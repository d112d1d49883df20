package recruitment

import (
	"errors"
	"net/url"
)

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// User is the identity reported by the platform for a bearer token.
type User struct {
	ID   string `json:"user_id"`
	Role Role   `json:"role"`
}

// Login exchanges credentials for a bearer token. The token endpoint takes
// an urlencoded form, unlike the rest of the API.
func (c *Client) Login(username, password string) (string, error) {
	data := url.Values{}
	data.Set("username", username)
	data.Set("password", password)

	var token tokenResponse
	if err := c.postForm(tokenPath, data, &token); err != nil {
		var status *statusError
		if errors.As(err, &status) {
			return "", &AuthError{Detail: status.Detail}
		}
		return "", err
	}

	return token.AccessToken, nil
}

// SignupRequest registers a new account for either role.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

func (c *Client) Signup(req SignupRequest) (string, error) {
	var token tokenResponse
	if err := c.postJSON(signupPath, req, &token); err != nil {
		var status *statusError
		if errors.As(err, &status) {
			return "", &AuthError{Detail: status.Detail}
		}
		return "", err
	}

	return token.AccessToken, nil
}

// CurrentUser resolves the identity behind the installed token.
func (c *Client) CurrentUser() (*User, error) {
	var user User
	if err := c.getJSON(currentUserPath, nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}
