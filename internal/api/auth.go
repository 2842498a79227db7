package api

import (
	"context"
	"net/http"

	"github.com/SkDevilS/E-Commerce-Web-Application/pkg/validator"
)

// User is the storefront account representation returned by auth endpoints.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Credentials is the payload for login.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Registration is the payload for creating a new account.
type Registration struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthResponse carries the token pair and user returned by login/register.
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	if err := validator.Validate(creds); err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, http.MethodPost, "/auth/login", creds)
	if err != nil {
		return nil, err
	}

	var out AuthResponse
	if err := c.decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account and returns a token pair for it.
func (c *Client) Register(ctx context.Context, reg Registration) (*AuthResponse, error) {
	if err := validator.Validate(reg); err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, http.MethodPost, "/auth/register", reg)
	if err != nil {
		return nil, err
	}

	var out AuthResponse
	if err := c.decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the current session server-side. The local session is
// torn down by the caller regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, "/auth/logout", nil)
	if err != nil {
		return err
	}
	return c.decodeJSON(resp, nil)
}
