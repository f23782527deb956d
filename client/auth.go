package client

import (
	"github.com/streetbites/streetbites/models"
)

// Login exchanges credentials for a bearer token and attaches it to this
// client for subsequent requests.
func (c *Client) Login(email, password string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.post("/api/login", req, &resp); err != nil {
		return nil, err
	}
	c.SetToken(resp.Token)
	return &resp, nil
}

// Register creates a staff account. The backend logs the account in
// immediately and returns a token.
func (c *Client) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.post("/api/register", req, &resp); err != nil {
		return nil, err
	}
	c.SetToken(resp.Token)
	return &resp, nil
}
