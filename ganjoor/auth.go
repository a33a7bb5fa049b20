package ganjoor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

type loginRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	ClientAppName string `json:"clientAppName"`
	Language      string `json:"language"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token and keeps it on the client.
// A rejected login returns *RemoteRequestError and leaves any previous token intact.
func (c *Client) Login(ctx context.Context, username, password string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	payload := loginRequest{
		Username:      username,
		Password:      password,
		ClientAppName: c.appName,
		Language:      c.language,
	}
	data, err := c.doURL(ctx, http.MethodPost, &url.URL{Path: "/api/users/login"}, payload, nil)
	if err != nil {
		return err
	}
	var resp loginResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if strings.TrimSpace(resp.Token) == "" {
		return fmt.Errorf("login response carried no token")
	}
	c.token = resp.Token
	return nil
}

// LoggedIn reports whether the client holds a bearer token.
func (c *Client) LoggedIn() bool {
	return c != nil && c.token != ""
}

// Token returns the bearer token obtained by Login, if any.
func (c *Client) Token() string {
	if c == nil {
		return ""
	}
	return c.token
}

// Logout forgets the bearer token. No request is made.
func (c *Client) Logout() {
	if c != nil {
		c.token = ""
	}
}

// Bookmarks fetches the logged-in user's bookmarks. The payload shape is not modelled
// yet, so the JSON body is returned as received.
func (c *Client) Bookmarks(ctx context.Context) (json.RawMessage, error) {
	header, err := c.authHeader()
	if err != nil {
		return nil, err
	}
	data, err := c.doURL(ctx, http.MethodGet, &url.URL{Path: "/api/ganjoor/bookmark"}, nil, header)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("decode response: invalid JSON")
	}
	return json.RawMessage(data), nil
}

func (c *Client) authHeader() (http.Header, error) {
	if !c.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	header := http.Header{}
	header.Set("Authorization", "bearer "+c.token)
	return header, nil
}
