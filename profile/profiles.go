package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/daticahealth/snapdash/logs"
)

const (
	profilesPath     = "/profiles/"
	byUsernamePath   = "/profiles/by-username"
	availabilityPath = "/by-username"
	allUsernamesPath = "/profiles/all-usernames/"
)

// CheckUsernameAvailability reports whether username is free. Only a 404 from
// the service counts as available; every other outcome, including transport
// errors, reports the name as taken.
func (c *Client) CheckUsernameAvailability(ctx context.Context, username string) bool {
	token, fail := c.token(ctx)
	if fail != nil {
		return false
	}
	status, resp, err := c.makeRequest(ctx, http.MethodGet, availabilityPath, url.Values{"username": {username}}, token, nil)
	if err != nil {
		logs.Printv("Availability check for %q failed: %v", username, err)
		return false
	}
	switch status {
	case http.StatusNotFound:
		logs.Printv("Username available: %s", username)
		return true
	case http.StatusOK:
		logs.Printv("Username taken: %s", username)
		return false
	default:
		logs.Printv("Availability check for %q returned status %d: %s", username, status, string(resp))
		return false
	}
}

// CreateProfile creates the profile of the authenticated user.
func (c *Client) CreateProfile(ctx context.Context, p Profile) Result {
	return c.write(ctx, http.MethodPost, p, "failed to create profile")
}

// UpdateProfile replaces fields of the authenticated user's profile.
func (c *Client) UpdateProfile(ctx context.Context, p Profile) Result {
	return c.write(ctx, http.MethodPut, p, "failed to update profile")
}

// GetProfile fetches the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context) Result {
	return c.read(ctx, profilesPath, nil, "failed to fetch profile")
}

// GetUserProfile fetches another user's profile by username.
func (c *Client) GetUserProfile(ctx context.Context, username string) Result {
	return c.read(ctx, byUsernamePath, url.Values{"username": {username}}, "failed to fetch user")
}

// GetAllUsers lists every registered user. Unlike the other operations it
// refuses to call the service without a session token.
func (c *Client) GetAllUsers(ctx context.Context) Result {
	token, fail := c.token(ctx)
	if fail != nil {
		return *fail
	}
	if token == "" {
		logs.Printv("Refusing to list users: %s", msgNoToken)
		return failure(msgNoToken)
	}
	status, resp, err := c.makeRequest(ctx, http.MethodGet, allUsernamesPath, nil, token, nil)
	if err != nil {
		logs.Printv("Listing users failed: %v", err)
		return failure(msgUnreachable)
	}
	if !isSuccess(status) {
		logs.Printv("Listing users returned status %d", status)
		return failure(ConvertError(resp, "failed to list users"))
	}
	var users []UserRef
	if err := json.Unmarshal(resp, &users); err != nil {
		logs.Printv("Decoding user list: %v", err)
		return failure(msgMalformed)
	}
	logs.Printv("Found %d users", len(users))
	return Result{Success: true, Users: users}
}

func (c *Client) write(ctx context.Context, method string, p Profile, def string) Result {
	token, fail := c.token(ctx)
	if fail != nil {
		return *fail
	}
	if p == nil {
		p = Profile{}
	}
	status, resp, err := c.makeRequest(ctx, method, profilesPath, nil, token, p)
	if err != nil {
		logs.Printv("%s %s failed: %v", method, profilesPath, err)
		return failure(msgUnreachable)
	}
	if !isSuccess(status) {
		logs.Printv("%s %s returned status %d: %s", method, profilesPath, status, string(resp))
		return failure(ConvertError(resp, def))
	}
	logs.Printv("%s %s succeeded", method, profilesPath)
	return Result{Success: true}
}

func (c *Client) read(ctx context.Context, path string, query url.Values, def string) Result {
	token, fail := c.token(ctx)
	if fail != nil {
		return *fail
	}
	status, resp, err := c.makeRequest(ctx, http.MethodGet, path, query, token, nil)
	if err != nil {
		logs.Printv("GET %s failed: %v", path, err)
		return failure(msgUnreachable)
	}
	if !isSuccess(status) {
		logs.Printv("GET %s returned status %d: %s", path, status, string(resp))
		return failure(ConvertError(resp, def))
	}
	p := Profile{}
	if err := json.Unmarshal(resp, &p); err != nil {
		logs.Printv("Decoding profile from %s: %v", path, err)
		return failure(msgMalformed)
	}
	if p == nil {
		logs.Printv("GET %s returned a null profile", path)
		return failure(msgMalformed)
	}
	return Result{Success: true, Profile: p}
}

// CheckToken asks the service whether the session token is accepted. Only 401
// and 403 count as a rejection: a signed-in user who has not created a
// profile yet gets a 404 from the same endpoint.
func (c *Client) CheckToken(ctx context.Context) error {
	token, fail := c.token(ctx)
	if fail != nil {
		return fail.Err()
	}
	status, resp, err := c.makeRequest(ctx, http.MethodGet, profilesPath, nil, token, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", msgUnreachable, err)
	}
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		logs.Printv("Token rejected with status %d: %s", status, string(resp))
		return &TokenRejectedError{Message: ConvertError(resp, "token rejected")}
	}
	logs.Printv("Token accepted, GET %s returned status %d", profilesPath, status)
	return nil
}
