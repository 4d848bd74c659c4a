package profile

import (
	"encoding/json"
	"fmt"
)

// Profile is a user profile as returned by the profile service. Its schema is
// owned by the service, so fields are passed through untouched.
type Profile map[string]any

// Username returns the "username" field, or "" if absent.
func (p Profile) Username() string {
	return p.str("username")
}

// Email returns the "email" field, or "" if absent.
func (p Profile) Email() string {
	return p.str("email")
}

func (p Profile) str(key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

// UserRef is one entry of the user listing. The service may list bare
// usernames or full objects; both decode.
type UserRef struct {
	Name   string
	Fields map[string]any
}

// Username returns the user's name.
func (u UserRef) Username() string {
	return u.Name
}

// UnmarshalJSON accepts either a JSON string or an object with a "username" field.
func (u *UserRef) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		u.Name = name
		u.Fields = nil
		return nil
	}
	fields := map[string]any{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("user entry is neither a string nor an object: %w", err)
	}
	u.Fields = fields
	u.Name, _ = fields["username"].(string)
	return nil
}

// MarshalJSON writes the entry back in the shape it was read.
func (u UserRef) MarshalJSON() ([]byte, error) {
	if u.Fields != nil {
		return json.Marshal(u.Fields)
	}
	return json.Marshal(u.Name)
}

// Result is the uniform outcome of every client operation. On success Message
// is empty; on failure Message is set and no payload is.
type Result struct {
	Success bool      `json:"success"`
	Profile Profile   `json:"profile,omitempty"`
	Users   []UserRef `json:"users,omitempty"`
	Message string    `json:"message,omitempty"`
}

// Err returns nil for a successful result and an error carrying Message otherwise.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	return &OperationError{Message: r.Message}
}

// OperationError is the error form of a failed Result.
type OperationError struct {
	Message string
}

// Error complies with the error interface.
func (e *OperationError) Error() string {
	return e.Message
}

func failure(message string) Result {
	return Result{Success: false, Message: message}
}

// TokenRejectedError is returned by CheckToken when the service refuses the token.
type TokenRejectedError struct {
	Message string
}

// Error complies with the error interface.
func (e *TokenRejectedError) Error() string {
	return "the profile service rejected the token: " + e.Message
}
