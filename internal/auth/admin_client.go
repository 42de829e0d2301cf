package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// AdminClient provides access to the Supabase Admin API.
// cmd/seed uses it to create demo tenants and operators that can log in.
type AdminClient struct {
	supabaseURL string
	serviceKey  string
	httpClient  *http.Client
}

// NewAdminClient creates a new Supabase Admin API client.
// Requires the service role key (SUPABASE_KEY).
func NewAdminClient(supabaseURL, serviceKey string) *AdminClient {
	return &AdminClient{
		supabaseURL: supabaseURL,
		serviceKey:  serviceKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreateUserRequest is the payload for creating a new user
type CreateUserRequest struct {
	Email        string                 `json:"email"`
	Password     string                 `json:"password"`
	EmailConfirm bool                   `json:"email_confirm"`
	AppMetadata  map[string]interface{} `json:"app_metadata,omitempty"`
}

// AdminUser is a user record returned by the Admin API
type AdminUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type listUsersResponse struct {
	Users []AdminUser `json:"users"`
}

// EnsureUser returns the id of the user with email, creating a confirmed
// account with the given app_metadata if none exists.
func (c *AdminClient) EnsureUser(ctx context.Context, email, password string, appMetadata map[string]interface{}) (uuid.UUID, error) {
	existing, err := c.findUserByEmail(ctx, email)
	if err != nil {
		return uuid.Nil, err
	}
	if existing != nil {
		return uuid.Parse(existing.ID)
	}
	return c.CreateUser(ctx, email, password, appMetadata)
}

// CreateUser creates a new, already confirmed user and returns its id
func (c *AdminClient) CreateUser(ctx context.Context, email, password string, appMetadata map[string]interface{}) (uuid.UUID, error) {
	payload, err := json.Marshal(CreateUserRequest{
		Email:        email,
		Password:     password,
		EmailConfirm: true,
		AppMetadata:  appMetadata,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal create request: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, "/auth/v1/admin/users", bytes.NewReader(payload), http.StatusOK, http.StatusCreated)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create user %s: %w", email, err)
	}

	var user AdminUser
	if err := json.Unmarshal(body, &user); err != nil {
		return uuid.Nil, fmt.Errorf("failed to decode create response: %w", err)
	}
	return uuid.Parse(user.ID)
}

// DeleteUserByEmail deletes the user with email. Missing users are not an error.
func (c *AdminClient) DeleteUserByEmail(ctx context.Context, email string) error {
	user, err := c.findUserByEmail(ctx, email)
	if err != nil || user == nil {
		return err
	}

	if _, err := c.do(ctx, http.MethodDelete, "/auth/v1/admin/users/"+user.ID, nil, http.StatusOK, http.StatusNoContent); err != nil {
		return fmt.Errorf("delete user %s: %w", email, err)
	}
	return nil
}

// findUserByEmail returns nil, nil when no user matches
func (c *AdminClient) findUserByEmail(ctx context.Context, email string) (*AdminUser, error) {
	body, err := c.do(ctx, http.MethodGet, "/auth/v1/admin/users", nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	var resp listUsersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode list response: %w", err)
	}

	for _, user := range resp.Users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, nil
}

func (c *AdminClient) do(ctx context.Context, method, path string, body io.Reader, okStatuses ...int) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.supabaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	for _, s := range okStatuses {
		if resp.StatusCode == s {
			return respBody, nil
		}
	}
	return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
}
