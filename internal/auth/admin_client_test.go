package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAdminAPI is an in-memory stand-in for the Supabase Admin users endpoint
type fakeAdminAPI struct {
	mu       sync.Mutex
	users    []AdminUser
	metadata map[string]map[string]interface{}
	deleted  []string
}

func (f *fakeAdminAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if r.Header.Get("apikey") != "service-key" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/auth/v1/admin/users":
		json.NewEncoder(w).Encode(listUsersResponse{Users: f.users})
	case r.Method == http.MethodPost && r.URL.Path == "/auth/v1/admin/users":
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		user := AdminUser{ID: uuid.NewString(), Email: req.Email, Role: "authenticated"}
		f.users = append(f.users, user)
		f.metadata[req.Email] = req.AppMetadata
		json.NewEncoder(w).Encode(user)
	case r.Method == http.MethodDelete:
		f.deleted = append(f.deleted, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func TestAdminClient_EnsureUser(t *testing.T) {
	api := &fakeAdminAPI{metadata: map[string]map[string]interface{}{}}
	srv := httptest.NewServer(api)
	defer srv.Close()

	client := NewAdminClient(srv.URL, "service-key")
	ctx := context.Background()

	id, err := client.EnsureUser(ctx, "op@example.com", "pw", map[string]interface{}{"role": "operator"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, "operator", api.metadata["op@example.com"]["role"])

	again, err := client.EnsureUser(ctx, "op@example.com", "pw", nil)
	require.NoError(t, err)
	assert.Equal(t, id, again)
	assert.Len(t, api.users, 1)
}

func TestAdminClient_DeleteUserByEmail(t *testing.T) {
	api := &fakeAdminAPI{metadata: map[string]map[string]interface{}{}}
	srv := httptest.NewServer(api)
	defer srv.Close()

	client := NewAdminClient(srv.URL, "service-key")
	ctx := context.Background()

	id, err := client.CreateUser(ctx, "ana@example.com", "pw", nil)
	require.NoError(t, err)

	require.NoError(t, client.DeleteUserByEmail(ctx, "ana@example.com"))
	require.NoError(t, client.DeleteUserByEmail(ctx, "nobody@example.com"))
	assert.Equal(t, []string{"/auth/v1/admin/users/" + id.String()}, api.deleted)
}

func TestAdminClient_BadKey(t *testing.T) {
	srv := httptest.NewServer(&fakeAdminAPI{metadata: map[string]map[string]interface{}{}})
	defer srv.Close()

	_, err := NewAdminClient(srv.URL, "wrong").EnsureUser(context.Background(), "a@example.com", "pw", nil)
	assert.ErrorContains(t, err, "unexpected status 401")
}
