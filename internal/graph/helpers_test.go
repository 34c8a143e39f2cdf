package graph_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/require"
	"github.com/userdock/apiserver/internal/graph"
	"github.com/userdock/apiserver/internal/services"
	"github.com/userdock/apiserver/internal/store"
	"github.com/userdock/apiserver/types"
)

func newTestSchema(t *testing.T) graphql.Schema {
	t.Helper()
	svc := services.NewUserService(newMemoryRepo(), "test-secret")
	schema, err := graph.NewSchema(graph.NewResolver(svc))
	require.NoError(t, err)
	return schema
}

func execute(t *testing.T, schema graphql.Schema, request string, variables map[string]any) map[string]any {
	t.Helper()
	result := graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  request,
		VariableValues: variables,
		Context:        context.Background(),
	})
	require.Empty(t, result.Errors, "unexpected protocol errors: %v", result.Errors)
	data, ok := result.Data.(map[string]any)
	require.True(t, ok)
	return data
}

// memoryUserRepo mirrors the Postgres repository's contract for
// resolver-level tests.
type memoryUserRepo struct {
	mu    sync.Mutex
	users map[string]types.User
}

func newMemoryRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[string]types.User{}}
}

func (r *memoryUserRepo) List(_ context.Context) ([]types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := []types.User{}
	for _, user := range r.users {
		user.PasswordHash = ""
		users = append(users, user)
	}
	return users, nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id string) (types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	user.PasswordHash = ""
	return user, nil
}

func (r *memoryUserRepo) GetByUsernameWithPassword(_ context.Context, username string) (types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (r *memoryUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username || user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryUserRepo) Create(_ context.Context, user types.User) (types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return types.User{}, store.ErrDuplicate
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = user
	return user, nil
}

func (r *memoryUserRepo) Update(_ context.Context, user types.User) (types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.users[user.ID]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	user.PasswordHash = existing.PasswordHash
	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = time.Now()
	r.users[user.ID] = user
	updated := user
	updated.PasswordHash = ""
	return updated, nil
}

func (r *memoryUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.users, id)
	return nil
}
