package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/userdock/apiserver/internal/graph"
	"github.com/userdock/apiserver/internal/services"
	"github.com/userdock/apiserver/internal/store"
	"github.com/userdock/apiserver/types"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := services.NewUserService(emptyRepo{}, "test-secret")
	schema, err := graph.NewSchema(graph.NewResolver(svc))
	require.NoError(t, err)
	return NewRouter(schema)
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
}

func TestGraphQLEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body := map[string]string{"query": `{ users { id } testPassword(password: "probe") }`}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(string(payload)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var out struct {
		Data struct {
			Users        []any `json:"users"`
			TestPassword bool  `json:"testPassword"`
		} `json:"data"`
		Errors []any `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.Empty(t, out.Errors)
	require.Empty(t, out.Data.Users)
	require.True(t, out.Data.TestPassword)
}

func TestGraphQLIntrospection(t *testing.T) {
	router := newTestRouter(t)

	body := map[string]string{"query": `{ __schema { queryType { name } mutationType { name } } }`}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(string(payload)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), `"Query"`)
	require.Contains(t, resp.Body.String(), `"Mutation"`)
}

// emptyRepo satisfies services.UserRepository with an empty store.
type emptyRepo struct{}

func (emptyRepo) List(context.Context) ([]types.User, error) { return []types.User{}, nil }

func (emptyRepo) GetByID(context.Context, string) (types.User, error) {
	return types.User{}, store.ErrNotFound
}

func (emptyRepo) GetByUsernameWithPassword(context.Context, string) (types.User, error) {
	return types.User{}, store.ErrNotFound
}

func (emptyRepo) ExistsByUsernameOrEmail(context.Context, string, string) (bool, error) {
	return false, nil
}

func (emptyRepo) Create(_ context.Context, user types.User) (types.User, error) {
	return user, nil
}

func (emptyRepo) Update(context.Context, types.User) (types.User, error) {
	return types.User{}, store.ErrNotFound
}

func (emptyRepo) Delete(context.Context, string) error { return store.ErrNotFound }
