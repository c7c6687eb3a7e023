package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"motoparts-api/internal/auth"
	"motoparts-api/internal/cache"
	"motoparts-api/internal/handlers"
	"motoparts-api/internal/models"
	"motoparts-api/internal/routes"
)

const testSecret = "test-secret-with-at-least-32-characters!!"

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router   *gin.Engine
	tokens   *auth.TokenService
	users    *memUsers
	products *memProducts
	orders   *memOrders
	reviews  *memReviews
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWith(t, nil)
}

// newTestServerWith permite envolver el store de productos antes de armar el router
func newTestServerWith(t *testing.T, wrap func(*memProducts) handlers.ProductStore) *testServer {
	t.Helper()

	tokens, err := auth.NewTokenService(testSecret, time.Hour)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	s := &testServer{
		tokens:   tokens,
		users:    newMemUsers(),
		products: newMemProducts(),
		orders:   &memOrders{},
		reviews:  &memReviews{},
	}
	var products handlers.ProductStore = s.products
	if wrap != nil {
		products = wrap(s.products)
	}
	s.router = routes.NewRouter([]string{"http://localhost:5173"}, routes.Dependencies{
		Users:    handlers.NewUserHandler(s.users, tokens),
		Products: handlers.NewProductHandler(products, cache.New(ctx, time.Minute)),
		Orders:   handlers.NewOrderHandler(s.orders, s.users),
		Reviews:  handlers.NewReviewHandler(s.reviews),
		Tokens:   tokens,
	})
	return s
}

// tokenFor guarda el usuario en el doble y devuelve un token firmado para él
func (s *testServer) tokenFor(t *testing.T, uid, email, role string) string {
	t.Helper()
	s.users.put(models.User{UID: uid, Email: email, Role: role})
	token, err := s.tokens.Generate(uid, role)
	require.NoError(t, err)
	return token
}

func (s *testServer) adminToken(t *testing.T) string {
	return s.tokenFor(t, "admin-1", "admin@example.com", models.RoleAdmin)
}

func (s *testServer) userToken(t *testing.T) string {
	return s.tokenFor(t, "user-1", "rider@example.com", models.RoleUser)
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	msg, _ := decode(t, rec)["message"].(string)
	return msg
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equalf(t, want, rec.Code, "body: %s", rec.Body.String())
}
