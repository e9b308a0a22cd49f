package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoginRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", Login())
	return r
}

func postLogin(t *testing.T, r *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(gin.H{"username": username, "password": password})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginIssuesAdminToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newLoginRouter()

	w := postLogin(t, r, "admin", "admin")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "admin", resp.Role)

	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims["role"])
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newLoginRouter()

	w := postLogin(t, r, "admin", "nope")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postLogin(t, r, "someone", "admin")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginHonorsCredentialOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_USERNAME", "shopkeeper")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	r := newLoginRouter()

	w := postLogin(t, r, "admin", "admin")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postLogin(t, r, "shopkeeper", "s3cret")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRequiresBothFields(t *testing.T) {
	r := newLoginRouter()

	w := postLogin(t, r, "admin", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
