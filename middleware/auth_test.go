package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sayan01/groceri/models"
	"github.com/sayan01/groceri/token"
)

const testSecret = "test-secret"

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestRequireAuthMissingHeader(t *testing.T) {
	c, w := testContext(t)

	RequireAuth(testSecret)(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, c.IsAborted())
}

func TestRequireAuthBadToken(t *testing.T) {
	c, w := testContext(t)
	c.Request.Header.Set("Authorization", "not-a-token")

	RequireAuth(testSecret)(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, c.IsAborted())
}

func TestRequireAuthInjectsUserID(t *testing.T) {
	signed, err := token.Generate(models.User{ID: 7}, testSecret, time.Hour)
	require.NoError(t, err)

	c, w := testContext(t)
	c.Request.Header.Set("Authorization", signed)

	RequireAuth(testSecret)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, c.IsAborted())

	userID, ok := UserID(c)
	require.True(t, ok)
	assert.Equal(t, uint(7), userID)
}

func TestRequireAdminForbidsNonAdmin(t *testing.T) {
	signed, err := token.Generate(models.User{ID: 7, IsAdmin: false}, testSecret, time.Hour)
	require.NoError(t, err)

	c, w := testContext(t)
	c.Request.Header.Set("Authorization", signed)

	RequireAuth(testSecret)(c)
	RequireAdmin()(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.True(t, c.IsAborted())
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	signed, err := token.Generate(models.User{ID: 1, IsAdmin: true}, testSecret, time.Hour)
	require.NoError(t, err)

	c, w := testContext(t)
	c.Request.Header.Set("Authorization", signed)

	RequireAuth(testSecret)(c)
	RequireAdmin()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, c.IsAborted())
}
