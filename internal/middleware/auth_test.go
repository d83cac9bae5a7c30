package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbubakarJ545/hospital-management-system/internal/models"
	"github.com/AbubakarJ545/hospital-management-system/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(mw gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/protected", mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString(CtxRole)})
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, authorize func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorize != nil {
		authorize(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func issueToken(t *testing.T, role string, permissions []string) string {
	t.Helper()
	token, err := utils.GenerateJWT("user-1", role, "", "", permissions)
	require.NoError(t, err)
	return token
}

func TestRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newTestRouter(RequireAuth())

	w := doRequest(t, r, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer garbage")
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := issueToken(t, "receptionist", nil)
	w = doRequest(t, r, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuthAcceptsCookieCredential(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newTestRouter(RequireAuth())

	token := issueToken(t, "doctor", nil)
	w := doRequest(t, r, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newTestRouter(RequireRole(models.RoleAdmin))

	// no credential at all
	w := doRequest(t, r, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// valid credential, wrong role
	token := issueToken(t, "receptionist", nil)
	w = doRequest(t, r, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// admin passes
	token = issueToken(t, "admin", nil)
	w = doRequest(t, r, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin")
}

func TestRequirePermission(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newTestRouter(RequirePermission(models.PermManageDepartments))

	// admin passes every permission check
	token := issueToken(t, "admin", nil)
	w := doRequest(t, r, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// role default set does not include the permission
	token = issueToken(t, "receptionist", nil)
	w = doRequest(t, r, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// token-embedded permissions are unioned with role defaults
	token = issueToken(t, "receptionist", []string{"manageDepartments"})
	w = doRequest(t, r, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

// The patient check route is gated on editPatients, which the role table
// grants to doctors but not to front-desk roles.
func TestRequirePermissionEditPatients(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newTestRouter(RequirePermission(models.PermEditPatients))

	token := issueToken(t, "doctor", nil)
	w := doRequest(t, r, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	assert.Equal(t, http.StatusOK, w.Code)

	token = issueToken(t, "receptionist", nil)
	w = doRequest(t, r, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
