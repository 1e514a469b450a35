package delivery

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newGateRouter(uc *fakeUserUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secured", AuthMiddleware(uc), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": user.ID})
	})
	return r
}

func TestAuthMiddlewareNoToken(t *testing.T) {
	r := newGateRouter(&fakeUserUsecase{validUser: alice()})

	req := httptest.NewRequest(http.MethodGet, "/secured", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Unauthorized request", decodeBody(t, w)["message"])
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	r := newGateRouter(&fakeUserUsecase{validUser: alice()})

	req := httptest.NewRequest(http.MethodGet, "/secured", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Invalid access token", decodeBody(t, w)["message"])
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	r := newGateRouter(&fakeUserUsecase{validUser: alice()})

	req := httptest.NewRequest(http.MethodGet, "/secured", nil)
	req.Header.Set("Authorization", "valid-access-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareCookieToken(t *testing.T) {
	r := newGateRouter(&fakeUserUsecase{validUser: alice()})

	req := httptest.NewRequest(http.MethodGet, "/secured", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: "valid-access-token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareBearerToken(t *testing.T) {
	r := newGateRouter(&fakeUserUsecase{validUser: alice()})

	req := httptest.NewRequest(http.MethodGet, "/secured", nil)
	req.Header.Set("Authorization", "Bearer valid-access-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}
