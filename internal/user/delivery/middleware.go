package delivery

import (
	"net/http"
	"strings"

	userdomain "vidstream-backend/internal/user/domain"
	"vidstream-backend/internal/user/usecase"

	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

// AuthMiddleware is the authentication gate in front of protected routes.
// It accepts the access token from the accessToken cookie or a Bearer
// header, resolves the account, and attaches it to the request context.
func AuthMiddleware(userUsecase usecase.UserUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"statusCode": 401, "message": "Unauthorized request"})
			c.Abort()
			return
		}

		user, err := userUsecase.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"statusCode": 401, "message": "Invalid access token"})
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie("accessToken"); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// CurrentUser returns the account the auth gate attached to the context.
func CurrentUser(c *gin.Context) (*userdomain.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*userdomain.User)
	return user, ok
}
