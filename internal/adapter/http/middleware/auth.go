package middleware

import (
	"net/http"
	"strings"

	"webux_bd/internal/domain/entities"
	"webux_bd/internal/usecase"
	"webux_bd/pkg"

	"github.com/gin-gonic/gin"
)

const (
	userContextKey  = "auth.user"
	tokenContextKey = "auth.token"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or malformed bearer token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired session", http.StatusUnauthorized)
	errAdminOnly    = pkg.NewDomainErrorSimple("FORBIDDEN", "Admin access required", http.StatusForbidden)
)

// RequireAuth resolves the caller once per request from the Authorization
// header and stores it on the gin context.
func RequireAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		user, err := auth.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		InjectUser(c, user)
		InjectToken(c, token)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin {
			c.AbortWithStatusJSON(errAdminOnly.HTTPStatus, errAdminOnly.ToHTTPError())
			return
		}
		c.Next()
	}
}

// InjectUser stores an already-resolved caller on the context.
func InjectUser(c *gin.Context, user entities.User) {
	c.Set(userContextKey, user)
}

// InjectToken stores the raw bearer token on the context.
func InjectToken(c *gin.Context, token string) {
	c.Set(tokenContextKey, token)
}

// CurrentUser returns the caller resolved by RequireAuth.
func CurrentUser(c *gin.Context) (entities.User, bool) {
	v, exists := c.Get(userContextKey)
	if !exists {
		return entities.User{}, false
	}
	user, ok := v.(entities.User)
	return user, ok
}

// CurrentToken returns the raw bearer token resolved by RequireAuth.
func CurrentToken(c *gin.Context) string {
	v, exists := c.Get(tokenContextKey)
	if !exists {
		return ""
	}
	token, _ := v.(string)
	return token
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
