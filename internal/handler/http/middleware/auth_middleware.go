package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mihretabn/taskhub/internal/domain/apperror"
	"github.com/mihretabn/taskhub/internal/handler/http/dto"
	"github.com/mihretabn/taskhub/internal/usecase"
)

// AuthMiddleWare verifies the bearer token and stores the bound
// account ID on the request context.
func AuthMiddleWare(tokenService usecase.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Authorization header missing")
			return
		}

		accountID, err := tokenService.VerifyToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			abortUnauthorized(c, "Unauthorized")
			return
		}

		c.Set("accountID", accountID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIError{
		StatusCode: http.StatusUnauthorized,
		Status:     false,
		Message:    message,
		Errors:     []apperror.FieldError{},
	})
}
