package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userClaims, exists := ctx.Get("user")
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found in context", "details": ""})
			return
		}

		claims := userClaims.(jwt.MapClaims)
		isStaff, ok := claims["is_staff"].(bool)
		if !ok || !isStaff {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required", "details": ""})
			return
		}

		ctx.Next()
	}
}
