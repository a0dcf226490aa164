package middlewares

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func parseToken(ctx *gin.Context) (jwt.MapClaims, bool) {
	authHeader := ctx.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}

// RequireAuth rejects requests without a valid bearer token and places the
// claims in the context for downstream handlers.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := parseToken(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing token", "details": ""})
			return
		}
		ctx.Set("user", claims)
		ctx.Next()
	}
}

// OptionalAuth parses a bearer token when present but never rejects: public
// endpoints use it to widen the visibility scope for staff and owners.
func OptionalAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if claims, ok := parseToken(ctx); ok {
			ctx.Set("user", claims)
		}
		ctx.Next()
	}
}
