package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "user_id"

const MissingAuthMessage = "Missing authentication"

// AuthMiddleware verifies the Bearer token and stores its `id` claim
// (or `sub` when absent) under UserIDKey.
func AuthMiddleware(secret string) gin.HandlerFunc {
	keyFunc := func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}

	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail(MissingAuthMessage))
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, keyFunc)
		if err != nil || !token.Valid {
			logrus.Debugf("rejecting token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail(MissingAuthMessage))
			return
		}

		userID := claimString(claims, "id")
		if userID == "" {
			userID = claimString(claims, "sub")
		}
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail(MissingAuthMessage))
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

func claimString(claims jwt.MapClaims, name string) string {
	v, _ := claims[name].(string)
	return v
}
