package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/mccmmj/cafe-inventory/internal/apierror"
	"github.com/mccmmj/cafe-inventory/internal/service"
)

const ClaimsKey = "claims"

// SessionAuth validates the Bearer session token on every protected route
// and re-checks the email allow list, so revoking an address takes effect on
// the next request even for live tokens.
func SessionAuth(secret string, allowedEmails []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedEmails))
	for _, e := range allowedEmails {
		allowed[e] = true
	}
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Authentication required"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &service.SessionClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Invalid or expired token"))
			return
		}
		if !allowed[claims.Email] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Access not allowed for this account"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// GetClaims retrieves typed session claims from the Gin context.
func GetClaims(c *gin.Context) *service.SessionClaims {
	claims, _ := c.MustGet(ClaimsKey).(*service.SessionClaims)
	return claims
}

// ActorName returns the display name to attribute mutations to, falling back
// to the email when the IdP supplied no name.
func ActorName(c *gin.Context) string {
	claims := GetClaims(c)
	if claims == nil {
		return "Unknown User"
	}
	if claims.Name != "" {
		return claims.Name
	}
	return claims.Email
}
