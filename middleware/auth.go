package middleware

import (
	"net/http"
	"strings"

	"college-backend/models"
	"college-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserKey is the gin context key the authenticated user is stored under.
const UserKey = "currentUser"

// VerifyToken authenticates the request from its Bearer token and attaches
// the user record to the context.
func VerifyToken(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No token provided"})
			return
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			return
		}

		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User no longer exists"})
			return
		}

		c.Set(UserKey, &user)
		c.Next()
	}
}

// CurrentUser returns the user set by VerifyToken, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// IsAdmin allows only admin users through. Must run after VerifyToken.
func IsAdmin() gin.HandlerFunc {
	return Authorize(models.RoleAdmin)
}

// Authorize allows only the listed roles through.
func Authorize(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authenticated"})
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Insufficient permissions"})
	}
}
