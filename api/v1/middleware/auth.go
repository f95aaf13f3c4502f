package middleware

import (
	"errors"
	"strings"

	"go_vms/internal/auth"
	"go_vms/internal/httpx"
	"go_vms/internal/model"
	"go_vms/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const userKey = "current_user"

// AuthRequired validates the bearer token and resolves its subject against
// the users table. Only Active accounts pass: a valid token for a since-
// locked account is rejected here, not only at login.
func AuthRequired(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httpx.FailErr(c, httpx.ErrUnauthorized("missing authorization header"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			httpx.FailErr(c, httpx.ErrUnauthorized("invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				httpx.FailErr(c, httpx.ErrTokenExpired("token expired"))
			} else {
				httpx.FailErr(c, httpx.ErrInvalidToken("invalid token"))
			}
			c.Abort()
			return
		}

		var user model.User
		err = db.Where("empid = ? AND status = ?", claims.EmpID, model.UserStatusActive).
			First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httpx.FailErr(c, httpx.ErrUnauthorized("account not found or not active"))
			} else {
				httpx.FailErr(c, httpx.ErrDatabaseError("failed to resolve account", err))
			}
			c.Abort()
			return
		}

		c.Set(userKey, &user)
		c.Next()
	}
}

// CurrentUser returns the resolved account set by AuthRequired.
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}

// RequireCapability aborts with 403 when the resolved account's role does
// not hold the capability. Distinguishable from authentication failure.
func RequireCapability(cap rbac.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			httpx.FailErr(c, httpx.ErrUnauthorized(""))
			c.Abort()
			return
		}

		if !rbac.Has(user.Role, cap) {
			httpx.FailErr(c, httpx.ErrForbidden("insufficient privileges"))
			c.Abort()
			return
		}

		c.Next()
	}
}
