package auth

import (
	"time"

	"go_vms/internal/auth"
	"go_vms/internal/config"
	"go_vms/internal/httpx"
	"go_vms/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// LoginRequest represents login request body
type LoginRequest struct {
	EmpID    string `json:"empid" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserInfo represents the identity summary in the login response
type UserInfo struct {
	EmpID   string `json:"empid"`
	EmpName string `json:"empname"`
	Role    string `json:"user_role"`
}

// LoginResponse represents login response data
type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpireAt    string   `json:"expire_at"`
	User        UserInfo `json:"user_info"`
}

// LoginHandler handles employee login
func LoginHandler(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	accounts := service.NewAccountService(db, cfg)

	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.FailErr(c, httpx.ErrParamInvalid("invalid request body"))
			return
		}

		user, err := accounts.Authenticate(req.EmpID, req.Password)
		if err != nil {
			httpx.FailErr(c, httpx.AsAppError(err))
			return
		}

		expireAt := time.Now().Add(time.Duration(cfg.JWT.ExpireMinutes) * time.Minute)
		token, err := auth.GenerateToken(user.EmpID, string(user.Role), expireAt, cfg.JWT.Issuer)
		if err != nil {
			httpx.FailErr(c, httpx.ErrInternalError("failed to generate token", err))
			return
		}

		httpx.OK(c, LoginResponse{
			AccessToken: token,
			TokenType:   "bearer",
			ExpireAt:    expireAt.Format(time.RFC3339),
			User: UserInfo{
				EmpID:   user.EmpID,
				EmpName: user.EmpName,
				Role:    string(user.Role),
			},
		})
	}
}
