package users

import (
	"time"

	"go_vms/api/v1/middleware"
	"go_vms/internal/config"
	"go_vms/internal/httpx"
	"go_vms/internal/model"
	"go_vms/internal/rbac"
	"go_vms/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateRequest represents create user request
type CreateRequest struct {
	EmpID       string `json:"empid" binding:"required"`
	EmpName     string `json:"empname" binding:"required"`
	EmpMobileNo string `json:"emp_mobile_no" binding:"required"`
	Password    string `json:"password" binding:"required"`
	UserRole    string `json:"user_role" binding:"required"`
}

// ActionRequest represents lock/unlock request
type ActionRequest struct {
	EmpID          string `json:"empid" binding:"required"`
	MasterPassword string `json:"master_password"`
}

// UserSummary represents one user in the list response. The password
// digest is never included.
type UserSummary struct {
	EmpID          string     `json:"empid"`
	EmpName        string     `json:"empname"`
	EmpMobileNo    string     `json:"emp_mobile_no"`
	UserRole       string     `json:"user_role"`
	Status         string     `json:"status"`
	FailedAttempts int        `json:"failed_attempts"`
	LastLogin      *time.Time `json:"last_login"`
	CreatedBy      string     `json:"created_by"`
}

// Handler handles user management API
type Handler struct {
	db       *gorm.DB
	accounts *service.AccountService
}

// NewHandler creates a new users handler
func NewHandler(db *gorm.DB, cfg *config.Config) *Handler {
	return &Handler{
		db:       db,
		accounts: service.NewAccountService(db, cfg),
	}
}

// Create handles POST /api/users
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamMissing(err.Error()))
		return
	}

	actor := middleware.CurrentUser(c)
	user, err := h.accounts.CreateUser(actor.EmpID, service.CreateUserParams{
		EmpID:       req.EmpID,
		EmpName:     req.EmpName,
		EmpMobileNo: req.EmpMobileNo,
		Password:    req.Password,
		Role:        rbac.Role(req.UserRole),
	})
	if err != nil {
		httpx.FailErr(c, httpx.AsAppError(err))
		return
	}

	httpx.OKMsg(c, "user created successfully", gin.H{"empid": user.EmpID})
}

// List handles GET /api/users
func (h *Handler) List(c *gin.Context) {
	var users []model.User
	if err := h.db.Order("empname").Find(&users).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch users", err))
		return
	}

	items := make([]UserSummary, len(users))
	for i, u := range users {
		items[i] = UserSummary{
			EmpID:          u.EmpID,
			EmpName:        u.EmpName,
			EmpMobileNo:    u.EmpMobileNo,
			UserRole:       string(u.Role),
			Status:         string(u.Status),
			FailedAttempts: u.FailedAttempts,
			LastLogin:      u.LastLogin,
			CreatedBy:      u.CreatedBy,
		}
	}

	httpx.OK(c, items)
}

// Lock handles POST /api/users/lock
func (h *Handler) Lock(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamMissing(err.Error()))
		return
	}

	actor := middleware.CurrentUser(c)
	if err := h.accounts.Lock(actor.EmpID, req.EmpID, req.MasterPassword); err != nil {
		httpx.FailErr(c, httpx.AsAppError(err))
		return
	}

	httpx.OKMsg(c, "user account locked successfully", nil)
}

// Unlock handles POST /api/users/unlock
func (h *Handler) Unlock(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamMissing(err.Error()))
		return
	}

	actor := middleware.CurrentUser(c)
	if err := h.accounts.Unlock(actor.EmpID, req.EmpID, req.MasterPassword); err != nil {
		httpx.FailErr(c, httpx.AsAppError(err))
		return
	}

	httpx.OKMsg(c, "user account unlocked successfully", nil)
}
