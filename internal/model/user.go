package model

import (
	"time"

	"go_vms/internal/rbac"
)

// UserStatus represents the account lifecycle state
type UserStatus string

const (
	UserStatusActive   UserStatus = "A"
	UserStatusLocked   UserStatus = "L"
	UserStatusInactive UserStatus = "I"
)

// LockThreshold is the failed-attempt count at which an account locks.
const LockThreshold = 5

// User represents an employee account. Accounts are never physically
// deleted; the status column carries the soft lifecycle.
type User struct {
	BaseModel
	EmpID          string     `gorm:"column:empid;type:varchar(32);uniqueIndex;not null" json:"empid"`
	EmpName        string     `gorm:"column:empname;type:varchar(128);not null" json:"empname"`
	EmpMobileNo    string     `gorm:"column:emp_mobile_no;type:varchar(20);index" json:"emp_mobile_no"`
	PasswordHash   string     `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Role           rbac.Role  `gorm:"column:user_role;type:varchar(16);not null" json:"user_role"`
	Status         UserStatus `gorm:"column:status;type:varchar(1);not null;default:'A'" json:"status"`
	FailedAttempts int        `gorm:"column:failed_attempts;not null;default:0" json:"failed_attempts"`
	LastLogin      *time.Time `gorm:"column:last_login" json:"last_login"`
	CreatedBy      string     `gorm:"column:created_by;type:varchar(32)" json:"created_by"`
	ModifyBy       string     `gorm:"column:modify_by;type:varchar(32)" json:"-"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
