package service

import (
	"errors"
	"strings"
	"time"

	"go_vms/internal/auth"
	"go_vms/internal/config"
	"go_vms/internal/httpx"
	"go_vms/internal/model"
	"go_vms/internal/rbac"

	"gorm.io/gorm"
)

// AccountService runs the account lifecycle state machine.
type AccountService struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewAccountService creates a new account service
func NewAccountService(db *gorm.DB, cfg *config.Config) *AccountService {
	return &AccountService{db: db, cfg: cfg}
}

// NormalizeEmpID upper-cases and trims an employee ID.
func NormalizeEmpID(empID string) string {
	return strings.ToUpper(strings.TrimSpace(empID))
}

// CreateUserParams holds the inputs for creating an account.
type CreateUserParams struct {
	EmpID       string
	EmpName     string
	EmpMobileNo string
	Password    string
	Role        rbac.Role
}

// Authenticate runs a login attempt. Failed attempts bump the counter and
// lock the account at the threshold; both failure branches commit before
// the error is returned. A successful login resets the counter and stamps
// last_login.
func (s *AccountService) Authenticate(empID, password string) (*model.User, error) {
	empID = NormalizeEmpID(empID)

	var user model.User
	var authErr *httpx.AppError

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("empid = ?", empID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				authErr = httpx.ErrNotFound("employee ID not found")
				return nil
			}
			return err
		}

		// Locked or inactive accounts do not count attempts.
		if user.Status != model.UserStatusActive {
			authErr = httpx.ErrUnauthorized("account locked or inactive")
			return nil
		}

		if auth.ComparePassword(user.PasswordHash, password) != nil {
			if err := tx.Model(&user).
				Update("failed_attempts", gorm.Expr("failed_attempts + 1")).Error; err != nil {
				return err
			}
			if err := tx.Where("empid = ?", empID).First(&user).Error; err != nil {
				return err
			}

			if user.FailedAttempts >= model.LockThreshold {
				if err := tx.Model(&user).
					Update("status", model.UserStatusLocked).Error; err != nil {
					return err
				}
				user.Status = model.UserStatusLocked
				authErr = httpx.ErrUnauthorized("account locked due to failed attempts")
				return nil
			}

			authErr = httpx.ErrUnauthorized("incorrect password")
			return nil
		}

		now := time.Now()
		if err := tx.Model(&user).Updates(map[string]interface{}{
			"failed_attempts": 0,
			"last_login":      now,
		}).Error; err != nil {
			return err
		}
		user.FailedAttempts = 0
		user.LastLogin = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	if authErr != nil {
		return nil, authErr
	}
	return &user, nil
}

// CreateUser creates a new Active account with a hashed password.
func (s *AccountService) CreateUser(actorEmpID string, p CreateUserParams) (*model.User, error) {
	if !rbac.Valid(p.Role) {
		return nil, httpx.ErrParamIllegal("invalid user role")
	}

	empID := NormalizeEmpID(p.EmpID)
	if empID == "" {
		return nil, httpx.ErrParamMissing("employee ID is required")
	}

	hash, err := auth.HashPassword(p.Password)
	if err != nil {
		return nil, httpx.ErrInternalError("failed to hash password", err)
	}

	user := model.User{
		EmpID:          empID,
		EmpName:        p.EmpName,
		EmpMobileNo:    p.EmpMobileNo,
		PasswordHash:   hash,
		Role:           p.Role,
		Status:         model.UserStatusActive,
		FailedAttempts: 0,
		CreatedBy:      actorEmpID,
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Where("empid = ?", empID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httpx.ErrAlreadyExists("employee ID already exists")
		}
		return tx.Create(&user).Error
	})
	if txErr != nil {
		// The unique index backs up the pre-check under concurrent creates.
		if errors.Is(txErr, gorm.ErrDuplicatedKey) {
			return nil, httpx.ErrAlreadyExists("employee ID already exists")
		}
		return nil, txErr
	}
	return &user, nil
}

// Lock transitions a target account to Locked. Locking an ADMIN or HR
// account requires the master override secret.
func (s *AccountService) Lock(actorEmpID, targetEmpID, masterPassword string) error {
	targetEmpID = NormalizeEmpID(targetEmpID)

	return s.db.Transaction(func(tx *gorm.DB) error {
		var target model.User
		if err := tx.Where("empid = ?", targetEmpID).First(&target).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httpx.ErrNotFound("employee ID not found")
			}
			return err
		}

		if target.Status == model.UserStatusLocked {
			return httpx.ErrStateConflict("account is already locked")
		}

		if err := s.checkMasterOverride(target.Role, masterPassword, "master password required to lock ADMIN or HR"); err != nil {
			return err
		}

		return tx.Model(&target).Updates(map[string]interface{}{
			"status":    model.UserStatusLocked,
			"modify_by": actorEmpID,
		}).Error
	})
}

// Unlock transitions a target account back to Active and clears the
// failed-attempt counter. Same ADMIN/HR override rule as Lock.
func (s *AccountService) Unlock(actorEmpID, targetEmpID, masterPassword string) error {
	targetEmpID = NormalizeEmpID(targetEmpID)

	return s.db.Transaction(func(tx *gorm.DB) error {
		var target model.User
		if err := tx.Where("empid = ?", targetEmpID).First(&target).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httpx.ErrNotFound("employee ID not found")
			}
			return err
		}

		if target.Status == model.UserStatusActive {
			return httpx.ErrStateConflict("account is already active")
		}

		if err := s.checkMasterOverride(target.Role, masterPassword, "invalid master password"); err != nil {
			return err
		}

		return tx.Model(&target).Updates(map[string]interface{}{
			"status":          model.UserStatusActive,
			"failed_attempts": 0,
			"modify_by":       actorEmpID,
		}).Error
	})
}

func (s *AccountService) checkMasterOverride(targetRole rbac.Role, masterPassword, message string) error {
	if targetRole != rbac.RoleAdmin && targetRole != rbac.RoleHR {
		return nil
	}
	if masterPassword != s.cfg.MasterPassword {
		return httpx.ErrUnauthorized(message)
	}
	return nil
}
