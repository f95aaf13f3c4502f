package service

import (
	"testing"

	"go_vms/internal/auth"
	"go_vms/internal/config"
	"go_vms/internal/model"
	"go_vms/internal/rbac"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.VisitorEntry{},
		&model.VisitorCategory{},
		&model.Purpose{},
		&model.IDType{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		MySQL:          config.MySQLConfig{DSN: "test"},
		JWT:            config.JWTConfig{Secret: "test-secret", ExpireMinutes: 30, Issuer: "go_vms"},
		MasterPassword: "Master#Override",
	}
}

// seedUser inserts an account directly, bypassing the service layer.
func seedUser(t *testing.T, db *gorm.DB, empID string, role rbac.Role, mobile, password string, status model.UserStatus) *model.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &model.User{
		EmpID:        empID,
		EmpName:      "Employee " + empID,
		EmpMobileNo:  mobile,
		PasswordHash: hash,
		Role:         role,
		Status:       status,
		CreatedBy:    "SEED",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", empID, err)
	}
	return user
}
