package config

import (
	"os"
	"path/filepath"
	"testing"
)

func setRequired(t *testing.T) {
	t.Setenv("MYSQL_DSN", "user:pass@tcp(localhost:3306)/vms")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("MASTER_PASSWORD", "test-master")
}

func TestLoad(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.MySQL.DSN == "" {
		t.Error("MySQL DSN should not be empty")
	}

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("Expected HTTPAddr :8080, got %s", cfg.HTTPAddr)
	}

	if cfg.JWT.ExpireMinutes != 30 {
		t.Errorf("Expected default token TTL of 30 minutes, got %d", cfg.JWT.ExpireMinutes)
	}

	if cfg.JWT.Issuer != "go_vms" {
		t.Errorf("Expected default issuer go_vms, got %s", cfg.JWT.Issuer)
	}
}

func TestLoad_MissingSecrets(t *testing.T) {
	cases := []struct {
		name string
		omit string
	}{
		{"missing MYSQL_DSN", "MYSQL_DSN"},
		{"missing JWT_SECRET", "JWT_SECRET"},
		{"missing MASTER_PASSWORD", "MASTER_PASSWORD"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tc.omit, "")
			os.Unsetenv(tc.omit)

			if _, err := Load(); err == nil {
				t.Errorf("Load() should fail when %s is missing", tc.omit)
			}
		})
	}
}

func TestLoad_CustomValues(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_EXPIRE_MINUTES", "15")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("MIGRATE", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.JWT.ExpireMinutes != 15 {
		t.Errorf("Expected ExpireMinutes 15, got %d", cfg.JWT.ExpireMinutes)
	}

	if cfg.HTTPAddr != ":9090" {
		t.Errorf("Expected HTTPAddr :9090, got %s", cfg.HTTPAddr)
	}

	if !cfg.Migrate {
		t.Error("Expected Migrate to be true")
	}
}

func TestLoadFromINI(t *testing.T) {
	iniContent := `[mysql]
dsn = user:pass@tcp(localhost:3306)/vms

[jwt]
secret = ini-secret
expire_minutes = 45
issuer = vms-ini

[app]
master_password = ini-master
migrate = true
`
	iniPath := filepath.Join(t.TempDir(), "vms.ini")
	if err := os.WriteFile(iniPath, []byte(iniContent), 0o600); err != nil {
		t.Fatalf("failed to write INI file: %v", err)
	}

	for _, key := range []string{"MYSQL_DSN", "JWT_SECRET", "JWT_EXPIRE_MINUTES", "MASTER_PASSWORD", "MIGRATE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadFromINI(iniPath)
	if err != nil {
		t.Fatalf("LoadFromINI() failed: %v", err)
	}

	if cfg.JWT.Secret != "ini-secret" {
		t.Errorf("Expected secret from INI, got %s", cfg.JWT.Secret)
	}

	if cfg.JWT.ExpireMinutes != 45 {
		t.Errorf("Expected ExpireMinutes 45, got %d", cfg.JWT.ExpireMinutes)
	}

	if !cfg.Migrate {
		t.Error("Expected Migrate true from INI")
	}
}

func TestLoadFromINI_EnvOverridesINI(t *testing.T) {
	iniContent := `[mysql]
dsn = ini-dsn

[jwt]
secret = ini-secret

[app]
master_password = ini-master
`
	iniPath := filepath.Join(t.TempDir(), "vms.ini")
	if err := os.WriteFile(iniPath, []byte(iniContent), 0o600); err != nil {
		t.Fatalf("failed to write INI file: %v", err)
	}

	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadFromINI(iniPath)
	if err != nil {
		t.Fatalf("LoadFromINI() failed: %v", err)
	}

	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("environment should override INI, got %s", cfg.JWT.Secret)
	}
}
