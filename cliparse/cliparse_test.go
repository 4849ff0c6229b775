// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("DEFAULT_PAGE_LIMIT", "25")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
	if cfg.DefaultPageLimit != 25 {
		t.Errorf("expected page limit 25, got %d", cfg.DefaultPageLimit)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-limit", "10"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DefaultPageLimit != 10 {
		t.Errorf("expected page limit 10, got %d", cfg.DefaultPageLimit)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("DEFAULT_PAGE_LIMIT", "")

	cfg, err := ParseFlags([]string{"-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected default sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.DefaultPageLimit != 100 {
		t.Errorf("expected default page limit 100, got %d", cfg.DefaultPageLimit)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing database url", map[string]string{"DATABASE_URL": ""}, []string{}},
		{"bad port env", map[string]string{"PORT": "abc"}, []string{"-d", "x"}},
		{"unknown database type", nil, []string{"-d", "x", "-t", "mysql"}},
		{"negative page limit", nil, []string{"-d", "x", "-limit", "-5"}},
		{"unknown flag", nil, []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", "")
			t.Setenv("DATABASE_URL", "")
			t.Setenv("DATABASE_TYPE", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("DATABASE_URL=file:from-env-file.db\nPORT=7000\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")
	t.Setenv("PORT", "9999")

	if err := LoadDotEnv(path); err != nil {
		t.Fatal(err)
	}

	if got := os.Getenv("DATABASE_URL"); got != "file:from-env-file.db" {
		t.Errorf("expected DATABASE_URL from file, got %q", got)
	}
	// Existing variables win over the file
	if got := os.Getenv("PORT"); got != "9999" {
		t.Errorf("expected PORT to stay 9999, got %q", got)
	}
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "does-not-exist.env")); err != nil {
		t.Errorf("missing env file should not be an error, got %v", err)
	}
}
