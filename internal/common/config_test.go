package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	// Empty values read as unset; this isolates the test from the host env.
	for _, key := range []string{"REVIEWD_CONFIG", "DB_URL", "HTTP_ADDR", "STREAM_TIMEOUT", "JOB_WORKERS"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	if cfg.Jobs.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d", cfg.Jobs.MaxAttempts)
	}
	if cfg.Jobs.ResultTTL != 30*time.Minute {
		t.Errorf("ResultTTL = %v", cfg.Jobs.ResultTTL)
	}
	if cfg.Stream.PollInterval != time.Second || cfg.Stream.Timeout != 30*time.Second {
		t.Errorf("stream = %+v", cfg.Stream)
	}
	if len(cfg.GenAI.GeminiModels) == 0 {
		t.Error("default gemini model chain is empty")
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://u:p@localhost:5432/reviews")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("STREAM_TIMEOUT", "45s")
	t.Setenv("JOB_WORKERS", "8")

	cfg := LoadConfig()

	if cfg.Database.DSN != "postgres://u:p@localhost:5432/reviews" {
		t.Errorf("DSN = %q", cfg.Database.DSN)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Stream.Timeout != 45*time.Second {
		t.Errorf("stream timeout = %v", cfg.Stream.Timeout)
	}
	if cfg.Jobs.Workers != 8 {
		t.Errorf("workers = %d", cfg.Jobs.Workers)
	}
}

func TestLoadConfigYAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviewd.yaml")
	raw := []byte("server:\n  addr: \":7070\"\njobs:\n  maxAttempts: 5\n")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("REVIEWD_CONFIG", path)

	cfg := LoadConfig()

	if cfg.Server.Addr != ":7070" {
		t.Errorf("Addr = %q, want yaml value", cfg.Server.Addr)
	}
	if cfg.Jobs.MaxAttempts != 5 {
		t.Errorf("MaxAttempts = %d, want yaml value", cfg.Jobs.MaxAttempts)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Jobs.ResultTTL != 30*time.Minute {
		t.Errorf("ResultTTL = %v, want default", cfg.Jobs.ResultTTL)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := defaultConfig()
	cfg.Database.DSN = "postgres://localhost/reviews"
	cfg.GenAI.GeminiAPIKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate = %v, want nil", err)
	}

	cfg.Database.DSN = ""
	if err := cfg.Validate(); err == nil {
		t.Error("missing DSN must fail validation")
	}

	cfg = defaultConfig()
	cfg.Database.DSN = "x"
	if err := cfg.Validate(); err == nil {
		t.Error("missing API keys must fail validation")
	}
}
