package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catanpg.yaml")
	content := "board: fishermen\nseed: 5\nlog_level: debug\ninteractive: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := rootCmd.ParseFlags([]string{"--config", path, "--seed", "9", "--no-tui"}); err != nil {
		t.Fatalf("ParseFlags error: %v", err)
	}
	cfg, err := loadConfig(rootCmd)
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}

	if cfg.Board != "fishermen" {
		t.Errorf("Board = %q, want the file's fishermen", cfg.Board)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want the file's debug", cfg.LogLevel)
	}
	if cfg.Seed != 9 {
		t.Errorf("Seed = %d, want the flag's 9", cfg.Seed)
	}
	if cfg.Interactive {
		t.Error("--no-tui should override interactive")
	}
}
