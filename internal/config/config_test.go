package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/idlewild/taskline/internal/config"
	"github.com/idlewild/taskline/internal/testsupport"
)

func TestLoad_NotFound(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.UI.Color != "" {
		t.Errorf("expected empty Color, got %q", cfg.UI.Color)
	}
	if cfg.PromptString() != config.DefaultPrompt {
		t.Errorf("PromptString = %q, expected default", cfg.PromptString())
	}
	if !cfg.ConfirmDelete() {
		t.Error("expected ConfirmDelete to default to true")
	}
}

func TestLoad_Full(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	configContent := `
[ui]
color = "never"
prompt = "task> "
confirm-delete = false

[log]
level = "debug"
`

	if err := os.WriteFile(filepath.Join(tmpDir, "taskline.toml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.UI.Color != "never" {
		t.Errorf("Color = %q, expected %q", cfg.UI.Color, "never")
	}
	if cfg.PromptString() != "task> " {
		t.Errorf("PromptString = %q, expected %q", cfg.PromptString(), "task> ")
	}
	if cfg.ConfirmDelete() {
		t.Error("expected ConfirmDelete to be false")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q, expected %q", cfg.Log.Level, "debug")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	configContent := `this is not valid toml [`

	if err := os.WriteFile(filepath.Join(tmpDir, "taskline.toml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := config.Load(tmpDir)
	if err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestLoad_UsesGlobalWhenLocalMissing(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	configDir := filepath.Join(homeDir, ".config", "taskline")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	configContent := `
[ui]
color = "always"
prompt = "global> "
`

	globalPath := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(globalPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write global config: %v", err)
	}

	workDir := t.TempDir()
	cfg, err := config.Load(workDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.UI.Color != "always" {
		t.Errorf("Color = %q, expected %q", cfg.UI.Color, "always")
	}
	if cfg.PromptString() != "global> " {
		t.Errorf("PromptString = %q, expected %q", cfg.PromptString(), "global> ")
	}
}

func TestLoad_LocalOverridesGlobal(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	configDir := filepath.Join(homeDir, ".config", "taskline")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	globalContent := `
[ui]
color = "always"
confirm-delete = true
`
	globalPath := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(globalPath, []byte(globalContent), 0o644); err != nil {
		t.Fatalf("failed to write global config: %v", err)
	}

	localContent := `
[ui]
color = "never"
confirm-delete = false
`

	workDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(workDir, "taskline.toml"), []byte(localContent), 0o644); err != nil {
		t.Fatalf("failed to write local config: %v", err)
	}

	cfg, err := config.Load(workDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.UI.Color != "never" {
		t.Errorf("Color = %q, expected local override %q", cfg.UI.Color, "never")
	}
	if cfg.ConfirmDelete() {
		t.Error("expected local confirm-delete override to win")
	}
}

func TestLoad_LocalEmptyOverridesGlobal(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	configDir := filepath.Join(homeDir, ".config", "taskline")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	globalContent := `
[ui]
prompt = "global> "
`
	globalPath := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(globalPath, []byte(globalContent), 0o644); err != nil {
		t.Fatalf("failed to write global config: %v", err)
	}

	localContent := `
[ui]
prompt = ""
`

	workDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(workDir, "taskline.toml"), []byte(localContent), 0o644); err != nil {
		t.Fatalf("failed to write local config: %v", err)
	}

	cfg, err := config.Load(workDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// An explicitly empty local prompt clears the global one, so the
	// default applies.
	if cfg.PromptString() != config.DefaultPrompt {
		t.Errorf("PromptString = %q, expected default", cfg.PromptString())
	}
}
