package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := LoadFrogger("")
	if err != nil {
		t.Fatalf("LoadFrogger() failed: %v", err)
	}
	if cfg != DefaultFroggerConfig() {
		t.Errorf("embedded config = %+v, want %+v", cfg, DefaultFroggerConfig())
	}
}

func TestLoadCustomPathKeepsMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frogger.yaml")
	data := "arena:\n  width: 480\n  height: 360\nhero:\n  lives: 7\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrogger(path)
	if err != nil {
		t.Fatalf("LoadFrogger() failed: %v", err)
	}

	if cfg.Arena.Width != 480 || cfg.Arena.Height != 360 {
		t.Errorf("arena = %dx%d, want 480x360", cfg.Arena.Width, cfg.Arena.Height)
	}
	if cfg.Hero.Lives != 7 {
		t.Errorf("lives = %d, want 7", cfg.Hero.Lives)
	}
	if cfg.Arena.TickRate != 30 || cfg.Hero.Step != 32 {
		t.Errorf("defaults lost: tick_rate=%d step=%d", cfg.Arena.TickRate, cfg.Hero.Step)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFrogger(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("arena: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrogger(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestLocalConfigsDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.Mkdir("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "frogger.yaml"), []byte("layout:\n  vehicle_columns: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrogger("")
	if err != nil {
		t.Fatalf("LoadFrogger() failed: %v", err)
	}
	if cfg.Layout.VehicleColumns != 1 {
		t.Errorf("vehicle_columns = %d, want 1", cfg.Layout.VehicleColumns)
	}
	if cfg.Layout.RaftRepetitions != 2 {
		t.Errorf("raft_repetitions = %d, want default 2", cfg.Layout.RaftRepetitions)
	}
}

func TestApplyFroggerPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		lives    int
		vehicles int
		rafts    int
	}{
		{DifficultyEasy, 5, 3, 2},
		{DifficultyNormal, 3, 5, 2},
		{DifficultyHard, 2, 5, 1},
		{"", 3, 5, 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultFroggerConfig()
			ApplyFroggerPreset(&cfg, tt.preset)
			if cfg.Hero.Lives != tt.lives {
				t.Errorf("lives = %d, want %d", cfg.Hero.Lives, tt.lives)
			}
			if cfg.Layout.VehicleColumns != tt.vehicles {
				t.Errorf("vehicle_columns = %d, want %d", cfg.Layout.VehicleColumns, tt.vehicles)
			}
			if cfg.Layout.RaftRepetitions != tt.rafts {
				t.Errorf("raft_repetitions = %d, want %d", cfg.Layout.RaftRepetitions, tt.rafts)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := map[string]DifficultyPreset{
		"easy":   DifficultyEasy,
		"normal": DifficultyNormal,
		"hard":   DifficultyHard,
		"fixed":  "",
		"":       "",
	}
	for in, want := range tests {
		if got := ParsePreset(in); got != want {
			t.Errorf("ParsePreset(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultFroggerConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	cfg := DefaultFroggerConfig()
	cfg.Arena.Width = 0
	cfg.Hero.Lives = 0
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, part := range []string{"arena size", "hero lives"} {
		if !strings.Contains(err.Error(), part) {
			t.Errorf("error %q does not mention %q", err, part)
		}
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
