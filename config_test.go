package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigFile_Missing(t *testing.T) {
	dir := t.TempDir()
	config, err := loadConfigFile(filepath.Join(dir, configFileName), dir)
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
	if *config != *defaultConfig() {
		t.Fatalf("config: got %+v, want defaults", config)
	}
}

func TestLoadConfigFile_Overrides(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, configFileName)
	content := `save_directory: ~/rects
state_file: board.json
export_directory: /tmp/exports
clamp_cursor: true
tick_interval: 50ms
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := loadConfigFile(path, home)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if want := filepath.Join(home, "rects"); config.SaveDirectory != want {
		t.Fatalf("save dir: got %q, want %q", config.SaveDirectory, want)
	}
	if config.StateFile != "board.json" {
		t.Fatalf("state file: got %q", config.StateFile)
	}
	if config.ExportDirectory != "/tmp/exports" {
		t.Fatalf("export dir: got %q", config.ExportDirectory)
	}
	if !config.ClampCursor {
		t.Fatalf("clamp_cursor not applied")
	}
	if config.TickInterval != 50*time.Millisecond {
		t.Fatalf("tick: got %v", config.TickInterval)
	}
	if want := filepath.Join(home, "rects", "board.json"); config.GetSavePath(config.StateFile) != want {
		t.Fatalf("save path: got %q, want %q", config.GetSavePath(config.StateFile), want)
	}
}

func TestLoadConfigFile_PartialKeepsDefaults(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, configFileName)
	if err := os.WriteFile(path, []byte("clamp_cursor: true\nstate_file: \"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	config, err := loadConfigFile(path, home)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if config.StateFile != defaultStateFile || config.TickInterval != 16*time.Millisecond {
		t.Fatalf("defaults lost: %+v", config)
	}
	if config.GetSavePath("x.json") != "x.json" {
		t.Fatalf("no save dir should leave the name alone")
	}
}

func TestLoadConfigFile_BadYAML(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, configFileName)
	if err := os.WriteFile(path, []byte("clamp_cursor: [oops\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	config, err := loadConfigFile(path, home)
	if err == nil {
		t.Fatalf("expected a yaml error")
	}
	if *config != *defaultConfig() {
		t.Fatalf("config: got %+v, want defaults", config)
	}
}

func TestGetExportPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	config := &Config{ExportDirectory: dir}
	got, err := config.GetExportPath("rects.png")
	if err != nil || got != filepath.Join(dir, "rects.png") {
		t.Fatalf("got %q, %v", got, err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("export dir not created: %v", err)
	}
	if got, err := (&Config{}).GetExportPath("rects.png"); err != nil || got != "rects.png" {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestGetExportPath_MkdirFails(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	config := &Config{ExportDirectory: filepath.Join(file, "out")}
	if got, err := config.GetExportPath("rects.png"); err == nil {
		t.Fatalf("got %q, want error", got)
	}
}
