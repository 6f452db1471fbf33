package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"todo-tui/store"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.BackupCount() != store.DefaultBackups {
		t.Fatalf("unexpected backup count %d", cfg.BackupCount())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "file: tasks.txt\nsave_on_quit: true\nbackups: 0\nlog_level: DEBUG\nhighlight:\n  background: \"62\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.File != "tasks.txt" || !cfg.SaveOnQuit || cfg.BackupCount() != 0 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	level, err := cfg.Level()
	if err != nil || level != log.DebugLevel {
		t.Fatalf("expected debug level, got %v (%v)", level, err)
	}
	if cfg.Highlight.Background != "62" {
		t.Fatalf("unexpected highlight %+v", cfg.Highlight)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"malformed": "file: [unterminated\n",
		"negative":  "backups: -1\n",
		"level":     "log_level: chatty\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
				t.Fatalf("write failed: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Fatalf("expected error for %q", data)
			}
		})
	}
}

func TestTemplateLoadsAsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	written, err := WriteTemplate(path)
	if err != nil || !written {
		t.Fatalf("expected template written, got written=%v err=%v", written, err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load template failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("template differs from defaults: %+v", cfg)
	}

	written, err = WriteTemplate(path)
	if err != nil || written {
		t.Fatalf("expected existing config kept, got written=%v err=%v", written, err)
	}
}
