package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestArgsReorder(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"flags first unchanged", []string{"-limit", "5", "u1"}, []string{"-limit", "5", "u1"}},
		{"flags after positional moved", []string{"u1", "-limit", "5"}, []string{"-limit", "5", "u1"}},
		{"no flags", []string{"u1", "j1"}, []string{"u1", "j1"}},
		{"empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := argsReorder(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("argsReorder(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "debug: true\nstorage:\n  database_path: \"/tmp/susume.db\"\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if resolved != path {
		t.Errorf("resolved = %s, want %s", resolved, path)
	}
	if !cfg.Debug {
		t.Error("debug not loaded")
	}
	if cfg.Matching.TopN != 20 {
		t.Errorf("defaults not applied: top_n = %d", cfg.Matching.TopN)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	if _, _, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config")
	}
}
