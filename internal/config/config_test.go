package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := loadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Grade != "" || cfg.Subject != "" || cfg.LLM.Provider != "" {
		t.Errorf("expected empty defaults, got %+v", cfg)
	}
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "grade: \"3-4\"\nsubject: mates\nllm:\n  provider: mock\n  model: mock-1\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Grade != "3-4" || cfg.Subject != "mates" {
		t.Errorf("got %+v", cfg)
	}
	if cfg.LLM.Provider != "mock" || cfg.LLM.Model != "mock-1" {
		t.Errorf("llm = %+v", cfg.LLM)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("grade: [unclosed"), 0o644)
	if _, err := loadFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestPathEnvOverride(t *testing.T) {
	t.Setenv("TUTORIN_CONFIG", "/tmp/custom.yaml")
	p, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	if p != "/tmp/custom.yaml" {
		t.Errorf("Path() = %q", p)
	}
}
