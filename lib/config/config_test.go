// Copyright 2026 The Labreserve Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
service:
  base_url: https://reservas.example.edu
  timeout_seconds: 30
log:
  output: /tmp/labreserve.log
`)
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Service.BaseURL != "https://reservas.example.edu" {
		t.Errorf("BaseURL = %q", loaded.Service.BaseURL)
	}
	if loaded.Service.Timeout() != 30*time.Second {
		t.Errorf("Timeout = %v", loaded.Service.Timeout())
	}
	if loaded.Log.Output != "/tmp/labreserve.log" {
		t.Errorf("Log.Output = %q", loaded.Log.Output)
	}
}

func TestLoadAppliesTimeoutDefault(t *testing.T) {
	path := writeConfig(t, `
service:
  base_url: https://reservas.example.edu
`)
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Service.Timeout() != 15*time.Second {
		t.Errorf("Timeout = %v, want the 15s default", loaded.Service.Timeout())
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, `
service:
  base_url: https://reservas.example.edu
  retries: 3
`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for an unknown field")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestValidate(t *testing.T) {
	valid := Default()
	valid.Service.BaseURL = "https://reservas.example.edu"
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	if err := Default().Validate(); err == nil {
		t.Error("expected error for a missing base URL")
	}

	insecure := Default()
	insecure.Service.BaseURL = "http://reservas.example.edu"
	if err := insecure.Validate(); err == nil {
		t.Error("expected error for an HTTP base URL")
	}
}
