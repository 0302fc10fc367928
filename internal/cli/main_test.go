// Copyright (c) 2026 Keymaster Team
// Envalidator - environment file validation
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"testing"
)

func TestNewRootCmd_FlagSurface(t *testing.T) {
	cmd := NewRootCmd()

	for flag, shorthand := range map[string]string{
		"env-file":     "e",
		"example-file": "x",
		"init":         "i",
		"fix":          "f",
		"approve":      "y",
	} {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			t.Fatalf("flag %q not present", flag)
		}
		if f.Shorthand != shorthand {
			t.Fatalf("flag %q: expected shorthand %q, got %q", flag, shorthand, f.Shorthand)
		}
	}
	for _, flag := range []string{"config", "lang", "debug", "plain"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Fatalf("flag %q not present", flag)
		}
	}
}

func TestGetConfigPathFromCli_FlagNotSet(t *testing.T) {
	cmd := NewRootCmd()

	p, err := getConfigPathFromCli(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil path when flag not set, got %v", *p)
	}
}

func TestGetConfigPathFromCli_WithValidFile(t *testing.T) {
	file, err := os.CreateTemp("", "evcfg-*.yaml")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer func() { _ = os.Remove(file.Name()) }()
	_ = file.Close()

	cmd := NewRootCmd()
	if err := cmd.Flags().Set("config", file.Name()); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}

	p, err := getConfigPathFromCli(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil || *p != file.Name() {
		t.Fatalf("expected path %s, got %v", file.Name(), p)
	}
}

func TestGetConfigPathFromCli_MissingFile(t *testing.T) {
	cmd := NewRootCmd()
	if err := cmd.Flags().Set("config", filepath.Join(t.TempDir(), "nope.yaml")); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}

	if _, err := getConfigPathFromCli(cmd); err == nil {
		t.Fatalf("expected error for nonexistent config file")
	}
}

func TestResolveBuildVersion_WithBuildInfo(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/toeirei/envalidator", Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "deadbeef"},
			{Key: "vcs.time", Value: "2026-01-01T00:00:00Z"},
		},
	}

	v, c, d := resolveBuildVersion(info)
	if v != "v1.2.3" {
		t.Fatalf("expected version v1.2.3, got %s", v)
	}
	if c != "deadbeef" {
		t.Fatalf("expected commit deadbeef, got %s", c)
	}
	if d != "2026-01-01T00:00:00Z" {
		t.Fatalf("expected date set, got %s", d)
	}
}

func TestFormatVersion(t *testing.T) {
	if got := formatVersion("v1.0.0", "abc", ""); got != "v1.0.0 (commit abc)" {
		t.Fatalf("unexpected version string: %q", got)
	}
	if got := formatVersion("v1.0.0", "abc", "2026-01-01"); got != "v1.0.0 (commit abc, built 2026-01-01)" {
		t.Fatalf("unexpected version string: %q", got)
	}
}
