package cmd

import (
	"testing"
)

func TestNew(t *testing.T) {
	cmd := New()
	if cmd == nil {
		t.Fatal("New() returned nil")
	}
	if cmd.Use != "stalesweep" {
		t.Errorf("expected Use to be 'stalesweep', got %q", cmd.Use)
	}
}

func TestNewCmdSweep(t *testing.T) {
	opts := &Options{}
	cmd := NewCmdSweep(opts)
	if cmd == nil {
		t.Fatal("NewCmdSweep() returned nil")
	}
	if cmd.Use != "sweep" {
		t.Errorf("expected Use to be 'sweep', got %q", cmd.Use)
	}
}

func TestNewCmdConfig(t *testing.T) {
	cmd := NewCmdConfig()
	if cmd == nil {
		t.Fatal("NewCmdConfig() returned nil")
	}
	if cmd.Use != "config" {
		t.Errorf("expected Use to be 'config', got %q", cmd.Use)
	}
}

func TestNewCmdRateLimit(t *testing.T) {
	cmd := NewCmdRateLimit()
	if cmd == nil {
		t.Fatal("NewCmdRateLimit() returned nil")
	}
	if cmd.Use != "ratelimit" {
		t.Errorf("expected Use to be 'ratelimit', got %q", cmd.Use)
	}
}

func TestNewCmdVersion(t *testing.T) {
	cmd := NewCmdVersion()
	if cmd == nil {
		t.Fatal("NewCmdVersion() returned nil")
	}
	if cmd.Use != "version" {
		t.Errorf("expected Use to be 'version', got %q", cmd.Use)
	}
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("1.0.0", "abc123", "2024-01-01")
	// Just verify it doesn't panic - version info is in package vars
}

func TestOptions(t *testing.T) {
	opts := NewOptions(
		WithRepo("acme/widgets"),
		WithInactiveFor("30d"),
		WithFormat("json"),
		WithExemptUsers([]string{"bot"}),
		WithDryRun(true),
		WithTimeout(15),
		WithVerbosity(1),
	)
	if opts.Repo != "acme/widgets" {
		t.Errorf("expected Repo to be 'acme/widgets', got %q", opts.Repo)
	}
	if opts.InactiveFor != "30d" {
		t.Errorf("expected InactiveFor to be '30d', got %q", opts.InactiveFor)
	}
	if opts.Format != "json" {
		t.Errorf("expected Format to be 'json', got %q", opts.Format)
	}
	if !opts.DryRun {
		t.Error("expected DryRun to be true")
	}
	if opts.Timeout != 15 {
		t.Errorf("expected Timeout to be 15, got %d", opts.Timeout)
	}
}
