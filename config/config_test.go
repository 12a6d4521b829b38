package config

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func boolPtr(b bool) *bool { return &b }

func TestConfig(t *testing.T) {

	config, err := Load("config.example.yaml")
	if err != nil {
		t.Fatal(err)
	}

	want := &Config{
		Prompt:    "calc> ",
		MaxFaults: 5,
		ShowHelp:  boolPtr(false),
		LogLevel:  "debug",
	}
	if diff := cmp.Diff(want, config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if config.HelpOnStart() {
		t.Error("expected help to be disabled")
	}
}

func TestConfigDefaults(t *testing.T) {

	config, err := Load("testdata/empty.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if !config.HelpOnStart() {
		t.Error("expected help on start by default")
	}
}

func TestConfigErrors(t *testing.T) {

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"missing file", "testdata/doesNotExist.yaml", "config file does not exist"},
		{"negative faults", "testdata/bad_faults.yaml", "max_faults must not be negative"},
		{"bad level", "testdata/bad_level.yaml", `invalid log_level "chatty"`},
		{"bad yaml", "testdata/bad_yaml.yaml", "unable to parse YAML config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got %q want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestSetLogLevel(t *testing.T) {
	c := Default()
	if err := c.SetLogLevel("INFO"); err != nil {
		t.Fatal(err)
	}
	if got, want := c.LogLevel, "info"; got != want {
		t.Errorf("got %s want %s", got, want)
	}
	if err := c.SetLogLevel("loud"); err == nil {
		t.Error("expected an error for an unknown level")
	}
	if got, want := c.LogLevel, "info"; got != want {
		t.Errorf("level changed on error: got %s want %s", got, want)
	}
}
