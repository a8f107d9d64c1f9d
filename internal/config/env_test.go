package config

import (
	"testing"
	"time"
)

func TestParseEnvAppliesTagsAndDefaults(t *testing.T) {
	type sample struct {
		Name    string        `env:"SAMPLE_NAME" envDefault:"fallback"`
		Enabled bool          `env:"SAMPLE_ENABLED"`
		Wait    time.Duration `env:"SAMPLE_WAIT" envDefault:"2s"`
	}
	t.Setenv("SAMPLE_ENABLED", "true")

	var got sample
	if err := ParseEnv(&got); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Name != "fallback" || !got.Enabled || got.Wait != 2*time.Second {
		t.Fatalf("unexpected parse result %+v", got)
	}
}

func TestParseEnvWrapsErrors(t *testing.T) {
	type sample struct {
		Enabled bool `env:"SAMPLE_ENABLED"`
	}
	t.Setenv("SAMPLE_ENABLED", "maybe")

	var got sample
	if err := ParseEnv(&got); err == nil {
		t.Fatal("expected error for invalid bool")
	}
}
