package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.MnttabPath != "/etc/mnttab" {
		t.Errorf("MnttabPath = %q; want /etc/mnttab", cfg.MnttabPath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.MnttabPath = ""
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected error for empty mount table path")
	}
}
