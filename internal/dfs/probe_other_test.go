//go:build !illumos && !solaris

package dfs

import (
	"errors"
	"testing"
)

func TestSysProberUnsupported(t *testing.T) {
	_, _, err := NewProber().Probe(".")
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}

	var perr *ProbeError
	if !errors.As(err, &perr) || perr.Path != "." {
		t.Errorf("expected *ProbeError for path \".\", got %v", err)
	}
}
