package main

import (
	"context"
	"fmt"
	"testing"

	deperrors "github.com/matzehuels/depscan/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"cancelled", fmt.Errorf("extract: %w", context.Canceled), exitInterrupted},
		{"bad flag value", deperrors.New(deperrors.ErrCodeInvalidInput, "bad format"), exitUsage},
		{"bad config", deperrors.New(deperrors.ErrCodeInvalidConfig, "workers"), exitUsage},
		{"missing file", deperrors.New(deperrors.ErrCodeFileNotFound, "Podfile"), exitFailure},
		{"plain", fmt.Errorf("boom"), exitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
