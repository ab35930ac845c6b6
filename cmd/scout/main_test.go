package main

import (
	"context"
	"fmt"
	"testing"

	scouterrors "github.com/matzehuels/scout/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"canceled", fmt.Errorf("infer: %w", context.Canceled), 130},
		{"unknown op", scouterrors.New(scouterrors.ErrCodeUnknownOp, "unknown arrange operation %q", "x"), 2},
		{"bad document", scouterrors.New(scouterrors.ErrCodeInvalidDocument, "duplicate id"), 2},
		{"internal", scouterrors.New(scouterrors.ErrCodeInternal, "synthesize form"), 1},
		{"plain", fmt.Errorf("boom"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
