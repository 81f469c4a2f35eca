package cli

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/matzehuels/depscan/pkg/observability"
)

func quietStatus(t *testing.T) {
	t.Helper()
	prev := statusOut
	statusOut = io.Discard
	t.Cleanup(func() { statusOut = prev })
}

func TestSpinnerCountsExtractions(t *testing.T) {
	quietStatus(t)
	observability.Reset()
	t.Cleanup(observability.Reset)

	counters := observability.NewCounters()
	observability.SetExtractHooks(counters)

	s := startSpinner(t.Context(), "Extracting", 3)
	hooks := observability.Extract()
	hooks.OnExtractComplete(t.Context(), "cocoapods", "Podfile", 2, time.Millisecond, nil)
	hooks.OnExtractComplete(t.Context(), "bazel", "WORKSPACE", 1, time.Millisecond, nil)

	if got := s.status(); got != "Extracting 2/3" {
		t.Errorf("status() = %q", got)
	}
	if n := counters.Snapshot().Extractions; n != 2 {
		t.Errorf("previous hooks saw %d extractions, want 2", n)
	}

	s.stop()
	s.stop()
	if observability.Extract() != observability.ExtractHooks(counters) {
		t.Error("stop() should restore the previous hooks")
	}
}

func TestSpinnerContextCancel(t *testing.T) {
	quietStatus(t)
	t.Cleanup(observability.Reset)

	ctx, cancel := context.WithCancel(context.Background())
	s := startSpinner(ctx, "Extracting", 1)
	cancel()

	select {
	case <-s.done:
	case <-time.After(time.Second):
		t.Fatal("spinner kept running after context cancellation")
	}
	s.fail("Extraction interrupted")
}
