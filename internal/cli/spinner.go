package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/matzehuels/depscan/pkg/observability"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// extractSpinner animates "<label> n/total" on statusOut while a batch is
// extracted. It installs itself as the extraction hooks to count finished
// manifests and puts the previous hooks back when stopped.
type extractSpinner struct {
	label    string
	total    int
	finished atomic.Int64

	out      io.Writer
	prev     observability.ExtractHooks
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

func startSpinner(ctx context.Context, label string, total int) *extractSpinner {
	ctx, cancel := context.WithCancel(ctx)
	s := &extractSpinner{
		label:  label,
		total:  total,
		out:    statusOut,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	s.prev = observability.SetExtractHooks(s)
	go s.run(ctx)
	return s
}

// OnExtractComplete counts a finished manifest and forwards the event.
func (s *extractSpinner) OnExtractComplete(ctx context.Context, manager, path string, deps int, d time.Duration, err error) {
	s.finished.Add(1)
	s.prev.OnExtractComplete(ctx, manager, path, deps, d, err)
}

// OnExtractStart forwards the event.
func (s *extractSpinner) OnExtractStart(ctx context.Context, manager, path string) {
	s.prev.OnExtractStart(ctx, manager, path)
}

func (s *extractSpinner) status() string {
	return fmt.Sprintf("%s %d/%d", s.label, s.finished.Load(), s.total)
}

func (s *extractSpinner) run(ctx context.Context) {
	defer close(s.done)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		icon := styleIconSpinner.Render(spinnerFrames[frame%len(spinnerFrames)])
		fmt.Fprintf(s.out, "\r%s %s", icon, StyleDim.Render(s.status()))
	}
}

// stop clears the status line and restores the previous hooks. Later
// calls do nothing.
func (s *extractSpinner) stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		<-s.done
		observability.SetExtractHooks(s.prev)
		fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", len(s.status())+4))
	})
}

// fail stops the spinner and prints msg as an error.
func (s *extractSpinner) fail(msg string) {
	s.stop()
	printError("%s", msg)
}
