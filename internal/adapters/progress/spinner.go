package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/oneshot/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCase = cases.Title(language.English)

// SpinnerProgressReporter renders deployment stages with a spinner. It only
// ever writes to stderr so stdout stays reserved for the result line.
type SpinnerProgressReporter struct {
	out     io.Writer
	spinner *spinner.Spinner
	stages  []stageInfo
	mu      sync.Mutex
}

type stageInfo struct {
	Stage     usecase.ExecutionStage
	StartTime time.Time
	EndTime   time.Time
	Message   string
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter
func NewSpinnerProgressReporter() *SpinnerProgressReporter {
	return newSpinnerProgressReporter(os.Stderr, spinner.WithWriterFile(os.Stderr))
}

func newSpinnerProgressReporter(out io.Writer, opts ...spinner.Option) *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, opts...)
	s.HideCursor = false

	return &SpinnerProgressReporter{
		out:     out,
		spinner: s,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if n := len(r.stages); n > 0 && r.stages[n-1].EndTime.IsZero() {
		r.stages[n-1].EndTime = now
	}

	if event.Stage == usecase.StageDone {
		if r.spinner.Active() {
			r.spinner.Stop()
		}
		return
	}

	r.stages = append(r.stages, stageInfo{
		Stage:     event.Stage,
		StartTime: now,
		Message:   event.Message,
	})

	r.spinner.Suffix = " " + r.display()
	if event.Spinner {
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.print(color.New(color.FgCyan), message)
}

func (r *SpinnerProgressReporter) print(c *color.Color, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Stop spinner temporarily
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	_, _ = c.Fprintln(r.out, message)

	if wasActive {
		r.spinner.Start()
	}
}

// display renders "✓ Resolving (3ms) → ● Submitting: Deploying Foo"
func (r *SpinnerProgressReporter) display() string {
	parts := make([]string, 0, len(r.stages))
	for _, stage := range r.stages {
		name := titleCase.String(string(stage.Stage))

		if stage.EndTime.IsZero() {
			parts = append(parts, fmt.Sprintf("● %s", color.New(color.FgYellow).Sprint(name)))
			continue
		}
		duration := stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond)
		parts = append(parts, fmt.Sprintf("✓ %s (%s)", color.New(color.FgGreen).Sprint(name), duration))
	}

	display := strings.Join(parts, " → ")
	if n := len(r.stages); n > 0 && r.stages[n-1].Message != "" {
		display += ": " + r.stages[n-1].Message
	}
	return display
}

// Ensure SpinnerProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
