package progress

import (
	"github.com/trebuchet-org/oneshot/internal/domain/config"
	"github.com/trebuchet-org/oneshot/internal/usecase"
)

// NewNopSink creates a progress sink that discards everything
func NewNopSink() usecase.ProgressSink {
	return usecase.NopProgress{}
}

// NewSink picks the spinner for interactive runs and discards progress otherwise
func NewSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive {
		return NewNopSink()
	}
	return NewSpinnerProgressReporter()
}
