package interactive

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/trebuchet-org/oneshot/internal/domain/config"
	"github.com/trebuchet-org/oneshot/internal/usecase"
)

// ConfirmerAdapter asks for a yes/no before broadcasting
type ConfirmerAdapter struct {
	config *config.RuntimeConfig
	run    func(prompt *promptui.Prompt) (string, error)
}

// NewConfirmerAdapter creates a new confirmer adapter
func NewConfirmerAdapter(cfg *config.RuntimeConfig) *ConfirmerAdapter {
	return &ConfirmerAdapter{
		config: cfg,
		run:    func(prompt *promptui.Prompt) (string, error) { return prompt.Run() },
	}
}

// ConfirmDeployment prompts on stderr. Answering no is not an error.
func (c *ConfirmerAdapter) ConfirmDeployment(ctx context.Context, contract string, network *config.Network) (bool, error) {
	// In non-interactive mode, we can't prompt
	if c.config.NonInteractive {
		return false, fmt.Errorf("confirmation not available in non-interactive mode")
	}

	prompt := &promptui.Prompt{
		Label:     label(contract, network),
		IsConfirm: true,
		Stdout:    os.Stderr,
	}

	_, err := c.run(prompt)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	default:
		return false, fmt.Errorf("confirmation cancelled: %w", err)
	}
}

func label(contract string, network *config.Network) string {
	target := "an unconfigured network"
	if network != nil {
		target = color.New(color.FgCyan).Sprint(network.Name)
		if network.ChainID != 0 {
			target += fmt.Sprintf(" (chain %d)", network.ChainID)
		}
	}
	return fmt.Sprintf("Deploy %s to %s", color.New(color.Bold).Sprint(contract), target)
}

// Ensure the adapter implements the interface
var _ usecase.Confirmer = (*ConfirmerAdapter)(nil)
