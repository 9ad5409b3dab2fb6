package usecase

import (
	"github.com/trebuchet-org/oneshot/internal/domain/config"
)

// ShowConfig returns the resolved configuration with secrets redacted
type ShowConfig struct {
	config *config.RuntimeConfig
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig) *ShowConfig {
	return &ShowConfig{config: cfg}
}

// Run returns a copy of the runtime configuration safe to print
func (uc *ShowConfig) Run() *config.RuntimeConfig {
	redacted := *uc.config
	if redacted.PrivateKey != "" {
		redacted.PrivateKey = "<redacted>"
	}
	if uc.config.Network != nil {
		network := *uc.config.Network
		redacted.Network = &network
	}
	return &redacted
}
