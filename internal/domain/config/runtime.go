package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string `yaml:"project_root"`

	// What to deploy
	Contract     string `yaml:"contract"`      // Contract name or "path:Name"
	Label        string `yaml:"label"`         // Prefix of the stdout line
	ArtifactsDir string `yaml:"artifacts_dir"` // Compiled artifact directory

	// Where and as whom
	Network    *Network `yaml:"network,omitempty"` // nil if no endpoint resolved
	PrivateKey string   `yaml:"private_key"`       //nolint:gosec // redacted before display

	// Execution settings
	Timeout        time.Duration `yaml:"timeout"` // 0 means unbounded
	Confirmations  uint64        `yaml:"confirmations"`
	PollInterval   time.Duration `yaml:"poll_interval"`
	Debug          bool          `yaml:"debug"`
	NonInteractive bool          `yaml:"non_interactive"`
	Confirm        bool          `yaml:"confirm"`

	// Config source tracking
	ConfigFile string `yaml:"config_file,omitempty"`

	// Resolved configurations
	FoundryConfig *FoundryConfig `yaml:"-"`
}

// Network represents network configuration
type Network struct {
	Name    string `yaml:"name" json:"name" mapstructure:"name"`
	RPCURL  string `yaml:"rpc_url" json:"rpcUrl" mapstructure:"rpc_url"`
	ChainID uint64 `yaml:"chain_id,omitempty" json:"chainId,omitempty" mapstructure:"chain_id"` // 0 means take whatever the endpoint reports
}

// IsLocal reports whether the network points at a development node
func (n *Network) IsLocal() bool {
	if n == nil {
		return false
	}
	switch n.ChainID {
	case 31337, 1337:
		return true
	}
	switch n.Name {
	case "localhost", "hardhat", "anvil":
		return true
	}
	return false
}
