package render

import (
	"io"

	"github.com/trebuchet-org/oneshot/internal/domain/config"
	"gopkg.in/yaml.v3"
)

// ConfigRenderer renders the resolved configuration as YAML
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// configView is RuntimeConfig with durations in their string form
type configView struct {
	ProjectRoot    string          `yaml:"project_root"`
	ConfigFile     string          `yaml:"config_file,omitempty"`
	Contract       string          `yaml:"contract"`
	Label          string          `yaml:"label"`
	ArtifactsDir   string          `yaml:"artifacts_dir"`
	Network        *config.Network `yaml:"network,omitempty"`
	PrivateKey     string          `yaml:"private_key,omitempty"`
	Timeout        string          `yaml:"timeout"`
	Confirmations  uint64          `yaml:"confirmations"`
	PollInterval   string          `yaml:"poll_interval"`
	Debug          bool            `yaml:"debug"`
	NonInteractive bool            `yaml:"non_interactive"`
	Confirm        bool            `yaml:"confirm"`
}

// Render writes cfg as YAML
func (r *ConfigRenderer) Render(cfg *config.RuntimeConfig) error {
	timeout := cfg.Timeout.String()
	if cfg.Timeout == 0 {
		timeout = "none"
	}

	view := configView{
		ProjectRoot:    cfg.ProjectRoot,
		ConfigFile:     cfg.ConfigFile,
		Contract:       cfg.Contract,
		Label:          cfg.Label,
		ArtifactsDir:   cfg.ArtifactsDir,
		Network:        cfg.Network,
		PrivateKey:     cfg.PrivateKey,
		Timeout:        timeout,
		Confirmations:  cfg.Confirmations,
		PollInterval:   cfg.PollInterval.String(),
		Debug:          cfg.Debug,
		NonInteractive: cfg.NonInteractive,
		Confirm:        cfg.Confirm,
	}

	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return err
	}
	return enc.Close()
}

var _ Renderer[*config.RuntimeConfig] = (*ConfigRenderer)(nil)
