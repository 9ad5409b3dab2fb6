package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/oneshot/internal/domain/config"
)

const (
	// EnvPrefix prefixes every environment variable read through viper
	EnvPrefix = "ONESHOT"

	// DefaultContract is deployed when no contract is configured
	DefaultContract = "ExceptionExample"
)

// ErrNoProjectRoot is returned when no project marker is found above the working directory
var ErrNoProjectRoot = errors.New("no project root found (oneshot.yaml, hardhat.config.* or foundry.toml)")

// projectMarkers identify a project root, in order of preference
var projectMarkers = []string{
	"oneshot.yaml",
	"oneshot.yml",
	"oneshot.toml",
	"oneshot.json",
	"hardhat.config.js",
	"hardhat.config.ts",
	"hardhat.config.cjs",
	"foundry.toml",
}

// FindProjectRoot walks up from dir to the first directory holding a project marker
func FindProjectRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoProjectRoot
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance. Flags of cmd are bound
// under their underscored names, so --rpc-url, ONESHOT_RPC_URL and rpc_url in
// oneshot.yaml all set the same key.
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("oneshot")
	v.AddConfigPath(projectRoot)

	// Set up environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("contract", DefaultContract)
	v.SetDefault("timeout", "5m")
	v.SetDefault("confirmations", 1)
	v.SetDefault("poll_interval", "2s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("confirm", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		if projectRoot, err = os.Getwd(); err != nil {
			return nil, err
		}
	}

	env := LoadEnv(projectRoot)

	foundryConfig, err := loadFoundryConfig(projectRoot, env)
	if err != nil {
		return nil, fmt.Errorf("failed to load foundry config: %w", err)
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		Contract:       v.GetString("contract"),
		Label:          v.GetString("label"),
		PrivateKey:     v.GetString("private_key"),
		Timeout:        v.GetDuration("timeout"),
		Confirmations:  v.GetUint64("confirmations"),
		PollInterval:   v.GetDuration("poll_interval"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Confirm:        v.GetBool("confirm"),
		ConfigFile:     v.ConfigFileUsed(),
		FoundryConfig:  foundryConfig,
	}

	if cfg.Contract == "" {
		cfg.Contract = DefaultContract
	}
	if cfg.Label == "" {
		cfg.Label = fmt.Sprintf("%s deployed to", ContractName(cfg.Contract))
	}
	if cfg.PrivateKey == "" {
		cfg.PrivateKey = env.Get("PRIVATE_KEY")
	}
	if cfg.Confirmations == 0 {
		cfg.Confirmations = 1
	}

	cfg.ArtifactsDir = resolveArtifactsDir(projectRoot, v.GetString("artifacts"), foundryConfig)

	configured, err := configuredNetworks(v, env)
	if err != nil {
		return nil, err
	}

	network, err := resolveNetwork(v, env, NewNetworkResolver(foundryConfig, configured))
	if err != nil {
		return nil, err
	}
	cfg.Network = network

	return cfg, nil
}

// ProvideNetworkResolver creates a NetworkResolver for Wire dependency injection
func ProvideNetworkResolver(v *viper.Viper, cfg *config.RuntimeConfig) (*NetworkResolver, error) {
	configured, err := configuredNetworks(v, LoadEnv(cfg.ProjectRoot))
	if err != nil {
		return nil, err
	}
	return NewNetworkResolver(cfg.FoundryConfig, configured), nil
}

// configuredNetworks reads the networks section of the project config
func configuredNetworks(v *viper.Viper, env *Env) (map[string]config.Network, error) {
	var configured map[string]config.Network
	if err := v.UnmarshalKey("networks", &configured); err != nil {
		return nil, fmt.Errorf("failed to parse networks: %w", err)
	}
	for name, network := range configured {
		network.RPCURL = env.Expand(network.RPCURL)
		configured[name] = network
	}
	return configured, nil
}

// resolveNetwork picks the deployment endpoint: an explicit --rpc-url, then
// --network, then RPC_URL from the environment. No endpoint is not an error
// here; the deployer reports it when it needs to connect.
func resolveNetwork(v *viper.Viper, env *Env, resolver *NetworkResolver) (*config.Network, error) {
	var network *config.Network

	networkName := v.GetString("network")
	rpcURL := v.GetString("rpc_url")

	switch {
	case rpcURL != "":
		name := networkName
		if name == "" {
			name = "custom"
		}
		network = &config.Network{Name: name, RPCURL: rpcURL}
	case networkName != "":
		resolved, err := resolver.Resolve(networkName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve network %s: %w", networkName, err)
		}
		network = resolved
	case env.Get("RPC_URL") != "":
		network = &config.Network{Name: "custom", RPCURL: env.Get("RPC_URL")}
	default:
		return nil, nil
	}

	if chainID := v.GetUint64("chain_id"); chainID != 0 {
		network.ChainID = chainID
	}

	return network, nil
}

// resolveArtifactsDir returns an absolute artifact directory. Without an
// explicit setting Hardhat's artifacts/ is preferred over Foundry's out dir.
func resolveArtifactsDir(projectRoot, configured string, foundryConfig *config.FoundryConfig) string {
	abs := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(projectRoot, p)
	}

	if configured != "" {
		return abs(configured)
	}

	hardhat := filepath.Join(projectRoot, "artifacts")
	if info, err := os.Stat(hardhat); err == nil && info.IsDir() {
		return hardhat
	}

	if out := foundryConfig.OutDir(); out != "" {
		return abs(out)
	}

	return filepath.Join(projectRoot, "out")
}

// ContractName strips an optional "path:" prefix
func ContractName(ref string) string {
	if idx := strings.LastIndex(ref, ":"); idx != -1 {
		return ref[idx+1:]
	}
	return ref
}
