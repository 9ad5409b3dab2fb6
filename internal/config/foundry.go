package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/oneshot/internal/domain/config"
)

// Env is the process environment overlaid on .env files. Process variables
// win; the process environment itself is never modified.
type Env struct {
	files map[string]string
}

// LoadEnv reads .env and .env.local from the project root
func LoadEnv(projectRoot string) *Env {
	env := &Env{files: make(map[string]string)}

	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		values, err := godotenv.Read(envFile)
		if err != nil {
			// Log warning but don't fail
			fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			continue
		}
		// Later files override earlier ones
		for k, v := range values {
			env.files[k] = v
		}
	}

	return env
}

// Lookup returns the value of key from the process or the .env files
func (e *Env) Lookup(key string) (string, bool) {
	if v, ok := os.LookupEnv(key); ok {
		return v, true
	}
	if e == nil {
		return "", false
	}
	v, ok := e.files[key]
	return v, ok
}

// Get returns the value of key or the empty string
func (e *Env) Get(key string) string {
	v, _ := e.Lookup(key)
	return v
}

// Expand replaces ${VAR} and $VAR references
func (e *Env) Expand(s string) string {
	return os.Expand(s, e.Get)
}

// loadFoundryConfig parses foundry.toml if the project has one. RPC endpoints
// are returned with environment references expanded.
func loadFoundryConfig(projectRoot string, env *Env) (*config.FoundryConfig, error) {
	foundryPath := filepath.Join(projectRoot, "foundry.toml")
	if _, err := os.Stat(foundryPath); os.IsNotExist(err) {
		return nil, nil
	}

	var cfg config.FoundryConfig
	if _, err := toml.DecodeFile(foundryPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	cfg.RawRpcEndpoints = make(map[string]string, len(cfg.RpcEndpoints))
	for name, url := range cfg.RpcEndpoints {
		cfg.RawRpcEndpoints[name] = url
		cfg.RpcEndpoints[name] = env.Expand(url)
	}

	return &cfg, nil
}
