package config

// FoundryConfig represents the parts of foundry.toml the deployer reads
type FoundryConfig struct {
	Profile      map[string]ProfileConfig `toml:"profile"`
	RpcEndpoints map[string]string        `toml:"rpc_endpoints"`

	// RawRpcEndpoints holds the endpoints before environment expansion
	RawRpcEndpoints map[string]string `toml:"-"`
}

// ProfileConfig represents a profile's foundry configuration
type ProfileConfig struct {
	SrcPath string `toml:"src,omitempty"`
	OutPath string `toml:"out,omitempty"`
}

// OutDir returns the artifact directory of the default profile
func (c *FoundryConfig) OutDir() string {
	if c == nil {
		return ""
	}
	if profile, ok := c.Profile["default"]; ok {
		return profile.OutPath
	}
	return ""
}
