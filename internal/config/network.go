package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/oneshot/internal/domain/config"
)

// localNetworks are always resolvable without configuration
var localNetworks = []config.Network{
	{Name: "localhost", RPCURL: "http://127.0.0.1:8545", ChainID: 31337},
	{Name: "hardhat", RPCURL: "http://127.0.0.1:8545", ChainID: 31337},
	{Name: "anvil", RPCURL: "http://127.0.0.1:8545", ChainID: 31337},
}

// NetworkResolver resolves network names to endpoint configurations
type NetworkResolver struct {
	networks map[string]*config.Network
	envVars  map[string]string // network -> variable its endpoint references
}

// NewNetworkResolver builds a resolver from foundry.toml endpoints and the
// networks section of the project config. Project config wins on name clashes.
func NewNetworkResolver(foundryConfig *config.FoundryConfig, configured map[string]config.Network) *NetworkResolver {
	r := &NetworkResolver{
		networks: make(map[string]*config.Network),
		envVars:  make(map[string]string),
	}

	for _, network := range localNetworks {
		r.add(network)
	}

	if foundryConfig != nil {
		for name, url := range foundryConfig.RpcEndpoints {
			r.add(config.Network{Name: name, RPCURL: url})
		}
		for name, raw := range foundryConfig.RawRpcEndpoints {
			if envVar, ok := DetectEnvVar(raw); ok {
				r.envVars[strings.ToLower(name)] = envVar
			}
		}
	}

	for name, network := range configured {
		if network.Name == "" {
			network.Name = name
		}
		r.add(network)
	}

	return r
}

func (r *NetworkResolver) add(network config.Network) {
	r.networks[strings.ToLower(network.Name)] = &network
}

// Resolve resolves a network by name, RPC URL or chain ID
func (r *NetworkResolver) Resolve(input string) (*config.Network, error) {
	if input == "" {
		return nil, fmt.Errorf("network not specified")
	}

	if network, ok := r.networks[strings.ToLower(input)]; ok {
		if network.RPCURL == "" {
			if envVar, ok := r.envVars[strings.ToLower(input)]; ok {
				return nil, fmt.Errorf("network '%s' has an empty RPC endpoint (set %s)", network.Name, envVar)
			}
			return nil, fmt.Errorf("network '%s' has an empty RPC endpoint (unset environment variable?)", network.Name)
		}
		resolved := *network
		return &resolved, nil
	}

	if isRPCURL(input) {
		return &config.Network{Name: "custom", RPCURL: input}, nil
	}

	if chainID, err := strconv.ParseUint(input, 10, 64); err == nil {
		matches := lo.Filter(r.ListNetworks(), func(n *config.Network, _ int) bool {
			return n.ChainID == chainID && n.RPCURL != ""
		})
		if len(matches) > 0 {
			resolved := *matches[0]
			return &resolved, nil
		}
		return nil, fmt.Errorf("no network configured for chain ID %d", chainID)
	}

	return nil, fmt.Errorf("unknown network '%s' (known: %s)", input, strings.Join(r.Names(), ", "))
}

// ListNetworks returns all known networks sorted by name
func (r *NetworkResolver) ListNetworks() []*config.Network {
	networks := lo.Values(r.networks)
	sort.Slice(networks, func(i, j int) bool {
		return strings.ToLower(networks[i].Name) < strings.ToLower(networks[j].Name)
	})
	return networks
}

// Names returns the sorted names of all known networks
func (r *NetworkResolver) Names() []string {
	return lo.Map(r.ListNetworks(), func(n *config.Network, _ int) string {
		return n.Name
	})
}

func isRPCURL(s string) bool {
	for _, scheme := range []string{"http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(s, scheme) {
			return true
		}
	}
	// IPC endpoints
	return strings.HasSuffix(s, ".ipc")
}
