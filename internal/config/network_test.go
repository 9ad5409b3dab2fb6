package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/oneshot/internal/domain/config"
)

func TestNetworkResolver(t *testing.T) {
	foundry := &config.FoundryConfig{
		RpcEndpoints: map[string]string{
			"sepolia": "https://sepolia.example",
			"unset":   "",
			"blank":   "",
		},
		RawRpcEndpoints: map[string]string{
			"sepolia": "https://sepolia.example",
			"unset":   "${UNSET_RPC_URL}",
			"blank":   "",
		},
	}
	configured := map[string]config.Network{
		"Base":    {RPCURL: "https://base.example", ChainID: 8453},
		"sepolia": {RPCURL: "https://override.example", ChainID: 11155111},
	}
	resolver := NewNetworkResolver(foundry, configured)

	tests := []struct {
		name     string
		input    string
		expected *config.Network
		err      string
	}{
		{
			name:     "built-in local network",
			input:    "localhost",
			expected: &config.Network{Name: "localhost", RPCURL: "http://127.0.0.1:8545", ChainID: 31337},
		},
		{
			name:     "project config wins over foundry.toml",
			input:    "sepolia",
			expected: &config.Network{Name: "sepolia", RPCURL: "https://override.example", ChainID: 11155111},
		},
		{
			name:     "case insensitive",
			input:    "BASE",
			expected: &config.Network{Name: "Base", RPCURL: "https://base.example", ChainID: 8453},
		},
		{
			name:     "raw url",
			input:    "wss://node.example/ws",
			expected: &config.Network{Name: "custom", RPCURL: "wss://node.example/ws"},
		},
		{
			name:     "chain id",
			input:    "8453",
			expected: &config.Network{Name: "Base", RPCURL: "https://base.example", ChainID: 8453},
		},
		{
			name:  "unknown chain id",
			input: "999",
			err:   "no network configured for chain ID 999",
		},
		{
			name:  "endpoint from unset variable",
			input: "unset",
			err:   "network 'unset' has an empty RPC endpoint (set UNSET_RPC_URL)",
		},
		{
			name:  "empty endpoint",
			input: "blank",
			err:   "empty RPC endpoint (unset environment variable?)",
		},
		{
			name:  "unknown name",
			input: "mainnet",
			err:   "unknown network 'mainnet' (known: anvil, Base, blank, hardhat, localhost, sepolia, unset)",
		},
		{
			name:  "empty input",
			input: "",
			err:   "network not specified",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			network, err := resolver.Resolve(tt.input)
			if tt.err != "" {
				assert.ErrorContains(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, network)
		})
	}
}

func TestNetworkResolver_ResolveReturnsCopy(t *testing.T) {
	resolver := NewNetworkResolver(nil, nil)

	network, err := resolver.Resolve("anvil")
	require.NoError(t, err)
	network.ChainID = 1

	again, err := resolver.Resolve("anvil")
	require.NoError(t, err)
	assert.Equal(t, uint64(31337), again.ChainID)
}

func TestIsRPCURL(t *testing.T) {
	assert.True(t, isRPCURL("http://localhost:8545"))
	assert.True(t, isRPCURL("https://rpc.example"))
	assert.True(t, isRPCURL("/tmp/geth.ipc"))
	assert.False(t, isRPCURL("sepolia"))
}
