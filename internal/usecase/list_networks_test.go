package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/oneshot/internal/domain/config"
)

type staticLister []*config.Network

func (l staticLister) ListNetworks() []*config.Network { return l }

type mockProber struct {
	probeFunc func(ctx context.Context, rpcURL string) (uint64, error)
}

func (m *mockProber) ProbeChainID(ctx context.Context, rpcURL string) (uint64, error) {
	return m.probeFunc(ctx, rpcURL)
}

func TestListNetworks(t *testing.T) {
	lister := staticLister{
		{Name: "sepolia", RPCURL: "https://sepolia.example", ChainID: 11155111},
		{Name: "localhost", RPCURL: "http://127.0.0.1:8545"},
		{Name: "mislabelled", RPCURL: "https://mainnet.example", ChainID: 10},
	}
	prober := &mockProber{
		probeFunc: func(ctx context.Context, rpcURL string) (uint64, error) {
			switch rpcURL {
			case "https://sepolia.example":
				return 11155111, nil
			case "https://mainnet.example":
				return 1, nil
			default:
				return 0, errors.New("connection refused")
			}
		},
	}

	result, err := NewListNetworks(lister, prober).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Networks, 3)

	// Sorted by name
	assert.Equal(t, "localhost", result.Networks[0].Name)
	assert.Equal(t, "mislabelled", result.Networks[1].Name)
	assert.Equal(t, "sepolia", result.Networks[2].Name)

	assert.EqualError(t, result.Networks[0].Error, "connection refused")
	assert.False(t, result.Networks[0].Mismatch())

	assert.True(t, result.Networks[1].Mismatch())

	assert.NoError(t, result.Networks[2].Error)
	assert.Equal(t, uint64(11155111), result.Networks[2].ChainID)
	assert.False(t, result.Networks[2].Mismatch())
}

func TestShowConfig_RedactsSigner(t *testing.T) {
	cfg := &config.RuntimeConfig{
		Contract:   "ExceptionExample",
		PrivateKey: "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
		Network:    &config.Network{Name: "anvil", RPCURL: "http://127.0.0.1:8545"},
	}

	shown := NewShowConfig(cfg).Run()

	assert.Equal(t, "<redacted>", shown.PrivateKey)
	assert.Equal(t, "ExceptionExample", shown.Contract)
	assert.Equal(t, "anvil", shown.Network.Name)

	// The live configuration is untouched
	assert.NotEqual(t, "<redacted>", cfg.PrivateKey)
	shown.Network.Name = "changed"
	assert.Equal(t, "anvil", cfg.Network.Name)
}
