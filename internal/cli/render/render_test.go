package render

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/oneshot/internal/domain"
	"github.com/trebuchet-org/oneshot/internal/domain/config"
	"github.com/trebuchet-org/oneshot/internal/usecase"
)

func init() {
	color.NoColor = true
}

func TestDeployRenderer(t *testing.T) {
	var buf bytes.Buffer
	result := &domain.DeployResult{
		Contract: "ExceptionExample",
		Address:  common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
		TxHash:   common.HexToHash("0x01"),
		Network:  "localhost",
		ChainID:  31337,
	}

	require.NoError(t, NewDeployRenderer(&buf, "ExceptionExample deployed to").Render(result))
	assert.Equal(t, "ExceptionExample deployed to: 0x5FbDB2315678afecb367f032d93F642f64180aa3\n", buf.String())

	assert.Equal(t,
		"ExceptionExample deployed on localhost (chain 31337) in tx 0x0000000000000000000000000000000000000000000000000000000000000001",
		Summary(result))
}

func TestNetworksRenderer(t *testing.T) {
	var buf bytes.Buffer
	result := &usecase.ListNetworksResult{Networks: []usecase.NetworkStatus{
		{Name: "localhost", RPCURL: "http://127.0.0.1:8545", ChainID: 31337, Configured: 31337},
		{Name: "mislabelled", RPCURL: "https://rpc.example", ChainID: 1, Configured: 10},
		{Name: "offline", RPCURL: "https://offline.example", Error: errors.New("connection refused")},
	}}

	require.NoError(t, NewNetworksRenderer(&buf).Render(result))
	out := buf.String()

	assert.Contains(t, out, "NETWORK")
	assert.Contains(t, out, "✅ reachable")
	assert.Contains(t, out, "⚠️  configured for chain 10")
	assert.Contains(t, out, "❌ connection refused")
}

func TestNetworksRenderer_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewNetworksRenderer(&buf).Render(&usecase.ListNetworksResult{}))
	assert.Equal(t, "No networks configured\n", buf.String())
}

func TestConfigRenderer(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.RuntimeConfig{
		ProjectRoot:   "/work",
		Contract:      "ExceptionExample",
		Label:         "ExceptionExample deployed to",
		ArtifactsDir:  "/work/artifacts",
		Network:       &config.Network{Name: "localhost", RPCURL: "http://127.0.0.1:8545", ChainID: 31337},
		Timeout:       5 * time.Minute,
		Confirmations: 1,
		PollInterval:  2 * time.Second,
	}

	require.NoError(t, NewConfigRenderer(&buf).Render(cfg))
	out := buf.String()

	assert.Contains(t, out, "timeout: 5m0s\n")
	assert.Contains(t, out, "poll_interval: 2s\n")
	assert.Contains(t, out, "network:\n  name: localhost\n  rpc_url: http://127.0.0.1:8545\n  chain_id: 31337\n")
	assert.NotContains(t, out, "private_key")
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "❌ Submission failed for Foo: nonce too low", FormatError("submission failed for Foo: nonce too low"))
}

func TestFormatSuccess(t *testing.T) {
	result := &domain.DeployResult{Contract: "ExceptionExample", Network: "localhost", ChainID: 31337}
	assert.Equal(t, "✅ ExceptionExample deployed on localhost (chain 31337) in tx "+result.TxHash.Hex(), FormatSuccess(Summary(result)))
}
