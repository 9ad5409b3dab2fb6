package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFiles creates a project directory populated with the given files
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		writeFile(t, dir, name, content)
	}
	return dir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// newFlagCmd mirrors the deploy flags of the root command
func newFlagCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("contract", "", "")
	cmd.Flags().String("label", "", "")
	cmd.Flags().StringP("network", "n", "", "")
	cmd.Flags().String("rpc-url", "", "")
	cmd.Flags().Uint64("chain-id", 0, "")
	cmd.Flags().String("private-key", "", "")
	cmd.Flags().String("artifacts", "", "")
	cmd.Flags().Duration("timeout", 5*time.Minute, "")
	cmd.Flags().Uint64("confirmations", 1, "")
	cmd.Flags().Bool("debug", false, "")
	return cmd
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PRIVATE_KEY", "RPC_URL", "ONESHOT_CONTRACT", "ONESHOT_NETWORK", "ONESHOT_RPC_URL", "ONESHOT_PRIVATE_KEY", "SEPOLIA_RPC_URL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestProvider_Defaults(t *testing.T) {
	clearEnv(t)
	root := writeFiles(t, map[string]string{
		"hardhat.config.js": "module.exports = {}",
	})
	writeFile(t, root, "artifacts/contracts/ExceptionExample.sol/ExceptionExample.json", `{}`)

	cmd := newFlagCmd()
	cfg, err := Provider(SetupViper(root, cmd))
	require.NoError(t, err)

	assert.Equal(t, root, cfg.ProjectRoot)
	assert.Equal(t, "ExceptionExample", cfg.Contract)
	assert.Equal(t, "ExceptionExample deployed to", cfg.Label)
	assert.Equal(t, filepath.Join(root, "artifacts"), cfg.ArtifactsDir)
	assert.Equal(t, 5*time.Minute, cfg.Timeout)
	assert.Equal(t, uint64(1), cfg.Confirmations)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	assert.Nil(t, cfg.Network, "no endpoint configured")
	assert.Empty(t, cfg.PrivateKey)
}

func TestProvider_Precedence(t *testing.T) {
	clearEnv(t)
	root := writeFiles(t, map[string]string{
		"oneshot.yaml": `
contract: FromFile
label: "file label"
networks:
  staging:
    rpc_url: https://staging.example
    chain_id: 424242
`,
	})

	t.Run("config file", func(t *testing.T) {
		cmd := newFlagCmd()
		require.NoError(t, cmd.Flags().Set("network", "staging"))

		cfg, err := Provider(SetupViper(root, cmd))
		require.NoError(t, err)

		assert.Equal(t, "FromFile", cfg.Contract)
		assert.Equal(t, "file label", cfg.Label)
		require.NotNil(t, cfg.Network)
		assert.Equal(t, "https://staging.example", cfg.Network.RPCURL)
		assert.Equal(t, uint64(424242), cfg.Network.ChainID)
		assert.Equal(t, filepath.Join(root, "oneshot.yaml"), cfg.ConfigFile)
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("ONESHOT_CONTRACT", "FromEnv")

		cfg, err := Provider(SetupViper(root, newFlagCmd()))
		require.NoError(t, err)
		assert.Equal(t, "FromEnv", cfg.Contract)
	})

	t.Run("flag overrides env", func(t *testing.T) {
		t.Setenv("ONESHOT_CONTRACT", "FromEnv")
		cmd := newFlagCmd()
		require.NoError(t, cmd.Flags().Set("contract", "contracts/Other.sol:FromFlag"))

		cfg, err := Provider(SetupViper(root, cmd))
		require.NoError(t, err)
		assert.Equal(t, "contracts/Other.sol:FromFlag", cfg.Contract)
		assert.Equal(t, "file label", cfg.Label)
	})
}

func TestProvider_DotEnvAndFoundry(t *testing.T) {
	clearEnv(t)
	root := writeFiles(t, map[string]string{
		"foundry.toml": `
[profile.default]
src = "src"
out = "build"

[rpc_endpoints]
sepolia = "${SEPOLIA_RPC_URL}"
`,
		".env": "SEPOLIA_RPC_URL=https://sepolia.example\nPRIVATE_KEY=0xabc\n",
	})

	cmd := newFlagCmd()
	require.NoError(t, cmd.Flags().Set("network", "sepolia"))
	require.NoError(t, cmd.Flags().Set("chain-id", "11155111"))

	cfg, err := Provider(SetupViper(root, cmd))
	require.NoError(t, err)

	require.NotNil(t, cfg.Network)
	assert.Equal(t, "sepolia", cfg.Network.Name)
	assert.Equal(t, "https://sepolia.example", cfg.Network.RPCURL)
	assert.Equal(t, uint64(11155111), cfg.Network.ChainID)
	assert.Equal(t, "0xabc", cfg.PrivateKey)
	assert.Equal(t, filepath.Join(root, "build"), cfg.ArtifactsDir)

	// .env never leaks into the process environment
	_, set := os.LookupEnv("PRIVATE_KEY")
	assert.False(t, set)
}

func TestProvider_RPCURL(t *testing.T) {
	clearEnv(t)
	root := writeFiles(t, map[string]string{"foundry.toml": ""})

	t.Run("flag", func(t *testing.T) {
		cmd := newFlagCmd()
		require.NoError(t, cmd.Flags().Set("rpc-url", "http://10.0.0.1:8545"))

		cfg, err := Provider(SetupViper(root, cmd))
		require.NoError(t, err)
		require.NotNil(t, cfg.Network)
		assert.Equal(t, "custom", cfg.Network.Name)
		assert.Equal(t, "http://10.0.0.1:8545", cfg.Network.RPCURL)
	})

	t.Run("RPC_URL fallback", func(t *testing.T) {
		t.Setenv("RPC_URL", "http://10.0.0.2:8545")

		cfg, err := Provider(SetupViper(root, newFlagCmd()))
		require.NoError(t, err)
		require.NotNil(t, cfg.Network)
		assert.Equal(t, "http://10.0.0.2:8545", cfg.Network.RPCURL)
	})

	t.Run("unknown network", func(t *testing.T) {
		cmd := newFlagCmd()
		require.NoError(t, cmd.Flags().Set("network", "nowhere"))

		_, err := Provider(SetupViper(root, cmd))
		assert.ErrorContains(t, err, "unknown network 'nowhere'")
	})
}

func TestFindProjectRoot(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"hardhat.config.ts":    "",
		"contracts/deep/x.sol": "",
	})

	found, err := FindProjectRoot(filepath.Join(root, "contracts", "deep"))
	require.NoError(t, err)
	assert.Equal(t, root, found)

	_, err = FindProjectRoot(t.TempDir())
	// A temp dir normally has no marker above it
	if err != nil {
		assert.ErrorIs(t, err, ErrNoProjectRoot)
	}
}

func TestContractName(t *testing.T) {
	assert.Equal(t, "ExceptionExample", ContractName("ExceptionExample"))
	assert.Equal(t, "ExceptionExample", ContractName("contracts/ExceptionExample.sol:ExceptionExample"))
}
