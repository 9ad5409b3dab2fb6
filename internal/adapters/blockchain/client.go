package blockchain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/oneshot/internal/domain"
	"github.com/trebuchet-org/oneshot/internal/domain/config"
)

// Backend is everything the deployer needs from an endpoint
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// Dialer opens a Backend for an RPC URL
type Dialer func(ctx context.Context, rpcURL string) (Backend, error)

// DialEthClient dials a JSON-RPC endpoint with ethclient
func DialEthClient(ctx context.Context, rpcURL string) (Backend, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// connection is an endpoint verified against the configured network plus a
// transactor for the configured signer
type connection struct {
	backend Backend
	chainID *big.Int
	signer  common.Address
	opts    *bind.TransactOpts
}

// connect dials the configured network and verifies its chain ID
func connect(ctx context.Context, dial Dialer, network *config.Network, privateKey string) (*connection, error) {
	if network == nil || network.RPCURL == "" {
		return nil, domain.ErrMissingEndpoint
	}

	key, err := ParsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	backend, err := dial(ctx, network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	// Verify chain ID matches
	chainID, err := backend.ChainID(ctx)
	if err != nil {
		closeBackend(backend)
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if network.ChainID != 0 && chainID.Uint64() != network.ChainID {
		closeBackend(backend)
		return nil, fmt.Errorf("%w: expected %d, got %d", domain.ErrChainIDMismatch, network.ChainID, chainID.Uint64())
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		closeBackend(backend)
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	return &connection{backend: backend, chainID: chainID, signer: SignerAddress(key), opts: opts}, nil
}

func closeBackend(backend Backend) {
	if c, ok := backend.(interface{ Close() }); ok {
		c.Close()
	}
}
