package blockchain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/oneshot/internal/domain"
	"github.com/trebuchet-org/oneshot/internal/domain/config"
	"github.com/trebuchet-org/oneshot/internal/domain/models"
	"github.com/trebuchet-org/oneshot/internal/usecase"
)

// defaultPollInterval matches the poll_interval config default
const defaultPollInterval = 2 * time.Second

// ArtifactFinder resolves a contract reference to a compiled artifact
type ArtifactFinder interface {
	Find(ref string) (*models.Contract, error)
}

// Factory turns compiled artifacts into deployable blueprints. It connects
// to the network only when a blueprint is deployed.
type Factory struct {
	cfg       *config.RuntimeConfig
	artifacts ArtifactFinder
	dial      Dialer
	log       *slog.Logger

	mu   sync.Mutex
	conn *connection
}

// NewFactory creates a factory that dials the configured network with ethclient
func NewFactory(cfg *config.RuntimeConfig, artifacts ArtifactFinder, log *slog.Logger) *Factory {
	return NewFactoryWithDialer(cfg, artifacts, DialEthClient, log)
}

// NewFactoryWithDialer creates a factory with a custom endpoint dialer
func NewFactoryWithDialer(cfg *config.RuntimeConfig, artifacts ArtifactFinder, dial Dialer, log *slog.Logger) *Factory {
	return &Factory{
		cfg:       cfg,
		artifacts: artifacts,
		dial:      dial,
		log:       log,
	}
}

// GetFactory resolves name to a blueprint with parsed ABI and creation code
func (f *Factory) GetFactory(ctx context.Context, name string) (usecase.Blueprint, error) {
	contract, err := f.artifacts.Find(name)
	if err != nil {
		return nil, err
	}

	if contract.Artifact.Bytecode.IsEmpty() {
		return nil, fmt.Errorf("%s: %w", contract.FullName(), domain.ErrEmptyBytecode)
	}
	code, err := contract.Artifact.Bytecode.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", contract.FullName(), err)
	}

	parsed, err := abi.JSON(bytes.NewReader(contract.Artifact.ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI of %s: %w", contract.FullName(), err)
	}

	f.log.Debug("loaded artifact", "contract", contract.FullName(), "path", contract.ArtifactPath, "size", len(code))

	return &Blueprint{
		factory:  f,
		contract: contract,
		abi:      parsed,
		bytecode: code,
	}, nil
}

// Close releases the endpoint connection, if one was opened
func (f *Factory) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.conn != nil {
		closeBackend(f.conn.backend)
		f.conn = nil
	}
}

func (f *Factory) connection(ctx context.Context) (*connection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.conn != nil {
		return f.conn, nil
	}

	conn, err := connect(ctx, f.dial, f.cfg.Network, f.cfg.PrivateKey)
	if err != nil {
		return nil, err
	}
	f.log.Debug("connected", "rpc", f.cfg.Network.RPCURL, "chain_id", conn.chainID.Uint64(), "signer", conn.signer.Hex())

	f.conn = conn
	return conn, nil
}

// Blueprint is a compiled contract ready to deploy
type Blueprint struct {
	factory  *Factory
	contract *models.Contract
	abi      abi.ABI
	bytecode []byte
}

// Name returns the contract name
func (b *Blueprint) Name() string {
	return b.contract.Name
}

// Deploy signs and broadcasts the creation transaction
func (b *Blueprint) Deploy(ctx context.Context, args ...any) (usecase.DeploymentHandle, error) {
	conn, err := b.factory.connection(ctx)
	if err != nil {
		return nil, err
	}

	opts := *conn.opts
	opts.Context = ctx

	address, tx, _, err := bind.DeployContract(&opts, b.abi, b.bytecode, conn.backend, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to send deployment transaction: %w", err)
	}

	b.factory.log.Debug("deployment sent", "tx", tx.Hash().Hex(), "nonce", tx.Nonce(), "expected_address", address.Hex())

	return &Handle{
		backend:       conn.backend,
		tx:            tx,
		expected:      address,
		chainID:       conn.chainID.Uint64(),
		confirmations: b.factory.cfg.Confirmations,
		pollInterval:  b.factory.cfg.PollInterval,
	}, nil
}

// Handle tracks one broadcast deployment transaction
type Handle struct {
	backend       Backend
	tx            *types.Transaction
	expected      common.Address
	chainID       uint64
	confirmations uint64
	pollInterval  time.Duration

	receipt *types.Receipt
}

// TxHash returns the deployment transaction hash
func (h *Handle) TxHash() common.Hash {
	return h.tx.Hash()
}

// ChainID returns the chain the transaction was sent to
func (h *Handle) ChainID() uint64 {
	return h.chainID
}

// WaitForDeployment waits for the receipt, then for the configured number of
// confirmations
func (h *Handle) WaitForDeployment(ctx context.Context) error {
	receipt, err := bind.WaitMined(ctx, h.backend, h.tx)
	if err != nil {
		return err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("%w: tx %s in block %d", domain.ErrDeploymentReverted, h.tx.Hash().Hex(), receipt.BlockNumber.Uint64())
	}

	if h.confirmations > 1 {
		target := receipt.BlockNumber.Uint64() + h.confirmations - 1
		if err := h.waitForBlock(ctx, target); err != nil {
			return err
		}
	}

	h.receipt = receipt
	return nil
}

func (h *Handle) waitForBlock(ctx context.Context, target uint64) error {
	interval := h.pollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		head, err := h.backend.BlockNumber(ctx)
		if err != nil {
			return fmt.Errorf("failed to get block number: %w", err)
		}
		if head >= target {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// GetAddress returns the created contract address once it holds code
func (h *Handle) GetAddress(ctx context.Context) (common.Address, error) {
	if h.receipt == nil {
		return common.Address{}, domain.ErrNotConfirmed
	}

	address := h.receipt.ContractAddress
	if address == (common.Address{}) {
		return common.Address{}, fmt.Errorf("receipt for %s has no contract address", h.tx.Hash().Hex())
	}
	if address != h.expected {
		return common.Address{}, fmt.Errorf("receipt address %s differs from expected %s", address.Hex(), h.expected.Hex())
	}

	code, err := h.backend.CodeAt(ctx, address, nil)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to check code: %w", err)
	}
	if len(code) == 0 {
		return common.Address{}, fmt.Errorf("no contract code at %s after deployment", address.Hex())
	}

	return address, nil
}

// Ensure the adapter implements the interfaces
var (
	_ usecase.ContractFactory  = (*Factory)(nil)
	_ usecase.Blueprint        = (*Blueprint)(nil)
	_ usecase.DeploymentHandle = (*Handle)(nil)
)
