package blockchain

import (
	"context"
	"fmt"

	"github.com/lmittmann/w3"
	"github.com/lmittmann/w3/module/eth"
	"github.com/trebuchet-org/oneshot/internal/usecase"
)

// Prober asks endpoints for their chain ID over a short-lived w3 client
type Prober struct{}

// NewProber creates a new chain ID prober
func NewProber() *Prober {
	return &Prober{}
}

// ProbeChainID dials rpcURL and returns the chain it serves
func (p *Prober) ProbeChainID(ctx context.Context, rpcURL string) (uint64, error) {
	client, err := w3.Dial(rpcURL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer client.Close()

	var chainID uint64
	if err := client.CallCtx(ctx, eth.ChainID().Returns(&chainID)); err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	return chainID, nil
}

var _ usecase.ChainIDProber = (*Prober)(nil)
