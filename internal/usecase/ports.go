package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/oneshot/internal/domain/config"
)

// Contract-deployment provider interfaces

// ContractFactory resolves named contract types into deployable blueprints
type ContractFactory interface {
	GetFactory(ctx context.Context, name string) (Blueprint, error)
}

// Blueprint is a deployable contract type
type Blueprint interface {
	Name() string
	// Deploy broadcasts a creation transaction. Once it returns without error
	// the transaction may be mined regardless of what the caller does next.
	Deploy(ctx context.Context, args ...any) (DeploymentHandle, error)
}

// DeploymentHandle tracks a single submitted deployment
type DeploymentHandle interface {
	TxHash() common.Hash
	// WaitForDeployment blocks until the provider considers the deployment
	// confirmed or ctx is done.
	WaitForDeployment(ctx context.Context) error
	GetAddress(ctx context.Context) (common.Address, error)
}

// NetworkLister enumerates the networks a project knows about
type NetworkLister interface {
	ListNetworks() []*config.Network
}

// ChainIDProber asks an endpoint which chain it serves
type ChainIDProber interface {
	ProbeChainID(ctx context.Context, rpcURL string) (uint64, error)
}

// Confirmer asks the operator to approve a deployment before it is broadcast
type Confirmer interface {
	ConfirmDeployment(ctx context.Context, contract string, network *config.Network) (bool, error)
}

// Progress tracking interfaces

// ExecutionStage represents a step of the deployment pipeline
type ExecutionStage string

const (
	StageResolving            ExecutionStage = "resolving"
	StageSubmitting           ExecutionStage = "submitting"
	StageAwaitingConfirmation ExecutionStage = "awaiting confirmation"
	StageReporting            ExecutionStage = "reporting"
	StageDone                 ExecutionStage = "done"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   ExecutionStage
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
