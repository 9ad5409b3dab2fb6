package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/oneshot/internal/domain"
	"github.com/trebuchet-org/oneshot/internal/domain/config"
)

// DeployContract deploys one instance of the configured contract and reports
// its address. It never retries: each provider method is called at most once.
type DeployContract struct {
	config    *config.RuntimeConfig
	factory   ContractFactory
	confirmer Confirmer
	progress  ProgressSink
	log       *slog.Logger
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	cfg *config.RuntimeConfig,
	factory ContractFactory,
	confirmer Confirmer,
	progress ProgressSink,
	log *slog.Logger,
) *DeployContract {
	return &DeployContract{
		config:    cfg,
		factory:   factory,
		confirmer: confirmer,
		progress:  progress,
		log:       log,
	}
}

// Run executes resolve, submit, confirm and address read-back in order.
// Any failure is returned as a *domain.DeployError and stops the pipeline.
func (uc *DeployContract) Run(ctx context.Context) (*domain.DeployResult, error) {
	name := uc.config.Contract
	log := uc.log.With("contract", name)

	// Stage 1: Resolve blueprint
	uc.stage(ctx, StageResolving, fmt.Sprintf("Resolving %s", name))
	blueprint, err := uc.factory.GetFactory(ctx, name)
	if err != nil {
		return nil, uc.fail(ctx, domain.StageBlueprintResolution, err)
	}
	log.Debug("blueprint resolved", "name", blueprint.Name())

	if uc.config.Confirm && uc.confirmer != nil {
		ok, err := uc.confirmer.ConfirmDeployment(ctx, blueprint.Name(), uc.config.Network)
		if err != nil {
			return nil, uc.fail(ctx, domain.StageSubmission, err)
		}
		if !ok {
			return nil, uc.fail(ctx, domain.StageSubmission, domain.ErrDeploymentDeclined)
		}
	}

	// Stage 2: Submit the creation transaction, no constructor arguments
	uc.stage(ctx, StageSubmitting, fmt.Sprintf("Deploying %s", blueprint.Name()))
	handle, err := blueprint.Deploy(ctx)
	if err != nil {
		return nil, uc.fail(ctx, domain.StageSubmission, err)
	}
	log.Info("deployment submitted", "tx", handle.TxHash().Hex())

	// Stage 3: Block until confirmed. From here on the transaction is out of
	// our hands; a failure only means we stopped watching it.
	uc.stage(ctx, StageAwaitingConfirmation, fmt.Sprintf("Waiting for %s", handle.TxHash().Hex()))
	if err := handle.WaitForDeployment(ctx); err != nil {
		return nil, uc.fail(ctx, domain.StageConfirmation, err)
	}

	// Stage 4: Read back the address
	uc.stage(ctx, StageReporting, "Reading deployed address")
	address, err := handle.GetAddress(ctx)
	if err != nil {
		return nil, uc.fail(ctx, domain.StageAddressRetrieval, err)
	}

	result := &domain.DeployResult{
		Contract: blueprint.Name(),
		Address:  address,
		TxHash:   handle.TxHash(),
	}
	if network := uc.config.Network; network != nil {
		result.Network = network.Name
		result.ChainID = network.ChainID
	}
	if chain, ok := handle.(interface{ ChainID() uint64 }); ok {
		result.ChainID = chain.ChainID()
	}

	log.Info("deployment confirmed", "address", address.Hex())
	uc.stage(ctx, StageDone, "")

	return result, nil
}

func (uc *DeployContract) stage(ctx context.Context, stage ExecutionStage, message string) {
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   stage,
		Message: message,
		Spinner: stage != StageDone,
	})
}

func (uc *DeployContract) fail(ctx context.Context, stage domain.Stage, err error) error {
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageDone})
	uc.log.Debug("deployment failed", "stage", string(stage), "error", err)
	return domain.NewDeployError(stage, uc.config.Contract, err)
}
