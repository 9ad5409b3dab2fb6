package adapters

import (
	"log/slog"

	"github.com/google/wire"
	"github.com/trebuchet-org/oneshot/internal/adapters/artifacts"
	"github.com/trebuchet-org/oneshot/internal/adapters/blockchain"
	"github.com/trebuchet-org/oneshot/internal/adapters/interactive"
	"github.com/trebuchet-org/oneshot/internal/adapters/progress"
	"github.com/trebuchet-org/oneshot/internal/config"
	domainconfig "github.com/trebuchet-org/oneshot/internal/domain/config"
	"github.com/trebuchet-org/oneshot/internal/usecase"
)

// ArtifactSet provides the compiled artifact store
var ArtifactSet = wire.NewSet(
	artifacts.NewStore,
	wire.Bind(new(blockchain.ArtifactFinder), new(*artifacts.Store)),
)

// ProvideFactory provides the contract factory. The cleanup closes the RPC
// connection opened by a deployment.
func ProvideFactory(cfg *domainconfig.RuntimeConfig, store blockchain.ArtifactFinder, log *slog.Logger) (*blockchain.Factory, func()) {
	factory := blockchain.NewFactory(cfg, store, log)
	return factory, factory.Close
}

// BlockchainSet provides go-ethereum backed implementations
var BlockchainSet = wire.NewSet(
	ProvideFactory,
	wire.Bind(new(usecase.ContractFactory), new(*blockchain.Factory)),

	blockchain.NewProber,
	wire.Bind(new(usecase.ChainIDProber), new(*blockchain.Prober)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewConfirmerAdapter,
	wire.Bind(new(usecase.Confirmer), new(*interactive.ConfirmerAdapter)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	config.ProvideNetworkResolver,
	wire.Bind(new(usecase.NetworkLister), new(*config.NetworkResolver)),
)

// ProgressSet provides the progress sink
var ProgressSet = wire.NewSet(
	progress.NewSink,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ArtifactSet,
	BlockchainSet,
	InteractiveSet,
	ConfigSet,
	ProgressSet,
)
