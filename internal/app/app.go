package app

import (
	"github.com/trebuchet-org/oneshot/internal/domain/config"
	"github.com/trebuchet-org/oneshot/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Shared dependencies
	Progress usecase.ProgressSink

	// Use cases
	DeployContract *usecase.DeployContract
	ListNetworks   *usecase.ListNetworks
	ShowConfig     *usecase.ShowConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	progress usecase.ProgressSink,
	deployContract *usecase.DeployContract,
	listNetworks *usecase.ListNetworks,
	showConfig *usecase.ShowConfig,
) (*App, error) {
	return &App{
		Config:         cfg,
		Progress:       progress,
		DeployContract: deployContract,
		ListNetworks:   listNetworks,
		ShowConfig:     showConfig,
	}, nil
}
