//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/oneshot/internal/adapters"
	"github.com/trebuchet-org/oneshot/internal/config"
	"github.com/trebuchet-org/oneshot/internal/logging"
	"github.com/trebuchet-org/oneshot/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, func(), error) {
	wire.Build(
		// Configuration
		config.Provider,

		// Logging
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeployContract,
		usecase.NewListNetworks,
		usecase.NewShowConfig,

		// App
		NewApp,
	)
	return nil, nil, nil
}
