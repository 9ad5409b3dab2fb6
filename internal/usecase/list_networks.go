package usecase

import (
	"context"
	"sort"
	"time"
)

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name       string
	RPCURL     string
	ChainID    uint64
	Configured uint64 // chain ID from configuration, 0 if unset
	Error      error
}

// Mismatch reports whether the endpoint serves a different chain than configured
func (s NetworkStatus) Mismatch() bool {
	return s.Error == nil && s.Configured != 0 && s.Configured != s.ChainID
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	lister NetworkLister
	prober ChainIDProber
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(lister NetworkLister, prober ChainIDProber) *ListNetworks {
	return &ListNetworks{
		lister: lister,
		prober: prober,
	}
}

// Run probes every known network once. Probe failures are recorded per
// network and never fail the listing.
func (uc *ListNetworks) Run(ctx context.Context) (*ListNetworksResult, error) {
	known := uc.lister.ListNetworks()

	networks := make([]NetworkStatus, 0, len(known))
	for _, network := range known {
		status := NetworkStatus{
			Name:       network.Name,
			RPCURL:     network.RPCURL,
			Configured: network.ChainID,
		}

		probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		status.ChainID, status.Error = uc.prober.ProbeChainID(probeCtx, network.RPCURL)
		cancel()

		networks = append(networks, status)
	}

	sort.Slice(networks, func(i, j int) bool {
		return networks[i].Name < networks[j].Name
	})

	return &ListNetworksResult{
		Networks: networks,
	}, nil
}
