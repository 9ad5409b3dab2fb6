package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/oneshot/internal/domain"
)

// DeployRenderer prints the deployed address as a single "<label>: <address>"
// line. Nothing else is ever written to its output.
type DeployRenderer struct {
	out   io.Writer
	label string
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer, label string) *DeployRenderer {
	return &DeployRenderer{
		out:   out,
		label: label,
	}
}

// Render writes the result line
func (r *DeployRenderer) Render(result *domain.DeployResult) error {
	_, err := fmt.Fprintf(r.out, "%s: %s\n", r.label, result.Address.Hex())
	return err
}

// Summary describes where and how the contract was deployed
func Summary(result *domain.DeployResult) string {
	network := result.Network
	if network == "" {
		network = "network"
	}
	return fmt.Sprintf("%s deployed on %s (chain %d) in tx %s", result.Contract, network, result.ChainID, result.TxHash.Hex())
}

var _ Renderer[*domain.DeployResult] = (*DeployRenderer)(nil)
