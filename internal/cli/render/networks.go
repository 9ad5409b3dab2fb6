package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/oneshot/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{
		out: out,
	}
}

// Render renders the list of networks as a table
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		_, err := fmt.Fprintln(r.out, "No networks configured")
		return err
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box.PaddingRight = "   "

	t.AppendHeader(table.Row{"NETWORK", "CHAIN ID", "RPC URL", "STATUS"})
	for _, network := range result.Networks {
		t.AppendRow(table.Row{network.Name, chainID(network), network.RPCURL, status(network)})
	}

	_, err := fmt.Fprintln(r.out, t.Render())
	return err
}

func chainID(network usecase.NetworkStatus) string {
	switch {
	case network.Error == nil:
		return fmt.Sprintf("%d", network.ChainID)
	case network.Configured != 0:
		return fmt.Sprintf("%d", network.Configured)
	default:
		return "-"
	}
}

func status(network usecase.NetworkStatus) string {
	switch {
	case network.Error != nil:
		return color.New(color.FgRed).Sprintf("❌ %v", network.Error)
	case network.Mismatch():
		return color.New(color.FgYellow).Sprintf("⚠️  configured for chain %d", network.Configured)
	default:
		return color.New(color.FgGreen).Sprint("✅ reachable")
	}
}

var _ Renderer[*usecase.ListNetworksResult] = (*NetworksRenderer)(nil)
