package cmd

import (
	"fmt"

	"route-cost-service/internal/adapters/network"

	"github.com/spf13/cobra"
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Print the loaded network as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		net, err := loadNetwork(cmd)
		if err != nil {
			return err
		}

		out, err := network.EncodeNetworkFile(net)
		if err != nil {
			return fmt.Errorf("encode network: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "# fingerprint %016x\n", net.Fingerprint())
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}
