package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a mapping configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := loadOptions(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d outbound, %d inbound, %d endpoints, %d workers\n",
			len(l.opts.OutboundMappings()), len(l.opts.InboundMappings()), l.endpoints.Len(), l.workers.Len())
		return nil
	},
}
