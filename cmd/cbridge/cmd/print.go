package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/wework/cbridge/cbridge"
	"github.com/wework/cbridge/cbridge/tx/pg"
)

func init() {
	rootCmd.AddCommand(printCmd)
}

var printCmd = &cobra.Command{
	Use:   "print <file>",
	Short: "Print the mappings of a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := loadOptions(args[0])
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DIRECTION\tADDRESS\tURI\tHEADERS\tBLOCKING\tWORKER\tPUBLISH")
		for _, def := range pg.DefinitionsFromOptions(l.opts, l.endpoints, l.workers) {
			worker := def.Worker
			if def.Direction == cbridge.Outbound && def.Blocking && worker == "" {
				worker = "(default)"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%t\t%s\t%t\n",
				def.Direction, def.Address, def.URI, def.HeadersCopy, def.Blocking, worker, def.Publish)
		}
		return w.Flush()
	},
}
