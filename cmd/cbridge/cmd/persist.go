package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/wework/cbridge/cbridge/tx/pg"
)

var (
	pgConnStr string
	svcName   string
	purge     bool
)

func init() {
	persistCmd.Flags().StringVar(&pgConnStr, "pg", "", "PostgreSQL connection string")
	persistCmd.Flags().StringVar(&svcName, "service", "cbridge", "service owning the mappings")
	persistCmd.Flags().BoolVar(&purge, "purge", false, "remove the stored mappings instead of saving")
	_ = persistCmd.MarkFlagRequired("pg")
	rootCmd.AddCommand(persistCmd)
}

var persistCmd = &cobra.Command{
	Use:   "persist <file>",
	Short: "Save the mappings of a configuration file to the PostgreSQL mapping store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := loadOptions(args[0])
		if err != nil {
			return err
		}

		provider, err := pg.NewTxProvider(pgConnStr)
		if err != nil {
			return err
		}
		defer provider.Dispose()

		store := pg.NewMappingStore(svcName, provider)
		store.SetLogger(l.opts.Log())
		if err := store.EnsureSchema(); err != nil {
			return err
		}
		if purge {
			return store.Purge()
		}

		tx, err := provider.New()
		if err != nil {
			return err
		}
		if err := store.Save(tx, pg.DefinitionsFromOptions(l.opts, l.endpoints, l.workers)); err != nil {
			if rbkErr := tx.Rollback(); rbkErr != nil {
				log.WithError(rbkErr).Error("failed rolling back transaction")
			}
			return err
		}
		return tx.Commit()
	},
}
