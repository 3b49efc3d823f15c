package main

import (
	"fintech-directory/internal/adapter/repository/gormrepo"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer a.close()

			if err := gormrepo.AutoMigrate(a.db); err != nil {
				return err
			}
			a.log.Info("schema migrated", zap.String("driver", a.cfg.DBDriver))
			return nil
		},
	}
}
