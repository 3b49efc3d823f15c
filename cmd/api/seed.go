package main

import (
	"fintech-directory/internal/adapter/repository/gormrepo"
	"fintech-directory/internal/seed"

	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the sample institutions, blog posts and subscribers",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer a.close()

			if migrate {
				if err := gormrepo.AutoMigrate(a.db); err != nil {
					return err
				}
			}
			_, err = seed.Run(cmd.Context(), seed.Stores{
				Institutions: gormrepo.NewInstitutionRepository(a.db),
				Posts:        gormrepo.NewBlogRepository(a.db),
				Subscribers:  gormrepo.NewNewsletterRepository(a.db),
			}, a.log)
			return err
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "run schema migration first")
	return cmd
}
