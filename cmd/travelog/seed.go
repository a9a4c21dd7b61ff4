package main

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/deppfellow/travelog/internal/database"
	"github.com/deppfellow/travelog/internal/lib/utils"
	"github.com/deppfellow/travelog/internal/repository"
	"github.com/deppfellow/travelog/internal/server"
	"github.com/deppfellow/travelog/internal/service"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var (
		dryRun bool
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace every journal row with the demo data set",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := service.NewSeedPlan(gofakeit.New(seed))

			if dryRun {
				return utils.PrintJSON(cmd.OutOrStdout(), plan)
			}

			rt, err := loadDeps()
			if err != nil {
				return err
			}
			defer rt.close()

			db, err := database.New(rt.cfg, &rt.logger, rt.loggerService)
			if err != nil {
				return err
			}
			defer db.Close()

			// Seeding needs neither Redis nor the job worker; without Job
			// no welcome emails are queued for the fake users.
			srv := &server.Server{
				Config:        rt.cfg,
				Logger:        &rt.logger,
				LoggerService: rt.loggerService,
				DB:            db,
			}

			services, err := service.NewService(srv, repository.NewRepositories(srv))
			if err != nil {
				return fmt.Errorf("could not create services: %w", err)
			}

			return services.Seed.Apply(cmd.Context(), plan)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the data set instead of writing it")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "faker seed; 0 picks a random one")

	return cmd
}
