package main

import (
	"fmt"

	"github.com/deppfellow/travelog/internal/config"
	"github.com/deppfellow/travelog/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "travelog",
		Short:        "Travel journal API",
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd(), newMigrateCmd(), newSeedCmd())

	return root
}

// deps is what every command needs before touching a dependency.
type deps struct {
	cfg           *config.Config
	logger        zerolog.Logger
	loggerService *logger.LoggerService
}

func loadDeps() (*deps, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)

	return &deps{
		cfg:           cfg,
		logger:        logger.NewLoggerWithService(cfg.Observability, loggerService),
		loggerService: loggerService,
	}, nil
}

func (rt *deps) close() {
	rt.loggerService.Shutdown()
}
