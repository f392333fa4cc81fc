package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/stakelabs/staking-ledger/internal/api"
	"github.com/stakelabs/staking-ledger/internal/clients/tokenclient"
	"github.com/stakelabs/staking-ledger/internal/config"
	"github.com/stakelabs/staking-ledger/internal/db"
	dbmodel "github.com/stakelabs/staking-ledger/internal/db/model"
	"github.com/stakelabs/staking-ledger/internal/observability/metrics"
	"github.com/stakelabs/staking-ledger/internal/observability/tracing"
	"github.com/stakelabs/staking-ledger/internal/queue"
	"github.com/stakelabs/staking-ledger/internal/services"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the staking ledger server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up transition archive model")
	}

	// create new db client
	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	queueManager, err := queue.NewQueueManager(&cfg.Queue)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize queue manager")
	}
	defer queueManager.Shutdown()

	var tokenClient tokenclient.TokenInterface
	tokenClient = tokenclient.NewClient(&cfg.Token)
	tokenClient = tokenclient.NewTokenClientWithMetrics(tokenClient)

	service := services.NewService(cfg, dbClient, tokenClient, queueManager)

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	return api.New(cfg, service).Start()
}
