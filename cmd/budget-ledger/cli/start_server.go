package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/modbotdev/budget-ledger/internal/clients/balanceoracle"
	"github.com/modbotdev/budget-ledger/internal/config"
	"github.com/modbotdev/budget-ledger/internal/db"
	dbmodel "github.com/modbotdev/budget-ledger/internal/db/model"
	"github.com/modbotdev/budget-ledger/internal/ledger"
	"github.com/modbotdev/budget-ledger/internal/observability/metrics"
	"github.com/modbotdev/budget-ledger/internal/observability/tracing"
	"github.com/modbotdev/budget-ledger/internal/queue"
	"github.com/modbotdev/budget-ledger/internal/types"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the budget ledger server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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
		log.Fatal().Err(err).Msg("error while setting up ledger db model")
	}

	// create new db client
	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	var oracle balanceoracle.OracleInterface
	oracle = balanceoracle.NewClient(&cfg.Oracle)
	oracle = balanceoracle.NewClientWithMetrics(oracle)

	qm, err := queue.NewQueueManager(&cfg.Queue)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize queue manager")
	}
	defer qm.Shutdown()

	service := ledger.NewService(cfg, dbClient, oracle)

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	err = qm.StartTipConsumer(ctx, func(ctx context.Context, event *queue.TipEvent) error {
		amount, err := event.AmountInt()
		if err != nil {
			return err
		}

		_, err = service.Deposit(ctx, event.CommunityID, amount, types.MethodTip, ledger.DepositMeta{
			DepositID:        event.EventID,
			DepositorAddress: event.DepositorAddress,
			TxHash:           event.TxHash,
		})
		if db.IsDuplicateKeyError(err) {
			// redelivered event, already recorded
			return nil
		}
		return err
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start tip consumer")
	}

	<-ctx.Done()
	log.Info().Msg("shutting down budget ledger server")
	return nil
}
