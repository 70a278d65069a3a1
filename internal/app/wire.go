//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	authGateway "cliver/internal/gateway/auth"
	"cliver/internal/handlers/tasks/mission_backlog"
	"cliver/internal/pkg/config"

	messageRepo "cliver/internal/repository/message"
	missionRepo "cliver/internal/repository/mission"
	planRepo "cliver/internal/repository/plan"
	transactionRepo "cliver/internal/repository/transaction"
	messageService "cliver/internal/service/message"
	missionService "cliver/internal/service/mission"
	planService "cliver/internal/service/plan"
	transactionService "cliver/internal/service/transaction"

	"cliver/pkg/logger"
	"cliver/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideBacklogInterval,

		provideMissionRepository,
		provideMessageRepository,
		provideTransactionRepository,
		providePlanRepository,

		provideServiceMission,
		provideServiceMessage,
		provideServiceTransaction,
		provideServicePlan,

		provideHTTPClient,
		provideAuthGateway,

		provideMissionBacklogTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceMission), new(*missionService.Mission)),
		wire.Bind(new(ServiceMessage), new(*messageService.Message)),
		wire.Bind(new(ServiceTransaction), new(*transactionService.Transaction)),
		wire.Bind(new(ServicePlan), new(*planService.Plan)),
		wire.Bind(new(GatewayAuth), new(*authGateway.AuthGateway)),

		wire.Bind(new(missionService.Repository), new(*missionRepo.Repository)),
		wire.Bind(new(messageService.Repository), new(*messageRepo.Repository)),
		wire.Bind(new(messageService.MissionProvider), new(*missionRepo.Repository)),
		wire.Bind(new(transactionService.Repository), new(*transactionRepo.Repository)),
		wire.Bind(new(planService.Repository), new(*planRepo.Repository)),

		wire.Bind(new(messageService.TxManager), new(*tx.Manager)),

		wire.Bind(new(mission_backlog.Service), new(*missionRepo.Repository)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideTransactionRepository,
		provideServiceTransaction,

		wire.Bind(new(transactionService.Repository), new(*transactionRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
