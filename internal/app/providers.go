package app

import (
	"context"
	"net/http"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"

	authGateway "cliver/internal/gateway/auth"
	"cliver/internal/handlers/rest/dashboard_client_get"
	"cliver/internal/handlers/rest/dashboard_courier_get"
	"cliver/internal/handlers/rest/login_post"
	"cliver/internal/handlers/rest/message_post"
	"cliver/internal/handlers/rest/messages_get"
	"cliver/internal/handlers/rest/mission_cancel_post"
	"cliver/internal/handlers/rest/mission_claim_post"
	"cliver/internal/handlers/rest/mission_complete_post"
	"cliver/internal/handlers/rest/mission_get"
	"cliver/internal/handlers/rest/mission_post"
	"cliver/internal/handlers/rest/mission_start_post"
	"cliver/internal/handlers/rest/missions_available_get"
	"cliver/internal/handlers/rest/missions_client_get"
	"cliver/internal/handlers/rest/missions_courier_get"
	"cliver/internal/handlers/rest/plans_get"
	"cliver/internal/handlers/rest/signup_post"
	"cliver/internal/handlers/rest/transactions_get"
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

	"cliver/pkg/background"
	"cliver/pkg/logger"
	"cliver/pkg/querier"
	"cliver/pkg/tx"
)

type (
	BacklogInterval time.Duration
)

type Application struct {
	ServiceMission     ServiceMission
	ServiceMessage     ServiceMessage
	ServiceTransaction ServiceTransaction
	ServicePlan        ServicePlan
	GatewayAuth        GatewayAuth
	BackgroundWorkers  *background.Worker
}

type ServiceMission interface {
	mission_post.Service
	mission_get.Service
	missions_available_get.Service
	missions_client_get.Service
	missions_courier_get.Service
	mission_claim_post.Service
	mission_start_post.Service
	mission_complete_post.Service
	mission_cancel_post.Service
	dashboard_client_get.Service
	dashboard_courier_get.Service
}

type ServiceMessage interface {
	message_post.Service
	messages_get.Service
}

type ServiceTransaction interface {
	transactions_get.Service
}

type ServicePlan interface {
	plans_get.Service
}

type GatewayAuth interface {
	signup_post.Gateway
	login_post.Gateway
}

type KafkaWorkerApp struct {
	TransactionService *transactionService.Transaction
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideMissionRepository(querier *querier.Querier) *missionRepo.Repository {
	return missionRepo.New(querier)
}

func provideMessageRepository(querier *querier.Querier) *messageRepo.Repository {
	return messageRepo.New(querier)
}

func provideTransactionRepository(querier *querier.Querier) *transactionRepo.Repository {
	return transactionRepo.New(querier)
}

func providePlanRepository(querier *querier.Querier) *planRepo.Repository {
	return planRepo.New(querier)
}

func provideServiceMission(repository missionService.Repository) *missionService.Mission {
	return missionService.New(repository)
}

func provideServiceMessage(
	repository messageService.Repository,
	missions messageService.MissionProvider,
	txManager messageService.TxManager,
) *messageService.Message {
	return messageService.New(repository, missions, txManager)
}

func provideServiceTransaction(repository transactionService.Repository) *transactionService.Transaction {
	return transactionService.New(repository)
}

func provideServicePlan(repository planService.Repository) *planService.Plan {
	return planService.New(repository)
}

func provideHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Auth.RequestTimeout}
}

func provideAuthGateway(client *http.Client, cfg *config.Config) *authGateway.AuthGateway {
	return authGateway.New(client, cfg.Auth.BaseURL, cfg.Auth.ServiceKey)
}

func provideBacklogInterval(cfg *config.Config) BacklogInterval {
	return BacklogInterval(cfg.Tasks.MissionBacklogRefreshInterval)
}

func provideMissionBacklogTask(
	service mission_backlog.Service,
	interval BacklogInterval,
) *mission_backlog.MissionBacklog {
	return mission_backlog.NewMissionBacklog(service, time.Duration(interval))
}

func provideTaskList(
	missionBacklogTask *mission_backlog.MissionBacklog,
) []background.Task {
	return []background.Task{
		missionBacklogTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
