// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"

	"github.com/finance-tracker/client/config"
	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/migration"
	"github.com/finance-tracker/client/internal/application/repository"
	"github.com/finance-tracker/client/internal/application/syncengine"
	"github.com/finance-tracker/client/internal/application/syncqueue"
	"github.com/finance-tracker/client/internal/application/usecase/backup"
	"github.com/finance-tracker/client/internal/application/usecase/bot"
	"github.com/finance-tracker/client/internal/application/usecase/dashboard"
	"github.com/finance-tracker/client/internal/application/usecase/transaction"
	"github.com/finance-tracker/client/internal/infra/server/router"
	"github.com/finance-tracker/client/internal/integration/adapters"
	"github.com/finance-tracker/client/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/client/internal/integration/remote"
)

// Injector holds all application dependencies.
type Injector struct {
	Config     *config.Config
	Keys       adapter.Keyspace
	Migrations *migration.Engine
	SyncEngine *syncengine.Engine
	Router     *router.Router
}

// NewInjector wires the core on top of the given store. The store is opened
// and closed by the caller.
func NewInjector(ctx context.Context, cfg *config.Config, store adapter.KVStore, storeHealth func() bool) (*Injector, error) {
	// Resolve the identity that scopes all stored and synced data
	identity := adapters.NewIdentityService(cfg.Remote.AccessToken)
	keys := adapter.NewKeyspace(identity.UserID())

	// Session-scoped notifier
	notifier := adapters.NewSlogNotifier()

	// Migration engine with the reference step registry
	migrations := migration.NewEngine(store, migration.DefaultRegistry(keys), keys)

	// Durable mutation queue, restored from the previous session
	queue, err := syncqueue.New(ctx, store, keys)
	if err != nil {
		return nil, err
	}

	// Entity repositories
	transactionRepo := repository.NewTransactionRepository(store, queue, notifier, keys)
	categoryRepo := repository.NewCategoryRepository(store, queue, notifier, keys)
	goalRepo := repository.NewGoalRepository(store, queue, notifier, keys)
	recurringRepo := repository.NewRecurringRepository(store, queue, notifier, keys)
	assetRepo := repository.NewAssetRepository(store, queue, notifier, keys)
	profileRepo := repository.NewProfileRepository(store, queue, notifier, keys)

	// Remote gateway and sync engine
	gateway := remote.NewHTTPGateway(cfg.Remote.BaseURL, cfg.Remote.AccessToken, cfg.Remote.RequestTimeout)
	syncEngine := syncengine.NewEngine(store, gateway, queue, notifier, keys, cfg.Sync.Interval, cfg.Remote.RequestTimeout)

	// Use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	getBalanceUseCase := dashboard.NewGetBalanceUseCase(transactionRepo)

	backupRepos := backup.Repositories{
		Transactions: transactionRepo,
		Categories:   categoryRepo,
		Goals:        goalRepo,
		Recurring:    recurringRepo,
		Assets:       assetRepo,
		Profile:      profileRepo,
	}
	exportSnapshotUseCase := backup.NewExportSnapshotUseCase(backupRepos)
	importSnapshotUseCase := backup.NewImportSnapshotUseCase(backupRepos, store, keys)

	applyIntentUseCase := bot.NewApplyIntentUseCase(createTransactionUseCase, getBalanceUseCase)

	// Controllers
	healthController := controller.NewHealthController(storeHealth)
	syncController := controller.NewSyncController(syncEngine)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		transactionRepo,
	)
	dashboardController := controller.NewDashboardController(getBalanceUseCase)
	backupController := controller.NewBackupController(exportSnapshotUseCase, importSnapshotUseCase)
	botController := controller.NewBotController(applyIntentUseCase)

	return &Injector{
		Config:     cfg,
		Keys:       keys,
		Migrations: migrations,
		SyncEngine: syncEngine,
		Router: router.NewRouter(
			healthController,
			syncController,
			transactionController,
			dashboardController,
			backupController,
			botController,
		),
	}, nil
}
