package evolution

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"strings"
	"time"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/redis/go-redis/v9"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	evolutionbiz "elementalsouls.app/evolution/business/evolution"
	idempotencybiz "elementalsouls.app/evolution/business/idempotency"
	"elementalsouls.app/evolution/business/job"
	"elementalsouls.app/evolution/business/lock"
	"elementalsouls.app/evolution/business/permit"
	"elementalsouls.app/evolution/business/snapshot"
	"elementalsouls.app/evolution/contentstore"
	"elementalsouls.app/evolution/domain"
	"elementalsouls.app/evolution/generator"
	"elementalsouls.app/evolution/ledger"
	idempotencymw "elementalsouls.app/evolution/middleware/idempotency"
	"elementalsouls.app/evolution/repository"
	"elementalsouls.app/evolution/workflow"
)

var evolutionDB = sqldb.NewDatabase("evolution", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

// keyPurger drops idempotency records past their expiry.
type keyPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

//encore:service
type Service struct {
	evolutions  evolutionbiz.Business
	snapshots   snapshot.Business
	jobs        job.Business
	ledger      ledger.Client
	idempotency idempotencymw.Executor
	keys        keyPurger

	temporal client.Client
	worker   worker.Worker
	redis    redis.UniversalClient
}

func initService() (*Service, error) {
	ctx := context.Background()

	pgxdb := sqldb.Driver(evolutionDB)
	repo := repository.NewRepository(pgxdb)

	signerKey, err := parseKey("permit signer", secrets.PermitSignerKey)
	if err != nil {
		return nil, err
	}
	operatorKey, err := parseKey("operator", secrets.OperatorKey)
	if err != nil {
		return nil, err
	}

	rlog.Info("Connecting to ledger", "chain_id", cfg.Ledger.ChainID())
	ledgerClient, err := ledger.Dial(ctx, secrets.LedgerRPCURL, operatorKey, ledger.Config{
		ChainID:             cfg.Ledger.ChainID(),
		Collection:          common.HexToAddress(cfg.Ledger.CollectionAddress()),
		Gateway:             common.HexToAddress(cfg.Ledger.GatewayAddress()),
		ConfirmationTimeout: seconds(cfg.Ledger.ConfirmationTimeoutSeconds()),
	})
	if err != nil {
		return nil, err
	}

	lockStore, redisClient, err := newLockStore()
	if err != nil {
		return nil, err
	}

	gen, err := generator.New(generator.Config{
		Provider: cfg.Images.Provider(),
		ComfyURL: cfg.Images.ComfyURL(),
		Timeout:  seconds(cfg.Jobs.GenerationTimeoutSeconds()),
	})
	if err != nil {
		return nil, err
	}

	store := contentstore.NewClient(contentstore.Config{
		Endpoint: cfg.Content.Endpoint(),
		Token:    secrets.ContentStoreToken,
		MaxBytes: cfg.Content.MaxBytes(),
		Timeout:  seconds(cfg.Content.TimeoutSeconds()),
	})

	rlog.Info("Connecting to Temporal", "namespace", cfg.Jobs.TemporalNamespace())
	temporalClient, err := client.Dial(client.Options{
		HostPort:  secrets.TemporalHost,
		Namespace: cfg.Jobs.TemporalNamespace(),
	})
	if err != nil {
		return nil, fmt.Errorf("dial temporal: %w", err)
	}

	generationTimeout := seconds(cfg.Jobs.GenerationTimeoutSeconds())
	dispatcher := workflow.NewTemporalDispatcher(temporalClient, cfg.Jobs.TaskQueue(), generationTimeout, workflow.RetryConfig{
		InitialInterval:    seconds(cfg.Jobs.BackoffInitialSeconds()),
		BackoffCoefficient: cfg.Jobs.BackoffCoefficient(),
		MaximumInterval:    seconds(cfg.Jobs.BackoffMaxSeconds()),
	})
	jobBusiness := job.NewJobBusiness(repo.Jobs, dispatcher, cfg.Jobs.MaxAttempts())

	workflow.SetActivityDependencies(jobBusiness, gen, store, generationTimeout)
	w := worker.New(temporalClient, cfg.Jobs.TaskQueue(), worker.Options{
		MaxConcurrentActivityExecutionSize: cfg.Jobs.WorkerConcurrency(),
	})
	w.RegisterWorkflow(workflow.GenerateImage)
	w.RegisterActivity(workflow.GenerateImageActivity)
	w.RegisterActivity(workflow.FailImageJobActivity)
	if err := w.Start(); err != nil {
		temporalClient.Close()
		return nil, fmt.Errorf("start image worker: %w", err)
	}

	snapshotBusiness := snapshot.NewSnapshotBusiness(repo.Snapshots, ledgerClient, snapshot.Options{
		CacheSize: cfg.Snapshots.CacheSize(),
		CacheTTL:  seconds(cfg.Snapshots.CacheTTLSeconds()),
	})

	issuer := permit.NewIssuer(signerKey,
		permit.NewDomain(cfg.Ledger.ChainID(), common.HexToAddress(cfg.Ledger.GatewayAddress())),
		seconds(cfg.Evolution.PermitMaxTTLSeconds()),
	)
	rlog.Info("Permit issuer ready", "signer", issuer.Address().Hex())

	evolutionBusiness := evolutionbiz.NewEvolutionBusiness(evolutionbiz.Dependencies{
		StateMachine:  domain.NewEvolutionStateMachine(lock.NewManager(lockStore), seconds(cfg.Evolution.LockTTLSeconds())),
		Ledger:        ledgerClient,
		ContentStore:  store,
		Issuer:        issuer,
		DraftRepo:     repo.Drafts,
		EvolutionRepo: repo.Evolutions,
		Jobs:          jobBusiness,
		Snapshots:     snapshotBusiness,
	}, evolutionbiz.Options{
		RunTimeout: seconds(cfg.Evolution.RunTimeoutSeconds()),
		PermitTTL:  seconds(cfg.Evolution.PermitTTLSeconds()),
	})

	keyStore := idempotencybiz.NewPostgresStore(repo.IdempotencyKeys)
	ledgerStore := idempotencymw.NewCachedStore(keyStore, idempotencymw.NewKeyspaceCache(idempotencymw.IdempotencyCache))

	return &Service{
		evolutions:  evolutionBusiness,
		snapshots:   snapshotBusiness,
		jobs:        jobBusiness,
		ledger:      ledgerClient,
		idempotency: idempotencybiz.NewLedger(ledgerStore, idempotencybiz.Options{}),
		keys:        keyStore,
		temporal:    temporalClient,
		worker:      w,
		redis:       redisClient,
	}, nil
}

// Shutdown stops pulling image jobs before closing the shared clients.
func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.temporal != nil {
		s.temporal.Close()
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			rlog.Warn("failed to close redis client", "error", err)
		}
	}
}

// newLockStore uses Redis when configured. Without it locks only hold within
// this process, which is enough for local development.
func newLockStore() (lock.Store, redis.UniversalClient, error) {
	if secrets.RedisURL == "" {
		rlog.Warn("RedisURL not set, asset locks are process-local")
		return lock.NewMemoryStore(time.Now), nil, nil
	}

	opts, err := redis.ParseURL(secrets.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}
	redisClient := redis.NewClient(opts)
	return lock.NewRedisStore(redisClient), redisClient, nil
}

func parseKey(name, hexKey string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse %s key: %w", name, err)
	}
	return key, nil
}
