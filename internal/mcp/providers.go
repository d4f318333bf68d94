package mcp

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/honeycarbs/jobboard/internal/config"
	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/application"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	adzunaProvider "github.com/honeycarbs/jobboard/internal/domain/job/providers/adzuna"
	"github.com/honeycarbs/jobboard/internal/domain/savedjob"
	"github.com/honeycarbs/jobboard/internal/domain/session"
	"github.com/honeycarbs/jobboard/internal/mcp/tools"
	"github.com/honeycarbs/jobboard/internal/storage/memory"
	storage "github.com/honeycarbs/jobboard/internal/storage/neo4j"
	"github.com/honeycarbs/jobboard/internal/storage/sessionstore"
	"github.com/honeycarbs/jobboard/pkg/adzuna"
	"github.com/honeycarbs/jobboard/pkg/logging"
	n4j "github.com/honeycarbs/jobboard/pkg/neo4j"
	sheetsclient "github.com/honeycarbs/jobboard/pkg/sheets"
)

// importedEmployerID owns every posting pulled from an external provider
const importedEmployerID = "adzuna"

// repositories groups one repository per store for the selected backend
type repositories struct {
	Jobs         job.Repository
	Applications application.Repository
	SavedJobs    savedjob.Repository
	Users        session.UserRepository
}

func provideHasher() session.Hasher {
	return session.NewBcryptHasher(bcrypt.DefaultCost)
}

// provideRepositories opens the configured backend and loads demo data when enabled
func provideRepositories(ctx context.Context, cfg config.Config, hasher session.Hasher, logger *logging.Logger) (repositories, func(), error) {
	var demoHash string
	if cfg.SeedMockData {
		h, err := hasher.Hash(memory.DemoPassword)
		if err != nil {
			return repositories{}, nil, fmt.Errorf("hash demo password: %w", err)
		}
		demoHash = h
	}

	if cfg.StorageBackend != config.BackendNeo4j {
		store := memory.NewStore(cfg.SeedMockData, demoHash)
		return repositories{
			Jobs:         store.Jobs,
			Applications: store.Applications,
			SavedJobs:    store.SavedJobs,
			Users:        store.Users,
		}, func() {}, nil
	}

	client, err := n4j.NewClient(ctx, n4j.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
	})
	if err != nil {
		return repositories{}, nil, err
	}
	cleanup := func() {
		if err := client.Close(context.Background()); err != nil {
			logger.Warn("neo4j close failed", "err", err)
		}
	}

	if err := storage.EnsureSchema(ctx, client); err != nil {
		cleanup()
		return repositories{}, nil, err
	}

	users := storage.NewUserRepository(client)
	jobs := storage.NewJobRepository(client)
	apps := storage.NewApplicationRepository(client)
	saved := storage.NewSavedJobRepository(client)
	if cfg.SeedMockData {
		if err := seedNeo4j(ctx, users, jobs, apps, saved, demoHash); err != nil {
			cleanup()
			return repositories{}, nil, err
		}
	}
	logger.Info("Neo4j client initialized", "uri", cfg.Neo4j.URI)
	return repositories{Jobs: jobs, Applications: apps, SavedJobs: saved, Users: users}, cleanup, nil
}

// seedNeo4j loads the demo data; each Seed is a no-op once its label has nodes
func seedNeo4j(ctx context.Context, users *storage.UserRepository, jobs *storage.JobRepository, apps *storage.ApplicationRepository, saved *storage.SavedJobRepository, demoHash string) error {
	if err := users.Seed(ctx, memory.SeedUsers(demoHash)); err != nil {
		return err
	}
	if err := jobs.Seed(ctx, memory.SeedJobs()); err != nil {
		return err
	}
	if err := apps.Seed(ctx, memory.SeedApplications()); err != nil {
		return err
	}
	return saved.Seed(ctx, memory.SeedSavedJobs())
}

// provideSessionStorage picks where the current user slot is persisted
func provideSessionStorage(ctx context.Context, cfg config.Config, logger *logging.Logger) (session.Storage, func(), error) {
	switch cfg.SessionStore {
	case config.SessionFile:
		f, err := sessionstore.NewFile(cfg.SessionFile)
		if err != nil {
			return nil, nil, err
		}
		return f, func() {}, nil
	case config.SessionRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("redis: ping %s: %w", cfg.Redis.Addr, err)
		}
		cleanup := func() {
			if err := rdb.Close(); err != nil {
				logger.Warn("redis close failed", "err", err)
			}
		}
		return sessionstore.NewRedis(rdb), cleanup, nil
	default:
		return sessionstore.NewMemory(), func() {}, nil
	}
}

func provideDuplicatePolicy(cfg config.Config) (domain.DuplicatePolicy, error) {
	return domain.ParseDuplicatePolicy(cfg.ApplicationDuplicates)
}

func provideTransitionPolicy(cfg config.Config) (application.TransitionPolicy, error) {
	return application.ParseTransitionPolicy(cfg.ApplicationTransitions)
}

// provideSessionService builds the session and restores any persisted user
func provideSessionService(ctx context.Context, cfg config.Config, users session.UserRepository, st session.Storage, hasher session.Hasher, logger *logging.Logger) (session.Service, error) {
	svc, err := session.NewServiceWithDeps(users, st, hasher, cfg.SimulatedLatency, logger)
	if err != nil {
		return nil, err
	}
	if err := svc.Initialize(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// provideJobProviders returns the Adzuna provider when credentials are set
func provideJobProviders(cfg config.Config) ([]job.Provider, error) {
	if !cfg.ImportEnabled() {
		return nil, nil
	}
	client, err := adzuna.NewClient(adzuna.Config{
		AppID:   cfg.Adzuna.AppID,
		AppKey:  cfg.Adzuna.AppKey,
		Country: cfg.Adzuna.Country,
	})
	if err != nil {
		return nil, err
	}
	p, err := adzunaProvider.NewProvider(client, importedEmployerID)
	if err != nil {
		return nil, err
	}
	return []job.Provider{p}, nil
}

func provideImporter(jobs job.Service, repo job.Repository, logger *logging.Logger, providers []job.Provider) (*job.Importer, error) {
	return job.NewImporter(jobs, repo, logger, providers...)
}

// provideSheetsClient returns an exporter that fails every call when no
// credentials are configured
func provideSheetsClient(ctx context.Context, cfg config.Config) (tools.SheetsClient, error) {
	if cfg.SheetsCredentialsPath == "" {
		return &sheetsClientAdapter{}, nil
	}
	client, err := sheetsclient.NewClient(ctx, sheetsclient.Config{CredentialsPath: cfg.SheetsCredentialsPath})
	if err != nil {
		return nil, err
	}
	return &sheetsClientAdapter{client: client}, nil
}
