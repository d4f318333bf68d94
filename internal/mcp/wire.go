//go:build wireinject
// +build wireinject

package mcp

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/jobboard/internal/config"
	"github.com/honeycarbs/jobboard/internal/domain/application"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/internal/domain/portal"
	"github.com/honeycarbs/jobboard/internal/domain/savedjob"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// InitializeResources creates Resources with all resources wired up. The
// returned cleanup closes database and cache connections.
func InitializeResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, func(), error) {
	wire.Build(
		// Infrastructure - storage backend and session slot
		provideHasher,
		provideRepositories,
		wire.FieldsOf(new(repositories), "Jobs", "Applications", "SavedJobs", "Users"),
		provideSessionStorage,

		// Policies
		provideDuplicatePolicy,
		provideTransitionPolicy,

		// Services
		job.NewServiceWithDeps,
		application.NewServiceWithDeps,
		savedjob.NewServiceWithDeps,
		provideSessionService,
		portal.NewService,

		// Import and export
		provideJobProviders,
		provideImporter,
		provideSheetsClient,

		wire.Struct(new(Resources), "*"),
	)

	return nil, nil, nil
}
