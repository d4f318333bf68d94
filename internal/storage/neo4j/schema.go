package neo4j

import (
	"context"
	"fmt"

	pkgneo4j "github.com/honeycarbs/jobboard/pkg/neo4j"
)

var constraints = []string{
	`CREATE CONSTRAINT job_id IF NOT EXISTS FOR (j:Job) REQUIRE j.id IS UNIQUE`,
	`CREATE CONSTRAINT application_id IF NOT EXISTS FOR (a:Application) REQUIRE a.id IS UNIQUE`,
	`CREATE CONSTRAINT saved_job_id IF NOT EXISTS FOR (s:SavedJob) REQUIRE s.id IS UNIQUE`,
	`CREATE CONSTRAINT user_id IF NOT EXISTS FOR (u:User) REQUIRE u.id IS UNIQUE`,
	`CREATE CONSTRAINT user_email IF NOT EXISTS FOR (u:User) REQUIRE u.emailKey IS UNIQUE`,
	`CREATE CONSTRAINT skill_name IF NOT EXISTS FOR (s:Skill) REQUIRE s.name IS UNIQUE`,
	`CREATE CONSTRAINT company_name IF NOT EXISTS FOR (c:Company) REQUIRE c.name IS UNIQUE`,
}

// EnsureSchema creates the uniqueness constraints the repositories rely on
func EnsureSchema(ctx context.Context, client *pkgneo4j.Client) error {
	for _, c := range constraints {
		if _, err := client.Write(ctx, c, nil); err != nil {
			return fmt.Errorf("neo4j: ensure schema: %w", err)
		}
	}
	return nil
}
