package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/application"
	pkgneo4j "github.com/honeycarbs/jobboard/pkg/neo4j"
)

var _ application.Repository = (*ApplicationRepository)(nil)

// ApplicationRepository stores (:Application) nodes in submission order
// (seq ascending). Each node is linked APPLIED_TO its job when the job exists.
type ApplicationRepository struct {
	client *pkgneo4j.Client
}

func NewApplicationRepository(client *pkgneo4j.Client) *ApplicationRepository {
	return &ApplicationRepository{client: client}
}

const setApplication = `
	SET a.jobId = app.jobId,
	    a.candidateId = app.candidateId,
	    a.status = app.status,
	    a.appliedAt = datetime({epochMillis: app.appliedAt}),
	    a.coverLetter = app.coverLetter,
	    a.resumeRef = app.resumeRef,
	    a.notes = app.notes,
	    a.updatedAt = datetime({epochMillis: app.updatedAt})
	WITH a
	OPTIONAL MATCH (j:Job {id: a.jobId})
	FOREACH (_ IN CASE WHEN j IS NULL THEN [] ELSE [1] END |
		MERGE (a)-[:APPLIED_TO]->(j)
	)
`

const returnApplication = ` RETURN a {.*} AS app ORDER BY a.seq`

func (r *ApplicationRepository) Create(ctx context.Context, app domain.Application) error {
	query := `
		OPTIONAL MATCH (existing:Application)
		WITH coalesce(max(existing.seq), 0) + 1 AS seq
		CREATE (a:Application {id: $app.id, seq: seq})
		WITH a, $app AS app
	` + setApplication

	if _, err := r.client.Write(ctx, query, map[string]any{"app": encodeApplication(app)}); err != nil {
		return fmt.Errorf("neo4j: create application: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (domain.Application, error) {
	return r.one(ctx, `MATCH (a:Application {id: $id})`, map[string]any{"id": id})
}

func (r *ApplicationRepository) ListByCandidate(ctx context.Context, candidateID string) ([]domain.Application, error) {
	return r.list(ctx, `MATCH (a:Application {candidateId: $candidateId})`, map[string]any{"candidateId": candidateID})
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	return r.list(ctx, `MATCH (a:Application {jobId: $jobId})`, map[string]any{"jobId": jobID})
}

func (r *ApplicationRepository) FindByJobAndCandidate(ctx context.Context, jobID, candidateID string) (domain.Application, error) {
	return r.one(ctx, `MATCH (a:Application {jobId: $jobId, candidateId: $candidateId})`,
		map[string]any{"jobId": jobID, "candidateId": candidateID})
}

func (r *ApplicationRepository) Update(ctx context.Context, app domain.Application) error {
	query := `
		MATCH (a:Application {id: $app.id})
		WITH a, $app AS app
	` + setApplication + `
		RETURN count(a) AS updated
	`
	recs, err := r.client.Write(ctx, query, map[string]any{"app": encodeApplication(app)})
	if err != nil {
		return fmt.Errorf("neo4j: update application: %w", err)
	}
	if count(recs, "updated") == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Seed loads applications when none exist yet
func (r *ApplicationRepository) Seed(ctx context.Context, apps []domain.Application) error {
	if len(apps) == 0 {
		return nil
	}
	data := make([]map[string]any, 0, len(apps))
	for i, a := range apps {
		m := encodeApplication(a)
		m["seq"] = i + 1
		data = append(data, m)
	}

	query := `
		OPTIONAL MATCH (existing:Application)
		WITH count(existing) AS n
		WHERE n = 0
		UNWIND $apps AS app
		CREATE (a:Application {id: app.id, seq: app.seq})
		WITH a, app
	` + setApplication

	if _, err := r.client.Write(ctx, query, map[string]any{"apps": data}); err != nil {
		return fmt.Errorf("neo4j: seed applications: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) one(ctx context.Context, match string, params map[string]any) (domain.Application, error) {
	apps, err := r.list(ctx, match, params)
	if err != nil {
		return domain.Application{}, err
	}
	if len(apps) == 0 {
		return domain.Application{}, domain.ErrNotFound
	}
	return apps[0], nil
}

func (r *ApplicationRepository) list(ctx context.Context, match string, params map[string]any) ([]domain.Application, error) {
	recs, err := r.client.Read(ctx, match+returnApplication, params)
	if err != nil {
		return nil, fmt.Errorf("neo4j: read applications: %w", err)
	}
	return decodeApplications(recs), nil
}

func encodeApplication(a domain.Application) map[string]any {
	return map[string]any{
		"id":          a.ID,
		"jobId":       a.JobID,
		"candidateId": a.CandidateID,
		"status":      string(a.Status),
		"appliedAt":   millis(a.AppliedAt),
		"coverLetter": a.CoverLetter,
		"resumeRef":   a.ResumeRef,
		"notes":       a.Notes,
		"updatedAt":   millis(a.UpdatedAt),
	}
}

func decodeApplications(recs []*neo4j.Record) []domain.Application {
	out := make([]domain.Application, 0, len(recs))
	for _, rec := range recs {
		p := props(rec, "app")
		if p == nil {
			continue
		}
		out = append(out, domain.Application{
			ID:          str(p, "id"),
			JobID:       str(p, "jobId"),
			CandidateID: str(p, "candidateId"),
			Status:      domain.ApplicationStatus(str(p, "status")),
			AppliedAt:   timestamp(p, "appliedAt"),
			CoverLetter: str(p, "coverLetter"),
			ResumeRef:   str(p, "resumeRef"),
			Notes:       str(p, "notes"),
			UpdatedAt:   timestamp(p, "updatedAt"),
		})
	}
	return out
}
