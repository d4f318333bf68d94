package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/savedjob"
	pkgneo4j "github.com/honeycarbs/jobboard/pkg/neo4j"
)

var _ savedjob.Repository = (*SavedJobRepository)(nil)

// SavedJobRepository stores bookmarks as (:SavedJob) nodes linked SAVED to
// the job when it exists
type SavedJobRepository struct {
	client *pkgneo4j.Client
}

func NewSavedJobRepository(client *pkgneo4j.Client) *SavedJobRepository {
	return &SavedJobRepository{client: client}
}

const createSaved = `
	SET s.jobId = saved.jobId,
	    s.candidateId = saved.candidateId,
	    s.savedAt = datetime({epochMillis: saved.savedAt}),
	    s.notes = saved.notes
	WITH s
	OPTIONAL MATCH (j:Job {id: s.jobId})
	FOREACH (_ IN CASE WHEN j IS NULL THEN [] ELSE [1] END |
		MERGE (s)-[:SAVED]->(j)
	)
`

func (r *SavedJobRepository) Create(ctx context.Context, saved domain.SavedJob) error {
	query := `
		OPTIONAL MATCH (existing:SavedJob)
		WITH coalesce(max(existing.seq), 0) + 1 AS seq
		CREATE (s:SavedJob {id: $saved.id, seq: seq})
		WITH s, $saved AS saved
	` + createSaved

	if _, err := r.client.Write(ctx, query, map[string]any{"saved": encodeSaved(saved)}); err != nil {
		return fmt.Errorf("neo4j: create saved job: %w", err)
	}
	return nil
}

func (r *SavedJobRepository) Find(ctx context.Context, jobID, candidateID string) (domain.SavedJob, error) {
	recs, err := r.client.Read(ctx, `
		MATCH (s:SavedJob {jobId: $jobId, candidateId: $candidateId})
		RETURN s {.*} AS saved ORDER BY s.seq LIMIT 1
	`, map[string]any{"jobId": jobID, "candidateId": candidateID})
	if err != nil {
		return domain.SavedJob{}, fmt.Errorf("neo4j: find saved job: %w", err)
	}
	saved := decodeSaved(recs)
	if len(saved) == 0 {
		return domain.SavedJob{}, domain.ErrNotFound
	}
	return saved[0], nil
}

func (r *SavedJobRepository) ListByCandidate(ctx context.Context, candidateID string) ([]domain.SavedJob, error) {
	recs, err := r.client.Read(ctx, `
		MATCH (s:SavedJob {candidateId: $candidateId})
		RETURN s {.*} AS saved ORDER BY s.seq
	`, map[string]any{"candidateId": candidateID})
	if err != nil {
		return nil, fmt.Errorf("neo4j: list saved jobs: %w", err)
	}
	return decodeSaved(recs), nil
}

// Delete removes only the earliest bookmark for the pair
func (r *SavedJobRepository) Delete(ctx context.Context, jobID, candidateID string) (bool, error) {
	recs, err := r.client.Write(ctx, `
		MATCH (s:SavedJob {jobId: $jobId, candidateId: $candidateId})
		WITH s ORDER BY s.seq LIMIT 1
		WITH s, s.id AS id
		DETACH DELETE s
		RETURN count(id) AS removed
	`, map[string]any{"jobId": jobID, "candidateId": candidateID})
	if err != nil {
		return false, fmt.Errorf("neo4j: delete saved job: %w", err)
	}
	return count(recs, "removed") > 0, nil
}

// Seed loads bookmarks when none exist yet
func (r *SavedJobRepository) Seed(ctx context.Context, saved []domain.SavedJob) error {
	if len(saved) == 0 {
		return nil
	}
	data := make([]map[string]any, 0, len(saved))
	for i, s := range saved {
		m := encodeSaved(s)
		m["seq"] = i + 1
		data = append(data, m)
	}

	query := `
		OPTIONAL MATCH (existing:SavedJob)
		WITH count(existing) AS n
		WHERE n = 0
		UNWIND $saved AS saved
		CREATE (s:SavedJob {id: saved.id, seq: saved.seq})
		WITH s, saved
	` + createSaved

	if _, err := r.client.Write(ctx, query, map[string]any{"saved": data}); err != nil {
		return fmt.Errorf("neo4j: seed saved jobs: %w", err)
	}
	return nil
}

func encodeSaved(s domain.SavedJob) map[string]any {
	return map[string]any{
		"id":          s.ID,
		"jobId":       s.JobID,
		"candidateId": s.CandidateID,
		"savedAt":     millis(s.SavedAt),
		"notes":       s.Notes,
	}
}

func decodeSaved(recs []*neo4j.Record) []domain.SavedJob {
	out := make([]domain.SavedJob, 0, len(recs))
	for _, rec := range recs {
		p := props(rec, "saved")
		if p == nil {
			continue
		}
		out = append(out, domain.SavedJob{
			ID:          str(p, "id"),
			JobID:       str(p, "jobId"),
			CandidateID: str(p, "candidateId"),
			SavedAt:     timestamp(p, "savedAt"),
			Notes:       str(p, "notes"),
		})
	}
	return out
}
