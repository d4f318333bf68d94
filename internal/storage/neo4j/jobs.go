package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	pkgneo4j "github.com/honeycarbs/jobboard/pkg/neo4j"
)

// Ensure JobRepository implements job.Repository
var _ job.Repository = (*JobRepository)(nil)

// JobRepository stores postings as (:Job) nodes linked to (:Company) and
// (:Skill). Storage order is rank descending; newer postings get a higher rank.
type JobRepository struct {
	client *pkgneo4j.Client
}

// NewJobRepository creates a JobRepository with a Neo4j client
func NewJobRepository(client *pkgneo4j.Client) *JobRepository {
	return &JobRepository{client: client}
}

// the skill list is kept on the node so its order survives; REQUIRES
// relationships mirror it for graph queries
const linkJob = `
	WITH j
	OPTIONAL MATCH (j)-[old:POSTED_BY|REQUIRES]->()
	DELETE old
	WITH DISTINCT j
	MERGE (c:Company {name: j.company})
	MERGE (j)-[:POSTED_BY]->(c)
	WITH j
	FOREACH (name IN j.skills |
		MERGE (s:Skill {name: name})
		MERGE (j)-[:REQUIRES]->(s)
	)
`

const setJob = `
	SET j.title = job.title,
	    j.company = job.company,
	    j.location = job.location,
	    j.type = job.type,
	    j.salaryMin = job.salaryMin,
	    j.salaryMax = job.salaryMax,
	    j.currency = job.currency,
	    j.description = job.description,
	    j.requirements = job.requirements,
	    j.benefits = job.benefits,
	    j.postedAt = datetime({epochMillis: job.postedAt}),
	    j.deadline = CASE WHEN job.deadline IS NULL THEN null ELSE datetime({epochMillis: job.deadline}) END,
	    j.employerId = job.employerId,
	    j.featured = job.featured,
	    j.remote = job.remote,
	    j.experienceLevel = job.experienceLevel,
	    j.department = job.department,
	    j.skills = job.skills,
	    j.source = job.source,
	    j.externalId = job.externalId
`

const returnJob = ` RETURN j {.*} AS job ORDER BY j.rank DESC`

func (r *JobRepository) List(ctx context.Context) ([]domain.Job, error) {
	recs, err := r.client.Read(ctx, `MATCH (j:Job)`+returnJob, nil)
	if err != nil {
		return nil, fmt.Errorf("neo4j: list jobs: %w", err)
	}
	return decodeJobs(recs), nil
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (domain.Job, error) {
	recs, err := r.client.Read(ctx, `MATCH (j:Job {id: $id})`+returnJob, map[string]any{"id": id})
	if err != nil {
		return domain.Job{}, fmt.Errorf("neo4j: get job: %w", err)
	}
	if len(recs) == 0 {
		return domain.Job{}, domain.ErrNotFound
	}
	return decodeJob(props(recs[0], "job")), nil
}

func (r *JobRepository) ListByEmployer(ctx context.Context, employerID string) ([]domain.Job, error) {
	recs, err := r.client.Read(ctx, `MATCH (j:Job {employerId: $employerId})`+returnJob,
		map[string]any{"employerId": employerID})
	if err != nil {
		return nil, fmt.Errorf("neo4j: list employer jobs: %w", err)
	}
	return decodeJobs(recs), nil
}

// Create gives the posting the highest rank so it lists first
func (r *JobRepository) Create(ctx context.Context, j domain.Job) error {
	query := `
		OPTIONAL MATCH (existing:Job)
		WITH coalesce(max(existing.rank), 0) + 1 AS rank
		CREATE (j:Job {id: $job.id, rank: rank})
		WITH j, $job AS job
	` + setJob + linkJob

	if _, err := r.client.Write(ctx, query, map[string]any{"job": encodeJob(j)}); err != nil {
		return fmt.Errorf("neo4j: create job: %w", err)
	}
	return nil
}

func (r *JobRepository) Update(ctx context.Context, j domain.Job) error {
	query := `
		MATCH (j:Job {id: $job.id})
		WITH j, $job AS job
	` + setJob + linkJob + `
		RETURN count(j) AS updated
	`
	recs, err := r.client.Write(ctx, query, map[string]any{"job": encodeJob(j)})
	if err != nil {
		return fmt.Errorf("neo4j: update job: %w", err)
	}
	if count(recs, "updated") == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) (bool, error) {
	recs, err := r.client.Write(ctx, `
		MATCH (j:Job {id: $id})
		WITH j, j.id AS id
		DETACH DELETE j
		RETURN count(id) AS removed
	`, map[string]any{"id": id})
	if err != nil {
		return false, fmt.Errorf("neo4j: delete job: %w", err)
	}
	return count(recs, "removed") > 0, nil
}

// Seed loads postings into an empty graph, keeping their given order.
// It does nothing when any job already exists.
func (r *JobRepository) Seed(ctx context.Context, jobs []domain.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	data := make([]map[string]any, 0, len(jobs))
	for i, j := range jobs {
		m := encodeJob(j)
		m["rank"] = len(jobs) - i
		data = append(data, m)
	}

	query := `
		OPTIONAL MATCH (existing:Job)
		WITH count(existing) AS n
		WHERE n = 0
		UNWIND $jobs AS job
		CREATE (j:Job {id: job.id, rank: job.rank})
		WITH j, job
	` + setJob + linkJob

	if _, err := r.client.Write(ctx, query, map[string]any{"jobs": data}); err != nil {
		return fmt.Errorf("neo4j: seed jobs: %w", err)
	}
	return nil
}

func encodeJob(j domain.Job) map[string]any {
	return map[string]any{
		"id":              j.ID,
		"title":           j.Title,
		"company":         j.Company,
		"location":        j.Location,
		"type":            string(j.Type),
		"salaryMin":       j.Salary.Min,
		"salaryMax":       j.Salary.Max,
		"currency":        j.Salary.Currency,
		"description":     j.Description,
		"requirements":    orEmpty(j.Requirements),
		"benefits":        orEmpty(j.Benefits),
		"postedAt":        millis(j.PostedAt),
		"deadline":        millis(j.ApplicationDeadline),
		"employerId":      j.EmployerID,
		"featured":        j.Featured,
		"remote":          j.Remote,
		"experienceLevel": string(j.ExperienceLevel),
		"department":      j.Department,
		"skills":          orEmpty(j.Skills),
		"source":          j.Source,
		"externalId":      j.ExternalID,
	}
}

func decodeJobs(recs []*neo4j.Record) []domain.Job {
	out := make([]domain.Job, 0, len(recs))
	for _, rec := range recs {
		if p := props(rec, "job"); p != nil {
			out = append(out, decodeJob(p))
		}
	}
	return out
}

func decodeJob(p map[string]any) domain.Job {
	return domain.Job{
		ID:       str(p, "id"),
		Title:    str(p, "title"),
		Company:  str(p, "company"),
		Location: str(p, "location"),
		Type:     domain.EmploymentType(str(p, "type")),
		Salary: domain.Salary{
			Min:      integer(p, "salaryMin"),
			Max:      integer(p, "salaryMax"),
			Currency: str(p, "currency"),
		},
		Description:         str(p, "description"),
		Requirements:        strList(p, "requirements"),
		Benefits:            strList(p, "benefits"),
		PostedAt:            timestamp(p, "postedAt"),
		ApplicationDeadline: timestamp(p, "deadline"),
		EmployerID:          str(p, "employerId"),
		Featured:            boolean(p, "featured"),
		Remote:              boolean(p, "remote"),
		ExperienceLevel:     domain.ExperienceLevel(str(p, "experienceLevel")),
		Department:          str(p, "department"),
		Skills:              strList(p, "skills"),
		Source:              str(p, "source"),
		ExternalID:          str(p, "externalId"),
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
