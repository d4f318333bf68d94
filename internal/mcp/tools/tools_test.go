package tools_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/crypto/bcrypt"

	"github.com/honeycarbs/jobboard/internal/domain/application"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/internal/domain/portal"
	"github.com/honeycarbs/jobboard/internal/domain/savedjob"
	"github.com/honeycarbs/jobboard/internal/domain/session"
	"github.com/honeycarbs/jobboard/internal/mcp/tools"
	"github.com/honeycarbs/jobboard/internal/storage/memory"
	"github.com/honeycarbs/jobboard/internal/storage/sessionstore"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

var beforeDeadlines = time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

type fakeSheets struct {
	mu      sync.Mutex
	exports []tools.SheetsExport
}

func (f *fakeSheets) Export(_ context.Context, export tools.SheetsExport) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exports = append(f.exports, export)
	return len(export.Rows), nil
}

type harness struct {
	session *sdkmcp.ClientSession
	sheets  *fakeSheets
	names   []string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctx := context.Background()

	hasher := session.NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash(memory.DemoPassword)
	if err != nil {
		t.Fatal(err)
	}
	store := memory.NewStore(true, hash)

	jobs, err := job.NewService(job.WithRepository(store.Jobs))
	if err != nil {
		t.Fatal(err)
	}
	apps, err := application.NewService(application.WithRepository(store.Applications))
	if err != nil {
		t.Fatal(err)
	}
	saved, err := savedjob.NewService(savedjob.WithRepository(store.SavedJobs))
	if err != nil {
		t.Fatal(err)
	}
	p, err := portal.NewService(jobs, apps, saved, store.Users)
	if err != nil {
		t.Fatal(err)
	}
	p = p.WithClock(func() time.Time { return beforeDeadlines })

	sess, err := session.NewService(
		session.WithUserRepository(store.Users),
		session.WithStorage(sessionstore.NewMemory()),
		session.WithHasher(hasher),
	)
	if err != nil {
		t.Fatal(err)
	}
	importer, err := job.NewImporter(jobs, store.Jobs, nil)
	if err != nil {
		t.Fatal(err)
	}

	sheets := &fakeSheets{}
	server := sdkmcp.NewServer(&sdkmcp.Implementation{Name: "jobboard-test", Version: "test"}, nil)
	names := tools.Register(server, logging.NewNop(),
		tools.WithJobTools(jobs, sess),
		tools.WithApplicationTools(apps, p, sess),
		tools.WithSavedJobTools(saved, p, sess),
		tools.WithSessionTools(sess),
		tools.WithDashboardTools(p, sess),
		tools.WithImportTools(importer),
		tools.WithSheetsExport(sheets, jobs, apps, saved, sess),
	)

	clientTransport, serverTransport := sdkmcp.NewInMemoryTransports()
	if _, err := server.Connect(ctx, serverTransport, nil); err != nil {
		t.Fatalf("server connect: %v", err)
	}
	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "jobboard-test-client", Version: "test"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { _ = cs.Close() })

	return &harness{session: cs, sheets: sheets, names: names}
}

// call invokes a tool and returns its concatenated text and error flag
func (h *harness) call(t *testing.T, name string, args map[string]any) (string, bool) {
	t.Helper()
	if args == nil {
		args = map[string]any{}
	}
	res, err := h.session.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	var b strings.Builder
	for _, c := range res.Content {
		if tc, ok := c.(*sdkmcp.TextContent); ok {
			b.WriteString(tc.Text)
		}
	}
	return b.String(), res.IsError
}

func (h *harness) mustCall(t *testing.T, name string, args map[string]any) string {
	t.Helper()
	text, isErr := h.call(t, name, args)
	if isErr {
		t.Fatalf("%s returned tool error: %s", name, text)
	}
	return text
}

func TestRegisterListsEveryTool(t *testing.T) {
	h := newHarness(t)

	want := []string{
		"search_jobs", "featured_jobs", "get_job", "list_employer_jobs", "create_job", "update_job", "delete_job",
		"apply_to_job", "list_applications", "list_applicants", "update_application_status",
		"save_job", "unsave_job", "is_job_saved", "list_saved_jobs",
		"register", "login", "logout", "current_user",
		"dashboard_stats", "import_jobs", "sheets_export",
	}
	if len(h.names) != len(want) {
		t.Fatalf("registered %d tools, want %d: %v", len(h.names), len(want), h.names)
	}

	res, err := h.session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	listed := map[string]bool{}
	for _, tool := range res.Tools {
		listed[tool.Name] = true
	}
	for _, name := range want {
		if !listed[name] {
			t.Errorf("tool %q not listed", name)
		}
	}
}

func TestSearchAndFeatured(t *testing.T) {
	h := newHarness(t)

	text := h.mustCall(t, "search_jobs", map[string]any{"query": "react"})
	if !strings.HasPrefix(text, "Found 1 jobs") || !strings.Contains(text, "Senior Frontend Developer") {
		t.Errorf("search_jobs text = %q", text)
	}

	text = h.mustCall(t, "search_jobs", map[string]any{"remote_only": true})
	if strings.Contains(text, "Product Manager") {
		t.Errorf("remote_only returned an on-site job: %q", text)
	}

	text = h.mustCall(t, "featured_jobs", nil)
	if !strings.HasPrefix(text, "3 featured jobs") {
		t.Errorf("featured_jobs text = %q", text)
	}
}

func TestGetJobNotFoundIsToolError(t *testing.T) {
	h := newHarness(t)

	text, isErr := h.call(t, "get_job", map[string]any{"id": "missing"})
	if !isErr {
		t.Fatalf("expected tool error, got %q", text)
	}
	if !strings.Contains(text, "not found") {
		t.Errorf("error text = %q", text)
	}
}

func TestCreateJobValidatesForm(t *testing.T) {
	h := newHarness(t)

	text, isErr := h.call(t, "create_job", map[string]any{
		"employer_id": "1",
		"title":       "Platform Engineer",
	})
	if !isErr || !strings.Contains(text, "invalid input") {
		t.Fatalf("expected validation error, got %q (isErr=%v)", text, isErr)
	}

	text = h.mustCall(t, "create_job", map[string]any{
		"employer_id":      "1",
		"title":            "Platform Engineer",
		"company":          "TechCorp Inc.",
		"location":         "Remote",
		"type":             "full-time",
		"salary_min":       120000,
		"salary_max":       150000,
		"description":      "Run the platform",
		"experience_level": "senior",
		"skills":           []string{"Go", "Kubernetes", "Go"},
	})
	if !strings.HasPrefix(text, "Created job ") {
		t.Fatalf("create_job text = %q", text)
	}

	text = h.mustCall(t, "list_employer_jobs", map[string]any{"employer_id": "1"})
	if !strings.HasPrefix(text, "Employer 1 has 2 jobs") {
		t.Errorf("list_employer_jobs text = %q", text)
	}
}

func TestUpdateAndDeleteJob(t *testing.T) {
	h := newHarness(t)

	text := h.mustCall(t, "update_job", map[string]any{"id": "2", "title": "Lead Product Manager", "salary_max": 160000})
	if !strings.Contains(text, "Lead Product Manager") || !strings.Contains(text, "160000") {
		t.Errorf("update_job text = %q", text)
	}

	text, isErr := h.call(t, "update_job", map[string]any{"id": "2", "salary_max": 1})
	if !isErr || !strings.Contains(text, "Maximum salary must be greater than minimum salary") {
		t.Errorf("expected salary validation error, got %q", text)
	}

	if text := h.mustCall(t, "delete_job", map[string]any{"id": "2"}); text != "Deleted job 2" {
		t.Errorf("delete_job text = %q", text)
	}
	if text := h.mustCall(t, "delete_job", map[string]any{"id": "2"}); text != "No job with ID 2" {
		t.Errorf("second delete_job text = %q", text)
	}
}

func TestApplyFlowUsesLoggedInCandidate(t *testing.T) {
	h := newHarness(t)

	text, isErr := h.call(t, "apply_to_job", map[string]any{"job_id": "2"})
	if !isErr || !strings.Contains(text, "nobody is logged in") {
		t.Fatalf("expected missing actor error, got %q", text)
	}

	h.mustCall(t, "login", map[string]any{"email": "candidate@example.com", "password": "password"})

	text = h.mustCall(t, "apply_to_job", map[string]any{"job_id": "2", "cover_letter": "Hello", "resume_ref": "/resumes/candidate.pdf"})
	if !strings.HasPrefix(text, "Applied to job 2") {
		t.Fatalf("apply_to_job text = %q", text)
	}

	text, isErr = h.call(t, "apply_to_job", map[string]any{"job_id": "2"})
	if !isErr || !strings.Contains(text, "conflict") {
		t.Errorf("expected duplicate conflict, got %q", text)
	}

	text = h.mustCall(t, "list_applications", nil)
	if !strings.HasPrefix(text, "4 applications") {
		t.Errorf("list_applications text = %q", text)
	}

	text = h.mustCall(t, "dashboard_stats", nil)
	if text != "4 applications, 3 saved jobs, 1 interviews" {
		t.Errorf("dashboard_stats text = %q", text)
	}
}

func TestApplicantsAndStatus(t *testing.T) {
	h := newHarness(t)

	text, isErr := h.call(t, "list_applicants", map[string]any{"job_id": "1", "employer_id": "2"})
	if !isErr || !strings.Contains(text, "forbidden") {
		t.Errorf("expected forbidden, got %q", text)
	}

	text = h.mustCall(t, "list_applicants", map[string]any{"job_id": "1", "employer_id": "1"})
	if !strings.HasPrefix(text, "1 applicants for job 1") {
		t.Errorf("list_applicants text = %q", text)
	}

	text = h.mustCall(t, "update_application_status", map[string]any{"id": "1", "status": "Accepted"})
	if !strings.HasPrefix(text, "Application 1 is now accepted") {
		t.Errorf("update_application_status text = %q", text)
	}

	text, isErr = h.call(t, "update_application_status", map[string]any{"id": "1", "status": "hired"})
	if !isErr || !strings.Contains(text, "invalid input") {
		t.Errorf("expected invalid status error, got %q", text)
	}
}

func TestSavedJobTools(t *testing.T) {
	h := newHarness(t)
	args := map[string]any{"job_id": "1", "candidate_id": "2"}

	if text := h.mustCall(t, "is_job_saved", args); text != "saved: false" {
		t.Fatalf("is_job_saved text = %q", text)
	}
	h.mustCall(t, "save_job", map[string]any{"job_id": "1", "candidate_id": "2", "notes": "later"})
	if text := h.mustCall(t, "is_job_saved", args); text != "saved: true" {
		t.Fatalf("is_job_saved after save = %q", text)
	}
	if text := h.mustCall(t, "list_saved_jobs", map[string]any{"candidate_id": "2"}); !strings.HasPrefix(text, "4 saved jobs") {
		t.Errorf("list_saved_jobs text = %q", text)
	}
	if text := h.mustCall(t, "unsave_job", args); !strings.HasPrefix(text, "Removed job 1") {
		t.Errorf("unsave_job text = %q", text)
	}
	if text := h.mustCall(t, "unsave_job", args); text != "Job 1 was not saved" {
		t.Errorf("second unsave_job text = %q", text)
	}

	if text, isErr := h.call(t, "save_job", map[string]any{"job_id": "missing", "candidate_id": "2"}); !isErr {
		t.Errorf("expected not found for unknown job, got %q", text)
	}
}

func TestSessionTools(t *testing.T) {
	h := newHarness(t)

	if text := h.mustCall(t, "current_user", nil); !strings.HasPrefix(text, "Nobody is logged in") {
		t.Fatalf("current_user text = %q", text)
	}

	text, isErr := h.call(t, "login", map[string]any{"email": "candidate@example.com", "password": "nope"})
	if !isErr || !strings.Contains(text, "unauthorized") {
		t.Fatalf("expected unauthorized, got %q", text)
	}

	text, isErr = h.call(t, "register", map[string]any{
		"email": "new@example.com", "password": "secret1", "confirm_password": "secret2",
		"name": "New Person", "role": "candidate",
	})
	if !isErr || !strings.Contains(text, "Passwords do not match") {
		t.Fatalf("expected mismatch error, got %q", text)
	}

	text = h.mustCall(t, "register", map[string]any{
		"email": "new@example.com", "password": "secret1", "confirm_password": "secret1",
		"name": "New Person", "role": "employer", "company": "NewCo",
	})
	if !strings.HasPrefix(text, "Registered and logged in as new@example.com") {
		t.Fatalf("register text = %q", text)
	}
	if text := h.mustCall(t, "current_user", nil); !strings.Contains(text, "NewCo") {
		t.Errorf("current_user should show the new profile, got %q", text)
	}
	if text := h.mustCall(t, "dashboard_stats", nil); text != "0 jobs, 0 active, 0 applications" {
		t.Errorf("dashboard_stats text = %q", text)
	}

	if text := h.mustCall(t, "logout", nil); text != "Logged out" {
		t.Errorf("logout text = %q", text)
	}
	if text := h.mustCall(t, "current_user", nil); !strings.HasPrefix(text, "Nobody is logged in") {
		t.Errorf("current_user after logout = %q", text)
	}
}

func TestImportWithoutProviders(t *testing.T) {
	h := newHarness(t)

	text, isErr := h.call(t, "import_jobs", map[string]any{"query": "golang"})
	if !isErr || !strings.Contains(text, "no job providers") {
		t.Errorf("expected disabled importer error, got %q", text)
	}
}

func TestSheetsExport(t *testing.T) {
	h := newHarness(t)

	text := h.mustCall(t, "sheets_export", map[string]any{
		"spreadsheet_id": "sheet-1",
		"tab":            "Apps",
		"kind":           "applications",
		"candidate_id":   "2",
		"replace":        true,
	})
	if !strings.Contains(text, "wrote 3 applications row(s)") {
		t.Fatalf("sheets_export text = %q", text)
	}

	if len(h.sheets.exports) != 1 {
		t.Fatalf("expected one export, got %d", len(h.sheets.exports))
	}
	export := h.sheets.exports[0]
	if !export.Replace || export.Tab != "Apps" || export.Header[0] != "ID" {
		t.Errorf("unexpected export: %+v", export)
	}
	if export.Rows[0][2] != "Senior Frontend Developer" {
		t.Errorf("application row should carry the job title, got %v", export.Rows[0])
	}

	text, isErr := h.call(t, "sheets_export", map[string]any{"spreadsheet_id": "sheet-1", "kind": "keywords"})
	if !isErr || !strings.Contains(text, "Kind must be") {
		t.Errorf("expected kind validation error, got %q", text)
	}
}
