package httpapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/honeycarbs/jobboard/internal/domain/application"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/internal/domain/portal"
	"github.com/honeycarbs/jobboard/internal/domain/savedjob"
	"github.com/honeycarbs/jobboard/internal/domain/session"
	"github.com/honeycarbs/jobboard/internal/httpapi"
	"github.com/honeycarbs/jobboard/internal/storage/memory"
	"github.com/honeycarbs/jobboard/internal/storage/sessionstore"
)

var beforeDeadlines = time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

func newAPI(t *testing.T) http.Handler {
	t.Helper()

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
	apps, err := application.NewService(
		application.WithRepository(store.Applications),
		application.WithTransitionPolicy(application.TransitionsWorkflow),
	)
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
	sess, err := session.NewService(
		session.WithUserRepository(store.Users),
		session.WithStorage(sessionstore.NewMemory()),
		session.WithHasher(hasher),
	)
	if err != nil {
		t.Fatal(err)
	}

	return httpapi.NewRouter(httpapi.Deps{
		Jobs:         jobs,
		Applications: apps,
		SavedJobs:    saved,
		Session:      sess,
		Portal:       p.WithClock(func() time.Time { return beforeDeadlines }),
	}, nil)
}

func do(t *testing.T, h http.Handler, method, path, body string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	out := map[string]any{}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, path, rec.Body.String(), err)
		}
	}
	return rec.Code, out
}

func TestHealth(t *testing.T) {
	code, body := do(t, newAPI(t), http.MethodGet, "/api/v1/health", "")
	if code != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("health = %d %v", code, body)
	}
}

func TestJobReads(t *testing.T) {
	api := newAPI(t)

	code, body := do(t, api, http.MethodGet, "/api/v1/jobs", "")
	if code != http.StatusOK || body["count"] != float64(6) {
		t.Fatalf("list jobs = %d count=%v", code, body["count"])
	}

	code, body = do(t, api, http.MethodGet, "/api/v1/jobs?q=design&remote=true", "")
	if code != http.StatusOK || body["count"] != float64(1) {
		t.Fatalf("filtered search = %d count=%v", code, body["count"])
	}

	code, body = do(t, api, http.MethodGet, "/api/v1/jobs/featured", "")
	if jobs, _ := body["jobs"].([]any); code != http.StatusOK || len(jobs) != 3 {
		t.Fatalf("featured = %d %v", code, body)
	}

	code, body = do(t, api, http.MethodGet, "/api/v1/jobs/1", "")
	if code != http.StatusOK || body["title"] != "Senior Frontend Developer" {
		t.Fatalf("get job = %d %v", code, body)
	}

	code, _ = do(t, api, http.MethodGet, "/api/v1/jobs/nope", "")
	if code != http.StatusNotFound {
		t.Fatalf("missing job = %d", code)
	}
}

func TestCreateUpdateDeleteJob(t *testing.T) {
	api := newAPI(t)

	code, body := do(t, api, http.MethodPost, "/api/v1/jobs", `{"title":"Platform Engineer","employer_id":"1"}`)
	if code != http.StatusBadRequest {
		t.Fatalf("invalid create = %d %v", code, body)
	}
	if fields, _ := body["fields"].(map[string]any); fields["company"] != "This field is required" {
		t.Errorf("fields = %v", body["fields"])
	}

	code, body = do(t, api, http.MethodPost, "/api/v1/jobs", `{
		"title": "Platform Engineer", "company": "TechCorp Inc.", "location": "Remote",
		"type": "full-time", "salary": {"min": 100000, "max": 130000},
		"description": "Run the platform", "experience_level": "mid", "employer_id": "1"
	}`)
	if code != http.StatusCreated {
		t.Fatalf("create = %d %v", code, body)
	}
	id, _ := body["id"].(string)
	if id == "" {
		t.Fatal("created job has no id")
	}

	code, body = do(t, api, http.MethodPatch, "/api/v1/jobs/"+id, `{"title":"Staff Platform Engineer"}`)
	if code != http.StatusOK || body["title"] != "Staff Platform Engineer" {
		t.Fatalf("update = %d %v", code, body)
	}

	code, _ = do(t, api, http.MethodPatch, "/api/v1/jobs/"+id, `{"salary":{"min":100000,"max":5}}`)
	if code != http.StatusBadRequest {
		t.Fatalf("invalid salary update = %d", code)
	}

	code, body = do(t, api, http.MethodGet, "/api/v1/employers/1/jobs", "")
	if jobs, _ := body["jobs"].([]any); code != http.StatusOK || len(jobs) != 2 {
		t.Fatalf("employer jobs = %d %v", code, body)
	}

	if code, _ = do(t, api, http.MethodDelete, "/api/v1/jobs/"+id, ""); code != http.StatusNoContent {
		t.Fatalf("delete = %d", code)
	}
	if code, _ = do(t, api, http.MethodDelete, "/api/v1/jobs/"+id, ""); code != http.StatusNotFound {
		t.Fatalf("second delete = %d", code)
	}
}

func TestApplicationFlow(t *testing.T) {
	api := newAPI(t)

	code, body := do(t, api, http.MethodPost, "/api/v1/jobs/2/applications", `{"candidate_id":"2","cover_letter":"hi","resume_ref":"/resumes/cv.pdf"}`)
	if code != http.StatusCreated || body["status"] != "pending" {
		t.Fatalf("apply = %d %v", code, body)
	}
	appID, _ := body["id"].(string)

	if code, _ = do(t, api, http.MethodPost, "/api/v1/jobs/2/applications", `{"candidate_id":"2"}`); code != http.StatusConflict {
		t.Fatalf("duplicate apply = %d", code)
	}
	if code, _ = do(t, api, http.MethodPost, "/api/v1/jobs/nope/applications", `{"candidate_id":"2"}`); code != http.StatusNotFound {
		t.Fatalf("apply to missing job = %d", code)
	}
	code, body = do(t, api, http.MethodPost, "/api/v1/jobs/4/applications", `{"candidate_id":"2","cover_letter":"  "}`)
	if code != http.StatusBadRequest || body["error"] != "Please provide a cover letter" {
		t.Fatalf("incomplete apply = %d %v", code, body)
	}
	if code, _ = do(t, api, http.MethodPost, "/api/v1/jobs/4/applications", `{"candidate_id":"1","cover_letter":"hi","resume_ref":"/resumes/cv.pdf"}`); code != http.StatusForbidden {
		t.Fatalf("employer apply = %d", code)
	}

	if code, _ = do(t, api, http.MethodPatch, "/api/v1/applications/"+appID+"/status", `{"status":"accepted"}`); code != http.StatusConflict {
		t.Fatalf("workflow jump = %d", code)
	}
	code, body = do(t, api, http.MethodPatch, "/api/v1/applications/"+appID+"/status", `{"status":"reviewing"}`)
	if code != http.StatusOK || body["status"] != "reviewing" {
		t.Fatalf("status update = %d %v", code, body)
	}

	code, body = do(t, api, http.MethodGet, "/api/v1/jobs/2/applications?employer_id=2", "")
	if apps, _ := body["applications"].([]any); code != http.StatusOK || len(apps) != 1 {
		t.Fatalf("applicants = %d %v", code, body)
	}
	if code, _ = do(t, api, http.MethodGet, "/api/v1/jobs/2/applications?employer_id=1", ""); code != http.StatusForbidden {
		t.Fatalf("foreign employer = %d", code)
	}

	code, body = do(t, api, http.MethodGet, "/api/v1/candidates/2/stats", "")
	if code != http.StatusOK || body["total_applications"] != float64(4) {
		t.Fatalf("candidate stats = %d %v", code, body)
	}
}

func TestSavedJobs(t *testing.T) {
	api := newAPI(t)

	code, body := do(t, api, http.MethodPut, "/api/v1/candidates/2/saved-jobs/1", "")
	if code != http.StatusOK || body["job_id"] != "1" {
		t.Fatalf("save = %d %v", code, body)
	}
	code, body = do(t, api, http.MethodGet, "/api/v1/candidates/2/saved-jobs/1", "")
	if code != http.StatusOK || body["saved"] != true {
		t.Fatalf("is saved = %d %v", code, body)
	}
	code, body = do(t, api, http.MethodGet, "/api/v1/candidates/2/saved-jobs", "")
	if saved, _ := body["saved_jobs"].([]any); code != http.StatusOK || len(saved) != 4 {
		t.Fatalf("list saved = %d %v", code, body)
	}
	code, body = do(t, api, http.MethodDelete, "/api/v1/candidates/2/saved-jobs/1", "")
	if code != http.StatusOK || body["removed"] != true {
		t.Fatalf("unsave = %d %v", code, body)
	}
}

func TestSessionRoutes(t *testing.T) {
	api := newAPI(t)

	code, body := do(t, api, http.MethodGet, "/api/v1/session", "")
	if code != http.StatusOK || body["state"] != session.Anonymous.String() {
		t.Fatalf("session = %d %v", code, body)
	}

	if code, _ = do(t, api, http.MethodPost, "/api/v1/session/login", `{"email":"employer@example.com","password":"wrong"}`); code != http.StatusUnauthorized {
		t.Fatalf("bad login = %d", code)
	}
	if code, _ = do(t, api, http.MethodPost, "/api/v1/session/login", `{"email":"employer@example.com"}`); code != http.StatusBadRequest {
		t.Fatalf("login without password = %d", code)
	}

	code, body = do(t, api, http.MethodPost, "/api/v1/session/login", `{"email":"employer@example.com","password":"password"}`)
	if code != http.StatusOK || body["id"] != "1" {
		t.Fatalf("login = %d %v", code, body)
	}
	if _, leaked := body["password_hash"]; leaked {
		t.Error("password hash must not be serialized")
	}

	code, body = do(t, api, http.MethodGet, "/api/v1/employers/1/stats", "")
	if code != http.StatusOK || body["total_jobs"] != float64(1) {
		t.Fatalf("employer stats = %d %v", code, body)
	}

	if code, _ = do(t, api, http.MethodPost, "/api/v1/session/logout", ""); code != http.StatusNoContent {
		t.Fatalf("logout = %d", code)
	}

	code, body = do(t, api, http.MethodPost, "/api/v1/session/register", `{
		"email":"employer@example.com","password":"secret1","confirm_password":"secret1",
		"name":"Dup","role":"employer"
	}`)
	if code != http.StatusConflict {
		t.Fatalf("duplicate register = %d %v", code, body)
	}

	code, body = do(t, api, http.MethodPost, "/api/v1/session/register", `{
		"email":"fresh@example.com","password":"secret1","confirm_password":"secret1",
		"name":"Fresh","role":"candidate","skills":["Go"]
	}`)
	if code != http.StatusCreated || body["email"] != "fresh@example.com" {
		t.Fatalf("register = %d %v", code, body)
	}

	code, body = do(t, api, http.MethodGet, "/api/v1/session", "")
	if body["state"] != session.Authenticated.String() {
		t.Fatalf("session after register = %d %v", code, body)
	}
}
