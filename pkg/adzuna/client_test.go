package adzuna

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchJobsDecodesPostings(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/api/jobs/gb/search/1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count":2,"results":[
			{"id":"42","title":"Go Developer","company":{"display_name":"Gopher Ltd"},
			 "location":{"display_name":"London"},"category":{"label":"IT Jobs"},
			 "contract_time":"full_time","created":"2024-03-01T10:00:00Z",
			 "salary_min":50000,"salary_max":70000},
			{"title":"no id, dropped"}]}`))
	}))
	defer srv.Close()

	c, err := NewClient(Config{AppID: "id", AppKey: "key", Country: "gb", BaseURL: srv.URL + "/"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	jobs, err := c.SearchJobs(context.Background(), "golang", SearchParams{RemoteOnly: true, FullTime: true})
	if err != nil {
		t.Fatalf("SearchJobs: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	j := jobs[0]
	if j.ID != "42" || j.CompanyName != "Gopher Ltd" || j.Category != "IT Jobs" || j.ContractTime != "full_time" {
		t.Errorf("unexpected job: %+v", j)
	}
	if j.PostedAt.IsZero() {
		t.Error("expected PostedAt to be parsed")
	}
	if gotQuery["what"][0] != "golang" || gotQuery["where"][0] != "Remote" || gotQuery["full_time"][0] != "1" {
		t.Errorf("unexpected query: %v", gotQuery)
	}
}

func TestSearchJobsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, _ := NewClient(Config{AppID: "id", AppKey: "key", BaseURL: srv.URL})
	if _, err := c.SearchJobs(context.Background(), "go", SearchParams{}); err == nil {
		t.Fatal("expected error for 401 response")
	}
}

func TestNewClientRequiresCredentials(t *testing.T) {
	if _, err := NewClient(Config{AppID: "id"}); err == nil {
		t.Fatal("expected error without app key")
	}
}
