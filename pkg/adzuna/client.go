package adzuna

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL  = "https://api.adzuna.com"
	defaultCountry  = "us"
	defaultPageSize = 20
)

// NewClient instantiates an Adzuna API client
func NewClient(cfg Config) (*Client, error) {
	if cfg.AppID == "" || cfg.AppKey == "" {
		return nil, fmt.Errorf("adzuna: app_id and app_key are required")
	}

	c := &Client{
		appID:      cfg.AppID,
		appKey:     cfg.AppKey,
		country:    cfg.Country,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: cfg.HTTPClient,
		pageSize:   cfg.PageSize,
	}
	if c.country == "" {
		c.country = defaultCountry
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if c.pageSize <= 0 {
		c.pageSize = defaultPageSize
	}
	return c, nil
}

// SearchJobs fetches the first result page for query
func (c *Client) SearchJobs(ctx context.Context, query string, params SearchParams) ([]Job, error) {
	if c == nil {
		return nil, fmt.Errorf("adzuna: client is nil")
	}

	u, err := c.searchURL(query, params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("adzuna: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("adzuna: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("adzuna: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("adzuna: decode response: %w", err)
	}

	jobs := make([]Job, 0, len(payload.Results))
	for _, p := range payload.Results {
		if p.ID == "" {
			continue
		}
		jobs = append(jobs, toJob(p))
	}
	return jobs, nil
}

func (c *Client) searchURL(query string, params SearchParams) (string, error) {
	if query == "" {
		return "", fmt.Errorf("adzuna: query is required")
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("adzuna: parse base url: %w", err)
	}
	u.Path = path.Join(u.Path, "v1", "api", "jobs", c.country, "search", "1")

	values := url.Values{}
	values.Set("app_id", c.appID)
	values.Set("app_key", c.appKey)
	values.Set("what", query)
	values.Set("results_per_page", strconv.Itoa(c.pageSize))
	values.Set("content-type", "application/json")

	switch {
	case params.RemoteOnly:
		values.Set("where", "Remote")
	case params.Location != "":
		values.Set("where", params.Location)
	}
	if params.FullTime {
		values.Set("full_time", "1")
	}
	if params.PartTime {
		values.Set("part_time", "1")
	}
	if params.Contract {
		values.Set("contract", "1")
	}

	u.RawQuery = values.Encode()
	return u.String(), nil
}

func toJob(p posting) Job {
	j := Job{
		ID:           p.ID,
		Title:        p.Title,
		CompanyName:  p.Company.DisplayName,
		Location:     p.Location.DisplayName,
		URL:          p.RedirectURL,
		Description:  p.Description,
		Category:     p.Category.Label,
		ContractTime: p.ContractTime,
		ContractType: p.ContractType,
		SalaryMin:    p.SalaryMin,
		SalaryMax:    p.SalaryMax,
	}
	if p.Created != "" {
		if ts, err := time.Parse(time.RFC3339, p.Created); err == nil {
			j.PostedAt = ts
		}
	}
	return j
}
