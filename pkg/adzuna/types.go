package adzuna

import (
	"net/http"
	"time"
)

// Config defines Adzuna API client settings
type Config struct {
	AppID      string
	AppKey     string
	Country    string
	BaseURL    string
	HTTPClient *http.Client
	PageSize   int
}

// Client queries Adzuna job search API
type Client struct {
	appID      string
	appKey     string
	country    string
	baseURL    string
	httpClient *http.Client
	pageSize   int
}

// SearchParams narrow a search. FullTime and PartTime map to Adzuna's
// contract-time switches.
type SearchParams struct {
	Location   string
	RemoteOnly bool
	FullTime   bool
	PartTime   bool
	Contract   bool
}

type searchResponse struct {
	Count   int       `json:"count"`
	Results []posting `json:"results"`
}

type posting struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Created      string `json:"created"`
	RedirectURL  string `json:"redirect_url"`
	ContractTime string `json:"contract_time"`
	ContractType string `json:"contract_type"`
	Company      struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Category struct {
		Label string `json:"label"`
	} `json:"category"`
	SalaryMin float64 `json:"salary_min"`
	SalaryMax float64 `json:"salary_max"`
}

// Job is an Adzuna posting flattened to the fields the board uses
type Job struct {
	ID           string
	Title        string
	CompanyName  string
	Location     string
	URL          string
	Description  string
	Category     string
	ContractTime string // full_time, part_time or empty
	ContractType string // permanent, contract or empty
	PostedAt     time.Time
	SalaryMin    float64
	SalaryMax    float64
}
