package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendMemory = "memory"
	BackendNeo4j  = "neo4j"

	SessionMemory = "memory"
	SessionFile   = "file"
	SessionRedis  = "redis"
)

// Config contains runtime settings for the job board server
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 8080

	StorageBackend string // memory or neo4j
	SeedMockData   bool

	SessionStore     string // memory, file or redis
	SessionFile      string
	SimulatedLatency time.Duration

	ApplicationDuplicates  string // reject or allow
	ApplicationTransitions string // any or workflow

	RateLimit struct {
		RPS      float64 // zero disables limiting
		Burst    int
		TrustXFF bool // key clients by X-Forwarded-For; only behind a proxy that sets it
	}
	Adzuna struct {
		AppID   string
		AppKey  string
		Country string
	} // Adzuna API credentials, import is disabled without them
	Neo4j struct {
		URI      string
		Username string
		Password string
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	SheetsCredentialsPath string
}

// Load reads an optional .env file and then populates config from
// environment variables
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		LogLevel:               "info",
		Host:                   "0.0.0.0",
		Port:                   "8080",
		StorageBackend:         BackendMemory,
		SeedMockData:           true,
		SessionStore:           SessionMemory,
		SessionFile:            "data/session.json",
		ApplicationDuplicates:  "reject",
		ApplicationTransitions: "any",
	}
	cfg.RateLimit.RPS = 20
	cfg.RateLimit.Burst = 40
	cfg.Adzuna.Country = "us"
	cfg.Redis.Addr = "localhost:6379"

	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.Host, "MCP_HOST")
	setString(&cfg.Port, "PORT")
	setString(&cfg.SessionFile, "SESSION_FILE")
	setString(&cfg.Adzuna.Country, "ADZUNA_COUNTRY")
	setString(&cfg.Redis.Addr, "REDIS_ADDR")

	cfg.StorageBackend = lowerEnv("STORAGE_BACKEND", cfg.StorageBackend)
	cfg.SessionStore = lowerEnv("SESSION_STORE", cfg.SessionStore)
	cfg.ApplicationDuplicates = lowerEnv("APPLICATION_DUPLICATES", cfg.ApplicationDuplicates)
	cfg.ApplicationTransitions = lowerEnv("APPLICATION_TRANSITIONS", cfg.ApplicationTransitions)

	cfg.Adzuna.AppID = os.Getenv("ADZUNA_APP_ID")
	cfg.Adzuna.AppKey = os.Getenv("ADZUNA_APP_KEY")
	cfg.Neo4j.URI = os.Getenv("NEO4J_URI")
	cfg.Neo4j.Username = os.Getenv("NEO4J_USERNAME")
	cfg.Neo4j.Password = os.Getenv("NEO4J_PASSWORD")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.SheetsCredentialsPath = os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH")

	var invalid []string
	if v := os.Getenv("SEED_MOCK_DATA"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			invalid = append(invalid, "SEED_MOCK_DATA")
		}
		cfg.SeedMockData = b
	}
	if v := os.Getenv("SIMULATED_LATENCY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			invalid = append(invalid, "SIMULATED_LATENCY")
		}
		cfg.SimulatedLatency = d
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			invalid = append(invalid, "REDIS_DB")
		}
		cfg.Redis.DB = n
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			invalid = append(invalid, "RATE_LIMIT_RPS")
		}
		cfg.RateLimit.RPS = f
	}
	if v := os.Getenv("RATE_LIMIT_TRUST_XFF"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			invalid = append(invalid, "RATE_LIMIT_TRUST_XFF")
		}
		cfg.RateLimit.TrustXFF = b
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			invalid = append(invalid, "RATE_LIMIT_BURST")
		}
		cfg.RateLimit.Burst = n
	}

	if !oneOf(cfg.StorageBackend, BackendMemory, BackendNeo4j) {
		invalid = append(invalid, "STORAGE_BACKEND")
	}
	if !oneOf(cfg.SessionStore, SessionMemory, SessionFile, SessionRedis) {
		invalid = append(invalid, "SESSION_STORE")
	}
	if !oneOf(cfg.ApplicationDuplicates, "reject", "allow") {
		invalid = append(invalid, "APPLICATION_DUPLICATES")
	}
	if !oneOf(cfg.ApplicationTransitions, "any", "workflow") {
		invalid = append(invalid, "APPLICATION_TRANSITIONS")
	}
	if len(invalid) > 0 {
		return cfg, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	var missingVars []string

	if cfg.StorageBackend == BackendNeo4j {
		if cfg.Neo4j.URI == "" {
			missingVars = append(missingVars, "NEO4J_URI")
		}
		if cfg.Neo4j.Username == "" {
			missingVars = append(missingVars, "NEO4J_USERNAME")
		}
		if cfg.Neo4j.Password == "" {
			missingVars = append(missingVars, "NEO4J_PASSWORD")
		}
	}

	if len(missingVars) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	return cfg, nil
}

// Addr is the listen address
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// ImportEnabled reports whether Adzuna credentials are configured
func (c Config) ImportEnabled() bool {
	return c.Adzuna.AppID != "" && c.Adzuna.AppKey != ""
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func lowerEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return strings.ToLower(v)
	}
	return def
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
