package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// State of the current-user slot
type State int

const (
	Anonymous State = iota
	Authenticating
	Authenticated
)

func (s State) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// RegisterInput is everything needed to create an account
type RegisterInput struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Name     string      `json:"name"`
	Role     domain.Role `json:"role"`
	domain.Profile
}

type Service interface {
	// Initialize restores the current user from durable storage
	Initialize(ctx context.Context) error

	Login(ctx context.Context, email, password string) bool
	Authenticate(ctx context.Context, email, password string) (domain.User, error)

	Register(ctx context.Context, in RegisterInput) bool
	SignUp(ctx context.Context, in RegisterInput) (domain.User, error)

	Logout(ctx context.Context) error

	// CurrentUser returns false when nobody is logged in
	CurrentUser() (domain.User, bool)
	State() State
}

// Option configures Service
type Option func(*config)

type config struct {
	users   UserRepository
	storage Storage
	hasher  Hasher
	logger  *logging.Logger
	clock   func() time.Time
	newID   func() string
	latency time.Duration
	sleep   func(time.Duration)
}

func WithUserRepository(users UserRepository) Option {
	return func(c *config) {
		c.users = users
	}
}

func WithStorage(storage Storage) Option {
	return func(c *config) {
		c.storage = storage
	}
}

func WithHasher(h Hasher) Option {
	return func(c *config) {
		c.hasher = h
	}
}

func WithLogger(logger *logging.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(c *config) {
		c.newID = newID
	}
}

// WithLatency delays every login and register by d. The delay is not
// interrupted by context cancellation.
func WithLatency(d time.Duration) Option {
	return func(c *config) {
		c.latency = d
	}
}

// WithSleep replaces time.Sleep, for tests
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *config) {
		c.sleep = sleep
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		hasher: NewBcryptHasher(0),
		clock:  time.Now,
		newID:  uuid.NewString,
		sleep:  time.Sleep,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.users == nil {
		return nil, fmt.Errorf("session.Service: user repository is required")
	}
	if cfg.storage == nil {
		return nil, fmt.Errorf("session.Service: storage is required")
	}
	if cfg.logger == nil {
		cfg.logger = logging.NewNop()
	}

	return &service{
		users:   cfg.users,
		storage: cfg.storage,
		hasher:  cfg.hasher,
		logger:  cfg.logger.Named("session"),
		clock:   cfg.clock,
		newID:   cfg.newID,
		latency: cfg.latency,
		sleep:   cfg.sleep,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(users UserRepository, storage Storage, hasher Hasher, latency time.Duration, logger *logging.Logger) (Service, error) {
	return NewService(
		WithUserRepository(users),
		WithStorage(storage),
		WithHasher(hasher),
		WithLatency(latency),
		WithLogger(logger),
	)
}

type service struct {
	users   UserRepository
	storage Storage
	hasher  Hasher
	logger  *logging.Logger
	clock   func() time.Time
	newID   func() string
	latency time.Duration
	sleep   func(time.Duration)

	mu      sync.Mutex
	state   State
	current *domain.User
}

// Initialize reads the durable record once. Anything missing or unreadable
// leaves the session anonymous.
func (s *service) Initialize(ctx context.Context) error {
	raw, err := s.storage.Load(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.setAnonymous()
			return nil
		}
		s.setAnonymous()
		return fmt.Errorf("session: load: %w", err)
	}

	var u domain.User
	if err := json.Unmarshal(raw, &u); err != nil || u.ID == "" {
		s.logger.Warn("discarding unreadable session record", "error", err)
		s.setAnonymous()
		return nil
	}

	s.mu.Lock()
	s.current = &u
	s.state = Authenticated
	s.mu.Unlock()

	s.logger.Info("session restored", "user_id", u.ID)
	return nil
}

func (s *service) Login(ctx context.Context, email, password string) bool {
	_, err := s.Authenticate(ctx, email, password)
	return err == nil
}

// Authenticate checks the password against the stored hash of the user with email
func (s *service) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	s.begin()

	u, err := s.users.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.setAnonymous()
		return domain.User{}, domain.ErrInvalidCredentials
	case err != nil:
		s.setAnonymous()
		return domain.User{}, fmt.Errorf("session: find user: %w", err)
	}

	if !s.hasher.Compare(u.PasswordHash, password) {
		s.setAnonymous()
		s.logger.Info("login rejected", "user_id", u.ID)
		return domain.User{}, domain.ErrInvalidCredentials
	}

	if err := s.establish(ctx, u); err != nil {
		return domain.User{}, err
	}
	s.logger.Info("user logged in", "user_id", u.ID, "role", u.Role)
	return u, nil
}

func (s *service) Register(ctx context.Context, in RegisterInput) bool {
	_, err := s.SignUp(ctx, in)
	return err == nil
}

// SignUp creates the account and logs it in
func (s *service) SignUp(ctx context.Context, in RegisterInput) (domain.User, error) {
	s.begin()

	_, err := s.users.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		s.setAnonymous()
		return domain.User{}, domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrNotFound):
		s.setAnonymous()
		return domain.User{}, fmt.Errorf("session: find user: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.setAnonymous()
		return domain.User{}, err
	}

	u := domain.User{
		ID:           s.newID(),
		Email:        strings.TrimSpace(in.Email),
		Name:         in.Name,
		Role:         in.Role,
		Profile:      in.Profile,
		CreatedAt:    s.clock(),
		PasswordHash: hash,
	}
	u.Skills = domain.NormalizeSkills(u.Skills)

	if err := s.users.Create(ctx, u); err != nil {
		s.setAnonymous()
		return domain.User{}, err
	}

	if err := s.establish(ctx, u); err != nil {
		return domain.User{}, err
	}
	s.logger.Info("user registered", "user_id", u.ID, "role", u.Role)
	return u, nil
}

// Logout clears the slot and the durable record
func (s *service) Logout(ctx context.Context) error {
	s.setAnonymous()
	if err := s.storage.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf("session: delete: %w", err)
	}
	return nil
}

func (s *service) CurrentUser() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return domain.User{}, false
	}
	return s.current.Clone(), true
}

func (s *service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// begin marks the slot authenticating and waits out the simulated latency
func (s *service) begin() {
	s.mu.Lock()
	s.state = Authenticating
	s.mu.Unlock()

	if s.latency > 0 {
		s.sleep(s.latency)
	}
}

func (s *service) establish(ctx context.Context, u domain.User) error {
	u.PasswordHash = ""
	raw, err := json.Marshal(u)
	if err != nil {
		s.setAnonymous()
		return fmt.Errorf("session: encode user: %w", err)
	}
	if err := s.storage.Save(ctx, StorageKey, raw); err != nil {
		s.setAnonymous()
		return fmt.Errorf("session: save: %w", err)
	}

	s.mu.Lock()
	s.current = &u
	s.state = Authenticated
	s.mu.Unlock()
	return nil
}

func (s *service) setAnonymous() {
	s.mu.Lock()
	s.current = nil
	s.state = Anonymous
	s.mu.Unlock()
}

var _ Service = (*service)(nil)
