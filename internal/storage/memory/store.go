package memory

// Store bundles one repository per domain store
type Store struct {
	Jobs         *JobRepository
	Applications *ApplicationRepository
	SavedJobs    *SavedJobRepository
	Users        *UserRepository
}

// NewStore returns empty repositories, or the demo data when seed is set.
// demoHash is the stored hash of DemoPassword for the seeded accounts.
func NewStore(seed bool, demoHash string) *Store {
	if !seed {
		return &Store{
			Jobs:         NewJobRepository(),
			Applications: NewApplicationRepository(),
			SavedJobs:    NewSavedJobRepository(),
			Users:        NewUserRepository(),
		}
	}
	return &Store{
		Jobs:         NewJobRepository(SeedJobs()...),
		Applications: NewApplicationRepository(SeedApplications()...),
		SavedJobs:    NewSavedJobRepository(SeedSavedJobs()...),
		Users:        NewUserRepository(SeedUsers(demoHash)...),
	}
}
