package domain

import (
	"time"
)

// EmploymentType is the contract shape of a posting
type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full-time"
	EmploymentPartTime EmploymentType = "part-time"
	EmploymentContract EmploymentType = "contract"
	EmploymentRemote   EmploymentType = "remote"
)

// Valid reports whether t is one of the known employment types
func (t EmploymentType) Valid() bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentRemote:
		return true
	}
	return false
}

// ExperienceLevel is the seniority a posting targets
type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "entry"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelExecutive ExperienceLevel = "executive"
)

func (l ExperienceLevel) Valid() bool {
	switch l {
	case LevelEntry, LevelMid, LevelSenior, LevelExecutive:
		return true
	}
	return false
}

// Salary is a yearly range in a single currency
type Salary struct {
	Min      int    `json:"min" validate:"required,gt=0"`
	Max      int    `json:"max" validate:"required,gtfield=Min"`
	Currency string `json:"currency"`
}

// Job is a posting owned by an employer
type Job struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title" validate:"required"`
	Company             string          `json:"company" validate:"required"`
	Location            string          `json:"location" validate:"required"`
	Type                EmploymentType  `json:"type" validate:"required,employment_type"`
	Salary              Salary          `json:"salary"`
	Description         string          `json:"description" validate:"required"`
	Requirements        []string        `json:"requirements"`
	Benefits            []string        `json:"benefits"`
	PostedAt            time.Time       `json:"posted_at"`
	ApplicationDeadline time.Time       `json:"application_deadline"`
	EmployerID          string          `json:"employer_id"`
	Featured            bool            `json:"featured"`
	Remote              bool            `json:"remote"`
	ExperienceLevel     ExperienceLevel `json:"experience_level" validate:"required,experience_level"`
	Department          string          `json:"department"`
	Skills              []string        `json:"skills"`

	// Source and ExternalID are set only for postings imported from a provider
	Source     string `json:"source,omitempty"`
	ExternalID string `json:"external_id,omitempty"`
}

// DeadlinePassed reports whether applications are closed at now.
// A zero deadline never closes.
func (j Job) DeadlinePassed(now time.Time) bool {
	if j.ApplicationDeadline.IsZero() {
		return false
	}
	return now.After(j.ApplicationDeadline)
}

// Clone returns a deep copy so callers cannot alias stored slices
func (j Job) Clone() Job {
	j.Requirements = cloneStrings(j.Requirements)
	j.Benefits = cloneStrings(j.Benefits)
	j.Skills = cloneStrings(j.Skills)
	return j
}

// JobPatch carries a partial update; nil fields are left untouched
type JobPatch struct {
	Title               *string          `json:"title,omitempty"`
	Company             *string          `json:"company,omitempty"`
	Location            *string          `json:"location,omitempty"`
	Type                *EmploymentType  `json:"type,omitempty"`
	Salary              *Salary          `json:"salary,omitempty"`
	Description         *string          `json:"description,omitempty"`
	Requirements        *[]string        `json:"requirements,omitempty"`
	Benefits            *[]string        `json:"benefits,omitempty"`
	ApplicationDeadline *time.Time       `json:"application_deadline,omitempty"`
	Featured            *bool            `json:"featured,omitempty"`
	Remote              *bool            `json:"remote,omitempty"`
	ExperienceLevel     *ExperienceLevel `json:"experience_level,omitempty"`
	Department          *string          `json:"department,omitempty"`
	Skills              *[]string        `json:"skills,omitempty"`
}

// Apply merges the patch into j and returns the result
func (p JobPatch) Apply(j Job) Job {
	j = j.Clone()
	if p.Title != nil {
		j.Title = *p.Title
	}
	if p.Company != nil {
		j.Company = *p.Company
	}
	if p.Location != nil {
		j.Location = *p.Location
	}
	if p.Type != nil {
		j.Type = *p.Type
	}
	if p.Salary != nil {
		j.Salary = *p.Salary
	}
	if p.Description != nil {
		j.Description = *p.Description
	}
	if p.Requirements != nil {
		j.Requirements = cloneStrings(*p.Requirements)
	}
	if p.Benefits != nil {
		j.Benefits = cloneStrings(*p.Benefits)
	}
	if p.ApplicationDeadline != nil {
		j.ApplicationDeadline = *p.ApplicationDeadline
	}
	if p.Featured != nil {
		j.Featured = *p.Featured
	}
	if p.Remote != nil {
		j.Remote = *p.Remote
	}
	if p.ExperienceLevel != nil {
		j.ExperienceLevel = *p.ExperienceLevel
	}
	if p.Department != nil {
		j.Department = *p.Department
	}
	if p.Skills != nil {
		j.Skills = NormalizeSkills(*p.Skills)
	}
	return j
}

// JobSearchFilters describe the directory search; zero values are wildcards
type JobSearchFilters struct {
	Query           string          `json:"query,omitempty"`
	Location        string          `json:"location,omitempty"`
	Type            EmploymentType  `json:"type,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experience_level,omitempty"`
	RemoteOnly      bool            `json:"remote_only,omitempty"`
}

// ApplicationStatus tracks where an application sits in the hiring pipeline
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "pending"
	StatusReviewing ApplicationStatus = "reviewing"
	StatusInterview ApplicationStatus = "interview"
	StatusAccepted  ApplicationStatus = "accepted"
	StatusRejected  ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReviewing, StatusInterview, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Final reports whether no further transition is expected
func (s ApplicationStatus) Final() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Application is a candidate's submission for a job
type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"job_id"`
	CandidateID string            `json:"candidate_id"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"applied_at"`
	CoverLetter string            `json:"cover_letter"`
	ResumeRef   string            `json:"resume_ref,omitempty"`
	Notes       string            `json:"notes,omitempty"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// SavedJob is a candidate bookmark
type SavedJob struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	CandidateID string    `json:"candidate_id"`
	SavedAt     time.Time `json:"saved_at"`
	Notes       string    `json:"notes,omitempty"`
}

// Role separates the two kinds of account
type Role string

const (
	RoleEmployer  Role = "employer"
	RoleCandidate Role = "candidate"
)

func (r Role) Valid() bool {
	return r == RoleEmployer || r == RoleCandidate
}

// Profile holds the role-conditional optional user fields
type Profile struct {
	Company    string   `json:"company,omitempty"`
	Title      string   `json:"title,omitempty"`
	Location   string   `json:"location,omitempty"`
	Bio        string   `json:"bio,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Experience string   `json:"experience,omitempty"`
}

// User is an account known to the session store
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
	Profile
	CreatedAt time.Time `json:"created_at"`

	PasswordHash string `json:"-"`
}

// Clone returns a deep copy of u
func (u User) Clone() User {
	u.Skills = cloneStrings(u.Skills)
	return u
}

// NormalizeSkills drops blanks and exact duplicates, keeping first-seen order
func NormalizeSkills(skills []string) []string {
	if skills == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
