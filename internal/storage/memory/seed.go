package memory

import (
	"time"

	"github.com/honeycarbs/jobboard/internal/domain"
)

// DemoPassword is the password every seeded account accepts
const DemoPassword = "password"

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedJobs returns the demo postings in storage order
func SeedJobs() []domain.Job {
	return []domain.Job{
		{
			ID:       "1",
			Title:    "Senior Frontend Developer",
			Company:  "TechCorp Inc.",
			Location: "San Francisco, CA",
			Type:     domain.EmploymentFullTime,
			Salary:   domain.Salary{Min: 120000, Max: 160000, Currency: "USD"},
			Description: "We are looking for a Senior Frontend Developer to join our dynamic team. " +
				"You will be responsible for building user-facing features using modern web technologies.",
			Requirements: []string{
				"5+ years of experience with React and TypeScript",
				"Strong understanding of modern CSS and responsive design",
				"Experience with state management libraries (Redux, Zustand)",
				"Familiarity with testing frameworks (Jest, Cypress)",
				"Bachelor's degree in Computer Science or equivalent experience",
			},
			Benefits: []string{
				"Competitive salary and equity package",
				"Comprehensive health, dental, and vision insurance",
				"Flexible work arrangements and remote options",
				"401(k) with company matching",
				"Professional development budget",
			},
			PostedAt:            day("2024-01-15"),
			ApplicationDeadline: day("2024-02-15"),
			EmployerID:          "1",
			Featured:            true,
			Remote:              true,
			ExperienceLevel:     domain.LevelSenior,
			Department:          "Engineering",
			Skills:              []string{"React", "TypeScript", "CSS", "JavaScript", "Redux"},
		},
		{
			ID:       "2",
			Title:    "Product Manager",
			Company:  "InnovateLabs",
			Location: "New York, NY",
			Type:     domain.EmploymentFullTime,
			Salary:   domain.Salary{Min: 110000, Max: 140000, Currency: "USD"},
			Description: "Join our product team to drive the development of cutting-edge software solutions. " +
				"You will work closely with engineering, design, and business teams.",
			Requirements: []string{
				"3+ years of product management experience",
				"Strong analytical and problem-solving skills",
				"Experience with agile development methodologies",
				"Excellent communication and leadership skills",
				"MBA or equivalent experience preferred",
			},
			Benefits: []string{
				"Competitive salary and performance bonuses",
				"Health and wellness benefits",
				"Flexible PTO policy",
				"Stock options",
				"Learning and development opportunities",
			},
			PostedAt:            day("2024-01-20"),
			ApplicationDeadline: day("2024-02-20"),
			EmployerID:          "2",
			ExperienceLevel:     domain.LevelMid,
			Department:          "Product",
			Skills:              []string{"Product Management", "Analytics", "Agile", "Strategy"},
		},
		{
			ID:       "3",
			Title:    "UX/UI Designer",
			Company:  "DesignStudio Pro",
			Location: "Austin, TX",
			Type:     domain.EmploymentFullTime,
			Salary:   domain.Salary{Min: 85000, Max: 110000, Currency: "USD"},
			Description: "We are seeking a talented UX/UI Designer to create intuitive and beautiful " +
				"user experiences for our digital products.",
			Requirements: []string{
				"3+ years of UX/UI design experience",
				"Proficiency in Figma, Sketch, or Adobe Creative Suite",
				"Strong portfolio demonstrating design thinking",
				"Understanding of user research and usability testing",
				"Knowledge of HTML/CSS is a plus",
			},
			Benefits: []string{
				"Creative and collaborative work environment",
				"Health insurance and retirement plans",
				"Flexible work schedule",
				"Design conference attendance budget",
				"Latest design tools and equipment",
			},
			PostedAt:            day("2024-01-25"),
			ApplicationDeadline: day("2024-02-25"),
			EmployerID:          "3",
			Featured:            true,
			Remote:              true,
			ExperienceLevel:     domain.LevelMid,
			Department:          "Design",
			Skills:              []string{"Figma", "UI Design", "UX Research", "Prototyping", "User Testing"},
		},
		{
			ID:       "4",
			Title:    "Backend Engineer",
			Company:  "DataFlow Systems",
			Location: "Seattle, WA",
			Type:     domain.EmploymentFullTime,
			Salary:   domain.Salary{Min: 130000, Max: 170000, Currency: "USD"},
			Description: "Join our backend team to build scalable and reliable systems that power " +
				"our data processing platform.",
			Requirements: []string{
				"4+ years of backend development experience",
				"Strong knowledge of Python, Go, or Java",
				"Experience with cloud platforms (AWS, GCP, Azure)",
				"Database design and optimization skills",
				"Understanding of microservices architecture",
			},
			Benefits: []string{
				"Top-tier compensation package",
				"Comprehensive benefits package",
				"Remote-first culture",
				"Annual learning stipend",
				"Sabbatical program after 5 years",
			},
			PostedAt:            day("2024-01-30"),
			ApplicationDeadline: day("2024-03-01"),
			EmployerID:          "4",
			Remote:              true,
			ExperienceLevel:     domain.LevelSenior,
			Department:          "Engineering",
			Skills:              []string{"Python", "AWS", "Microservices", "PostgreSQL", "Docker"},
		},
		{
			ID:       "5",
			Title:    "Marketing Coordinator",
			Company:  "GrowthCo",
			Location: "Chicago, IL",
			Type:     domain.EmploymentFullTime,
			Salary:   domain.Salary{Min: 55000, Max: 70000, Currency: "USD"},
			Description: "Support our marketing team in executing campaigns and driving brand awareness " +
				"across multiple channels.",
			Requirements: []string{
				"1-2 years of marketing experience",
				"Strong written and verbal communication skills",
				"Experience with social media platforms",
				"Basic knowledge of marketing analytics",
				"Bachelor's degree in Marketing or related field",
			},
			Benefits: []string{
				"Competitive entry-level salary",
				"Health and dental insurance",
				"Professional development opportunities",
				"Flexible work arrangements",
				"Team building events and company culture",
			},
			PostedAt:            day("2024-02-01"),
			ApplicationDeadline: day("2024-03-01"),
			EmployerID:          "5",
			ExperienceLevel:     domain.LevelEntry,
			Department:          "Marketing",
			Skills:              []string{"Social Media", "Content Marketing", "Analytics", "Communication"},
		},
		{
			ID:       "6",
			Title:    "DevOps Engineer",
			Company:  "CloudTech Solutions",
			Location: "Remote",
			Type:     domain.EmploymentFullTime,
			Salary:   domain.Salary{Min: 115000, Max: 145000, Currency: "USD"},
			Description: "Help us build and maintain robust infrastructure and deployment pipelines " +
				"for our cloud-native applications.",
			Requirements: []string{
				"3+ years of DevOps/Infrastructure experience",
				"Strong knowledge of Kubernetes and Docker",
				"Experience with CI/CD pipelines",
				"Cloud platform expertise (AWS/GCP/Azure)",
				"Infrastructure as Code (Terraform, CloudFormation)",
			},
			Benefits: []string{
				"Fully remote position",
				"Competitive salary and equity",
				"Health, dental, and vision coverage",
				"Home office setup budget",
				"Continuous learning opportunities",
			},
			PostedAt:            day("2024-02-05"),
			ApplicationDeadline: day("2024-03-05"),
			EmployerID:          "6",
			Featured:            true,
			Remote:              true,
			ExperienceLevel:     domain.LevelMid,
			Department:          "Engineering",
			Skills:              []string{"Kubernetes", "Docker", "AWS", "Terraform", "CI/CD"},
		},
	}
}

const demoResume = "/resumes/sarah-johnson-resume.pdf"

// SeedApplications returns the demo candidate's applications
func SeedApplications() []domain.Application {
	return []domain.Application{
		{
			ID:          "1",
			JobID:       "1",
			CandidateID: "2",
			Status:      domain.StatusReviewing,
			AppliedAt:   day("2024-01-20"),
			CoverLetter: "I am excited to apply for the Senior Frontend Developer position...",
			ResumeRef:   demoResume,
			UpdatedAt:   day("2024-01-22"),
		},
		{
			ID:          "2",
			JobID:       "3",
			CandidateID: "2",
			Status:      domain.StatusInterview,
			AppliedAt:   day("2024-01-25"),
			CoverLetter: "As a passionate UX/UI designer with 3 years of experience...",
			ResumeRef:   demoResume,
			Notes:       "Interview scheduled for next Tuesday",
			UpdatedAt:   day("2024-01-28"),
		},
		{
			ID:          "3",
			JobID:       "6",
			CandidateID: "2",
			Status:      domain.StatusPending,
			AppliedAt:   day("2024-02-01"),
			CoverLetter: "I would love to join your DevOps team...",
			ResumeRef:   demoResume,
			UpdatedAt:   day("2024-02-01"),
		},
	}
}

// SeedSavedJobs returns the demo candidate's bookmarks
func SeedSavedJobs() []domain.SavedJob {
	return []domain.SavedJob{
		{ID: "1", JobID: "2", CandidateID: "2", SavedAt: day("2024-01-18"), Notes: "Interesting product role, good company culture"},
		{ID: "2", JobID: "4", CandidateID: "2", SavedAt: day("2024-01-30"), Notes: "Great backend opportunity, remote-friendly"},
		{ID: "3", JobID: "5", CandidateID: "2", SavedAt: day("2024-02-02")},
	}
}

// SeedUsers returns the demo employer and candidate. passwordHash should be
// the hash of DemoPassword.
func SeedUsers(passwordHash string) []domain.User {
	return []domain.User{
		{
			ID:    "1",
			Email: "employer@example.com",
			Name:  "John Smith",
			Role:  domain.RoleEmployer,
			Profile: domain.Profile{
				Company:  "TechCorp Inc.",
				Title:    "HR Manager",
				Location: "San Francisco, CA",
			},
			CreatedAt:    day("2024-01-15"),
			PasswordHash: passwordHash,
		},
		{
			ID:    "2",
			Email: "candidate@example.com",
			Name:  "Sarah Johnson",
			Role:  domain.RoleCandidate,
			Profile: domain.Profile{
				Title:      "Frontend Developer",
				Location:   "New York, NY",
				Bio:        "Passionate frontend developer with 3 years of experience in React and TypeScript.",
				Skills:     []string{"React", "TypeScript", "Next.js", "Tailwind CSS"},
				Experience: "3 years",
			},
			CreatedAt:    day("2024-02-01"),
			PasswordHash: passwordHash,
		},
	}
}
