// Package seed loads sample users, jobs, and the starter skill taxonomy into
// the store and search index for demos and local development.
package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperwork/susume/internal/models"
	"github.com/hyperwork/susume/internal/search"
	"github.com/hyperwork/susume/internal/store"
)

// Counts reports how many records were seeded.
type Counts struct {
	Skills int
	Users  int
	Jobs   int
}

// Run seeds sample data. index may be nil to skip search indexing. Seeding an
// already-populated store returns an error from the unique constraints; wipe
// the data directory first.
func Run(ctx context.Context, st store.Store, index *search.JobIndex, logger *zap.Logger) (*Counts, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	counts := &Counts{}

	for _, skill := range sampleSkills() {
		skill.ID = uuid.NewString()
		if err := st.CreateSkill(ctx, skill); err != nil {
			return nil, fmt.Errorf("seeding skill %q: %w", skill.Name, err)
		}
		counts.Skills++
	}

	for _, user := range sampleUsers() {
		user.ID = uuid.NewString()
		if err := st.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("seeding user %q: %w", user.Username, err)
		}
		counts.Users++
	}

	jobs := sampleJobs()
	for _, job := range jobs {
		job.ID = uuid.NewString()
	}
	if err := st.BatchCreateJobs(ctx, jobs); err != nil {
		return nil, fmt.Errorf("seeding jobs: %w", err)
	}
	counts.Jobs = len(jobs)
	if index != nil {
		if err := index.IndexBatch(ctx, jobs); err != nil {
			return nil, fmt.Errorf("indexing seeded jobs: %w", err)
		}
	}

	logger.Info("sample data seeded",
		zap.Int("skills", counts.Skills),
		zap.Int("users", counts.Users),
		zap.Int("jobs", counts.Jobs),
	)
	return counts, nil
}

func sampleSkills() []*models.Skill {
	type entry struct {
		name, category, subcategory, difficulty string
	}
	entries := []entry{
		{"Python", "Programming", "Languages", "Intermediate"},
		{"JavaScript", "Programming", "Languages", "Intermediate"},
		{"Java", "Programming", "Languages", "Intermediate"},
		{"C++", "Programming", "Languages", "Advanced"},
		{"SQL", "Data", "Languages", "Beginner"},
		{"React", "Programming", "Frameworks", "Intermediate"},
		{"Django", "Programming", "Frameworks", "Intermediate"},
		{"Flask", "Programming", "Frameworks", "Beginner"},
		{"Spring Boot", "Programming", "Frameworks", "Advanced"},
		{"AWS", "Cloud", "Platforms", "Intermediate"},
		{"Docker", "DevOps", "Tools", "Intermediate"},
		{"Kubernetes", "DevOps", "Tools", "Advanced"},
		{"CI/CD", "DevOps", "Practices", "Intermediate"},
		{"Machine Learning", "AI/ML", "Techniques", "Advanced"},
		{"TensorFlow", "AI/ML", "Frameworks", "Advanced"},
		{"Data Analysis", "Data", "Analysis", "Intermediate"},
		{"pandas", "Data", "Libraries", "Intermediate"},
		{"Communication", "Soft Skills", "Interpersonal", "Beginner"},
		{"Problem Solving", "Soft Skills", "Analytical", "Beginner"},
		{"Leadership", "Soft Skills", "Management", "Intermediate"},
	}
	skills := make([]*models.Skill, len(entries))
	for i, e := range entries {
		skills[i] = &models.Skill{
			Name:            e.name,
			Category:        e.category,
			Subcategory:     e.subcategory,
			DifficultyLevel: e.difficulty,
			Description:     fmt.Sprintf("Professional skill in %s", e.name),
		}
	}
	return skills
}

func sampleUsers() []*models.User {
	users := []*models.User{
		{
			Username:        "john_doe",
			Email:           "john@example.com",
			FullName:        "John Doe",
			ExperienceLevel: "Mid-Level",
			DesiredRole:     "Full Stack Developer",
			Skills:          []string{"Python", "JavaScript", "React", "SQL", "Docker"},
		},
		{
			Username:        "jane_smith",
			Email:           "jane@example.com",
			FullName:        "Jane Smith",
			ExperienceLevel: "Senior",
			DesiredRole:     "Data Scientist",
			Skills:          []string{"Python", "Machine Learning", "TensorFlow", "Data Analysis", "pandas"},
		},
		{
			Username:        "demo_user",
			Email:           "demo@example.com",
			FullName:        "Demo User",
			ExperienceLevel: "Entry",
			DesiredRole:     "Software Engineer",
			Skills:          []string{"Python", "JavaScript", "SQL"},
		},
	}
	for _, u := range users {
		u.Location = "San Francisco, CA"
		u.Bio = fmt.Sprintf("Passionate %s looking for opportunities", u.DesiredRole)
		u.Points = 100
		u.IsActive = true
	}
	return users
}

func intPtr(n int) *int { return &n }

func sampleJobs() []*models.Job {
	jobs := []*models.Job{
		{
			Title:           "Senior Python Developer",
			Company:         "Tech Innovators Inc.",
			Location:        "San Francisco, CA",
			Remote:          true,
			Description:     "We're looking for an experienced Python developer to join our growing team.",
			RequiredSkills:  []string{"Python", "Django", "SQL", "Docker", "AWS"},
			PreferredSkills: []string{"React", "Kubernetes"},
			ExperienceLevel: "Senior",
			SalaryMin:       intPtr(120000),
			SalaryMax:       intPtr(160000),
			Category:        "Software Engineering",
			Industry:        "Technology",
		},
		{
			Title:           "Full Stack JavaScript Developer",
			Company:         "StartupXYZ",
			Location:        "Remote",
			Remote:          true,
			Description:     "Join our innovative startup as a full stack developer working with modern JavaScript technologies.",
			RequiredSkills:  []string{"JavaScript", "React", "Node.js", "SQL", "Git"},
			PreferredSkills: []string{"TypeScript", "MongoDB", "AWS"},
			ExperienceLevel: "Mid-Level",
			SalaryMin:       intPtr(90000),
			SalaryMax:       intPtr(130000),
			Category:        "Software Engineering",
			Industry:        "Technology",
		},
		{
			Title:           "Data Scientist",
			Company:         "DataCorp Analytics",
			Location:        "New York, NY",
			Description:     "Seeking a data scientist to help drive insights from large datasets.",
			RequiredSkills:  []string{"Python", "Machine Learning", "pandas", "Data Analysis", "SQL"},
			PreferredSkills: []string{"TensorFlow", "AWS", "Spark"},
			ExperienceLevel: "Mid-Level",
			SalaryMin:       intPtr(100000),
			SalaryMax:       intPtr(140000),
			Category:        "Data Science",
			Industry:        "Analytics",
		},
		{
			Title:           "DevOps Engineer",
			Company:         "CloudOps Solutions",
			Location:        "Austin, TX",
			Remote:          true,
			Description:     "Looking for DevOps engineer to manage cloud infrastructure and CI/CD pipelines.",
			RequiredSkills:  []string{"Docker", "Kubernetes", "AWS", "CI/CD", "Python"},
			PreferredSkills: []string{"Terraform", "Ansible", "Jenkins"},
			ExperienceLevel: "Mid-Level",
			SalaryMin:       intPtr(110000),
			SalaryMax:       intPtr(150000),
			Category:        "DevOps",
			Industry:        "Cloud Services",
		},
		{
			Title:           "Junior Software Engineer",
			Company:         "Growing Tech Co.",
			Location:        "Seattle, WA",
			Description:     "Entry-level position for recent graduates or career changers.",
			RequiredSkills:  []string{"Python", "JavaScript", "SQL", "Git"},
			PreferredSkills: []string{"React", "Docker"},
			ExperienceLevel: "Entry",
			SalaryMin:       intPtr(70000),
			SalaryMax:       intPtr(90000),
			Category:        "Software Engineering",
			Industry:        "Technology",
		},
		{
			Title:           "Machine Learning Engineer",
			Company:         "AI Innovations",
			Location:        "Boston, MA",
			Remote:          true,
			Description:     "Build and deploy machine learning models at scale.",
			RequiredSkills:  []string{"Python", "Machine Learning", "TensorFlow", "AWS", "Docker"},
			PreferredSkills: []string{"Kubernetes", "MLOps", "PyTorch"},
			ExperienceLevel: "Senior",
			SalaryMin:       intPtr(130000),
			SalaryMax:       intPtr(180000),
			Category:        "AI/ML",
			Industry:        "Artificial Intelligence",
		},
		{
			Title:           "Frontend Developer",
			Company:         "Web Design Studio",
			Location:        "Los Angeles, CA",
			Remote:          true,
			Description:     "Create beautiful, responsive web applications.",
			RequiredSkills:  []string{"JavaScript", "React", "CSS", "HTML"},
			PreferredSkills: []string{"TypeScript", "Next.js", "Tailwind"},
			ExperienceLevel: "Mid-Level",
			SalaryMin:       intPtr(85000),
			SalaryMax:       intPtr(120000),
			Category:        "Frontend Development",
			Industry:        "Digital Agency",
		},
		{
			Title:           "Backend Engineer",
			Company:         "Enterprise Solutions",
			Location:        "Chicago, IL",
			Description:     "Design and implement scalable backend systems.",
			RequiredSkills:  []string{"Java", "Spring Boot", "SQL", "Microservices"},
			PreferredSkills: []string{"Kubernetes", "MongoDB", "Kafka"},
			ExperienceLevel: "Senior",
			SalaryMin:       intPtr(115000),
			SalaryMax:       intPtr(155000),
			Category:        "Backend Development",
			Industry:        "Enterprise Software",
		},
	}
	for _, j := range jobs {
		j.EmploymentType = "Full-time"
		j.SalaryCurrency = "USD"
		j.IsActive = true
	}
	return jobs
}
