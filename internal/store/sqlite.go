// Package store provides the SQLite implementation of the Store interface.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hyperwork/susume/internal/models"
)

// SQLiteStore implements Store using SQLite. List-valued fields are stored as
// JSON text columns; malformed JSON reads back as a zero value, never an error.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates a SQLite database at dbPath and initializes
// the schema. Parent directories are created if they do not exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL,
		full_name TEXT,
		bio TEXT,
		location TEXT,
		experience_level TEXT,
		desired_role TEXT,
		salary_expectation INTEGER,
		skills TEXT,
		preferences TEXT,
		points INTEGER NOT NULL DEFAULT 0,
		badges TEXT,
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS jobs (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		company TEXT,
		location TEXT,
		remote INTEGER NOT NULL DEFAULT 0,
		description TEXT,
		requirements TEXT,
		responsibilities TEXT,
		required_skills TEXT,
		preferred_skills TEXT,
		employment_type TEXT,
		experience_level TEXT,
		salary_min INTEGER,
		salary_max INTEGER,
		salary_currency TEXT,
		category TEXT,
		industry TEXT,
		application_url TEXT,
		application_email TEXT,
		is_active INTEGER NOT NULL DEFAULT 1,
		featured INTEGER NOT NULL DEFAULT 0,
		posted_date TIMESTAMP,
		deadline TIMESTAMP,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_jobs_is_active ON jobs(is_active);
	CREATE INDEX IF NOT EXISTS idx_jobs_posted_date ON jobs(posted_date);

	CREATE TABLE IF NOT EXISTS skills (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		category TEXT,
		subcategory TEXT,
		description TEXT,
		difficulty_level TEXT,
		related_skills TEXT,
		learning_resources TEXT,
		popularity_score REAL NOT NULL DEFAULT 0,
		demand_trend TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS recommendations (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		job_id TEXT NOT NULL,
		match_score REAL NOT NULL,
		confidence REAL NOT NULL DEFAULT 0,
		matched_skills TEXT,
		missing_skills TEXT,
		skill_gap_percentage REAL NOT NULL DEFAULT 0,
		explanation TEXT,
		suggested_courses TEXT,
		viewed INTEGER NOT NULL DEFAULT 0,
		saved INTEGER NOT NULL DEFAULT 0,
		applied INTEGER NOT NULL DEFAULT 0,
		feedback_rating INTEGER NOT NULL DEFAULT 0,
		feedback_comment TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		viewed_at TIMESTAMP,
		applied_at TIMESTAMP,
		UNIQUE(user_id, job_id),
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
		FOREIGN KEY (job_id) REFERENCES jobs(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_recommendations_user_id ON recommendations(user_id);
	CREATE INDEX IF NOT EXISTS idx_recommendations_user_score ON recommendations(user_id, match_score);
	`
	_, err := db.Exec(schema)
	return err
}

// toJSON marshals a list field for its text column. The field types here
// cannot fail to marshal.
func toJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}

// stringsFromJSON reads a JSON string-list column. Malformed content parses to
// nil rather than an error.
func stringsFromJSON(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil
	}
	return out
}

func intFromNull(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func nullFromInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func timeFromNull(n sql.NullTime) *time.Time {
	if !n.Valid {
		return nil
	}
	t := n.Time
	return &t
}

func nullFromTime(p *time.Time) any {
	if p == nil {
		return nil
	}
	return *p
}

// --- users ---

const userColumns = `id, username, email, full_name, bio, location, experience_level,
	desired_role, salary_expectation, skills, preferences, points, badges,
	is_active, created_at, updated_at`

// CreateUser inserts a user.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Username, user.Email, user.FullName, user.Bio,
		user.Location, user.ExperienceLevel, user.DesiredRole,
		nullFromInt(user.SalaryExpectation), toJSON(user.Skills), toJSON(user.Preferences),
		user.Points, toJSON(user.Badges), user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	return err
}

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var user models.User
	var salary sql.NullInt64
	var skillsJSON, preferencesJSON, badgesJSON string

	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.FullName, &user.Bio,
		&user.Location, &user.ExperienceLevel, &user.DesiredRole,
		&salary, &skillsJSON, &preferencesJSON,
		&user.Points, &badgesJSON, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}

	user.SalaryExpectation = intFromNull(salary)
	user.Skills = stringsFromJSON(skillsJSON)
	user.Badges = stringsFromJSON(badgesJSON)
	if preferencesJSON != "" {
		// Malformed preferences drop to the zero value.
		_ = json.Unmarshal([]byte(preferencesJSON), &user.Preferences)
	}
	return &user, nil
}

// GetUser returns a user by ID.
func (s *SQLiteStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found: %s", id)
	}
	return user, err
}

// GetUserByUsername returns a user by username.
func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found: %s", username)
	}
	return user, err
}

// UpdateUser updates an existing user.
func (s *SQLiteStore) UpdateUser(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()

	result, err := s.db.ExecContext(ctx,
		`UPDATE users SET username = ?, email = ?, full_name = ?, bio = ?, location = ?,
		 experience_level = ?, desired_role = ?, salary_expectation = ?, skills = ?,
		 preferences = ?, points = ?, badges = ?, is_active = ?, updated_at = ?
		 WHERE id = ?`,
		user.Username, user.Email, user.FullName, user.Bio, user.Location,
		user.ExperienceLevel, user.DesiredRole, nullFromInt(user.SalaryExpectation),
		toJSON(user.Skills), toJSON(user.Preferences), user.Points, toJSON(user.Badges),
		user.IsActive, user.UpdatedAt, user.ID,
	)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("user not found: %s", user.ID)
	}
	return nil
}

// DeleteUser removes a user by ID.
func (s *SQLiteStore) DeleteUser(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	return err
}

// ListUsers returns users with offset and limit, newest first.
func (s *SQLiteStore) ListUsers(ctx context.Context, offset, limit int) ([]*models.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// --- jobs ---

const jobColumns = `id, title, company, location, remote, description, requirements,
	responsibilities, required_skills, preferred_skills, employment_type,
	experience_level, salary_min, salary_max, salary_currency, category, industry,
	application_url, application_email, is_active, featured, posted_date, deadline,
	created_at, updated_at`

func (s *SQLiteStore) insertJob(ctx context.Context, execer interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
}, job *models.Job) error {
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	if job.PostedDate.IsZero() {
		job.PostedDate = now
	}

	_, err := execer.ExecContext(ctx,
		`INSERT INTO jobs (`+jobColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		job.ID, job.Title, job.Company, job.Location, job.Remote, job.Description,
		toJSON(job.Requirements), toJSON(job.Responsibilities),
		toJSON(job.RequiredSkills), toJSON(job.PreferredSkills),
		job.EmploymentType, job.ExperienceLevel,
		nullFromInt(job.SalaryMin), nullFromInt(job.SalaryMax), job.SalaryCurrency,
		job.Category, job.Industry, job.ApplicationURL, job.ApplicationEmail,
		job.IsActive, job.Featured, job.PostedDate, nullFromTime(job.Deadline),
		job.CreatedAt, job.UpdatedAt,
	)
	return err
}

// CreateJob inserts a job posting.
func (s *SQLiteStore) CreateJob(ctx context.Context, job *models.Job) error {
	return s.insertJob(ctx, s.db, job)
}

func scanJob(row interface{ Scan(...any) error }) (*models.Job, error) {
	var job models.Job
	var salaryMin, salaryMax sql.NullInt64
	var deadline sql.NullTime
	var requirementsJSON, responsibilitiesJSON, requiredJSON, preferredJSON string

	err := row.Scan(&job.ID, &job.Title, &job.Company, &job.Location, &job.Remote,
		&job.Description, &requirementsJSON, &responsibilitiesJSON,
		&requiredJSON, &preferredJSON, &job.EmploymentType, &job.ExperienceLevel,
		&salaryMin, &salaryMax, &job.SalaryCurrency, &job.Category, &job.Industry,
		&job.ApplicationURL, &job.ApplicationEmail, &job.IsActive, &job.Featured,
		&job.PostedDate, &deadline, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return nil, err
	}

	job.Requirements = stringsFromJSON(requirementsJSON)
	job.Responsibilities = stringsFromJSON(responsibilitiesJSON)
	job.RequiredSkills = stringsFromJSON(requiredJSON)
	job.PreferredSkills = stringsFromJSON(preferredJSON)
	job.SalaryMin = intFromNull(salaryMin)
	job.SalaryMax = intFromNull(salaryMax)
	job.Deadline = timeFromNull(deadline)
	return &job, nil
}

// GetJob returns a job by ID.
func (s *SQLiteStore) GetJob(ctx context.Context, id string) (*models.Job, error) {
	job, err := scanJob(s.db.QueryRowContext(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("job not found: %s", id)
	}
	return job, err
}

// UpdateJob updates an existing job posting.
func (s *SQLiteStore) UpdateJob(ctx context.Context, job *models.Job) error {
	job.UpdatedAt = time.Now()

	result, err := s.db.ExecContext(ctx,
		`UPDATE jobs SET title = ?, company = ?, location = ?, remote = ?, description = ?,
		 requirements = ?, responsibilities = ?, required_skills = ?, preferred_skills = ?,
		 employment_type = ?, experience_level = ?, salary_min = ?, salary_max = ?,
		 salary_currency = ?, category = ?, industry = ?, application_url = ?,
		 application_email = ?, is_active = ?, featured = ?, posted_date = ?, deadline = ?,
		 updated_at = ?
		 WHERE id = ?`,
		job.Title, job.Company, job.Location, job.Remote, job.Description,
		toJSON(job.Requirements), toJSON(job.Responsibilities),
		toJSON(job.RequiredSkills), toJSON(job.PreferredSkills),
		job.EmploymentType, job.ExperienceLevel,
		nullFromInt(job.SalaryMin), nullFromInt(job.SalaryMax), job.SalaryCurrency,
		job.Category, job.Industry, job.ApplicationURL, job.ApplicationEmail,
		job.IsActive, job.Featured, job.PostedDate, nullFromTime(job.Deadline),
		job.UpdatedAt, job.ID,
	)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("job not found: %s", job.ID)
	}
	return nil
}

// DeleteJob removes a job by ID.
func (s *SQLiteStore) DeleteJob(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	return err
}

func (s *SQLiteStore) queryJobs(ctx context.Context, query string, args ...any) ([]*models.Job, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*models.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// ListJobs returns jobs with offset and limit, newest posting first.
func (s *SQLiteStore) ListJobs(ctx context.Context, offset, limit int) ([]*models.Job, error) {
	return s.queryJobs(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY posted_date DESC LIMIT ? OFFSET ?`,
		limit, offset)
}

// ListActiveJobs returns every active job, newest posting first. Ranking runs
// over the full active set, so there is no pagination here.
func (s *SQLiteStore) ListActiveJobs(ctx context.Context) ([]*models.Job, error) {
	return s.queryJobs(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE is_active = 1 ORDER BY posted_date DESC`)
}

// BatchCreateJobs inserts multiple jobs in a transaction.
func (s *SQLiteStore) BatchCreateJobs(ctx context.Context, jobs []*models.Job) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, job := range jobs {
		if err := s.insertJob(ctx, tx, job); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// --- skills ---

const skillColumns = `id, name, category, subcategory, description, difficulty_level,
	related_skills, learning_resources, popularity_score, demand_trend,
	created_at, updated_at`

// CreateSkill inserts a taxonomy entry.
func (s *SQLiteStore) CreateSkill(ctx context.Context, skill *models.Skill) error {
	now := time.Now()
	skill.CreatedAt = now
	skill.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO skills (`+skillColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		skill.ID, skill.Name, skill.Category, skill.Subcategory, skill.Description,
		skill.DifficultyLevel, toJSON(skill.RelatedSkills), toJSON(skill.LearningResources),
		skill.PopularityScore, skill.DemandTrend, skill.CreatedAt, skill.UpdatedAt,
	)
	return err
}

func scanSkill(row interface{ Scan(...any) error }) (*models.Skill, error) {
	var skill models.Skill
	var relatedJSON, resourcesJSON string

	err := row.Scan(&skill.ID, &skill.Name, &skill.Category, &skill.Subcategory,
		&skill.Description, &skill.DifficultyLevel, &relatedJSON, &resourcesJSON,
		&skill.PopularityScore, &skill.DemandTrend, &skill.CreatedAt, &skill.UpdatedAt)
	if err != nil {
		return nil, err
	}

	skill.RelatedSkills = stringsFromJSON(relatedJSON)
	if resourcesJSON != "" {
		_ = json.Unmarshal([]byte(resourcesJSON), &skill.LearningResources)
	}
	return &skill, nil
}

// GetSkillByName returns a taxonomy entry by name, case-insensitive.
func (s *SQLiteStore) GetSkillByName(ctx context.Context, name string) (*models.Skill, error) {
	skill, err := scanSkill(s.db.QueryRowContext(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE name = ? COLLATE NOCASE`, name))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("skill not found: %s", name)
	}
	return skill, err
}

// ListSkills returns the whole taxonomy ordered by name.
func (s *SQLiteStore) ListSkills(ctx context.Context) ([]*models.Skill, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+skillColumns+` FROM skills ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []*models.Skill
	for rows.Next() {
		skill, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, rows.Err()
}

// --- recommendations ---

const recommendationColumns = `id, user_id, job_id, match_score, confidence,
	matched_skills, missing_skills, skill_gap_percentage, explanation,
	suggested_courses, viewed, saved, applied, feedback_rating, feedback_comment,
	created_at, viewed_at, applied_at`

// UpsertRecommendation inserts or refreshes the recommendation for a
// (user, job) pair. A refresh rewrites the match fields but keeps user state:
// viewed/saved/applied flags, feedback, and their timestamps survive.
func (s *SQLiteStore) UpsertRecommendation(ctx context.Context, rec *models.Recommendation) error {
	rec.CreatedAt = time.Now()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO recommendations (`+recommendationColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id, job_id) DO UPDATE SET
			match_score = excluded.match_score,
			confidence = excluded.confidence,
			matched_skills = excluded.matched_skills,
			missing_skills = excluded.missing_skills,
			skill_gap_percentage = excluded.skill_gap_percentage,
			explanation = excluded.explanation,
			suggested_courses = excluded.suggested_courses`,
		rec.ID, rec.UserID, rec.JobID, rec.MatchScore, rec.Confidence,
		toJSON(rec.MatchedSkills), toJSON(rec.MissingSkills), rec.SkillGapPercentage,
		rec.Explanation, toJSON(rec.SuggestedCourses),
		rec.Viewed, rec.Saved, rec.Applied, rec.FeedbackRating, rec.FeedbackComment,
		rec.CreatedAt, nullFromTime(rec.ViewedAt), nullFromTime(rec.AppliedAt),
	)
	return err
}

func scanRecommendation(row interface{ Scan(...any) error }) (*models.Recommendation, error) {
	var rec models.Recommendation
	var matchedJSON, missingJSON, coursesJSON string
	var viewedAt, appliedAt sql.NullTime

	err := row.Scan(&rec.ID, &rec.UserID, &rec.JobID, &rec.MatchScore, &rec.Confidence,
		&matchedJSON, &missingJSON, &rec.SkillGapPercentage, &rec.Explanation,
		&coursesJSON, &rec.Viewed, &rec.Saved, &rec.Applied,
		&rec.FeedbackRating, &rec.FeedbackComment,
		&rec.CreatedAt, &viewedAt, &appliedAt)
	if err != nil {
		return nil, err
	}

	rec.MatchedSkills = stringsFromJSON(matchedJSON)
	rec.MissingSkills = stringsFromJSON(missingJSON)
	rec.SuggestedCourses = stringsFromJSON(coursesJSON)
	rec.ViewedAt = timeFromNull(viewedAt)
	rec.AppliedAt = timeFromNull(appliedAt)
	return &rec, nil
}

// GetRecommendation returns the recommendation for a (user, job) pair.
func (s *SQLiteStore) GetRecommendation(ctx context.Context, userID, jobID string) (*models.Recommendation, error) {
	rec, err := scanRecommendation(s.db.QueryRowContext(ctx,
		`SELECT `+recommendationColumns+` FROM recommendations
		 WHERE user_id = ? AND job_id = ?`, userID, jobID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("recommendation not found: user %s job %s", userID, jobID)
	}
	return rec, err
}

// UpdateRecommendation updates user state on an existing recommendation.
func (s *SQLiteStore) UpdateRecommendation(ctx context.Context, rec *models.Recommendation) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE recommendations SET viewed = ?, saved = ?, applied = ?,
		 feedback_rating = ?, feedback_comment = ?, viewed_at = ?, applied_at = ?
		 WHERE id = ?`,
		rec.Viewed, rec.Saved, rec.Applied, rec.FeedbackRating, rec.FeedbackComment,
		nullFromTime(rec.ViewedAt), nullFromTime(rec.AppliedAt), rec.ID,
	)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("recommendation not found: %s", rec.ID)
	}
	return nil
}

func (s *SQLiteStore) queryRecommendations(ctx context.Context, query string, args ...any) ([]*models.Recommendation, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*models.Recommendation
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// ListRecommendations returns a user's recommendations, best match first.
func (s *SQLiteStore) ListRecommendations(ctx context.Context, userID string, limit int) ([]*models.Recommendation, error) {
	return s.queryRecommendations(ctx,
		`SELECT `+recommendationColumns+` FROM recommendations
		 WHERE user_id = ? ORDER BY match_score DESC LIMIT ?`,
		userID, limit)
}

// ListSavedRecommendations returns a user's saved recommendations, best first.
func (s *SQLiteStore) ListSavedRecommendations(ctx context.Context, userID string) ([]*models.Recommendation, error) {
	return s.queryRecommendations(ctx,
		`SELECT `+recommendationColumns+` FROM recommendations
		 WHERE user_id = ? AND saved = 1 ORDER BY match_score DESC`,
		userID)
}

// ListAppliedRecommendations returns a user's applied recommendations, most
// recent application first.
func (s *SQLiteStore) ListAppliedRecommendations(ctx context.Context, userID string) ([]*models.Recommendation, error) {
	return s.queryRecommendations(ctx,
		`SELECT `+recommendationColumns+` FROM recommendations
		 WHERE user_id = ? AND applied = 1 ORDER BY applied_at DESC`,
		userID)
}

// --- stats ---

func (s *SQLiteStore) count(ctx context.Context, table string) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&count)
	return count, err
}

// CountUsers returns the total number of users.
func (s *SQLiteStore) CountUsers(ctx context.Context) (int64, error) {
	return s.count(ctx, "users")
}

// CountJobs returns the total number of jobs.
func (s *SQLiteStore) CountJobs(ctx context.Context) (int64, error) {
	return s.count(ctx, "jobs")
}

// CountSkills returns the total number of taxonomy entries.
func (s *SQLiteStore) CountSkills(ctx context.Context) (int64, error) {
	return s.count(ctx, "skills")
}

// CountRecommendations returns the total number of recommendations.
func (s *SQLiteStore) CountRecommendations(ctx context.Context) (int64, error) {
	return s.count(ctx, "recommendations")
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
