// Package main is the Susume CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/hyperwork/susume/internal/advisor"
	"github.com/hyperwork/susume/internal/cli"
	"github.com/hyperwork/susume/internal/config"
	"github.com/hyperwork/susume/internal/embedding"
	"github.com/hyperwork/susume/internal/extract"
	"github.com/hyperwork/susume/internal/ingest"
	"github.com/hyperwork/susume/internal/matching"
	"github.com/hyperwork/susume/internal/models"
	"github.com/hyperwork/susume/internal/recommend"
	"github.com/hyperwork/susume/internal/search"
	"github.com/hyperwork/susume/internal/seed"
	"github.com/hyperwork/susume/internal/store"
	"github.com/hyperwork/susume/internal/taxonomy"
	"github.com/hyperwork/susume/internal/watcher"
	"github.com/hyperwork/susume/pkg/utils"
	"go.uber.org/zap"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/susume/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists it
// is used, so running susume from the project dir uses the project's config.
// Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "seed":
		runSeed()
	case "import", "import-jobs":
		runImport()
	case "resume", "import-resume":
		runResume()
	case "recommend":
		runRecommend()
	case "match":
		runMatch()
	case "gap", "skill-gap":
		runGap()
	case "advise":
		runAdvise()
	case "suggest":
		runSuggest()
	case "search":
		runSearch()
	case "apply":
		runApply()
	case "save":
		runSave()
	case "view":
		runView()
	case "saved":
		runSaved()
	case "applied":
		runApplied()
	case "feedback":
		runFeedback()
	case "users":
		runUsers()
	case "jobs":
		runJobs()
	case "skills":
		runSkills()
	case "watch":
		runWatch()
	case "status":
		runStatus()
	case "version", "--version", "-v":
		fmt.Printf("susume version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// Components holds initialized services.
type Components struct {
	Store    store.Store
	Index    *search.JobIndex
	Provider matching.SimilarityProvider
	Matcher  *matching.Matcher
	Catalog  *taxonomy.Catalog
	Advisor  *advisor.Advisor
	Service  *recommend.Service
	Ingester *ingest.Ingester
}

func (c *Components) Close() {
	if c.Index != nil {
		_ = c.Index.Close()
	}
	if closer, ok := c.Provider.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	if c.Store != nil {
		_ = c.Store.Close()
	}
}

func initializeComponents(cfg *config.Config, logger *zap.Logger) (*Components, error) {
	st, err := store.NewSQLiteStore(cfg.Storage.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	index, err := search.NewJobIndex(cfg.Storage.BleveIndexPath)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to initialize job index: %w", err)
	}

	provider := matching.NewDefaultProvider(
		cfg.Embedding.ModelPath,
		cfg.Embedding.Dimensions,
		cfg.Embedding.MaxTokens,
		cfg.Embedding.CacheSize,
		logger,
	)
	matcher := matching.NewMatcher(&cfg.Matching, provider, logger)

	skills, err := st.ListSkills(context.Background())
	if err != nil {
		_ = index.Close()
		_ = st.Close()
		return nil, fmt.Errorf("failed to load skill taxonomy: %w", err)
	}
	catalog := taxonomy.NewCatalog(skills)

	var adv *advisor.Advisor
	if cfg.Advisor.Enabled {
		gen, genErr := advisor.NewGeminiGenerator(context.Background(), cfg.Advisor.APIKey(), cfg.Advisor.Model)
		if genErr != nil {
			logger.Warn("career advisor unavailable", zap.Error(genErr))
		} else {
			adv = advisor.NewAdvisor(gen, advisor.NewMemorySessionStore(), logger)
		}
	}

	return &Components{
		Store:    st,
		Index:    index,
		Provider: provider,
		Matcher:  matcher,
		Catalog:  catalog,
		Advisor:  adv,
		Service:  recommend.NewService(st, matcher, adv, logger),
		Ingester: ingest.NewIngester(st, index, logger),
	}, nil
}

// setup parses the common -config/-debug/-output flags from args, then loads
// config, logger, and components. Remaining positional args come back to the
// caller.
func setup(name string, args []string, extraFlags func(*flag.FlagSet)) (*config.Config, *zap.Logger, *Components, *flag.FlagSet) {
	args = argsReorder(args)
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	if extraFlags != nil {
		extraFlags(fs)
	}
	_ = fs.Parse(args)

	cfg, resolvedPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", zap.String("config_path", resolvedPath))

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	return cfg, logger, components, fs
}

// argsReorder moves any flags (and their values) that appear after positional
// arguments to the front of the slice so that flag.Parse() sees them. Go's flag
// package stops at the first non-flag argument, so "susume recommend u1 -limit 5"
// would otherwise leave -limit unparsed.
func argsReorder(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

func parseOutputFlag(value string) cli.OutputFormat {
	format, err := cli.ParseFormat(value)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return format
}

func runSeed() {
	_, logger, components, _ := setup("seed", os.Args[2:], nil)
	defer logger.Sync()
	defer components.Close()

	counts, err := seed.Run(context.Background(), components.Store, components.Index, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Seeding failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Seeded %d skills, %d users, %d jobs\n", counts.Skills, counts.Users, counts.Jobs)
}

func runImport() {
	_, logger, components, fs := setup("import", os.Args[2:], nil)
	defer logger.Sync()
	defer components.Close()

	if fs.NArg() < 1 {
		fmt.Println("Usage: susume import [flags] <file>...")
		os.Exit(1)
	}
	ctx := context.Background()
	total := 0
	for _, path := range fs.Args() {
		n, err := components.Ingester.ImportFile(ctx, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Import of %s failed: %v\n", path, err)
			os.Exit(1)
		}
		total += n
	}
	fmt.Printf("Imported %d job(s)\n", total)
}

func runResume() {
	_, logger, components, fs := setup("resume", os.Args[2:], nil)
	defer logger.Sync()
	defer components.Close()

	if fs.NArg() < 2 {
		fmt.Println("Usage: susume resume [flags] <user-id> <file>")
		os.Exit(1)
	}
	userID, path := fs.Arg(0), fs.Arg(1)
	ctx := context.Background()

	user, err := components.Store.GetUser(ctx, userID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load user: %v\n", err)
		os.Exit(1)
	}

	text, err := extract.NewExtractor().Extract(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to extract resume text: %v\n", err)
		os.Exit(1)
	}
	found := extract.Skills(text, components.Catalog)
	if len(found) == 0 {
		fmt.Println("No known skills found in the resume.")
		return
	}

	have := make(map[string]bool, len(user.Skills))
	for _, s := range user.Skills {
		have[utils.NormalizeToken(s)] = true
	}
	var added []string
	for _, s := range found {
		if !have[utils.NormalizeToken(s)] {
			user.Skills = append(user.Skills, s)
			added = append(added, s)
		}
	}
	if len(added) == 0 {
		fmt.Printf("Found %d skill(s), all already on the profile.\n", len(found))
		return
	}
	// Collapse duplicates and settle on catalog casing for the merged list.
	user.Skills = components.Catalog.Canonicalize(user.Skills)
	if err := components.Store.UpdateUser(ctx, user); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to update profile: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Added %d skill(s): %s\n", len(added), strings.Join(added, ", "))
}

func runRecommend() {
	var refresh *bool
	var limit *int
	var output *string
	_, logger, components, fs := setup("recommend", os.Args[2:], func(fs *flag.FlagSet) {
		refresh = fs.Bool("refresh", false, "re-rank all active jobs before listing")
		limit = fs.Int("limit", 0, "number of recommendations (default: configured top_n)")
		output = fs.String("output", "text", "output format: text or json")
	})
	defer logger.Sync()
	defer components.Close()

	if fs.NArg() < 1 {
		fmt.Println("Usage: susume recommend [flags] <user-id>")
		os.Exit(1)
	}
	userID := fs.Arg(0)
	format := parseOutputFlag(*output)
	ctx := context.Background()

	var recs []*models.Recommendation
	var err error
	if *refresh {
		recs, err = components.Service.Refresh(ctx, userID)
	} else {
		recs, err = components.Service.List(ctx, userID, *limit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Recommendation failed: %v\n", err)
		os.Exit(1)
	}
	if *refresh && *limit > 0 && len(recs) > *limit {
		recs = recs[:*limit]
	}

	items := make([]*cli.RecommendationItem, 0, len(recs))
	for _, rec := range recs {
		job, jobErr := components.Store.GetJob(ctx, rec.JobID)
		if jobErr != nil {
			logger.Warn("recommended job missing", zap.String("job_id", rec.JobID), zap.Error(jobErr))
		}
		items = append(items, &cli.RecommendationItem{Recommendation: rec, Job: job})
	}
	if err := cli.WriteRecommendations(os.Stdout, items, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runMatch() {
	var output *string
	_, logger, components, fs := setup("match", os.Args[2:], func(fs *flag.FlagSet) {
		output = fs.String("output", "text", "output format: text or json")
	})
	defer logger.Sync()
	defer components.Close()

	if fs.NArg() < 2 {
		fmt.Println("Usage: susume match [flags] <user-id> <job-id>")
		os.Exit(1)
	}
	format := parseOutputFlag(*output)
	ctx := context.Background()

	user, err := components.Store.GetUser(ctx, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load user: %v\n", err)
		os.Exit(1)
	}
	job, err := components.Store.GetJob(ctx, fs.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load job: %v\n", err)
		os.Exit(1)
	}

	result := components.Matcher.CalculateSkillMatch(ctx, user.Skills, job.RequiredSkills)
	if format == cli.OutputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Printf("%s at %s\n", job.Title, job.Company)
	fmt.Printf("Score: %.3f  Gap: %.2f%%\n", result.Score, result.SkillGapPercentage)
	if len(result.ExactMatches) > 0 {
		fmt.Printf("Exact: %s\n", strings.Join(result.ExactMatches, ", "))
	}
	for _, sm := range result.SemanticMatches {
		fmt.Printf("Semantic: %s ~ %s (%.3f)\n", sm.UserSkill, sm.JobSkill, sm.Similarity)
	}
	if len(result.MissingSkills) > 0 {
		fmt.Printf("Missing: %s\n", strings.Join(result.MissingSkills, ", "))
	}
	fmt.Printf("\n%s\n", matching.Explanation(result))
}

func runGap() {
	var output *string
	_, logger, components, fs := setup("gap", os.Args[2:], func(fs *flag.FlagSet) {
		output = fs.String("output", "text", "output format: text or json")
	})
	defer logger.Sync()
	defer components.Close()

	if fs.NArg() < 2 {
		fmt.Println("Usage: susume gap [flags] <user-id> <job-id>")
		os.Exit(1)
	}
	format := parseOutputFlag(*output)

	report, err := components.Service.SkillGap(context.Background(), fs.Arg(0), fs.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Skill gap analysis failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteSkillGap(os.Stdout, report, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runAdvise() {
	var session *string
	_, logger, components, fs := setup("advise", os.Args[2:], func(fs *flag.FlagSet) {
		session = fs.String("session", "", "session ID to continue a conversation")
	})
	defer logger.Sync()
	defer components.Close()

	if components.Advisor == nil {
		fmt.Fprintln(os.Stderr, "Career advisor is not configured. Enable it in config and set the API key environment variable.")
		os.Exit(1)
	}
	if fs.NArg() < 2 {
		fmt.Println("Usage: susume advise [flags] <user-id> <question>...")
		os.Exit(1)
	}
	ctx := context.Background()

	user, err := components.Store.GetUser(ctx, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load user: %v\n", err)
		os.Exit(1)
	}
	question := strings.TrimSpace(strings.Join(fs.Args()[1:], " "))
	reply := components.Advisor.Advise(ctx, *session, question, user)
	fmt.Println(reply)
}

func runSuggest() {
	_, logger, components, fs := setup("suggest", os.Args[2:], nil)
	defer logger.Sync()
	defer components.Close()

	if components.Advisor == nil {
		fmt.Fprintln(os.Stderr, "Career advisor is not configured. Enable it in config and set the API key environment variable.")
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Println("Usage: susume suggest [flags] <job-id>")
		os.Exit(1)
	}
	ctx := context.Background()

	job, err := components.Store.GetJob(ctx, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load job: %v\n", err)
		os.Exit(1)
	}
	skills := components.Advisor.SuggestSkills(ctx, job.Title, job.Description)
	if len(skills) == 0 {
		fmt.Println("No suggestions available.")
		return
	}
	for _, s := range skills {
		fmt.Printf("- %s\n", s)
	}
}

func runSearch() {
	var limit *int
	var output *string
	_, logger, components, fs := setup("search", os.Args[2:], func(fs *flag.FlagSet) {
		limit = fs.Int("limit", 10, "number of results")
		output = fs.String("output", "text", "output format: text or json")
	})
	defer logger.Sync()
	defer components.Close()

	// Query is all remaining arguments joined by spaces, so multi-word queries
	// work with or without quotes.
	query := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if query == "" {
		fmt.Println("Usage: susume search [flags] <query>")
		os.Exit(1)
	}
	format := parseOutputFlag(*output)
	ctx := context.Background()

	results, err := components.Index.Search(ctx, query, *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}
	hits := make([]*cli.JobHit, 0, len(results))
	for _, r := range results {
		job, jobErr := components.Store.GetJob(ctx, r.JobID)
		if jobErr != nil {
			logger.Warn("indexed job missing from storage", zap.String("job_id", r.JobID), zap.Error(jobErr))
			continue
		}
		hits = append(hits, &cli.JobHit{Score: r.Score, Job: job})
	}
	if err := cli.WriteJobHits(os.Stdout, hits, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runApply() {
	_, logger, components, fs := setup("apply", os.Args[2:], nil)
	defer logger.Sync()
	defer components.Close()

	if fs.NArg() < 2 {
		fmt.Println("Usage: susume apply [flags] <user-id> <job-id>")
		os.Exit(1)
	}
	points, err := components.Service.MarkApplied(context.Background(), fs.Arg(0), fs.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Apply failed: %v\n", err)
		os.Exit(1)
	}
	if points > 0 {
		fmt.Printf("Application recorded. +%d points\n", points)
	} else {
		fmt.Println("Already applied.")
	}
}

func runSave() {
	_, logger, components, fs := setup("save", os.Args[2:], nil)
	defer logger.Sync()
	defer components.Close()

	if fs.NArg() < 2 {
		fmt.Println("Usage: susume save [flags] <user-id> <job-id>")
		os.Exit(1)
	}
	saved, err := components.Service.ToggleSaved(context.Background(), fs.Arg(0), fs.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Save failed: %v\n", err)
		os.Exit(1)
	}
	if saved {
		fmt.Println("Saved.")
	} else {
		fmt.Println("Removed from saved.")
	}
}

func runView() {
	_, logger, components, fs := setup("view", os.Args[2:], nil)
	defer logger.Sync()
	defer components.Close()

	if fs.NArg() < 2 {
		fmt.Println("Usage: susume view [flags] <user-id> <job-id>")
		os.Exit(1)
	}
	rec, err := components.Service.MarkViewed(context.Background(), fs.Arg(0), fs.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "View failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Viewed at %s\n", rec.ViewedAt.Format("2006-01-02 15:04:05"))
}

// writeRecommendationList joins recommendations with their jobs and writes
// them; shared by the saved and applied listings.
func writeRecommendationList(components *Components, logger *zap.Logger, recs []*models.Recommendation, format cli.OutputFormat) {
	ctx := context.Background()
	items := make([]*cli.RecommendationItem, 0, len(recs))
	for _, rec := range recs {
		job, err := components.Store.GetJob(ctx, rec.JobID)
		if err != nil {
			logger.Warn("recommended job missing", zap.String("job_id", rec.JobID), zap.Error(err))
		}
		items = append(items, &cli.RecommendationItem{Recommendation: rec, Job: job})
	}
	if err := cli.WriteRecommendations(os.Stdout, items, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runSaved() {
	var output *string
	_, logger, components, fs := setup("saved", os.Args[2:], func(fs *flag.FlagSet) {
		output = fs.String("output", "text", "output format: text or json")
	})
	defer logger.Sync()
	defer components.Close()

	if fs.NArg() < 1 {
		fmt.Println("Usage: susume saved [flags] <user-id>")
		os.Exit(1)
	}
	format := parseOutputFlag(*output)
	recs, err := components.Service.Saved(context.Background(), fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Saved listing failed: %v\n", err)
		os.Exit(1)
	}
	writeRecommendationList(components, logger, recs, format)
}

func runApplied() {
	var output *string
	_, logger, components, fs := setup("applied", os.Args[2:], func(fs *flag.FlagSet) {
		output = fs.String("output", "text", "output format: text or json")
	})
	defer logger.Sync()
	defer components.Close()

	if fs.NArg() < 1 {
		fmt.Println("Usage: susume applied [flags] <user-id>")
		os.Exit(1)
	}
	format := parseOutputFlag(*output)
	recs, err := components.Service.Applied(context.Background(), fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Applied listing failed: %v\n", err)
		os.Exit(1)
	}
	writeRecommendationList(components, logger, recs, format)
}

func runUsers() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: susume users <list|show|delete> [username]")
		fmt.Println("  susume users list              List user profiles")
		fmt.Println("  susume users show <username>   Show one profile")
		fmt.Println("  susume users delete <username> Delete a profile")
		os.Exit(1)
	}
	sub := os.Args[2]
	var limit *int
	_, logger, components, fs := setup("users", os.Args[3:], func(fs *flag.FlagSet) {
		limit = fs.Int("limit", 50, "number of users to list")
	})
	defer logger.Sync()
	defer components.Close()
	ctx := context.Background()

	switch sub {
	case "list":
		users, err := components.Store.ListUsers(ctx, 0, *limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "List users failed: %v\n", err)
			os.Exit(1)
		}
		for _, u := range users {
			fmt.Printf("%-36s %-15s %-25s %d points\n", u.ID, u.Username, u.DesiredRole, u.Points)
		}
	case "show":
		if fs.NArg() < 1 {
			fmt.Println("Usage: susume users show <username>")
			os.Exit(1)
		}
		user, err := components.Store.GetUserByUsername(ctx, fs.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load user: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("ID:         %s\n", user.ID)
		fmt.Printf("Username:   %s\n", user.Username)
		fmt.Printf("Email:      %s\n", user.Email)
		if user.DesiredRole != "" {
			fmt.Printf("Role:       %s (%s)\n", user.DesiredRole, user.ExperienceLevel)
		}
		if user.Location != "" {
			fmt.Printf("Location:   %s\n", user.Location)
		}
		fmt.Printf("Points:     %d\n", user.Points)
		if len(user.Skills) > 0 {
			fmt.Printf("Skills:     %s\n", strings.Join(user.Skills, ", "))
		}
	case "delete":
		if fs.NArg() < 1 {
			fmt.Println("Usage: susume users delete <username>")
			os.Exit(1)
		}
		user, err := components.Store.GetUserByUsername(ctx, fs.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load user: %v\n", err)
			os.Exit(1)
		}
		if err := components.Store.DeleteUser(ctx, user.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Delete failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted: %s\n", user.Username)
	default:
		fmt.Printf("Unknown users subcommand: %s\n", sub)
		os.Exit(1)
	}
}

func runJobs() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: susume jobs <deactivate|delete> <job-id>")
		fmt.Println("  susume jobs deactivate <job-id>  Stop ranking a posting without deleting it")
		fmt.Println("  susume jobs delete <job-id>      Remove a posting and its index entry")
		os.Exit(1)
	}
	sub := os.Args[2]
	_, logger, components, fs := setup("jobs", os.Args[3:], nil)
	defer logger.Sync()
	defer components.Close()

	if fs.NArg() < 1 {
		fmt.Printf("Usage: susume jobs %s <job-id>\n", sub)
		os.Exit(1)
	}
	jobID := fs.Arg(0)
	ctx := context.Background()

	switch sub {
	case "deactivate":
		job, err := components.Store.GetJob(ctx, jobID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load job: %v\n", err)
			os.Exit(1)
		}
		job.IsActive = false
		if err := components.Store.UpdateJob(ctx, job); err != nil {
			fmt.Fprintf(os.Stderr, "Deactivate failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deactivated: %s at %s\n", job.Title, job.Company)
	case "delete":
		if err := components.Store.DeleteJob(ctx, jobID); err != nil {
			fmt.Fprintf(os.Stderr, "Delete failed: %v\n", err)
			os.Exit(1)
		}
		if err := components.Index.Delete(ctx, jobID); err != nil {
			logger.Warn("index delete failed", zap.String("job_id", jobID), zap.Error(err))
		}
		fmt.Printf("Deleted: %s\n", jobID)
	default:
		fmt.Printf("Unknown jobs subcommand: %s\n", sub)
		os.Exit(1)
	}
}

func runFeedback() {
	_, logger, components, fs := setup("feedback", os.Args[2:], nil)
	defer logger.Sync()
	defer components.Close()

	if fs.NArg() < 3 {
		fmt.Println("Usage: susume feedback [flags] <user-id> <job-id> <rating 1-5> [comment]")
		os.Exit(1)
	}
	rating, err := strconv.Atoi(fs.Arg(2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid rating %q\n", fs.Arg(2))
		os.Exit(1)
	}
	comment := strings.Join(fs.Args()[3:], " ")
	if err := components.Service.SubmitFeedback(context.Background(), fs.Arg(0), fs.Arg(1), rating, comment); err != nil {
		fmt.Fprintf(os.Stderr, "Feedback failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Feedback recorded.")
}

func runSkills() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: susume skills <list|suggest|correct|related> [term]...")
		fmt.Println("  susume skills list [-category c]   List the skill taxonomy")
		fmt.Println("  susume skills suggest <term>       Suggest corrections for a misspelled skill")
		fmt.Println("  susume skills correct <term>...    Map a skill list onto catalog names")
		fmt.Println("  susume skills related <skill>      Show skills related to one skill")
		os.Exit(1)
	}
	sub := os.Args[2]
	var category *string
	cfg, logger, components, fs := setup("skills", os.Args[3:], func(fs *flag.FlagSet) {
		category = fs.String("category", "", "restrict the listing to one category")
	})
	defer logger.Sync()
	defer components.Close()

	switch sub {
	case "list":
		if *category != "" {
			for _, skill := range components.Catalog.ByCategory(*category) {
				fmt.Printf("%-20s %s / %s (%s)\n", skill.Name, skill.Category, skill.Subcategory, skill.DifficultyLevel)
			}
			return
		}
		for _, name := range components.Catalog.Names() {
			skill, ok := components.Catalog.Lookup(name)
			if !ok {
				continue
			}
			fmt.Printf("%-20s %s / %s (%s)\n", skill.Name, skill.Category, skill.Subcategory, skill.DifficultyLevel)
		}
	case "correct":
		if fs.NArg() < 1 {
			fmt.Println("Usage: susume skills correct <term>...")
			os.Exit(1)
		}
		suggester := taxonomy.NewSuggester(components.Catalog, 0, 0)
		corrected, replaced := suggester.Correct(fs.Args())
		fmt.Println(strings.Join(components.Catalog.Canonicalize(corrected), ", "))
		if len(replaced) > 0 {
			fmt.Printf("Corrected: %s\n", strings.Join(replaced, ", "))
		}
	case "suggest":
		if fs.NArg() < 1 {
			fmt.Println("Usage: susume skills suggest <term>")
			os.Exit(1)
		}
		suggester := taxonomy.NewSuggester(components.Catalog, 0, 0)
		suggestions := suggester.Suggest(fs.Arg(0))
		if len(suggestions) == 0 {
			fmt.Println("No suggestions.")
			return
		}
		for _, s := range suggestions {
			fmt.Printf("%s (distance %d)\n", s.Name, s.Distance)
		}
	case "related":
		if fs.NArg() < 1 {
			fmt.Println("Usage: susume skills related <skill>")
			os.Exit(1)
		}
		ctx := context.Background()
		embedder, err := embedding.NewONNXEmbedder(
			cfg.Embedding.ModelPath,
			cfg.Embedding.Dimensions,
			cfg.Embedding.MaxTokens,
			cfg.Embedding.CacheSize,
		)
		var emb embedding.Embedder = embedder
		if err != nil {
			emb = embedding.NewMockEmbedder(cfg.Embedding.Dimensions)
		}
		defer emb.Close()

		related, err := taxonomy.NewRelatedIndex(ctx, components.Catalog, emb)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to build related index: %v\n", err)
			os.Exit(1)
		}
		skills, err := related.Related(ctx, fs.Arg(0), 5)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Related lookup failed: %v\n", err)
			os.Exit(1)
		}
		for _, s := range skills {
			fmt.Printf("%-20s %s\n", s.Name, s.Category)
		}
	default:
		fmt.Printf("Unknown skills subcommand: %s\n", sub)
		os.Exit(1)
	}
}

func runWatch() {
	cfg, logger, components, _ := setup("watch", os.Args[2:], nil)
	defer logger.Sync()
	defer components.Close()

	if len(cfg.Ingest.Directories) == 0 {
		fmt.Fprintln(os.Stderr, "No ingest directories configured; set ingest.directories in config.")
		os.Exit(1)
	}

	onImport := func(path string) {
		if _, err := components.Ingester.ImportFile(context.Background(), path); err != nil {
			logger.Warn("watch import failed", zap.String("path", path), zap.Error(err))
		}
	}
	w := watcher.NewWatcher(cfg.Ingest.Directories, cfg.Ingest.Extensions, onImport, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		logger.Fatal("Failed to start watcher", zap.Error(err))
	}
	w.ImportExisting()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	w.Stop()
}

// statusResponse is the shape of the status command output.
type statusResponse struct {
	Users           int64  `json:"users"`
	Jobs            int64  `json:"jobs"`
	Skills          int64  `json:"skills"`
	Recommendations int64  `json:"recommendations"`
	IndexedJobs     uint64 `json:"indexed_jobs"`
	Provider        string `json:"similarity_provider"`
	AdvisorEnabled  bool   `json:"advisor_enabled"`
	DatabasePath    string `json:"database_path"`
	BleveIndexPath  string `json:"bleve_index_path"`
}

func runStatus() {
	var output *string
	cfg, logger, components, _ := setup("status", os.Args[2:], func(fs *flag.FlagSet) {
		output = fs.String("output", "text", "output format: text or json")
	})
	defer logger.Sync()
	defer components.Close()

	format := parseOutputFlag(*output)
	ctx := context.Background()

	status := statusResponse{
		Provider:       components.Provider.Name(),
		AdvisorEnabled: components.Advisor != nil,
		DatabasePath:   cfg.Storage.DatabasePath,
		BleveIndexPath: cfg.Storage.BleveIndexPath,
	}
	var err error
	if status.Users, err = components.Store.CountUsers(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Count users failed: %v\n", err)
		os.Exit(1)
	}
	if status.Jobs, err = components.Store.CountJobs(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Count jobs failed: %v\n", err)
		os.Exit(1)
	}
	if status.Skills, err = components.Store.CountSkills(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Count skills failed: %v\n", err)
		os.Exit(1)
	}
	if status.Recommendations, err = components.Store.CountRecommendations(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Count recommendations failed: %v\n", err)
		os.Exit(1)
	}
	if status.IndexedJobs, err = components.Index.DocCount(); err != nil {
		fmt.Fprintf(os.Stderr, "Index count failed: %v\n", err)
		os.Exit(1)
	}

	if format == cli.OutputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(status); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Printf("users:             %d\n", status.Users)
	fmt.Printf("jobs:              %d\n", status.Jobs)
	fmt.Printf("skills:            %d\n", status.Skills)
	fmt.Printf("recommendations:   %d\n", status.Recommendations)
	fmt.Printf("indexed_jobs:      %d\n", status.IndexedJobs)
	fmt.Println()
	fmt.Println("# configuration")
	fmt.Printf("similarity:        %s\n", status.Provider)
	fmt.Printf("advisor_enabled:   %t\n", status.AdvisorEnabled)
	fmt.Printf("database_path:     %s\n", status.DatabasePath)
	fmt.Printf("bleve_index_path:  %s\n", status.BleveIndexPath)
}

func printUsage() {
	fmt.Println(`susume - Skill-based job recommendation engine

Usage:
  susume seed                                Load sample skills, users, and jobs
  susume import <file>...                    Import job feeds (.json, .xlsx)
  susume resume <user-id> <file>             Extract skills from a resume into a profile
  susume recommend [flags] <user-id>         List (or -refresh) job recommendations
  susume match <user-id> <job-id>            Score one user against one job
  susume gap <user-id> <job-id>              Skill gap report for one job
  susume advise <user-id> <question>...      Ask the career advisor
  susume suggest <job-id>                    Suggest skills to learn for a posting
  susume search [flags] <query>              Keyword search over job postings
  susume apply <user-id> <job-id>            Record a job application
  susume save <user-id> <job-id>             Toggle a saved recommendation
  susume view <user-id> <job-id>             Mark a recommendation as viewed
  susume saved <user-id>                     List saved recommendations
  susume applied <user-id>                   List applied recommendations
  susume feedback <user-id> <job-id> <1-5>   Rate a recommendation
  susume users <list|show|delete>            Manage user profiles
  susume jobs <deactivate|delete> <job-id>   Manage job postings
  susume skills <list|suggest|correct|related>  Inspect the skill taxonomy
  susume watch                               Watch drop directories for job feeds
  susume status [flags]                      Show storage and index status
  susume version                             Show version
  susume help                                Show this help

Common Flags:
  --config string    Config file path (default: /usr/local/etc/susume/config.yaml)
  --debug            Enable debug logging

Recommend Flags:
  --refresh          Re-rank all active jobs before listing
  --limit int        Number of recommendations (default: configured top_n)
  --output string    Output format: text or json (default: text)

Search Flags:
  --limit int        Number of results (default: 10)
  --output string    Output format: text or json (default: text)

Examples:
  susume seed
  susume import feeds/jobs.json
  susume recommend -refresh <user-id>
  susume gap <user-id> <job-id>
  susume search python remote
  susume skills suggest pyton`)
}
