package matching

import (
	"fmt"
	"strings"
)

// Explanation renders a human-readable summary of a match result. Pure
// formatting; the total counts matched plus missing skills, which can differ
// from the job's required-skill count when a skill sits in both lists.
func Explanation(result *MatchResult) string {
	matched := len(result.MatchedSkills)
	total := matched + len(result.MissingSkills)

	var b strings.Builder
	fmt.Fprintf(&b, "You match %d out of %d required skills (%.0f%% match). ",
		matched, total, result.Score*100)

	if len(result.MatchedSkills) > 0 {
		fmt.Fprintf(&b, "Your skills in %s align well with this position. ",
			strings.Join(firstN(result.MatchedSkills, 3), ", "))
	}
	if len(result.MissingSkills) > 0 {
		fmt.Fprintf(&b, "To strengthen your application, consider developing: %s.",
			strings.Join(firstN(result.MissingSkills, 3), ", "))
	}
	return strings.TrimSpace(b.String())
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
