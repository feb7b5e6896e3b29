package taxonomy

import (
	"sort"
	"strings"

	"github.com/hyperwork/susume/pkg/utils"
)

// Suggestion is one "did you mean" candidate for a misspelled skill token.
type Suggestion struct {
	Name     string  `json:"name"`
	Distance int     `json:"distance"`
	Score    float64 `json:"score"`
}

// Suggester proposes catalog skills for tokens that are not in the catalog,
// ranked by edit distance and taxonomy popularity.
type Suggester struct {
	catalog        *Catalog
	maxDistance    int
	maxSuggestions int
}

// NewSuggester creates a suggester over the catalog. maxDistance and
// maxSuggestions fall back to 2 and 5 when non-positive.
func NewSuggester(catalog *Catalog, maxDistance, maxSuggestions int) *Suggester {
	if maxDistance <= 0 {
		maxDistance = 2
	}
	if maxSuggestions <= 0 {
		maxSuggestions = 5
	}
	return &Suggester{
		catalog:        catalog,
		maxDistance:    maxDistance,
		maxSuggestions: maxSuggestions,
	}
}

// Suggest returns up to maxSuggestions catalog skills within maxDistance edits
// of term, best first. An exact catalog member gets no suggestions.
func (s *Suggester) Suggest(term string) []Suggestion {
	termNorm := utils.NormalizeToken(term)
	if termNorm == "" || s.catalog.Contains(termNorm) {
		return nil
	}

	var suggestions []Suggestion
	for _, name := range s.catalog.Names() {
		// Length difference alone can rule out a candidate.
		lenDiff := len(name) - len(termNorm)
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}
		if lenDiff > s.maxDistance {
			continue
		}

		distance := LevenshteinDistance(termNorm, name)
		if distance > s.maxDistance {
			continue
		}

		skill, _ := s.catalog.Lookup(name)
		// Closer edits beat popularity; popularity breaks near-ties.
		score := (1.0 / float64(distance+1)) * (1.0 + skill.PopularityScore)
		suggestions = append(suggestions, Suggestion{
			Name:     skill.Name,
			Distance: distance,
			Score:    score,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if len(suggestions) > s.maxSuggestions {
		suggestions = suggestions[:s.maxSuggestions]
	}
	return suggestions
}

// Correct maps each token onto its best catalog suggestion when one exists,
// otherwise keeps the token. Returns the corrected list plus the tokens that
// were replaced.
func (s *Suggester) Correct(tokens []string) (corrected []string, replaced []string) {
	corrected = make([]string, 0, len(tokens))
	for _, t := range tokens {
		if s.catalog.Contains(t) {
			corrected = append(corrected, t)
			continue
		}
		if sugg := s.Suggest(t); len(sugg) > 0 {
			corrected = append(corrected, sugg[0].Name)
			replaced = append(replaced, strings.TrimSpace(t))
			continue
		}
		corrected = append(corrected, t)
	}
	return corrected, replaced
}
