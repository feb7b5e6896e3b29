// Package taxonomy maintains the canonical skill catalog: case-insensitive
// lookup, "did you mean" suggestions for misspelled skill tokens, and
// related-skill discovery over skill-name embeddings.
package taxonomy

import (
	"sort"
	"strings"
	"sync"

	"github.com/hyperwork/susume/internal/models"
	"github.com/hyperwork/susume/pkg/utils"
)

// Catalog is an in-memory view of the skill taxonomy. It is loaded once from
// the store and safe for concurrent reads; Add takes the write lock.
type Catalog struct {
	mu     sync.RWMutex
	byName map[string]*models.Skill // key: normalized name
	names  []string                 // normalized, insertion order
}

// NewCatalog builds a catalog from taxonomy entries. Duplicate names keep the
// first entry.
func NewCatalog(skills []*models.Skill) *Catalog {
	c := &Catalog{byName: make(map[string]*models.Skill, len(skills))}
	for _, s := range skills {
		c.Add(s)
	}
	return c
}

// Add inserts a skill; a duplicate normalized name is ignored.
func (c *Catalog) Add(skill *models.Skill) {
	key := utils.NormalizeToken(skill.Name)
	if key == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.byName[key]; ok {
		return
	}
	c.byName[key] = skill
	c.names = append(c.names, key)
}

// Lookup returns the skill for a name, case-insensitive.
func (c *Catalog) Lookup(name string) (*models.Skill, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.byName[utils.NormalizeToken(name)]
	return s, ok
}

// Contains reports whether a name is a known skill.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// Names returns the normalized skill names in insertion order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Size returns the number of catalog entries.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.names)
}

// Canonicalize maps raw skill tokens onto catalog names where a
// case-insensitive match exists; unknown tokens pass through normalized.
// Duplicates collapse, first encounter wins.
func (c *Catalog) Canonicalize(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		key := utils.NormalizeToken(t)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if s, ok := c.Lookup(key); ok {
			out = append(out, s.Name)
		} else {
			out = append(out, key)
		}
	}
	return out
}

// ByCategory returns catalog entries in a category, sorted by popularity
// descending.
func (c *Catalog) ByCategory(category string) []*models.Skill {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []*models.Skill
	for _, key := range c.names {
		s := c.byName[key]
		if strings.EqualFold(s.Category, category) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PopularityScore > out[j].PopularityScore
	})
	return out
}
