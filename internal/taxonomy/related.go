package taxonomy

import (
	"context"
	"fmt"

	"github.com/hyperwork/susume/internal/embedding"
	"github.com/hyperwork/susume/internal/models"
	"github.com/hyperwork/susume/internal/vector"
	"github.com/hyperwork/susume/pkg/utils"
)

// RelatedIndex finds skills related to a query skill. Explicit related_skills
// links from the taxonomy come first; the remainder is filled from nearest
// neighbors over skill-name embeddings.
type RelatedIndex struct {
	catalog  *Catalog
	embedder embedding.Embedder
	index    *vector.MemoryIndex
}

// NewRelatedIndex embeds every catalog skill name into an in-memory vector
// index. Call once at startup; the embedding pass is the expensive part.
func NewRelatedIndex(ctx context.Context, catalog *Catalog, embedder embedding.Embedder) (*RelatedIndex, error) {
	index, err := vector.NewMemoryIndex(embedder.Dimensions())
	if err != nil {
		return nil, err
	}

	names := catalog.Names()
	if len(names) > 0 {
		vectors, err := embedder.EmbedBatch(ctx, names)
		if err != nil {
			return nil, fmt.Errorf("embedding catalog names: %w", err)
		}
		if err := index.Add(ctx, names, vectors); err != nil {
			return nil, fmt.Errorf("indexing catalog names: %w", err)
		}
	}

	return &RelatedIndex{catalog: catalog, embedder: embedder, index: index}, nil
}

// Related returns up to k skills related to name. Taxonomy-declared related
// skills lead; embedding neighbors fill the rest. The query skill itself is
// never returned.
func (r *RelatedIndex) Related(ctx context.Context, name string, k int) ([]*models.Skill, error) {
	if k <= 0 {
		return nil, nil
	}
	queryNorm := utils.NormalizeToken(name)

	out := make([]*models.Skill, 0, k)
	seen := map[string]bool{queryNorm: true}

	if skill, ok := r.catalog.Lookup(queryNorm); ok {
		for _, rel := range skill.RelatedSkills {
			if len(out) == k {
				return out, nil
			}
			related, ok := r.catalog.Lookup(rel)
			if !ok || seen[utils.NormalizeToken(related.Name)] {
				continue
			}
			seen[utils.NormalizeToken(related.Name)] = true
			out = append(out, related)
		}
	}

	query, err := r.embedder.Embed(ctx, queryNorm)
	if err != nil {
		return nil, fmt.Errorf("embedding query skill: %w", err)
	}
	// Over-fetch to survive the seen-filter.
	hits, err := r.index.Search(ctx, query, k+len(out)+1)
	if err != nil {
		return nil, err
	}
	for _, hit := range hits {
		if len(out) == k {
			break
		}
		if seen[hit.ID] {
			continue
		}
		seen[hit.ID] = true
		if skill, ok := r.catalog.Lookup(hit.ID); ok {
			out = append(out, skill)
		}
	}
	return out, nil
}
