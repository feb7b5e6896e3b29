package matching

import (
	"context"

	"go.uber.org/zap"

	"github.com/hyperwork/susume/internal/embedding"
	"github.com/hyperwork/susume/internal/vector"
)

// SimilarityProvider scores semantic similarity between two skill lists.
// Similarities returns a len(userSkills) × len(jobSkills) matrix of scores
// in [0,1].
type SimilarityProvider interface {
	Similarities(ctx context.Context, userSkills, jobSkills []string) ([][]float64, error)
	Name() string
}

// EmbeddingSimilarity scores skill pairs with cosine similarity over sentence
// embeddings.
type EmbeddingSimilarity struct {
	embedder embedding.Embedder
}

// NewEmbeddingSimilarity wraps an embedder as a SimilarityProvider.
func NewEmbeddingSimilarity(embedder embedding.Embedder) *EmbeddingSimilarity {
	return &EmbeddingSimilarity{embedder: embedder}
}

// Name returns the provider name.
func (p *EmbeddingSimilarity) Name() string { return "embedding" }

// Similarities embeds both lists and returns pairwise cosine similarities.
func (p *EmbeddingSimilarity) Similarities(ctx context.Context, userSkills, jobSkills []string) ([][]float64, error) {
	userEmb, err := p.embedder.EmbedBatch(ctx, userSkills)
	if err != nil {
		return nil, err
	}
	jobEmb, err := p.embedder.EmbedBatch(ctx, jobSkills)
	if err != nil {
		return nil, err
	}
	sims := make([][]float64, len(userSkills))
	for i := range userEmb {
		row := make([]float64, len(jobSkills))
		for j := range jobEmb {
			row[j] = vector.CosineSimilarity(userEmb[i], jobEmb[j])
		}
		sims[i] = row
	}
	return sims, nil
}

// Close releases the underlying embedder.
func (p *EmbeddingSimilarity) Close() error {
	return p.embedder.Close()
}

// NewDefaultProvider returns an embedding-backed provider when the ONNX model
// loads, otherwise the TF-IDF fallback. Matching quality degrades but matching
// never becomes unavailable.
func NewDefaultProvider(modelPath string, dimensions, maxTokens, cacheSize int, logger *zap.Logger) SimilarityProvider {
	embedder, err := embedding.NewONNXEmbedder(modelPath, dimensions, maxTokens, cacheSize)
	if err != nil {
		logger.Warn("embedding model unavailable, using TF-IDF similarity fallback", zap.Error(err))
		return NewTFIDFSimilarity()
	}
	logger.Info("embedding model loaded", zap.String("model_path", modelPath))
	return NewEmbeddingSimilarity(embedder)
}
