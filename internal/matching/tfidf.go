package matching

import (
	"context"
	"math"
	"strings"

	"github.com/hyperwork/susume/internal/vector"
)

// TFIDFSimilarity is the fallback similarity provider used when no embedding
// model is available. Each skill is vectorized over word 1-2 grams with
// smoothed IDF weighting, fitted per call over both lists, and pairs are
// compared with cosine similarity. Only skills sharing surface words score
// above zero, so it is much coarser than embeddings but needs no model file.
type TFIDFSimilarity struct{}

// NewTFIDFSimilarity returns the TF-IDF fallback provider.
func NewTFIDFSimilarity() *TFIDFSimilarity {
	return &TFIDFSimilarity{}
}

// Name returns the provider name.
func (p *TFIDFSimilarity) Name() string { return "tfidf" }

// Similarities fits TF-IDF over userSkills+jobSkills and returns pairwise
// cosine similarities.
func (p *TFIDFSimilarity) Similarities(ctx context.Context, userSkills, jobSkills []string) ([][]float64, error) {
	docs := make([][]string, 0, len(userSkills)+len(jobSkills))
	for _, s := range userSkills {
		docs = append(docs, ngrams(s))
	}
	for _, s := range jobSkills {
		docs = append(docs, ngrams(s))
	}

	// Document frequency per term.
	df := make(map[string]int)
	for _, terms := range docs {
		seen := make(map[string]bool, len(terms))
		for _, t := range terms {
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}

	// Stable term order for vector layout.
	vocab := make(map[string]int, len(df))
	for _, terms := range docs {
		for _, t := range terms {
			if _, ok := vocab[t]; !ok {
				vocab[t] = len(vocab)
			}
		}
	}

	n := float64(len(docs))
	vectors := make([][]float64, len(docs))
	for d, terms := range docs {
		vec := make([]float64, len(vocab))
		for _, t := range terms {
			// Smoothed IDF: ln((1+n)/(1+df)) + 1.
			idf := math.Log((1+n)/(1+float64(df[t]))) + 1
			vec[vocab[t]] += idf
		}
		vectors[d] = vec
	}

	sims := make([][]float64, len(userSkills))
	for i := range userSkills {
		row := make([]float64, len(jobSkills))
		for j := range jobSkills {
			row[j] = vector.Cosine(vectors[i], vectors[len(userSkills)+j])
		}
		sims[i] = row
	}
	return sims, nil
}

// ngrams returns lowercase word unigrams and bigrams of a skill token.
func ngrams(s string) []string {
	words := strings.Fields(strings.ToLower(s))
	grams := make([]string, 0, 2*len(words))
	grams = append(grams, words...)
	for i := 0; i+1 < len(words); i++ {
		grams = append(grams, words[i]+" "+words[i+1])
	}
	return grams
}
