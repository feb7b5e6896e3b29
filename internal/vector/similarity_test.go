package vector

import (
	"context"
	"math"
	"testing"
)

func TestInnerProduct(t *testing.T) {
	a := []float32{1, 0, 0}
	b := []float32{0, 1, 0}
	if got := InnerProduct(a, a); got != 1.0 {
		t.Errorf("InnerProduct(a, a) = %v, want 1.0", got)
	}
	if got := InnerProduct(a, b); got != 0.0 {
		t.Errorf("InnerProduct(a, b) = %v, want 0.0", got)
	}
	if got := InnerProduct(a, []float32{1, 0}); got != 0.0 {
		t.Errorf("InnerProduct length mismatch = %v, want 0.0", got)
	}
}

func TestCosineSimilarity_Clamped(t *testing.T) {
	a := []float32{2, 0}
	if got := CosineSimilarity(a, a); got != 1.0 {
		t.Errorf("CosineSimilarity clamp = %v, want 1.0", got)
	}
	b := []float32{-1, 0}
	if got := CosineSimilarity([]float32{1, 0}, b); got != 0.0 {
		t.Errorf("CosineSimilarity negative clamp = %v, want 0.0", got)
	}
}

func TestCosine_Unnormalized(t *testing.T) {
	a := []float64{3, 4}
	b := []float64{6, 8}
	if got := Cosine(a, b); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Cosine(parallel) = %v, want 1.0", got)
	}
	if got := Cosine(a, []float64{0, 0}); got != 0 {
		t.Errorf("Cosine(zero) = %v, want 0", got)
	}
}

func TestMemoryIndex_SearchAndRemove(t *testing.T) {
	idx, err := NewMemoryIndex(2)
	if err != nil {
		t.Fatalf("NewMemoryIndex: %v", err)
	}
	ctx := context.Background()
	err = idx.Add(ctx,
		[]string{"python", "java", "sql"},
		[][]float32{{1, 0}, {0, 1}, {0.6, 0.8}},
	)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	results, err := idx.Search(ctx, []float32{1, 0}, 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].ID != "python" {
		t.Errorf("top result = %s, want python", results[0].ID)
	}

	if err := idx.Remove(ctx, []string{"python"}); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if idx.Size() != 2 {
		t.Errorf("Size() = %d after remove, want 2", idx.Size())
	}
}

func TestMemoryIndex_DimensionMismatch(t *testing.T) {
	idx, _ := NewMemoryIndex(3)
	err := idx.Add(context.Background(), []string{"x"}, [][]float32{{1, 0}})
	if err == nil {
		t.Error("expected dimension mismatch error")
	}
	if _, err := idx.Search(context.Background(), []float32{1}, 1); err == nil {
		t.Error("expected query dimension mismatch error")
	}
}
