package embedding

import "testing"

func TestCache_GetSet(t *testing.T) {
	c := NewCache(2)

	c.Set("python", []float32{1, 0})
	c.Set("java", []float32{0, 1})

	if v, ok := c.Get("python"); !ok || v[0] != 1 {
		t.Errorf("Get(python) = %v, %v", v, ok)
	}

	// python is now most recently used; adding a third entry evicts java.
	c.Set("sql", []float32{0.5, 0.5})
	if _, ok := c.Get("java"); ok {
		t.Error("expected java to be evicted")
	}
	if _, ok := c.Get("python"); !ok {
		t.Error("expected python to survive eviction")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCache_Overwrite(t *testing.T) {
	c := NewCache(4)
	c.Set("go", []float32{1})
	c.Set("go", []float32{2})
	if v, _ := c.Get("go"); v[0] != 2 {
		t.Errorf("overwrite failed, got %v", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}
