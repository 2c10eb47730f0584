package dex

import (
	"context"
	"errors"
	"testing"
)

type failingLoader struct{}

func (failingLoader) ListNames(context.Context) ([]string, error) {
	return nil, errors.New("offline")
}

type staticLoader []string

func (l staticLoader) ListNames(context.Context) ([]string, error) {
	return l, nil
}

func TestCorpusCache(t *testing.T) {
	cache := NewCorpusCache()

	if cache.Loaded() || cache.Snapshot().Len() != 0 {
		t.Fatalf("new cache should be empty and unloaded")
	}

	if err := cache.Load(context.Background(), staticLoader{"bulbasaur", "ivysaur"}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	snapshot := cache.Snapshot()
	if snapshot.Len() != 2 {
		t.Fatalf("expected 2 names, got %d", snapshot.Len())
	}

	// a reload replaces the corpus but old snapshots stay as they were
	cache.Replace([]string{"venusaur"})
	if snapshot.Len() != 2 || cache.Snapshot().Len() != 1 {
		t.Fatalf("replace should not touch existing snapshots")
	}

	if err := cache.Load(context.Background(), failingLoader{}); err == nil {
		t.Fatalf("expected load error")
	}

	if !cache.Loaded() || cache.Snapshot().Len() != 0 {
		t.Fatalf("a failed load should leave an empty corpus")
	}
}
