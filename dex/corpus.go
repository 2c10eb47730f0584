package dex

import (
	"context"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/samber/lo"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Corpus is an immutable snapshot of every known pokemon name.
// The zero value is an empty corpus.
type Corpus struct {
	names []string
	// lowercase name -> positions in names
	index *patricia.Trie
}

func NewCorpus(names []string) Corpus {
	c := Corpus{
		names: slices.Clone(names),
		index: patricia.NewTrie(),
	}

	for i, name := range c.names {
		if name == "" {
			continue
		}

		key := patricia.Prefix(strings.ToLower(name))
		if positions := c.index.Get(key); positions != nil {
			c.index.Set(key, append(positions.([]int), i))
		} else {
			c.index.Insert(key, []int{i})
		}
	}

	return c
}

func (c Corpus) Len() int {
	return len(c.names)
}

func (c Corpus) Names() []string {
	return slices.Clone(c.names)
}

// Match returns up to limit names starting with lowerPrefix, in corpus order
func (c Corpus) Match(lowerPrefix string, limit int) []string {
	if c.index == nil || limit <= 0 {
		return []string{}
	}

	positions := make([]int, 0)
	err := c.index.VisitSubtree(patricia.Prefix(lowerPrefix), func(_ patricia.Prefix, item patricia.Item) error {
		positions = append(positions, item.([]int)...)
		return nil
	})
	if err != nil {
		internalLogger.Error(err, "error visiting name index", "prefix", lowerPrefix)
	}

	// trie order is lexicographic, results have to follow the corpus
	slices.Sort(positions)
	if len(positions) > limit {
		positions = positions[:limit]
	}

	return lo.Map(positions, func(pos int, _ int) string {
		return c.names[pos]
	})
}

type NameLoader interface {
	ListNames(ctx context.Context) ([]string, error)
}

// CorpusCache holds the session's corpus. It is loaded once and replaced wholesale;
// readers only ever see complete snapshots.
type CorpusCache struct {
	current atomic.Pointer[Corpus]
}

func NewCorpusCache() *CorpusCache {
	return &CorpusCache{}
}

// Load fetches the name list and replaces the snapshot.
// A failed fetch installs an empty corpus so queries still work.
func (c *CorpusCache) Load(ctx context.Context, loader NameLoader) error {
	names, err := loader.ListNames(ctx)
	if err != nil {
		internalLogger.Error(err, "failed to fetch pokemon names")
		c.Replace([]string{})
		return err
	}

	c.Replace(names)
	internalLogger.V(1).Info("loaded name corpus", "count", len(names))
	return nil
}

func (c *CorpusCache) Replace(names []string) Corpus {
	corpus := NewCorpus(names)
	c.current.Store(&corpus)
	return corpus
}

func (c *CorpusCache) Loaded() bool {
	return c.current.Load() != nil
}

func (c *CorpusCache) Snapshot() Corpus {
	corpus := c.current.Load()
	if corpus == nil {
		return Corpus{}
	}

	return *corpus
}
