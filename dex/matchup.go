package dex

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TypeRelations holds the damage relations of a single type.
// Both lists are sets: lowercase and without duplicates.
type TypeRelations struct {
	Name             string   `json:"name"`
	DoubleDamageTo   []string `json:"double_damage_to"`
	DoubleDamageFrom []string `json:"double_damage_from"`
}

func NewTypeRelations(name string, doubleDamageTo []string, doubleDamageFrom []string) TypeRelations {
	return TypeRelations{
		Name:             CanonicalName(name),
		DoubleDamageTo:   normalizeTypeSet(doubleDamageTo),
		DoubleDamageFrom: normalizeTypeSet(doubleDamageFrom),
	}
}

type TypeFetcher interface {
	FetchType(ctx context.Context, name string) (TypeRelations, error)
}

type TypeFetcherFunc func(ctx context.Context, name string) (TypeRelations, error)

func (f TypeFetcherFunc) FetchType(ctx context.Context, name string) (TypeRelations, error) {
	return f(ctx, name)
}

// Matchup is the combined type effectiveness of a pokemon.
// Strengths are the types it deals double damage to, Weaknesses the types that deal double damage to it.
type Matchup struct {
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	// Types whose relations couldn't be fetched and were left out
	Failed []string `json:"failed,omitempty"`
}

// Aggregate fetches the relations for every type concurrently and unions them.
// A type that fails to fetch is logged and skipped, the rest still count.
func Aggregate(ctx context.Context, types []string, fetcher TypeFetcher) Matchup {
	types = lo.Uniq(lo.Map(types, func(t string, _ int) string {
		return CanonicalName(t)
	}))

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		relations = make([]TypeRelations, 0, len(types))
		failed    = make([]string, 0)
	)

	for _, typeName := range types {
		wg.Add(1)
		go func() {
			defer wg.Done()

			rel, err := fetcher.FetchType(ctx, typeName)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				internalLogger.Error(err, "error fetching type data", "type", typeName)
				failed = append(failed, typeName)
				return
			}

			relations = append(relations, rel)
		}()
	}

	wg.Wait()

	matchup := AggregateRelations(relations...)
	if len(failed) > 0 {
		slices.Sort(failed)
		matchup.Failed = failed
	}

	return matchup
}

// AggregateRelations unions already fetched relations. Order of relations doesn't matter.
func AggregateRelations(relations ...TypeRelations) Matchup {
	strengths := make([]string, 0)
	weaknesses := make([]string, 0)

	for _, rel := range relations {
		strengths = append(strengths, rel.DoubleDamageTo...)
		weaknesses = append(weaknesses, rel.DoubleDamageFrom...)
	}

	return Matchup{
		Strengths:  normalizeTypeSet(strengths),
		Weaknesses: normalizeTypeSet(weaknesses),
	}
}

// FormatTypeList renders type names title cased and comma separated, e.g. "Ground, Rock, Water"
func FormatTypeList(names []string) string {
	caser := cases.Title(language.English)

	return strings.Join(lo.Map(names, func(name string, _ int) string {
		return caser.String(name)
	}), ", ")
}

func normalizeTypeSet(names []string) []string {
	set := lo.Uniq(lo.FilterMap(names, func(name string, _ int) (string, bool) {
		name = CanonicalName(name)
		return name, name != ""
	}))

	slices.Sort(set)
	return set
}
