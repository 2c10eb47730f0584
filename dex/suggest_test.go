package dex

import (
	"fmt"
	"slices"
	"strings"
	"testing"
)

func TestSuggestPrefix(t *testing.T) {
	corpus := NewCorpus([]string{"bulbasaur", "charmander", "charizard"})

	result := Suggest("char", corpus)

	if !slices.Equal(result.Options, []string{"charmander", "charizard"}) {
		t.Fatalf("wrong suggestions for char: %v", result.Options)
	}

	if !result.Visible {
		t.Fatalf("dropdown should be visible when there are suggestions")
	}
}

func TestSuggestIgnoresCase(t *testing.T) {
	corpus := NewCorpus([]string{"bulbasaur", "charmander", "charizard"})

	result := Suggest("BuLb", corpus)
	if !slices.Equal(result.Options, []string{"bulbasaur"}) {
		t.Fatalf("expected case-insensitive match, got %v", result.Options)
	}
}

func TestSuggestNoMatchHides(t *testing.T) {
	result := SuggestNames("zzz", []string{"bulbasaur", "charmander"})

	if len(result.Options) != 0 {
		t.Fatalf("expected no options, got %v", result.Options)
	}

	if result.Visible {
		t.Fatalf("dropdown should be hidden when nothing matches")
	}
}

func TestSuggestEmptyPrefix(t *testing.T) {
	result := SuggestNames("", []string{"bulbasaur", "charmander"})

	if len(result.Options) != 0 {
		t.Fatalf("empty prefix should add no options, got %v", result.Options)
	}

	if !result.Visible {
		t.Fatalf("empty prefix should still reveal the dropdown")
	}
}

func TestSuggestEmptyCorpus(t *testing.T) {
	result := Suggest("char", Corpus{})

	if len(result.Options) != 0 || result.Visible {
		t.Fatalf("empty corpus should give nothing, got %+v", result)
	}
}

func TestSuggestCap(t *testing.T) {
	names := make([]string, 0)
	for i := range 25 {
		names = append(names, fmt.Sprintf("pika%02d", i))
	}

	result := SuggestNames("pika", names)

	if len(result.Options) != SuggestionCap {
		t.Fatalf("expected %d options, got %d", SuggestionCap, len(result.Options))
	}

	if !slices.Equal(result.Options, names[:SuggestionCap]) {
		t.Fatalf("expected the first %d names, got %v", SuggestionCap, result.Options)
	}
}

// Results must follow the corpus order, not the alphabetical order of the index
func TestSuggestKeepsCorpusOrder(t *testing.T) {
	names := []string{"pidgeotto", "pichu", "pikachu", "pidgey", "pidgeot", "pinsir"}

	result := SuggestNames("pi", names)
	if !slices.Equal(result.Options, names) {
		t.Fatalf("expected corpus order %v, got %v", names, result.Options)
	}

	result = SuggestNames("pidgeo", names)
	if !slices.Equal(result.Options, []string{"pidgeotto", "pidgeot"}) {
		t.Fatalf("expected [pidgeotto pidgeot], got %v", result.Options)
	}
}

func TestSuggestMatchesFilter(t *testing.T) {
	names := []string{
		"mr-mime", "mew", "mewtwo", "Mankey", "machop", "machoke", "machamp", "magnemite", "magneton",
		"marill", "mareep", "murkrow", "misdreavus", "mantine", "miltank", "mudkip", "marshtomp",
		"mightyena", "masquerain", "medicham", "meditite", "", "manectric", "minun", "metang",
	}
	corpus := NewCorpus(names)

	for _, prefix := range []string{"m", "ma", "mac", "MAG", "me", "mew", "mewt", "x", "mr", "mu"} {
		expected := make([]string, 0)
		for _, name := range names {
			if strings.HasPrefix(strings.ToLower(name), strings.ToLower(prefix)) {
				expected = append(expected, name)
			}
		}

		if len(expected) > SuggestionCap {
			expected = expected[:SuggestionCap]
		}

		result := Suggest(prefix, corpus)
		if !slices.Equal(result.Options, expected) {
			t.Fatalf("prefix %q: expected %v, got %v", prefix, expected, result.Options)
		}
	}
}

func TestSuggestDuplicateNames(t *testing.T) {
	result := SuggestNames("eevee", []string{"eevee", "vaporeon", "eevee"})

	if !slices.Equal(result.Options, []string{"eevee", "eevee"}) {
		t.Fatalf("duplicate corpus entries should both be returned, got %v", result.Options)
	}
}

func TestSelect(t *testing.T) {
	options := []string{"charmander", "charmeleon", "charizard"}

	name, ok := Select(1, options)
	if !ok || name != "charmeleon" {
		t.Fatalf("expected charmeleon, got %q (%v)", name, ok)
	}

	for _, index := range []int{-1, 3, 5} {
		if name, ok := Select(index, options); ok {
			t.Fatalf("index %d should select nothing, got %q", index, name)
		}
	}
}
