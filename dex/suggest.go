package dex

import "strings"

// Suggestions is the result of one autocomplete query.
// Visible tells the caller whether the dropdown should be shown at all.
type Suggestions struct {
	Options []string `json:"options"`
	Visible bool     `json:"visible"`
}

// Suggest returns the first SuggestionCap names in corpus that start with prefix, ignoring case.
//
// An empty prefix does no filtering: the dropdown is revealed but no options are added.
func Suggest(prefix string, corpus Corpus) Suggestions {
	if prefix == "" {
		return Suggestions{Options: []string{}, Visible: true}
	}

	options := corpus.Match(strings.ToLower(prefix), SuggestionCap)

	return Suggestions{
		Options: options,
		Visible: len(options) > 0,
	}
}

// SuggestNames is Suggest over a plain name slice
func SuggestNames(prefix string, names []string) Suggestions {
	return Suggest(prefix, NewCorpus(names))
}

// Select returns the option at index. An out of range index selects nothing.
func Select(index int, options []string) (string, bool) {
	if index < 0 || index >= len(options) {
		return "", false
	}

	return options[index], true
}
