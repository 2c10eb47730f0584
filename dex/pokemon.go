package dex

import (
	"strings"
)

type NamedResource struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

type Stat struct {
	Name string `json:"name"`
	Base int    `json:"base"`
}

type Pokemon struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Height    int             `json:"height"`
	Weight    int             `json:"weight"`
	Types     []string        `json:"types"`
	Stats     [6]Stat         `json:"stats"`
	SpriteURL string          `json:"sprite_url"`
	Moves     []NamedResource `json:"moves"`
}

type MoveDetail struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (p Pokemon) IsNil() bool {
	return p.ID == 0 && p.Name == ""
}

// Stat returns the base value of the named stat, or 0 if the pokemon doesn't have it
func (p Pokemon) Stat(name string) int {
	for _, stat := range p.Stats {
		if stat.Name == name {
			return stat.Base
		}
	}

	return 0
}

// ClampStat forces a base stat into [0, MaxStatValue]
func ClampStat(value int) int {
	return max(0, min(MaxStatValue, value))
}

// NewStats builds the fixed-order stat array from a map of api stat names to base values.
// Missing stats are left at 0, unknown stats are ignored.
func NewStats(baseStats map[string]int) [6]Stat {
	var stats [6]Stat

	for i, name := range StatOrder {
		stats[i] = Stat{
			Name: name,
			Base: ClampStat(baseStats[name]),
		}
	}

	return stats
}

// CanonicalName is the form names are sent to the api and stored in the corpus
func CanonicalName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
