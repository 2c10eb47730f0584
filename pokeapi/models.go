package pokeapi

import (
	"github.com/nathanieltooley/pokedex/dex"
	"github.com/samber/lo"
)

// Raw api payloads. Only the fields the dex needs are decoded.

type PokemonPre struct {
	Id     int
	Name   string
	Height int
	Weight int
	Stats  []statSlot
	Types  []typeSlot
	Sprites struct {
		FrontDefault string `json:"front_default"`
	}
	Moves []moveSlot
}

type statSlot struct {
	BaseStat int `json:"base_stat"`
	Stat     dex.NamedResource
}

type typeSlot struct {
	Slot int
	Type dex.NamedResource
}

type moveSlot struct {
	Move dex.NamedResource
}

func (p *PokemonPre) ToPokemon() dex.Pokemon {
	baseStats := make(map[string]int, len(p.Stats))
	for _, stat := range p.Stats {
		baseStats[stat.Stat.Name] = stat.BaseStat
	}

	return dex.Pokemon{
		ID:     p.Id,
		Name:   dex.CanonicalName(p.Name),
		Height: p.Height,
		Weight: p.Weight,
		Types: lo.Map(p.Types, func(t typeSlot, _ int) string {
			return t.Type.Name
		}),
		Stats:     dex.NewStats(baseStats),
		SpriteURL: p.Sprites.FrontDefault,
		Moves: lo.Map(p.Moves, func(m moveSlot, _ int) dex.NamedResource {
			return m.Move
		}),
	}
}

type TypePre struct {
	Name            string
	DamageRelations struct {
		DoubleDamageFrom []dex.NamedResource `json:"double_damage_from"`
		DoubleDamageTo   []dex.NamedResource `json:"double_damage_to"`
	} `json:"damage_relations"`
}

func (t *TypePre) ToRelations() dex.TypeRelations {
	names := func(resources []dex.NamedResource) []string {
		return lo.Map(resources, func(r dex.NamedResource, _ int) string { return r.Name })
	}

	return dex.NewTypeRelations(t.Name, names(t.DamageRelations.DoubleDamageTo), names(t.DamageRelations.DoubleDamageFrom))
}

type MovePre struct {
	Name string
	Type dex.NamedResource
}

func (m *MovePre) ToMoveDetail() dex.MoveDetail {
	return dex.MoveDetail{
		Name: m.Name,
		Type: m.Type.Name,
	}
}

type NameListResponse struct {
	Count    int
	Next     *string // Pointers because they can be nil
	Previous *string
	Results  []dex.NamedResource
}
