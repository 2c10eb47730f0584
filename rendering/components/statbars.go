package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/nathanieltooley/pokedex/dex"
)

var statLabels = [6]string{"HP", "ATK", "DEF", "SP.ATK", "SP.DEF", "SPD"}

// StatBars draws a pokemon's base stats as bars filled relative to the highest possible stat
type StatBars struct {
	bar    progress.Model
	values [6]int
	// percent of dex.MaxStatValue
	fills [6]float64
}

func NewStatBars(width int) StatBars {
	return StatBars{
		bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(width), progress.WithoutPercentage()),
	}
}

func (s StatBars) SetPokemon(pokemon dex.Pokemon) StatBars {
	for i, name := range dex.StatOrder {
		s.values[i] = pokemon.Stat(name)
	}
	s.fills = dex.StatBars(pokemon)

	return s
}

func (s StatBars) Fills() [6]float64 {
	return s.fills
}

func (s StatBars) View() string {
	rows := make([]string, len(s.fills))
	for i, fill := range s.fills {
		label := fmt.Sprintf("%-7s%4d ", statLabels[i], s.values[i])
		rows[i] = label + s.bar.ViewAs(fill/100)
	}

	return strings.Join(rows, "\n")
}
