package dex

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
)

// FormatHeight converts decimetres to metres, e.g. 7 -> "0.7m"
func FormatHeight(decimetres int) string {
	return strconv.FormatFloat(float64(decimetres)/10, 'f', -1, 64) + "m"
}

// FormatWeight converts hectograms to kilograms, e.g. 69 -> "6.9kg"
func FormatWeight(hectograms int) string {
	return strconv.FormatFloat(float64(hectograms)/10, 'f', -1, 64) + "kg"
}

// FormatTypes renders a pokemon's types the way the detail panel shows them: "GRASS, POISON"
func FormatTypes(types []string) string {
	return strings.ToUpper(strings.Join(types, ", "))
}

// FormatStats renders one "NAME: VALUE" line per stat
func FormatStats(stats [6]Stat) string {
	return strings.ToUpper(strings.Join(lo.Map(stats[:], func(s Stat, _ int) string {
		return fmt.Sprintf("%s: %d", s.Name, s.Base)
	}), "\n"))
}

// FormatMove renders a move row, e.g. "THUNDER PUNCH  (TYPE: ELECTRIC)"
func FormatMove(move MoveDetail) string {
	return fmt.Sprintf("%s  (TYPE: %s)", strings.ToUpper(strings.ReplaceAll(move.Name, "-", " ")), strings.ToUpper(move.Type))
}

// CapitalizeFirst uppercases only the first letter: "mr-mime" -> "Mr-mime"
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// FormatComparison is the stat block shown for one side of a comparison
func FormatComparison(p Pokemon) string {
	types := strings.Join(lo.Map(p.Types, func(t string, _ int) string {
		return CapitalizeFirst(t)
	}), ", ")

	lines := []string{
		fmt.Sprintf("Name: %s", CapitalizeFirst(p.Name)),
		"",
		fmt.Sprintf("Types: %s", types),
		"",
		fmt.Sprintf("HP: %d", p.Stat(STAT_HP)),
		fmt.Sprintf("Attack: %d", p.Stat(STAT_ATTACK)),
		fmt.Sprintf("Defense: %d", p.Stat(STAT_DEFENSE)),
		fmt.Sprintf("Special Attack: %d", p.Stat(STAT_SPATTACK)),
		fmt.Sprintf("Special Defense: %d", p.Stat(STAT_SPDEF)),
		fmt.Sprintf("Speed: %d", p.Stat(STAT_SPEED)),
	}

	return strings.Join(lines, "\n")
}
