package dex

const (
	// Largest base stat any pokemon can have
	MaxStatValue = 255

	// SuggestionCap is the most names a single autocomplete query returns
	SuggestionCap = 10

	FirstPokemonID = 1
	LastPokemonID  = 1025

	// The name listing endpoint is queried with this fixed limit
	NameListLimit = 1302

	UnknownLocation = "Location Information Unknown..."
)

const (
	STAT_HP       = "hp"
	STAT_ATTACK   = "attack"
	STAT_DEFENSE  = "defense"
	STAT_SPATTACK = "special-attack"
	STAT_SPDEF    = "special-defense"
	STAT_SPEED    = "speed"
)

// StatOrder is the fixed order stats are stored and displayed in
var StatOrder = [6]string{
	STAT_HP,
	STAT_ATTACK,
	STAT_DEFENSE,
	STAT_SPATTACK,
	STAT_SPDEF,
	STAT_SPEED,
}

const (
	TYPENAME_NORMAL   = "normal"
	TYPENAME_FIRE     = "fire"
	TYPENAME_WATER    = "water"
	TYPENAME_ELECTRIC = "electric"
	TYPENAME_GRASS    = "grass"
	TYPENAME_ICE      = "ice"
	TYPENAME_FIGHTING = "fighting"
	TYPENAME_POISON   = "poison"
	TYPENAME_GROUND   = "ground"
	TYPENAME_FLYING   = "flying"
	TYPENAME_PSYCHIC  = "psychic"
	TYPENAME_BUG      = "bug"
	TYPENAME_ROCK     = "rock"
	TYPENAME_GHOST    = "ghost"
	TYPENAME_DRAGON   = "dragon"
	TYPENAME_DARK     = "dark"
	TYPENAME_STEEL    = "steel"
	TYPENAME_FAIRY    = "fairy"
)
