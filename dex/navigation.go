package dex

// NextID returns the id after id, wrapping back to the first pokemon
func NextID(id int) int {
	id++
	if id > LastPokemonID {
		id = FirstPokemonID
	}

	return id
}

// PrevID returns the id before id, wrapping around to the last pokemon
func PrevID(id int) int {
	id--
	if id < FirstPokemonID {
		id = LastPokemonID
	}

	return id
}
