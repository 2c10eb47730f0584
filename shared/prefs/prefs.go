package prefs

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/nathanieltooley/pokedex/dex"
)

// SelectedPokemonKey holds the name of the pokemon last opened in the dex.
// The moves screen reads it on load.
const SelectedPokemonKey = "SelectedPokemon"

var ErrNoSuchKey = errors.New("no such preference exists")

type Prefs map[string]string

func LoadPrefs(filePath string) (Prefs, error) {
	prefsFile, err := os.Open(filePath)
	// If there is an error, assume the file doesn't exist
	if err != nil {
		if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
			return nil, err
		}

		prefsFile, err = os.Create(filePath)
		// If we still have errors, then bail
		if err != nil {
			return nil, err
		}
	}
	defer prefsFile.Close()

	prefsBytes, err := io.ReadAll(prefsFile)
	if err != nil {
		return nil, err
	}

	prefs := make(Prefs)
	if err := json.Unmarshal(prefsBytes, &prefs); err != nil {
		// Empty or hand edited file, carry on as if nothing was saved
		prefs = make(Prefs)
	}

	return prefs, nil
}

func SetString(filePath string, key string, value string) error {
	prefs, err := LoadPrefs(filePath)
	if err != nil {
		return err
	}

	prefs[key] = value

	prefsJson, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return os.WriteFile(filePath, prefsJson, 0644)
}

func GetString(filePath string, key string) (string, error) {
	prefs, err := LoadPrefs(filePath)
	if err != nil {
		return "", err
	}

	value, ok := prefs[key]
	if !ok {
		return "", ErrNoSuchKey
	}

	return value, nil
}

func SaveSelectedPokemon(filePath string, name string) error {
	return SetString(filePath, SelectedPokemonKey, dex.CanonicalName(name))
}

func LoadSelectedPokemon(filePath string) (string, error) {
	return GetString(filePath, SelectedPokemonKey)
}
