package dex

import (
	"encoding/json"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type EncounterArea struct {
	LocationArea NamedResource `json:"location_area"`
}

type encounterWrapper struct {
	Locations []EncounterArea `json:"locations"`
}

// ParseEncounters turns the raw encounter response into display names.
// The endpoint returns a bare array so it gets wrapped in an object before decoding.
// Empty or invalid responses give a single UnknownLocation entry.
func ParseEncounters(raw []byte) []string {
	wrapped := make([]byte, 0, len(raw)+len(`{"locations":}`))
	wrapped = append(wrapped, `{"locations":`...)
	wrapped = append(wrapped, raw...)
	wrapped = append(wrapped, '}')

	var encounters encounterWrapper
	if err := json.Unmarshal(wrapped, &encounters); err != nil {
		internalLogger.Error(err, "invalid encounter data")
		return []string{UnknownLocation}
	}

	if len(encounters.Locations) == 0 {
		return []string{UnknownLocation}
	}

	areaNames := lo.Uniq(lo.Map(encounters.Locations, func(e EncounterArea, _ int) string {
		return e.LocationArea.Name
	}))

	return lo.Map(areaNames, func(name string, _ int) string {
		return RegionName(name)
	})
}

// RegionName formats a location area name, e.g. "kanto-route-2-south-towards-viridian-city-area"
// becomes "Kanto Route 2 South Towards Viridian City"
func RegionName(areaName string) string {
	name := strings.ReplaceAll(areaName, "-", " ")
	name = strings.ReplaceAll(name, " area", "")

	return cases.Title(language.English).String(name)
}
