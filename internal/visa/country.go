package visa

import (
	"errors"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var ErrInvalidCountry = errors.New("unknown country")

var (
	namesOnce   sync.Once
	regionNames map[string]language.Region
)

// ResolveCountry accepts an ISO-3166 alpha-2 code ("JP") or an English
// country name ("Japan", case-insensitive).
func ResolveCountry(input string) (language.Region, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return language.Region{}, ErrInvalidCountry
	}

	if len(input) == 2 {
		region, err := language.ParseRegion(strings.ToUpper(input))
		if err == nil && region.IsCountry() {
			return region, nil
		}
		return language.Region{}, ErrInvalidCountry
	}

	namesOnce.Do(buildRegionNames)
	if region, ok := regionNames[strings.ToLower(input)]; ok {
		return region, nil
	}
	return language.Region{}, ErrInvalidCountry
}

func CountryName(region language.Region) string {
	return display.English.Regions().Name(region)
}

func buildRegionNames() {
	regionNames = make(map[string]language.Region)
	for a := 'A'; a <= 'Z'; a++ {
		for b := 'A'; b <= 'Z'; b++ {
			region, err := language.ParseRegion(string([]rune{a, b}))
			if err != nil || !region.IsCountry() {
				continue
			}
			if name := CountryName(region); name != "" {
				regionNames[strings.ToLower(name)] = region
			}
		}
	}
}
