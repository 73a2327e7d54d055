// Package data embeds the static offers served when the live source is
// unavailable. Dates use 2025-01-01 as day zero and airports use the ORG
// and DST placeholders; hotels use CTY for their city.
package data

import _ "embed"

//go:embed flights.json
var FlightsData []byte

//go:embed hotels.json
var HotelsData []byte
