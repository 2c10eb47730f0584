package main

import "github.com/rs/zerolog"

const debugLevel = zerolog.DebugLevel

// Column width of one side of a comparison
const compareColumnWidth = 30
