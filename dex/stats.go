package dex

// NormalizeStat turns a stat into a percentage of max.
// Values over max aren't clamped and come out above 100.
func NormalizeStat(value int, max int) float64 {
	if max <= 0 {
		return 0
	}

	return (float64(value) / float64(max)) * 100
}

func NormalizeBaseStat(value int) float64 {
	return NormalizeStat(value, MaxStatValue)
}

// StatBars returns the normalized value of each stat in StatOrder
func StatBars(p Pokemon) [6]float64 {
	var bars [6]float64

	for i, name := range StatOrder {
		bars[i] = NormalizeBaseStat(p.Stat(name))
	}

	return bars
}
