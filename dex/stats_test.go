package dex

import (
	"math"
	"testing"
)

func TestNormalizeStatBounds(t *testing.T) {
	if v := NormalizeBaseStat(255); v != 100 {
		t.Fatalf("255 should normalize to 100, got %f", v)
	}

	if v := NormalizeBaseStat(0); v != 0 {
		t.Fatalf("0 should normalize to 0, got %f", v)
	}

	if v := NormalizeBaseStat(128); math.Abs(v-50.196) > 0.001 {
		t.Fatalf("128 should normalize to ~50.196, got %f", v)
	}
}

func TestNormalizeStatOverMax(t *testing.T) {
	if v := NormalizeStat(300, 255); v <= 100 {
		t.Fatalf("values above max shouldn't be clamped, got %f", v)
	}

	if v := NormalizeStat(10, 0); v != 0 {
		t.Fatalf("zero max should give 0, got %f", v)
	}
}

func TestNewStatsClamps(t *testing.T) {
	stats := NewStats(map[string]int{
		STAT_HP:     300,
		STAT_ATTACK: -5,
		STAT_SPEED:  90,
		"accuracy":  100,
	})

	if stats[0].Name != STAT_HP || stats[0].Base != MaxStatValue {
		t.Fatalf("hp should be clamped to %d, got %+v", MaxStatValue, stats[0])
	}

	if stats[1].Base != 0 {
		t.Fatalf("attack should be clamped to 0, got %d", stats[1].Base)
	}

	if stats[2].Name != STAT_DEFENSE || stats[2].Base != 0 {
		t.Fatalf("missing defense should be 0, got %+v", stats[2])
	}

	if stats[5].Name != STAT_SPEED || stats[5].Base != 90 {
		t.Fatalf("speed should be 90, got %+v", stats[5])
	}
}

func TestStatBars(t *testing.T) {
	p := Pokemon{
		Name: "bulbasaur",
		Stats: NewStats(map[string]int{
			STAT_HP:       45,
			STAT_ATTACK:   49,
			STAT_DEFENSE:  49,
			STAT_SPATTACK: 65,
			STAT_SPDEF:    65,
			STAT_SPEED:    45,
		}),
	}

	bars := StatBars(p)
	for i, name := range StatOrder {
		expected := NormalizeBaseStat(p.Stat(name))
		if bars[i] != expected {
			t.Fatalf("bar %d (%s) should be %f, got %f", i, name, expected, bars[i])
		}
	}
}
