package utils

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

func TestGenerateCallsignFormat(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		callsign := GenerateCallsign(rng)
		parts := strings.Split(callsign, " ")
		if len(parts) != 3 {
			t.Fatalf("%q: expected three parts", callsign)
		}
		n, err := strconv.Atoi(parts[2])
		if err != nil || n < 1000 || n > 9999 {
			t.Fatalf("%q: expected a 4 digit suffix", callsign)
		}
	}
}

func TestGenerateCallsignIsSeeded(t *testing.T) {
	a := GenerateCallsign(rand.New(rand.NewSource(7)))
	b := GenerateCallsign(rand.New(rand.NewSource(7)))
	if a != b {
		t.Fatalf("same seed gave %q and %q", a, b)
	}
	if GenerateCallsign(nil) == "" {
		t.Fatalf("nil source should fall back to a clock seed")
	}
}
