package models

import (
	"fmt"
	"testing"
)

func TestBytesToHuman_Tiers(t *testing.T) {
	cases := []struct {
		in   uint64
		want string
	}{
		{0, "0.0B"},
		{512, "512.0B"},
		{1023, "1023.0B"},
		{1024, "1.0KB"},
		{1536, "1.5KB"},
		{1048575, "1024.0KB"},
		{1048576, "1.0MB"},
		{1073741824, "1.0GB"},
		{1099511627776, "1.0TB"},
		{1125899906842624, "1.0PB"},
	}
	for _, c := range cases {
		if got := BytesToHuman(c.in); got != c.want {
			t.Errorf("BytesToHuman(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBytesToHuman_MonotonicWithinTier(t *testing.T) {
	// Within a single unit tier, larger inputs must format as larger values.
	pairs := [][2]uint64{
		{100, 1000},
		{2048, 4096},
		{10 * 1048576, 500 * 1048576},
		{3 << 30, 900 << 30},
	}
	for _, p := range pairs {
		a, b := BytesToHuman(p[0]), BytesToHuman(p[1])
		var av, bv float64
		var au, bu string
		if _, err := fmt.Sscanf(a, "%f%s", &av, &au); err != nil {
			t.Fatalf("unparsable output %q: %v", a, err)
		}
		if _, err := fmt.Sscanf(b, "%f%s", &bv, &bu); err != nil {
			t.Fatalf("unparsable output %q: %v", b, err)
		}
		if au != bu {
			t.Fatalf("pair (%d, %d) crosses tiers: %q vs %q", p[0], p[1], a, b)
		}
		if av >= bv {
			t.Errorf("formatting not monotonic: %d -> %q, %d -> %q", p[0], a, p[1], b)
		}
	}
}
