package word

import "testing"

func TestLeadingTrailingZeros(t *testing.T) {
	if got := LeadingZeros(uint64(0)); got != 64 {
		t.Fatalf("LeadingZeros(0) = %d, want 64", got)
	}
	if got := LeadingZeros(uint64(1)); got != 63 {
		t.Fatalf("LeadingZeros(1) = %d, want 63", got)
	}
	if got := TrailingZeros(uint64(1) << 63); got != 63 {
		t.Fatalf("TrailingZeros(1<<63) = %d, want 63", got)
	}
}

func TestReverseBytes(t *testing.T) {
	got := ReverseBytes(uint64(0x0102030405060708))
	want := uint64(0x0807060504030201)
	if got != want {
		t.Fatalf("ReverseBytes = %#x, want %#x", got, want)
	}
}

func TestFastFloorLog2(t *testing.T) {
	cases := map[uint64]int{1: 0, 2: 1, 3: 1, 4: 2, 7: 2, 8: 3, 1 << 40: 40}
	for v, want := range cases {
		if got := FastFloorLog2(v); got != want {
			t.Fatalf("FastFloorLog2(%d) = %d, want %d", v, got, want)
		}
	}
}

func TestUint128ShlKnownValues(t *testing.T) {
	u := FromLo(1)
	got := u.Shl(64)
	if got.Hi != 1 || got.Lo != 0 {
		t.Fatalf("Shl(64) = %+v, want Hi=1 Lo=0", got)
	}
	got = u.Shl(127)
	if got.Hi != (1 << 63) {
		t.Fatalf("Shl(127) = %+v", got)
	}
	got = u.Shl(128)
	if got != (Uint128{}) {
		t.Fatalf("Shl(128) = %+v, want zero", got)
	}
}

func TestUint128ShrKnownValues(t *testing.T) {
	u := FromHiBit()
	got := u.Shr(64)
	if got.Hi != 0 || got.Lo != (1<<63) {
		t.Fatalf("Shr(64) = %+v", got)
	}
	got = u.Shr(127)
	if got.Lo != 1 {
		t.Fatalf("Shr(127) = %+v", got)
	}
}
