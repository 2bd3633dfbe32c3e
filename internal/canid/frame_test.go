package canid

import (
	"testing"

	"go.einride.tech/can"
)

func TestFrameFields(t *testing.T) {
	std := NewStandardIDReg(mustStandard(t, 0x2A)).WithRTR(true)
	f := std.Frame()
	if f.ID != 0x2A || f.IsExtended || !f.IsRemote {
		t.Fatalf("standard frame fields: %+v", f)
	}

	ext := NewExtendedIDReg(mustExtended(t, 0x12345))
	f = ext.Frame()
	if f.ID != 0x12345 || !f.IsExtended || f.IsRemote {
		t.Fatalf("extended frame fields: %+v", f)
	}
	if f.Length != 0 {
		t.Fatalf("identifier-only frame should carry no payload")
	}
}

func TestFrameRoundTrip(t *testing.T) {
	regs := []IDReg{
		NewStandardIDReg(mustStandard(t, 0)),
		NewStandardIDReg(mustStandard(t, 0x7FF)).WithRTR(true),
		NewExtendedIDReg(mustExtended(t, 0x1FFFFFFF)),
		NewExtendedIDReg(mustExtended(t, 0x800)).WithRTR(true),
	}
	for _, want := range regs {
		got, ok := RegFromFrame(want.Frame())
		if !ok || got != want {
			t.Fatalf("frame round trip: got %+v ok=%v, want %+v", got, ok, want)
		}
	}
}

func TestRegFromFrameRange(t *testing.T) {
	cases := []can.Frame{
		{ID: 0x800},                      // too big for standard
		{ID: 0x12345},                    // extended-only id without IDE
		{ID: 0x20000000, IsExtended: true}, // too big for extended
	}
	for _, f := range cases {
		if _, ok := RegFromFrame(f); ok {
			t.Fatalf("RegFromFrame accepted out-of-range id 0x%X (ext=%v)", f.ID, f.IsExtended)
		}
	}
}
