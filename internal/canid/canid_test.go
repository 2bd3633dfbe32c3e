package canid

import "testing"

func TestStandardIDRange(t *testing.T) {
	cases := []struct {
		raw uint16
		ok  bool
	}{
		{0, true},
		{1, true},
		{0x7FF, true},
		{0x800, false},
		{0xFFFF, false},
	}
	for _, c := range cases {
		id, ok := NewStandardID(c.raw)
		if ok != c.ok {
			t.Fatalf("NewStandardID(0x%X) ok=%v, want %v", c.raw, ok, c.ok)
		}
		if ok && id.Raw() != c.raw {
			t.Fatalf("NewStandardID(0x%X).Raw() = 0x%X", c.raw, id.Raw())
		}
	}
}

func TestExtendedIDRange(t *testing.T) {
	cases := []struct {
		raw uint32
		ok  bool
	}{
		{0, true},
		{1, true},
		{0x1FFFFFFF, true},
		{0x20000000, false},
		{0xFFFFFFFF, false},
	}
	for _, c := range cases {
		id, ok := NewExtendedID(c.raw)
		if ok != c.ok {
			t.Fatalf("NewExtendedID(0x%X) ok=%v, want %v", c.raw, ok, c.ok)
		}
		if ok && id.Raw() != c.raw {
			t.Fatalf("NewExtendedID(0x%X).Raw() = 0x%X", c.raw, id.Raw())
		}
	}
}

func TestIDConstants(t *testing.T) {
	if StandardIDZero.Raw() != 0 || StandardIDMax.Raw() != 0x7FF {
		t.Fatalf("standard constants: zero=0x%X max=0x%X", StandardIDZero.Raw(), StandardIDMax.Raw())
	}
	if ExtendedIDZero.Raw() != 0 || ExtendedIDMax.Raw() != 0x1FFFFFFF {
		t.Fatalf("extended constants: zero=0x%X max=0x%X", ExtendedIDZero.Raw(), ExtendedIDMax.Raw())
	}
	// Id 0 is the highest priority, max the lowest.
	zero := NewStandardIDReg(StandardIDZero)
	max := NewStandardIDReg(StandardIDMax)
	if zero.Compare(max) != 1 {
		t.Fatalf("StandardIDZero should outrank StandardIDMax")
	}
}

func TestExtendedBaseID(t *testing.T) {
	cases := []struct {
		raw  uint32
		base uint16
	}{
		{0, 0},
		{0x1FFFFFFF, 0x7FF},
		{0x1FFC0000, 0x7FF},
		{0x48EFF45, 0x123}, // 0x123<<18 | low bits
		{0x3FFFF, 0},       // low bits only
	}
	for _, c := range cases {
		e, ok := NewExtendedID(c.raw)
		if !ok {
			t.Fatalf("NewExtendedID(0x%X) rejected", c.raw)
		}
		if got := e.StandardID().Raw(); got != c.base {
			t.Fatalf("ExtendedID(0x%X).StandardID() = 0x%X, want 0x%X", c.raw, got, c.base)
		}
	}
}

func TestIDZeroValue(t *testing.T) {
	var id ID
	if !id.IsStandard() || id.IsExtended() {
		t.Fatalf("zero ID should be standard")
	}
	std, ok := id.Standard()
	if !ok || std.Raw() != 0 {
		t.Fatalf("zero ID should unwrap to standard 0, got 0x%X ok=%v", std.Raw(), ok)
	}
	if id.Raw() != 0 {
		t.Fatalf("zero ID Raw() = 0x%X", id.Raw())
	}
}

func TestIDAccessors(t *testing.T) {
	s, _ := NewStandardID(0x155)
	e, _ := NewExtendedID(0x155FFFF)

	sid := s.ID()
	if !sid.IsStandard() || sid.Raw() != 0x155 {
		t.Fatalf("standard ID wrap: %v raw=0x%X", sid, sid.Raw())
	}
	if _, ok := sid.Extended(); ok {
		t.Fatalf("standard ID should not unwrap as extended")
	}
	if got, ok := sid.Standard(); !ok || got != s {
		t.Fatalf("standard unwrap mismatch: %v ok=%v", got, ok)
	}

	eid := e.ID()
	if !eid.IsExtended() || eid.Raw() != 0x155FFFF {
		t.Fatalf("extended ID wrap: %v raw=0x%X", eid, eid.Raw())
	}
	if _, ok := eid.Standard(); ok {
		t.Fatalf("extended ID should not unwrap as standard")
	}
	if got, ok := eid.Extended(); !ok || got != e {
		t.Fatalf("extended unwrap mismatch: %v ok=%v", got, ok)
	}
}

func TestIDString(t *testing.T) {
	s, _ := NewStandardID(5)
	e, _ := NewExtendedID(42)
	if got := s.ID().String(); got != "std 0x005" {
		t.Fatalf("standard String() = %q", got)
	}
	if got := e.ID().String(); got != "ext 0x0000002A" {
		t.Fatalf("extended String() = %q", got)
	}
}
