// Package canid models CAN message identifiers and their packed
// message-buffer register form, including the total order that decides
// bus arbitration between pending frames.
//
// All types are plain immutable values. Range checks happen once, in the
// checked constructors; every operation downstream of a constructor is
// total and safe for concurrent use without coordination.
package canid

import "fmt"

const (
	// StandardIDMaxRaw is the largest valid 11-bit identifier.
	StandardIDMaxRaw = 0x7FF
	// ExtendedIDMaxRaw is the largest valid 29-bit identifier.
	ExtendedIDMaxRaw = 0x1FFFFFFF

	// Number of bits an extended identifier carries beyond its base id.
	baseIDShift = 18
)

// StandardID is a standard 11-bit CAN identifier (0..=0x7FF).
type StandardID struct {
	raw uint16
}

var (
	// StandardIDZero is CAN id 0, the highest priority standard id.
	StandardIDZero = StandardID{}
	// StandardIDMax is CAN id 0x7FF, the lowest priority standard id.
	StandardIDMax = StandardID{raw: StandardIDMaxRaw}
)

// NewStandardID builds a StandardID from a raw 16-bit value. It reports
// ok=false when raw does not fit in 11 bits (> 0x7FF).
func NewStandardID(raw uint16) (StandardID, bool) {
	if raw > StandardIDMaxRaw {
		return StandardID{}, false
	}
	return StandardID{raw: raw}, true
}

// UncheckedStandardID builds a StandardID without validating the range.
// The caller must guarantee raw <= 0x7FF; an out-of-range value corrupts
// register encodings and the arbitration order. Reserved for values already
// proven valid, such as the field of a register this package encoded.
func UncheckedStandardID(raw uint16) StandardID {
	return StandardID{raw: raw}
}

// Raw returns the identifier as the 16-bit value it was built from.
func (s StandardID) Raw() uint16 { return s.raw }

// ID wraps the identifier into the ID union.
func (s StandardID) ID() ID { return ID{raw: uint32(s.raw)} }

// ExtendedID is an extended 29-bit CAN identifier (0..=0x1FFFFFFF).
type ExtendedID struct {
	raw uint32
}

var (
	// ExtendedIDZero is CAN id 0, the highest priority extended id.
	ExtendedIDZero = ExtendedID{}
	// ExtendedIDMax is CAN id 0x1FFFFFFF, the lowest priority extended id.
	ExtendedIDMax = ExtendedID{raw: ExtendedIDMaxRaw}
)

// NewExtendedID builds an ExtendedID from a raw 32-bit value. It reports
// ok=false when raw does not fit in 29 bits (> 0x1FFFFFFF).
func NewExtendedID(raw uint32) (ExtendedID, bool) {
	if raw > ExtendedIDMaxRaw {
		return ExtendedID{}, false
	}
	return ExtendedID{raw: raw}, true
}

// UncheckedExtendedID builds an ExtendedID without validating the range.
// The caller must guarantee raw <= 0x1FFFFFFF; see UncheckedStandardID.
func UncheckedExtendedID(raw uint32) ExtendedID {
	return ExtendedID{raw: raw}
}

// Raw returns the identifier as the 32-bit value it was built from.
func (e ExtendedID) Raw() uint32 { return e.raw }

// StandardID returns the base id: bits ID-28..ID-18, the part an extended
// identifier shares with the standard format during arbitration. The
// projection is lossy and one-directional.
func (e ExtendedID) StandardID() StandardID {
	return StandardID{raw: uint16(e.raw >> baseIDShift)}
}

// ID wraps the identifier into the ID union.
func (e ExtendedID) ID() ID { return ID{raw: e.raw, extended: true} }

// ID is a CAN identifier of either format. The zero value is standard id 0.
//
// ID is a closed union: exactly one of the two formats is active and the
// comma-ok accessors recover the leaf type. Raw flattens the identifier for
// display and logging only; it carries no format information and must never
// be used for priority comparison, which operates on IDReg.
type ID struct {
	raw      uint32
	extended bool
}

// IsExtended reports whether the identifier is in the 29-bit format.
func (i ID) IsExtended() bool { return i.extended }

// IsStandard reports whether the identifier is in the 11-bit format.
func (i ID) IsStandard() bool { return !i.extended }

// Standard returns the standard leaf, with ok=false for extended ids.
func (i ID) Standard() (StandardID, bool) {
	if i.extended {
		return StandardID{}, false
	}
	return StandardID{raw: uint16(i.raw)}, true
}

// Extended returns the extended leaf, with ok=false for standard ids.
func (i ID) Extended() (ExtendedID, bool) {
	if !i.extended {
		return ExtendedID{}, false
	}
	return ExtendedID{raw: i.raw}, true
}

// Raw returns the identifier as a flat 32-bit value regardless of format.
func (i ID) Raw() uint32 { return i.raw }

func (i ID) String() string {
	if i.extended {
		return fmt.Sprintf("ext 0x%08X", i.raw)
	}
	return fmt.Sprintf("std 0x%03X", i.raw)
}
