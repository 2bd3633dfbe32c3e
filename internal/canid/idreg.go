package canid

import "cmp"

// IDReg is the packed identifier of a FlexCAN message buffer: a code word
// carrying the control flags and an id word carrying the identifier bits.
// Standard identifiers occupy id-word bits 28..18, extended identifiers
// bits 28..0.
//
// Compare orders registers by arbitration priority with the greater value
// winning the bus: lower identifiers rank higher, a standard frame outranks
// an extended frame sharing its base id, and a data frame outranks a remote
// frame with the same identifier. The max element of any set of registers
// is therefore the next frame to transmit, so a max-oriented structure
// needs no inversion logic on top.
type IDReg struct {
	code uint32
	id   uint32
}

// Code-word bit layout. Bits 31..23 are reserved.
const (
	srrShift = 22
	srrMask  = 1 << srrShift

	ideShift = 21
	ideMask  = 1 << ideShift

	rtrShift = 20
	rtrMask  = 1 << rtrShift

	dlcShift = 16
	dlcMask  = 0x7 << dlcShift

	timestampShift = 0
	timestampMask  = 0xFFFF << timestampShift
)

// Id-word shifts. The IDE bit in the code word must agree with which shift
// produced the id word.
const (
	standardShift = 18
	extendedShift = 0
)

// NewStandardIDReg packs a standard identifier: code word cleared, id word
// shifted into bits 28..18.
func NewStandardIDReg(id StandardID) IDReg {
	return IDReg{code: 0, id: uint32(id.Raw()) << standardShift}
}

// NewExtendedIDReg packs an extended identifier: IDE flag set, the 29-bit
// value occupying id-word bits 28..0.
func NewExtendedIDReg(id ExtendedID) IDReg {
	return IDReg{code: ideMask, id: id.Raw() << extendedShift}
}

// RegFromWords reconstructs a register from raw code and id words, e.g. a
// register dump. It reports ok=false when the id word carries bits outside
// the field selected by the IDE flag: decoding such a word would hand an
// out-of-range value to the unchecked constructors.
func RegFromWords(code, id uint32) (IDReg, bool) {
	r := IDReg{code: code, id: id}
	if r.IsExtended() {
		if id > ExtendedIDMaxRaw<<extendedShift {
			return IDReg{}, false
		}
	} else if id&^uint32(StandardIDMaxRaw<<standardShift) != 0 {
		return IDReg{}, false
	}
	return r, true
}

// WithRTR returns a copy with the remote-transmission-request flag set or
// cleared. The receiver is unchanged.
func (r IDReg) WithRTR(rtr bool) IDReg {
	if rtr {
		r.code |= rtrMask
	} else {
		r.code &^= rtrMask
	}
	return r
}

// ToID unpacks the identifier. The unchecked constructors are safe here:
// every IDReg comes from the validated encoders or from RegFromWords, so
// the id field is in range for its format.
func (r IDReg) ToID() ID {
	if r.IsExtended() {
		return UncheckedExtendedID(r.id >> extendedShift).ID()
	}
	return UncheckedStandardID(uint16(r.id >> standardShift)).ID()
}

// IsExtended reports whether the IDE flag is set.
func (r IDReg) IsExtended() bool { return r.code&ideMask != 0 }

// IsStandard reports whether the identifier is in the standard format.
func (r IDReg) IsStandard() bool { return !r.IsExtended() }

// RTR reports whether the register marks a remote frame.
func (r IDReg) RTR() bool { return r.code&rtrMask != 0 }

// SRR reports the substitute-remote-request bit.
func (r IDReg) SRR() bool { return r.code&srrMask != 0 }

// DLC returns the data length code. Not interpreted by this package.
func (r IDReg) DLC() uint8 { return uint8(r.code & dlcMask >> dlcShift) }

// Timestamp returns the free-running timer snapshot the controller stores
// on receive.
func (r IDReg) Timestamp() uint16 {
	return uint16(r.code & timestampMask >> timestampShift)
}

// Compare returns -1, 0 or +1 ordering r against other by arbitration
// priority; the greater register wins the bus. The order is total: it never
// fails and equal priority is a valid outcome, not an error.
func (r IDReg) Compare(other IDReg) int {
	// At equal identifiers a data frame beats a remote frame.
	rtr := -boolCmp(r.RTR(), other.RTR())

	a, b := r.ToID(), other.ToID()
	switch {
	case a.IsStandard() && b.IsStandard():
		// Lower ids win arbitration, so they rank greater.
		if c := cmp.Compare(b.raw, a.raw); c != 0 {
			return c
		}
		return rtr
	case a.IsExtended() && b.IsExtended():
		if c := cmp.Compare(b.raw, a.raw); c != 0 {
			return c
		}
		return rtr
	case a.IsStandard():
		// Mixed formats compare through the extended side's base id. On a
		// base-id tie the standard frame wins outright: the IDE bit settles
		// arbitration before RTR is ever transmitted, so RTR is not
		// consulted here, unlike the same-format branches.
		ext, _ := b.Extended()
		if c := cmp.Compare(uint32(ext.StandardID().Raw()), a.raw); c != 0 {
			return c
		}
		return 1
	default:
		ext, _ := a.Extended()
		if c := cmp.Compare(b.raw, uint32(ext.StandardID().Raw())); c != 0 {
			return c
		}
		return -1
	}
}

// Less reports whether r has strictly lower arbitration priority than
// other, matching the sort.Slice / slices.SortFunc convention.
func (r IDReg) Less(other IDReg) bool { return r.Compare(other) < 0 }

func boolCmp(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}
