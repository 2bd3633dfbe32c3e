package canid

import "go.einride.tech/can"

// Frame returns an identifier-only SocketCAN frame for this register:
// identifier, IDE and RTR flags populated, payload left empty. Payload
// bytes are out of scope for this package.
func (r IDReg) Frame() can.Frame {
	id := r.ToID()
	return can.Frame{
		ID:         id.Raw(),
		IsExtended: id.IsExtended(),
		IsRemote:   r.RTR(),
	}
}

// RegFromFrame builds a register from a SocketCAN frame's identifier and
// flags, reporting ok=false when the id does not fit the frame's format.
func RegFromFrame(f can.Frame) (IDReg, bool) {
	if f.IsExtended {
		ext, ok := NewExtendedID(f.ID)
		if !ok {
			return IDReg{}, false
		}
		return NewExtendedIDReg(ext).WithRTR(f.IsRemote), true
	}
	if f.ID > StandardIDMaxRaw {
		return IDReg{}, false
	}
	std, _ := NewStandardID(uint16(f.ID))
	return NewStandardIDReg(std).WithRTR(f.IsRemote), true
}
