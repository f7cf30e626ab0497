package protocol

// biPhaseDecoder handles Manchester coding. Every bit period has a
// transition at its midpoint whose direction carries the value; between
// equal adjacent bits there is an extra transition on the period boundary.
// The decoder keeps a timestamp of the last accepted midpoint and
// classifies each edge by elapsed time against the active window: below it
// is a boundary edge to skip, inside it is the next midpoint, above it is
// a timing violation.
type biPhaseDecoder struct {
	proto BiPhase
	sess  *Session

	remaining uint8
	code      uint32
	// window is the bound pair the next midpoint must land in: the start
	// window right after the leading edge, the toggle window adjacent to
	// the toggle bit, the bit window otherwise.
	window [2]uint16
}

func (d *biPhaseDecoder) onEdge(level bool, now uint32) {
	if d.remaining != 0 {
		elapsed := now - d.sess.ref
		if elapsed < uint32(d.window[1]) {
			if elapsed > uint32(d.window[0]) {
				d.midBit(level, now)
			}
			// Below the window: boundary transition between equal
			// bits, keep waiting for the midpoint.
			return
		}
		// Timing violation: drop the frame and let this edge fall
		// through as a start candidate.
		d.remaining = 0
	}

	// Scanning: a rising edge opens a frame. It is the first half of the
	// leading start bit, so the first midpoint is measured from here with
	// the start window.
	if level {
		d.remaining = d.proto.Bits
		d.code = 0
		d.window = d.proto.StartTime
		d.sess.ref = now
	}
}

// midBit consumes one mid-bit transition.
func (d *biPhaseDecoder) midBit(level bool, now uint32) {
	d.sess.ref = now
	d.remaining--

	if level == d.proto.RisingOne {
		// The toggle bit is timing-only; it never enters the code.
		if d.remaining != d.proto.TogglePos {
			d.code |= 1 << d.remaining
		}
	}

	if d.remaining == 0 {
		d.sess.publish(d.code, now)
		return
	}
	if d.remaining == d.proto.TogglePos || d.remaining == d.proto.TogglePos+1 {
		d.window = d.proto.ToggleTime
	} else {
		d.window = d.proto.BitTime
	}
}
