package protocol

// pulseFractionDecoder handles pulse-distance and pulse-width coding. Only
// one kind of edge measures anything: in distance mode the edge that opens
// a burst (the gap before it carries the bit), in width mode the edge that
// closes one (the burst itself carries the bit). Everything is decided
// from the elapsed time between measuring edges; strict comparisons, all
// arithmetic modulo 2^32.
type pulseFractionDecoder struct {
	proto PulseFraction
	sess  *Session

	remaining uint8
	code      uint32
}

func (d *pulseFractionDecoder) onEdge(level bool, now uint32) {
	if level != d.proto.DistanceMode {
		// Not a measuring edge. Width mode measures the burst, so the
		// opening edge re-arms the reference; in distance mode the
		// reference already sits on the previous measuring edge.
		if !d.proto.DistanceMode {
			d.sess.ref = now
		}
		return
	}

	elapsed := now - d.sess.ref
	d.sess.ref = now

	if d.remaining != 0 {
		if elapsed > uint32(d.proto.BitMin) && elapsed < uint32(d.proto.BitMax) {
			d.remaining--
			if elapsed > uint32(d.proto.BitSep) {
				d.code |= 1 << d.remaining
			}
			if d.remaining == 0 {
				d.sess.publish(d.code, now)
			}
			return
		}
		// Unexpected timing always means restart, never a fault. The
		// offending interval falls through as a start candidate.
		d.remaining = 0
	}

	if d.proto.StartMax == 0 ||
		(elapsed > uint32(d.proto.StartMin) && elapsed < uint32(d.proto.StartMax)) {
		d.remaining = d.proto.Bits
		d.code = 0
	}
}
