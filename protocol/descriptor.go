// Package protocol decodes consumer IR remote signals from pin edge
// timestamps and turns completed frames into pressed/held/released button
// events.
//
// The two decode algorithms cover most consumer remotes: pulse-fraction
// (pulse-distance and pulse-width coding, e.g. NEC, SIRC) and bi-phase
// (Manchester coding, e.g. RC5, RC6). A protocol is described entirely by
// the timing bounds in its descriptor; the package does not auto-detect
// protocols.
//
// Everything here is machine-free: the edge callback takes a level and a
// microsecond timestamp, so the package runs unmodified on host for tests
// and under TinyGo on target. The hardware binding lives in the parent
// package.
package protocol

import "errors"

var (
	// ErrBitBounds is returned when an interval bound pair does not
	// satisfy min < max.
	ErrBitBounds = errors.New("descriptor: interval bounds must satisfy min < max")
	// ErrBitSep is returned when the pulse-fraction separator does not
	// lie strictly between the bit bounds.
	ErrBitSep = errors.New("descriptor: bit separator must lie between bit min and bit max")
	// ErrStartBounds is returned for a malformed start-burst window.
	ErrStartBounds = errors.New("descriptor: start bounds must satisfy min < max, or both be zero")
	// ErrFrameBits is returned when the frame bit count cannot fit the
	// 32-bit accumulator.
	ErrFrameBits = errors.New("descriptor: frame bit count must be 1..32")
	// ErrTogglePos is returned when the toggle position lies outside the
	// frame.
	ErrTogglePos = errors.New("descriptor: toggle position must be less than the frame bit count")
	// ErrWindowOverlap is returned when two bi-phase timing windows
	// partially overlap, making edge classification ambiguous.
	ErrWindowOverlap = errors.New("descriptor: timing windows must be identical or disjoint")
)

// Protocol is a validated, immutable timing descriptor for one IR protocol.
// The two implementations are PulseFraction and BiPhase; a Session binds
// exactly one of them for its lifetime.
type Protocol interface {
	// Validate reports a configuration error if the descriptor's timing
	// parameters are malformed or ambiguous. It is checked once, at
	// session setup, never during decoding.
	Validate() error

	// newDecoder builds the working state for this descriptor. Sealed:
	// the set of decode algorithms is fixed.
	newDecoder(s *Session) lineDecoder
}

// lineDecoder consumes one edge at a time from interrupt context and
// publishes completed frames into the session's event record.
type lineDecoder interface {
	onEdge(level bool, now uint32)
}

// PulseFraction describes a protocol that encodes bits in the duration of
// either the space between carrier bursts (distance coding) or the burst
// itself (width coding). All times are microseconds.
type PulseFraction struct {
	// Bits is the number of bits in a frame.
	Bits uint8
	// DistanceMode is true for pulse-distance coding, false for
	// pulse-width coding.
	DistanceMode bool
	// StartMin and StartMax bound the start/AGC burst interval. Both
	// zero disables start validation (any interval re-arms a frame).
	StartMin uint16
	StartMax uint16
	// BitMin and BitMax bound a single bit interval, whether it encodes
	// a 0 or a 1.
	BitMin uint16
	BitMax uint16
	// BitSep separates a 0 interval from a 1 interval; nominally the
	// midpoint of the two. Intervals above it decode as 1.
	BitSep uint16
}

// Validate implements Protocol.
func (p PulseFraction) Validate() error {
	if p.Bits < 1 || p.Bits > 32 {
		return ErrFrameBits
	}
	if p.BitMin >= p.BitMax {
		return ErrBitBounds
	}
	if p.BitSep <= p.BitMin || p.BitSep >= p.BitMax {
		return ErrBitSep
	}
	if p.StartMax == 0 {
		if p.StartMin != 0 {
			return ErrStartBounds
		}
	} else if p.StartMin >= p.StartMax {
		return ErrStartBounds
	}
	return nil
}

func (p PulseFraction) newDecoder(s *Session) lineDecoder {
	return &pulseFractionDecoder{proto: p, sess: s}
}

// BiPhase describes a protocol that encodes bits in the direction of a
// transition at the midpoint of a fixed bit period (Manchester coding).
// All times are microseconds.
type BiPhase struct {
	// Bits is the number of bits in a frame, excluding the leading start
	// edge that opens it.
	Bits uint8
	// RisingOne is true if a rising mid-bit transition decodes as 1.
	RisingOne bool
	// BitTime bounds the interval between the midpoints of two ordinary
	// adjacent bits.
	BitTime [2]uint16
	// StartTime bounds the interval between the leading edge and the
	// midpoint of the first bit.
	StartTime [2]uint16
	// ToggleTime bounds the intervals adjacent to the toggle bit, which
	// some protocols (RC6) stretch relative to ordinary bits.
	ToggleTime [2]uint16
	// TogglePos is the toggle bit position, counting the last received
	// bit as 0. Its value is consumed for timing only and never enters
	// the decoded code.
	TogglePos uint8
}

// Validate implements Protocol.
func (p BiPhase) Validate() error {
	if p.Bits < 1 || p.Bits > 32 {
		return ErrFrameBits
	}
	if p.TogglePos >= p.Bits {
		return ErrTogglePos
	}
	windows := [3][2]uint16{p.BitTime, p.StartTime, p.ToggleTime}
	for _, w := range windows {
		if w[0] >= w[1] {
			return ErrBitBounds
		}
	}
	for i := 0; i < len(windows); i++ {
		for j := i + 1; j < len(windows); j++ {
			if !compatibleWindows(windows[i], windows[j]) {
				return ErrWindowOverlap
			}
		}
	}
	return nil
}

// compatibleWindows reports whether two timing windows can coexist without
// ambiguity: identical (RC5 uses one window for everything) or disjoint
// (RC6 start, bit and toggle windows never overlap).
func compatibleWindows(a, b [2]uint16) bool {
	if a == b {
		return true
	}
	return a[1] <= b[0] || b[1] <= a[0]
}

func (p BiPhase) newDecoder(s *Session) lineDecoder {
	return &biPhaseDecoder{proto: p, sess: s}
}
