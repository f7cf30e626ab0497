package protocol

// DefaultRepeatInterval is how long a session waits for repeat frames, in
// microseconds, before deciding the button is no longer held. 100ms covers
// the slowest common repeat cadence (NEC repeats every 108ms measured
// start-to-start, but the gap between frames is well under 100ms).
const DefaultRepeatInterval = 100000

// Reference descriptors for common consumer remotes. The timing bounds
// carry roughly +/-200us of receiver tolerance around the nominal protocol
// values. Codes decode most-significant-bit-first from the raw bit stream,
// so they will often differ from the values printed in protocol docs.

// NEC is used by Apple TV remotes, Kenwood, and countless others.
var NEC = PulseFraction{Bits: 32, DistanceMode: true, StartMin: 13300, StartMax: 13700, BitMin: 925, BitSep: 1687, BitMax: 2450}

// JVC is NEC-like with a shorter 16 bit frame and no repeat frames.
var JVC = PulseFraction{Bits: 16, DistanceMode: true, StartMin: 12424, StartMax: 12824, BitMin: 852, BitSep: 1578, BitMax: 2304}

// RCA uses 24 bit frames at a 56kHz carrier.
var RCA = PulseFraction{Bits: 24, DistanceMode: true, StartMin: 7800, StartMax: 8200, BitMin: 1300, BitSep: 2000, BitMax: 2700}

// Sharp has no start burst at all; start validation is disabled and any
// long gap re-arms the decoder.
var Sharp = PulseFraction{Bits: 15, DistanceMode: true, StartMin: 0, StartMax: 0, BitMin: 800, BitSep: 1500, BitMax: 2200}

// Samsung is NEC timing with a shorter lead burst.
var Samsung = PulseFraction{Bits: 32, DistanceMode: true, StartMin: 8760, StartMax: 9160, BitMin: 920, BitSep: 1680, BitMax: 2440}

// SIRC is the 12 bit Sony protocol; the only width-coded entry in the
// catalog (bit value lives in the burst length, not the gap).
var SIRC = PulseFraction{Bits: 12, DistanceMode: false, StartMin: 2200, StartMax: 2600, BitMin: 400, BitSep: 900, BitMax: 1400}

// RC5 is the Philips 14 bit bi-phase protocol (13 bits after the leading
// start edge). Extended RC5 decodes too, the second start bit simply shows
// up in the code. All three windows are the one 1778us bit period.
var RC5 = BiPhase{Bits: 13, RisingOne: true, BitTime: [2]uint16{1578, 1978}, StartTime: [2]uint16{1578, 1978}, ToggleTime: [2]uint16{1578, 1978}, TogglePos: 11}

// RC6Mode0 is the Philips RC6 consumer mode: inverted bit sense relative
// to RC5, a long leader, and a double-length toggle bit with its own
// timing window.
var RC6Mode0 = BiPhase{Bits: 21, RisingOne: false, BitTime: [2]uint16{688, 1088}, StartTime: [2]uint16{3796, 4196}, ToggleTime: [2]uint16{1132, 1532}, TogglePos: 16}
