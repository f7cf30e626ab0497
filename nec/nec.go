// Package nec marshals NEC remote frames to mark/space pairs and maps
// between address/command pairs and the raw codes a protocol.NEC session
// decodes. The decode side never splits address from command; this package
// is for callers that want the split, and for transmitting.
package nec

import (
	"math/bits"
	"time"

	"github.com/sevrin/irbutton/protocol"
)

// Protocol references:
// https://www.sbprojects.net/knowledge/ir/nec.php

const (
	unit      = 562 * time.Microsecond
	leadMark  = 9000 * time.Microsecond
	leadSpace = 4500 * time.Microsecond
	bitMark   = unit
	zeroSpace = unit
	oneSpace  = 1687 * time.Microsecond
	trailMark = unit
)

// Frame is one NEC button: a device address (8-bit classic or 16-bit
// extended) and a command byte. The inverse-command verification byte is
// derived, never stored.
type Frame struct {
	Addr uint16
	Cmd  uint8
}

// Raw assembles the 32-bit NEC payload in transmission byte order,
// LSB first: address low, address high, command, inverted command.
func (f Frame) Raw() uint32 {
	addrLow, addrHigh := splitAddr(f.Addr)
	return uint32(^f.Cmd)<<24 | uint32(f.Cmd)<<16 | uint32(addrHigh)<<8 | uint32(addrLow)
}

// Code returns the value a protocol.NEC session reports for this frame.
// The decoder accumulates most-significant-bit-first in arrival order
// while NEC transmits each byte least-significant-bit-first, so the button
// code is the bit reversal of the raw payload.
func (f Frame) Code() uint32 {
	return bits.Reverse32(f.Raw())
}

// Unmarshal fills the frame from a raw 32-bit NEC payload, verifying the
// inverted command byte. On verification failure the frame is left
// untouched and false is returned.
func (f *Frame) Unmarshal(raw uint32) bool {
	addrLow := uint8(raw)
	addrHigh := uint8(raw >> 8)
	cmd := uint8(raw >> 16)
	if uint8(raw>>24) != ^cmd {
		return false
	}
	f.Addr = makeAddr(addrLow, addrHigh)
	f.Cmd = cmd
	return true
}

// MarshalFrame implements protocol.FrameMarshaller: lead burst, 32 data
// bits, trailing mark. The trailing mark closes the last bit's gap; NEC
// encodes everything in the gaps (pulse-distance coding).
func (f Frame) MarshalFrame() []protocol.TimePair {
	out := make([]protocol.TimePair, 0, 34)
	out = append(out, protocol.TimePair{leadMark, leadSpace})

	raw := f.Raw()
	for bit := 0; bit < 32; bit++ {
		if raw>>bit&1 == 1 {
			out = append(out, protocol.TimePair{bitMark, oneSpace})
		} else {
			out = append(out, protocol.TimePair{bitMark, zeroSpace})
		}
	}

	return append(out, protocol.TimePair{trailMark, 0})
}

// splitAddr breaks an address into wire bytes. Classic 8-bit addresses
// carry their inverse in the high byte for verification; extended NEC uses
// the high byte as address proper.
func splitAddr(addr uint16) (addrLow, addrHigh uint8) {
	addrLow = uint8(addr)
	addrHigh = uint8(addr >> 8)
	if addrHigh == 0 {
		addrHigh = ^addrLow
	}
	return addrLow, addrHigh
}

// makeAddr reverses splitAddr: a high byte that is the inverse of the low
// byte marks a classic 8-bit address.
func makeAddr(addrLow, addrHigh uint8) uint16 {
	if addrHigh == ^addrLow {
		return uint16(addrLow)
	}
	return uint16(addrHigh)<<8 | uint16(addrLow)
}
