package protocol

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

// Every catalog descriptor must pass configuration validation.
func TestCatalogValidates(t *testing.T) {
	c := qt.New(t)

	catalog := map[string]Protocol{
		"NEC":      NEC,
		"JVC":      JVC,
		"RCA":      RCA,
		"Sharp":    Sharp,
		"Samsung":  Samsung,
		"SIRC":     SIRC,
		"RC5":      RC5,
		"RC6Mode0": RC6Mode0,
	}
	for name, proto := range catalog {
		proto := proto
		c.Run(name, func(c *qt.C) {
			c.Assert(proto.Validate(), qt.IsNil)
		})
	}
}

func TestPulseFractionValidate(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name  string
		proto PulseFraction
		err   error
	}{
		{
			name:  "bit bounds inverted",
			proto: PulseFraction{Bits: 8, BitMin: 1200, BitSep: 700, BitMax: 400, StartMax: 0},
			err:   ErrBitBounds,
		},
		{
			name:  "separator below bit min",
			proto: PulseFraction{Bits: 8, BitMin: 400, BitSep: 300, BitMax: 1200},
			err:   ErrBitSep,
		},
		{
			name:  "separator at bit max",
			proto: PulseFraction{Bits: 8, BitMin: 400, BitSep: 1200, BitMax: 1200},
			err:   ErrBitSep,
		},
		{
			name:  "start bounds inverted",
			proto: PulseFraction{Bits: 8, BitMin: 400, BitSep: 700, BitMax: 1200, StartMin: 3000, StartMax: 2000},
			err:   ErrStartBounds,
		},
		{
			name:  "start min without start max",
			proto: PulseFraction{Bits: 8, BitMin: 400, BitSep: 700, BitMax: 1200, StartMin: 2000, StartMax: 0},
			err:   ErrStartBounds,
		},
		{
			name:  "zero bits",
			proto: PulseFraction{Bits: 0, BitMin: 400, BitSep: 700, BitMax: 1200},
			err:   ErrFrameBits,
		},
		{
			name:  "too many bits for the accumulator",
			proto: PulseFraction{Bits: 33, BitMin: 400, BitSep: 700, BitMax: 1200},
			err:   ErrFrameBits,
		},
		{
			name:  "start disabled is fine",
			proto: PulseFraction{Bits: 15, BitMin: 800, BitSep: 1500, BitMax: 2200},
			err:   nil,
		},
	}
	for _, test := range tests {
		test := test
		c.Run(test.name, func(c *qt.C) {
			err := test.proto.Validate()
			if test.err == nil {
				c.Assert(err, qt.IsNil)
			} else {
				c.Assert(err, qt.ErrorIs, test.err)
			}
		})
	}
}

func TestBiPhaseValidate(t *testing.T) {
	c := qt.New(t)

	// valid baseline with three disjoint windows, RC6 style
	base := BiPhase{
		Bits:       21,
		BitTime:    [2]uint16{688, 1088},
		StartTime:  [2]uint16{3796, 4196},
		ToggleTime: [2]uint16{1132, 1532},
		TogglePos:  16,
	}
	c.Assert(base.Validate(), qt.IsNil)

	c.Run("window bounds inverted", func(c *qt.C) {
		p := base
		p.BitTime = [2]uint16{1088, 688}
		c.Assert(p.Validate(), qt.ErrorIs, ErrBitBounds)
	})
	c.Run("toggle position outside frame", func(c *qt.C) {
		p := base
		p.TogglePos = 21
		c.Assert(p.Validate(), qt.ErrorIs, ErrTogglePos)
	})
	c.Run("partially overlapping windows are ambiguous", func(c *qt.C) {
		p := base
		p.ToggleTime = [2]uint16{900, 1532} // overlaps BitTime without matching it
		c.Assert(p.Validate(), qt.ErrorIs, ErrWindowOverlap)
	})
	c.Run("identical windows are fine", func(c *qt.C) {
		// RC5 uses the same window for start, bit and toggle intervals.
		p := base
		p.BitTime = [2]uint16{1578, 1978}
		p.StartTime = p.BitTime
		p.ToggleTime = p.BitTime
		c.Assert(p.Validate(), qt.IsNil)
	})
	c.Run("touching windows are disjoint", func(c *qt.C) {
		p := base
		p.ToggleTime = [2]uint16{1088, 1532}
		c.Assert(p.Validate(), qt.IsNil)
	})
}
