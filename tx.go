package irbutton

import (
	. "machine"
	"time"

	"github.com/sevrin/irbutton/protocol"
	"github.com/sparques/pwm"
)

// TxDevice drives an IR LED with a modulated carrier, sending mark/space
// runs described as protocol.TimePairs. Useful for remote cloning and for
// exercising a receiver end to end.
type TxDevice struct {
	pin    Pin
	pgroup pwm.Group
	ch     uint8
	duty   uint32
	freq   uint64
}

// NewTxDevice configures pin for PWM output with a 38kHz carrier at a 33%
// duty cycle, the usual compromise between LED current and range.
func NewTxDevice(pin Pin) *TxDevice {
	pin.Configure(PinConfig{Mode: PinPWM})
	pgroup := pwm.Get(pin)
	pgroup.Configure(PWMConfig{Period: uint64(1e9) / uint64(Freq38Khz)})
	ch, _ := pgroup.Channel(pin)
	pgroup.Set(ch, 0)
	return &TxDevice{
		pin:    pin,
		pgroup: pgroup,
		ch:     ch,
		duty:   pgroup.Top() / 3,
		freq:   Freq38Khz,
	}
}

// SetDutyCycle changes the carrier duty cycle, in percent of the carrier
// period. Values outside 1..100 are ignored.
func (tx *TxDevice) SetDutyCycle(percent int) {
	if percent < 1 || percent > 100 {
		return
	}
	tx.duty = tx.pgroup.Top() * uint32(percent) / 100
}

// SendPair emits one mark/space run: carrier on for pair[0], off for
// pair[1]. It sleeps for the run's duration, so transmit from a normal
// goroutine, never from an interrupt.
func (tx *TxDevice) SendPair(pair protocol.TimePair) {
	tx.pgroup.Set(tx.ch, tx.duty)
	time.Sleep(pair[0])
	tx.pgroup.Set(tx.ch, 0)
	time.Sleep(pair[1])
}

func (tx *TxDevice) SendPairs(pairs ...protocol.TimePair) {
	for _, p := range pairs {
		tx.SendPair(p)
	}
}

// SendFrame transmits one complete frame.
func (tx *TxDevice) SendFrame(fm protocol.FrameMarshaller) {
	tx.SendPairs(fm.MarshalFrame()...)
}

func (tx *TxDevice) SendFrames(fms ...protocol.FrameMarshaller) {
	for _, fm := range fms {
		tx.SendFrame(fm)
	}
}
