package irbutton

import (
	. "machine"
	"runtime/interrupt"
	"time"

	"github.com/sevrin/irbutton/protocol"
)

// RxDevice binds one demodulating IR receiver pin to a decode session. The
// pin interrupt feeds edges to the session; the application polls the
// session for button events.
type RxDevice struct {
	pin     Pin
	session *protocol.Session
}

// micros is the shared microsecond clock: free-running, wraps at 32 bits.
// The session only ever subtracts two readings, so the wrap is harmless.
func micros() uint32 {
	return uint32(time.Now().UnixNano() / 1000)
}

// irqSection masks interrupts so Poll can read fields the edge handler
// writes without tearing.
type irqSection struct{}

func (irqSection) Enter() uintptr     { return uintptr(interrupt.Disable()) }
func (irqSection) Exit(state uintptr) { interrupt.Restore(interrupt.State(state)) }

// NewRxDevice configures pin as an input and builds a decode session for
// the given protocol descriptor. It fails on a malformed descriptor; see
// protocol.NewSession.
//
// The common 38kHz receiver modules have a built-in pull up and idle high,
// pulling the line low while a carrier burst is present. The decoders only
// care about time between edges, so either polarity of module works.
func NewRxDevice(pin Pin, proto protocol.Protocol) (*RxDevice, error) {
	pin.Configure(PinConfig{Mode: PinInput})
	session, err := protocol.NewSession(protocol.Config{
		Protocol: proto,
		Clock:    micros,
		Critical: irqSection{},
	})
	if err != nil {
		return nil, err
	}
	return &RxDevice{pin: pin, session: session}, nil
}

func (rx *RxDevice) interruptHandler(interruptPin Pin) {
	rx.session.OnEdge(interruptPin.Get(), micros())
}

// Start sets the edge interrupt handler and thus starts decoding. It
// returns an error if the pin cannot generate edge interrupts, in which
// case the device must not be used.
func (rx *RxDevice) Start() error {
	return rx.pin.SetInterrupt(PinFalling|PinRising, rx.interruptHandler)
}

// Stop disables the interrupt handler.
func (rx *RxDevice) Stop() {
	rx.pin.SetInterrupt(PinFalling|PinRising, nil)
}

// Poll advances the session's button state machine and returns the current
// event snapshot. Call it from the application loop, not from an interrupt.
func (rx *RxDevice) Poll() protocol.Events {
	return rx.session.Poll()
}

// Session exposes the underlying decode session, for callers that manage
// polling themselves or feed edges from a source other than the pin
// interrupt.
func (rx *RxDevice) Session() *protocol.Session {
	return rx.session
}
