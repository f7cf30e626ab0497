// Package irbutton receives consumer IR remote signals on a GPIO pin and
// exposes them as debounced button events (pressed/held/released) with a
// per-press toggle flag. The timing decoders and the event state machine
// live in the machine-free protocol subpackage; this package binds them to
// pin edge interrupts and provides a matching PWM transmitter.
//
// Typical receive setup:
//
//	rx, err := irbutton.NewRxDevice(rxPin, protocol.NEC)
//	if err != nil { ... }
//	if err := rx.Start(); err != nil { ... }
//
//	for {
//		ev := rx.Poll()
//		if ev.State == protocol.ButtonPressed {
//			println("button:", ev.Code)
//		}
//		time.Sleep(10 * time.Millisecond)
//	}
package irbutton

const (
	// Freq38Khz is the most commonly used carrier frequency for IR remotes
	Freq38Khz = 38000
)
