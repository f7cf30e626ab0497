package protocol

import "errors"

// Clock returns a free-running microsecond counter. It must be monotonic
// modulo 2^32; all duration math is modular subtraction, so wrapping at the
// counter's native width is fine.
type Clock func() uint32

// CriticalSection masks the edge interrupt around multi-byte reads of
// fields the edge callback writes. A torn read of a 32-bit timestamp or
// code is a correctness bug, not a cosmetic one.
//
// The device layer provides an implementation backed by the interrupt
// controller. The zero Session uses a no-op section, which is correct
// whenever edge delivery and polling happen on one goroutine (tests,
// simulation, polled-input designs).
type CriticalSection interface {
	// Enter masks the edge interrupt and returns the state Exit needs to
	// restore it.
	Enter() uintptr
	// Exit restores the interrupt state saved by Enter.
	Exit(uintptr)
}

type nopSection struct{}

func (nopSection) Enter() uintptr { return 0 }
func (nopSection) Exit(uintptr)   {}

// ErrNoClock is returned by NewSession when no clock source is given and
// Poll would have nothing to compare signal silence against.
var ErrNoClock = errors.New("session: a microsecond clock is required")

// Config carries everything needed to set up a Session.
type Config struct {
	// Protocol is the timing descriptor to decode. Required.
	Protocol Protocol
	// Clock is the microsecond counter shared with the edge source.
	// Required.
	Clock Clock
	// Critical masks the edge interrupt during Poll's reads of
	// interrupt-written fields. Leave nil only if edges and polls run on
	// the same goroutine.
	Critical CriticalSection
	// RepeatInterval is the silence, in microseconds, after which a held
	// button is considered released. Zero selects
	// DefaultRepeatInterval.
	RepeatInterval uint32
}

// Session owns one receiver's decode state and event record. The edge
// callback and the poll side share it: OnEdge runs in interrupt context,
// Poll in normal context, and Poll's reads of interrupt-written fields go
// through the configured CriticalSection.
//
// A Session is a value the caller owns; several independent sessions can
// decode several sensor lines at once.
type Session struct {
	dec    lineDecoder
	clock  Clock
	cs     CriticalSection
	repeat uint32

	// ref is the timestamp of the last edge the decoder acted on.
	// Written in interrupt context, read masked by Poll to detect
	// signal silence.
	ref uint32

	// ev is the event record. Code, PressTime and Toggle are written in
	// interrupt context when a frame completes while State is
	// ButtonNone; everything else is poll-side only.
	ev Events
}

// NewSession validates the descriptor and builds a session around it. It
// fails on a malformed descriptor or a missing clock; it never fails once
// decoding has begun (timing violations self-heal, see OnEdge).
func NewSession(cfg Config) (*Session, error) {
	if cfg.Protocol == nil {
		return nil, errors.New("session: a protocol descriptor is required")
	}
	if err := cfg.Protocol.Validate(); err != nil {
		return nil, err
	}
	if cfg.Clock == nil {
		return nil, ErrNoClock
	}
	if cfg.Critical == nil {
		cfg.Critical = nopSection{}
	}
	if cfg.RepeatInterval == 0 {
		cfg.RepeatInterval = DefaultRepeatInterval
	}
	s := &Session{
		clock:  cfg.Clock,
		cs:     cfg.Critical,
		repeat: cfg.RepeatInterval,
	}
	s.dec = cfg.Protocol.newDecoder(s)
	return s, nil
}

// OnEdge feeds one line transition to the decoder: level is the new logic
// level of the sensor line (true while a carrier burst is being received),
// now the microsecond timestamp of the transition. Call it from the pin
// edge interrupt, once per transition.
//
// OnEdge never blocks, never allocates, and completes in constant time. A
// transition at an unexpected time silently discards the partial frame and
// re-arms the start scan; noise self-heals within one frame.
func (s *Session) OnEdge(level bool, now uint32) {
	s.dec.onEdge(level, now)
}

// publish hands a completed frame to the event record. Runs in interrupt
// context. While a previous press is still active the frame is a repeat
// and is dropped: a held button must not look like a fresh press, and the
// toggle must not flip for it.
func (s *Session) publish(code, now uint32) {
	if s.ev.State == ButtonNone {
		s.ev.Code = code
		s.ev.PressTime = now
		s.ev.Toggle = !s.ev.Toggle
	}
}

// Poll advances the button state machine one step and returns a snapshot
// of the event record. It is the only way state advances, so the
// application loop should call it more often than the repeat interval or
// it will see added latency (never wrong results).
//
// Lifecycle per press: ButtonPressed on exactly one poll, ButtonHeld while
// repeat frames keep the line busy, ButtonReleased on exactly one poll
// after the repeat interval passes in silence, then ButtonNone. A poll
// that retires a release immediately re-checks for a freshly pending code,
// so back-to-back presses never lose a ButtonPressed report.
func (s *Session) Poll() Events {
	now := s.clock()

	mask := s.cs.Enter()
	s.ev.CurTime = now
	switch s.ev.State {
	case ButtonPressed:
		s.ev.State = ButtonHeld
	case ButtonHeld:
		if now-s.ref > s.repeat {
			s.ev.State = ButtonReleased
		}
	case ButtonReleased:
		s.ev.State = ButtonNone
		s.ev.Code = 0
		fallthrough
	case ButtonNone:
		if s.ev.Code != 0 {
			s.ev.State = ButtonPressed
		}
	}
	snap := s.ev
	s.cs.Exit(mask)

	return snap
}
