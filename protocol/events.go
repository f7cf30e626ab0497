package protocol

// ButtonState is the debounced state of the remote button as seen by the
// polling side.
type ButtonState uint8

const (
	// ButtonNone means no button activity; the session is scanning for a
	// start condition.
	ButtonNone ButtonState = iota
	// ButtonPressed is reported exactly once, on the first poll after a
	// frame completes.
	ButtonPressed
	// ButtonHeld is reported while repeat frames keep arriving within the
	// repeat interval.
	ButtonHeld
	// ButtonReleased is reported exactly once, on the first poll after the
	// repeat interval elapses with no frame activity.
	ButtonReleased
)

func (bs ButtonState) String() string {
	switch bs {
	case ButtonPressed:
		return "pressed"
	case ButtonHeld:
		return "held"
	case ButtonReleased:
		return "released"
	}
	return "none"
}

// Events is the snapshot returned by Session.Poll.
//
// Code is the most-significant-bit-first accumulation of the frame bits as
// transmitted; it is not split into address and command, and verification
// bits are not separated out. A frame whose bits are all zero decodes to
// Code == 0, which is indistinguishable from "no code pending" — a known
// limitation carried over from the protocol catalog's MSB-first raw codes.
type Events struct {
	// Code is the decoded button code, 0 while no button is active.
	Code uint32
	// PressTime is the microsecond timestamp of the edge that completed
	// the first frame of the current press. Useful for long-press logic.
	PressTime uint32
	// CurTime is the microsecond timestamp at which Poll ran.
	CurTime uint32
	// State is the debounced button state.
	State ButtonState
	// Toggle flips once per discrete press, never on held repeats. It
	// distinguishes two rapid presses of the same button from one long
	// hold.
	Toggle bool
}
