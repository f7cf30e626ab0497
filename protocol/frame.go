package protocol

import "time"

// TimePair encodes one mark/space run: pair[0] is the time the carrier is
// on, pair[1] the time it is off afterwards.
type TimePair [2]time.Duration

// FrameMarshaller defines an interface for marshalling data to a slice of
// TimePairs, suitable for handing to a transmitter.
type FrameMarshaller interface {
	MarshalFrame() []TimePair
}
