package inktypes

import (
	"fmt"
)

// EventRecord pairs one decoded event with its decode outcome. Filtering
// keeps per-event failures isolated: one undecodable event (say, emitted by
// a newer contract build) does not hide the rest.
type EventRecord[E any] struct {
	Event E
	Err   error
}

// UnknownEventDiscriminantError reports a raw event whose discriminant lies
// outside the declared event list. Callers recover by skipping the event;
// seeing it usually means the metadata predates the deployed contract.
type UnknownEventDiscriminantError struct {
	Discriminant uint8
}

func (e *UnknownEventDiscriminantError) Error() string {
	return fmt.Sprintf("unknown event discriminant %d", e.Discriminant)
}
