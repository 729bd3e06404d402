package protocol

import (
	"errors"
	"fmt"
)

// ErrNotSupported is returned when the firmware explicitly rejects a
// command, typically because the feature is absent on this model.
var ErrNotSupported = errors.New("command not supported by firmware")

// ArgsTooLongError indicates a caller passed more argument bytes than the
// payload can hold.
type ArgsTooLongError struct {
	Len int
}

func (e *ArgsTooLongError) Error() string {
	return fmt.Sprintf("argument payload of %d bytes exceeds capacity of %d", e.Len, ArgsSize)
}

// InvalidSizeError indicates a byte buffer that is not exactly one frame.
type InvalidSizeError struct {
	Size int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid frame size: got %d bytes, want %d", e.Size, FrameSize)
}

// CorrelationError indicates a response that is not an answer to the
// request it arrived for: one of the correlated fields differs.
type CorrelationError struct {
	Field string
	Want  uint16
	Got   uint16
}

func (e *CorrelationError) Error() string {
	return fmt.Sprintf("response %s mismatch: got 0x%02X, want 0x%02X", e.Field, e.Got, e.Want)
}

// UnknownStatusError carries the raw status byte of a response that is
// neither Successful nor NotSupported.
type UnknownStatusError struct {
	Status byte
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("command failed with unknown status 0x%02X", e.Status)
}
