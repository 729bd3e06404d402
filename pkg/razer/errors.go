package razer

import (
	"fmt"
)

// InvalidWireValueError reports a response byte outside the firmware
// contract for its enum, which means protocol or firmware mismatch.
type InvalidWireValueError struct {
	What  string
	Value byte
}

func (e *InvalidWireValueError) Error() string {
	return fmt.Sprintf("invalid %s byte 0x%02X", e.What, e.Value)
}

// PreconditionError reports an operation attempted while the device is not
// in the mode the firmware requires for it. It is raised before any I/O.
type PreconditionError struct {
	Operation string
	Required  string
	Actual    string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s requires %s, device reports %s", e.Operation, e.Required, e.Actual)
}

// ZoneMismatchError reports the two zones disagreeing on a value that must
// be identical across them. The device is in an inconsistent state the
// protocol does not support.
type ZoneMismatchError struct {
	What  string
	Zone1 string
	Zone2 string
}

func (e *ZoneMismatchError) Error() string {
	return fmt.Sprintf("%s differs between zones: zone 1 reports %s, zone 2 reports %s", e.What, e.Zone1, e.Zone2)
}

// ZoneWriteError reports which zone of a sequential dual-zone write failed.
// The zone written before it is not rolled back.
type ZoneWriteError struct {
	Zone byte
	Err  error
}

func (e *ZoneWriteError) Error() string {
	return fmt.Sprintf("write to zone %d failed: %v", e.Zone, e.Err)
}

func (e *ZoneWriteError) Unwrap() error { return e.Err }

// EchoMismatchError reports a response whose argument bytes do not start
// with the bytes that were sent, violating the echo contract.
type EchoMismatchError struct {
	Command uint16
}

func (e *EchoMismatchError) Error() string {
	return fmt.Sprintf("response to command 0x%04x does not echo request arguments", e.Command)
}

// DiscriminantError reports a read-only response whose discriminant byte
// does not identify the queried entity.
type DiscriminantError struct {
	Command uint16
	Index   int
	Want    byte
	Got     byte
}

func (e *DiscriminantError) Error() string {
	return fmt.Sprintf("response to command 0x%04x carries 0x%02X at index %d, want 0x%02X",
		e.Command, e.Got, e.Index, e.Want)
}

// RpmOutOfRangeError reports a fan RPM request outside the supported range.
type RpmOutOfRangeError struct {
	Rpm uint16
}

func (e *RpmOutOfRangeError) Error() string {
	return fmt.Sprintf("fan rpm %d out of range [%d, %d]", e.Rpm, MinFanRpm, MaxFanRpm)
}
