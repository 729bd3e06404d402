// Package razer exposes one operation per controllable firmware feature of
// supported Razer laptops: performance and fan control, lid logo, keyboard
// lighting and battery care. Every operation is a single synchronous
// request/response round trip over a HID feature-report transport; there is
// no internal locking, retrying or caching of device state.
package razer

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/tdakhran/razer-ctl/internal/protocol"
)

// Transport exchanges one frame's worth of bytes per call against an
// exclusively owned device connection. internal/hid devices satisfy it.
type Transport interface {
	Exchange(request []byte) ([]byte, error)
	Close() error
}

// Device binds a transport to the descriptor of the model behind it.
type Device struct {
	transport Transport
	info      Descriptor
}

func NewDevice(t Transport, info Descriptor) *Device {
	return &Device{transport: t, info: info}
}

// Info returns the resolved catalog descriptor.
func (d *Device) Info() Descriptor { return d.info }

func (d *Device) Close() error { return d.transport.Close() }

// send performs one request/response exchange and validates the response
// against the request. It does not interpret the response arguments.
func (d *Device) send(command uint16, args []byte, opts ...protocol.ValidateOption) (*protocol.Frame, error) {
	req, err := protocol.NewFrame(command, args)
	if err != nil {
		return nil, err
	}

	slog.Debug("sending frame",
		slog.String("command", fmt.Sprintf("0x%04x", command)),
		slog.String("args", protocol.HexString(args)))

	raw, err := d.transport.Exchange(req.Marshal())
	if err != nil {
		return nil, fmt.Errorf("exchange command 0x%04x: %w", command, err)
	}

	resp, err := protocol.Unmarshal(raw)
	if err != nil {
		return nil, fmt.Errorf("decode response to command 0x%04x: %w", command, err)
	}

	if err := protocol.Validate(resp, req, opts...); err != nil {
		return nil, fmt.Errorf("command 0x%04x: %w", command, err)
	}

	slog.Debug("received frame",
		slog.String("command", fmt.Sprintf("0x%04x", command)),
		slog.String("args", protocol.HexString(resp.Args[:resp.DataSize])))

	return resp, nil
}

// sendEcho is send plus the echo contract most write commands follow: the
// response arguments must begin with the exact bytes that were sent.
func (d *Device) sendEcho(command uint16, args []byte, opts ...protocol.ValidateOption) (*protocol.Frame, error) {
	resp, err := d.send(command, args, opts...)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(resp.Args[:], args) {
		return nil, &EchoMismatchError{Command: command}
	}
	return resp, nil
}

// CustomCommand exchanges an arbitrary command word and argument payload,
// applying only the generic response validation. Useful for probing
// undocumented firmware behavior; what it does to the device is on the
// caller.
func (d *Device) CustomCommand(command uint16, args []byte) ([]byte, error) {
	resp, err := d.send(command, args)
	if err != nil {
		return nil, err
	}
	return resp.Args[:], nil
}
