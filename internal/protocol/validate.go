package protocol

type validateConfig struct {
	relaxRemainingPackets bool
}

// ValidateOption adjusts response validation for commands with known
// firmware quirks.
type ValidateOption func(*validateConfig)

// AllowRemainingPacketsMismatch disables the remaining_packets echo check.
// The battery-care and max-fan-speed queries legitimately answer with a
// different remaining_packets value than the request carried; they are
// carved out by the caller rather than silently ignored for everyone.
func AllowRemainingPacketsMismatch() ValidateOption {
	return func(c *validateConfig) {
		c.relaxRemainingPackets = true
	}
}

// Validate checks that resp is a trustworthy answer to req: the command
// word and correlation id must match, remaining_packets must echo (unless
// relaxed), and the status byte must report success. The returned error
// distinguishes correlation failures, firmware rejection and unknown
// status bytes.
func Validate(resp, req *Frame, opts ...ValidateOption) error {
	var cfg validateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if resp.CommandClass != req.CommandClass {
		return &CorrelationError{Field: "command class", Want: uint16(req.CommandClass), Got: uint16(resp.CommandClass)}
	}
	if resp.CommandID != req.CommandID {
		return &CorrelationError{Field: "command id", Want: uint16(req.CommandID), Got: uint16(resp.CommandID)}
	}
	if resp.ID != req.ID {
		return &CorrelationError{Field: "id", Want: uint16(req.ID), Got: uint16(resp.ID)}
	}
	if !cfg.relaxRemainingPackets && resp.RemainingPackets != req.RemainingPackets {
		return &CorrelationError{Field: "remaining packets", Want: req.RemainingPackets, Got: resp.RemainingPackets}
	}

	switch resp.Status {
	case StatusSuccessful:
		return nil
	case StatusNotSupported:
		return ErrNotSupported
	default:
		return &UnknownStatusError{Status: resp.Status}
	}
}
