package hid

import "errors"

// MockDevice is a scripted in-memory Device for tests. Handler receives each
// request report and produces the response report; every exchange is also
// recorded in Requests.
type MockDevice struct {
	Handler  func(request []byte) ([]byte, error)
	Requests [][]byte
	closed   bool
}

func NewMockDevice(handler func(request []byte) ([]byte, error)) *MockDevice {
	return &MockDevice{Handler: handler}
}

func (m *MockDevice) Exchange(request []byte) ([]byte, error) {
	if m.closed {
		return nil, errors.New("device closed")
	}

	buf := make([]byte, len(request))
	copy(buf, request)
	m.Requests = append(m.Requests, buf)

	if m.Handler == nil {
		return nil, errors.New("no handler configured")
	}
	return m.Handler(buf)
}

func (m *MockDevice) Close() error {
	m.closed = true
	return nil
}
