//go:build !linux

package physmem

import (
	"github.com/BeatGlow/vgatext"
)

// Device is the mapped text buffer.
type Device struct {
	*vgatext.Region
}

func Open(_ *Config) (*Device, error) {
	return nil, ErrNotSupported
}

func (d *Device) Halt() error {
	return nil
}

func (d *Device) Close() error {
	return nil
}
