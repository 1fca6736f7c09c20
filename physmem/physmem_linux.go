package physmem

import (
	"fmt"
	"log"
	"os"

	"periph.io/x/conn/v3"
	"periph.io/x/host/v3/pmem"

	"github.com/BeatGlow/vgatext"
	"github.com/BeatGlow/vgatext/internal/ioctl"
)

// Device is the mapped text buffer.
type Device struct {
	*vgatext.Region
	view *pmem.View
}

var _ conn.Resource = (*Device)(nil)

// Open maps the text buffer described by config, nil selects DefaultConfig.
func Open(config *Config) (*Device, error) {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}
	if config.Base == 0 {
		config.Base = DefaultConfig.Base
	}

	if config.Console != "" {
		if err := checkTextMode(config.Console); err != nil {
			return nil, err
		}
	}

	view, err := pmem.Map(uint64(config.Base), vgatext.BufferSize)
	if err != nil {
		return nil, fmt.Errorf("physmem: map %#x: %w", config.Base, err)
	}

	region, err := vgatext.ClaimRegion(config.Base, view.Bytes())
	if err != nil {
		_ = view.Close()
		return nil, err
	}

	return &Device{
		Region: region,
		view:   view,
	}, nil
}

func checkTextMode(name string) error {
	f, err := os.OpenFile(name, os.O_RDONLY, os.ModeDevice)
	if err != nil {
		return err
	}
	defer f.Close()

	mode, err := ioctl.ReadInt(f.Fd(), ioctl.KDGetMode)
	if err != nil {
		return err
	}
	if mode != ioctl.KDText {
		log.Printf("physmem: console %s is in mode %d", name, mode)
		return ErrNotTextMode
	}
	return nil
}

func (d *Device) String() string {
	return fmt.Sprintf("%s (mapped from %#x)", d.Region, d.view.PhysAddr())
}

// Halt does nothing, the text buffer has no state to stop.
func (d *Device) Halt() error {
	return nil
}

// Close unmaps the buffer and releases the region.
func (d *Device) Close() error {
	d.Region.Release()
	return d.view.Close()
}
