//go:build linux

package ioctl

import (
	"errors"
	"os"
	"syscall"
	"testing"
)

func TestCommandString(t *testing.T) {
	tests := []struct {
		c    Command
		want string
	}{
		{KDGetMode, "KDGETMODE"},
		{KDSetMode, "KDSETMODE"},
		{0x4600, "ioctl 0x4600"},
	}
	for _, test := range tests {
		if v := test.c.String(); v != test.want {
			t.Errorf("expected %q, got %q", test.want, v)
		}
	}
}

func TestReadIntNotTTY(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "ioctl")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	_, err = ReadInt(f.Fd(), KDGetMode)
	var serr *os.SyscallError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *os.SyscallError, got %T (%v)", err, err)
	}
	if !errors.Is(err, syscall.ENOTTY) {
		t.Errorf("expected ENOTTY, got %v", err)
	}
}
