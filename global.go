package vgatext

import (
	"fmt"
	"sync"
)

// Locked is a Writer guarded by a SpinLock.
type Locked struct {
	lock SpinLock
	w    *Writer
}

// NewLocked guards w with a SpinLock.
func NewLocked(w *Writer) *Locked {
	return &Locked{w: w}
}

// Lock acquires the writer. Callers must call Unlock when done and must not
// keep the returned Writer past that point.
func (l *Locked) Lock() *Writer {
	l.lock.Lock()
	return l.w
}

// Unlock releases the writer.
func (l *Locked) Unlock() {
	l.lock.Unlock()
}

// Do runs f with the writer locked.
func (l *Locked) Do(f func(*Writer)) {
	w := l.Lock()
	defer l.Unlock()
	f(w)
}

var defaultWriter = sync.OnceValue(func() *Locked {
	region, err := ClaimRegion(PhysAddr, defaultMemory())
	if err != nil {
		// Nothing can be printed without the buffer.
		panic(err)
	}
	return NewLocked(NewWriter(region, DefaultColorCode))
})

// Default returns the process wide writer for the VGA text buffer at
// [PhysAddr]. It is created on first use and lives until the process exits.
func Default() *Locked {
	return defaultWriter()
}

// Print formats using the default formats for its operands and writes to
// the default writer. Spaces are added between operands when neither is a
// string.
func Print(a ...any) {
	fprint(func(w *Writer) (int, error) { return fmt.Fprint(w, a...) })
}

// Printf formats according to a format specifier and writes to the default writer.
func Printf(format string, a ...any) {
	fprint(func(w *Writer) (int, error) { return fmt.Fprintf(w, format, a...) })
}

// Println is like Print, but always adds spaces between operands and a newline.
func Println(a ...any) {
	fprint(func(w *Writer) (int, error) { return fmt.Fprintln(w, a...) })
}

// fprint panics if the write fails; there is nowhere else to report it.
func fprint(f func(*Writer) (int, error)) {
	var err error
	Default().Do(func(w *Writer) {
		_, err = f(w)
	})
	if err != nil {
		panic(fmt.Sprintf("vgatext: print failed: %v", err))
	}
}
